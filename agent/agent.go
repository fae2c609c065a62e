package agent

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/nonsonwune/warm_db/agent/prompts"
	"github.com/nonsonwune/warm_db/stations"
)

const geminiModelName = "gemini-1.5-flash"

// QueryResult is what callers get back for every question. It is always a
// value, never a panic or propagated error: even a double failure (pipeline
// and fallback) comes back as an Err string.
type QueryResult struct {
	Explanation      string   `json:"explanation,omitempty"`
	SQLQuery         string   `json:"sql_query,omitempty"`
	Results          []Row    `json:"results,omitempty"`
	SuggestedActions []string `json:"suggested_actions,omitempty"`

	// Fallback marks a result produced by the schema agent instead of the
	// primary pipeline. PipelineError keeps the original failure visible and
	// FallbackResponse carries the agent's free-form answer.
	Fallback         bool   `json:"fallback,omitempty"`
	FallbackResponse string `json:"fallback_response,omitempty"`
	PipelineError    string `json:"pipeline_error,omitempty"`

	Err string `json:"error,omitempty"`
}

// Agent answers natural-language questions about the weather database. One
// question is in flight per Query call; the only shared state underneath is
// the read-only station catalog and the database handle.
type Agent struct {
	workflow *Workflow
	fallback FallbackStrategy
	log      *zap.Logger
}

// NewAgent wires an agent from pre-built parts. Tests use this with fakes.
func NewAgent(workflow *Workflow, fallback FallbackStrategy, log *zap.Logger) *Agent {
	if log == nil {
		log = zap.NewNop()
	}
	return &Agent{workflow: workflow, fallback: fallback, log: log}
}

// New builds a production agent: Gemini-backed classifier and synthesizer,
// the executor on the given database, and the schema agent fallback. The
// returned close function releases the Gemini client; the caller keeps
// ownership of db.
func New(ctx context.Context, db *sql.DB, catalog stations.Catalog, log *zap.Logger) (*Agent, func() error, error) {
	apiKey := NewKeyManager().GetNextKey()
	if apiKey == "" {
		return nil, nil, fmt.Errorf("no Gemini API key configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModelName)
	temp := float32(0.2)
	model.Temperature = &temp

	// Separate model handle for the fallback so its tool declarations do not
	// leak into the plain completion calls.
	toolModel := client.GenerativeModel(geminiModelName)
	toolModel.Temperature = &temp

	pb := prompts.NewPromptBuilder(catalog.Mappings())
	llm := NewGeminiModel(model)

	workflow := NewWorkflow(
		NewIntentClassifier(llm, pb),
		NewLocationResolver(catalog),
		NewSQLSynthesizer(llm, pb),
		NewQueryExecutor(db),
		log,
	)
	fallback := NewSchemaAgent(toolModel, db, pb, log)

	return NewAgent(workflow, fallback, log), client.Close, nil
}

// Query runs the primary pipeline and, when it terminates in an error state,
// consults the fallback strategy. The returned result is labeled as a
// fallback outcome in that case, with the original pipeline error preserved.
func (a *Agent) Query(ctx context.Context, question string) QueryResult {
	final := a.workflow.Run(ctx, question)

	if final.Err != "" {
		a.log.Info("primary workflow failed, invoking fallback", zap.String("error", final.Err))

		raw, err := a.fallback.Attempt(ctx, question)
		if err != nil {
			a.log.Error("fallback failed", zap.Error(err))
			return QueryResult{
				Err:              err.Error(),
				SuggestedActions: []string{"Error occurred, please try again"},
			}
		}
		return QueryResult{
			Explanation:      "Fallback to schema agent",
			SQLQuery:         ExtractSQL(raw),
			SuggestedActions: []string{"Primary workflow failed, used fallback agent"},
			Fallback:         true,
			FallbackResponse: raw,
			PipelineError:    final.Err,
		}
	}

	result := QueryResult{Results: final.Results}
	if final.SQLResponse != nil {
		result.Explanation = final.SQLResponse.Explanation
		result.SQLQuery = final.SQLResponse.SQLQuery
		result.SuggestedActions = final.SQLResponse.SuggestedActions
	}
	return result
}
