package agent

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"github.com/nonsonwune/warm_db/agent/prompts"
)

// FallbackStrategy is the secondary resolution path, consulted only after the
// primary workflow terminates in an error state. It returns a free-form
// answer; any SQL in it is extracted opportunistically by the caller.
type FallbackStrategy interface {
	Attempt(ctx context.Context, question string) (string, error)
}

// maxToolRounds bounds the tool-call loop so a confused model cannot spin
// against the database forever.
const maxToolRounds = 8

// SchemaAgent is a tool-equipped model session with read access to the full
// database: it can list tables, describe columns, and run SELECT statements
// until it considers the question answered.
type SchemaAgent struct {
	model   *genai.GenerativeModel
	db      *sql.DB
	prompts *prompts.PromptBuilder
	log     *zap.Logger
}

func NewSchemaAgent(model *genai.GenerativeModel, db *sql.DB, pb *prompts.PromptBuilder, log *zap.Logger) *SchemaAgent {
	if log == nil {
		log = zap.NewNop()
	}
	model.Tools = []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "list_tables",
				Description: "List the tables in the public schema of the database",
			},
			{
				Name:        "describe_table",
				Description: "List the columns and types of one table",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"table": {Type: genai.TypeString, Description: "table name"},
					},
					Required: []string{"table"},
				},
			},
			{
				Name:        "run_query",
				Description: "Execute a SELECT statement and return up to 50 rows",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"sql": {Type: genai.TypeString, Description: "a single SELECT statement"},
					},
					Required: []string{"sql"},
				},
			},
		},
	}}
	return &SchemaAgent{model: model, db: db, prompts: pb, log: log}
}

// Attempt runs the tool loop for one question and returns the model's final
// free-form answer.
func (a *SchemaAgent) Attempt(ctx context.Context, question string) (string, error) {
	chat := a.model.StartChat()
	resp, err := chat.SendMessage(ctx, genai.Text(a.prompts.BuildFallbackPrompt(question)))
	if err != nil {
		return "", &FallbackError{Err: err}
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		replies := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			a.log.Debug("fallback tool call", zap.String("tool", call.Name))
			replies = append(replies, genai.FunctionResponse{
				Name:     call.Name,
				Response: a.dispatch(ctx, call),
			})
		}
		resp, err = chat.SendMessage(ctx, replies...)
		if err != nil {
			return "", &FallbackError{Err: err}
		}
	}

	text, err := textFromResponse(resp)
	if err != nil {
		return "", &FallbackError{Err: err}
	}
	return text, nil
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return calls
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

// dispatch runs one tool call. Tool failures go back to the model as an
// "error" entry rather than failing the whole attempt; the model can usually
// correct its own query.
func (a *SchemaAgent) dispatch(ctx context.Context, call genai.FunctionCall) map[string]interface{} {
	switch call.Name {
	case "list_tables":
		return a.listTables(ctx)
	case "describe_table":
		table, _ := call.Args["table"].(string)
		return a.describeTable(ctx, table)
	case "run_query":
		sqlText, _ := call.Args["sql"].(string)
		return a.runQuery(ctx, sqlText)
	default:
		return map[string]interface{}{"error": fmt.Sprintf("unknown tool %q", call.Name)}
	}
}

func (a *SchemaAgent) listTables(ctx context.Context) map[string]interface{} {
	rows, err := a.db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name`)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return map[string]interface{}{"error": err.Error()}
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	return map[string]interface{}{"tables": strings.Join(tables, ", ")}
}

func (a *SchemaAgent) describeTable(ctx context.Context, table string) map[string]interface{} {
	rows, err := a.db.QueryContext(ctx,
		`SELECT column_name, data_type FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1 ORDER BY ordinal_position`,
		table)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name, typ string
		if err := rows.Scan(&name, &typ); err != nil {
			return map[string]interface{}{"error": err.Error()}
		}
		cols = append(cols, name+" "+typ)
	}
	if err := rows.Err(); err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	if len(cols) == 0 {
		return map[string]interface{}{"error": fmt.Sprintf("no such table %q", table)}
	}
	return map[string]interface{}{"columns": strings.Join(cols, ", ")}
}

func (a *SchemaAgent) runQuery(ctx context.Context, sqlText string) map[string]interface{} {
	trimmed := strings.TrimSpace(sqlText)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return map[string]interface{}{"error": "only SELECT statements are allowed"}
	}

	rows, err := a.db.QueryContext(ctx, trimmed)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	var rendered []string
	for rows.Next() && len(rendered) < 50 {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return map[string]interface{}{"error": err.Error()}
		}
		parts := make([]string, len(columns))
		for i, column := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			parts[i] = fmt.Sprintf("%s=%v", column, val)
		}
		rendered = append(rendered, strings.Join(parts, ", "))
	}
	if err := rows.Err(); err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	return map[string]interface{}{
		"columns": strings.Join(columns, ", "),
		"rows":    strings.Join(rendered, "\n"),
	}
}

// ExtractSQL pulls the first fenced SQL block out of free-form model text.
// Returns "" when no block is present.
func ExtractSQL(response string) string {
	lower := strings.ToLower(response)
	for _, fence := range []string{"```sql", "```postgresql"} {
		start := strings.Index(lower, fence)
		if start == -1 {
			continue
		}
		rest := response[start+len(fence):]
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	return ""
}
