package agent

import (
	"context"

	"go.uber.org/zap"
)

// routeOutcome is the single routing decision in the pipeline, taken after
// SQL generation.
type routeOutcome int

const (
	// routeExecute runs the generated statement.
	routeExecute routeOutcome = iota
	// routeError stops at the error terminal.
	routeError
	// routeEnd stops with neither SQL nor an error; a benign no-op.
	routeEnd
)

// routeAfterGenerate decides where the pipeline goes after the generate
// stage. Order matters: an error wins even when a SQL response is present.
func routeAfterGenerate(state AgentState) routeOutcome {
	if state.Err != "" {
		return routeError
	}
	if state.SQLResponse != nil {
		return routeExecute
	}
	return routeEnd
}

// Workflow drives a question through classify -> locations -> generate and,
// when routed there, execute. Stages convert their own failures into the
// state's Err field instead of returning errors, so a failed stage routes the
// machine to its error terminal rather than aborting the process. No stage is
// ever revisited.
type Workflow struct {
	classifier  *IntentClassifier
	resolver    *LocationResolver
	synthesizer *SQLSynthesizer
	executor    *QueryExecutor
	log         *zap.Logger
}

func NewWorkflow(
	classifier *IntentClassifier,
	resolver *LocationResolver,
	synthesizer *SQLSynthesizer,
	executor *QueryExecutor,
	log *zap.Logger,
) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{
		classifier:  classifier,
		resolver:    resolver,
		synthesizer: synthesizer,
		executor:    executor,
		log:         log,
	}
}

// Run executes the pipeline for one question and returns the terminal state.
func (w *Workflow) Run(ctx context.Context, question string) AgentState {
	state := AgentState{Question: question}

	state = w.classifyIntent(ctx, state)
	state = w.processLocations(ctx, state)
	state = w.generateSQL(ctx, state)

	switch routeAfterGenerate(state) {
	case routeExecute:
		state = w.executeSQL(ctx, state)
	case routeError:
		w.log.Debug("workflow terminated with error", zap.String("error", state.Err))
	case routeEnd:
		w.log.Debug("workflow terminated without SQL")
	}
	return state
}

func (w *Workflow) classifyIntent(ctx context.Context, state AgentState) AgentState {
	intent, err := w.classifier.Classify(ctx, state.Question)
	if err != nil {
		w.log.Warn("intent classification failed", zap.Error(err))
		return state.withError(err.Error())
	}
	w.log.Debug("classified intent",
		zap.Bool("needs_location", intent.NeedsLocation),
		zap.String("query_type", intent.QueryType),
		zap.Strings("location_terms", intent.LocationTerms))
	return state.withIntent(intent)
}

func (w *Workflow) processLocations(_ context.Context, state AgentState) AgentState {
	if state.Err != "" {
		return state
	}
	if state.Intent == nil {
		return state.withError("no intent found in state")
	}
	if !state.Intent.NeedsLocation {
		return state.withProcessedQuestion(state.Question)
	}

	processed := w.resolver.Resolve(state.Question, state.Intent)
	w.log.Debug("resolved locations", zap.String("processed_question", processed))
	return state.withProcessedQuestion(processed)
}

func (w *Workflow) generateSQL(ctx context.Context, state AgentState) AgentState {
	if state.Err != "" {
		return state
	}

	question := state.ProcessedQuestion
	if question == "" {
		question = state.Question
	}
	resp, err := w.synthesizer.Synthesize(ctx, question)
	if err != nil {
		w.log.Warn("SQL generation failed", zap.Error(err))
		return state.withError(err.Error())
	}
	w.log.Debug("generated SQL", zap.String("sql_query", resp.SQLQuery))
	return state.withSQLResponse(resp)
}

func (w *Workflow) executeSQL(ctx context.Context, state AgentState) AgentState {
	if state.SQLResponse == nil {
		return state.withError("no SQL query to execute")
	}

	results, err := w.executor.Execute(ctx, state.SQLResponse.SQLQuery)
	if err != nil {
		w.log.Warn("SQL execution failed", zap.Error(err))
		return state.withError(err.Error())
	}
	w.log.Debug("executed SQL", zap.Int("rows", len(results)))
	return state.withResults(results)
}
