package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nonsonwune/warm_db/agent/prompts"
)

// SQLSynthesizer turns a (possibly location-annotated) question into a
// structured SQL response. The SELECT-only constraint lives in the prompt
// text; the returned sql_query is not validated here.
type SQLSynthesizer struct {
	llm     LanguageModel
	prompts *prompts.PromptBuilder
}

func NewSQLSynthesizer(llm LanguageModel, pb *prompts.PromptBuilder) *SQLSynthesizer {
	return &SQLSynthesizer{llm: llm, prompts: pb}
}

// Synthesize asks the model for the explanation/sql_query/suggested_actions
// JSON and parses it. One model call, no retry.
func (s *SQLSynthesizer) Synthesize(ctx context.Context, question string) (*SQLResponse, error) {
	raw, err := s.llm.Complete(ctx, s.prompts.BuildQueryPrompt(question))
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}

	var resp SQLResponse
	if err := json.Unmarshal([]byte(stripFence(raw)), &resp); err != nil {
		return nil, &SynthesisError{Err: fmt.Errorf("unparseable response %q: %w", raw, err)}
	}
	if resp.SQLQuery == "" {
		return nil, &SynthesisError{Err: fmt.Errorf("response missing sql_query")}
	}
	return &resp, nil
}
