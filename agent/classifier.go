package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nonsonwune/warm_db/agent/prompts"
)

// IntentClassifier labels a question with its location needs and query type.
// Exactly one model call per invocation; no caching, no retry.
type IntentClassifier struct {
	llm     LanguageModel
	prompts *prompts.PromptBuilder
}

func NewIntentClassifier(llm LanguageModel, pb *prompts.PromptBuilder) *IntentClassifier {
	return &IntentClassifier{llm: llm, prompts: pb}
}

// Classify asks the model for the three-field intent JSON and parses it.
// Free-text responses are rejected with a ClassificationError.
func (c *IntentClassifier) Classify(ctx context.Context, question string) (*QueryIntent, error) {
	raw, err := c.llm.Complete(ctx, c.prompts.BuildIntentPrompt(question))
	if err != nil {
		return nil, &ClassificationError{Err: err}
	}

	var intent QueryIntent
	if err := json.Unmarshal([]byte(stripFence(raw)), &intent); err != nil {
		return nil, &ClassificationError{Err: fmt.Errorf("unparseable intent %q: %w", raw, err)}
	}
	switch intent.QueryType {
	case "location_specific", "general", "comparison":
	default:
		return nil, &ClassificationError{Err: fmt.Errorf("unknown query_type %q", intent.QueryType)}
	}
	return &intent, nil
}
