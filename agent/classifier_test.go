package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonsonwune/warm_db/agent/prompts"
	"github.com/nonsonwune/warm_db/stations"
)

// fakeLLM replays canned responses in call order and records the prompts it
// was given.
type fakeLLM struct {
	responses []string
	errs      []error
	prompts   []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", fmt.Errorf("unexpected model call %d", i)
}

func testPrompts() *prompts.PromptBuilder {
	return prompts.NewPromptBuilder(stations.Default().Mappings())
}

func TestClassify(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"needs_location": true, "location_terms": ["Champaign"], "query_type": "location_specific"}`,
	}}
	classifier := NewIntentClassifier(llm, testPrompts())

	intent, err := classifier.Classify(context.Background(), "What's the temperature in Champaign?")
	require.NoError(t, err)
	assert.True(t, intent.NeedsLocation)
	assert.Equal(t, []string{"Champaign"}, intent.LocationTerms)
	assert.Equal(t, "location_specific", intent.QueryType)

	require.Len(t, llm.prompts, 1, "exactly one model call per classification")
	assert.Contains(t, llm.prompts[0], "What's the temperature in Champaign?")
}

func TestClassifyStripsFence(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		"```json\n{\"needs_location\": false, \"location_terms\": [], \"query_type\": \"general\"}\n```",
	}}
	classifier := NewIntentClassifier(llm, testPrompts())

	intent, err := classifier.Classify(context.Background(), "Show me all stations")
	require.NoError(t, err)
	assert.False(t, intent.NeedsLocation)
	assert.Equal(t, "general", intent.QueryType)
}

func TestClassifyModelError(t *testing.T) {
	llm := &fakeLLM{errs: []error{errors.New("rate limited")}}
	classifier := NewIntentClassifier(llm, testPrompts())

	_, err := classifier.Classify(context.Background(), "anything")
	var classErr *ClassificationError
	require.ErrorAs(t, err, &classErr)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClassifyRejectsFreeText(t *testing.T) {
	llm := &fakeLLM{responses: []string{"Sure! This question is about Champaign."}}
	classifier := NewIntentClassifier(llm, testPrompts())

	_, err := classifier.Classify(context.Background(), "anything")
	var classErr *ClassificationError
	require.ErrorAs(t, err, &classErr)
}

func TestClassifyRejectsUnknownQueryType(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"needs_location": false, "location_terms": [], "query_type": "chitchat"}`,
	}}
	classifier := NewIntentClassifier(llm, testPrompts())

	_, err := classifier.Classify(context.Background(), "anything")
	var classErr *ClassificationError
	require.ErrorAs(t, err, &classErr)
}
