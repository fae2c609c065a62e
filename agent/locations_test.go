package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nonsonwune/warm_db/stations"
)

func TestResolveNoLocationNeeded(t *testing.T) {
	resolver := NewLocationResolver(stations.Default())
	question := "Show me all stations with temperature above 75"

	intent := &QueryIntent{NeedsLocation: false, QueryType: "general"}
	assert.Equal(t, question, resolver.Resolve(question, intent))
	assert.Equal(t, question, resolver.Resolve(question, nil))
}

func TestResolveAnnotatesKnownLocation(t *testing.T) {
	resolver := NewLocationResolver(stations.Default())

	got := resolver.Resolve("What's the temperature in Champaign?", &QueryIntent{
		NeedsLocation: true,
		LocationTerms: []string{"Champaign"},
		QueryType:     "location_specific",
	})

	// The question body is lower-cased by the rewrite; the inserted
	// annotation keeps the term's casing from the intent.
	assert.Equal(t, "what's the temperature in Champaign (Station: CMI)?", got)
}

func TestResolveMultipleTerms(t *testing.T) {
	resolver := NewLocationResolver(stations.Default())

	got := resolver.Resolve("Compare rainfall between Peoria and Springfield", &QueryIntent{
		NeedsLocation: true,
		LocationTerms: []string{"Peoria", "Springfield"},
		QueryType:     "comparison",
	})

	// Each rewrite lower-cases the whole question first, so every
	// annotation except the last one comes out lower case.
	assert.Equal(t, "compare rainfall between peoria (station: icc) and Springfield (Station: LLC)", got)
}

func TestResolveLeavesUnmappedTermAlone(t *testing.T) {
	resolver := NewLocationResolver(stations.Default())

	got := resolver.Resolve("What's the rainfall in Chicago?", &QueryIntent{
		NeedsLocation: true,
		LocationTerms: []string{"Chicago"},
		QueryType:     "location_specific",
	})

	// Unmapped locations resolve silently to nothing; the question is
	// returned unchanged, not even lower-cased.
	assert.Equal(t, "What's the rainfall in Chicago?", got)
	assert.NotContains(t, got, "Station:")
}

func TestResolveMixedMappedAndUnmapped(t *testing.T) {
	resolver := NewLocationResolver(stations.Default())

	got := resolver.Resolve("Compare Champaign and Chicago", &QueryIntent{
		NeedsLocation: true,
		LocationTerms: []string{"Champaign", "Chicago"},
		QueryType:     "comparison",
	})

	assert.Contains(t, got, "Champaign (Station: CMI)")
	assert.Contains(t, got, "chicago")
	assert.NotContains(t, got, "chicago (")
}

func TestResolveAlreadyAnnotated(t *testing.T) {
	resolver := NewLocationResolver(stations.Default())
	intent := &QueryIntent{
		NeedsLocation: true,
		LocationTerms: []string{"Champaign"},
		QueryType:     "location_specific",
	}

	first := resolver.Resolve("What's the temperature in Champaign?", intent)
	second := resolver.Resolve(first, intent)

	// Re-resolving annotated text double-annotates: the term match does not
	// skip text that already carries a station annotation. This documents
	// the current behavior; the orchestrator never re-runs the stage, so it
	// is unreachable on the primary path.
	assert.Equal(t, "what's the temperature in Champaign (Station: CMI) (station: cmi)?", second)
}
