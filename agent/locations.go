package agent

import (
	"fmt"
	"strings"

	"github.com/nonsonwune/warm_db/stations"
)

// LocationResolver annotates recognized location mentions in a question with
// their station codes so the synthesizer does not have to guess them.
type LocationResolver struct {
	catalog stations.Catalog
}

func NewLocationResolver(catalog stations.Catalog) *LocationResolver {
	return &LocationResolver{catalog: catalog}
}

// Resolve rewrites every catalog location mentioned in the intent to
// "<term> (Station: <code>)". The rewrite lower-cases the question before
// each replacement, so everything except the most recently inserted
// annotation comes out lower case. Terms missing from the catalog are left
// untouched; no nearest-station substitution happens even though the system
// prompt promises one.
func (r *LocationResolver) Resolve(question string, intent *QueryIntent) string {
	if intent == nil || !intent.NeedsLocation {
		return question
	}

	for _, term := range intent.LocationTerms {
		code, ok := r.catalog.Code(term)
		if !ok {
			continue
		}
		question = strings.ReplaceAll(
			strings.ToLower(question),
			strings.ToLower(term),
			fmt.Sprintf("%s (Station: %s)", term, code),
		)
	}
	return question
}
