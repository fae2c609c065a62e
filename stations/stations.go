package stations

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog maps canonical upper-case WARM site names to their station codes.
// It is built once at startup and never mutated afterwards.
type Catalog map[string]string

// Default returns the catalog of the twenty Illinois WARM monitoring sites.
func Default() Catalog {
	return Catalog{
		"BELLEVILLE":    "FRM",
		"BIG BEND":      "BBC",
		"BONDVILLE":     "BVL",
		"BROWNSTOWN":    "BRW",
		"CARBONDALE":    "SIU",
		"CHAMPAIGN":     "CMI",
		"DEKALB":        "DEK",
		"DIXON SPRINGS": "DXS",
		"FAIRFIELD":     "FAI",
		"FREEPORT":      "FRE",
		"KILBOURNE":     "SFM",
		"MONMOUTH":      "MON",
		"OLNEY":         "OLN",
		"PEORIA":        "ICC",
		"PERRY":         "ORR",
		"REND LAKE":     "RND",
		"SNICARTE":      "SNI",
		"ST. CHARLES":   "STC",
		"SPRINGFIELD":   "LLC",
		"STELLE":        "STE",
	}
}

// Code looks up the station code for a location name, case-insensitively.
func (c Catalog) Code(location string) (string, bool) {
	code, ok := c[strings.ToUpper(strings.TrimSpace(location))]
	return code, ok
}

// Locations returns all catalog location names in sorted order.
func (c Catalog) Locations() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mappings renders the catalog as "- NAME: CODE" lines for prompt text.
func (c Catalog) Mappings() string {
	var b strings.Builder
	for _, name := range c.Locations() {
		fmt.Fprintf(&b, "- %s: %s\n", name, c[name])
	}
	return strings.TrimRight(b.String(), "\n")
}
