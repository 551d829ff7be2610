package models

// CriticalRating classifies how serious a violation is.
type CriticalRating int16

const (
	NotApplicable CriticalRating = iota
	NotCritical
	Critical
)

// criticalRatingSlugs maps normalized rating labels to their rating.
var criticalRatingSlugs = map[string]CriticalRating{
	"not-applicable": NotApplicable,
	"not-critical":   NotCritical,
	"critical":       Critical,
}

// ParseCriticalRating resolves a normalized rating slug.
// Returns false if the slug is not one of the known ratings.
func ParseCriticalRating(slug string) (CriticalRating, bool) {
	r, ok := criticalRatingSlugs[slug]
	return r, ok
}

func (r CriticalRating) String() string {
	switch r {
	case NotApplicable:
		return "NOT_APPLICABLE"
	case NotCritical:
		return "NOT_CRITICAL"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Boro is one of the five New York City boroughs, stored as its slug.
type Boro string

const (
	Bronx        Boro = "bronx"
	Brooklyn     Boro = "brooklyn"
	Manhattan    Boro = "manhattan"
	StatenIsland Boro = "staten-island"
	Queens       Boro = "queens"
)

// Boros lists every borough in display order.
var Boros = []Boro{Bronx, Brooklyn, Manhattan, StatenIsland, Queens}

// ParseBoro resolves a normalized borough slug.
func ParseBoro(slug string) (Boro, bool) {
	for _, b := range Boros {
		if string(b) == slug {
			return b, true
		}
	}
	return "", false
}

func (b Boro) String() string { return string(b) }
