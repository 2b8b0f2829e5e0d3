package model

// USStates holds the two-letter codes accepted for a venue or artist
// state, including DC.
var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var stateSet = func() map[string]bool {
	m := make(map[string]bool, len(USStates))
	for _, s := range USStates {
		m[s] = true
	}
	return m
}()

// IsValidState reports whether s is one of USStates.
func IsValidState(s string) bool {
	return stateSet[s]
}
