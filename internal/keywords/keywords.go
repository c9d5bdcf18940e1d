package keywords

import funk "github.com/thoas/go-funk"

// Normalize applies the filtering the automaton builder expects upstream:
// empty strings are dropped and duplicates collapse to their first
// occurrence. Keywords are kept verbatim otherwise; no case folding or
// unicode normalization happens here.
func Normalize(words []string) []string {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}
	return funk.UniqString(kept)
}
