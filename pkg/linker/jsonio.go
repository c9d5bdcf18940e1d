package linker

import (
	"encoding/json"
	"io"
)

// MarshalMatches pretty-prints matches as JSON for humans or pipelines.
func MarshalMatches(w io.Writer, matches []Match) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

// UnmarshalMatches decodes matches JSON, useful for ingestion tests.
func UnmarshalMatches(r io.Reader) ([]Match, error) {
	var ms []Match
	if err := json.NewDecoder(r).Decode(&ms); err != nil {
		return nil, err
	}
	return ms, nil
}
