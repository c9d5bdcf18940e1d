package types

// Match describes a single keyword occurrence in scanned text. Start and End
// are 0-based rune offsets into the input; End is inclusive and addresses the
// last rune of the occurrence. A Match is a plain value with no reference
// back to the automaton or the text it was found in.
type Match struct {
	Keyword string `json:"keyword"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}
