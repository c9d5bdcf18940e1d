package skipzone

// delimiter is one symmetric markup pair whose contents are opaque to
// keyword matching.
type delimiter struct {
	open  []rune
	close []rune
}

// pairs is checked in this order; the order only matters when several
// openers could start at the same position, and is kept for compatibility.
var pairs = []delimiter{
	{open: []rune("[["), close: []rune("]]")},
	{open: []rune("(("), close: []rune("))")},
	{open: []rune("{{"), close: []rune("}}")},
	{open: []rune("```"), close: []rune("```")},
}

var (
	imageOpen  = []rune("![")
	closeParen = []rune(")")
)

type state int

const (
	scanning state = iota
	inZone
)

// Tracker is the per-search skip-zone state machine: either scanning, or
// inside a zone awaiting a specific terminator. The zero value is ready to
// use and starts in the scanning state.
type Tracker struct {
	st   state
	term []rune
}

// Inside reports whether the tracker is currently inside a zone.
func (t *Tracker) Inside() bool { return t.st == inZone }

// Absorb examines text[i]. When the position is consumed by markup skipping
// (a zone opener, zone interior, or terminator) it returns the index of the
// next position to examine and true. Otherwise it returns i and false, and
// the caller feeds text[i] to the matcher.
func (t *Tracker) Absorb(text []rune, i int) (int, bool) {
	if t.st == inZone {
		if hasPrefix(text, i, t.term) {
			next := i + len(t.term)
			t.st = scanning
			t.term = nil
			return next, true
		}
		return i + 1, true
	}
	for _, d := range pairs {
		if !hasPrefix(text, i, d.open) {
			continue
		}
		// A pair only opens a zone when its closer exists ahead; otherwise
		// the opener degrades to plain text and stays matchable.
		if index(text, i+len(d.open), d.close) < 0 {
			continue
		}
		t.st = inZone
		t.term = d.close
		return i + len(d.open), true
	}
	if hasPrefix(text, i, imageOpen) {
		j := indexRune(text, i+len(imageOpen), ']')
		if j >= 0 && j+1 < len(text) && text[j+1] == '(' && indexRune(text, j+2, ')') >= 0 {
			// Alt text and URL are both zone interior; nothing between the
			// "![" and the ")" reaches the matcher.
			t.st = inZone
			t.term = closeParen
			return i + len(imageOpen), true
		}
	}
	return i, false
}

func hasPrefix(text []rune, i int, pat []rune) bool {
	if i+len(pat) > len(text) {
		return false
	}
	for k, r := range pat {
		if text[i+k] != r {
			return false
		}
	}
	return true
}

// index returns the first position at or after from where pat occurs, or -1.
func index(text []rune, from int, pat []rune) int {
	for i := from; i+len(pat) <= len(text); i++ {
		if hasPrefix(text, i, pat) {
			return i
		}
	}
	return -1
}

func indexRune(text []rune, from int, r rune) int {
	for i := from; i < len(text); i++ {
		if text[i] == r {
			return i
		}
	}
	return -1
}
