package match

import (
	"github.com/notelink/notelink/internal/automaton"
	"github.com/notelink/notelink/internal/skipzone"
	"github.com/notelink/notelink/internal/types"
)

// Search runs one left-to-right pass over text and returns every keyword
// occurrence in discovery order. An occurrence ending at a position is
// reported exact-node keyword first, inherited suffix keywords after; no
// deduplication or overlap suppression is applied.
//
// With wholeWord set, keywords made entirely of ASCII letters are reported
// only when both neighbors are boundaries; all other keywords are
// substring-matched regardless of the flag.
func Search(a *automaton.Automaton, text string, wholeWord bool) []types.Match {
	runes := []rune(text)
	cursor := a.Cursor()
	var zones skipzone.Tracker
	var out []types.Match

	for i := 0; i < len(runes); {
		if next, skipped := zones.Absorb(runes, i); skipped {
			i = next
			continue
		}
		for _, o := range cursor.Advance(runes[i]) {
			start := i - o.RuneLen + 1
			if wholeWord && o.Alpha && !bounded(runes, start, i) {
				continue
			}
			out = append(out, types.Match{Keyword: o.Keyword, Start: start, End: i})
		}
		i++
	}
	return out
}

// bounded reports whether both runes adjacent to [start, end] are word
// boundaries. A boundary is the text's edge or any rune that is not an
// ASCII letter; digits, punctuation, whitespace, and non-ASCII scripts all
// qualify.
func bounded(runes []rune, start, end int) bool {
	if start > 0 && asciiLetter(runes[start-1]) {
		return false
	}
	if end+1 < len(runes) && asciiLetter(runes[end+1]) {
		return false
	}
	return true
}

func asciiLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
