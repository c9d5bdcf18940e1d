package automaton

import "testing"

// outputsAt feeds text through a fresh cursor and returns the outputs
// recognized at each rune position.
func outputsAt(a *Automaton, text string) [][]Output {
	c := a.Cursor()
	var all [][]Output
	for _, r := range text {
		out := c.Advance(r)
		all = append(all, out)
	}
	return all
}

func TestSharedPrefixPaths(t *testing.T) {
	a := New([]string{"ant", "anchor"})
	// "an" is shared, then the paths split: a-n plus t plus c-h-o-r.
	if got := a.Size(); got != 7 {
		t.Fatalf("expected 7 nodes, got %d", got)
	}
}

func TestPrefixKeywordsTerminateOnOnePath(t *testing.T) {
	a := New([]string{"in", "inn", "inner"})
	if got := a.Size(); got != 5 {
		t.Fatalf("expected 5 nodes, got %d", got)
	}
	all := outputsAt(a, "inner")
	for i, want := range []int{0, 1, 1, 0, 1} {
		if len(all[i]) != want {
			t.Fatalf("position %d: expected %d outputs, got %d", i, want, len(all[i]))
		}
	}
}

func TestInheritedSuffixOutputs(t *testing.T) {
	a := New([]string{"he", "she", "his", "hers"})
	all := outputsAt(a, "ushers")
	// At 'e' (index 3) the cursor sits on the "she" node; its output carries
	// the exact-node keyword first, then the inherited suffix.
	got := all[3]
	if len(got) != 2 || got[0].Keyword != "she" || got[1].Keyword != "he" {
		t.Fatalf("expected [she he] at index 3, got %v", got)
	}
	if len(all[5]) != 1 || all[5][0].Keyword != "hers" {
		t.Fatalf("expected [hers] at index 5, got %v", all[5])
	}
}

func TestEmptyDictionaryMatchesNothing(t *testing.T) {
	a := New(nil)
	if a.Size() != 0 {
		t.Fatalf("expected root-only automaton, got %d nodes", a.Size())
	}
	for _, out := range outputsAt(a, "any text at all") {
		if len(out) != 0 {
			t.Fatalf("root-only automaton produced outputs: %v", out)
		}
	}
}

func TestOutputPrecomputedFields(t *testing.T) {
	a := New([]string{"héllo", "plain"})
	byKeyword := map[string]Output{}
	c := a.Cursor()
	for _, text := range []string{"héllo", "plain"} {
		c.Reset()
		for _, r := range text {
			for _, o := range c.Advance(r) {
				byKeyword[o.Keyword] = o
			}
		}
	}
	h := byKeyword["héllo"]
	if h.RuneLen != 5 || h.Alpha {
		t.Fatalf("héllo: RuneLen=%d Alpha=%v", h.RuneLen, h.Alpha)
	}
	p := byKeyword["plain"]
	if p.RuneLen != 5 || !p.Alpha {
		t.Fatalf("plain: RuneLen=%d Alpha=%v", p.RuneLen, p.Alpha)
	}
}

func TestCursorReset(t *testing.T) {
	a := New([]string{"ab"})
	c := a.Cursor()
	c.Advance('a')
	c.Reset()
	if out := c.Advance('b'); len(out) != 0 {
		t.Fatalf("reset cursor matched across the reset: %v", out)
	}
}
