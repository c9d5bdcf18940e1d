package automaton

// Cursor tracks one search's position in the automaton. It is call-local
// state: advancing a cursor never touches the automaton, so independent
// cursors over the same machine are safe to run concurrently.
type Cursor struct {
	a   *Automaton
	cur *node
}

// Cursor returns a cursor positioned at the root.
func (a *Automaton) Cursor() Cursor {
	return Cursor{a: a, cur: a.root}
}

// Advance feeds one rune and returns the outputs recognized at the resulting
// node, each ending at the fed rune. When no edge matches, the cursor chases
// failure links toward the root; from the root with no edge it stays put and
// returns nothing.
func (c *Cursor) Advance(r rune) []Output {
	cur := c.cur
	for cur != c.a.root && cur.children[r] == nil {
		cur = cur.fail
	}
	if next := cur.children[r]; next != nil {
		cur = next
	}
	c.cur = cur
	return cur.outputs
}

// Reset repositions the cursor at the root.
func (c *Cursor) Reset() { c.cur = c.a.root }
