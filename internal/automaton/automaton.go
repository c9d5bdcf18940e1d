package automaton

import "unicode/utf8"

// node is a trie vertex. Children are exclusively owned by their parent; the
// failure link is a lookup-only back-reference and never implies ownership.
type node struct {
	children map[rune]*node
	fail     *node
	outputs  []Output
}

// Output is one complete keyword recognized at a node. Rune length and the
// all-ASCII-letter property are precomputed so the scanner's hot loop never
// re-derives them.
type Output struct {
	Keyword string
	RuneLen int
	Alpha   bool
}

// Automaton is a frozen Aho-Corasick machine over a keyword dictionary.
// Construction is a one-time step; once built, nothing mutates the node
// graph, so a single Automaton serves any number of concurrent searches.
type Automaton struct {
	root *node
	size int
}

// New builds an automaton from the given keywords. Callers pass a
// deduplicated set with empty strings already removed (keywords.Normalize);
// an empty set yields a root-only automaton that matches nothing.
func New(words []string) *Automaton {
	a := &Automaton{root: newNode()}
	for _, w := range words {
		a.insert(w)
	}
	a.link()
	return a
}

// Size returns the number of non-root nodes in the trie.
func (a *Automaton) Size() int { return a.size }

func newNode() *node { return &node{children: make(map[rune]*node)} }

// insert walks or creates the path for one keyword and appends the exact
// keyword string to the terminal node's own output. Keywords sharing a
// prefix share the prefix path; a keyword that is a prefix of another
// terminates at an interior node of the longer one's path.
func (a *Automaton) insert(word string) {
	cur := a.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = newNode()
			cur.children[r] = next
			a.size++
		}
		cur = next
	}
	cur.outputs = append(cur.outputs, Output{
		Keyword: word,
		RuneLen: utf8.RuneCountInString(word),
		Alpha:   asciiAlpha(word),
	})
}

// link assigns failure links breadth-first and folds each link target's
// finalized output into the node's own. Processing shallower nodes first is
// load-bearing: it guarantees a node's failure target is finished before the
// node inherits from it.
func (a *Automaton) link() {
	a.root.fail = a.root
	queue := make([]*node, 0, a.size)
	for _, child := range a.root.children {
		child.fail = a.root
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for r, child := range cur.children {
			f := cur.fail
			for f != a.root && f.children[r] == nil {
				f = f.fail
			}
			if next := f.children[r]; next != nil && next != child {
				child.fail = next
			} else {
				child.fail = a.root
			}
			child.outputs = append(child.outputs, child.fail.outputs...)
			queue = append(queue, child)
		}
	}
}

func asciiAlpha(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
