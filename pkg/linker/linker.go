package linker

import (
	"fmt"

	"github.com/notelink/notelink/internal/automaton"
	"github.com/notelink/notelink/internal/cache"
	"github.com/notelink/notelink/internal/config"
	"github.com/notelink/notelink/internal/keywords"
	"github.com/notelink/notelink/internal/match"
	"github.com/notelink/notelink/internal/types"
)

// Match is re-exported as a type alias so external consumers depend on a
// stable import path without reaching into internal packages.
type Match = types.Match

// Options control a single search call.
type Options struct {
	// WholeWord restricts keywords made entirely of ASCII letters to
	// whole-word occurrences. Keywords containing anything else are always
	// substring-matched, whatever this is set to.
	WholeWord bool
}

// DefaultOptions enables whole-word filtering, the common case for linking
// prose.
func DefaultOptions() Options { return Options{WholeWord: true} }

// Linker is an immutable multi-keyword matcher. Building one is a one-time
// cost; afterwards any number of Search calls may run concurrently against
// it.
type Linker struct {
	a    *automaton.Automaton
	opts Options
}

// New builds a Linker from raw keywords. Empty strings are dropped and
// duplicates collapse to their first occurrence before construction. An
// empty dictionary is fine: every search simply returns nothing.
func New(words []string) *Linker {
	return &Linker{
		a:    automaton.New(keywords.Normalize(words)),
		opts: DefaultOptions(),
	}
}

// store memoizes vault-derived automata process-wide so repeated FromVault
// calls over an unchanged dictionary skip reconstruction.
var store = cache.New()

// FromVault derives the dictionary from the markdown notes under root
// (file names plus frontmatter aliases), honoring a vault-local
// .notelink.yml when present.
func FromVault(root string) (*Linker, error) {
	cfg, err := config.LoadLocal(root)
	if err != nil {
		cfg = config.FileConfig{}
	}
	words, err := cfg.Vault(root).Collect()
	if err != nil {
		return nil, fmt.Errorf("collect keywords: %w", err)
	}
	return &Linker{
		a:    store.Get(words),
		opts: Options{WholeWord: cfg.WholeWordDefault()},
	}, nil
}

// Search scans text with the linker's default options and returns every
// keyword occurrence in discovery order, with 0-based inclusive rune
// offsets. The input is never mutated and repeated calls are identical.
func (l *Linker) Search(text string) []Match {
	return match.Search(l.a, text, l.opts.WholeWord)
}

// SearchWith scans text with explicit per-call options.
func (l *Linker) SearchWith(text string, opts Options) []Match {
	return match.Search(l.a, text, opts.WholeWord)
}
