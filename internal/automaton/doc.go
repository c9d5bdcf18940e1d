// Package automaton builds the Aho-Corasick machine notelink matches with.
// Construction inserts every keyword into a trie, then a breadth-first pass
// attaches failure links and folds inherited outputs. The result is frozen;
// searches advance a per-call Cursor and never mutate the machine.
package automaton
