// Package match implements the scanning pass: one traversal of the input
// interleaving skip-zone tracking with automaton transitions and whole-word
// filtering. It holds no state between calls; everything mutable lives on
// the call stack, so searches over one automaton can run concurrently.
package match
