// Package keywords supplies the matcher's dictionary. Normalize performs the
// upstream filtering the automaton relies on (drop empties, collapse
// duplicates), and Vault derives a dictionary from a directory of markdown
// notes via file names and frontmatter aliases.
package keywords
