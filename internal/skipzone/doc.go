// Package skipzone tracks opaque markup regions during a scan: wiki links,
// block references, embeds, fenced code, and markdown image syntax. It knows
// nothing about keywords; the matcher consults it per position to decide
// whether a rune is fed to the automaton at all.
package skipzone
