// Package linker is the stable public surface of notelink. It finds every
// occurrence of a keyword dictionary inside free-form text in one pass,
// skipping wiki links, block references, embeds, fenced code, and markdown
// images, with optional whole-word filtering for alphabetic keywords.
//
// Example:
//
//	l := linker.New([]string{"Cat", "Dog"})
//	for _, m := range l.Search("The Cat sat, but [[Cat]] stays unlinked.") {
//		fmt.Println(m.Keyword, m.Start, m.End)
//	}
//
// Internal packages do the actual work; this package deliberately re-exports
// a narrow API so hosts can depend on one import path.
package linker
