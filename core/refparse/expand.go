package refparse

import "github.com/FocuswithJustin/bibleref/core/ref"

// Expand lists every verse the items cover, in order. Whole chapters expand
// to all their verses. Items that fail validation are skipped.
func (p *Parser) Expand(items []ref.Item) []ref.Reference {
	var out []ref.Reference
	for _, item := range items {
		if verses, ok := p.flatten(item, nil); ok {
			out = append(out, verses...)
		}
	}
	return out
}

// ContainsReference reports whether the items cover a verse. An empty suffix
// matches the verse with any suffix; otherwise an entry matches when it has
// that suffix or none.
func (p *Parser) ContainsReference(items []ref.Item, book ref.BookCode, chapter, verse int, suffix string) bool {
	for _, r := range p.Expand(items) {
		if r.Book != book || r.Chapter != chapter || r.Verse != verse {
			continue
		}
		if suffix == "" || r.Suffix == "" || r.Suffix == suffix {
			return true
		}
	}
	return false
}
