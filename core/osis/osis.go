// Package osis renders parsed references as OSIS reference strings and reads
// such strings back.
package osis

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/bibleref/core/books"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// FormatRef renders one reference: "Matt.7.3", "Matt.7.3a" or "Gen.1".
func FormatRef(r books.Resolver, x ref.Reference) string {
	var sb strings.Builder
	writeRef(&sb, r, x, x.Verse)
	return sb.String()
}

func writeRef(sb *strings.Builder, r books.Resolver, x ref.Reference, verse int) {
	sb.WriteString(r.OSISAbbreviation(x.Book))
	sb.WriteString(".")
	sb.WriteString(strconv.Itoa(x.Chapter))
	if verse > 0 {
		sb.WriteString(".")
		sb.WriteString(strconv.Itoa(verse))
		sb.WriteString(x.Suffix)
	}
}

// FormatItem renders a reference or a range. Both ends of a range are fully
// qualified. When only the end of a range names a verse, the start is taken
// to be verse 1 of its chapter.
func FormatItem(r books.Resolver, item ref.Item) string {
	rr, ok := item.(ref.Range)
	if !ok {
		return FormatRef(r, item.First())
	}
	startVerse := rr.Start.Verse
	if startVerse == 0 && rr.End.Verse > 0 {
		startVerse = 1
	}
	var sb strings.Builder
	writeRef(&sb, r, rr.Start, startVerse)
	sb.WriteString("-")
	writeRef(&sb, r, rr.End, rr.End.Verse)
	return sb.String()
}

// Format renders items joined by separator.
func Format(r books.Resolver, items []ref.Item, separator string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = FormatItem(r, item)
	}
	return strings.Join(parts, separator)
}
