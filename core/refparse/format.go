package refparse

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FocuswithJustin/bibleref/core/punctuation"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// Format renders an item in the profile's preferred punctuation, e.g.
// "Mat. 7:3-7", "Gen. 1:3-2:4" or "Jde 7". Books with a single chapter are
// written without it.
func (p *Parser) Format(item ref.Item) string {
	var sb strings.Builder
	rr, ok := item.(ref.Range)
	if !ok {
		p.writeRef(&sb, item.First(), true)
		return sb.String()
	}

	start, end := rr.Start, rr.End
	p.writeRef(&sb, start, true)
	switch {
	case start.Book != end.Book:
		bridge := punctuation.Preferred(p.profile.BookBridgeCharacter)
		if bridge == "" {
			bridge = punctuation.Preferred(p.profile.ChapterBridgeCharacter)
		}
		sb.WriteString(bridge)
		p.writeRef(&sb, end, true)
	case start.Chapter == end.Chapter && start.HasVerse() && end.HasVerse():
		sb.WriteString(punctuation.Preferred(p.profile.VerseBridgeCharacter))
		writeVerse(&sb, end)
	default:
		sb.WriteString(punctuation.Preferred(p.profile.ChapterBridgeCharacter))
		p.writeRef(&sb, end, false)
	}
	return sb.String()
}

func (p *Parser) writeRef(sb *strings.Builder, r ref.Reference, withBook bool) {
	if withBook {
		p.writeBook(sb, r.Book)
	}
	if r.HasVerse() && p.scheme.IsSingleChapterBook(r.Book) {
		writeVerse(sb, r)
		return
	}
	sb.WriteString(strconv.Itoa(r.Chapter))
	if r.HasVerse() {
		sb.WriteString(punctuation.Preferred(p.profile.ChapterVerseSeparator))
		writeVerse(sb, r)
	}
}

func writeVerse(sb *strings.Builder, r ref.Reference) {
	sb.WriteString(strconv.Itoa(r.Verse))
	sb.WriteString(r.Suffix)
}

func (p *Parser) writeBook(sb *strings.Builder, book ref.BookCode) {
	full := p.books.ShortBookName(book)
	name := full
	if p.profile.PreferredLength() != punctuation.LengthFull {
		name = p.books.BookAbbreviation(book)
	}
	switch p.profile.PreferredCase() {
	case punctuation.CaseUpper:
		name = cases.Upper(language.Und).String(name)
	case punctuation.CaseLower:
		name = cases.Lower(language.Und).String(name)
	}
	sb.WriteString(name)

	bcs := punctuation.Preferred(p.profile.BookChapterSeparator)
	after := ""
	if !strings.EqualFold(name, full) {
		after = punctuation.Preferred(p.profile.PunctuationAfterBookAbbreviation)
		sb.WriteString(after)
	}
	if after != bcs {
		sb.WriteString(bcs)
	}
	if bcs != " " && p.profile.SpaceAllowedAfterBCS == punctuation.SpaceRequired {
		sb.WriteString(" ")
	}
}
