package osis

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/bibleref/core/books"
	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// listGrammar is the participle grammar for OSIS reference lists.
// Examples: "Gen.1", "Matt.7.3a", "Gen.1.1-Gen.2.3", "Matt.5.3-12",
// "Gen.1 Exod.2; Rev.1.1"
//
//nolint:govet // participle grammar tags are not standard struct tags
type listGrammar struct {
	Entries []*entryGrammar `parser:"@@ ( Sep @@ )*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type entryGrammar struct {
	Start *idGrammar  `parser:"@@"`
	End   *endGrammar `parser:"( \"-\" @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type endGrammar struct {
	ID    *idGrammar `parser:"  @@"`
	Verse *int       `parser:"| @Int"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type idGrammar struct {
	BookPrefix string       `parser:"@Int?"`
	BookName   string       `parser:"@Ident"`
	ChapterRef *chapterPart `parser:"( \".\" @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterPart struct {
	Chapter  int        `parser:"@Int"`
	VerseRef *versePart `parser:"( \".\" @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Verse    int     `parser:"@Int"`
	SubVerse *string `parser:"@SubVerse?"`
}

// listLexer tokenises OSIS ids. Book names start with an uppercase letter,
// which keeps them apart from single lowercase suffix letters. Whitespace is
// significant: it separates "Matt.5.3-12 Gen.1" from "Matt.5.3-12Gen.1".
var listLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Z][A-Za-z]*`},
	{Name: "SubVerse", Pattern: `[a-z]`},
	{Name: "Punct", Pattern: `[.\-]`},
	{Name: "Sep", Pattern: `\s*[;,]\s*|\s+`},
})

var listParser = participle.MustBuild[listGrammar](
	participle.Lexer(listLexer),
	participle.UseLookahead(3),
)

// Parse reads a list of OSIS ids separated by whitespace, ';' or ','. Book
// ids are mapped to book codes through resolver. Every id must name at least
// a chapter.
func Parse(s string, resolver books.Resolver) ([]ref.Item, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errors.NewParse("OSIS", s, "empty reference list")
	}
	parsed, err := listParser.ParseString("", trimmed)
	if err != nil {
		return nil, &errors.ParseError{Format: "OSIS", Input: s, Message: err.Error(), Err: err}
	}

	items := make([]ref.Item, 0, len(parsed.Entries))
	for _, e := range parsed.Entries {
		start, err := e.Start.reference(s, resolver)
		if err != nil {
			return nil, err
		}
		switch {
		case e.End == nil:
			items = append(items, start)
		case e.End.Verse != nil:
			if start.Verse == 0 {
				return nil, errors.NewParse("OSIS", s, "verse range end without a start verse")
			}
			if *e.End.Verse < 1 {
				return nil, errors.NewParse("OSIS", s, "verse numbers start at 1")
			}
			end := ref.New(start.Book, start.Chapter, *e.End.Verse)
			items = append(items, ref.NewRange(start, end))
		default:
			end, err := e.End.ID.reference(s, resolver)
			if err != nil {
				return nil, err
			}
			items = append(items, ref.NewRange(start, end))
		}
	}
	return items, nil
}

func (g *idGrammar) reference(input string, resolver books.Resolver) (ref.Reference, error) {
	id := g.BookPrefix + g.BookName
	book, ok := resolver.ResolveBook(id)
	if !ok {
		return ref.Reference{}, &errors.ParseError{
			Format:  "OSIS",
			Input:   input,
			Message: "unknown book " + id,
			Err:     errors.ErrUnknownBook,
		}
	}
	if g.ChapterRef == nil {
		return ref.Reference{}, errors.NewParse("OSIS", input, "whole-book reference "+id+" is not supported")
	}
	if g.ChapterRef.Chapter < 1 {
		return ref.Reference{}, errors.NewParse("OSIS", input, "chapter numbers start at 1")
	}
	r := ref.Chapter(book, g.ChapterRef.Chapter)
	if v := g.ChapterRef.VerseRef; v != nil {
		if v.Verse < 1 {
			return ref.Reference{}, errors.NewParse("OSIS", input, "verse numbers start at 1")
		}
		r.Verse = v.Verse
		if v.SubVerse != nil {
			r.Suffix = *v.SubVerse
		}
	}
	return r, nil
}
