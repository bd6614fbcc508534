// Package ref defines the value types produced by the reference parser:
// book codes, single references and inclusive ranges.
package ref

import (
	"strconv"
	"strings"
)

// BookCode is a canonical three-character uppercase book identifier
// (e.g. "GEN", "CO1", "JDE").
type BookCode string

// Valid reports whether the code has the canonical shape: three characters,
// uppercase letters or digits, at least one letter.
func (b BookCode) Valid() bool {
	if len(b) != 3 {
		return false
	}
	letters := 0
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= 'A' && c <= 'Z':
			letters++
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return letters > 0
}

// Item is either a Reference or a Range. The interface is sealed.
type Item interface {
	// First returns the starting reference (the reference itself for a Reference).
	First() Reference
	// Last returns the ending reference (the reference itself for a Reference).
	Last() Reference
	// IsRange reports whether the item is a Range.
	IsRange() bool

	item()
}

// Reference identifies one verse, or a whole chapter when Verse is zero.
type Reference struct {
	// Book is the canonical book code.
	Book BookCode `json:"book"`

	// Chapter is the chapter number (1-indexed).
	Chapter int `json:"chapter"`

	// Verse is the verse number (1-indexed, 0 for whole-chapter references).
	Verse int `json:"verse,omitempty"`

	// Suffix is an optional single lowercase letter marking part of a verse.
	Suffix string `json:"suffix,omitempty"`
}

// New returns a verse reference without a suffix.
func New(book BookCode, chapter, verse int) Reference {
	return Reference{Book: book, Chapter: chapter, Verse: verse}
}

// Chapter returns a whole-chapter reference.
func Chapter(book BookCode, chapter int) Reference {
	return Reference{Book: book, Chapter: chapter}
}

// HasVerse reports whether the reference names a verse rather than a chapter.
func (r Reference) HasVerse() bool {
	return r.Verse > 0
}

// WithSuffix returns a copy of r carrying suffix.
func (r Reference) WithSuffix(suffix string) Reference {
	r.Suffix = suffix
	return r
}

// Key returns r without its suffix, for membership tests.
func (r Reference) Key() Reference {
	r.Suffix = ""
	return r
}

// String renders the reference with its book code, e.g. "MAT.7.3a" or "GEN.1".
func (r Reference) String() string {
	var sb strings.Builder
	sb.WriteString(string(r.Book))
	sb.WriteString(".")
	sb.WriteString(strconv.Itoa(r.Chapter))
	if r.Verse > 0 {
		sb.WriteString(".")
		sb.WriteString(strconv.Itoa(r.Verse))
		sb.WriteString(r.Suffix)
	}
	return sb.String()
}

// Compare orders two references in the same book by chapter, then verse,
// then suffix. It returns -1, 0 or +1. Book order is not considered.
func (r Reference) Compare(other Reference) int {
	switch {
	case r.Chapter != other.Chapter:
		return sign(r.Chapter - other.Chapter)
	case r.Verse != other.Verse:
		return sign(r.Verse - other.Verse)
	default:
		return strings.Compare(r.Suffix, other.Suffix)
	}
}

func (r Reference) First() Reference { return r }
func (r Reference) Last() Reference  { return r }
func (r Reference) IsRange() bool    { return false }
func (Reference) item()              {}

// Range is an inclusive span between two references.
type Range struct {
	// Start is the beginning of the range.
	Start Reference `json:"start"`

	// End is the end of the range.
	End Reference `json:"end"`
}

// NewRange returns the range from start to end.
func NewRange(start, end Reference) Range {
	return Range{Start: start, End: end}
}

// SpansBooks reports whether the endpoints are in different books.
func (rr Range) SpansBooks() bool {
	return rr.Start.Book != rr.End.Book
}

// String renders the range as "START-END" using Reference.String.
func (rr Range) String() string {
	return rr.Start.String() + "-" + rr.End.String()
}

func (rr Range) First() Reference { return rr.Start }
func (rr Range) Last() Reference  { return rr.End }
func (rr Range) IsRange() bool    { return true }
func (Range) item()               {}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
