// Package books resolves human-written book names and abbreviations to
// canonical book codes, and supplies the display names used when references
// are rendered again.
package books

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// Resolver is the book-code collaborator consumed by the parser and the
// OSIS serializer.
type Resolver interface {
	// ResolveBook maps a name or abbreviation to a book code.
	ResolveBook(nameOrAbbrev string) (ref.BookCode, bool)
	// ShortBookName returns the usual full name ("Matthew").
	ShortBookName(book ref.BookCode) string
	// BookAbbreviation returns the preferred abbreviation ("Mat").
	BookAbbreviation(book ref.BookCode) string
	// OSISAbbreviation returns the OSIS book id ("Matt").
	OSISAbbreviation(book ref.BookCode) string
	// IsValidReferenceAbbreviation reports whether the code is known.
	IsValidReferenceAbbreviation(book ref.BookCode) bool
}

// Book describes one book and the spellings that resolve to it.
type Book struct {
	Code   ref.BookCode
	OSIS   string
	Name   string
	Abbrev string
	// Inputs are further accepted spellings beyond Code, OSIS, Name and Abbrev.
	Inputs []string
}

// minPrefix is the shortest name prefix accepted as an abbreviation.
const minPrefix = 3

// Table is a Resolver backed by an in-memory list of books. It is immutable
// once built and safe for concurrent use.
type Table struct {
	books  []Book
	byCode map[ref.BookCode]int
	exact  map[string]ref.BookCode
	prefix map[string]ref.BookCode // empty code marks an ambiguous prefix
}

// NewTable indexes books. Two books claiming the same exact spelling is an error.
func NewTable(books []Book) (*Table, error) {
	t := &Table{
		books:  append([]Book(nil), books...),
		byCode: make(map[ref.BookCode]int, len(books)),
		exact:  make(map[string]ref.BookCode),
		prefix: make(map[string]ref.BookCode),
	}
	for i, b := range t.books {
		if !b.Code.Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "book %d: malformed code %q", i, b.Code)
		}
		if _, dup := t.byCode[b.Code]; dup {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "book %d: duplicate code %s", i, b.Code)
		}
		t.byCode[b.Code] = i

		spellings := append([]string{string(b.Code), b.OSIS, b.Name, b.Abbrev}, b.Inputs...)
		for _, s := range spellings {
			key := t.key(s)
			if key == "" {
				continue
			}
			if other, ok := t.exact[key]; ok && other != b.Code {
				return nil, errors.Wrapf(errors.ErrInvalidInput, "spelling %q claimed by both %s and %s", s, other, b.Code)
			}
			t.exact[key] = b.Code
		}
	}

	// Prefixes are indexed after all exact spellings so that exact matches win.
	for _, b := range t.books {
		name := []rune(t.key(b.Name))
		for n := minPrefix; n <= len(name); n++ {
			p := string(name[:n])
			if other, ok := t.prefix[p]; ok && other != b.Code {
				t.prefix[p] = ""
				continue
			}
			t.prefix[p] = b.Code
		}
	}
	return t, nil
}

// key normalises a spelling: NFC, case folded, spaces and trailing periods removed.
func (t *Table) key(s string) string {
	s = norm.NFC.String(s)
	s = strings.TrimRight(s, ".")
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	// A Caser carries state, so each call gets its own.
	return cases.Fold().String(s)
}

// ResolveBook implements Resolver. Exact spellings are tried first, then
// unambiguous name prefixes of at least three characters.
func (t *Table) ResolveBook(nameOrAbbrev string) (ref.BookCode, bool) {
	k := t.key(nameOrAbbrev)
	if k == "" {
		return "", false
	}
	if code, ok := t.exact[k]; ok {
		return code, true
	}
	if code, ok := t.prefix[k]; ok && code != "" {
		return code, true
	}
	return "", false
}

func (t *Table) lookup(book ref.BookCode) (Book, bool) {
	i, ok := t.byCode[book]
	if !ok {
		return Book{}, false
	}
	return t.books[i], true
}

// ShortBookName implements Resolver. Unknown codes return the code itself.
func (t *Table) ShortBookName(book ref.BookCode) string {
	if b, ok := t.lookup(book); ok {
		return b.Name
	}
	return string(book)
}

// BookAbbreviation implements Resolver. Unknown codes return the code itself.
func (t *Table) BookAbbreviation(book ref.BookCode) string {
	if b, ok := t.lookup(book); ok && b.Abbrev != "" {
		return b.Abbrev
	}
	return string(book)
}

// OSISAbbreviation implements Resolver. Unknown codes fall back to the code
// with only its first letter capitalised ("XYZ" -> "Xyz").
func (t *Table) OSISAbbreviation(book ref.BookCode) string {
	if b, ok := t.lookup(book); ok && b.OSIS != "" {
		return b.OSIS
	}
	s := string(book)
	if len(s) < 2 {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

// IsValidReferenceAbbreviation implements Resolver.
func (t *Table) IsValidReferenceAbbreviation(book ref.BookCode) bool {
	_, ok := t.byCode[book]
	return ok
}

// Books returns the books in table order.
func (t *Table) Books() []Book {
	return append([]Book(nil), t.books...)
}

var english = mustTable(englishBooks)

// English returns the built-in English resolver.
func English() *Table {
	return english
}

func mustTable(books []Book) *Table {
	t, err := NewTable(books)
	if err != nil {
		panic(err)
	}
	return t
}
