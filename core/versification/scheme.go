// Package versification describes how a textual tradition divides each book
// into chapters and verses, validates references against that division and
// expands ranges into individual verses.
package versification

import (
	"sort"

	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// BookCounts lists the number of verses in each chapter of one book.
// Verses[0] is chapter 1.
type BookCounts struct {
	Book   ref.BookCode
	Verses []int
}

// Scheme is one versification system. It is immutable after New returns and
// safe for concurrent use.
type Scheme struct {
	name    string
	books   []ref.BookCode
	counts  map[ref.BookCode][]int
	omitted map[ref.Reference]struct{}
}

// New builds a scheme. Every chapter must have at least one verse, and every
// omitted verse must fall inside its chapter.
func New(name string, counts []BookCounts, omitted []ref.Reference) (*Scheme, error) {
	s := &Scheme{
		name:    name,
		counts:  make(map[ref.BookCode][]int, len(counts)),
		omitted: make(map[ref.Reference]struct{}, len(omitted)),
	}
	for _, bc := range counts {
		if !bc.Book.Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "%s: malformed book code %q", name, bc.Book)
		}
		if _, dup := s.counts[bc.Book]; dup {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "%s: book %s listed twice", name, bc.Book)
		}
		if len(bc.Verses) == 0 {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "%s: book %s has no chapters", name, bc.Book)
		}
		for i, n := range bc.Verses {
			if n < 1 {
				return nil, errors.Wrapf(errors.ErrInvalidInput, "%s: %s %d has %d verses", name, bc.Book, i+1, n)
			}
		}
		s.books = append(s.books, bc.Book)
		s.counts[bc.Book] = append([]int(nil), bc.Verses...)
	}
	for _, r := range omitted {
		n, err := s.NumVerses(r.Book, r.Chapter)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: omitted verse %s", name, r)
		}
		if r.Verse < 1 || r.Verse > n {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "%s: omitted verse %s outside chapter", name, r)
		}
		s.omitted[r.Key()] = struct{}{}
	}
	return s, nil
}

// Name returns the scheme name, e.g. "KJV".
func (s *Scheme) Name() string { return s.name }

// Books returns the book codes in the order the scheme lists them.
func (s *Scheme) Books() []ref.BookCode {
	return append([]ref.BookCode(nil), s.books...)
}

// NumChapters returns the chapter count of book.
func (s *Scheme) NumChapters(book ref.BookCode) (int, error) {
	c, ok := s.counts[book]
	if !ok {
		return 0, errors.NewUnknownBook(s.name, string(book))
	}
	return len(c), nil
}

// NumVerses returns the verse count of one chapter.
func (s *Scheme) NumVerses(book ref.BookCode, chapter int) (int, error) {
	c, ok := s.counts[book]
	if !ok {
		return 0, errors.NewUnknownBook(s.name, string(book))
	}
	if chapter < 1 || chapter > len(c) {
		return 0, errors.NewUnknownChapter(s.name, string(book), chapter)
	}
	return c[chapter-1], nil
}

// IsSingleChapterBook reports whether book has exactly one chapter. Unknown
// books report false.
func (s *Scheme) IsSingleChapterBook(book ref.BookCode) bool {
	return len(s.counts[book]) == 1
}

// IsOmitted reports whether the verse is one the tradition leaves out.
func (s *Scheme) IsOmitted(book ref.BookCode, chapter, verse int) bool {
	_, ok := s.omitted[ref.New(book, chapter, verse)]
	return ok
}

// OmittedVerses returns the omitted verses of book in canonical order.
func (s *Scheme) OmittedVerses(book ref.BookCode) []ref.Reference {
	var out []ref.Reference
	for r := range s.omitted {
		if r.Book == book {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// VerseCounts returns a copy of the per-chapter verse counts of book, or nil.
func (s *Scheme) VerseCounts(book ref.BookCode) []int {
	c, ok := s.counts[book]
	if !ok {
		return nil
	}
	return append([]int(nil), c...)
}

// Check validates r and returns the first problem found, or nil. A reference
// with verse 0 names the whole chapter and only needs the chapter to exist.
// Negative verses are always invalid.
func (s *Scheme) Check(r ref.Reference) *errors.Diagnostic {
	var d errors.Diagnostic
	c, ok := s.counts[r.Book]
	switch {
	case !ok:
		d = errors.NewDiagnostic(errors.InvalidBook, r.String(),
			"book %s is not in the %s versification", r.Book, s.name)
	case r.Chapter < 1 || r.Chapter > len(c):
		d = errors.NewDiagnostic(errors.InvalidChapter, r.String(),
			"%s has %d chapters", r.Book, len(c))
	case r.Verse == 0:
		return nil
	case r.Verse < 0 || r.Verse > c[r.Chapter-1]:
		d = errors.NewDiagnostic(errors.InvalidVerse, r.String(),
			"%s %d has %d verses", r.Book, r.Chapter, c[r.Chapter-1])
	case s.IsOmitted(r.Book, r.Chapter, r.Verse):
		d = errors.NewDiagnostic(errors.OmittedVerse, r.String(),
			"verse is omitted in the %s versification", s.name)
	default:
		return nil
	}
	return &d
}

// IsValid reports whether r exists in the scheme. A problem is appended to
// report when report is non-nil.
func (s *Scheme) IsValid(r ref.Reference, report *errors.DiagnosticList) bool {
	d := s.Check(r)
	if d == nil {
		return true
	}
	report.Add(*d)
	return false
}
