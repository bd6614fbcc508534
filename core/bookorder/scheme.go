// Package bookorder defines the canonical order of books within a canon.
package bookorder

import (
	"fmt"
	"sort"

	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// Scheme is an ordered list of books. It is immutable and safe for
// concurrent use.
type Scheme struct {
	name     string
	books    []ref.BookCode
	position map[ref.BookCode]int
}

// New builds a scheme from books in canon order.
func New(name string, books []ref.BookCode) (*Scheme, error) {
	s := &Scheme{
		name:     name,
		books:    append([]ref.BookCode(nil), books...),
		position: make(map[ref.BookCode]int, len(books)),
	}
	for i, b := range s.books {
		if !b.Valid() {
			return nil, fmt.Errorf("%s: malformed book code %q", name, b)
		}
		if _, dup := s.position[b]; dup {
			return nil, fmt.Errorf("%s: book %s listed twice", name, b)
		}
		s.position[b] = i + 1
	}
	return s, nil
}

// Name returns the scheme name.
func (s *Scheme) Name() string { return s.name }

// Len returns the number of books.
func (s *Scheme) Len() int { return len(s.books) }

// Books returns the books in order.
func (s *Scheme) Books() []ref.BookCode {
	return append([]ref.BookCode(nil), s.books...)
}

// Contains reports whether book is part of the canon.
func (s *Scheme) Contains(book ref.BookCode) bool {
	_, ok := s.position[book]
	return ok
}

// Position returns the 1-based position of book.
func (s *Scheme) Position(book ref.BookCode) (int, error) {
	p, ok := s.position[book]
	if !ok {
		return 0, errors.NewUnknownBook(s.name, string(book))
	}
	return p, nil
}

// BookAt returns the book at a 1-based position.
func (s *Scheme) BookAt(pos int) (ref.BookCode, bool) {
	if pos < 1 || pos > len(s.books) {
		return "", false
	}
	return s.books[pos-1], true
}

// CorrectlyOrdered reports whether b1 comes strictly before b2. It is false
// when either book is not in the scheme.
func (s *Scheme) CorrectlyOrdered(b1, b2 ref.BookCode) bool {
	p1, ok1 := s.position[b1]
	p2, ok2 := s.position[b2]
	return ok1 && ok2 && p1 < p2
}

// NextBook returns the book following book, or false if book is last or
// unknown.
func (s *Scheme) NextBook(book ref.BookCode) (ref.BookCode, bool) {
	p, ok := s.position[book]
	if !ok {
		return "", false
	}
	return s.BookAt(p + 1)
}

// Built-in scheme names.
const (
	EuropeanProtestantBible        = "EuropeanProtestantBible"
	EuropeanProtestantOldTestament = "EuropeanProtestantOldTestament"
	EuropeanProtestantNewTestament = "EuropeanProtestantNewTestament"
	VulgateBible                   = "VulgateBible"
)

var builtins = map[string]*Scheme{
	EuropeanProtestantBible:        mustNew(EuropeanProtestantBible, concat(protestantOT, newTestament)),
	EuropeanProtestantOldTestament: mustNew(EuropeanProtestantOldTestament, protestantOT),
	EuropeanProtestantNewTestament: mustNew(EuropeanProtestantNewTestament, newTestament),
	VulgateBible:                   mustNew(VulgateBible, concat(vulgateOT, newTestament)),
}

// Builtin returns a built-in scheme by name.
func Builtin(name string) (*Scheme, error) {
	s, ok := builtins[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown book order %q", name)
	}
	return s, nil
}

// BuiltinNames lists the built-in scheme names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustNew(name string, books []ref.BookCode) *Scheme {
	s, err := New(name, books)
	if err != nil {
		panic(err)
	}
	return s
}

func concat(parts ...[]ref.BookCode) []ref.BookCode {
	var out []ref.BookCode
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var protestantOT = []ref.BookCode{
	"GEN", "EXO", "LEV", "NUM", "DEU", "JOS", "JDG", "RUT", "SA1", "SA2",
	"KI1", "KI2", "CH1", "CH2", "EZR", "NEH", "EST", "JOB", "PSA", "PRO",
	"ECC", "SNG", "ISA", "JER", "LAM", "EZE", "DAN", "HOS", "JOL", "AMO",
	"OBA", "JNA", "MIC", "NAH", "HAB", "ZEP", "HAG", "ZEC", "MAL",
}

var vulgateOT = []ref.BookCode{
	"GEN", "EXO", "LEV", "NUM", "DEU", "JOS", "JDG", "RUT", "SA1", "SA2",
	"KI1", "KI2", "CH1", "CH2", "EZR", "NEH", "TOB", "JDT", "EST", "JOB",
	"PSA", "PRO", "ECC", "SNG", "WIS", "SIR", "ISA", "JER", "LAM", "BAR",
	"EZE", "DAN", "HOS", "JOL", "AMO", "OBA", "JNA", "MIC", "NAH", "HAB",
	"ZEP", "HAG", "ZEC", "MAL", "MA1", "MA2",
}

var newTestament = []ref.BookCode{
	"MAT", "MRK", "LUK", "JHN", "ACT", "ROM", "CO1", "CO2", "GAL", "EPH",
	"PHP", "COL", "TH1", "TH2", "TI1", "TI2", "TIT", "PHM", "HEB", "JAM",
	"PE1", "PE2", "JN1", "JN2", "JN3", "JDE", "REV",
}
