package versification

import (
	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// Order is the canon ordering consulted when a range crosses books.
// *bookorder.Scheme satisfies it.
type Order interface {
	CorrectlyOrdered(b1, b2 ref.BookCode) bool
	NextBook(book ref.BookCode) (ref.BookCode, bool)
}

// ExpandRange lists every verse from start to end inclusive.
//
// Both endpoints are validated first. A start without a verse begins at verse
// 1 and an end without a verse runs to the last verse of its chapter. Only the
// first and last entries keep the endpoint suffixes. Omitted verses are kept.
// Problems are appended to report and the result is nil, false.
//
// order is required when the endpoints are in different books; passing nil
// for such a range is a programming error and panics.
func (s *Scheme) ExpandRange(start, end ref.Reference, order Order, report *errors.DiagnosticList) ([]ref.Reference, bool) {
	okStart := s.IsValid(start, report)
	okEnd := s.IsValid(end, report)
	if !okStart || !okEnd {
		return nil, false
	}
	if start == end {
		return []ref.Reference{start}, true
	}

	first := start.Verse
	if first == 0 {
		first = 1
	}
	last := end.Verse
	if last == 0 {
		last = s.counts[end.Book][end.Chapter-1]
	}

	var out []ref.Reference
	emit := func(book ref.BookCode, chapter, from, to int) {
		for v := from; v <= to; v++ {
			out = append(out, ref.New(book, chapter, v))
		}
	}
	emitBook := func(book ref.BookCode, fromChapter, fromVerse int) {
		c := s.counts[book]
		for ch := fromChapter; ch <= len(c); ch++ {
			emit(book, ch, fromVerse, c[ch-1])
			fromVerse = 1
		}
	}

	switch {
	case start.Book != end.Book:
		if order == nil {
			panic(errors.Assertf("expanding %s-%s across books without a book order", start, end))
		}
		if !order.CorrectlyOrdered(start.Book, end.Book) {
			report.Add(errors.NewDiagnostic(errors.CrossBookOrderViolation, start.String()+"-"+end.String(),
				"%s does not precede %s", start.Book, end.Book))
			return nil, false
		}
		emitBook(start.Book, start.Chapter, first)
		for book, ok := order.NextBook(start.Book); ok && book != end.Book; book, ok = order.NextBook(book) {
			// Books outside this versification are skipped.
			if _, known := s.counts[book]; known {
				emitBook(book, 1, 1)
			}
		}
		for ch := 1; ch < end.Chapter; ch++ {
			emit(end.Book, ch, 1, s.counts[end.Book][ch-1])
		}
		emit(end.Book, end.Chapter, 1, last)

	case start.Chapter == end.Chapter:
		if first >= last {
			report.Add(errors.NewDiagnostic(errors.OutOfOrderRange, start.String()+"-"+end.String(),
				"verse %d does not precede verse %d", first, last))
			return nil, false
		}
		emit(start.Book, start.Chapter, first, last)

	case start.Chapter > end.Chapter:
		report.Add(errors.NewDiagnostic(errors.OutOfOrderRange, start.String()+"-"+end.String(),
			"chapter %d does not precede chapter %d", start.Chapter, end.Chapter))
		return nil, false

	default:
		c := s.counts[start.Book]
		emit(start.Book, start.Chapter, first, c[start.Chapter-1])
		for ch := start.Chapter + 1; ch < end.Chapter; ch++ {
			emit(start.Book, ch, 1, c[ch-1])
		}
		emit(end.Book, end.Chapter, 1, last)
	}

	if len(out) > 0 {
		out[0].Suffix = start.Suffix
		out[len(out)-1].Suffix = end.Suffix
	}
	return out, true
}

// ExpandChapter lists every verse of one chapter.
func (s *Scheme) ExpandChapter(book ref.BookCode, chapter int) ([]ref.Reference, error) {
	n, err := s.NumVerses(book, chapter)
	if err != nil {
		return nil, err
	}
	out := make([]ref.Reference, n)
	for v := 1; v <= n; v++ {
		out[v-1] = ref.New(book, chapter, v)
	}
	return out, nil
}
