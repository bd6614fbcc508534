package refparse

import (
	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/osis"
	"github.com/FocuswithJustin/bibleref/core/ref"
	"github.com/FocuswithJustin/bibleref/core/versification"
)

// bookOrder returns the order for range expansion, keeping a nil scheme a
// nil interface.
func (p *Parser) bookOrder() versification.Order {
	if p.order == nil {
		return nil
	}
	return p.order
}

// flatten validates item and lists the verses it covers. Problems go to
// report, which may be nil, with Ref set to the item's OSIS id.
func (p *Parser) flatten(item ref.Item, report *errors.DiagnosticList) ([]ref.Reference, bool) {
	var local errors.DiagnosticList
	var verses []ref.Reference
	ok := true

	switch it := item.(type) {
	case ref.Reference:
		if ok = p.scheme.IsValid(it, &local); !ok {
			break
		}
		if it.HasVerse() {
			verses = []ref.Reference{it}
			break
		}
		verses, _ = p.scheme.ExpandChapter(it.Book, it.Chapter)
	case ref.Range:
		if it.SpansBooks() && p.order == nil {
			local.Add(errors.NewDiagnostic(errors.UnsupportedBookRange, "",
				"no book order to expand %s across books", it))
			ok = false
			break
		}
		verses, ok = p.scheme.ExpandRange(it.Start, it.End, p.bookOrder(), &local)
		if ok && len(verses) == 1 && !verses[0].HasVerse() {
			// "Gen 1-1"
			verses, _ = p.scheme.ExpandChapter(it.Start.Book, it.Start.Chapter)
		}
	}

	if report != nil && len(local) > 0 {
		id := osis.FormatItem(p.books, item)
		for _, d := range local {
			d.Ref = id
			report.Add(d)
		}
	}
	return verses, ok
}

// check validates every item and warns about verses listed more than once.
// Two entries for a verse clash unless both carry different suffixes.
func (p *Parser) check(items []ref.Item, report *errors.DiagnosticList) {
	type entry struct {
		suffixes []string
		count    int
		clash    bool
	}
	seen := make(map[ref.Reference]*entry)
	var order []ref.Reference

	for _, item := range items {
		verses, _ := p.flatten(item, report)
		for _, v := range verses {
			key := v.Key()
			e, ok := seen[key]
			if !ok {
				e = &entry{}
				seen[key] = e
				order = append(order, key)
			}
			for _, s := range e.suffixes {
				if s == v.Suffix || s == "" || v.Suffix == "" {
					e.clash = true
				}
			}
			e.suffixes = append(e.suffixes, v.Suffix)
			e.count++
		}
	}

	for _, key := range order {
		if e := seen[key]; e.clash {
			report.Add(errors.NewDiagnostic(errors.DuplicateReference, osis.FormatRef(p.books, key),
				"%s listed %d times", osis.FormatRef(p.books, key), e.count))
		}
	}
}
