// Package refparse parses human-written scripture references such as
// "Mat. 7:3-7; 8:2" under a locale's punctuation profile, validates them
// against a versification and expands ranges into verse lists.
package refparse

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FocuswithJustin/bibleref/core/bookorder"
	"github.com/FocuswithJustin/bibleref/core/books"
	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/osis"
	"github.com/FocuswithJustin/bibleref/core/punctuation"
	"github.com/FocuswithJustin/bibleref/core/ref"
	"github.com/FocuswithJustin/bibleref/core/versification"
	"github.com/FocuswithJustin/bibleref/internal/logging"
	"github.com/FocuswithJustin/bibleref/internal/validation"
)

// Parser holds the configuration a parse runs against. It keeps no per-call
// state and is safe for concurrent use.
type Parser struct {
	profile *punctuation.Profile
	books   books.Resolver
	scheme  *versification.Scheme
	order   *bookorder.Scheme
	logger  *slog.Logger
	maxLen  int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sends diagnostics to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxInputLength caps the input size in bytes. Zero or less restores
// validation.MaxReferenceLength.
func WithMaxInputLength(n int) Option {
	return func(p *Parser) { p.maxLen = n }
}

// New builds a parser. The profile is validated and copied. order may be nil,
// in which case ranges crossing books are reported as UnsupportedBookRange
// instead of being expanded.
func New(profile *punctuation.Profile, resolver books.Resolver, scheme *versification.Scheme,
	order *bookorder.Scheme, opts ...Option) (*Parser, error) {
	switch {
	case profile == nil:
		return nil, errors.Wrap(errors.ErrInvalidInput, "nil punctuation profile")
	case resolver == nil:
		return nil, errors.Wrap(errors.ErrInvalidInput, "nil book resolver")
	case scheme == nil:
		return nil, errors.Wrap(errors.ErrInvalidInput, "nil versification scheme")
	}
	if err := profile.Validate(); err != nil {
		return nil, errors.Wrap(err, "punctuation profile")
	}
	cp := *profile
	p := &Parser{
		profile: &cp,
		books:   resolver,
		scheme:  scheme,
		order:   order,
		logger:  logging.GetLogger(),
		maxLen:  validation.MaxReferenceLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Result is the outcome of one parse.
type Result struct {
	// OK is set when no error was found and the input ended cleanly.
	OK bool
	// HasWarnings is set when any warning was raised, whether or not OK.
	HasWarnings bool
	// Items holds everything recognised, including items that failed
	// validation.
	Items []ref.Item
	// Diagnostics lists errors and warnings in the order found.
	Diagnostics errors.DiagnosticList
}

// Err returns the diagnostics as an error when the parse failed.
func (r Result) Err() error {
	return r.Diagnostics.Err()
}

// Parse reads a list of references.
func (p *Parser) Parse(text string) Result {
	var res Result
	if err := p.admit(text); err != nil {
		res.Diagnostics.Add(errors.NewDiagnostic(errors.InputRejected, "", "%v", err))
		return p.finish(text, res, false)
	}

	items, diags, complete := p.scan(text)
	p.check(items, &diags)
	res.Items = items
	res.Diagnostics = diags
	return p.finish(text, res, complete)
}

func (p *Parser) admit(text string) error {
	if err := validation.ValidateReferenceText(text, p.maxLen); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return validation.ErrEmptyInput
	}
	return nil
}

func (p *Parser) finish(text string, res Result, complete bool) Result {
	res.OK = complete && !res.Diagnostics.HasErrors()
	res.HasWarnings = res.Diagnostics.HasWarnings()
	for _, d := range res.Diagnostics {
		logging.Diagnostic(p.logger, text, d)
	}
	logging.ParseCompleted(p.logger, text, res.OK, len(res.Items), len(res.Diagnostics))
	return res
}

// ParseToOSIS parses text and renders it as OSIS ids joined by the
// profile's preferred book separator. It fails when the parse does.
func (p *Parser) ParseToOSIS(text string) (string, bool) {
	res := p.Parse(text)
	if !res.OK {
		return "", false
	}
	return osis.Format(p.books, res.Items, punctuation.Preferred(p.profile.BookSeparator)), true
}

// maxRedo bounds how often one rune may be handed on between states.
const maxRedo = 4

// scan runs the automaton over text. complete reports whether it ended in
// the finished state.
func (p *Parser) scan(text string) (items []ref.Item, diags errors.DiagnosticList, complete bool) {
	body := strings.TrimLeftFunc(text, unicode.IsSpace)
	offset := utf8.RuneCountInString(text[:len(text)-len(body)])
	if offset > 0 {
		diags.Add(errors.NewDiagnostic(errors.MalformedPunctuation, "", "leading whitespace").At(0))
	}
	trimmed := strings.TrimRightFunc(body, unicode.IsSpace)

	var cur state = readingBookName{}
	apply := func(t transition, at int) {
		items = append(items, t.emit...)
		for _, d := range t.diags {
			diags.Add(d.At(at))
		}
		cur = t.next
	}

	for _, c := range trimmed {
		t := cur.step(p, c)
		for i := 0; ; i++ {
			if t.next == nil {
				panic(errors.Assertf("state %T left no successor on %q", cur, c))
			}
			apply(t, offset)
			if !t.again {
				break
			}
			if i == maxRedo {
				panic(errors.Assertf("rune %q handed on more than %d times", c, maxRedo))
			}
			t = cur.step(p, c)
		}
		offset++
	}

	if len(trimmed) < len(body) {
		diags.Add(errors.NewDiagnostic(errors.MalformedPunctuation, "", "trailing whitespace").At(offset))
	}
	apply(cur.finish(p), offset)
	_, complete = cur.(finished)
	return items, diags, complete
}
