package refparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/punctuation"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// state is one node of the reference automaton. step consumes one rune and
// finish is called once at the end of input. Both are pure: every effect is
// carried by the returned transition.
type state interface {
	step(p *Parser, c rune) transition
	finish(p *Parser) transition
}

// transition is the result of feeding a state one rune.
type transition struct {
	next  state
	emit  []ref.Item
	diags []errors.Diagnostic
	// again feeds the same rune to next. Used when a buffered token is
	// handed to the state that understands it.
	again bool
}

func goTo(s state) transition { return transition{next: s} }
func redo(s state) transition { return transition{next: s, again: true} }

// done is the transition out of a complete reference list.
func done() transition { return goTo(finished{}) }

// incomplete ends input in a state that cannot finish.
func incomplete() transition { return transition{} }

func (t transition) with(kind errors.Kind, format string, args ...any) transition {
	t.diags = append(t.diags, errors.NewDiagnostic(kind, "", format, args...))
	return t
}

func (t transition) emitting(items ...ref.Item) transition {
	t.emit = append(t.emit, items...)
	return t
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// number converts a run of ASCII digits. Values that do not fit yield -1,
// which no versification accepts.
func number(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}

// verseNumber is number for a written verse. Zero means "whole chapter" in a
// Reference, so a written 0 becomes -1 and fails validation.
func verseNumber(digits string) int {
	if n := number(digits); n != 0 {
		return n
	}
	return -1
}

func unexpected(c rune) transition {
	return redo(skipping{}).with(errors.UnexpectedCharacter, "unexpected %q", c)
}

// numberState is entered on the first digit after a book is known. For a
// book with a single chapter that number is the verse.
func numberState(p *Parser, book ref.BookCode, digits string) state {
	if p.scheme.IsSingleChapterBook(book) {
		return readingVerse{book: book, chapter: 1, digits: digits, implicit: true}
	}
	return readingChapter{book: book, digits: digits}
}

// afterSeparator picks the state following a chapter or book separator.
func afterSeparator(p *Parser, book ref.BookCode, c rune) transition {
	switch {
	case p.profile.IsChapterSeparator(c) && p.profile.IsBookSeparator(c):
		return goTo(readingNextChapterOrBook{book: book})
	case p.profile.IsChapterSeparator(c):
		if book == "" {
			return goTo(skipping{})
		}
		return goTo(readingChapter{book: book})
	default:
		return goTo(readingBookName{})
	}
}

// readingBookName accumulates a book name. Leading digits ("1 Cor") belong
// to the name; a digit after letters ends it ("Job8:4").
type readingBookName struct {
	buf     string
	letters bool
}

func (s readingBookName) step(p *Parser, c rune) transition {
	switch {
	case unicode.IsLetter(c):
		s.buf += string(c)
		s.letters = true
		return goTo(s)

	case isDigit(c):
		if !s.letters {
			s.buf += string(c)
			return goTo(s)
		}
		book, t := s.resolve(p)
		if book == "" {
			return t
		}
		t.next = readingChapter{book: book}
		t.again = true
		if p.profile.SpaceAllowedAfterBCS == punctuation.SpaceRequired {
			t = t.with(errors.MalformedPunctuation, "missing separator after %q", s.buf)
		}
		return t

	case unicode.IsSpace(c):
		if s.buf == "" {
			return goTo(s)
		}
		if !s.letters {
			s.buf += " "
			return goTo(s)
		}
		if book, ok := p.books.ResolveBook(s.buf); ok {
			return s.checkCase(p, goTo(readingBookChapterSeparator{
				book:   book,
				name:   s.buf,
				sawBCS: p.profile.IsBookChapterSeparator(c),
				spaces: spacesIf(!p.profile.IsBookChapterSeparator(c)),
			}))
		}
		// Possibly a name of several words.
		s.buf += " "
		return goTo(s)

	case s.letters && (p.profile.IsAfterAbbreviation(c) || p.profile.IsBookChapterSeparator(c)):
		book, t := s.resolve(p)
		if book == "" {
			return t
		}
		t.next = readingBookChapterSeparator{book: book, sawBCS: p.profile.IsBookChapterSeparator(c)}
		return t

	case s.buf == "" && (p.profile.IsBookSeparator(c) || p.profile.IsChapterSeparator(c)):
		return goTo(s).with(errors.MalformedPunctuation, "empty entry before %q", c)

	default:
		return unexpected(c)
	}
}

func spacesIf(b bool) int {
	if b {
		return 1
	}
	return 0
}

// resolve looks the buffered name up. On failure the returned transition
// skips to the next book.
func (s readingBookName) resolve(p *Parser) (ref.BookCode, transition) {
	name := strings.TrimSpace(s.buf)
	book, ok := p.books.ResolveBook(name)
	if !ok {
		return "", goTo(skipping{}).with(errors.InvalidBook, "unknown book %q", name)
	}
	return book, s.checkCase(p, transition{})
}

func (s readingBookName) checkCase(p *Parser, t transition) transition {
	name := strings.TrimSpace(s.buf)
	switch p.profile.AcceptedCase() {
	case punctuation.CaseUpper:
		if name != strings.ToUpper(name) {
			t = t.with(errors.MalformedPunctuation, "book name %q should be upper case", name)
		}
	case punctuation.CaseLower:
		if name != strings.ToLower(name) {
			t = t.with(errors.MalformedPunctuation, "book name %q should be lower case", name)
		}
	}
	return t
}

func (s readingBookName) finish(p *Parser) transition {
	if s.buf == "" {
		return done().with(errors.MalformedPunctuation, "input ends with a separator")
	}
	name := strings.TrimSpace(s.buf)
	if _, ok := p.books.ResolveBook(name); !ok {
		return incomplete().with(errors.InvalidBook, "unknown book %q", name)
	}
	return incomplete().with(errors.IncompleteReference, "book %q has no chapter", name)
}

// readingBookChapterSeparator sits between a resolved book and its chapter,
// checking the spacing rule. name is set when the book ended at a space, so
// a following word can extend it ("Song of Songs").
type readingBookChapterSeparator struct {
	book   ref.BookCode
	name   string
	sawBCS bool
	spaces int
}

func (s readingBookChapterSeparator) step(p *Parser, c rune) transition {
	switch {
	case c == ' ' && !s.sawBCS && p.profile.IsBookChapterSeparator(c):
		s.sawBCS = true
		return goTo(s)
	case unicode.IsSpace(c):
		s.spaces++
		return goTo(s)
	case !s.sawBCS && p.profile.IsBookChapterSeparator(c):
		s.sawBCS = true
		return goTo(s)
	case unicode.IsLetter(c) && s.name != "":
		return redo(readingBookName{buf: s.name + " ", letters: true})
	case isDigit(c):
		t := redo(readingChapter{book: s.book})
		spaceIsBCS := p.profile.IsBookChapterSeparator(' ')
		switch {
		case !s.sawBCS:
			t = t.with(errors.MalformedPunctuation, "missing separator between book and chapter")
		case spaceIsBCS && s.spaces > 0:
			t = t.with(errors.MalformedPunctuation, "extra space before chapter")
		case spaceIsBCS:
		case p.profile.SpaceAllowedAfterBCS == punctuation.SpaceRequired && s.spaces == 0:
			t = t.with(errors.MalformedPunctuation, "missing space after book")
		case p.profile.SpaceAllowedAfterBCS == punctuation.SpaceForbidden && s.spaces > 0:
			t = t.with(errors.MalformedPunctuation, "space not allowed after book")
		case s.spaces > 1:
			t = t.with(errors.MalformedPunctuation, "extra space before chapter")
		}
		return t
	default:
		return unexpected(c)
	}
}

func (s readingBookChapterSeparator) finish(*Parser) transition {
	return incomplete().with(errors.IncompleteReference, "book %s has no chapter", s.book)
}

// readingChapter reads a chapter number. Empty digits mean the number has
// not started yet.
type readingChapter struct {
	book   ref.BookCode
	digits string
	spaced bool
}

func (s readingChapter) chapter() ref.Reference { return ref.Chapter(s.book, number(s.digits)) }

func (s readingChapter) step(p *Parser, c rune) transition {
	switch {
	case isDigit(c):
		if s.digits == "" {
			return goTo(numberState(p, s.book, string(c)))
		}
		if s.spaced {
			return unexpected(c)
		}
		s.digits += string(c)
		return goTo(s)

	case unicode.IsSpace(c):
		if s.digits == "" {
			return goTo(s)
		}
		if !s.spaced {
			s.spaced = true
			return goTo(s).with(errors.MalformedPunctuation, "space after chapter number")
		}
		return goTo(s)

	case s.digits == "":
		if p.profile.IsVerseSeparator(c) || p.profile.IsChapterSeparator(c) || p.profile.IsBookSeparator(c) {
			return goTo(s).with(errors.MalformedPunctuation, "empty entry before %q", c)
		}
		return unexpected(c)

	case p.profile.IsChapterVerseSeparator(c):
		return goTo(readingVerse{book: s.book, chapter: number(s.digits), afterCVS: true})

	case p.profile.IsChapterBridge(c):
		return goTo(readingChapterRangeEnd{start: s.chapter()})

	case p.profile.IsVerseSeparator(c):
		return goTo(readingChapter{book: s.book}).emitting(s.chapter()).
			with(errors.MalformedPunctuation, "verse separator %q between chapters", c)

	case p.profile.IsChapterSeparator(c) || p.profile.IsBookSeparator(c):
		return afterSeparator(p, s.book, c).emitting(s.chapter())

	default:
		return unexpected(c)
	}
}

func (s readingChapter) finish(*Parser) transition {
	if s.digits == "" {
		return done().with(errors.MalformedPunctuation, "input ends with a separator")
	}
	return done().emitting(s.chapter())
}

// readingVerse reads a verse number and its optional suffix. implicit marks
// a single-chapter book whose chapter was never written.
type readingVerse struct {
	book     ref.BookCode
	chapter  int
	digits   string
	suffix   string
	overflow bool
	implicit bool
	afterCVS bool
	spaced   bool
}

func (s readingVerse) verse() ref.Reference {
	return ref.Reference{Book: s.book, Chapter: s.chapter, Verse: verseNumber(s.digits), Suffix: s.suffix}
}

// next returns the state for another verse in the same chapter.
func (s readingVerse) next() readingVerse {
	return readingVerse{book: s.book, chapter: s.chapter, implicit: s.implicit}
}

func (s readingVerse) step(p *Parser, c rune) transition {
	switch {
	case isDigit(c):
		if s.suffix != "" || s.spaced {
			return unexpected(c)
		}
		s.digits += string(c)
		return goTo(s)

	case unicode.IsSpace(c):
		if s.digits == "" {
			return goTo(s)
		}
		if !s.spaced {
			s.spaced = true
			return goTo(s).with(errors.MalformedPunctuation, "space after verse number")
		}
		return goTo(s)

	case s.digits != "" && p.profile.IsVerseSuffix(c):
		if s.suffix == "" {
			s.suffix = string(c)
			return goTo(s)
		}
		if !s.overflow {
			s.overflow = true
			return goTo(s).with(errors.SuffixOverflow, "verse %s has more than one suffix letter; keeping %q", s.digits, s.suffix)
		}
		return goTo(s)

	case p.profile.IsChapterVerseSeparator(c):
		if !s.implicit || s.digits == "" || s.suffix != "" {
			return unexpected(c)
		}
		// A single-chapter book written with its chapter, "Jde 1:5".
		return goTo(readingVerse{book: s.book, chapter: number(s.digits), afterCVS: true})

	case s.digits == "":
		if p.profile.IsVerseSeparator(c) || p.profile.IsChapterSeparator(c) || p.profile.IsBookSeparator(c) {
			return goTo(s).with(errors.MalformedPunctuation, "empty entry before %q", c)
		}
		return unexpected(c)

	case p.profile.IsVerseSeparator(c):
		return goTo(s.next()).emitting(s.verse())

	case p.profile.IsChapterSeparator(c) || p.profile.IsBookSeparator(c):
		return afterSeparator(p, s.book, c).emitting(s.verse())

	case p.profile.IsBridge(c):
		return s.bridge(p, c)

	default:
		return unexpected(c)
	}
}

func (s readingVerse) bridge(p *Parser, c rune) transition {
	start := s.verse()
	verseBridge := p.profile.IsVerseBridge(c)
	switch {
	case s.implicit && verseBridge:
		return goTo(readingVerseRangeEnd{start: start, chapter: s.chapter, implicit: true})
	case verseBridge && (p.profile.IsChapterBridge(c) || p.profile.IsBookBridge(c)):
		return goTo(readingAmbiguousBridgeTarget{start: start})
	case verseBridge:
		return goTo(readingVerseRangeEnd{start: start, chapter: s.chapter})
	case p.profile.IsChapterBridge(c):
		return goTo(readingVerseRangeEnd{start: start, chapter: s.chapter, needChapter: true})
	default:
		return redo(skipping{}).with(errors.UnsupportedBookRange, "book ranges need a chapter on both sides")
	}
}

func (s readingVerse) finish(*Parser) transition {
	switch {
	case s.digits != "":
		return done().emitting(s.verse())
	case s.afterCVS:
		return incomplete().with(errors.IncompleteReference, "%s %d has no verse after the separator", s.book, s.chapter)
	default:
		return done().with(errors.MalformedPunctuation, "input ends with a separator")
	}
}

// readingNextChapterOrBook follows a character that separates both chapters
// and books. The next token is buffered until a delimiter shows whether it
// is a chapter of the current book or a new book name.
type readingNextChapterOrBook struct {
	book    ref.BookCode
	token   string
	letters bool
}

type separatorTarget int

const (
	targetEmpty separatorTarget = iota
	targetChapter
	targetChapterAndVerse
	targetBook
)

// classifyAfterSeparator decides what a token after a colliding separator
// names, given the delimiter that ended it (0 at end of input).
func classifyAfterSeparator(p *Parser, token string, letters bool, delim rune) separatorTarget {
	switch {
	case letters:
		return targetBook
	case strings.TrimSpace(token) == "":
		return targetEmpty
	case delim != 0 && p.profile.IsChapterVerseSeparator(delim):
		return targetChapterAndVerse
	default:
		return targetChapter
	}
}

func (s readingNextChapterOrBook) step(p *Parser, c rune) transition {
	switch {
	case unicode.IsLetter(c):
		s.token += string(c)
		s.letters = true
		return goTo(s)
	case isDigit(c) && !s.letters:
		if strings.HasSuffix(s.token, " ") && strings.TrimSpace(s.token) != "" {
			return unexpected(c)
		}
		s.token += string(c)
		return goTo(s)
	case unicode.IsSpace(c) && !s.letters:
		if s.token != "" {
			s.token += " "
		}
		return goTo(s)
	}
	return s.resolve(p, c)
}

func (s readingNextChapterOrBook) resolve(p *Parser, delim rune) transition {
	digits := strings.TrimSpace(s.token)
	switch classifyAfterSeparator(p, s.token, s.letters, delim) {
	case targetBook:
		return redo(readingBookName{buf: s.token, letters: true})
	case targetEmpty:
		if delim == 0 {
			return done().with(errors.MalformedPunctuation, "input ends with a separator")
		}
		if p.profile.IsChapterSeparator(delim) || p.profile.IsBookSeparator(delim) {
			return goTo(s).with(errors.MalformedPunctuation, "empty entry before %q", delim)
		}
		return unexpected(delim)
	}
	if s.book == "" {
		// Chapter of a book that did not resolve.
		if delim == 0 {
			return incomplete()
		}
		return redo(skipping{})
	}
	t := transition{}
	if digits != s.token {
		t = t.with(errors.MalformedPunctuation, "space after chapter number")
	}
	if delim == 0 {
		f := numberState(p, s.book, digits).finish(p)
		f.diags = append(t.diags, f.diags...)
		return f
	}
	if p.profile.IsChapterVerseSeparator(delim) {
		t.next = readingVerse{book: s.book, chapter: number(digits), afterCVS: true}
		return t
	}
	t.next = numberState(p, s.book, digits)
	t.again = true
	return t
}

func (s readingNextChapterOrBook) finish(p *Parser) transition {
	if s.letters {
		return readingBookName{buf: s.token, letters: true}.finish(p)
	}
	return s.resolve(p, 0)
}

// readingAmbiguousBridgeTarget follows a bridge character that could join
// verses, chapters or books. The token after it is buffered until its
// delimiter decides.
type readingAmbiguousBridgeTarget struct {
	start   ref.Reference
	token   string
	letters bool
}

type bridgeTarget int

const (
	bridgeUnknown bridgeTarget = iota
	bridgeVerse
	bridgeChapter
	bridgeBook
)

// classifyBridgeTarget decides what the token after an ambiguous bridge
// names, given the delimiter that ended it (0 at end of input).
func classifyBridgeTarget(p *Parser, token string, letters bool, delim rune) bridgeTarget {
	switch {
	case letters:
		return bridgeBook
	case token == "":
		return bridgeUnknown
	case delim != 0 && p.profile.IsChapterVerseSeparator(delim):
		return bridgeChapter
	default:
		return bridgeVerse
	}
}

func (s readingAmbiguousBridgeTarget) step(p *Parser, c rune) transition {
	switch {
	case unicode.IsSpace(c) && s.token == "":
		return goTo(s)
	case isDigit(c) && !s.letters:
		s.token += string(c)
		return goTo(s)
	case unicode.IsLetter(c) && (s.letters || s.token == ""):
		s.token += string(c)
		s.letters = true
		return goTo(s)
	}
	return s.resolve(p, c)
}

func (s readingAmbiguousBridgeTarget) resolve(p *Parser, delim rune) transition {
	switch classifyBridgeTarget(p, s.token, s.letters, delim) {
	case bridgeBook:
		// The whole range is dropped, target included.
		if delim == 0 {
			return incomplete().
				with(errors.UnsupportedBookRange, "range from %s to book %q needs chapter context", s.start, s.token)
		}
		return redo(skipping{}).
			with(errors.UnsupportedBookRange, "range from %s to book %q needs chapter context", s.start, s.token)
	case bridgeChapter:
		return goTo(readingVerseRangeEnd{start: s.start, chapter: number(s.token), afterCVS: true})
	case bridgeVerse:
		next := readingVerseRangeEnd{start: s.start, chapter: s.start.Chapter, digits: s.token}
		if delim == 0 {
			return next.finish(p)
		}
		return redo(next)
	default:
		if delim == 0 {
			return incomplete().with(errors.IncompleteReference, "range from %s has no end", s.start)
		}
		return unexpected(delim)
	}
}

func (s readingAmbiguousBridgeTarget) finish(p *Parser) transition {
	return s.resolve(p, 0)
}

// readingChapterRangeEnd reads the chapter after a chapter bridge. A
// following chapter-verse separator turns it into a verse range end.
type readingChapterRangeEnd struct {
	start  ref.Reference
	digits string
	spaced bool
}

func (s readingChapterRangeEnd) end() ref.Range {
	return ref.NewRange(s.start, ref.Chapter(s.start.Book, number(s.digits)))
}

func (s readingChapterRangeEnd) step(p *Parser, c rune) transition {
	switch {
	case isDigit(c):
		if s.spaced {
			return unexpected(c)
		}
		s.digits += string(c)
		return goTo(s)
	case unicode.IsSpace(c):
		if s.digits != "" && !s.spaced {
			s.spaced = true
			return goTo(s).with(errors.MalformedPunctuation, "space after chapter number")
		}
		return goTo(s)
	case unicode.IsLetter(c) && s.digits == "":
		return redo(skipping{}).
			with(errors.UnsupportedBookRange, "range from %s into another book needs chapter context", s.start)
	case s.digits == "":
		return unexpected(c)
	case p.profile.IsChapterVerseSeparator(c):
		return goTo(readingVerseRangeEnd{start: s.start, chapter: number(s.digits), afterCVS: true})
	case p.profile.IsVerseSeparator(c):
		return goTo(readingChapter{book: s.start.Book}).emitting(s.end()).
			with(errors.MalformedPunctuation, "verse separator %q between chapters", c)
	case p.profile.IsChapterSeparator(c) || p.profile.IsBookSeparator(c):
		return afterSeparator(p, s.start.Book, c).emitting(s.end())
	default:
		return unexpected(c)
	}
}

func (s readingChapterRangeEnd) finish(*Parser) transition {
	if s.digits == "" {
		return incomplete().with(errors.IncompleteReference, "range from %s has no end", s.start)
	}
	return done().emitting(s.end())
}

// readingVerseRangeEnd reads the verse closing a range, optionally preceded
// by its chapter. needChapter is set after a chapter-only bridge, where the
// end must be written as chapter and verse.
type readingVerseRangeEnd struct {
	start       ref.Reference
	chapter     int
	digits      string
	suffix      string
	overflow    bool
	implicit    bool
	needChapter bool
	afterCVS    bool
	spaced      bool
}

func (s readingVerseRangeEnd) end() ref.Range {
	return ref.NewRange(s.start, ref.Reference{
		Book:    s.start.Book,
		Chapter: s.chapter,
		Verse:   verseNumber(s.digits),
		Suffix:  s.suffix,
	})
}

func (s readingVerseRangeEnd) step(p *Parser, c rune) transition {
	switch {
	case isDigit(c):
		if s.suffix != "" || s.spaced {
			return unexpected(c)
		}
		s.digits += string(c)
		return goTo(s)
	case unicode.IsSpace(c):
		if s.digits != "" && !s.spaced {
			s.spaced = true
			return goTo(s).with(errors.MalformedPunctuation, "space after verse number")
		}
		return goTo(s)
	case s.digits != "" && p.profile.IsVerseSuffix(c) && !s.needChapter:
		if s.suffix == "" {
			s.suffix = string(c)
			return goTo(s)
		}
		if !s.overflow {
			s.overflow = true
			return goTo(s).with(errors.SuffixOverflow, "verse %s has more than one suffix letter; keeping %q", s.digits, s.suffix)
		}
		return goTo(s)
	case s.digits == "":
		return unexpected(c)
	case p.profile.IsChapterVerseSeparator(c) && s.needChapter && !s.spaced:
		s.chapter = number(s.digits)
		s.digits = ""
		s.needChapter = false
		s.afterCVS = true
		return goTo(s)
	case s.needChapter:
		// "Gen 1:3–5" with a chapter-only bridge: the end is a whole chapter.
		r := ref.NewRange(s.start, ref.Chapter(s.start.Book, number(s.digits)))
		if p.profile.IsChapterSeparator(c) || p.profile.IsBookSeparator(c) {
			return afterSeparator(p, s.start.Book, c).emitting(r)
		}
		return unexpected(c)
	case p.profile.IsVerseSeparator(c):
		return goTo(readingVerse{book: s.start.Book, chapter: s.chapter, implicit: s.implicit}).emitting(s.end())
	case p.profile.IsChapterSeparator(c) || p.profile.IsBookSeparator(c):
		return afterSeparator(p, s.start.Book, c).emitting(s.end())
	default:
		return unexpected(c)
	}
}

func (s readingVerseRangeEnd) finish(*Parser) transition {
	switch {
	case s.digits == "":
		return incomplete().with(errors.IncompleteReference, "range from %s has no end", s.start)
	case s.needChapter:
		return done().emitting(ref.NewRange(s.start, ref.Chapter(s.start.Book, number(s.digits))))
	default:
		return done().emitting(s.end())
	}
}

// skipping discards input after an unrecoverable error until the next book.
type skipping struct{}

func (skipping) step(p *Parser, c rune) transition {
	if !p.profile.IsBookSeparator(c) {
		return goTo(skipping{})
	}
	if p.profile.IsChapterSeparator(c) {
		return goTo(readingNextChapterOrBook{})
	}
	return goTo(readingBookName{})
}

func (skipping) finish(*Parser) transition { return incomplete() }

// finished is the terminal state.
type finished struct{}

func (finished) step(*Parser, rune) transition {
	panic(errors.Assertf("step called on finished state"))
}

func (finished) finish(*Parser) transition { return done() }
