package refparse

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocuswithJustin/bibleref/core/bookorder"
	"github.com/FocuswithJustin/bibleref/core/books"
	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/punctuation"
	"github.com/FocuswithJustin/bibleref/core/ref"
	"github.com/FocuswithJustin/bibleref/core/versification"
	"github.com/FocuswithJustin/bibleref/internal/logging"
)

func newParser(t *testing.T, profile *punctuation.Profile, opts ...Option) *Parser {
	t.Helper()
	scheme, err := versification.Builtin(versification.KJV)
	require.NoError(t, err)
	order, err := bookorder.Builtin(bookorder.EuropeanProtestantBible)
	require.NoError(t, err)
	opts = append([]Option{WithLogger(logging.NewLogger(io.Discard, logging.LevelDebug, logging.FormatText))}, opts...)
	p, err := New(profile, books.English(), scheme, order, opts...)
	require.NoError(t, err)
	return p
}

func english(t *testing.T) *Parser {
	t.Helper()
	return newParser(t, punctuation.English())
}

func kinds(l errors.DiagnosticList) []errors.Kind {
	var out []errors.Kind
	for _, d := range l {
		out = append(out, d.Kind)
	}
	return out
}

func TestScenarioSingleVerse(t *testing.T) {
	res := english(t).Parse("Mat. 7:3")
	assert.True(t, res.OK)
	assert.False(t, res.HasWarnings)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, []ref.Item{ref.New("MAT", 7, 3)}, res.Items)
}

func TestScenarioSingleChapterBook(t *testing.T) {
	res := english(t).Parse("Jde 7")
	assert.True(t, res.OK)
	assert.Equal(t, []ref.Item{ref.New("JDE", 1, 7)}, res.Items)
}

func TestScenarioVerseRangeExpands(t *testing.T) {
	p := english(t)
	res := p.Parse("Mat 7:3-7")
	require.True(t, res.OK, res.Diagnostics.Error())
	assert.Equal(t, []ref.Item{ref.NewRange(ref.New("MAT", 7, 3), ref.New("MAT", 7, 7))}, res.Items)

	verses := p.Expand(res.Items)
	require.Len(t, verses, 5)
	for i, v := range verses {
		assert.Equal(t, ref.New("MAT", 7, 3+i), v)
	}
}

func TestScenarioInvalidChapter(t *testing.T) {
	res := english(t).Parse("Mat. 77:3")
	assert.False(t, res.OK)
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, errors.InvalidChapter, d.Kind)
	assert.Equal(t, errors.SeverityError, d.Severity)
	assert.Equal(t, "Matt.77.3", d.Ref)
	assert.Error(t, res.Err())
}

func TestScenarioChapterRangeToOSIS(t *testing.T) {
	got, ok := english(t).ParseToOSIS("Gen. 1-11")
	assert.True(t, ok)
	assert.Equal(t, "Gen.1-Gen.11", got)
}

func TestScenarioDuplicate(t *testing.T) {
	res := english(t).Parse("Rev. 1:1; 1:1")
	assert.True(t, res.OK)
	assert.True(t, res.HasWarnings)
	dups := res.Diagnostics.OfKind(errors.DuplicateReference)
	require.Len(t, dups, 1)
	assert.Equal(t, "Rev.1.1", dups[0].Ref)
	assert.Equal(t, errors.SeverityWarning, dups[0].Severity)
	assert.Len(t, res.Items, 2)
}

func TestParseItems(t *testing.T) {
	tests := []struct {
		input string
		want  []ref.Item
	}{
		{"Mat. 7:3a", []ref.Item{ref.New("MAT", 7, 3).WithSuffix("a")}},
		{"Mat. 7:3, 5", []ref.Item{ref.New("MAT", 7, 3), ref.New("MAT", 7, 5)}},
		{"Mat. 7", []ref.Item{ref.Chapter("MAT", 7)}},
		{"Mat. 7; Mark 2:1", []ref.Item{ref.Chapter("MAT", 7), ref.New("MRK", 2, 1)}},
		{"Mat. 7:3; 8:2", []ref.Item{ref.New("MAT", 7, 3), ref.New("MAT", 8, 2)}},
		{"Mat. 7:3; 9", []ref.Item{ref.New("MAT", 7, 3), ref.Chapter("MAT", 9)}},
		{"Gen. 1:3-2:4", []ref.Item{ref.NewRange(ref.New("GEN", 1, 3), ref.New("GEN", 2, 4))}},
		{"Gen. 1:3–5", []ref.Item{ref.NewRange(ref.New("GEN", 1, 3), ref.New("GEN", 1, 5))}},
		{"Gen. 1:3-5b", []ref.Item{ref.NewRange(ref.New("GEN", 1, 3), ref.New("GEN", 1, 5).WithSuffix("b"))}},
		{"Gen. 1:3-5, 7", []ref.Item{
			ref.NewRange(ref.New("GEN", 1, 3), ref.New("GEN", 1, 5)), ref.New("GEN", 1, 7),
		}},
		{"1 Cor. 13:4", []ref.Item{ref.New("CO1", 13, 4)}},
		{"Song of Songs 2:1", []ref.Item{ref.New("SNG", 2, 1)}},
		{"Jde 1:5", []ref.Item{ref.New("JDE", 1, 5)}},
		{"Jde 3-5", []ref.Item{ref.NewRange(ref.New("JDE", 1, 3), ref.New("JDE", 1, 5))}},
		{"Ps. 23; Jn. 3:16", []ref.Item{ref.Chapter("PSA", 23), ref.New("JHN", 3, 16)}},
	}
	p := english(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Parse(tt.input)
			assert.True(t, res.OK, "diagnostics: %v", res.Diagnostics)
			assert.Equal(t, tt.want, res.Items)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  errors.Kind
	}{
		{"Xyz 1:1", errors.InvalidBook},
		{"Mat. 7:30", errors.InvalidVerse},
		{"Mat. 7:7-3", errors.OutOfOrderRange},
		{"Gen. 11-1", errors.OutOfOrderRange},
		{"Mat. 7:3ab", errors.SuffixOverflow},
		{"Mat. 7:", errors.IncompleteReference},
		{"Mat.", errors.IncompleteReference},
		{"Mat. 7:3$", errors.UnexpectedCharacter},
		{"", errors.InputRejected},
		{"   ", errors.InputRejected},
		{"Mat.\x00 7:3", errors.InputRejected},
	}
	p := english(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Parse(tt.input)
			assert.False(t, res.OK)
			assert.Contains(t, kinds(res.Diagnostics), tt.kind)
		})
	}
}

func TestSuffixOverflowKeepsFirstLetter(t *testing.T) {
	res := english(t).Parse("Mat. 7:3ab")
	assert.Equal(t, []ref.Item{ref.New("MAT", 7, 3).WithSuffix("a")}, res.Items)
}

func TestOmittedVerse(t *testing.T) {
	scheme, err := versification.Builtin(versification.NRSV)
	require.NoError(t, err)
	p, err := New(punctuation.English(), books.English(), scheme, nil,
		WithLogger(logging.NewLogger(io.Discard, logging.LevelDebug, logging.FormatText)))
	require.NoError(t, err)

	res := p.Parse("Mat. 17:21")
	assert.False(t, res.OK)
	assert.Equal(t, []errors.Kind{errors.OmittedVerse}, kinds(res.Diagnostics))

	// Ranges keep omitted verses.
	res = p.Parse("Mat. 17:20-22")
	require.True(t, res.OK, res.Diagnostics.Error())
	assert.Len(t, p.Expand(res.Items), 3)
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		input string
		want  []ref.Item
	}{
		{" Mat. 7:3", []ref.Item{ref.New("MAT", 7, 3)}},
		{"Mat. 7:3 ", []ref.Item{ref.New("MAT", 7, 3)}},
		{"Mat. 7:3;", []ref.Item{ref.New("MAT", 7, 3)}},
		{"Mat.  7:3", []ref.Item{ref.New("MAT", 7, 3)}},
		{"Mat. 7 :3", []ref.Item{ref.New("MAT", 7, 3)}},
		{"Mat. 7:3-7 ; 8:1", []ref.Item{
			ref.NewRange(ref.New("MAT", 7, 3), ref.New("MAT", 7, 7)), ref.New("MAT", 8, 1),
		}},
	}
	p := english(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Parse(tt.input)
			assert.True(t, res.OK, "diagnostics: %v", res.Diagnostics)
			assert.True(t, res.HasWarnings)
			assert.Equal(t, []errors.Kind{errors.MalformedPunctuation}, kinds(res.Diagnostics))
			assert.Equal(t, tt.want, res.Items)
		})
	}
}

func TestWarningOffsets(t *testing.T) {
	res := english(t).Parse("Mat.  7:3")
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 6, res.Diagnostics[0].Offset)
}

func TestSpaceRules(t *testing.T) {
	required := punctuation.English()
	required.SpaceAllowedAfterBCS = punctuation.SpaceRequired
	res := newParser(t, required).Parse("Job8:4")
	assert.True(t, res.OK)
	assert.Equal(t, []errors.Kind{errors.MalformedPunctuation}, kinds(res.Diagnostics))
	assert.Equal(t, []ref.Item{ref.New("JOB", 8, 4)}, res.Items)

	res = english(t).Parse("Job8:4")
	assert.True(t, res.OK)
	assert.False(t, res.HasWarnings)

	hyphen, err := punctuation.Builtin("EnglishWithHyphen")
	require.NoError(t, err)
	p := newParser(t, hyphen)
	res = p.Parse("Mat.7:3")
	assert.True(t, res.OK)
	assert.Equal(t, []errors.Kind{errors.MalformedPunctuation}, kinds(res.Diagnostics))
	res = p.Parse("Mat. 7:3")
	assert.True(t, res.OK)
	assert.False(t, res.HasWarnings)
}

func TestBooknameCase(t *testing.T) {
	upper := punctuation.English()
	upper.BooknameCase = "UU"
	p := newParser(t, upper)

	res := p.Parse("MAT. 7:3")
	assert.True(t, res.OK)
	assert.False(t, res.HasWarnings)

	res = p.Parse("Mat. 7:3")
	assert.True(t, res.OK)
	assert.Equal(t, []errors.Kind{errors.MalformedPunctuation}, kinds(res.Diagnostics))
}

func TestGermanProfile(t *testing.T) {
	german, err := punctuation.Builtin("German")
	require.NoError(t, err)
	res := newParser(t, german).Parse("Mat 7,3.5; 8,1-4")
	require.True(t, res.OK, res.Diagnostics.Error())
	assert.Equal(t, []ref.Item{
		ref.New("MAT", 7, 3),
		ref.New("MAT", 7, 5),
		ref.NewRange(ref.New("MAT", 8, 1), ref.New("MAT", 8, 4)),
	}, res.Items)
}

func TestDistinctSeparators(t *testing.T) {
	profile := punctuation.English()
	profile.BookSeparator = "/"
	p := newParser(t, profile)

	res := p.Parse("Mat. 7:3; 8:1 / Mark 2:1")
	require.True(t, res.OK, res.Diagnostics.Error())
	assert.Equal(t, []ref.Item{ref.New("MAT", 7, 3), ref.New("MAT", 8, 1), ref.New("MRK", 2, 1)}, res.Items)

	got, ok := p.ParseToOSIS("Mat. 7:3 / Mark 2:1")
	assert.True(t, ok)
	assert.Equal(t, "Matt.7.3/Mark.2.1", got)
}

func TestUnsupportedBookRange(t *testing.T) {
	tests := []struct {
		input string
		want  []ref.Item
	}{
		{"Gen. 50:1-Exo. 1:2", nil},
		{"Gen. 1:1-Exo 2:3", nil},
		{"Gen. 50-Exo. 2", nil},
		{"Gen. 50:1-Exo", nil},
		{"Gen. 50:1-Exo. 1:2; Mat. 7:3", []ref.Item{ref.New("MAT", 7, 3)}},
	}
	p := english(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Parse(tt.input)
			assert.False(t, res.OK)
			assert.Equal(t, []errors.Kind{errors.UnsupportedBookRange}, kinds(res.Diagnostics))
			assert.Equal(t, tt.want, res.Items)
		})
	}
}

func TestVerseZeroIsInvalid(t *testing.T) {
	tests := []struct {
		input string
		want  ref.Item
	}{
		{"Mat 7:0", ref.New("MAT", 7, -1)},
		{"Mat 7:3-0", ref.NewRange(ref.New("MAT", 7, 3), ref.New("MAT", 7, -1))},
		{"Jde 0", ref.New("JDE", 1, -1)},
	}
	p := english(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Parse(tt.input)
			assert.False(t, res.OK)
			assert.Equal(t, []errors.Kind{errors.InvalidVerse}, kinds(res.Diagnostics))
			assert.Equal(t, []ref.Item{tt.want}, res.Items)
			assert.Empty(t, p.Expand(res.Items))
		})
	}
}

func TestRecoveryAfterError(t *testing.T) {
	res := english(t).Parse("Xyz 1:1; Mat. 7:3")
	assert.False(t, res.OK)
	assert.Equal(t, []errors.Kind{errors.InvalidBook}, kinds(res.Diagnostics))
	assert.Equal(t, []ref.Item{ref.New("MAT", 7, 3)}, res.Items)
}

func TestDuplicates(t *testing.T) {
	tests := []struct {
		input string
		dups  int
	}{
		{"Mat. 7:3; 7:3", 1},
		{"Mat. 7:1-5, 3", 1},
		{"Mat. 7; 7:3", 1},
		{"Mat. 7:3a, 3b", 0},
		{"Mat. 7:3a, 3", 1},
		{"Mat. 7:3, 4", 0},
		{"Mat. 7:3; 7:3; 7:4; 7:4", 2},
	}
	p := english(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := p.Parse(tt.input)
			assert.True(t, res.OK, "diagnostics: %v", res.Diagnostics)
			assert.Len(t, res.Diagnostics.OfKind(errors.DuplicateReference), tt.dups)
		})
	}
}

func TestParseToOSIS(t *testing.T) {
	tests := map[string]string{
		"Mat. 7:3":       "Matt.7.3",
		"Gen. 1:3-2:4":   "Gen.1.3-Gen.2.4",
		"1 Cor. 13":      "1Cor.13",
		"Mat. 7:3; 8:2":  "Matt.7.3;Matt.8.2",
		"Jde 7":          "Jude.1.7",
		"Gen. 1-2:4":     "Gen.1.1-Gen.2.4",
		"Rev. 22:21a":    "Rev.22.21a",
		"Mat. 5:3-12":    "Matt.5.3-Matt.5.12",
		"Mat. 1; Mrk. 1": "Matt.1;Mark.1",
	}
	p := english(t)
	for input, want := range tests {
		got, ok := p.ParseToOSIS(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}

	_, ok := p.ParseToOSIS("Mat. 77:3")
	assert.False(t, ok)
}

func TestNewValidation(t *testing.T) {
	scheme, err := versification.Builtin(versification.KJV)
	require.NoError(t, err)

	_, err = New(nil, books.English(), scheme, nil)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	_, err = New(punctuation.English(), nil, scheme, nil)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	_, err = New(punctuation.English(), books.English(), nil, nil)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	bad := punctuation.English()
	bad.VerseSeparator = ""
	_, err = New(bad, books.English(), scheme, nil)
	assert.Error(t, err)
}

func TestParserCopiesProfile(t *testing.T) {
	profile := punctuation.English()
	p := newParser(t, profile)
	profile.ChapterVerseSeparator = "."
	assert.True(t, p.Parse("Mat. 7:3").OK)
}

func TestMaxInputLength(t *testing.T) {
	p := newParser(t, punctuation.English(), WithMaxInputLength(8))
	assert.True(t, p.Parse("Mat. 7:3").OK)
	res := p.Parse("Mat. 7:3, 4")
	assert.False(t, res.OK)
	assert.Equal(t, []errors.Kind{errors.InputRejected}, kinds(res.Diagnostics))
}

func TestLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	p := newParser(t, punctuation.English(),
		WithLogger(logging.NewLogger(&buf, logging.LevelDebug, logging.FormatJSON)))
	p.Parse("Rev. 1:1; 1:1")

	out := buf.String()
	assert.Contains(t, out, `"kind":"duplicate-reference"`)
	assert.Contains(t, out, `"ref":"Rev.1.1"`)
	assert.Contains(t, out, `"msg":"parse_completed"`)
}

func TestConcurrentParses(t *testing.T) {
	p := english(t)
	inputs := []string{"Mat. 7:3", "Gen. 1-11", "Jde 7", "Rev. 1:1; 1:1", "Mat. 77:3", "Gen. 1:3-2:4"}
	want := make([]Result, len(inputs))
	for i, in := range inputs {
		want[i] = p.Parse(in)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				k := (g + i) % len(inputs)
				got := p.Parse(inputs[k])
				if got.OK != want[k].OK || fmt.Sprint(got.Items) != fmt.Sprint(want[k].Items) {
					errs <- fmt.Sprintf("%q: got %v, want %v", inputs[k], got.Items, want[k].Items)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	var failures []string
	for e := range errs {
		failures = append(failures, e)
	}
	assert.Empty(t, failures, strings.Join(failures, "\n"))
}
