// Package punctuation describes how a locale punctuates scripture references:
// which characters separate books, chapters and verses, which characters
// bridge ranges, and how book names are cased and spaced.
package punctuation

import (
	"bytes"
	_ "embed"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/internal/logging"
	"github.com/FocuswithJustin/bibleref/internal/validation"
)

// SpaceRule values for SpaceAllowedAfterBCS.
const (
	SpaceRequired  = "Y"
	SpaceForbidden = "N"
	SpaceEither    = "E"
)

// Case and length codes used by BooknameCase and BooknameLength.
const (
	CaseUpper  = 'U'
	CaseLower  = 'L'
	CaseMixed  = 'M'
	CaseEither = 'E'
	LengthFull = 'F'
)

// Profile is one locale's punctuation convention. Character fields may list
// several alternatives; the first is preferred when formatting. A Profile is
// immutable once validated.
type Profile struct {
	Name string `yaml:"name"`

	// BooknameCase is a preferred then an accepted case code (e.g. "ME").
	BooknameCase string `yaml:"booknameCase"`
	// BooknameLength is a preferred then an accepted length code.
	BooknameLength string `yaml:"booknameLength"`

	PunctuationAfterBookAbbreviation string `yaml:"punctuationAfterBookAbbreviation"`
	BookChapterSeparator             string `yaml:"bookChapterSeparator"`
	SpaceAllowedAfterBCS             string `yaml:"spaceAllowedAfterBCS"`
	ChapterVerseSeparator            string `yaml:"chapterVerseSeparator"`
	VerseSeparator                   string `yaml:"verseSeparator"`
	BookBridgeCharacter              string `yaml:"bookBridgeCharacter"`
	ChapterBridgeCharacter           string `yaml:"chapterBridgeCharacter"`
	VerseBridgeCharacter             string `yaml:"verseBridgeCharacter"`
	ChapterSeparator                 string `yaml:"chapterSeparator"`
	BookSeparator                    string `yaml:"bookSeparator"`
	AllowedVerseSuffixes             string `yaml:"allowedVerseSuffixes"`
}

// Validate checks every field.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.Wrap(validation.ErrInvalidField, "name: must not be empty")
	}
	codes := []struct {
		field, value string
	}{
		{"booknameCase", p.BooknameCase},
		{"booknameLength", p.BooknameLength},
	}
	for _, c := range codes {
		if c.value == "" || len(c.value) > 2 || strings.Trim(c.value, "ULMEF") != "" {
			return errors.Wrapf(validation.ErrInvalidField, "%s: %s: bad code %q", p.Name, c.field, c.value)
		}
	}
	if err := validation.ValidateEnum("spaceAllowedAfterBCS", p.SpaceAllowedAfterBCS,
		SpaceRequired, SpaceForbidden, SpaceEither); err != nil {
		return errors.Wrap(err, p.Name)
	}
	chars := []struct {
		field, value string
		optional     bool
	}{
		{"punctuationAfterBookAbbreviation", p.PunctuationAfterBookAbbreviation, true},
		{"bookChapterSeparator", p.BookChapterSeparator, false},
		{"chapterVerseSeparator", p.ChapterVerseSeparator, false},
		{"verseSeparator", p.VerseSeparator, false},
		{"bookBridgeCharacter", p.BookBridgeCharacter, true},
		{"chapterBridgeCharacter", p.ChapterBridgeCharacter, false},
		{"verseBridgeCharacter", p.VerseBridgeCharacter, false},
		{"chapterSeparator", p.ChapterSeparator, false},
		{"bookSeparator", p.BookSeparator, false},
	}
	for _, c := range chars {
		if err := validation.ValidatePunctuation(c.field, c.value, c.optional); err != nil {
			return errors.Wrap(err, p.Name)
		}
	}
	if strings.ContainsAny(p.ChapterVerseSeparator, p.VerseSeparator) {
		return errors.Wrapf(validation.ErrInvalidField,
			"%s: chapterVerseSeparator and verseSeparator overlap", p.Name)
	}
	if err := validation.ValidateSuffixes("allowedVerseSuffixes", p.AllowedVerseSuffixes); err != nil {
		return errors.Wrap(err, p.Name)
	}
	return nil
}

func in(set string, r rune) bool { return strings.ContainsRune(set, r) }

func (p *Profile) IsBookChapterSeparator(r rune) bool  { return in(p.BookChapterSeparator, r) }
func (p *Profile) IsChapterVerseSeparator(r rune) bool { return in(p.ChapterVerseSeparator, r) }
func (p *Profile) IsVerseSeparator(r rune) bool        { return in(p.VerseSeparator, r) }
func (p *Profile) IsChapterSeparator(r rune) bool      { return in(p.ChapterSeparator, r) }
func (p *Profile) IsBookSeparator(r rune) bool         { return in(p.BookSeparator, r) }
func (p *Profile) IsVerseBridge(r rune) bool           { return in(p.VerseBridgeCharacter, r) }
func (p *Profile) IsChapterBridge(r rune) bool         { return in(p.ChapterBridgeCharacter, r) }
func (p *Profile) IsBookBridge(r rune) bool            { return in(p.BookBridgeCharacter, r) }
func (p *Profile) IsVerseSuffix(r rune) bool           { return in(p.AllowedVerseSuffixes, r) }

func (p *Profile) IsAfterAbbreviation(r rune) bool {
	return in(p.PunctuationAfterBookAbbreviation, r)
}

// IsBridge reports whether r bridges at any level.
func (p *Profile) IsBridge(r rune) bool {
	return p.IsVerseBridge(r) || p.IsChapterBridge(r) || p.IsBookBridge(r)
}

// SeparatorsCollide reports whether chapterSeparator and bookSeparator share
// a character, so a token after one must be classified before use.
func (p *Profile) SeparatorsCollide() bool {
	return strings.ContainsAny(p.ChapterSeparator, p.BookSeparator)
}

// Preferred returns the first character of a field, or "".
func Preferred(field string) string {
	if field == "" {
		return ""
	}
	_, n := utf8.DecodeRuneInString(field)
	return field[:n]
}

// PreferredCase returns the preferred bookname case code.
func (p *Profile) PreferredCase() byte { return code(p.BooknameCase, 0) }

// AcceptedCase returns the case code input must satisfy.
func (p *Profile) AcceptedCase() byte { return code(p.BooknameCase, len(p.BooknameCase)-1) }

// PreferredLength returns the preferred bookname length code.
func (p *Profile) PreferredLength() byte { return code(p.BooknameLength, 0) }

func code(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return CaseEither
	}
	return s[i]
}

//go:embed profiles.yaml
var builtinYAML []byte

var builtins = mustDecode(builtinYAML)

// Decode reads a YAML list of profiles and validates each one. Unknown keys
// are rejected.
func Decode(data []byte) ([]*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var profiles []*Profile
	if err := dec.Decode(&profiles); err != nil && err != io.EOF {
		return nil, &errors.ParseError{Format: "punctuation profile", Message: err.Error(), Err: err}
	}
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if p == nil {
			return nil, errors.NewParse("punctuation profile", "", "empty list entry")
		}
		if err := p.Validate(); err != nil {
			return nil, &errors.ParseError{Format: "punctuation profile", Input: p.Name, Message: err.Error(), Err: err}
		}
		if seen[p.Name] {
			return nil, errors.NewParse("punctuation profile", p.Name, "defined twice")
		}
		seen[p.Name] = true
	}
	return profiles, nil
}

func mustDecode(data []byte) map[string]*Profile {
	profiles, err := Decode(data)
	if err != nil {
		panic(err)
	}
	m := make(map[string]*Profile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
		logging.ProfileLoaded(p.Name, "builtin")
	}
	return m
}

// Builtin returns a copy of a built-in profile.
func Builtin(name string) (*Profile, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown punctuation profile %q", name)
	}
	cp := *p
	return &cp, nil
}

// English returns the built-in English profile.
func English() *Profile {
	p, err := Builtin("English")
	if err != nil {
		panic(err)
	}
	return p
}

// BuiltinNames lists the built-in profile names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
