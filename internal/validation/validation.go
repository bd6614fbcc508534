// Package validation checks untrusted reference text and configuration values
// before they reach the parser, guarding against oversized or malformed input.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Limits on untrusted input (CWE-400).
const (
	// MaxReferenceLength is the default maximum reference text length in bytes.
	MaxReferenceLength = 4096
	// MaxFieldLength is the maximum length of one punctuation profile field.
	MaxFieldLength = 16
)

// Common validation errors.
var (
	ErrEmptyInput       = errors.New("input cannot be empty")
	ErrInputTooLong     = errors.New("input too long")
	ErrInvalidEncoding  = errors.New("input is not valid UTF-8")
	ErrInvalidCharacter = errors.New("invalid character in input")
	ErrInvalidField     = errors.New("invalid profile field")
)

// ValidateReferenceText checks raw reference text. maxLen <= 0 selects
// MaxReferenceLength. Tabs are the only control characters accepted.
func ValidateReferenceText(text string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = MaxReferenceLength
	}
	if text == "" {
		return ErrEmptyInput
	}
	if len(text) > maxLen {
		return errors.Wrapf(ErrInputTooLong, "%d bytes exceeds %d", len(text), maxLen)
	}
	if !utf8.ValidString(text) {
		return ErrInvalidEncoding
	}
	for i, r := range text {
		if r == '\x00' {
			return errors.Wrapf(ErrInvalidCharacter, "null byte at offset %d", i)
		}
		if unicode.IsControl(r) && r != '\t' {
			return errors.Wrapf(ErrInvalidCharacter, "control character %U at offset %d", r, i)
		}
	}
	return nil
}

// ValidateEnum checks that value is one of allowed.
func ValidateEnum(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidField, "%s: %q is not one of %s", field, value, strings.Join(allowed, ", "))
}

// ValidatePunctuation checks a field listing one or more punctuation
// characters. Letters, digits and control characters are refused since they
// would be read as part of a book name or number. Empty values are allowed
// only when optional is set.
func ValidatePunctuation(field, value string, optional bool) error {
	if value == "" {
		if optional {
			return nil
		}
		return errors.Wrapf(ErrInvalidField, "%s: must not be empty", field)
	}
	if len(value) > MaxFieldLength {
		return errors.Wrapf(ErrInvalidField, "%s: longer than %d bytes", field, MaxFieldLength)
	}
	if !utf8.ValidString(value) {
		return errors.Wrapf(ErrInvalidField, "%s: %v", field, ErrInvalidEncoding)
	}
	for _, r := range value {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsControl(r) {
			return errors.Wrapf(ErrInvalidField, "%s: %q is not punctuation", field, r)
		}
	}
	return nil
}

// ValidateSuffixes checks the set of allowed verse suffix letters: lowercase
// letters only, at most MaxFieldLength of them.
func ValidateSuffixes(field, value string) error {
	if len(value) > MaxFieldLength {
		return errors.Wrapf(ErrInvalidField, "%s: longer than %d bytes", field, MaxFieldLength)
	}
	for _, r := range value {
		if !unicode.IsLower(r) {
			return errors.Wrapf(ErrInvalidField, "%s: %q is not a lowercase letter", field, r)
		}
	}
	return nil
}
