package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic raised while parsing or validating references.
type Kind string

const (
	// InvalidBook indicates a book name or code that could not be resolved.
	InvalidBook Kind = "invalid-book"
	// InvalidChapter indicates a chapter absent from the versification scheme.
	InvalidChapter Kind = "invalid-chapter"
	// InvalidVerse indicates a verse beyond the chapter's verse count.
	InvalidVerse Kind = "invalid-verse"
	// OmittedVerse indicates a verse the versification scheme omits.
	OmittedVerse Kind = "omitted-verse"
	// OutOfOrderRange indicates a range whose end precedes its start.
	OutOfOrderRange Kind = "out-of-order-range"
	// CrossBookOrderViolation indicates a book range against canon order.
	CrossBookOrderViolation Kind = "cross-book-order"
	// SuffixOverflow indicates more than one verse suffix letter.
	SuffixOverflow Kind = "suffix-overflow"
	// MalformedPunctuation indicates recoverable spacing or punctuation problems.
	MalformedPunctuation Kind = "malformed-punctuation"
	// DuplicateReference indicates a verse listed more than once.
	DuplicateReference Kind = "duplicate-reference"
	// UnexpectedCharacter indicates a character the grammar cannot place.
	UnexpectedCharacter Kind = "unexpected-character"
	// IncompleteReference indicates input that stops before a reference is whole.
	IncompleteReference Kind = "incomplete-reference"
	// UnsupportedBookRange indicates a book-spanning bridge without chapter context.
	UnsupportedBookRange Kind = "unsupported-book-range"
	// InputRejected indicates text refused before parsing began.
	InputRejected Kind = "input-rejected"
)

// Severity separates diagnostics that fail a parse from those that do not.
type Severity int

const (
	// SeverityWarning does not affect the success of a parse.
	SeverityWarning Severity = iota
	// SeverityError fails the parse.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// DefaultSeverity returns the severity a kind carries unless overridden.
func (k Kind) DefaultSeverity() Severity {
	switch k {
	case MalformedPunctuation, DuplicateReference:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Diagnostic describes one problem found in a reference string.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Ref      string // OSIS id of the reference concerned, if known
	Offset   int    // rune offset into the input, -1 when not positional
}

// Error formats the diagnostic for display.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "diagnostic <nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", d.Kind, d.Message)
	if d.Ref != "" {
		fmt.Fprintf(&b, " at %s", d.Ref)
	}
	if d.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", d.Offset)
	}
	return b.String()
}

// NewDiagnostic builds a non-positional diagnostic with the kind's default severity.
func NewDiagnostic(kind Kind, ref, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Severity: kind.DefaultSeverity(),
		Message:  fmt.Sprintf(format, args...),
		Ref:      ref,
		Offset:   -1,
	}
}

// At returns a copy of d anchored at a rune offset.
func (d Diagnostic) At(offset int) Diagnostic {
	d.Offset = offset
	return d
}

// DiagnosticList is an error that wraps one or more diagnostics.
type DiagnosticList []Diagnostic

// Error returns a compact summary of the diagnostics.
func (l DiagnosticList) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Add appends d to the list. A nil list pointer discards it.
func (l *DiagnosticList) Add(d Diagnostic) {
	if l == nil {
		return
	}
	*l = append(*l, d)
}

// HasErrors reports whether any diagnostic has error severity.
func (l DiagnosticList) HasErrors() bool {
	for _, d := range l {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has warning severity.
func (l DiagnosticList) HasWarnings() bool {
	for _, d := range l {
		if d.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// OfKind returns the diagnostics of the given kind, in order.
func (l DiagnosticList) OfKind(kind Kind) DiagnosticList {
	var out DiagnosticList
	for _, d := range l {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Err returns the list as an error, or nil when it holds no errors.
func (l DiagnosticList) Err() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}
