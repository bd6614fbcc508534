package versification

import (
	"sort"

	"github.com/FocuswithJustin/bibleref/core/errors"
	"github.com/FocuswithJustin/bibleref/core/ref"
)

// Built-in scheme names.
const (
	KJV     = "KJV"
	NRSV    = "NRSV"
	Vulgate = "Vulgate"
)

// nrsvOmitted are the New Testament verses the NRSV relegates to footnotes.
var nrsvOmitted = []ref.Reference{
	ref.New("MAT", 17, 21), ref.New("MAT", 18, 11), ref.New("MAT", 23, 14),
	ref.New("MRK", 7, 16), ref.New("MRK", 9, 44), ref.New("MRK", 9, 46),
	ref.New("MRK", 11, 26), ref.New("MRK", 15, 28),
	ref.New("LUK", 17, 36), ref.New("LUK", 23, 17),
	ref.New("JHN", 5, 4),
	ref.New("ACT", 8, 37), ref.New("ACT", 15, 34), ref.New("ACT", 24, 7), ref.New("ACT", 28, 29),
	ref.New("ROM", 16, 24),
}

var builtins = map[string]*Scheme{
	KJV:     mustNew(KJV, kjvCounts, nil),
	NRSV:    mustNew(NRSV, kjvCounts, nrsvOmitted),
	Vulgate: mustNew(Vulgate, vulgateCounts, nil),
}

// Builtin returns a built-in scheme by name.
func Builtin(name string) (*Scheme, error) {
	s, ok := builtins[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown versification %q", name)
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

func mustNew(name string, counts []BookCounts, omitted []ref.Reference) *Scheme {
	s, err := New(name, counts, omitted)
	if err != nil {
		panic(err)
	}
	return s
}
