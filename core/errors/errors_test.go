package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "book with scheme",
			err:      NewUnknownBook("KJV", "XYZ"),
			wantMsg:  "unknown book in KJV: XYZ",
			wantBase: ErrUnknownBook,
		},
		{
			name:     "chapter without scheme",
			err:      NewUnknownChapter("", "MAT", 29),
			wantMsg:  "unknown chapter: MAT 29",
			wantBase: ErrUnknownChapter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.True(t, Is(tt.err, tt.wantBase), "Is(%v, %v)", tt.err, tt.wantBase)
			assert.True(t, stderrors.Is(tt.err, tt.wantBase), "stdlib errors.Is must agree")
		})
	}
}

func TestParseError(t *testing.T) {
	t.Run("with input", func(t *testing.T) {
		err := NewParse("OSIS", "Gen.x", "unexpected token")
		assert.Equal(t, `failed to parse OSIS "Gen.x": unexpected token`, err.Error())
		assert.True(t, Is(err, ErrInvalidInput))
	})

	t.Run("with underlying error", func(t *testing.T) {
		underlying := fmt.Errorf("yaml: line 3")
		err := &ParseError{Format: "profile", Message: "bad document", Err: underlying}
		assert.Equal(t, "failed to parse profile: bad document", err.Error())
		assert.Same(t, underlying, err.Unwrap())
	})
}

func TestAssertf(t *testing.T) {
	err := Assertf("range endpoint %s has no chapter", "MAT")
	require.Error(t, err)
	assert.True(t, IsAssertion(err))
	assert.Contains(t, err.Error(), "range endpoint MAT has no chapter")
	assert.False(t, IsAssertion(ErrUnknownBook))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrapf(NewUnknownBook("KJV", "XYZ"), "expanding %s", "XYZ.1.1")
	assert.Contains(t, err.Error(), "expanding XYZ.1.1")

	var nf *NotFoundError
	require.True(t, As(err, &nf))
	assert.Equal(t, "XYZ", nf.Key)
}
