package validation

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestValidateReferenceText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLen    int
		wantError error
	}{
		{name: "simple reference", text: "Mat. 7:3", wantError: nil},
		{name: "list of references", text: "Gen. 1-11; Rev. 1:1", wantError: nil},
		{name: "tab allowed", text: "Mat.\t7:3", wantError: nil},
		{name: "non-ASCII", text: "1 Kön 3,16–18", wantError: nil},
		{name: "empty", text: "", wantError: ErrEmptyInput},
		{name: "too long for custom limit", text: "Mat. 7:3", maxLen: 4, wantError: ErrInputTooLong},
		{name: "too long for default limit", text: strings.Repeat("a", MaxReferenceLength+1), wantError: ErrInputTooLong},
		{name: "null byte", text: "Mat\x00 7:3", wantError: ErrInvalidCharacter},
		{name: "newline", text: "Mat 7:3\nGen 1", wantError: ErrInvalidCharacter},
		{name: "invalid UTF-8", text: "Mat \xff", wantError: ErrInvalidEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReferenceText(tt.text, tt.maxLen)
			if tt.wantError == nil {
				if err != nil {
					t.Errorf("ValidateReferenceText(%q) = %v, want nil", tt.text, err)
				}
				return
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("ValidateReferenceText(%q) = %v, want %v", tt.text, err, tt.wantError)
			}
		})
	}
}

func TestValidateEnum(t *testing.T) {
	if err := ValidateEnum("spaceAllowedAfterBCS", "E", "Y", "N", "E"); err != nil {
		t.Errorf("ValidateEnum(E) = %v, want nil", err)
	}
	err := ValidateEnum("spaceAllowedAfterBCS", "maybe", "Y", "N", "E")
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("ValidateEnum(maybe) = %v, want %v", err, ErrInvalidField)
	}
	if !strings.Contains(err.Error(), "spaceAllowedAfterBCS") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestValidatePunctuation(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		optional bool
		wantErr  bool
	}{
		{"single", ":", false, false},
		{"alternatives", "–-", false, false},
		{"space", " ", false, false},
		{"empty optional", "", true, false},
		{"empty required", "", false, true},
		{"letter", "a", false, true},
		{"digit", "1", false, true},
		{"control", "\n", false, true},
		{"too long", strings.Repeat("-", MaxFieldLength+1), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePunctuation("verseBridgeCharacter", tt.value, tt.optional)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePunctuation(%q) = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidField) {
				t.Errorf("error %v is not ErrInvalidField", err)
			}
		})
	}
}

func TestValidateSuffixes(t *testing.T) {
	for _, ok := range []string{"", "abcde", "ab"} {
		if err := ValidateSuffixes("allowedVerseSuffixes", ok); err != nil {
			t.Errorf("ValidateSuffixes(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"A", "a1", "a-"} {
		if err := ValidateSuffixes("allowedVerseSuffixes", bad); !errors.Is(err, ErrInvalidField) {
			t.Errorf("ValidateSuffixes(%q) = %v, want %v", bad, err, ErrInvalidField)
		}
	}
}
