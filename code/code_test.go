package code

import (
	"regexp"
	"testing"
)

func TestGenerateRandom(t *testing.T) {
	code := GenerateRandom()
	if len(code) != codeLength {
		t.Errorf("wrong length expected: %d got %d", codeLength, len(code))
	}
	if !regexp.MustCompile(`^[A-Za-z0-9]{6}$`).MatchString(code) {
		t.Errorf("code %q contains characters outside the alphanumeric alphabet", code)
	}
}
