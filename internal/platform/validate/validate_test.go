package validate

import (
	"testing"

	perr "munchmates/internal/platform/errors"
)

type opts struct {
	Input string `json:"input" validate:"required"`
	Words string `json:"words" validate:"required"`
}

func TestStructValid(t *testing.T) {
	if err := Struct(opts{Input: "./ingredients.txt", Words: "./words.json"}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
}

func TestStructMissingField(t *testing.T) {
	err := Struct(opts{Input: "./ingredients.txt"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want validation", perr.CodeOf(err))
	}
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("not a platform error: %v", err)
	}
	// field name comes from the json tag
	if e.Field() != "words" {
		t.Fatalf("field = %q, want %q", e.Field(), "words")
	}
}

func TestGetReturnsSingleton(t *testing.T) {
	if Get() != Get() {
		t.Fatalf("Get should return the same singleton")
	}
}
