package calcerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorKindsUnwrapToSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want error
		kind Kind
	}{
		{Missing("weight"), ErrMissingInput, KindMissingInput},
		{InvalidEnum("goal", "shred"), ErrInvalidEnum, KindInvalidEnum},
		{Domain("waist", "must exceed neck"), ErrDomain, KindDomain},
	}
	for _, c := range cases {
		wrapped := fmt.Errorf("calc: %w", c.err)
		if !errors.Is(wrapped, c.want) {
			t.Errorf("%v: expected errors.Is to match %v", c.err, c.want)
		}
		if !IsKind(wrapped, c.kind) {
			t.Errorf("%v: expected kind %s", c.err, c.kind)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Missing("weight"), "weight is required"},
		{InvalidEnum("goal", "shred"), `invalid goal "shred"`},
		{Domain("waist", "must exceed neck (%g <= %g)", 30.0, 40.0), "waist: must exceed neck (30 <= 40)"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if got := Status(Missing("x")); got != http.StatusBadRequest {
		t.Errorf("missing: got %d", got)
	}
	if got := Status(InvalidEnum("x", "y")); got != http.StatusBadRequest {
		t.Errorf("enum: got %d", got)
	}
	if got := Status(Domain("x", "bad")); got != http.StatusUnprocessableEntity {
		t.Errorf("domain: got %d", got)
	}
	if got := Status(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("other: got %d", got)
	}
	if got := Message(errors.New("boom")); got != "Calculation error" {
		t.Errorf("Message(other) = %q", got)
	}
}

func TestPositive(t *testing.T) {
	if err := Positive("height", 0); !IsKind(err, KindMissingInput) {
		t.Fatalf("expected missing input, got %v", err)
	}
	if err := Positive("height", 170); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
