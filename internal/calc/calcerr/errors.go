// Package calcerr classifies calculator failures so callers can tell bad
// input apart from a formula that cannot be evaluated.
package calcerr

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("missing input")
	ErrInvalidEnum  = errors.New("invalid enum value")
	ErrDomain       = errors.New("formula domain error")
)

type Kind string

const (
	KindMissingInput Kind = "missing_input"
	KindInvalidEnum  Kind = "invalid_enum"
	KindDomain       Kind = "domain"
)

// Error carries the failing field and, for enums, the rejected value.
type Error struct {
	Kind  Kind
	Field string
	Value string
	Msg   string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindMissingInput:
		return fmt.Sprintf("%s is required", e.Field)
	case KindInvalidEnum:
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	default:
		if e.Field != "" {
			return fmt.Sprintf("%s: %s", e.Field, e.Msg)
		}
		return e.Msg
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindMissingInput:
		return ErrMissingInput
	case KindInvalidEnum:
		return ErrInvalidEnum
	default:
		return ErrDomain
	}
}

func Missing(field string) error {
	return &Error{Kind: KindMissingInput, Field: field}
}

func InvalidEnum(field, value string) error {
	return &Error{Kind: KindInvalidEnum, Field: field, Value: value}
}

func Domain(field, format string, args ...any) error {
	return &Error{Kind: KindDomain, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a calculator error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or "" for errors not raised by a calculator.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// Positive returns a Missing error when v is not a usable positive measurement.
func Positive(field string, v float64) error {
	if v <= 0 {
		return Missing(field)
	}
	return nil
}
