package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error.
type Kind int

const (
	// KindValidation marks malformed or missing caller input.
	KindValidation Kind = iota + 1
	// KindNotFound marks a reference to an entity that does not exist.
	KindNotFound
	// KindBusinessRule marks well-formed input that breaks a domain invariant.
	KindBusinessRule
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindBusinessRule:
		return "business_rule"
	default:
		return "unknown"
	}
}

// Error is a domain error carrying its kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation returns a KindValidation error.
func Validation(format string, args ...any) error {
	return newError(KindValidation, format, args...)
}

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

// BusinessRule returns a KindBusinessRule error.
func BusinessRule(format string, args ...any) error {
	return newError(KindBusinessRule, format, args...)
}

// KindOf reports the kind of the first domain error in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}

// Is reports whether err is a domain error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsDomain reports whether err is any domain error, as opposed to an infrastructure fault.
func IsDomain(err error) bool {
	_, ok := KindOf(err)
	return ok
}

// Wrap annotates err with the operation that produced it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
