// Package apperr classifies failures crossing the request boundary.
//
// The pipeline wraps errors with a Kind exactly where the fault class is
// known (adapter or composition root); handlers map kinds to HTTP status
// codes in one place and never inspect error strings.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindUnknown is the zero value; treated as a server fault.
	KindUnknown Kind = iota
	// KindConfiguration: required credentials or settings are missing.
	KindConfiguration
	// KindClientInput: malformed request data (timestamp, coordinates).
	KindClientInput
	// KindInfrastructure: proximity or reference-data store unreachable.
	KindInfrastructure
	// KindUpstreamProvider: directions provider returned a non-success.
	KindUpstreamProvider
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindClientInput:
		return "client_input"
	case KindInfrastructure:
		return "infrastructure"
	case KindUpstreamProvider:
		return "upstream_provider"
	default:
		return "unknown"
	}
}

// Error attaches a Kind to an underlying error while staying transparent to
// errors.Is/errors.As on the wrapped chain.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with kind. A nil err stays nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// New tags a fresh error built from format and args.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the outermost kind found in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
