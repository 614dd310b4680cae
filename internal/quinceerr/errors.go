// Package quinceerr defines the error taxonomy from spec.md §7: small,
// typed errors the CLI layer maps to user-visible messages and exit
// codes, in the same plain-struct-with-Error()-method style go-git
// itself uses for its own sentinel/typed errors (e.g.
// config.ErrRemoteConfigNotFound).
package quinceerr

import (
	"fmt"
	"strings"
)

// NoParserError reports that no parser is registered for a source
// file's extension.
type NoParserError struct {
	Source string
}

func (e *NoParserError) Error() string {
	return fmt.Sprintf("quince: no parser available for the file %s", e.Source)
}

// PreconditionMode names the sink mode a precondition failure was
// raised under.
type PreconditionMode int

const (
	PreconditionExists PreconditionMode = iota
	PreconditionNotExists
)

func (m PreconditionMode) String() string {
	if m == PreconditionExists {
		return "Exists"
	}
	return "NotExists"
}

// PreconditionFailedError reports an Exists/NotExists sink mode
// mismatch.
type PreconditionFailedError struct {
	Mode       PreconditionMode
	S, P, O, G string
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("quince: precondition failed: %s for %s %s %s %s", e.Mode, e.S, e.P, e.O, e.G)
}

// NamespaceExistsError reports a duplicate namespace prefix add.
type NamespaceExistsError struct{ Prefix string }

func (e *NamespaceExistsError) Error() string {
	return fmt.Sprintf("quince: a namespace with the prefix %q already exists", e.Prefix)
}

// NoSuchNamespaceError reports an unknown namespace prefix.
type NoSuchNamespaceError struct{ Prefix string }

func (e *NoSuchNamespaceError) Error() string {
	return fmt.Sprintf("quince: no such namespace %q", e.Prefix)
}

// RemoteExistsError reports a duplicate remote name add.
type RemoteExistsError struct{ Name string }

func (e *RemoteExistsError) Error() string {
	return fmt.Sprintf("quince: a remote with the name %q already exists", e.Name)
}

// NoSuchRemoteError reports an unknown remote name.
type NoSuchRemoteError struct{ Name string }

func (e *NoSuchRemoteError) Error() string {
	return fmt.Sprintf("quince: no such remote %q", e.Name)
}

// ArgumentError reports a single term-position parse failure.
type ArgumentError struct{ Msg string }

func (e *ArgumentError) Error() string { return e.Msg }

// MultiError collects every inner error from a multi-position
// validation, so the user sees every problem in one pass.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, inner := range e.Errors {
		parts[i] = inner.Error()
	}
	return "quince: multiple errors: " + strings.Join(parts, "; ")
}

func (e *MultiError) Unwrap() []error { return e.Errors }
