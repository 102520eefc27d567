// Package errors defines the single failure taxonomy of the library.
// Every construction or parsing failure is a ValidationError carrying
// the offending field paths and a human-readable reason.
package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
)

// FieldError locates one invalid field by its dotted path.
type FieldError struct {
	Field  string
	Reason string
}

func (f FieldError) String() string {
	if f.Field == "" {
		return f.Reason
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Reason)
}

// ValidationError aggregates every field failure found during
// construction. A non-nil ValidationError always means zero usable
// instance was produced.
type ValidationError struct {
	Fields []FieldError
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func (e *ValidationError) Add(field, reason string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
	return e
}

// Merge appends the fields of another validation failure, prefixing
// their paths so nested record failures keep their location.
func (e *ValidationError) Merge(prefix string, err error) *ValidationError {
	other, ok := AsValidation(err)
	if !ok {
		if err != nil {
			e.Add(prefix, err.Error())
		}
		return e
	}
	for _, f := range other.Fields {
		field := f.Field
		switch {
		case prefix == "":
		case field == "":
			field = prefix
		default:
			field = prefix + "." + field
		}
		e.Add(field, f.Reason)
	}
	return e
}

// OrNil returns nil when no field failed, so callers can build up an
// error and return it unconditionally.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if goerrors.As(err, &v) {
		return v, true
	}
	return nil, false
}
