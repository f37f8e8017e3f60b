// Package errors provides structured error handling for the tk widget layer.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBadParams indicates invalid arguments, a caller bug.
	KindBadParams
	// KindOutOfMemory indicates a storage or capacity failure.
	KindOutOfMemory
	// KindNotFound indicates an unresolved widget type name.
	KindNotFound
	// KindParsing indicates a UI description parsing failure.
	KindParsing
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadParams:
		return "bad_params"
	case KindOutOfMemory:
		return "out_of_memory"
	case KindNotFound:
		return "not_found"
	case KindParsing:
		return "parsing"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

var (
	// ErrBadParams is returned for nil or invalid arguments.
	ErrBadParams = stderrors.New("bad parameters")
	// ErrOutOfMemory is returned when a record cannot be stored.
	ErrOutOfMemory = stderrors.New("out of memory")
	// ErrDestroyed is returned by operations on a destroyed factory.
	ErrDestroyed = fmt.Errorf("factory destroyed: %w", ErrBadParams)
)

// TkError represents a structured error in the widget layer.
type TkError struct {
	// Op is the operation that failed (e.g., "factory.Register").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Type is the widget type name involved, if any.
	Type string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TkError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s [%s] type=%s: %v", e.Op, e.Kind, e.Type, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TkError) Unwrap() error {
	return e.Err
}

// E builds a TkError for op, deriving Kind from err when it wraps one of the
// package sentinels.
func E(op, typeName string, err error) *TkError {
	kind := KindUnknown
	switch {
	case stderrors.Is(err, ErrBadParams):
		kind = KindBadParams
	case stderrors.Is(err, ErrOutOfMemory):
		kind = KindOutOfMemory
	}
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		kind = KindNotFound
	}
	return &TkError{Op: op, Kind: kind, Type: typeName, Err: err}
}

// KindOf returns the kind of the first TkError in err's chain.
func KindOf(err error) ErrorKind {
	var te *TkError
	if stderrors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

// NotFoundError reports a widget type that no table could resolve.
type NotFoundError struct {
	// Type is the requested type name.
	Type string
	// Suggestion is the closest known type name, if one is close enough.
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown widget type %q (did you mean %q?)", e.Type, e.Suggestion)
	}
	return fmt.Sprintf("unknown widget type %q", e.Type)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "factory.CreateWidget").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the widget layer.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TkError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
