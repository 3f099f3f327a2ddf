// Package errs provides the error taxonomy shared by the storage and service
// layers and its mapping onto GraphQL error extensions.
//
// Every failure surfaced to the transport carries one of five codes:
//
//   - NotFound: a referenced entity id does not resolve
//   - InvalidArgument: malformed id or missing required field
//   - Conflict: uniqueness violation (email, team name, leader already assigned)
//   - Unauthenticated: the operation requires an identity not present in context
//   - Internal: unexpected store failure
//
// Services re-wrap repository failures with operation context via Wrap before
// surfacing them; the code of the original error is preserved through the
// chain and recoverable with CodeOf and the Is* predicates.
package errs

import (
	"errors"
	"fmt"
)

// Code classifies an error for transport mapping. The values double as the
// GraphQL extensions.code strings.
type Code string

const (
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidArgument Code = "BAD_USER_INPUT"
	CodeConflict        Code = "CONFLICT"
	CodeUnauthenticated Code = "AUTHENTICATION_REQUIRED"
	CodeInternal        Code = "INTERNAL_SERVER_ERROR"
)

// Error is a classified error with optional operation context and the ids
// involved in the failing operation.
type Error struct {
	Code Code
	// Op identifies the failing operation, e.g. "HierarchyService.ReassignCategory".
	Op string
	// Args lists the ids involved, surfaced as extensions.invalidArgs.
	Args []string
	// Message is the human-readable description.
	Message string
	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface in "op: message: cause" form.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// Extensions implements the graphql-go gqlerrors.ExtendedError interface so
// that classified errors surface their code and arguments to API clients.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": string(e.Code)}
	if len(e.Args) == 1 {
		ext["invalidArgs"] = e.Args[0]
	} else if len(e.Args) > 1 {
		ext["invalidArgs"] = e.Args
	}
	return ext
}

// New creates a classified error. The ids involved may be attached for
// transport-level reporting.
func New(code Code, message string, ids ...string) *Error {
	return &Error{Code: code, Message: message, Args: ids}
}

// NotFound creates a NotFound error.
func NotFound(message string, ids ...string) *Error {
	return New(CodeNotFound, message, ids...)
}

// InvalidArgument creates an InvalidArgument error.
func InvalidArgument(message string, ids ...string) *Error {
	return New(CodeInvalidArgument, message, ids...)
}

// Conflict creates a Conflict error.
func Conflict(message string, ids ...string) *Error {
	return New(CodeConflict, message, ids...)
}

// Unauthenticated creates an Unauthenticated error.
func Unauthenticated(message string) *Error {
	return New(CodeUnauthenticated, message)
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// Wrap annotates err with operation context and the ids involved, preserving
// its code. A nil err yields nil; an unclassified err becomes Internal.
func Wrap(err error, op string, ids ...string) error {
	if err == nil {
		return nil
	}
	e := &Error{Code: CodeOf(err), Op: op, Message: "operation failed", Err: err}
	if ce := classified(err); ce != nil {
		e.Message = ce.Message
		if len(ids) == 0 {
			ids = ce.Args
		}
	}
	e.Args = ids
	return e
}

// CodeOf returns the classification of err, defaulting to Internal for
// unclassified errors and nil.
func CodeOf(err error) Code {
	if ce := classified(err); ce != nil {
		return ce.Code
	}
	return CodeInternal
}

// IsNotFound reports whether err is classified NotFound.
func IsNotFound(err error) bool { return is(err, CodeNotFound) }

// IsInvalidArgument reports whether err is classified InvalidArgument.
func IsInvalidArgument(err error) bool { return is(err, CodeInvalidArgument) }

// IsConflict reports whether err is classified Conflict.
func IsConflict(err error) bool { return is(err, CodeConflict) }

// IsUnauthenticated reports whether err is classified Unauthenticated.
func IsUnauthenticated(err error) bool { return is(err, CodeUnauthenticated) }

func is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

func classified(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// Errorf creates an unclassified Internal error from a format string.
// Prefer the code-specific constructors where the classification is known.
func Errorf(format string, a ...interface{}) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, a...)}
}
