package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies service errors so the HTTP layer can map them to a
// status code without string matching.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindPermission
	KindStorage
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource string, id uint) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", resource, id)}
}

func Permission(message string) *Error {
	return &Error{Kind: KindPermission, Message: message}
}

// Storage wraps a database or transaction failure. The original error is
// preserved for logging; callers must not retry inside the service layer.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "storage failure", Err: err}
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool { return is(err, KindValidation) }
func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsPermission(err error) bool { return is(err, KindPermission) }
func IsStorage(err error) bool    { return is(err, KindStorage) }

func is(err error, k Kind) bool {
	kind, ok := KindOf(err)
	return ok && kind == k
}
