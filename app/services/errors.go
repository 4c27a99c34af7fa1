package services

import (
	"errors"
	"fmt"
)

// ErrorKind categorises the failures a TodoStore operation can report.
type ErrorKind int

const (
	KindInvalidLength ErrorKind = iota + 1
	KindDuplicateName
	KindNotFound
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidLength:
		return "invalid_length"
	case KindDuplicateName:
		return "duplicate_name"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is returned by every TodoStore operation that refuses to run.
// Message is safe to show to the user.
type Error struct {
	Kind     ErrorKind
	Message  string
	Resource string
	ID       int
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrInvalidLength = &Error{Kind: KindInvalidLength}
	ErrDuplicateName = &Error{Kind: KindDuplicateName}
	ErrNotFound      = &Error{Kind: KindNotFound}
)

func (e *Error) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("%s: %s %d", e.Kind, e.Resource, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches on kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

const (
	msgListNameLength = "The list name must be between 1 and 100 characters."
	msgListNameUnique = "List name must be unique."
	msgTodoLength     = "Todo must be between 1 and 100 characters."
	msgListNotFound   = "The specified list was not found."
	msgTodoNotFound   = "The specified todo was not found."
)

func newInvalidLengthError(message string) *Error {
	return &Error{Kind: KindInvalidLength, Message: message}
}

func newDuplicateNameError() *Error {
	return &Error{Kind: KindDuplicateName, Message: msgListNameUnique}
}

func newListNotFoundError(id int) *Error {
	return &Error{Kind: KindNotFound, Message: msgListNotFound, Resource: "list", ID: id}
}

func newTodoNotFoundError(id int) *Error {
	return &Error{Kind: KindNotFound, Message: msgTodoNotFound, Resource: "todo", ID: id}
}

// IsNotFound reports whether err is a missing list or todo.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err was caused by bad user input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidLength) || errors.Is(err, ErrDuplicateName)
}

// UserMessage returns the message to flash for err.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "An unexpected error occurred. Please try again."
}
