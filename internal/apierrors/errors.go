package apierrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	// KindNotFound covers both genuinely missing resources and resources the
	// caller has no membership for. The two are indistinguishable on purpose:
	// a non-member must not learn whether a project exists.
	KindNotFound
	KindConflict
)

type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func Validation(message string) *Error {
	return &Error{kind: KindValidation, message: message}
}

func Unauthorized(message string) *Error {
	return &Error{kind: KindUnauthorized, message: message}
}

func Forbidden(message string) *Error {
	return &Error{kind: KindForbidden, message: message}
}

func NotFound(message string) *Error {
	return &Error{kind: KindNotFound, message: message}
}

func Conflict(message string) *Error {
	return &Error{kind: KindConflict, message: message}
}

// KindOf classifies any error; wrapped and unknown errors count as internal.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.kind
	}

	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
