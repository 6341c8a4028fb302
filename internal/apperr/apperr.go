package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies an application error so the transport layer can map it to an
// HTTP status. Anything outside this taxonomy is treated as an internal error.
type Kind int

const (
	KindUnauthorized Kind = iota + 1
	KindBadRequest
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func BadRequest(message string) error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Respond writes the JSON error response for err. Typed errors map to their
// status; anything else becomes a generic 500 so internal details never leak.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case KindUnauthorized:
		status = http.StatusUnauthorized
	case KindBadRequest:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
