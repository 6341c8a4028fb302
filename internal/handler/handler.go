package handler

import (
	"errors"

	"jobboard/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps err onto the HTTP error contract. Errors outside the
// application taxonomy are logged before surfacing as a generic 500; typed
// errors are client mistakes and stay out of the log.
func respondError(c *gin.Context, log *logrus.Logger, err error, op string) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Errorf("Failed to %s: %v", op, err)
	}
	apperr.Respond(c, err)
}
