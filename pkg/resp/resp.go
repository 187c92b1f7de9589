package resp

import (
	"errors"
	"net/http"
	"strings"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}

// Error converts a domain error into the {"message": ...} shape with the
// status code of its kind. Anything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrEmptyCart),
		errors.Is(err, apperr.ErrMissingField):
		Message(c, http.StatusBadRequest, detail(err))
	case errors.Is(err, apperr.ErrNotFound):
		Message(c, http.StatusNotFound, detail(err))
	case errors.Is(err, apperr.ErrNotAuthorized):
		Message(c, http.StatusForbidden, detail(err))
	case errors.Is(err, apperr.ErrConflict):
		Message(c, http.StatusConflict, detail(err))
	default:
		Message(c, http.StatusInternalServerError, err.Error())
	}
}

// detail strips the kind prefix added by apperr.Wrap, keeping only the
// user-facing part of the message.
func detail(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
