package handlers

import (
	"errors"
	"io"
	"net/http"

	"catalog_service/internal/service"

	"github.com/gin-gonic/gin"
)

// Boundary errors raised before a service is reached.
var (
	errInvalidBody   = errors.New("Invalid JSON body")
	errInvalidAction = errors.New("Invalid action")
)

const errInternal = "internal server error"

// statusFor maps a domain error to its HTTP status; 0 means unexpected.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrCredentialsRequired),
		errors.Is(err, service.ErrItemInvalid),
		errors.Is(err, service.ErrInvalidPaging),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return 0
	}
}

// respondError writes the error JSON. Known errors go out verbatim; anything
// else is logged under logKey and reported as a generic server fault.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if code := statusFor(err); code != 0 {
		if h.log != nil {
			h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isEmptyBody reports whether a bind error only means "no body was sent".
func isEmptyBody(err error) bool {
	return errors.Is(err, io.EOF)
}
