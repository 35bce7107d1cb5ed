package resp

import (
	"errors"
	"net/http"

	"scoup/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func OK(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "code": http.StatusOK, "message": msg, "data": data})
}
func Created(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "code": http.StatusCreated, "message": msg, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "code": "BAD_REQUEST", "message": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "code": "UNAUTHORIZED", "message": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "code": "FORBIDDEN", "message": msg})
}
func ServerError(c *gin.Context, err error) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "code": "INTERNAL_ERROR", "message": "internal server error"})
}

// Fail renders err as a structured error. Domain errors keep their own
// code and status; anything else is a 500.
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, gin.H{"ok": false, "code": ae.Code, "message": ae.Message})
		return
	}
	ServerError(c, err)
}
