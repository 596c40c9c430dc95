package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/services"
)

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation, services.KindConflict, services.KindAuth:
		return http.StatusBadRequest
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes {"message": ...} with the status matching err. Internal errors are
// attached to the context so the request logger records them.
func Fail(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}

// BadRequest answers 400 with msg.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msg})
}

// IsTypeError reports whether a JSON bind error was caused by field having the wrong type.
func IsTypeError(err error, field string) bool {
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) {
		return false
	}
	return ute.Field == field || strings.HasPrefix(ute.Field, field+".")
}
