package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError decodes the body into dst. An empty body leaves dst at its
// zero value when allowEmpty is set.
func BindJSONOrError[T any](c *gin.Context, dst *T, allowEmpty bool) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		if allowEmpty {
			return true
		}
		RespondError(c, http.StatusBadRequest, "request body is empty")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		_ = c.Error(err)
		RespondError(c, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return false
	}
	return true
}
