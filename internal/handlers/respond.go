package handlers

import (
	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/apperr"
)

// renderError writes an application error as JSON. Per-field messages go in
// "errors" as field -> [messages], the shape the admin console reads.
func renderError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	body := gin.H{"error": appErr.Message}
	if len(appErr.FieldErrors) > 0 {
		body["errors"] = appErr.FieldErrors
	}
	c.JSON(appErr.HTTPStatus(), body)
}
