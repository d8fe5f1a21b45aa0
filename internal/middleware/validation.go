package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/pkg/validation"
)

// BindJSON decodes the request body into obj and runs its validation tags.
// It writes a 400 envelope and returns false when either step fails.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		detail := dto.NewErrorDetail(http.StatusBadRequest, dto.ErrorCodeBadRequest, "Invalid request format").
			WithDetails(err.Error())
		AbortWithError(c, detail)
		return false
	}
	if err := validation.Struct(obj); err != nil {
		AbortWithError(c, dto.HandleValidationError(err))
		return false
	}
	return true
}

// BindOptionalJSON decodes an optional request body into obj. An empty body is accepted.
func BindOptionalJSON(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		detail := dto.NewErrorDetail(http.StatusBadRequest, dto.ErrorCodeBadRequest, "Invalid request format").
			WithDetails(err.Error())
		AbortWithError(c, detail)
		return false
	}
	return true
}
