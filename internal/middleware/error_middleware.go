package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories/remote"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// HandleAPIError writes the envelope for an error that escaped a service call.
func HandleAPIError(c *gin.Context, err error) {
	detail := ErrorDetail(err)
	if detail.Code >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(detail.Code, dto.Fail[dto.Empty](detail))
}

// ErrorDetail maps err to the envelope error, keeping the status of an upstream HTTP failure.
func ErrorDetail(err error) *dto.ErrorDetail {
	var httpErr *remote.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Detail != nil {
			detail := *httpErr.Detail
			detail.Code = httpErr.StatusCode
			return &detail
		}
		code := httpErr.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		return dto.NewErrorDetail(code, dto.ErrorCodeExternalServiceError, httpErr.Error())
	}
	return dto.DetailFromError(err)
}

// AbortWithError aborts the request with the envelope for detail.
func AbortWithError(c *gin.Context, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(detail.Code, dto.Fail[dto.Empty](detail))
}
