package middleware

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories/remote"
	"github.com/yigit/alumnihub/internal/pkg/apperrors"
)

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name: "upstream envelope keeps upstream status",
			err: &remote.HTTPError{StatusCode: http.StatusConflict, Method: "POST", Path: "/events/e1/publish",
				Detail: &dto.ErrorDetail{Code: 409, Type: dto.ErrorCodeInvalidTransition, Message: "no"}},
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeInvalidTransition,
		},
		{
			name:       "upstream failure without envelope",
			err:        &remote.HTTPError{StatusCode: http.StatusServiceUnavailable, Method: "GET", Path: "/events"},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrorCodeExternalServiceError,
		},
		{
			name:       "wrapped upstream failure",
			err:        fmt.Errorf("listing: %w", &remote.HTTPError{StatusCode: http.StatusNotFound, Method: "GET", Path: "/x"}),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeExternalServiceError,
		},
		{
			name:       "cancelled request",
			err:        fmt.Errorf("GET /events: %w", context.Canceled),
			wantStatus: dto.StatusClientClosedRequest,
			wantCode:   dto.ErrorCodeRequestCanceled,
		},
		{
			name:       "storage failure",
			err:        fmt.Errorf("%w: disk full", apperrors.ErrStorage),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeStorageError,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := ErrorDetail(tt.err)
			assert.Equal(t, tt.wantStatus, detail.Code)
			assert.Equal(t, tt.wantCode, detail.Type)
		})
	}
}
