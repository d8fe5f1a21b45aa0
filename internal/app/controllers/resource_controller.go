package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
)

// ResourceController serves the REST surface of one domain over its service.
// Envelopes from the service are written as they are, with the status their error carries.
type ResourceController[T any] struct {
	service services.Service[T]
}

// NewResourceController creates a controller for service
func NewResourceController[T any](service services.Service[T]) *ResourceController[T] {
	return &ResourceController[T]{service: service}
}

// List handles GET on the collection. Query parameters other than page and limit are filters.
func (rc *ResourceController[T]) List(ctx *gin.Context) {
	resp, err := rc.service.List(ctx.Request.Context(), helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(dto.StatusCode(resp.Error, http.StatusOK), resp)
}

// Get handles GET on a single record
func (rc *ResourceController[T]) Get(ctx *gin.Context) {
	resp, err := rc.service.Get(ctx.Request.Context(), ctx.Param("id"))
	writeEnvelope(ctx, resp, err, http.StatusOK)
}

// Create handles POST on the collection
func (rc *ResourceController[T]) Create(ctx *gin.Context) {
	var item T
	if !middleware.BindJSON(ctx, &item) {
		return
	}
	resp, err := rc.service.Create(ctx.Request.Context(), item)
	writeEnvelope(ctx, resp, err, http.StatusCreated)
}

// Update handles PUT with a partial record body
func (rc *ResourceController[T]) Update(ctx *gin.Context) {
	var patch dto.Patch
	if !middleware.BindJSON(ctx, &patch) {
		return
	}
	resp, err := rc.service.Update(ctx.Request.Context(), ctx.Param("id"), patch)
	writeEnvelope(ctx, resp, err, http.StatusOK)
}

// Delete handles DELETE on a single record
func (rc *ResourceController[T]) Delete(ctx *gin.Context) {
	resp, err := rc.service.Delete(ctx.Request.Context(), ctx.Param("id"))
	writeEnvelope(ctx, resp, err, http.StatusOK)
}

// Action returns the handler of one record action. The optional JSON body is the action payload.
func (rc *ResourceController[T]) Action(action models.Action) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var payload dto.Patch
		if !middleware.BindOptionalJSON(ctx, &payload) {
			return
		}
		resp, err := rc.service.Do(ctx.Request.Context(), ctx.Param("id"), action, payload)
		writeEnvelope(ctx, resp, err, http.StatusOK)
	}
}

// Bulk handles POST on the bulk endpoint
func (rc *ResourceController[T]) Bulk(ctx *gin.Context) {
	var req dto.BulkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	resp, err := rc.service.Bulk(ctx.Request.Context(), models.Action(req.Operation), req.IDs)
	writeEnvelope(ctx, resp, err, http.StatusOK)
}

func writeEnvelope[T any](ctx *gin.Context, resp dto.APIResponse[T], err error, success int) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(dto.StatusCode(resp.Error, success), resp)
}
