package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/controllers"
	"github.com/yigit/alumnihub/internal/app/endpoints"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/middleware"
)

// APIPrefix is where the alumni REST API is mounted. Registry templates are relative to it.
const APIPrefix = "/api"

// resourceHandlers are the handlers a registry is wired to
type resourceHandlers struct {
	list, get, create, update, remove, bulk gin.HandlerFunc
	action                                  func(models.Action) gin.HandlerFunc
	// overrides replace the generic handler of a key
	overrides map[endpoints.Key]gin.HandlerFunc
}

func handlersFor[T any](rc *controllers.ResourceController[T]) resourceHandlers {
	return resourceHandlers{
		list:   rc.List,
		get:    rc.Get,
		create: rc.Create,
		update: rc.Update,
		remove: rc.Delete,
		bulk:   rc.Bulk,
		action: rc.Action,
	}
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers, adminAuth *middleware.AdminAuth) {
	api := router.Group(APIPrefix)
	admin := adminAuth.RequireAdmin()

	register(api, endpoints.Events, handlersFor(ctrl.Events), admin)
	register(api, endpoints.Chapters, handlersFor(ctrl.Chapters), admin)
	register(api, endpoints.Opportunities, handlersFor(ctrl.Opportunities), admin)
	register(api, endpoints.Mentorships, handlersFor(ctrl.Mentorships), admin)
	register(api, endpoints.Spotlights, handlersFor(ctrl.Spotlights), admin)

	sponsors := handlersFor(ctrl.Sponsors.ResourceController)
	sponsors.overrides = map[endpoints.Key]gin.HandlerFunc{endpoints.KeyPartners: ctrl.Sponsors.ListPartners}
	register(api, endpoints.Sponsors, sponsors, admin)

	qa := handlersFor(ctrl.QA.ResourceController)
	qa.overrides = map[endpoints.Key]gin.HandlerFunc{endpoints.ActionKey(models.ActionAnswer): ctrl.QA.Answer}
	register(api, endpoints.QA, qa, admin)

	profiles := handlersFor(ctrl.Profiles.ResourceController)
	profiles.overrides = map[endpoints.Key]gin.HandlerFunc{
		endpoints.ActionKey(models.ActionUpdateNotifications): ctrl.Profiles.UpdateNotifications,
	}
	register(api, endpoints.Users, profiles, admin)

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.OK(gin.H{"status": "ok", "time": time.Now().UTC()}, "Service is healthy"))
	})
}

// register mounts every key of registry. Reads and engagement actions are public, every other mutation needs admin.
func register(group *gin.RouterGroup, registry endpoints.Registry, h resourceHandlers, admin gin.HandlerFunc) {
	for _, key := range registry.Keys() {
		path := registry[key]
		if handler, ok := h.overrides[key]; ok {
			if key == endpoints.KeyPartners {
				group.GET(path, handler)
			} else {
				group.POST(path, admin, handler)
			}
			continue
		}

		switch key {
		case endpoints.KeyList:
			group.GET(path, h.list)
		case endpoints.KeyGet:
			group.GET(path, h.get)
		case endpoints.KeyCreate:
			group.POST(path, admin, h.create)
		case endpoints.KeyUpdate:
			group.PUT(path, admin, h.update)
		case endpoints.KeyDelete:
			group.DELETE(path, admin, h.remove)
		case endpoints.KeyBulk:
			group.POST(path, admin, h.bulk)
		default:
			action := models.Action(key)
			if models.IsEngagement(action) {
				group.POST(path, h.action(action))
			} else {
				group.POST(path, admin, h.action(action))
			}
		}
	}
}
