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

// SponsorController adds the partner listing to the sponsor resource
type SponsorController struct {
	*ResourceController[models.Sponsor]
	sponsorService services.SponsorService
}

// NewSponsorController creates a new SponsorController
func NewSponsorController(sponsorService services.SponsorService) *SponsorController {
	return &SponsorController{
		ResourceController: NewResourceController[models.Sponsor](sponsorService),
		sponsorService:     sponsorService,
	}
}

// ListPartners handles GET /partners
func (c *SponsorController) ListPartners(ctx *gin.Context) {
	resp, err := c.sponsorService.GetPartners(ctx.Request.Context(), helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(dto.StatusCode(resp.Error, http.StatusOK), resp)
}

// ProfileController adds notification settings to the profile resource
type ProfileController struct {
	*ResourceController[models.Profile]
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		ResourceController: NewResourceController[models.Profile](profileService),
		profileService:     profileService,
	}
}

// UpdateNotifications merges the posted settings into the member's notification preferences
func (c *ProfileController) UpdateNotifications(ctx *gin.Context) {
	var settings dto.Patch
	if !middleware.BindJSON(ctx, &settings) {
		return
	}
	resp, err := c.profileService.UpdateNotifications(ctx.Request.Context(), ctx.Param("id"), settings)
	writeEnvelope(ctx, resp, err, http.StatusOK)
}

// QAController answers questions with a typed body
type QAController struct {
	*ResourceController[models.QAItem]
	qaService services.QAService
}

// AnswerRequest is the body of the answer action
type AnswerRequest struct {
	Answer     string `json:"answer" validate:"required"`
	AnsweredBy string `json:"answeredBy,omitempty"`
}

// NewQAController creates a new QAController
func NewQAController(qaService services.QAService) *QAController {
	return &QAController{
		ResourceController: NewResourceController[models.QAItem](qaService),
		qaService:          qaService,
	}
}

// Answer handles POST /qa/:id/answer
func (c *QAController) Answer(ctx *gin.Context) {
	var req AnswerRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.qaService.AnswerQuestion(ctx.Request.Context(), ctx.Param("id"), req.Answer, req.AnsweredBy)
	writeEnvelope(ctx, resp, err, http.StatusOK)
}

// Controllers holds the controller of every domain
type Controllers struct {
	Events        *ResourceController[models.Event]
	Chapters      *ResourceController[models.Chapter]
	Sponsors      *SponsorController
	Opportunities *ResourceController[models.Opportunity]
	Mentorships   *ResourceController[models.Mentorship]
	QA            *QAController
	Spotlights    *ResourceController[models.Spotlight]
	Profiles      *ProfileController
}

// NewControllers builds every controller over the service set
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Events:        NewResourceController[models.Event](svc.Events),
		Chapters:      NewResourceController[models.Chapter](svc.Chapters),
		Sponsors:      NewSponsorController(svc.Sponsors),
		Opportunities: NewResourceController[models.Opportunity](svc.Opportunities),
		Mentorships:   NewResourceController[models.Mentorship](svc.Mentorships),
		QA:            NewQAController(svc.QA),
		Spotlights:    NewResourceController[models.Spotlight](svc.Spotlights),
		Profiles:      NewProfileController(svc.Profiles),
	}
}
