package endpoints

import "github.com/yigit/alumnihub/internal/app/models"

// KeyPartners lists sponsors at the partner tier.
const KeyPartners Key = "partners"

// Events endpoints
var Events = resource("/events",
	models.ActionPublish, models.ActionUnpublish, models.ActionCancel, models.ActionComplete,
	models.ActionRegister, models.ActionUnregister, models.ActionView,
)

// Chapters endpoints
var Chapters = resource("/chapters",
	models.ActionActivate, models.ActionDeactivate, models.ActionApprove, models.ActionReject,
	models.ActionJoin, models.ActionLeave,
)

// Sponsors endpoints
var Sponsors = func() Registry {
	r := resource("/sponsors",
		models.ActionActivate, models.ActionDeactivate, models.ActionApprove, models.ActionReject,
		models.ActionRenew, models.ActionExpire,
	)
	r[KeyPartners] = "/partners"
	return r
}()

// Opportunities endpoints
var Opportunities = resource("/opportunities",
	models.ActionActivate, models.ActionApprove, models.ActionReject, models.ActionCancel,
	models.ActionMarkFilled, models.ActionExpire, models.ActionRenew,
	models.ActionView, models.ActionApply,
)

// Mentorships endpoints
var Mentorships = resource("/mentorships",
	models.ActionAccept, models.ActionDecline, models.ActionComplete, models.ActionCancel,
	models.ActionSession,
)

// QA endpoints
var QA = resource("/qa",
	models.ActionAnswer, models.ActionPublish, models.ActionUnpublish, models.ActionReject, models.ActionArchive,
	models.ActionLike, models.ActionUnlike, models.ActionView,
)

// Spotlights endpoints
var Spotlights = resource("/spotlights",
	models.ActionPublish, models.ActionUnpublish, models.ActionSchedule, models.ActionArchive,
	models.ActionLike, models.ActionUnlike, models.ActionView, models.ActionShare,
	models.ActionFeature, models.ActionUnfeature,
)

// Users endpoints serve member profiles
var Users = resource("/users",
	models.ActionActivate, models.ActionDeactivate, models.ActionUpdateNotifications,
)

// BuildEventsEndpoint builds an events URL
func BuildEventsEndpoint(key Key, params map[string]string) string {
	return Events.Build(key, params)
}

// BuildChaptersEndpoint builds a chapters URL
func BuildChaptersEndpoint(key Key, params map[string]string) string {
	return Chapters.Build(key, params)
}

// BuildSponsorsEndpoint builds a sponsors URL
func BuildSponsorsEndpoint(key Key, params map[string]string) string {
	return Sponsors.Build(key, params)
}

// BuildOpportunitiesEndpoint builds an opportunities URL
func BuildOpportunitiesEndpoint(key Key, params map[string]string) string {
	return Opportunities.Build(key, params)
}

// BuildMentorshipsEndpoint builds a mentorships URL
func BuildMentorshipsEndpoint(key Key, params map[string]string) string {
	return Mentorships.Build(key, params)
}

// BuildQAEndpoint builds a Q&A URL
func BuildQAEndpoint(key Key, params map[string]string) string {
	return QA.Build(key, params)
}

// BuildSpotlightsEndpoint builds a spotlights URL
func BuildSpotlightsEndpoint(key Key, params map[string]string) string {
	return Spotlights.Build(key, params)
}

// BuildUsersEndpoint builds a users URL
func BuildUsersEndpoint(key Key, params map[string]string) string {
	return Users.Build(key, params)
}
