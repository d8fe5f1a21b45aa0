package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/alumnihub/internal/app/models"
)

func TestRegistry_Build(t *testing.T) {
	tests := []struct {
		name   string
		build  func() string
		expect string
	}{
		{"list", func() string { return BuildEventsEndpoint(KeyList, nil) }, "/events"},
		{"get", func() string { return BuildChaptersEndpoint(KeyGet, ID("chp-001")) }, "/chapters/chp-001"},
		{"action", func() string { return BuildQAEndpoint(ActionKey(models.ActionLike), ID("qa-1")) }, "/qa/qa-1/like"},
		{"bulk", func() string { return BuildMentorshipsEndpoint(KeyBulk, nil) }, "/mentorships/bulk"},
		{"partners", func() string { return BuildSponsorsEndpoint(KeyPartners, nil) }, "/partners"},
		{"users notifications", func() string {
			return BuildUsersEndpoint(ActionKey(models.ActionUpdateNotifications), ID("usr-1"))
		}, "/users/usr-1/notifications"},
		{"unknown key", func() string { return BuildSpotlightsEndpoint(ActionKey(models.ActionJoin), ID("x")) }, ""},
		{"missing param keeps token", func() string { return BuildOpportunitiesEndpoint(KeyUpdate, nil) }, "/opportunities/:id"},
		{"extra params ignored", func() string {
			return BuildEventsEndpoint(KeyDelete, map[string]string{"id": "evt-1", "other": "x"})
		}, "/events/evt-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.build())
		})
	}
}

func TestRegistry_Keys(t *testing.T) {
	keys := Mentorships.Keys()

	assert.Equal(t, []Key{"accept", "bulk", "cancel", "complete", "create", "decline", "delete", "get", "list", "session", "update"}, keys)
	assert.True(t, Sponsors.Has(KeyPartners))
	assert.False(t, Events.Has(KeyPartners))
}
