package models

// Collection names shared by the mock store, the seed document and the console.
const (
	CollectionEvents        = "events"
	CollectionChapters      = "chapters"
	CollectionSponsors      = "sponsors"
	CollectionOpportunities = "opportunities"
	CollectionMentorships   = "mentorships"
	CollectionQA            = "qa"
	CollectionSpotlights    = "spotlights"
	CollectionProfiles      = "profiles"
)

// Collections lists every collection the system manages.
var Collections = []string{
	CollectionEvents,
	CollectionChapters,
	CollectionSponsors,
	CollectionOpportunities,
	CollectionMentorships,
	CollectionQA,
	CollectionSpotlights,
	CollectionProfiles,
}
