package commands

import (
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/export"
)

type servicesFn func() *services.Services

func eventsDomain(svc servicesFn) Domain[models.Event] {
	return Domain[models.Event]{
		Name:    "events",
		Short:   "Manage alumni events",
		Sheet:   "Events",
		Service: func() services.Service[models.Event] { return svc().Events },
		Columns: []export.Column[models.Event]{
			{Header: "id", Value: func(e models.Event) interface{} { return e.ID }},
			{Header: "title", Value: func(e models.Event) interface{} { return e.Title }},
			{Header: "type", Value: func(e models.Event) interface{} { return string(e.Type) }},
			{Header: "status", Value: func(e models.Event) interface{} { return string(e.Status) }},
			{Header: "start", Value: func(e models.Event) interface{} { return export.Stamp(e.StartDate) }},
			{Header: "location", Value: func(e models.Event) interface{} { return e.Location }},
			{Header: "capacity", Value: func(e models.Event) interface{} { return e.Capacity }},
			{Header: "attendees", Value: func(e models.Event) interface{} { return e.AttendeeCount }},
			{Header: "next occurrence", Value: func(e models.Event) interface{} { return export.Time(e.NextOccurrence) }},
		},
	}
}

func chaptersDomain(svc servicesFn) Domain[models.Chapter] {
	return Domain[models.Chapter]{
		Name:    "chapters",
		Short:   "Manage alumni chapters",
		Sheet:   "Chapters",
		Service: func() services.Service[models.Chapter] { return svc().Chapters },
		Columns: []export.Column[models.Chapter]{
			{Header: "id", Value: func(c models.Chapter) interface{} { return c.ID }},
			{Header: "name", Value: func(c models.Chapter) interface{} { return c.Name }},
			{Header: "type", Value: func(c models.Chapter) interface{} { return string(c.Type) }},
			{Header: "status", Value: func(c models.Chapter) interface{} { return string(c.Status) }},
			{Header: "city", Value: func(c models.Chapter) interface{} { return c.City }},
			{Header: "country", Value: func(c models.Chapter) interface{} { return c.Country }},
			{Header: "members", Value: func(c models.Chapter) interface{} { return c.MemberCount }},
		},
	}
}

func sponsorsDomain(svc servicesFn) Domain[models.Sponsor] {
	return Domain[models.Sponsor]{
		Name:    "sponsors",
		Short:   "Manage sponsors and partners",
		Sheet:   "Sponsors",
		Service: func() services.Service[models.Sponsor] { return svc().Sponsors },
		Columns: []export.Column[models.Sponsor]{
			{Header: "id", Value: func(s models.Sponsor) interface{} { return s.ID }},
			{Header: "name", Value: func(s models.Sponsor) interface{} { return s.Name }},
			{Header: "tier", Value: func(s models.Sponsor) interface{} { return string(s.Tier) }},
			{Header: "status", Value: func(s models.Sponsor) interface{} { return string(s.Status) }},
			{Header: "contribution", Value: func(s models.Sponsor) interface{} { return export.Amount(s.ContributionAmount) }},
			{Header: "currency", Value: func(s models.Sponsor) interface{} { return s.Currency }},
			{Header: "ends", Value: func(s models.Sponsor) interface{} { return export.Time(s.SponsorshipEnd) }},
		},
	}
}

func opportunitiesDomain(svc servicesFn) Domain[models.Opportunity] {
	return Domain[models.Opportunity]{
		Name:    "opportunities",
		Short:   "Manage job and volunteer opportunities",
		Sheet:   "Opportunities",
		Service: func() services.Service[models.Opportunity] { return svc().Opportunities },
		Columns: []export.Column[models.Opportunity]{
			{Header: "id", Value: func(o models.Opportunity) interface{} { return o.ID }},
			{Header: "title", Value: func(o models.Opportunity) interface{} { return o.Title }},
			{Header: "company", Value: func(o models.Opportunity) interface{} { return o.Company }},
			{Header: "type", Value: func(o models.Opportunity) interface{} { return string(o.Type) }},
			{Header: "status", Value: func(o models.Opportunity) interface{} { return string(o.Status) }},
			{Header: "salary min", Value: func(o models.Opportunity) interface{} { return export.Amount(o.SalaryMin) }},
			{Header: "salary max", Value: func(o models.Opportunity) interface{} { return export.Amount(o.SalaryMax) }},
			{Header: "applications", Value: func(o models.Opportunity) interface{} { return o.ApplicationCount }},
			{Header: "expires", Value: func(o models.Opportunity) interface{} { return export.Time(o.ExpiryDate) }},
		},
	}
}

func mentorshipsDomain(svc servicesFn) Domain[models.Mentorship] {
	return Domain[models.Mentorship]{
		Name:    "mentorships",
		Short:   "Manage mentorship pairings",
		Sheet:   "Mentorships",
		Service: func() services.Service[models.Mentorship] { return svc().Mentorships },
		Columns: []export.Column[models.Mentorship]{
			{Header: "id", Value: func(m models.Mentorship) interface{} { return m.ID }},
			{Header: "title", Value: func(m models.Mentorship) interface{} { return m.Title }},
			{Header: "status", Value: func(m models.Mentorship) interface{} { return string(m.Status) }},
			{Header: "mentor", Value: func(m models.Mentorship) interface{} { return m.MentorName }},
			{Header: "mentee", Value: func(m models.Mentorship) interface{} { return m.MenteeName }},
			{Header: "sessions", Value: func(m models.Mentorship) interface{} { return m.SessionCount }},
			{Header: "goals", Value: func(m models.Mentorship) interface{} { return export.List(m.Goals) }},
		},
	}
}

func qaDomain(svc servicesFn) Domain[models.QAItem] {
	return Domain[models.QAItem]{
		Name:    "qa",
		Short:   "Moderate alumni questions and answers",
		Sheet:   "Q&A",
		Service: func() services.Service[models.QAItem] { return svc().QA },
		Columns: []export.Column[models.QAItem]{
			{Header: "id", Value: func(q models.QAItem) interface{} { return q.ID }},
			{Header: "question", Value: func(q models.QAItem) interface{} { return q.Question }},
			{Header: "status", Value: func(q models.QAItem) interface{} { return string(q.Status) }},
			{Header: "category", Value: func(q models.QAItem) interface{} { return string(q.Category) }},
			{Header: "likes", Value: func(q models.QAItem) interface{} { return q.LikeCount }},
			{Header: "answered", Value: func(q models.QAItem) interface{} { return export.Time(q.AnsweredAt) }},
		},
	}
}

func spotlightsDomain(svc servicesFn) Domain[models.Spotlight] {
	return Domain[models.Spotlight]{
		Name:    "spotlights",
		Short:   "Manage alumni spotlights",
		Sheet:   "Spotlights",
		Service: func() services.Service[models.Spotlight] { return svc().Spotlights },
		Columns: []export.Column[models.Spotlight]{
			{Header: "id", Value: func(s models.Spotlight) interface{} { return s.ID }},
			{Header: "title", Value: func(s models.Spotlight) interface{} { return s.Title }},
			{Header: "alumni", Value: func(s models.Spotlight) interface{} { return s.AlumniName }},
			{Header: "status", Value: func(s models.Spotlight) interface{} { return string(s.Status) }},
			{Header: "featured", Value: func(s models.Spotlight) interface{} { return s.Featured }},
			{Header: "views", Value: func(s models.Spotlight) interface{} { return s.ViewCount }},
			{Header: "engagement %", Value: func(s models.Spotlight) interface{} { return s.EngagementRate }},
		},
	}
}

func profilesDomain(svc servicesFn) Domain[models.Profile] {
	return Domain[models.Profile]{
		Name:    "profiles",
		Short:   "Manage member profiles",
		Sheet:   "Profiles",
		Service: func() services.Service[models.Profile] { return svc().Profiles },
		Columns: []export.Column[models.Profile]{
			{Header: "id", Value: func(p models.Profile) interface{} { return p.ID }},
			{Header: "name", Value: func(p models.Profile) interface{} { return p.FullName() }},
			{Header: "email", Value: func(p models.Profile) interface{} { return p.Email }},
			{Header: "status", Value: func(p models.Profile) interface{} { return string(p.Status) }},
			{Header: "graduation", Value: func(p models.Profile) interface{} { return p.GraduationYear }},
			{Header: "company", Value: func(p models.Profile) interface{} { return p.Company }},
			{Header: "digest", Value: func(p models.Profile) interface{} { return p.Notifications.Digest }},
		},
	}
}
