package models

import "time"

// Domains are the four fixed recruitment domains. Route registration and
// the dashboard counts iterate over this list; it is not configurable.
var Domains = []string{"technical", "creatives", "business", "events"}

// IsKnownDomain reports whether name is one of the four fixed domains.
func IsKnownDomain(name string) bool {
	for _, d := range Domains {
		if d == name {
			return true
		}
	}
	return false
}

// Participant is one applicant row. A participant enrolls in one required
// domain (Domain1) and optionally a second (Domain2); each slot progresses
// through rounds independently. Round is the legacy single-slot counter kept
// for deployments that predate the split.
//
// This service only ever mutates the round and modified_* fields; identity,
// contact and domain labels are written at registration time by another
// system and are read-only here.
type Participant struct {
	ID                 int64
	CreatedAt          time.Time
	Name               string
	RegistrationNumber string
	Email              string
	Phone              string
	GithubLink         string
	LinkedinLink       string
	Domain1            string
	Domain2            *string
	Domain1Round       int
	Domain2Round       *int
	Round              int
	ModifiedAt         *time.Time
	ModifiedBy1        string
	ModifiedBy2        string
}

// Actor is the validated identity performing a mutation. Handlers build it
// from the auth context and pass it down explicitly; services never reach
// into ambient auth state.
type Actor struct {
	ID    string
	Email string
}
