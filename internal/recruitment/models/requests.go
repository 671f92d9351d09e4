package models

import (
	"strings"

	dErrors "recruitdesk/pkg/domain-errors"
	strutil "recruitdesk/pkg/platform/strings"
)

// RoundMin and RoundMax bound the progression stage of any slot.
const (
	RoundMin = 1
	RoundMax = 3
)

// maxBulkIdentifiers caps one bulk request; rosters are uploaded per event,
// never anywhere near this.
const maxBulkIdentifiers = 5000

// BulkUpdateRequest is the body of the bulk-update endpoints. Domain is
// optional on the generic endpoint and fixed by the route on the per-domain
// ones. Legacy selects the single-round compatibility path.
type BulkUpdateRequest struct {
	RegistrationNumbers []string `json:"registrationNumbers"`
	Round               int      `json:"round"`
	Domain              string   `json:"domain,omitempty"`
	Legacy              bool     `json:"legacy,omitempty"`
}

func (r *BulkUpdateRequest) Normalize() {
	if r == nil {
		return
	}
	r.RegistrationNumbers = strutil.DedupeAndTrim(r.RegistrationNumbers)
	r.Domain = strings.TrimSpace(strings.ToLower(r.Domain))
}

// Follows validation order: Size -> Required -> Syntax -> Semantic.
func (r *BulkUpdateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if len(r.RegistrationNumbers) > maxBulkIdentifiers {
		return dErrors.New(dErrors.CodeValidation, "too many registration numbers in one request")
	}

	if len(r.RegistrationNumbers) == 0 {
		return dErrors.New(dErrors.CodeValidation, "registration numbers array is required")
	}

	if r.Round < RoundMin || r.Round > RoundMax {
		return dErrors.New(dErrors.CodeValidation, "valid round number (1-3) is required")
	}

	if r.Domain != "" && !IsKnownDomain(r.Domain) {
		return dErrors.New(dErrors.CodeValidation, "domain must be one of technical, creatives, business, events")
	}

	return nil
}

// AdvanceCommand is the service-level input of a bulk round advancement.
// TargetDomain empty selects the legacy single-round path; LegacyScope
// optionally restricts that path to one domain, mirroring the old
// domain-fixed routes.
type AdvanceCommand struct {
	Identifiers  []string
	Round        int
	TargetDomain string
	LegacyScope  string
	// FromRoster marks advancements sourced from a CSV upload so the audit
	// trail distinguishes them from hand-entered batches.
	FromRoster bool
}
