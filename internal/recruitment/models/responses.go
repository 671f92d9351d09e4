package models

import (
	"strconv"
	"strings"
)

// AdvanceResult reports the outcome of a bulk round advancement. NotFound
// preserves the caller's input order; an empty slice (never null) renders
// when everything matched.
type AdvanceResult struct {
	UpdatedCount int      `json:"updatedCount"`
	NotFound     []string `json:"notFound"`
	Message      string   `json:"message"`
}

// NewAdvanceResult builds the result including its human-readable summary.
func NewAdvanceResult(updated int, round int, notFound []string) *AdvanceResult {
	if notFound == nil {
		notFound = []string{}
	}
	msg := strconv.Itoa(updated) + " participants moved to Round " + strconv.Itoa(round)
	if len(notFound) > 0 {
		msg += ". Not found: " + strings.Join(notFound, ", ")
	}
	return &AdvanceResult{
		UpdatedCount: updated,
		NotFound:     notFound,
		Message:      msg,
	}
}

// RegistrationView is the row shape the dashboard tables consume.
type RegistrationView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RegisterNumber string `json:"registerNumber"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RegisteredAt   string `json:"registeredAt"`
	Round          int    `json:"round"`
}

// registeredAtLayout is the date format shown in listings and CSV exports.
const registeredAtLayout = "2006-01-02"

// NewRegistrationView shapes a participant row for a domain listing. The
// round shown is the one for whichever slot carries the domain, falling back
// to the legacy counter when neither slot does.
func NewRegistrationView(p Participant, domain string) RegistrationView {
	round := p.Round
	target := strings.ToLower(domain)
	if strings.Contains(strings.ToLower(p.Domain1), target) {
		round = p.Domain1Round
	} else if p.Domain2 != nil && p.Domain2Round != nil && strings.Contains(strings.ToLower(*p.Domain2), target) {
		round = *p.Domain2Round
	}
	return RegistrationView{
		ID:             strconv.FormatInt(p.ID, 10),
		Name:           p.Name,
		RegisterNumber: p.RegistrationNumber,
		Email:          p.Email,
		Phone:          p.Phone,
		RegisteredAt:   p.CreatedAt.Format(registeredAtLayout),
		Round:          round,
	}
}

// DomainCountsResponse is the dashboard summary payload.
type DomainCountsResponse struct {
	DomainCounts map[string]int `json:"domainCounts"`
}

// TotalRegistrationsResponse is the overall headcount payload.
type TotalRegistrationsResponse struct {
	TotalRegistrations int `json:"totalRegistrations"`
}
