package models

import (
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// CreateRequest files a new absence request for a roster groomer
type CreateRequest struct {
	GroomerID string
	StaffID   string
	StaffName string
	Date      time.Time
	Reason    string
	ProofName *string
	ProofURL  *string
}

// ReviewDecision is the admin verdict on a pending request
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

// ReviewRequest carries the admin decision on a pending request
type ReviewRequest struct {
	Decision  ReviewDecision
	AdminNote *string
}

// AbsenceResponse is the API view of an absence request
type AbsenceResponse struct {
	ID         string     `json:"id"`
	GroomerID  string     `json:"groomerId"`
	StaffID    string     `json:"staffId"`
	StaffName  string     `json:"staffName"`
	Date       string     `json:"date"`
	Reason     string     `json:"reason"`
	ProofName  *string    `json:"proofName,omitempty"`
	ProofURL   *string    `json:"proofUrl,omitempty"`
	Status     string     `json:"status"`
	AdminNote  *string    `json:"adminNote,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// AbsenceListResponse is a list of absence requests
type AbsenceListResponse struct {
	Absences []AbsenceResponse `json:"absences"`
	Total    int               `json:"total"`
}

// ToDomain converts the create request into the domain entity
func (r *CreateRequest) ToDomain() *domain.StaffAbsence {
	return &domain.StaffAbsence{
		GroomerID: r.GroomerID,
		StaffID:   r.StaffID,
		StaffName: r.StaffName,
		Date:      r.Date,
		Reason:    r.Reason,
		ProofName: r.ProofName,
		ProofURL:  r.ProofURL,
		Status:    domain.AbsencePending,
	}
}

// FromDomainAbsence converts a domain absence into the API view
func FromDomainAbsence(a *domain.StaffAbsence) *AbsenceResponse {
	return &AbsenceResponse{
		ID:         a.ID,
		GroomerID:  a.GroomerID,
		StaffID:    a.StaffID,
		StaffName:  a.StaffName,
		Date:       a.Date.Format(domain.DateFormat),
		Reason:     a.Reason,
		ProofName:  a.ProofName,
		ProofURL:   a.ProofURL,
		Status:     string(a.Status),
		AdminNote:  a.AdminNote,
		ReviewedAt: a.ReviewedAt,
		CreatedAt:  a.CreatedAt,
	}
}

// FromDomainAbsenceList converts a list of domain absences
func FromDomainAbsenceList(absences []*domain.StaffAbsence) *AbsenceListResponse {
	out := make([]AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		out = append(out, *FromDomainAbsence(a))
	}
	return &AbsenceListResponse{Absences: out, Total: len(out)}
}
