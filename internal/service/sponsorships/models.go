package sponsorships

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// CreateSponsorshipRequest files a guest invitation.
type CreateSponsorshipRequest struct {
	SponsorID    int64  `json:"-"`
	GuestName    string `json:"guestName"`
	GuestContact string `json:"guestContact"`
}

// DecideSponsorshipRequest approves or rejects a pending invitation.
type DecideSponsorshipRequest struct {
	UserID int64       `json:"-"`
	Role   domain.Role `json:"-"`
	Status string      `json:"status"` // "approved" or "rejected"
}

// SponsorshipResponse is the sponsorship DTO.
type SponsorshipResponse struct {
	ID           int64     `json:"id"`
	SponsorID    int64     `json:"sponsorId"`
	GuestName    string    `json:"guestName"`
	GuestContact string    `json:"guestContact"`
	Status       string    `json:"status"`
	ValidatedAt  *string   `json:"validatedAt,omitempty"` // ISO 8601
	CreatedAt    time.Time `json:"createdAt"`
}

// SponsorshipListResponse wraps a list of sponsorships.
type SponsorshipListResponse struct {
	Sponsorships []SponsorshipResponse `json:"sponsorships"`
}

// FromDomainSponsorship converts the domain model to the DTO.
func FromDomainSponsorship(s *domain.Sponsorship) *SponsorshipResponse {
	if s == nil {
		return nil
	}

	resp := &SponsorshipResponse{
		ID:           s.ID,
		SponsorID:    s.SponsorID,
		GuestName:    s.GuestName,
		GuestContact: s.GuestContact,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}

	if s.ValidatedAt != nil {
		validatedStr := s.ValidatedAt.Format(time.RFC3339)
		resp.ValidatedAt = &validatedStr
	}

	return resp
}

// FromDomainSponsorshipList converts a list of domain models to the DTO.
func FromDomainSponsorshipList(sponsorships []*domain.Sponsorship) *SponsorshipListResponse {
	if sponsorships == nil {
		return &SponsorshipListResponse{
			Sponsorships: []SponsorshipResponse{},
		}
	}

	resp := &SponsorshipListResponse{
		Sponsorships: make([]SponsorshipResponse, len(sponsorships)),
	}

	for i, sponsorship := range sponsorships {
		if s := FromDomainSponsorship(sponsorship); s != nil {
			resp.Sponsorships[i] = *s
		}
	}

	return resp
}
