package domain

import "time"

// SponsorshipStatus is the validation state of a guest invitation.
type SponsorshipStatus string

const (
	SponsorshipPending  SponsorshipStatus = "pending"
	SponsorshipApproved SponsorshipStatus = "approved"
	SponsorshipRejected SponsorshipStatus = "rejected"
)

// ValidSponsorshipStatus reports whether s is canonical.
func ValidSponsorshipStatus(s SponsorshipStatus) bool {
	switch s {
	case SponsorshipPending, SponsorshipApproved, SponsorshipRejected:
		return true
	}
	return false
}

// Sponsorship is a guest invitation filed by a member. A guest only gains
// club access once an administrator approves the sponsorship.
type Sponsorship struct {
	ID           int64
	SponsorID    int64
	GuestName    string
	GuestContact string
	Status       SponsorshipStatus
	ValidatedAt  *time.Time
	CreatedAt    time.Time
}

// IsDecided reports whether the sponsorship has been approved or rejected.
func (s *Sponsorship) IsDecided() bool {
	return s.Status != SponsorshipPending
}
