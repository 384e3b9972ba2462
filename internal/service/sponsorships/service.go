package sponsorships

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	sponsorshipRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/sponsorship"
)

// Service handles guest sponsorships: members file invitations, admins
// and managers approve or reject them. Approval is what grants the guest
// access to the club.
type Service struct {
	sponsorshipRepo SponsorshipRepository
	logger          Logger
}

// NewService creates the sponsorships service.
func NewService(sponsorshipRepo SponsorshipRepository, logger Logger) *Service {
	return &Service{
		sponsorshipRepo: sponsorshipRepo,
		logger:          logger,
	}
}

// Create files a pending invitation on behalf of the sponsor.
func (s *Service) Create(ctx context.Context, req *CreateSponsorshipRequest) (*SponsorshipResponse, error) {
	s.logger.Info("Create: filing sponsorship for guest=%q by sponsor=%d", req.GuestName, req.SponsorID)

	guestName := strings.TrimSpace(req.GuestName)
	if guestName == "" || len(guestName) > domain.MaxGuestNameLength {
		s.logger.Warn("Create: invalid guest name from sponsor=%d", req.SponsorID)
		return nil, fmt.Errorf("%w: invalid guest name", ErrInvalidInput)
	}
	if strings.TrimSpace(req.GuestContact) == "" {
		s.logger.Warn("Create: missing guest contact from sponsor=%d", req.SponsorID)
		return nil, fmt.Errorf("%w: guest contact is required", ErrInvalidInput)
	}

	sponsorship := &domain.Sponsorship{
		SponsorID:    req.SponsorID,
		GuestName:    guestName,
		GuestContact: strings.TrimSpace(req.GuestContact),
		Status:       domain.SponsorshipPending,
	}

	created, err := s.sponsorshipRepo.Create(ctx, sponsorship)
	if err != nil {
		s.logger.Error("Create: repository error for sponsor=%d: %v", req.SponsorID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully filed sponsorship id=%d", created.ID)
	return FromDomainSponsorship(created), nil
}

// List returns sponsorships. Admins and managers see everything, members
// only their own filings.
func (s *Service) List(ctx context.Context, userID int64, role domain.Role) (*SponsorshipListResponse, error) {
	s.logger.Info("List: fetching sponsorships for user=%d", userID)

	var sponsorID *int64
	if role != domain.RoleAdmin && role != domain.RoleManager {
		sponsorID = &userID
	}

	sponsorships, err := s.sponsorshipRepo.List(ctx, sponsorID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d sponsorships for user=%d", len(sponsorships), userID)
	return FromDomainSponsorshipList(sponsorships), nil
}

// Decide approves or rejects a pending invitation. Admin and manager
// only. A decision is final.
func (s *Service) Decide(ctx context.Context, sponsorshipID int64, req *DecideSponsorshipRequest) (*SponsorshipResponse, error) {
	s.logger.Info("Decide: setting sponsorship id=%d to status=%s by user=%d", sponsorshipID, req.Status, req.UserID)

	if req.Role != domain.RoleAdmin && req.Role != domain.RoleManager {
		s.logger.Warn("Decide: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	status := domain.SponsorshipStatus(req.Status)
	if status != domain.SponsorshipApproved && status != domain.SponsorshipRejected {
		s.logger.Warn("Decide: invalid status=%s for sponsorship id=%d", req.Status, sponsorshipID)
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrInvalidInput)
	}

	sponsorship, err := s.sponsorshipRepo.GetByID(ctx, sponsorshipID)
	if err != nil {
		if errors.Is(err, sponsorshipRepo.ErrSponsorshipNotFound) {
			s.logger.Warn("Decide: sponsorship id=%d not found", sponsorshipID)
			return nil, ErrSponsorshipNotFound
		}
		s.logger.Error("Decide: repository error for sponsorship id=%d: %v", sponsorshipID, err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	if sponsorship.IsDecided() {
		s.logger.Warn("Decide: sponsorship id=%d already decided, status=%s", sponsorshipID, sponsorship.Status)
		return nil, ErrAlreadyDecided
	}

	if err := s.sponsorshipRepo.UpdateStatus(ctx, sponsorshipID, status); err != nil {
		if errors.Is(err, sponsorshipRepo.ErrSponsorshipNotFound) {
			s.logger.Warn("Decide: sponsorship id=%d not found during update", sponsorshipID)
			return nil, ErrSponsorshipNotFound
		}
		s.logger.Error("Decide: repository error for sponsorship id=%d: %v", sponsorshipID, err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	updated, err := s.sponsorshipRepo.GetByID(ctx, sponsorshipID)
	if err != nil {
		s.logger.Error("Decide: failed to reload sponsorship id=%d: %v", sponsorshipID, err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Decide: successfully set sponsorship id=%d to status=%s", sponsorshipID, status)
	return FromDomainSponsorship(updated), nil
}
