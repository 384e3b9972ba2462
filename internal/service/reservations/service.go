package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/infra/events"
	reservationRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/reservation"
	"github.com/foyer-bassa/FB-ReservationService/internal/integrations/visioservice"
	"github.com/foyer-bassa/FB-ReservationService/internal/service/reservations/models"
)

// Service handles the reservation lifecycle after creation: reads,
// cancellation, the manual waitlist promotion and the interview flag.
type Service struct {
	reservationRepo ReservationRepository
	visioClient     VisioClient
	publisher       EventPublisher
	logger          Logger
}

// NewService creates the reservations service.
func NewService(
	reservationRepo ReservationRepository,
	visioClient VisioClient,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		visioClient:     visioClient,
		publisher:       publisher,
		logger:          logger,
	}
}

// GetByID fetches one reservation. Members only see their own;
// admins and managers see everything.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, role domain.Role) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.getReservation(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if reservation.UserID != userID && !canManage(role) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations returns one member's history, optionally filtered
// by status. Members only query themselves.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.TargetUserID, req.Status)

	if req.TargetUserID != req.RequesterID && !canManage(req.Role) {
		s.logger.Warn("GetUserReservations: access denied for user=%d to history of user=%d", req.RequesterID, req.TargetUserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.TargetUserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.TargetUserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.TargetUserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.TargetUserID)
	return models.FromDomainReservationList(reservations), nil
}

// List returns reservations with flexible filtering by room, period and
// status. Admin and manager only.
//
// Examples:
// - everything active: List(ctx, &ListReservationsRequest{...})
// - one room on one date: RoomID set, StartDate == EndDate
// - only waitlisted: Status = "waitlisted"
// - including cancelled: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := fmt.Sprintf("List: fetching reservations for user=%d", req.RequesterID)
	if req.RoomID != nil {
		logMsg += fmt.Sprintf(", room=%d", *req.RoomID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if !canManage(req.Role) {
		s.logger.Warn("List: access denied for user=%d", req.RequesterID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel cancels a reservation. The owner may cancel their own; admins
// and managers may cancel anyone's. Cancellation is irreversible.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	reservation, err := s.getReservation(ctx, reservationID, "Cancel")
	if err != nil {
		return err
	}

	if reservation.UserID != req.UserID && !canManage(req.Role) {
		s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
		return ErrAccessDenied
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.publishEvent(ctx, events.ReservationCancelled, reservation, domain.StatusCancelled)

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// Promote confirms a waitlisted reservation. This is the only path out of
// the waitlist; nothing is promoted automatically when a slot frees up.
// Admin and manager only. The freshly confirmed reservation gets a
// best-effort visio meeting link.
func (s *Service) Promote(ctx context.Context, reservationID int64, req *models.PromoteReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Promote: promoting reservation id=%d by user=%d", reservationID, req.UserID)

	if !canManage(req.Role) {
		s.logger.Warn("Promote: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	reservation, err := s.getReservation(ctx, reservationID, "Promote")
	if err != nil {
		return nil, err
	}

	if !reservation.CanBePromoted() {
		s.logger.Warn("Promote: reservation id=%d cannot be promoted, status=%s", reservationID, reservation.Status)
		return nil, ErrCannotPromote
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusConfirmed); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Promote: reservation id=%d not found during update", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Promote: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Promote - repository error: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusConfirmed
	s.attachVisioLink(ctx, reservation)
	s.publishEvent(ctx, events.ReservationPromoted, reservation, domain.StatusConfirmed)

	s.logger.Info("Promote: successfully promoted reservation id=%d", reservationID)
	return models.FromDomainReservation(reservation), nil
}

// MarkInterview records whether the pre-event interview took place.
// Admin and manager only.
func (s *Service) MarkInterview(ctx context.Context, reservationID int64, req *models.MarkInterviewRequest) error {
	s.logger.Info("MarkInterview: setting interview_done=%t on reservation id=%d by user=%d", req.Done, reservationID, req.UserID)

	if !canManage(req.Role) {
		s.logger.Warn("MarkInterview: access denied for user=%d", req.UserID)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.SetInterviewDone(ctx, reservationID, req.Done); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("MarkInterview: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("MarkInterview: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: MarkInterview - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkInterview: successfully updated reservation id=%d", reservationID)
	return nil
}

// Helpers

func (s *Service) getReservation(ctx context.Context, id int64, op string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// attachVisioLink creates a meeting link and stores it. Best-effort: a
// failed link never fails the caller.
func (s *Service) attachVisioLink(ctx context.Context, reservation *domain.Reservation) {
	meeting, err := s.visioClient.CreateMeetingWithGracefulDegradation(ctx, visioservice.CreateMeetingRequest{
		Subject: fmt.Sprintf("Reservation %d", reservation.ID),
		Date:    reservation.Date.Format(domain.DateFormat),
		Start:   reservation.StartTime.String(),
		End:     reservation.EndTime.String(),
	})
	if err != nil {
		s.logger.Warn("attachVisioLink: no visio link for reservation id=%d: %v", reservation.ID, err)
		return
	}

	if err := s.reservationRepo.SetVisioLink(ctx, reservation.ID, meeting.JoinURL); err != nil {
		s.logger.Warn("attachVisioLink: failed to store visio link for reservation id=%d: %v", reservation.ID, err)
		return
	}
	reservation.VisioLink = &meeting.JoinURL
}

// publishEvent pushes a lifecycle event. Best-effort as well.
func (s *Service) publishEvent(ctx context.Context, name string, reservation *domain.Reservation, status domain.ReservationStatus) {
	event := events.ReservationEvent{
		Event:         name,
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		RoomID:        reservation.RoomID,
		Date:          reservation.Date.Format(domain.DateFormat),
		StartTime:     reservation.StartTime.String(),
		EndTime:       reservation.EndTime.String(),
		Status:        string(status),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publishEvent: failed to publish %s for reservation id=%d: %v", name, reservation.ID, err)
	}
}

func canManage(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleManager
}
