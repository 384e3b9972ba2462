package devis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	devisRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/devis"
	reservationRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/reservation"
)

// DevisResponse is the quote DTO, amounts in XAF.
type DevisResponse struct {
	ID            int64               `json:"id"`
	ReservationID int64               `json:"reservationId"`
	TotalAmount   float64             `json:"totalAmount"`
	Details       domain.DevisDetails `json:"details"`
	GeneratedAt   time.Time           `json:"generatedAt"`
}

// Service reads the quote linked to a reservation. Quotes are generated
// during reservation creation and never change afterwards.
type Service struct {
	devisRepo       DevisRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates the devis service.
func NewService(devisRepo DevisRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		devisRepo:       devisRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByReservationID fetches the quote for a reservation. The owner may
// read their own; admins and managers read anyone's.
func (s *Service) GetByReservationID(ctx context.Context, reservationID int64, userID int64, role domain.Role) (*DevisResponse, error) {
	s.logger.Info("GetByReservationID: fetching devis for reservation=%d by user=%d", reservationID, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByReservationID: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByReservationID: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByReservationID - repository error: %v", ErrInternal, err)
	}

	if reservation.UserID != userID && role != domain.RoleAdmin && role != domain.RoleManager {
		s.logger.Warn("GetByReservationID: access denied for user=%d to reservation id=%d", userID, reservationID)
		return nil, ErrAccessDenied
	}

	quote, err := s.devisRepo.GetByReservationID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, devisRepo.ErrDevisNotFound) {
			s.logger.Warn("GetByReservationID: no devis for reservation id=%d", reservationID)
			return nil, ErrDevisNotFound
		}
		s.logger.Error("GetByReservationID: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByReservationID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByReservationID: successfully fetched devis id=%d", quote.ID)
	return &DevisResponse{
		ID:            quote.ID,
		ReservationID: quote.ReservationID,
		TotalAmount:   quote.TotalAmount,
		Details:       quote.Details,
		GeneratedAt:   quote.GeneratedAt,
	}, nil
}
