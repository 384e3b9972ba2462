package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	paymentRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/reservation"
)

// Service handles payment tracking. Payments are manual records kept by
// the club staff; creating one never changes the reservation status.
type Service struct {
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates the payments service.
func NewService(paymentRepo PaymentRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create records a payment against a reservation. Admin and manager only.
func (s *Service) Create(ctx context.Context, req *CreatePaymentRequest) (*PaymentResponse, error) {
	s.logger.Info("Create: recording payment for reservation=%d by user=%d", req.ReservationID, req.UserID)

	if err := s.checkManagerAccess(req.Role, req.UserID, "Create"); err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		s.logger.Warn("Create: non-positive amount=%f for reservation=%d", req.Amount, req.ReservationID)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	method := domain.PaymentMethod(req.Method)
	if !domain.ValidPaymentMethod(method) {
		s.logger.Warn("Create: invalid method=%s for reservation=%d", req.Method, req.ReservationID)
		return nil, fmt.Errorf("%w: invalid payment method", ErrInvalidInput)
	}

	paidAt, err := time.Parse(domain.DateFormat, req.PaidAt)
	if err != nil {
		s.logger.Warn("Create: invalid paidAt=%s for reservation=%d", req.PaidAt, req.ReservationID)
		return nil, fmt.Errorf("%w: invalid payment date", ErrInvalidInput)
	}

	if _, err := s.reservationRepo.GetByID(ctx, req.ReservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Create: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Create: repository error for reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	payment := &domain.Payment{
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		PaidAt:        paidAt,
		Method:        method,
	}

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		s.logger.Error("Create: repository error for reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully recorded payment id=%d", created.ID)
	return FromDomainPayment(created), nil
}

// AttachJustificatif links the uploaded proof-of-payment document to a
// payment. Admin and manager only.
func (s *Service) AttachJustificatif(ctx context.Context, paymentID int64, req *AttachJustificatifRequest) error {
	s.logger.Info("AttachJustificatif: attaching document to payment id=%d by user=%d", paymentID, req.UserID)

	if err := s.checkManagerAccess(req.Role, req.UserID, "AttachJustificatif"); err != nil {
		return err
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		s.logger.Warn("AttachJustificatif: empty url for payment id=%d", paymentID)
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	if err := s.paymentRepo.SetJustificatif(ctx, paymentID, url); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("AttachJustificatif: payment id=%d not found", paymentID)
			return ErrPaymentNotFound
		}
		s.logger.Error("AttachJustificatif: repository error for payment id=%d: %v", paymentID, err)
		return fmt.Errorf("%w: AttachJustificatif - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AttachJustificatif: successfully updated payment id=%d", paymentID)
	return nil
}

// ListByReservation returns payments for a reservation. The reservation
// owner may read their own; admins and managers read anyone's.
func (s *Service) ListByReservation(ctx context.Context, reservationID int64, userID int64, role domain.Role) (*PaymentListResponse, error) {
	s.logger.Info("ListByReservation: fetching payments for reservation=%d by user=%d", reservationID, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("ListByReservation: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("ListByReservation: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	if reservation.UserID != userID && role != domain.RoleAdmin && role != domain.RoleManager {
		s.logger.Warn("ListByReservation: access denied for user=%d to reservation id=%d", userID, reservationID)
		return nil, ErrAccessDenied
	}

	payments, err := s.paymentRepo.GetByReservationID(ctx, reservationID)
	if err != nil {
		s.logger.Error("ListByReservation: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByReservation: successfully fetched %d payments for reservation=%d", len(payments), reservationID)
	return FromDomainPaymentList(payments), nil
}

func (s *Service) checkManagerAccess(role domain.Role, userID int64, op string) error {
	if role != domain.RoleAdmin && role != domain.RoleManager {
		s.logger.Warn("%s: access denied for user=%d", op, userID)
		return ErrAccessDenied
	}
	return nil
}
