package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	"github.com/foyer-bassa/FB-ReservationService/internal/infra/events"
	roomRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/room"
	userRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/user"
	"github.com/foyer-bassa/FB-ReservationService/internal/integrations/visioservice"
)

// UseCase creates a reservation. The conflict check and the insert run
// in one serializable transaction; everything derived (quote, visio
// link, broker event) happens afterwards and is best-effort.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	userRepo        UserRepository
	equipmentRepo   EquipmentRepository
	devisRepo       DevisRepository
	visioClient     VisioClient
	publisher       EventPublisher
	txManager       TransactionManager
	timeProvider    TimeProvider
	catalog         []domain.TimeSlot
	pricing         domain.Pricing
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	equipmentRepo EquipmentRepository,
	devisRepo DevisRepository,
	visioClient VisioClient,
	publisher EventPublisher,
	txManager TransactionManager,
	catalog []domain.TimeSlot,
	pricing domain.Pricing,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		equipmentRepo:   equipmentRepo,
		devisRepo:       devisRepo,
		visioClient:     visioClient,
		publisher:       publisher,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		catalog:         catalog,
		pricing:         pricing,
		logger:          logger,
	}
}

// Execute creates the reservation. A free slot yields a confirmed
// reservation, an occupied one a waitlisted reservation; the request
// never fails because the slot is taken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%d, date=%s, window=%s-%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. The date must not be in the past.
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 3. The window must be one of the catalog slots, exactly.
	if err := validateCatalogSlot(uc.catalog, req); err != nil {
		uc.logger.Warn("CreateReservation: window %s-%s does not match a catalog slot", req.StartTime, req.EndTime)
		return nil, err
	}

	// 4. The room must exist.
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 5. Load the member for the membership snapshot on the reservation.
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 6. Every selected equipment item must exist.
	for _, sel := range req.Equipment {
		exists, err := uc.equipmentRepo.Exists(ctx, sel.EquipmentID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check equipment id=%d: %v", sel.EquipmentID, err)
			return nil, fmt.Errorf("%w: failed to check equipment: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("CreateReservation: equipment id=%d not found", sel.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
	}

	var result *domain.Reservation

	// 7. Conflict check and insert inside a serializable transaction so
	// two concurrent requests for the same slot cannot both confirm.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Load the other active reservations of the room and date,
		// locked FOR UPDATE by the repository within the transaction.
		filter := domain.ReservationsFilter{
			RoomID:          &req.RoomID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		reservations, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 7.2. An overlapping active reservation sends the request to the
		// waitlist instead of rejecting it.
		status := domain.StatusConfirmed
		if hasConflict(req, reservations) {
			status = domain.StatusWaitlisted
			uc.logger.Info("CreateReservation: slot taken, waitlisting user=%d for room=%d", req.UserID, req.RoomID)
		}

		reservation := &domain.Reservation{
			UserID:     req.UserID,
			RoomID:     req.RoomID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     status,
			MemberType: user.Membership,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, status=%s", result.ID, result.Status)

	// 8. Everything below is best-effort: the reservation stands even if
	// the selection, quote, meeting link or event fails.
	uc.saveEquipmentSelection(ctx, result.ID, req.Equipment)
	uc.generateDevis(ctx, result, req.Equipment)
	if result.Status == domain.StatusConfirmed {
		uc.attachVisioLink(ctx, result)
	}
	uc.publishCreated(ctx, result)

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		RoomID:     result.RoomID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Status:     string(result.Status),
		MemberType: string(result.MemberType),
		DevisID:    result.DevisID,
		VisioLink:  result.VisioLink,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// saveEquipmentSelection stores the requested equipment lines.
func (uc *UseCase) saveEquipmentSelection(ctx context.Context, reservationID int64, equipment []EquipmentSelection) {
	if len(equipment) == 0 {
		return
	}

	selections := toDomainSelections(equipment)
	if err := uc.equipmentRepo.SaveSelections(ctx, reservationID, selections); err != nil {
		uc.logger.Warn("CreateReservation: failed to save equipment selections for reservation id=%d: %v", reservationID, err)
	}
}

// generateDevis derives the quote and links it to the reservation.
func (uc *UseCase) generateDevis(ctx context.Context, reservation *domain.Reservation, equipment []EquipmentSelection) {
	details := uc.pricing.Quote(toDomainSelections(equipment))

	quote, err := uc.devisRepo.Create(ctx, &domain.Devis{
		ReservationID: reservation.ID,
		TotalAmount:   details.Total(),
		Details:       details,
	})
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to generate devis for reservation id=%d: %v", reservation.ID, err)
		return
	}

	if err := uc.reservationRepo.SetDevisID(ctx, reservation.ID, quote.ID); err != nil {
		uc.logger.Warn("CreateReservation: failed to link devis id=%d to reservation id=%d: %v", quote.ID, reservation.ID, err)
		return
	}
	reservation.DevisID = &quote.ID
}

// attachVisioLink creates a meeting link for the confirmed reservation.
func (uc *UseCase) attachVisioLink(ctx context.Context, reservation *domain.Reservation) {
	meeting, err := uc.visioClient.CreateMeetingWithGracefulDegradation(ctx, visioservice.CreateMeetingRequest{
		Subject: fmt.Sprintf("Reservation %d", reservation.ID),
		Date:    reservation.Date.Format(domain.DateFormat),
		Start:   reservation.StartTime.String(),
		End:     reservation.EndTime.String(),
	})
	if err != nil {
		uc.logger.Warn("CreateReservation: no visio link for reservation id=%d: %v", reservation.ID, err)
		return
	}

	if err := uc.reservationRepo.SetVisioLink(ctx, reservation.ID, meeting.JoinURL); err != nil {
		uc.logger.Warn("CreateReservation: failed to store visio link for reservation id=%d: %v", reservation.ID, err)
		return
	}
	reservation.VisioLink = &meeting.JoinURL
}

// publishCreated pushes the creation event to the broker.
func (uc *UseCase) publishCreated(ctx context.Context, reservation *domain.Reservation) {
	event := events.ReservationEvent{
		Event:         events.ReservationCreated,
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		RoomID:        reservation.RoomID,
		Date:          reservation.Date.Format(domain.DateFormat),
		StartTime:     reservation.StartTime.String(),
		EndTime:       reservation.EndTime.String(),
		Status:        string(reservation.Status),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish event for reservation id=%d: %v", reservation.ID, err)
	}
}

func toDomainSelections(equipment []EquipmentSelection) []domain.EquipmentSelection {
	selections := make([]domain.EquipmentSelection, len(equipment))
	for i, sel := range equipment {
		selections[i] = domain.EquipmentSelection{
			EquipmentID: sel.EquipmentID,
			Quantity:    sel.Quantity,
		}
	}
	return selections
}
