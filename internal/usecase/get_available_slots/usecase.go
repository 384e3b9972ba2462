package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	roomRepo "github.com/foyer-bassa/FB-ReservationService/internal/infra/storage/room"
)

// UseCase computes the availability calendar of a room for one date.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	catalog         []domain.TimeSlot
	logger          Logger
}

// NewUseCase creates the use case. catalog is the configured slot
// catalog; an empty catalog yields empty responses for every date.
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	catalog []domain.TimeSlot,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// Execute returns the full slot catalog for the room and date, each slot
// annotated with its availability.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: room=%d, date=%s", req.RoomID, req.Date.Format(domain.DateFormat))

	// 1. Validate the request.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. The room must exist.
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailableSlots: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Load the active reservations for the room and date. Cancelled
	// reservations are excluded by the filter; waitlisted ones come back
	// but do not block (see annotateSlots).
	filter := domain.ReservationsFilter{
		RoomID:          &req.RoomID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Annotate the catalog.
	slots := annotateSlots(uc.catalog, reservations)

	uc.logger.Info("GetAvailableSlots: computed %d slots for room=%d, date=%s",
		len(slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:   req.Date,
		RoomID: req.RoomID,
		Slots:  slots,
	}, nil
}
