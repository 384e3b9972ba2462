package get_available_slots

import (
	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	getAvailableSlots "github.com/foyer-bassa/FB-ReservationService/internal/usecase/get_available_slots"
)

// SlotResponse is one annotated catalog slot.
type SlotResponse struct {
	StartTime   string `json:"startTime"` // "08:00"
	EndTime     string `json:"endTime"`   // "12:00"
	IsAvailable bool   `json:"isAvailable"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RoomID int64          `json:"roomId"`
	Date   string         `json:"date"` // "2026-03-14"
	Slots  []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: slot.IsAvailable,
		}
	}

	return &AvailableSlotsResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
