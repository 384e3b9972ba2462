package create_reservation

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
	createReservation "github.com/foyer-bassa/FB-ReservationService/internal/usecase/create_reservation"
	"github.com/foyer-bassa/FB-ReservationService/pkg/types"
)

// EquipmentSelectionRequest is one requested equipment line.
type EquipmentSelectionRequest struct {
	EquipmentID int64 `json:"equipmentId"`
	Quantity    int   `json:"quantity"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID    int64                       `json:"roomId"`
	Date      string                      `json:"date"`      // "2026-03-14"
	StartTime string                      `json:"startTime"` // "08:00"
	EndTime   string                      `json:"endTime"`   // "12:00"
	Equipment []EquipmentSelectionRequest `json:"equipment,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	RoomID        int64   `json:"roomId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	MemberType    string  `json:"memberType"`
	DevisID       *int64  `json:"devisId,omitempty"`
	VisioLink     *string `json:"visioLink,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request to the usecase model.
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	equipment := make([]createReservation.EquipmentSelection, len(r.Equipment))
	for i, sel := range r.Equipment {
		equipment[i] = createReservation.EquipmentSelection{
			EquipmentID: sel.EquipmentID,
			Quantity:    sel.Quantity,
		}
	}

	return &createReservation.Request{
		UserID:    userID,
		RoomID:    r.RoomID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Equipment: equipment,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		RoomID:     resp.RoomID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		Status:     resp.Status,
		MemberType: resp.MemberType,
		DevisID:    resp.DevisID,
		VisioLink:  resp.VisioLink,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
