package models

import (
	"errors"
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status literal.
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CancelReservationRequest asks to cancel a reservation.
type CancelReservationRequest struct {
	UserID             int64       `json:"userId"`
	Role               domain.Role `json:"-"`
	CancellationReason string      `json:"cancellationReason"`
}

// PromoteReservationRequest asks to promote a waitlisted reservation.
type PromoteReservationRequest struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"-"`
}

// MarkInterviewRequest records the pre-event interview outcome.
type MarkInterviewRequest struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"-"`
	Done   bool        `json:"done"`
}

// GetUserReservationsRequest asks for one member's reservation history.
type GetUserReservationsRequest struct {
	TargetUserID int64       `json:"userId"`
	RequesterID  int64       `json:"-"`
	Role         domain.Role `json:"-"`
	Status       *string     `json:"status,omitempty"`
}

// ListReservationsRequest is the manager-side flexible listing.
type ListReservationsRequest struct {
	RequesterID     int64       `json:"-"`
	Role            domain.Role `json:"-"`
	RoomID          *int64      `json:"roomId,omitempty"`
	StartDate       *time.Time  `json:"startDate,omitempty"`
	EndDate         *time.Time  `json:"endDate,omitempty"`
	Status          *string     `json:"status,omitempty"`
	IncludeInactive bool        `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the storage filter.
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// ReservationResponse is the reservation DTO.
type ReservationResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	RoomID        int64  `json:"roomId"`
	Date          string `json:"date"`      // "2026-03-14"
	StartTime     string `json:"startTime"` // "08:00"
	EndTime       string `json:"endTime"`   // "12:00"
	Status        string `json:"status"`
	MemberType    string `json:"memberType"`
	DevisID       *int64 `json:"devisId,omitempty"`
	InterviewDone bool   `json:"interviewDone"`

	VisioLink          *string `json:"visioLink,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse wraps a list of reservations.
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Converters

// FromDomainReservation converts the domain model to the DTO.
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		RoomID:             r.RoomID,
		Date:               r.Date.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		Status:             string(r.Status),
		MemberType:         string(r.MemberType),
		DevisID:            r.DevisID,
		InterviewDone:      r.InterviewDone,
		VisioLink:          r.VisioLink,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList converts a list of domain models to the DTO.
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations[i] = *r
		}
	}

	return resp
}

// ToDomainReservationStatus converts a status literal with validation.
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.ValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
