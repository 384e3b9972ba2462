package payments

import (
	"time"

	"github.com/foyer-bassa/FB-ReservationService/internal/domain"
)

// CreatePaymentRequest records money received for a reservation.
type CreatePaymentRequest struct {
	UserID int64       `json:"-"`
	Role   domain.Role `json:"-"`

	ReservationID int64   `json:"reservationId"`
	Amount        float64 `json:"amount"`
	PaidAt        string  `json:"paidAt"` // "2026-03-14"
	Method        string  `json:"method"`
}

// AttachJustificatifRequest links the uploaded proof-of-payment document.
type AttachJustificatifRequest struct {
	UserID int64       `json:"-"`
	Role   domain.Role `json:"-"`
	URL    string      `json:"url"`
}

// PaymentResponse is the payment DTO.
type PaymentResponse struct {
	ID              int64     `json:"id"`
	ReservationID   int64     `json:"reservationId"`
	Amount          float64   `json:"amount"`
	PaidAt          string    `json:"paidAt"` // "2026-03-14"
	Method          string    `json:"method"`
	JustificatifURL *string   `json:"justificatifUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PaymentListResponse wraps a list of payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPayment converts the domain model to the DTO.
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:              p.ID,
		ReservationID:   p.ReservationID,
		Amount:          p.Amount,
		PaidAt:          p.PaidAt.Format(domain.DateFormat),
		Method:          string(p.Method),
		JustificatifURL: p.JustificatifURL,
		CreatedAt:       p.CreatedAt,
	}
}

// FromDomainPaymentList converts a list of domain models to the DTO.
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	if payments == nil {
		return &PaymentListResponse{
			Payments: []PaymentResponse{},
		}
	}

	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, len(payments)),
	}

	for i, payment := range payments {
		if p := FromDomainPayment(payment); p != nil {
			resp.Payments[i] = *p
		}
	}

	return resp
}
