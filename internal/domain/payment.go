package domain

import "time"

// PaymentMethod enumerates the accepted payment channels.
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCheque   PaymentMethod = "cheque"
)

// ValidPaymentMethod reports whether m is canonical.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentTransfer, PaymentCheque:
		return true
	}
	return false
}

// Payment records money received for a reservation. Payments are manual
// records kept by the club staff, optionally backed by an uploaded
// justificatif document.
type Payment struct {
	ID              int64
	ReservationID   int64
	Amount          float64
	PaidAt          time.Time
	Method          PaymentMethod
	JustificatifURL *string
	CreatedAt       time.Time
}
