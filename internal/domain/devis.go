package domain

import "time"

// DevisDetails is the fee breakdown of a quote. Amounts are in XAF.
type DevisDetails struct {
	FraisLocation    float64 `json:"frais_location"`
	FraisEquipements float64 `json:"frais_equipements"`
	FraisEntretien   float64 `json:"frais_entretien"`
}

// Devis is the quote generated for a reservation: a derived, write-once
// record. Generation is best-effort and never blocks the reservation.
type Devis struct {
	ID            int64
	ReservationID int64
	TotalAmount   float64
	Details       DevisDetails
	GeneratedAt   time.Time
}

// Pricing is the fee schedule used to derive a quote. It is
// configuration-level data loaded from config.toml.
type Pricing struct {
	BaseFee          float64 // flat room rental fee
	EquipmentUnitFee float64 // per requested equipment unit
	CleaningFee      float64 // flat cleaning fee
}

// Quote derives the fee breakdown for a set of equipment selections.
func (p Pricing) Quote(selections []EquipmentSelection) DevisDetails {
	var units int
	for _, sel := range selections {
		if sel.Quantity > 0 {
			units += sel.Quantity
		}
	}

	return DevisDetails{
		FraisLocation:    p.BaseFee,
		FraisEquipements: float64(units) * p.EquipmentUnitFee,
		FraisEntretien:   p.CleaningFee,
	}
}

// Total sums the breakdown.
func (d DevisDetails) Total() float64 {
	return d.FraisLocation + d.FraisEquipements + d.FraisEntretien
}
