package domain

// Equipment is reference data for items members can request with a
// reservation (chairs, tables, projector, sound system).
type Equipment struct {
	ID            int64
	Name          string
	TotalQuantity int
	Description   string
}

// EquipmentSelection attaches a requested quantity of one equipment item
// to a reservation request. It feeds the quote computation only; there is
// no inventory locking.
type EquipmentSelection struct {
	EquipmentID int64
	Quantity    int
}
