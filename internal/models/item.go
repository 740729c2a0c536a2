package models

import "slices"

// LineItem is a single purchase logged for an event.
type LineItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id" yaml:"id"`

	// Name is the description of the item (e.g., "Charcoal", "Boat rental").
	Name string `json:"name" yaml:"name"`

	// Price is what the responsible participant paid for the item.
	// nil means the price is not known yet; such items are left out of every sum.
	Price *float64 `json:"price" yaml:"price"`

	// ResponsibleID is the participant who fronted the money.
	// They do not have to be one of the cost-sharers.
	ResponsibleID string `json:"responsible_id" yaml:"responsible_id"`

	// Participants are the IDs of the cost-sharers who split the price equally.
	Participants []string `json:"participants" yaml:"participants"`
}

// Priced reports whether the item has a price and takes part in the settlement.
func (i LineItem) Priced() bool {
	return i.Price != nil
}

// Amount returns the item price, or 0 when the price is not known.
func (i LineItem) Amount() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price
}

// SharedBy reports whether the participant is one of the item's cost-sharers.
func (i LineItem) SharedBy(participantID string) bool {
	return slices.Contains(i.Participants, participantID)
}

// Price is a convenience for building priced items.
func Price(amount float64) *float64 {
	return &amount
}
