package models

// ItemShare is a debtor's share of one item, listed to justify a transfer.
type ItemShare struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"` // price divided by the number of cost-sharers
}

// TransferInstruction tells one debtor how much to send to one creditor.
type TransferInstruction struct {
	// FromID and FromName identify the debtor.
	FromID   string `json:"from_id"`
	FromName string `json:"from_name"`

	// ToID and ToName identify the creditor.
	ToID   string `json:"to_id"`
	ToName string `json:"to_name"`

	// Amount is positive and rounded to 2 decimal places.
	Amount float64 `json:"amount"`

	// Currency is the display currency code. Empty means DefaultCurrency.
	Currency string `json:"currency,omitempty"`

	// Items is the debtor's full contribution breakdown.
	// Every instruction from the same debtor repeats the same list.
	Items []ItemShare `json:"items"`

	// PaymentDetails is the organizer's free-text payment destination, passed through verbatim.
	PaymentDetails string `json:"payment_details"`
}
