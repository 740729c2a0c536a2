package service

import (
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/snapshot"
)

// ComputeBalancesRequest carries the event snapshot to balance.
type ComputeBalancesRequest struct {
	Event models.Event `json:"event"`
}

// ComputeBalancesResponse lists balances from largest debtor to largest creditor.
type ComputeBalancesResponse struct {
	EventID  string             `json:"event_id"`
	Currency string             `json:"currency"`
	Balances []models.Balance   `json:"balances"`
	Warnings []snapshot.Warning `json:"warnings,omitempty"`
}

// SettleRequest carries the event snapshot and the organizer's payment details.
type SettleRequest struct {
	Event          models.Event `json:"event"`
	PaymentDetails string       `json:"payment_details"`
}

// SettleResponse is the full settlement of an event.
// Messages is empty until payment details are provided.
type SettleResponse struct {
	EventID   string                       `json:"event_id"`
	Currency  string                       `json:"currency"`
	Balances  []models.Balance             `json:"balances"`
	Transfers []models.TransferInstruction `json:"transfers"`
	Messages  []string                     `json:"messages,omitempty"`
	Warnings  []snapshot.Warning           `json:"warnings,omitempty"`
}

// GetEventID returns the id of the submitted event, which may still be empty.
func (r *ComputeBalancesRequest) GetEventID() string { return r.Event.ID }

// GetEventID returns the id of the submitted event, which may still be empty.
func (r *SettleRequest) GetEventID() string { return r.Event.ID }

// GetEventID returns the id of the balanced event.
func (r *ComputeBalancesResponse) GetEventID() string { return r.EventID }

// GetEventID returns the id of the settled event.
func (r *SettleResponse) GetEventID() string { return r.EventID }
