package calculator

import "github.com/mmynk/settleup/internal/models"

// Result is the outcome of settling one event snapshot.
type Result struct {
	Balances  []models.Balance             `json:"balances"`
	Transfers []models.TransferInstruction `json:"transfers"`
	// Messages[i] is the rendered Transfers[i]. Empty when no payment details were given.
	Messages []string `json:"messages,omitempty"`
}

// Settle runs the whole pipeline on an event: balances, transfers and,
// once the organizer has supplied payment details, one message per transfer.
func Settle(event models.Event, paymentDetails string) Result {
	balances := ComputeBalances(event.Participants, event.Items)
	transfers := PlanSettlement(balances, event.Items, paymentDetails)

	currency := event.CurrencyCode()
	for i := range transfers {
		transfers[i].Currency = currency
	}

	res := Result{
		Balances:  balances,
		Transfers: transfers,
	}
	if paymentDetails == "" {
		return res
	}
	res.Messages = make([]string, len(transfers))
	for i, t := range transfers {
		res.Messages[i] = FormatMessage(t)
	}
	return res
}
