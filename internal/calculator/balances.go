package calculator

import (
	"cmp"
	"slices"

	"github.com/mmynk/settleup/internal/models"
)

// ComputeBalances computes every participant's net position for an event.
//
// Algorithm:
// - spent: sum of prices of priced items the participant fronted
// - shouldPay: sum of price / max(1, cost-sharers) over priced items they share
// - balance: spent - shouldPay, kept in full precision
//
// A priced item with no cost-sharers is charged to its responsible participant
// as if they were the only sharer. Items without a price are skipped, and IDs
// that are not in participants are ignored.
//
// The result is sorted ascending by balance (largest debtor first). Ties keep
// the order of participants, so the output is deterministic.
func ComputeBalances(participants []models.Participant, items []models.LineItem) []models.Balance {
	balances := make([]models.Balance, 0, len(participants))
	for _, p := range participants {
		bal := models.Balance{
			ParticipantID:   p.ID,
			ParticipantName: p.Name,
		}
		for _, item := range items {
			if !item.Priced() {
				continue
			}
			if item.ResponsibleID == p.ID {
				bal.Spent += item.Amount()
			}
			if sharesCost(item, p.ID) {
				bal.ShouldPay += shareOf(item)
			}
		}
		bal.Balance = bal.Spent - bal.ShouldPay
		balances = append(balances, bal)
	}

	slices.SortStableFunc(balances, func(a, b models.Balance) int {
		return cmp.Compare(a.Balance, b.Balance)
	})
	return balances
}

// ItemShares lists the priced items the participant shares, with their share of each.
// Items keep snapshot order.
func ItemShares(items []models.LineItem, participantID string) []models.ItemShare {
	var shares []models.ItemShare
	for _, item := range items {
		if !item.Priced() || !sharesCost(item, participantID) {
			continue
		}
		shares = append(shares, models.ItemShare{
			ItemID: item.ID,
			Name:   item.Name,
			Amount: shareOf(item),
		})
	}
	return shares
}

// sharesCost reports whether the participant pays part of the item.
// Nobody sharing a priced item means its responsible participant carries it alone.
func sharesCost(item models.LineItem, participantID string) bool {
	if len(item.Participants) == 0 {
		return item.ResponsibleID == participantID
	}
	return item.SharedBy(participantID)
}

// shareOf is one cost-sharer's part of the item price.
func shareOf(item models.LineItem) float64 {
	return item.Amount() / float64(max(1, len(item.Participants)))
}
