package calculator

import (
	"slices"

	"github.com/mmynk/settleup/internal/models"
)

// PlanSettlement turns balances into transfer instructions that clear them.
//
// balances must be ordered as ComputeBalances returns them. Debtors are walked
// in that order (largest debt first); each one pays creditors left to right
// until their debt is gone, and a creditor's remaining credit carries over to
// the next debtor. Amounts within Epsilon of zero are treated as settled.
//
// This greedy sweep always clears every debt when balances sum to zero, but it
// does not minimize the number of transfers.
//
// Every instruction from a debtor carries that debtor's complete item breakdown,
// not just the part paid to that creditor, plus paymentDetails verbatim.
// balances is not modified.
func PlanSettlement(balances []models.Balance, items []models.LineItem, paymentDetails string) []models.TransferInstruction {
	var debtors, creditors []models.Balance
	for _, bal := range balances {
		switch {
		case settled(bal.Balance):
		case bal.Balance < 0:
			debtors = append(debtors, bal)
		default:
			creditors = append(creditors, bal)
		}
	}

	// credit[j] is what creditors[j] is still owed.
	credit := make([]float64, len(creditors))
	for j, c := range creditors {
		credit[j] = c.Balance
	}

	transfers := make([]models.TransferInstruction, 0, len(debtors))
	for _, debtor := range debtors {
		remaining := -debtor.Balance
		shares := ItemShares(items, debtor.ParticipantID)

		for j, creditor := range creditors {
			if settled(remaining) {
				break
			}
			if settled(credit[j]) {
				continue
			}

			amount := min(remaining, credit[j])
			transfers = append(transfers, models.TransferInstruction{
				FromID:         debtor.ParticipantID,
				FromName:       debtor.ParticipantName,
				ToID:           creditor.ParticipantID,
				ToName:         creditor.ParticipantName,
				Amount:         Round(amount),
				Items:          slices.Clone(shares),
				PaymentDetails: paymentDetails,
			})

			remaining -= amount
			credit[j] -= amount
		}
	}

	return transfers
}
