package calculator

import (
	"fmt"
	"strings"

	"github.com/mmynk/settleup/internal/models"
)

// FormatMessage renders a transfer instruction as a message addressed to the debtor.
//
//	Hi, Bob!
//
//	Please transfer 6,000.00 ₽ to Alice for:
//	- Tent (1,000.00 ₽)
//	- Food (5,000.00 ₽)
//
//	Payment details:
//	<payment details>
func FormatMessage(t models.TransferInstruction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi, %s!\n\n", t.FromName)
	fmt.Fprintf(&b, "Please transfer %s to %s for:\n", FormatAmount(t.Amount, t.Currency), t.ToName)
	for _, item := range t.Items {
		fmt.Fprintf(&b, "- %s (%s)\n", item.Name, FormatAmount(item.Amount, t.Currency))
	}
	fmt.Fprintf(&b, "\nPayment details:\n%s", t.PaymentDetails)
	return b.String()
}

// FormatBalance renders one participant's position, e.g.
// "Alice: spent 18,000.00 ₽, share 6,000.00 ₽, balance +12,000.00 ₽".
func FormatBalance(bal models.Balance, currency string) string {
	sign := ""
	if Round(bal.Balance) >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s: spent %s, share %s, balance %s%s",
		bal.ParticipantName,
		FormatAmount(bal.Spent, currency),
		FormatAmount(bal.ShouldPay, currency),
		sign,
		FormatAmount(bal.Balance, currency),
	)
}
