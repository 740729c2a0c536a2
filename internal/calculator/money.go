package calculator

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

// roundPlaces is the number of decimals transfer amounts are rounded and displayed to.
const roundPlaces = 2

const minorUnits = 100

// Epsilon is the distance from zero below which a balance counts as settled.
// It is half a minor unit: anything that would display as 0.00 never moves money.
const Epsilon = 0.005

// Round rounds amount to 2 decimal places, half away from zero.
// The float is scaled to minor units before rounding, so 1.005 (stored as
// 1.00499...) rounds to 1.00 and 2.675 (scaled to exactly 267.5) to 2.68.
func Round(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	return decimal.NewFromFloat(amount * minorUnits).Round(0).Shift(-roundPlaces).InexactFloat64()
}

// settled reports whether amount is within Epsilon of zero.
func settled(amount float64) bool {
	return math.Abs(amount) < Epsilon
}

// FormatAmount renders amount with exactly two decimals using the currency's
// symbol and layout (e.g. "6,000.00 ₽"). Unknown codes are shown verbatim.
func FormatAmount(amount float64, currency string) string {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	f := money.NewFormatter(roundPlaces, ".", ",", currency, "1 $")
	if cur := money.GetCurrency(currency); cur != nil {
		f = money.NewFormatter(roundPlaces, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return f.Format(0)
	}
	// Rounded from the exact binary value: 2.675 is stored as 2.67499... and shows as 2.67.
	minor := decimal.NewFromFloatWithExponent(amount, -roundPlaces).Shift(roundPlaces).IntPart()
	return f.Format(minor)
}
