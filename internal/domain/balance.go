package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places kept for currency values.
const CurrencyPlaces = 2

// Round2 rounds a currency value to two places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// FormatAmount renders a currency value with exactly two decimals.
func FormatAmount(d decimal.Decimal) string {
	return Round2(d).StringFixed(CurrencyPlaces)
}

// Total sums the amounts of txs and rounds the result to two places.
func Total(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return Round2(sum)
}

// RecomputeBalance derives the account balance from both collections.
// Each side is rounded before the subtraction and the result is rounded again.
func RecomputeBalance(credits, debits []Transaction) decimal.Decimal {
	return Round2(Total(credits).Sub(Total(debits)))
}

// SortChronological returns a copy of txs stable-sorted by date, earliest
// first. A zero date sorts before every real one. txs is not modified.
func SortChronological(txs []Transaction) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return sorted
}
