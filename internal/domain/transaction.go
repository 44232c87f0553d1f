package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind tells credits and debits apart.
type Kind string

const (
	// KindCredit is an incoming transaction that increases the balance.
	KindCredit Kind = "credit"
	// KindDebit is an outgoing transaction that decreases the balance.
	KindDebit Kind = "debit"
)

// IsValid checks if the kind is known.
func (k Kind) IsValid() bool {
	return k == KindCredit || k == KindDebit
}

// Plural returns the collection name used in routes and cache keys.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// Transaction is a single credit or debit record.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}
