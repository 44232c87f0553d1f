package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bankview/internal/domain"
)

// State is an immutable snapshot of the application state. Reducers never
// modify a State or its slices in place; they build a new one. Holders of a
// State must treat its slices as read-only.
type State struct {
	User    domain.User
	Credits []domain.Transaction
	Debits  []domain.Transaction
}

// NewState creates the startup state: the given user and two empty collections.
func NewState(user domain.User) State {
	return State{
		User:    user,
		Credits: []domain.Transaction{},
		Debits:  []domain.Transaction{},
	}
}

// Balance derives the account balance from the snapshot.
func (s State) Balance() decimal.Decimal {
	return domain.RecomputeBalance(s.Credits, s.Debits)
}

// Transactions returns the collection of the given kind.
func (s State) Transactions(kind domain.Kind) []domain.Transaction {
	if kind == domain.KindDebit {
		return s.Debits
	}
	return s.Credits
}

func (s State) withTransactions(kind domain.Kind, txs []domain.Transaction) State {
	if kind == domain.KindDebit {
		s.Debits = txs
	} else {
		s.Credits = txs
	}
	return s
}

// Reducer produces the next state from the current one.
type Reducer func(State) (State, error)

// ReplaceTransactions swaps the collection of the given kind for a sorted copy of txs.
func ReplaceTransactions(kind domain.Kind, txs []domain.Transaction) Reducer {
	return func(s State) (State, error) {
		return s.withTransactions(kind, domain.SortChronological(txs)), nil
	}
}

// AppendTransaction adds tx to the collection of the given kind and re-sorts it.
func AppendTransaction(kind domain.Kind, tx domain.Transaction) Reducer {
	return func(s State) (State, error) {
		current := s.Transactions(kind)
		next := make([]domain.Transaction, 0, len(current)+1)
		next = append(next, current...)
		next = append(next, tx)
		return s.withTransactions(kind, domain.SortChronological(next)), nil
	}
}

// LogIn records name as the current user's display name.
func LogIn(name string) Reducer {
	return func(s State) (State, error) {
		user, err := s.User.LogIn(name)
		if err != nil {
			return s, err
		}
		s.User = user
		return s, nil
	}
}
