package handler

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankview/internal/domain"
	"github.com/iho/bankview/internal/usecase"
)

type accountServiceStub struct {
	state     usecase.State
	addCredit func(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error)
	addDebit  func(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error)
}

func (s *accountServiceStub) Snapshot() usecase.State { return s.state }

func (s *accountServiceStub) AddCredit(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error) {
	return s.addCredit(ctx, input)
}

func (s *accountServiceStub) AddDebit(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error) {
	return s.addDebit(ctx, input)
}

func day(d int) time.Time {
	return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
}

// sixtyState holds one credit of 100.00 and one debit of 40.00.
func sixtyState() usecase.State {
	s := usecase.NewState(domain.NewUser(domain.DefaultDisplayName, day(1)))
	s.Credits = []domain.Transaction{{ID: "c1", Description: "salary", Amount: decimal.RequireFromString("100.00"), Date: day(1)}}
	s.Debits = []domain.Transaction{{ID: "d1", Description: "rent", Amount: decimal.RequireFromString("40.00"), Date: day(2)}}
	return s
}
