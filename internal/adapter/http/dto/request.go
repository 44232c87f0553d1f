package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bankview/internal/usecase"
)

// LoginRequest represents a mock login request.
type LoginRequest struct {
	UserName string `json:"user_name"`
}

// AddTransactionRequest represents a manually entered credit or debit.
type AddTransactionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AddTransactionRequest) ToUseCaseInput() usecase.AddTransactionInput {
	return usecase.AddTransactionInput{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
	}
}
