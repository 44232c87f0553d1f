package dto

import (
	"time"

	"github.com/iho/bankview/internal/domain"
	"github.com/iho/bankview/internal/usecase"
)

// HomeResponse is the home view.
type HomeResponse struct {
	UserName       string `json:"user_name"`
	LoggedIn       bool   `json:"logged_in"`
	AccountBalance string `json:"account_balance"`
}

// HomeFromState converts a state snapshot to the home view.
func HomeFromState(s usecase.State) *HomeResponse {
	return &HomeResponse{
		UserName:       s.User.DisplayName,
		LoggedIn:       s.User.LoggedIn,
		AccountBalance: domain.FormatAmount(s.Balance()),
	}
}

// UserResponse represents the current user.
type UserResponse struct {
	UserName    string `json:"user_name"`
	MemberSince string `json:"member_since"`
	LoggedIn    bool   `json:"logged_in"`
}

// UserFromDomain converts domain user to response.
func UserFromDomain(u domain.User) *UserResponse {
	return &UserResponse{
		UserName:    u.DisplayName,
		MemberSince: u.MemberSince.Format(domain.DisplayDateLayout),
		LoggedIn:    u.LoggedIn,
	}
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(tx *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      domain.FormatAmount(tx.Amount),
		Date:        tx.Date,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i := range txs {
		result[i] = TransactionFromDomain(&txs[i])
	}
	return result
}

// SummaryResponse is the credit or debit summary view.
type SummaryResponse struct {
	Kind           domain.Kind            `json:"kind"`
	Transactions   []*TransactionResponse `json:"transactions"`
	Count          int                    `json:"count"`
	Total          string                 `json:"total"`
	AccountBalance string                 `json:"account_balance"`
}

// SummaryFromState builds the summary view for one collection.
func SummaryFromState(s usecase.State, kind domain.Kind) *SummaryResponse {
	txs := s.Transactions(kind)
	return &SummaryResponse{
		Kind:           kind,
		Transactions:   TransactionsFromDomain(txs),
		Count:          len(txs),
		Total:          domain.FormatAmount(domain.Total(txs)),
		AccountBalance: domain.FormatAmount(s.Balance()),
	}
}

// FetchOutcomeResponse describes the refresh of one collection.
type FetchOutcomeResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// RefreshResponse represents the result of a refresh.
type RefreshResponse struct {
	Credits        FetchOutcomeResponse `json:"credits"`
	Debits         FetchOutcomeResponse `json:"debits"`
	AccountBalance string               `json:"account_balance"`
}

// RefreshFromReport converts a refresh report to response.
func RefreshFromReport(r usecase.RefreshReport) *RefreshResponse {
	return &RefreshResponse{
		Credits:        outcomeFromUseCase(r.Credits),
		Debits:         outcomeFromUseCase(r.Debits),
		AccountBalance: domain.FormatAmount(r.Balance),
	}
}

func outcomeFromUseCase(o usecase.FetchOutcome) FetchOutcomeResponse {
	if o.Err != nil {
		return FetchOutcomeResponse{Status: "failed", Error: o.Err.Error()}
	}
	return FetchOutcomeResponse{Status: "ok", Count: o.Count}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
