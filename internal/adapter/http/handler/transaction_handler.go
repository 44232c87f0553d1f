package handler

import (
	"context"
	"net/http"

	"github.com/iho/bankview/internal/adapter/http/dto"
	"github.com/iho/bankview/internal/domain"
	"github.com/iho/bankview/internal/usecase"
)

// TransactionService defines the interface for the credit and debit views.
type TransactionService interface {
	StateReader
	AddCredit(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error)
	AddDebit(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error)
}

// TransactionHandler handles credit and debit summary requests.
type TransactionHandler struct {
	service TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// ListCredits handles GET /credits.
func (h *TransactionHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	h.list(w, domain.KindCredit)
}

// ListDebits handles GET /debits.
func (h *TransactionHandler) ListDebits(w http.ResponseWriter, r *http.Request) {
	h.list(w, domain.KindDebit)
}

// AddCredit handles POST /credits.
func (h *TransactionHandler) AddCredit(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, domain.KindCredit, h.service.AddCredit)
}

// AddDebit handles POST /debits.
func (h *TransactionHandler) AddDebit(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, domain.KindDebit, h.service.AddDebit)
}

func (h *TransactionHandler) list(w http.ResponseWriter, kind domain.Kind) {
	writeJSON(w, http.StatusOK, dto.SummaryFromState(h.service.Snapshot(), kind))
}

type addFunc func(ctx context.Context, input usecase.AddTransactionInput) (*domain.Transaction, error)

func (h *TransactionHandler) add(w http.ResponseWriter, r *http.Request, kind domain.Kind, add addFunc) {
	var req dto.AddTransactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tx, err := add(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}
