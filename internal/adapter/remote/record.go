package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/iho/bankview/internal/domain"
)

// record is the wire shape of a transaction served by the remote API.
// Amount and ID are kept raw so that numbers and strings are both accepted.
type record struct {
	ID          json.RawMessage `json:"id,omitempty"`
	Description string          `json:"description,omitempty"`
	Amount      json.RawMessage `json:"amount"`
	Date        string          `json:"date"`
}

// DecodeTransactions decodes a JSON array of transaction records. The first
// record with an unusable amount or date fails the whole decode with a
// *domain.MalformedRecordError.
func DecodeTransactions(data []byte) ([]domain.Transaction, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}

	txs := make([]domain.Transaction, len(records))
	for i, r := range records {
		amount, err := domain.ParseAmount(r.Amount)
		if err != nil {
			return nil, &domain.MalformedRecordError{Index: i, Field: "amount", Value: string(r.Amount), Err: err}
		}

		date, err := domain.ParseDate(r.Date)
		if err != nil {
			return nil, &domain.MalformedRecordError{Index: i, Field: "date", Value: r.Date, Err: err}
		}

		txs[i] = domain.Transaction{
			ID:          rawID(r.ID),
			Description: r.Description,
			Amount:      amount,
			Date:        date,
		}
	}

	return txs, nil
}

// EncodeTransactions is the inverse of DecodeTransactions.
func EncodeTransactions(txs []domain.Transaction) ([]byte, error) {
	records := make([]record, len(txs))
	for i, tx := range txs {
		records[i] = record{
			Description: tx.Description,
			Amount:      json.RawMessage(tx.Amount.String()),
			Date:        tx.Date.Format(time.RFC3339Nano),
		}
		if tx.ID != "" {
			records[i].ID = json.RawMessage(strconv.Quote(tx.ID))
		}
	}
	return json.Marshal(records)
}

func rawID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
