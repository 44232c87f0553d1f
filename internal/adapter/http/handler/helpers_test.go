package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/bankview/internal/adapter/http/dto"
	"github.com/iho/bankview/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	malformed := &domain.MalformedRecordError{Index: -1, Field: "amount", Value: "-1", Err: domain.ErrInvalidAmount}
	fetchErr := &domain.FetchError{Kind: domain.KindCredit, URL: "http://x", Err: malformed}

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"malformed record", malformed, http.StatusBadRequest},
		{"fetch error wins over wrapped malformed record", fetchErr, http.StatusBadGateway},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"wrapped user not found", fmt.Errorf("profile: %w", domain.ErrUserNotFound), http.StatusNotFound},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"amount too large", domain.ErrAmountTooLarge, http.StatusBadRequest},
		{"invalid date", domain.ErrInvalidDate, http.StatusBadRequest},
		{"invalid display name", domain.ErrInvalidDisplayName, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteDomainError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeDomainError(rr, domain.ErrUserNotFound)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Error != "not found" || resp.Message != domain.ErrUserNotFound.Error() {
		t.Fatalf("unexpected error payload: %+v", resp)
	}
}
