package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2021-01-01", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2019-11-04T12:35:40.584Z", time.Date(2019, 11, 4, 12, 35, 40, 584000000, time.UTC), true},
		{"2019-11-04T12:35:40Z", time.Date(2019, 11, 4, 12, 35, 40, 0, time.UTC), true},
		{"2019-11-04T12:35:40", time.Date(2019, 11, 4, 12, 35, 40, 0, time.UTC), true},
		{"01/01/1990", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{" 2021-06-30 ", time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"yesterday", time.Time{}, false},
		{"2021-13-01", time.Time{}, false},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.ok {
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q) expected ErrInvalidDate, got %v", tt.input, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{`100`, "100", true},
		{`25.005`, "25.005", true},
		{`"12.50"`, "12.5", true},
		{`-3.2`, "-3.2", true},
		{``, "", false},
		{`null`, "", false},
		{`"abc"`, "", false},
		{`true`, "", false},
		{`1e12`, "1000000000000", true},
		{`1e13`, "", false},
		{`"1e10000000"`, "", false},
		{`1e999999999`, "", false},
		{`1e-19`, "", false},
	}

	for _, tt := range tests {
		got, err := ParseAmount(json.RawMessage(tt.raw))
		if tt.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%s) unexpected error: %v", tt.raw, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("ParseAmount(%s) = %s, want %s", tt.raw, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%s) expected ErrInvalidAmount, got %v", tt.raw, err)
		}
	}
}

func TestValidateManualAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{"positive", decimal.RequireFromString("10.00"), nil},
		{"zero", decimal.Zero, ErrInvalidAmount},
		{"negative", decimal.NewFromInt(-5), ErrInvalidAmount},
		{"too large", decimal.RequireFromString("1000000000.01"), ErrAmountTooLarge},
		{"huge exponent", decimal.RequireFromString("1e10000000"), ErrInvalidAmount},
		{"tiny exponent", decimal.RequireFromString("1e-10000000"), ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManualAmount(tt.amount)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateDisplayName(t *testing.T) {
	valid := []string{"Bobby", "  Ada  ", "Zoë"}
	for _, name := range valid {
		if err := ValidateDisplayName(name); err != nil {
			t.Fatalf("ValidateDisplayName(%q) unexpected error: %v", name, err)
		}
	}

	invalid := []string{"", "   ", "a/b", "what?", string(make([]byte, MaxDisplayNameLength+1))}
	for _, name := range invalid {
		if err := ValidateDisplayName(name); !errors.Is(err, ErrInvalidDisplayName) {
			t.Fatalf("ValidateDisplayName(%q) expected ErrInvalidDisplayName, got %v", name, err)
		}
	}
}

func TestCheckAmountScale(t *testing.T) {
	ok := []string{"0.01", "25.005", "1e12", "0.000000000000000001"}
	for _, raw := range ok {
		if err := CheckAmountScale(decimal.RequireFromString(raw)); err != nil {
			t.Fatalf("CheckAmountScale(%s) unexpected error: %v", raw, err)
		}
	}

	bad := []string{"1e13", "1e-19", "1e999999999"}
	for _, raw := range bad {
		start := time.Now()
		if err := CheckAmountScale(decimal.RequireFromString(raw)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("CheckAmountScale(%s) expected ErrInvalidAmount, got %v", raw, err)
		}
		if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
			t.Fatalf("CheckAmountScale(%s) took %s", raw, elapsed)
		}
	}
}
