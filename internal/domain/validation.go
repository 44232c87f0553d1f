package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxManualAmount      = "1000000000" // 1 billion
	MaxDisplayNameLength = 64
	DisplayDateLayout    = "2006-01-02"
	legacyDateLayout     = "01/02/2006"
	localDateTimeLayout  = "2006-01-02T15:04:05"

	// Amounts are rescaled to a common exponent on every comparison and
	// rounding, so the exponent has to stay small.
	MinAmountExponent = -18
	MaxAmountExponent = 12
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	localDateTimeLayout,
	DisplayDateLayout,
	legacyDateLayout,
}

// ParseDate parses a calendar date in any of the layouts the remote API
// and the clients are known to send.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// ParseAmount parses a raw JSON amount, either a number or a numeric string.
// Missing and null amounts are rejected.
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, ErrInvalidAmount
	}

	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal([]byte(s), &unquoted); err != nil {
			return decimal.Zero, ErrInvalidAmount
		}
		s = strings.TrimSpace(unquoted)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if err := CheckAmountScale(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// CheckAmountScale rejects amounts whose exponent is out of range. It must
// run before any arithmetic on an untrusted amount.
func CheckAmountScale(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp < MinAmountExponent || exp > MaxAmountExponent {
		return fmt.Errorf("%w: exponent %d out of range", ErrInvalidAmount, exp)
	}
	return nil
}

// ValidateManualAmount validates the amount of a user-submitted entry.
func ValidateManualAmount(amount decimal.Decimal) error {
	if err := CheckAmountScale(amount); err != nil {
		return err
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxManualAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxManualAmount)
	}

	return nil
}

// ValidateDisplayName validates the name used by the mock login.
func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidDisplayName)
	}

	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidDisplayName, MaxDisplayNameLength)
	}

	if strings.ContainsAny(name, "/?#") {
		return fmt.Errorf("%w: contains forbidden characters", ErrInvalidDisplayName)
	}

	return nil
}
