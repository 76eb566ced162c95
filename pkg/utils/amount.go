package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxAmount is the largest refund amount accepted
const MaxAmount = math.MaxInt32

var (
	// ErrNegativeAmount is returned for amounts below zero
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountTooLarge is returned for amounts above MaxAmount
	ErrAmountTooLarge = errors.New("amount is too large")
)

// ParseAmount converts a submitted amount to a whole number.
// Empty or non-numeric input yields def; fractions are floored.
func ParseAmount(value string, def int) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def, nil
	}
	if math.IsNaN(f) || (err == nil && math.IsInf(f, 0)) {
		return def, nil
	}
	if f < 0 {
		return 0, ErrNegativeAmount
	}
	if f > MaxAmount {
		return 0, ErrAmountTooLarge
	}
	return int(math.Floor(f)), nil
}
