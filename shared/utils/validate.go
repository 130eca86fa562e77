package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidQuantity is the exact message shown when a stock-in or POS form
// submits a quantity that is not a positive integer.
var ErrInvalidQuantity = errors.New("Please enter a valid quantity")

// ValidUUID reports whether s parses as a UUID. Used to reject malformed
// identifiers before any backend call is made.
func ValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseQuantity converts a user-entered quantity to an integer. Anything that
// is not a whole number greater than zero fails with ErrInvalidQuantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

// ParsePrice converts a user-entered price to a number. Prices must be
// non-negative.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || p < 0 {
		return 0, errors.New("Please enter a valid price")
	}
	return p, nil
}
