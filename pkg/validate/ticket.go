package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const ticketNumberLength = 12

// IsTicketNumber reports whether s is a well-formed ledger number
// (purchase, transaction or account id): digits with a valid check digit.
func IsTicketNumber(s string) bool {
	// goluhn treats the empty string as a valid Luhn sum of zero.
	if s == "" {
		return false
	}
	return goluhn.Validate(s) == nil
}

// NewTicketNumber issues a fresh random ledger number with a check digit.
func NewTicketNumber() (string, error) {
	return goluhn.Generate(ticketNumberLength), nil
}
