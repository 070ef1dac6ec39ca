package model

import (
	"virtualmerchant-gateway/internal/domain"
)

// Card carries raw card details for a single operation. Only the basic shape
// is checked here; issuer rules stay with the processor.
type Card struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVV      string
}

// NewCard validates and constructs a card.
func NewCard(number string, expMonth, expYear int, cvv string) (*Card, error) {
	if !isDigits(number) || len(number) < 12 || len(number) > 19 {
		return nil, domain.ErrInvalidArgument
	}
	if expMonth < 1 || expMonth > 12 {
		return nil, domain.ErrInvalidArgument
	}
	if expYear < 1000 || expYear > 9999 {
		return nil, domain.ErrInvalidArgument
	}
	if cvv != "" && (!isDigits(cvv) || len(cvv) < 3 || len(cvv) > 4) {
		return nil, domain.ErrInvalidArgument
	}
	return &Card{
		Number:   number,
		ExpMonth: expMonth,
		ExpYear:  expYear,
		CVV:      cvv,
	}, nil
}

func (c *Card) IsZero() bool { return c == nil || c.Number == "" }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
