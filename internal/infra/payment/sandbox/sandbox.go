// Package sandbox computes the amount encodings the Virtual Merchant demo
// environment uses to key simulated responses. It has no network or adapter
// dependency, so test code can compute amounts without touching gateway state.
package sandbox

import (
	"fmt"

	"virtualmerchant-gateway/internal/domain"
)

// Network names a card network as the demo environment keys its simulation
// tables.
type Network string

const (
	Visa       Network = "visa"
	MasterCard Network = "mastercard"
	Amex       Network = "amex"
	Discover   Network = "discover"
)

// Responses lists, per network, the simulated outcomes the demo environment
// supports and the cents value that triggers each. Outcome names match the
// resulting ssl_result_message with spaces written as underscores.
var Responses = map[Network]map[string]int64{
	Visa: {
		"APPROVAL":              0,
		"CALL_AUTH_CENTER":      2,
		"PICK_UP_CARD":          4,
		"DECLINED":              5,
		"AMOUNT_ERROR":          13,
		"INVALID_CARD_NUMBER":   14,
		"EXPIRED_CARD":          54,
		"DUPLICATE_TRANSACTION": 94,
	},
	MasterCard: {
		"APPROVAL":              0,
		"CALL_AUTH_CENTER":      2,
		"PICK_UP_CARD":          4,
		"DECLINED":              5,
		"AMOUNT_ERROR":          13,
		"INVALID_CARD_NUMBER":   14,
		"EXPIRED_CARD":          54,
		"DUPLICATE_TRANSACTION": 94,
	},
	Amex: {
		"APPROVAL":            0,
		"PICK_UP_CARD":        4,
		"DECLINED":            5,
		"INVALID_CARD_NUMBER": 14,
		"EXPIRED_CARD":        54,
	},
	Discover: {
		"APPROVAL":     0,
		"DECLINED":     5,
		"AMOUNT_ERROR": 13,
		"EXPIRED_CARD": 54,
	},
}

// AdjustAmount replaces the cents of amount (minor units) with the code that
// triggers outcome for the given network. Pure and deterministic: identical
// inputs always yield identical output. Callers layer their own randomization
// on the whole-unit part to dodge duplicate-transaction checks; none happens
// here. The amount must carry at least one whole unit so the encoding cannot
// produce a non-positive amount.
func AdjustAmount(amount int64, network Network, outcome string) (int64, error) {
	if amount < 100 {
		return 0, fmt.Errorf("%w: amount must be at least one whole unit", domain.ErrInvalidArgument)
	}
	codes, ok := Responses[network]
	if !ok {
		return 0, fmt.Errorf("%w: unknown network %q", domain.ErrInvalidArgument, network)
	}
	cents, ok := codes[outcome]
	if !ok {
		return 0, fmt.Errorf("%w: network %q has no simulated outcome %q", domain.ErrInvalidArgument, network, outcome)
	}
	return amount - amount%100 + cents, nil
}
