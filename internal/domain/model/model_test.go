//go:build !integration

package model

import (
	"errors"
	"testing"

	"virtualmerchant-gateway/internal/domain"
)

func TestNewCard(t *testing.T) {
	t.Run("should create a valid card", func(t *testing.T) {
		card, err := NewCard("4111111111111111", 12, 2029, "123")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if card.Number != "4111111111111111" {
			t.Errorf("unexpected card number %q", card.Number)
		}
		if card.IsZero() {
			t.Error("expected card not to be zero")
		}
	})

	t.Run("should accept an empty cvv", func(t *testing.T) {
		if _, err := NewCard("4111111111111111", 1, 2029, ""); err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		cases := map[string]func() (*Card, error){
			"non-digit number": func() (*Card, error) { return NewCard("4111-1111-1111-1111", 12, 2029, "123") },
			"short number":     func() (*Card, error) { return NewCard("41111111", 12, 2029, "123") },
			"empty number":     func() (*Card, error) { return NewCard("", 12, 2029, "123") },
			"month too high":   func() (*Card, error) { return NewCard("4111111111111111", 13, 2029, "123") },
			"month too low":    func() (*Card, error) { return NewCard("4111111111111111", 0, 2029, "123") },
			"two-digit year":   func() (*Card, error) { return NewCard("4111111111111111", 12, 29, "123") },
			"bad cvv":          func() (*Card, error) { return NewCard("4111111111111111", 12, 2029, "12") },
		}
		for name, build := range cases {
			t.Run(name, func(t *testing.T) {
				card, err := build()
				if !errors.Is(err, domain.ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				if card != nil {
					t.Error("expected card to be nil on error")
				}
			})
		}
	})
}

func TestNewTransactionRequest(t *testing.T) {
	t.Run("should default the currency", func(t *testing.T) {
		req, err := NewTransactionRequest(4200, "")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if req.Amount != 4200 {
			t.Errorf("expected amount 4200, got %d", req.Amount)
		}
		if req.Currency != "USD" {
			t.Errorf("expected USD, got %q", req.Currency)
		}
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		for _, amount := range []int64{0, -1, -4200} {
			if _, err := NewTransactionRequest(amount, "USD"); !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("amount %d: expected ErrInvalidArgument, got %v", amount, err)
			}
		}
	})
}

func TestBatchRecordAccessors(t *testing.T) {
	rec := BatchRecord{
		"ssl_txn_id":       "AA49315-123",
		"ssl_trans_status": "STL",
		"ssl_amount":       "42.00",
	}
	if rec.TransactionID() != "AA49315-123" {
		t.Errorf("unexpected transaction id %q", rec.TransactionID())
	}
	if rec.Status() != "STL" {
		t.Errorf("unexpected status %q", rec.Status())
	}
}
