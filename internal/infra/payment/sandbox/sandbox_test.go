//go:build !integration

package sandbox

import (
	"errors"
	"testing"

	"virtualmerchant-gateway/internal/domain"
)

func TestAdjustAmount(t *testing.T) {
	t.Run("should be deterministic", func(t *testing.T) {
		first, err := AdjustAmount(4217, Visa, "DECLINED")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		for i := 0; i < 100; i++ {
			again, err := AdjustAmount(4217, Visa, "DECLINED")
			if err != nil {
				t.Fatalf("expected no error, but got: %v", err)
			}
			if again != first {
				t.Fatalf("expected %d on every call, got %d", first, again)
			}
		}
	})

	t.Run("should keep the whole units and replace only the cents", func(t *testing.T) {
		got, err := AdjustAmount(4299, Visa, "DECLINED")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if got != 4205 {
			t.Errorf("expected 4205, got %d", got)
		}

		got, err = AdjustAmount(4299, Visa, "APPROVAL")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if got != 4200 {
			t.Errorf("expected 4200, got %d", got)
		}
	})

	t.Run("every listed outcome encodes to a valid amount", func(t *testing.T) {
		for network, codes := range Responses {
			for outcome := range codes {
				got, err := AdjustAmount(10000, network, outcome)
				if err != nil {
					t.Errorf("%s/%s: %v", network, outcome, err)
					continue
				}
				if got < 10000 || got >= 10100 {
					t.Errorf("%s/%s: encoded amount %d left the whole-unit range", network, outcome, got)
				}
			}
		}
	})

	t.Run("every network simulates at least approval and decline", func(t *testing.T) {
		for network, codes := range Responses {
			for _, required := range []string{"APPROVAL", "DECLINED"} {
				if _, ok := codes[required]; !ok {
					t.Errorf("network %s is missing outcome %s", network, required)
				}
			}
		}
	})

	t.Run("should reject unknown inputs", func(t *testing.T) {
		if _, err := AdjustAmount(4200, "maestro", "APPROVAL"); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for unknown network, got %v", err)
		}
		if _, err := AdjustAmount(4200, Visa, "TEAPOT"); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for unknown outcome, got %v", err)
		}
		if _, err := AdjustAmount(42, Visa, "APPROVAL"); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for sub-unit amount, got %v", err)
		}
	})
}
