package adapter

import (
	"context"
	"time"

	"virtualmerchant-gateway/internal/domain/model"
)

// PaymentGateway is the hex port for the payment processor adapter.
//
// Every method resolves to exactly one of a normalized result or an error.
// Business declines and processor-side request errors surface as
// *domain.GatewayError; denylisted cards reject with domain.ErrRestrictedCard
// before any network attempt; transport faults propagate unchanged. Caller
// inputs are never mutated, and no call retries automatically.
type PaymentGateway interface {
	Name() string

	// Submit runs an immediate sale.
	Submit(ctx context.Context, req *model.TransactionRequest, card *model.Card, prospect *model.Prospect) (*model.OperationResult, error)
	// Authorize places a hold without capturing funds.
	Authorize(ctx context.Context, req *model.TransactionRequest, card *model.Card, prospect *model.Prospect) (*model.OperationResult, error)
	// Settle captures a previously submitted or authorized transaction.
	Settle(ctx context.Context, transactionID string) (*model.OperationResult, error)
	// Void cancels a transaction before settlement.
	Void(ctx context.Context, transactionID string) (*model.OperationResult, error)
	// Refund credits a settled transaction back to the card. The prospect is
	// optional; only its billing address feeds address verification.
	Refund(ctx context.Context, transactionID string, prospect *model.Prospect) (*model.OperationResult, error)
	// SettledBatchList returns the raw settled-transaction records between
	// start and end. A zero end means now. Date-range policy belongs to the
	// processor and surfaces as a *domain.GatewayError when violated.
	SettledBatchList(ctx context.Context, start, end time.Time) ([]model.BatchRecord, error)
	// CreateCustomerProfile stores the card with the processor and returns a
	// reusable profile id instead of a transaction id.
	CreateCustomerProfile(ctx context.Context, card *model.Card, prospect *model.Prospect) (*model.OperationResult, error)
	// ChargeCustomerProfile charges a stored profile without re-submitting
	// card data.
	ChargeCustomerProfile(ctx context.Context, req *model.TransactionRequest, profileID string) (*model.OperationResult, error)
}
