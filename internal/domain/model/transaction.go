package model

import (
	"virtualmerchant-gateway/internal/domain"
)

// TransactionRequest is the abstract payment order for amount-bearing
// operations. Amount is in minor units (cents) to avoid float errors; fixed
// two-decimal formatting happens only at the wire boundary.
type TransactionRequest struct {
	Amount   int64
	Currency string
}

// NewTransactionRequest validates and constructs a request.
func NewTransactionRequest(amount int64, currency string) (*TransactionRequest, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidArgument
	}
	if currency == "" {
		currency = "USD"
	}
	return &TransactionRequest{Amount: amount, Currency: currency}, nil
}

// OperationResult is the normalized success value for every operation.
// Original is the exact raw record returned by the transport, with no field
// dropped or renamed beyond extraction of the identifiers.
type OperationResult struct {
	TransactionID string
	ProfileID     string // profile operations only
	Original      map[string]string
}

// BatchRecord is one raw settled-transaction record from a batch query. The
// adapter passes these through untouched; accessors cover the fields callers
// commonly filter on.
type BatchRecord map[string]string

func (r BatchRecord) TransactionID() string { return r["ssl_txn_id"] }
func (r BatchRecord) Status() string        { return r["ssl_trans_status"] }
