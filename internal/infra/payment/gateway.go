// File: internal/infra/payment/gateway.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"virtualmerchant-gateway/internal/config"
	"virtualmerchant-gateway/internal/domain"
	"virtualmerchant-gateway/internal/domain/model"
	"virtualmerchant-gateway/internal/domain/ports/adapter"
	"virtualmerchant-gateway/internal/infra/logging"
	"virtualmerchant-gateway/internal/infra/metrics"
)

// restrictedCards are denylisted locally: the processor mishandles these
// numbers, so they reject before any request is sent.
var restrictedCards = map[string]struct{}{
	"5000300020003003": {},
}

var _ adapter.PaymentGateway = (*VirtualMerchantGateway)(nil)

// VirtualMerchantGateway implements adapter.PaymentGateway against Elavon
// Virtual Merchant's flat ssl_* form API. The instance holds only immutable
// configuration, so it is safe under arbitrary concurrent use.
type VirtualMerchantGateway struct {
	creds     credentials
	testMode  bool
	transport Transport
	log       *zerolog.Logger
}

func NewVirtualMerchantGateway(cfg config.VirtualMerchantConfig, logger *zerolog.Logger) (*VirtualMerchantGateway, error) {
	if cfg.MerchantID == "" || cfg.UserID == "" || cfg.PIN == "" {
		return nil, errors.New("virtualmerchant credentials incomplete")
	}
	return &VirtualMerchantGateway{
		creds: credentials{
			merchantID: cfg.MerchantID,
			userID:     cfg.UserID,
			pin:        cfg.PIN,
		},
		testMode:  cfg.TestMode,
		transport: NewHTTPTransport(cfg.TestMode, cfg.Timeout),
		log:       logger,
	}, nil
}

// SetTransport overrides the wire collaborator. Used by tests and by callers
// that bring their own retry or proxy layer.
func (g *VirtualMerchantGateway) SetTransport(t Transport) { g.transport = t }

func (g *VirtualMerchantGateway) Name() string { return "virtualmerchant" }

func (g *VirtualMerchantGateway) Submit(ctx context.Context, req *model.TransactionRequest, card *model.Card, prospect *model.Prospect) (*model.OperationResult, error) {
	if err := g.checkInputs(opSale, req, card); err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, opSale, saleRequest(opSale, g.creds, req, card, prospect))
}

func (g *VirtualMerchantGateway) Authorize(ctx context.Context, req *model.TransactionRequest, card *model.Card, prospect *model.Prospect) (*model.OperationResult, error) {
	if err := g.checkInputs(opAuthOnly, req, card); err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, opAuthOnly, saleRequest(opAuthOnly, g.creds, req, card, prospect))
}

func (g *VirtualMerchantGateway) Settle(ctx context.Context, transactionID string) (*model.OperationResult, error) {
	return g.roundTrip(ctx, opComplete, referenceRequest(opComplete, g.creds, transactionID))
}

func (g *VirtualMerchantGateway) Void(ctx context.Context, transactionID string) (*model.OperationResult, error) {
	return g.roundTrip(ctx, opVoid, referenceRequest(opVoid, g.creds, transactionID))
}

func (g *VirtualMerchantGateway) Refund(ctx context.Context, transactionID string, prospect *model.Prospect) (*model.OperationResult, error) {
	return g.roundTrip(ctx, opCredit, refundRequest(g.creds, transactionID, prospect))
}

func (g *VirtualMerchantGateway) SettledBatchList(ctx context.Context, start, end time.Time) ([]model.BatchRecord, error) {
	if end.IsZero() {
		end = time.Now()
	}
	records, err := g.dispatch(ctx, opBatchQuery, batchRequest(g.creds, start, end))
	if err != nil {
		return nil, err
	}

	// A query-level fault comes back as a single record the classifier can
	// give a verdict on; real settled records carry neither ssl_result nor
	// the error fields.
	if len(records) == 1 {
		if kind, msg, cerr := classify(records[0]); cerr == nil && kind != outcomeApproved {
			failure := domain.FailureError
			if kind == outcomeDeclined {
				failure = domain.FailureDeclined
			}
			metrics.IncGatewayRequest(string(opBatchQuery), kind.String())
			return nil, &domain.GatewayError{Kind: failure, Message: msg, Original: records[0]}
		}
	}

	out := make([]model.BatchRecord, 0, len(records))
	for _, r := range records {
		// A lone ssl_txn_count block is the reply header, not a settled record.
		if _, ok := r["ssl_txn_count"]; ok && len(r) == 1 {
			continue
		}
		out = append(out, model.BatchRecord(r))
	}
	metrics.IncGatewayRequest(string(opBatchQuery), outcomeApproved.String())
	return out, nil
}

func (g *VirtualMerchantGateway) CreateCustomerProfile(ctx context.Context, card *model.Card, prospect *model.Prospect) (*model.OperationResult, error) {
	if err := g.checkCard(opTokenCreate, card); err != nil {
		return nil, err
	}
	return g.roundTrip(ctx, opTokenCreate, tokenRequest(g.creds, card, prospect))
}

func (g *VirtualMerchantGateway) ChargeCustomerProfile(ctx context.Context, req *model.TransactionRequest, profileID string) (*model.OperationResult, error) {
	if req == nil || profileID == "" {
		return nil, domain.ErrInvalidArgument
	}
	return g.roundTrip(ctx, opTokenSale, tokenSaleRequest(g.creds, req, profileID))
}

func (g *VirtualMerchantGateway) checkInputs(op operation, req *model.TransactionRequest, card *model.Card) error {
	if req == nil {
		return domain.ErrInvalidArgument
	}
	return g.checkCard(op, card)
}

// checkCard enforces the local denylist before any transport attempt.
func (g *VirtualMerchantGateway) checkCard(op operation, card *model.Card) error {
	if card.IsZero() {
		return domain.ErrInvalidArgument
	}
	if _, ok := restrictedCards[card.Number]; ok {
		metrics.IncGatewayRequest(string(op), "restricted")
		g.log.Debug().
			Str("operation", string(op)).
			Str("card", logging.RedactPAN(card.Number, false)).
			Msg("restricted card rejected before dispatch")
		return domain.ErrRestrictedCard
	}
	return nil
}

// roundTrip runs one operation end to end: dispatch the wire request, decode
// the first record, account for the outcome.
func (g *VirtualMerchantGateway) roundTrip(ctx context.Context, op operation, form url.Values) (*model.OperationResult, error) {
	records, err := g.dispatch(ctx, op, form)
	if err != nil {
		return nil, err
	}

	res, err := decodeResult(op, records[0])
	switch {
	case err == nil:
		metrics.IncGatewayRequest(string(op), outcomeApproved.String())
		return res, nil
	case errors.Is(err, domain.ErrMalformedResponse):
		metrics.IncGatewayRequest(string(op), "malformed")
		g.log.Warn().Str("operation", string(op)).Err(err).Msg("gateway response unparseable")
		return nil, err
	default:
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) {
			metrics.IncGatewayRequest(string(op), string(gwErr.Kind))
			// Declines are expected traffic, not faults.
			g.log.Debug().
				Str("operation", string(op)).
				Str("kind", string(gwErr.Kind)).
				Str("message", gwErr.Message).
				Msg("gateway rejected operation")
		}
		return nil, err
	}
}

// dispatch performs the transport call with per-call trace identity and
// duration accounting. Transport faults propagate unchanged.
func (g *VirtualMerchantGateway) dispatch(ctx context.Context, op operation, form url.Values) ([]Response, error) {
	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, string(op))
	log := logging.With(ctx, g.log)
	defer logging.TraceDuration(log, "VirtualMerchantGateway.dispatch")()

	start := time.Now()
	records, err := g.transport.Do(ctx, form)
	metrics.ObserveGatewayDuration(string(op), time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrMalformedResponse) {
			metrics.IncGatewayRequest(string(op), "malformed")
		} else {
			metrics.IncGatewayRequest(string(op), "transport_error")
		}
		log.Warn().Err(err).Msg("gateway dispatch failed")
		return nil, err
	}

	if len(records) == 0 {
		metrics.IncGatewayRequest(string(op), "malformed")
		return nil, fmt.Errorf("%w: no records", domain.ErrMalformedResponse)
	}

	log.Trace().
		Dur("duration", time.Since(start)).
		Int("records", len(records)).
		Msg("gateway dispatch done")
	return records, nil
}
