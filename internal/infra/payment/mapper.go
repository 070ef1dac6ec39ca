package payment

import (
	"fmt"
	"net/url"
	"time"

	"virtualmerchant-gateway/internal/domain"
	"virtualmerchant-gateway/internal/domain/model"
)

// operation identifies one abstract gateway use case.
type operation string

const (
	opSale        operation = "sale"
	opAuthOnly    operation = "auth"
	opComplete    operation = "complete"
	opVoid        operation = "void"
	opCredit      operation = "credit"
	opBatchQuery  operation = "batch_query"
	opTokenCreate operation = "create_profile"
	opTokenSale   operation = "charge_profile"
)

// wireTypes maps each operation onto the processor's transaction type code.
var wireTypes = map[operation]string{
	opSale:        "ccsale",
	opAuthOnly:    "ccauthonly",
	opComplete:    "cccomplete",
	opVoid:        "ccvoid",
	opCredit:      "ccreturn",
	opBatchQuery:  "txnquery",
	opTokenCreate: "ccgettoken",
	opTokenSale:   "ccsale",
}

type credentials struct {
	merchantID string
	userID     string
	pin        string
}

// newRequest seeds the wire fields every operation shares.
func newRequest(op operation, creds credentials) url.Values {
	v := url.Values{}
	v.Set("ssl_merchant_id", creds.merchantID)
	v.Set("ssl_user_id", creds.userID)
	v.Set("ssl_pin", creds.pin)
	v.Set("ssl_transaction_type", wireTypes[op])
	v.Set("ssl_show_form", "false")
	v.Set("ssl_result_format", "ASCII")
	return v
}

// formatAmount renders minor units with the fixed two decimals the processor
// expects. No other reformatting or truncation happens.
func formatAmount(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}

func formatExpiry(card *model.Card) string {
	return fmt.Sprintf("%02d%02d", card.ExpMonth, card.ExpYear%100)
}

const searchDateLayout = "01/02/2006"

func setIfPresent(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setCard(v url.Values, card *model.Card) {
	v.Set("ssl_card_number", card.Number)
	v.Set("ssl_exp_date", formatExpiry(card))
	if card.CVV != "" {
		v.Set("ssl_cvv2cvc2", card.CVV)
		v.Set("ssl_cvv2cvc2_indicator", "1")
	}
}

func setBilling(v url.Values, c model.Contact) {
	setIfPresent(v, "ssl_first_name", c.FirstName)
	setIfPresent(v, "ssl_last_name", c.LastName)
	setIfPresent(v, "ssl_email", c.Email)
	setIfPresent(v, "ssl_phone", c.Phone)
	setIfPresent(v, "ssl_avs_address", c.Address1)
	setIfPresent(v, "ssl_address2", c.Address2)
	setIfPresent(v, "ssl_city", c.City)
	setIfPresent(v, "ssl_state", c.State)
	setIfPresent(v, "ssl_avs_zip", c.PostalCode)
	setIfPresent(v, "ssl_country", c.Country)
}

func setShipping(v url.Values, c model.Contact) {
	setIfPresent(v, "ssl_ship_to_first_name", c.FirstName)
	setIfPresent(v, "ssl_ship_to_last_name", c.LastName)
	setIfPresent(v, "ssl_ship_to_address1", c.Address1)
	setIfPresent(v, "ssl_ship_to_address2", c.Address2)
	setIfPresent(v, "ssl_ship_to_city", c.City)
	setIfPresent(v, "ssl_ship_to_state", c.State)
	setIfPresent(v, "ssl_ship_to_zip", c.PostalCode)
	setIfPresent(v, "ssl_ship_to_country", c.Country)
}

// saleRequest covers ccsale and ccauthonly: amount, card, full prospect.
func saleRequest(op operation, creds credentials, req *model.TransactionRequest, card *model.Card, prospect *model.Prospect) url.Values {
	v := newRequest(op, creds)
	v.Set("ssl_amount", formatAmount(req.Amount))
	setCard(v, card)
	if prospect != nil {
		setBilling(v, prospect.Billing)
		setShipping(v, prospect.Shipping)
	}
	return v
}

// referenceRequest covers the operations addressed purely by a previously
// obtained transaction id (complete, void). The id passes through verbatim.
func referenceRequest(op operation, creds credentials, transactionID string) url.Values {
	v := newRequest(op, creds)
	v.Set("ssl_txn_id", transactionID)
	return v
}

// refundRequest is a reference request plus the optional AVS fields some
// refunds require. Shipping details are irrelevant here and stay off the wire.
func refundRequest(creds credentials, transactionID string, prospect *model.Prospect) url.Values {
	v := referenceRequest(opCredit, creds, transactionID)
	if prospect != nil {
		setIfPresent(v, "ssl_avs_address", prospect.Billing.Address1)
		setIfPresent(v, "ssl_avs_zip", prospect.Billing.PostalCode)
	}
	return v
}

func batchRequest(creds credentials, start, end time.Time) url.Values {
	v := newRequest(opBatchQuery, creds)
	v.Set("ssl_search_start_date", start.Format(searchDateLayout))
	v.Set("ssl_search_end_date", end.Format(searchDateLayout))
	return v
}

func tokenRequest(creds credentials, card *model.Card, prospect *model.Prospect) url.Values {
	v := newRequest(opTokenCreate, creds)
	setCard(v, card)
	v.Set("ssl_add_token", "Y")
	if prospect != nil {
		setBilling(v, prospect.Billing)
	}
	return v
}

func tokenSaleRequest(creds credentials, req *model.TransactionRequest, profileID string) url.Values {
	v := newRequest(opTokenSale, creds)
	v.Set("ssl_amount", formatAmount(req.Amount))
	v.Set("ssl_token", profileID)
	return v
}

// decodeResult turns one classified wire record into the normalized shape:
// an OperationResult on approval, a *domain.GatewayError otherwise. The raw
// record rides along on both paths.
func decodeResult(op operation, resp Response) (*model.OperationResult, error) {
	kind, msg, err := classify(resp)
	if err != nil {
		return nil, err
	}
	switch kind {
	case outcomeApproved:
		res := &model.OperationResult{
			TransactionID: resp["ssl_txn_id"],
			Original:      resp,
		}
		if op == opTokenCreate {
			res.ProfileID = resp["ssl_token"]
		}
		return res, nil
	case outcomeDeclined:
		return nil, &domain.GatewayError{Kind: domain.FailureDeclined, Message: msg, Original: resp}
	default:
		return nil, &domain.GatewayError{Kind: domain.FailureError, Message: msg, Original: resp}
	}
}
