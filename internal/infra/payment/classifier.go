package payment

import (
	"fmt"

	"virtualmerchant-gateway/internal/domain"
)

type outcome int

const (
	outcomeApproved outcome = iota
	outcomeDeclined
	outcomeError
)

func (o outcome) String() string {
	switch o {
	case outcomeApproved:
		return "approved"
	case outcomeDeclined:
		return "declined"
	default:
		return "error"
	}
}

// Processor result sentinels. Anything else in ssl_result is unrecognized and
// must never classify as an approval.
const (
	resultApproved = "0"
	resultDeclined = "1"
)

// classify maps a raw processor record onto the outcome taxonomy and pulls
// out the normalized message. Pure; the only error it returns is malformed
// input (a record missing both the error fields and ssl_result).
func classify(resp Response) (outcome, string, error) {
	if len(resp) == 0 {
		return outcomeError, "", fmt.Errorf("%w: empty record", domain.ErrMalformedResponse)
	}

	// Request-level errors come back as errorCode/errorName/errorMessage
	// instead of an ssl_result.
	if code := resp["errorCode"]; code != "" {
		msg := resp["errorMessage"]
		if msg == "" {
			msg = resp["errorName"]
		}
		if msg == "" {
			msg = "error code " + code
		}
		return outcomeError, msg, nil
	}

	result, ok := resp["ssl_result"]
	if !ok || result == "" {
		return outcomeError, "", fmt.Errorf("%w: record has neither ssl_result nor errorCode", domain.ErrMalformedResponse)
	}

	switch result {
	case resultApproved:
		return outcomeApproved, resp["ssl_result_message"], nil
	case resultDeclined:
		msg := resp["ssl_result_message"]
		if msg == "" {
			msg = "DECLINED"
		}
		return outcomeDeclined, msg, nil
	default:
		msg := resp["ssl_result_message"]
		if msg == "" {
			msg = "unrecognized result code " + result
		}
		return outcomeError, msg, nil
	}
}
