package payment

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	liveEndpoint = "https://www.myvirtualmerchant.com/VirtualMerchant/process.do"
	demoEndpoint = "https://demo.myvirtualmerchant.com/VirtualMerchantDemo/process.do"
)

// Transport performs one wire round trip. Implementations own timeouts, TLS
// and retry policy; the gateway treats this purely as an async boundary and
// never retries on its own.
type Transport interface {
	Do(ctx context.Context, form url.Values) ([]Response, error)
}

// HTTPTransport posts form-encoded requests to the processor endpoint
// selected by test mode.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

func NewHTTPTransport(testMode bool, timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	endpoint := liveEndpoint
	if testMode {
		endpoint = demoEndpoint
	}
	return &HTTPTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) Do(ctx context.Context, form url.Values) ([]Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return parseResponses(body)
}
