//go:build !integration

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpsServer(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("healthz is always open", func(t *testing.T) {
		srv := httptest.NewServer(NewServer("secret", &logger).Router())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/healthz")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("metrics without a configured key is open", func(t *testing.T) {
		srv := httptest.NewServer(NewServer("", &logger).Router())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/metrics")
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("metrics behind a key", func(t *testing.T) {
		srv := httptest.NewServer(NewServer("secret", &logger).Router())
		defer srv.Close()

		get := func(auth string) int {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/metrics", nil)
			if auth != "" {
				req.Header.Set("Authorization", auth)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer resp.Body.Close()
			return resp.StatusCode
		}

		if got := get(""); got != http.StatusUnauthorized {
			t.Errorf("no header: expected 401, got %d", got)
		}
		if got := get("NotBearer secret"); got != http.StatusUnauthorized {
			t.Errorf("malformed token: expected 401, got %d", got)
		}
		if got := get("Bearer wrong"); got != http.StatusForbidden {
			t.Errorf("wrong key: expected 403, got %d", got)
		}
		if got := get("Bearer secret"); got != http.StatusOK {
			t.Errorf("right key: expected 200, got %d", got)
		}
	})
}
