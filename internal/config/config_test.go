//go:build !integration

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		path := writeConfig(t, `
gateway:
  virtualmerchant:
    merchant_id: "000078"
    user_id: webpage
    pin: ZKN0S1
    test_mode: true
`)
		cfg, err := LoadConfig(path, true)
		if err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
			t.Errorf("unexpected log defaults %+v", cfg.Log)
		}
		if cfg.Gateway.VirtualMerchant.Timeout != 15*time.Second {
			t.Errorf("unexpected timeout default %v", cfg.Gateway.VirtualMerchant.Timeout)
		}
		if cfg.Ops.Port != 9102 {
			t.Errorf("unexpected ops port default %d", cfg.Ops.Port)
		}
		if !cfg.Runtime.Dev {
			t.Error("expected dev mode to be carried through")
		}
		if !cfg.Gateway.VirtualMerchant.TestMode {
			t.Error("expected test_mode to be set")
		}
	})

	t.Run("should require the processor credentials", func(t *testing.T) {
		for name, body := range map[string]string{
			"missing merchant_id": "gateway:\n  virtualmerchant:\n    user_id: webpage\n    pin: ZKN0S1\n",
			"missing user_id":     "gateway:\n  virtualmerchant:\n    merchant_id: \"000078\"\n    pin: ZKN0S1\n",
			"missing pin":         "gateway:\n  virtualmerchant:\n    merchant_id: \"000078\"\n    user_id: webpage\n",
		} {
			t.Run(name, func(t *testing.T) {
				path := writeConfig(t, body)
				if _, err := LoadConfig(path, false); err == nil {
					t.Fatal("expected a validation error")
				}
			})
		}
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), false); err == nil {
			t.Fatal("expected an error")
		}
	})
}
