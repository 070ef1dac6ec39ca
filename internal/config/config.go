// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

// VirtualMerchantConfig holds the per-instance processor credentials. All
// values are opaque strings handed to the processor unchanged; test_mode
// switches the endpoint to the demo environment and makes sandbox amount
// encodings meaningful.
type VirtualMerchantConfig struct {
	MerchantID string        `yaml:"merchant_id"`
	UserID     string        `yaml:"user_id"`
	PIN        string        `yaml:"pin"`
	TestMode   bool          `yaml:"test_mode"`
	Timeout    time.Duration `yaml:"timeout"`
}

type GatewayConfig struct {
	VirtualMerchant VirtualMerchantConfig `yaml:"virtualmerchant"`
}

type OpsConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"` // optional bearer key guarding /metrics
}

type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Log     LogConfig     `yaml:"log"`
	Ops     OpsConfig     `yaml:"ops"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Gateway.VirtualMerchant.Timeout <= 0 {
		cfg.Gateway.VirtualMerchant.Timeout = 15 * time.Second
	}
	if cfg.Ops.Port <= 0 {
		cfg.Ops.Port = 9102
	}

	// Minimal validation
	vm := cfg.Gateway.VirtualMerchant
	if vm.MerchantID == "" {
		return nil, errors.New("gateway.virtualmerchant.merchant_id is required")
	}
	if vm.UserID == "" {
		return nil, errors.New("gateway.virtualmerchant.user_id is required")
	}
	if vm.PIN == "" {
		return nil, errors.New("gateway.virtualmerchant.pin is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
