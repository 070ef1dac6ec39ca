// Demo walkthrough against the Virtual Merchant demo environment: submit a
// sale, void it, then list the recent settled batches. Requires test-mode
// credentials in the config file.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"virtualmerchant-gateway/internal/config"
	"virtualmerchant-gateway/internal/domain/model"
	"virtualmerchant-gateway/internal/infra/logging"
	"virtualmerchant-gateway/internal/infra/metrics"
	"virtualmerchant-gateway/internal/infra/payment"
	"virtualmerchant-gateway/internal/infra/payment/sandbox"
	"virtualmerchant-gateway/internal/infra/web"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "development mode (console logs, unredacted PANs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !cfg.Gateway.VirtualMerchant.TestMode {
		log.Fatalf("refusing to run the demo flow against the live endpoint; set gateway.virtualmerchant.test_mode: true")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	ops := web.NewServer(cfg.Ops.APIKey, logger)
	go func() {
		if err := ops.Start(cfg.Ops.Port); err != nil {
			logger.Warn().Err(err).Msg("ops server stopped")
		}
	}()

	gw, err := payment.NewVirtualMerchantGateway(cfg.Gateway.VirtualMerchant, logger)
	if err != nil {
		log.Fatalf("gateway: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Vary the whole-unit part per run so the demo environment's duplicate
	// check does not trip; the cents stay the simulation encoding.
	base := 100 * (1 + time.Now().Unix()%500)
	amount, err := sandbox.AdjustAmount(base, sandbox.Visa, "APPROVAL")
	if err != nil {
		log.Fatalf("adjust amount: %v", err)
	}

	card, err := model.NewCard("4111111111111111", 12, time.Now().Year()+3, "123")
	if err != nil {
		log.Fatalf("card: %v", err)
	}
	prospect := &model.Prospect{
		Billing: model.Contact{
			FirstName: "bob", LastName: "leponge",
			Email: "bob@leponge.fr", Phone: "0660296818",
			Address1: "42A 2T WTC", City: "New York", State: "New York",
			PostalCode: "3212", Country: "US",
		},
		Shipping: model.Contact{
			FirstName: "George", LastName: "Bush",
			Address1: "42A 2T WTC", City: "New York", State: "New York",
			PostalCode: "3212", Country: "US",
		},
	}

	req, err := model.NewTransactionRequest(amount, "USD")
	if err != nil {
		log.Fatalf("request: %v", err)
	}

	sale, err := gw.Submit(ctx, req, card, prospect)
	if err != nil {
		logger.Fatal().Err(err).Msg("submit failed")
	}
	logger.Info().
		Str("txn_id", sale.TransactionID).
		Str("result", sale.Original["ssl_result_message"]).
		Msg("sale approved")

	voided, err := gw.Void(ctx, sale.TransactionID)
	if err != nil {
		logger.Fatal().Err(err).Msg("void failed")
	}
	logger.Info().Str("txn_id", voided.TransactionID).Msg("sale voided")

	batches, err := gw.SettledBatchList(ctx, time.Now().AddDate(0, 0, -7), time.Time{})
	if err != nil {
		logger.Fatal().Err(err).Msg("batch list failed")
	}
	logger.Info().Int("settled_records", len(batches)).Msg("batch query done")
	for _, b := range batches {
		logger.Debug().Str("txn_id", b.TransactionID()).Str("status", b.Status()).Msg("settled record")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = ops.Shutdown(shutdownCtx)
}
