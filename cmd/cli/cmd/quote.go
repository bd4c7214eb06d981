// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"contractor-quote/core/aggregate"
	"contractor-quote/core/output"
	coreQuote "contractor-quote/core/quote"
	"contractor-quote/internal/config"
	"contractor-quote/internal/logging"
)

var (
	outputFormat string
	showDetails  bool
	minProfit    string
)

// quoteFile is the on-disk shape of a quote request
type quoteFile struct {
	Items                []coreQuote.ItemRequest    `json:"items"`
	AdditionalCosts      []aggregate.AdditionalCost `json:"additional_costs,omitempty"`
	MinimumProfitPercent *decimal.Decimal           `json:"minimum_profit_percent,omitempty"`
}

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [request.json]",
	Short: "Price a quote request file",
	Long: `Price every line item in a quote request file, aggregate the
per-category breakdown, and check the result against the configured
minimum profit floor.

Examples:
  contractor-quote quote request.json
  contractor-quote quote --format json request.json
  contractor-quote quote --min-profit 25 request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show the cost breakdown")
	quoteCmd.Flags().StringVar(&minProfit, "min-profit", "", "minimum profit percent override")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read quote request: %w", err)
	}

	var file quoteFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse quote request: %w", err)
	}

	req := coreQuote.Request{
		Items:                file.Items,
		AdditionalCosts:      file.AdditionalCosts,
		MinimumProfitPercent: cfg.Pricing.MinimumProfitPercent,
	}
	if file.MinimumProfitPercent != nil {
		req.MinimumProfitPercent = *file.MinimumProfitPercent
	}
	if minProfit != "" {
		floor, err := decimal.NewFromString(minProfit)
		if err != nil {
			return fmt.Errorf("parse --min-profit: %w", err)
		}
		req.MinimumProfitPercent = floor
	}

	// Config-level purchase rounding forces whole-unit buying for any
	// layered item that did not request it itself.
	if cfg.Pricing.RoundUpPurchaseUnits {
		for _, ir := range req.Items {
			if ir.Layers != nil {
				ir.Layers.RoundUpPurchase = true
			}
		}
	}

	logging.Info("pricing quote", zap.Int("items", len(req.Items)))

	pricer := coreQuote.NewStandardPricer().WithDefaultProfit(cfg.Pricing.DefaultProfitPercent)
	result := pricer.PriceQuote(req)

	for _, warning := range result.Warnings {
		logging.Warn("line item priced as pending", zap.String("reason", warning))
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format, output.Options{
		Currency:    cfg.Pricing.Currency.String(),
		ShowDetails: showDetails && cfg.Output.ShowDetails,
	})
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, result)
}
