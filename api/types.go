// Package api - Request and response payloads
package api

import (
	"github.com/shopspring/decimal"

	"contractor-quote/core/aggregate"
	"contractor-quote/core/costing"
	"contractor-quote/core/types"
)

// PriceRequest prices a single line item
type PriceRequest struct {
	// Item is the catalog item to price
	Item types.CatalogItem `json:"item"`

	// ItemID loads the item from the catalog store instead;
	// ignored when Item carries an ID
	ItemID string `json:"item_id,omitempty"`

	// Quantity is the requested quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Complexity is a complexity level ID
	Complexity string `json:"complexity,omitempty"`

	// Layers configures multi-pass work
	Layers *costing.LayerPlan `json:"layers,omitempty"`
}

// QuoteRequest prices a list of items into a quote
type QuoteRequest struct {
	// Customer labels the quote (persisted with saved quotes)
	Customer string `json:"customer,omitempty"`

	// Items are the line item requests
	Items []PriceRequest `json:"items"`

	// AdditionalCosts are quote-level contractor costs
	AdditionalCosts []aggregate.AdditionalCost `json:"additional_costs,omitempty"`

	// MinimumProfitPercent is the profit floor; 0 uses the server
	// configuration
	MinimumProfitPercent decimal.Decimal `json:"minimum_profit_percent,omitempty"`
}

// SaveQuoteRequest prices and persists a quote in one call
type SaveQuoteRequest struct {
	QuoteRequest
}

// ErrorBody carries a machine-readable error
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
