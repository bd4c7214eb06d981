// Package api - Endpoint handlers
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"contractor-quote/core/quote"
	"contractor-quote/core/types"
	"contractor-quote/internal/config"
	apperrors "contractor-quote/internal/errors"
	"contractor-quote/internal/logging"
)

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	ir, err := s.itemRequest(r, req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	li, err := s.pricer.PriceItem(ir)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, li)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	result, err := s.priceQuote(r, req)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) priceQuote(r *http.Request, req QuoteRequest) (*quote.Result, error) {
	engineReq := quote.Request{
		AdditionalCosts:      req.AdditionalCosts,
		MinimumProfitPercent: req.MinimumProfitPercent,
	}
	if engineReq.MinimumProfitPercent.IsZero() {
		engineReq.MinimumProfitPercent = config.Get().Pricing.MinimumProfitPercent
	}

	for _, pr := range req.Items {
		ir, err := s.itemRequest(r, pr)
		if err != nil {
			return nil, err
		}
		engineReq.Items = append(engineReq.Items, ir)
	}

	result := s.pricer.PriceQuote(engineReq)
	for _, warning := range result.Warnings {
		logging.Warn("line item priced as pending", zap.String("quote_id", result.ID), zap.String("reason", warning))
	}
	return result, nil
}

// itemRequest resolves the catalog item for a price request, loading
// it from the store when only an ID was supplied.
func (s *Server) itemRequest(r *http.Request, req PriceRequest) (quote.ItemRequest, error) {
	ir := quote.ItemRequest{
		Item:       req.Item,
		Quantity:   req.Quantity,
		Complexity: req.Complexity,
		Layers:     req.Layers,
	}

	// Config-level purchase rounding forces whole-unit buying for
	// layered requests that did not ask for it themselves.
	if ir.Layers != nil && config.Get().Pricing.RoundUpPurchaseUnits {
		ir.Layers.RoundUpPurchase = true
	}

	if ir.Item.ID == "" && req.ItemID != "" {
		if s.store == nil {
			return ir, apperrors.New(apperrors.TypeStorage, "no catalog store configured")
		}
		item, err := s.store.GetItem(r.Context(), req.ItemID)
		if err != nil {
			return ir, err
		}
		ir.Item = *item
	}

	return ir, nil
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	items, err := s.store.ListItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func (s *Server) handleSaveItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	var item types.CatalogItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	if id := chi.URLParam(r, "id"); id != "" {
		item.ID = id
	}
	if item.ID == "" {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "item id is required")
		return
	}
	if item.CategoryID == "" {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "category_id is required")
		return
	}

	if err := s.store.SaveItem(r.Context(), &item); err != nil {
		s.writeAppError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	item, err := s.store.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	if err := s.store.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveQuote(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	var req SaveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	result, err := s.priceQuote(r, req.QuoteRequest)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	if err := s.store.SaveQuote(r.Context(), req.Customer, result); err != nil {
		s.writeAppError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	quotes, err := s.store.ListQuotes(r.Context())
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"quotes": quotes,
		"count":  len(quotes),
	})
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	q, err := s.store.GetQuote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeAppError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, q)
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "NO_STORE", "database not connected")
		return false
	}
	return true
}

func (s *Server) writeAppError(w http.ResponseWriter, err error) {
	if e, ok := err.(*apperrors.Error); ok {
		status := http.StatusInternalServerError
		switch e.Type {
		case apperrors.TypeInput, apperrors.TypeTier, apperrors.TypeCosting:
			status = http.StatusBadRequest
		case apperrors.TypeNotFound:
			status = http.StatusNotFound
		case apperrors.TypeStorage:
			status = http.StatusServiceUnavailable
		}
		s.writeError(w, status, string(e.Type), e.Message)
		return
	}
	s.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
