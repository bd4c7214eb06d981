// Package db - Catalog and quote store
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"contractor-quote/core/quote"
	"contractor-quote/core/types"
	apperrors "contractor-quote/internal/errors"
)

// Store provides CRUD over catalog items and saved quotes
type Store struct {
	conn *sql.DB
}

// NewStore wraps an open database connection
func NewStore(conn *sql.DB) *Store {
	return &Store{conn: conn}
}

// Close closes the underlying connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// SaveItem inserts or replaces a catalog item
func (s *Store) SaveItem(ctx context.Context, item *types.CatalogItem) error {
	tiers, err := json.Marshal(item.PriceTiers)
	if err != nil {
		return apperrors.Storage("encode price tiers", err)
	}
	layers, err := json.Marshal(item.Layers)
	if err != nil {
		return apperrors.Storage("encode layers", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO catalog_items (
			id, category_id, name, unit,
			material_cost_per_unit, labor_costing_mode, daily_output,
			labor_cost_per_day, labor_cost_per_unit, additional_cost_per_unit,
			fixed_cost, wastage_percent, desired_profit_percent, coverage,
			price_tiers, layers, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT (id) DO UPDATE SET
			category_id = excluded.category_id,
			name = excluded.name,
			unit = excluded.unit,
			material_cost_per_unit = excluded.material_cost_per_unit,
			labor_costing_mode = excluded.labor_costing_mode,
			daily_output = excluded.daily_output,
			labor_cost_per_day = excluded.labor_cost_per_day,
			labor_cost_per_unit = excluded.labor_cost_per_unit,
			additional_cost_per_unit = excluded.additional_cost_per_unit,
			fixed_cost = excluded.fixed_cost,
			wastage_percent = excluded.wastage_percent,
			desired_profit_percent = excluded.desired_profit_percent,
			coverage = excluded.coverage,
			price_tiers = excluded.price_tiers,
			layers = excluded.layers,
			updated_at = datetime('now')`,
		item.ID, item.CategoryID, item.Name, item.Unit,
		item.MaterialCostPerUnit.String(), string(item.LaborCostingMode), item.DailyOutput.String(),
		item.LaborCostPerDay.String(), item.LaborCostPerUnit.String(), item.AdditionalCostPerUnit.String(),
		item.FixedCost.String(), item.WastagePercent.String(), item.DesiredProfitPercent.String(), item.Coverage.String(),
		string(tiers), string(layers),
	)
	if err != nil {
		return apperrors.Storage("save catalog item", err)
	}
	return nil
}

// GetItem loads one catalog item by ID
func (s *Store) GetItem(ctx context.Context, id string) (*types.CatalogItem, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, category_id, name, unit,
			material_cost_per_unit, labor_costing_mode, daily_output,
			labor_cost_per_day, labor_cost_per_unit, additional_cost_per_unit,
			fixed_cost, wastage_percent, desired_profit_percent, coverage,
			price_tiers, layers
		FROM catalog_items WHERE id = ?`, id)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("catalog item", id)
	}
	if err != nil {
		return nil, apperrors.Storage("load catalog item", err)
	}
	return item, nil
}

// ListItems loads catalog items, optionally filtered by category
func (s *Store) ListItems(ctx context.Context, categoryID string) ([]*types.CatalogItem, error) {
	query := `
		SELECT id, category_id, name, unit,
			material_cost_per_unit, labor_costing_mode, daily_output,
			labor_cost_per_day, labor_cost_per_unit, additional_cost_per_unit,
			fixed_cost, wastage_percent, desired_profit_percent, coverage,
			price_tiers, layers
		FROM catalog_items`
	args := []interface{}{}
	if categoryID != "" {
		query += ` WHERE category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY category_id, name`

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage("list catalog items", err)
	}
	defer rows.Close()

	var items []*types.CatalogItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.Storage("scan catalog item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("list catalog items", err)
	}
	return items, nil
}

// DeleteItem removes a catalog item
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM catalog_items WHERE id = ?`, id)
	if err != nil {
		return apperrors.Storage("delete catalog item", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.NotFound("catalog item", id)
	}
	return nil
}

// StoredQuote is a saved pricing result with its metadata
type StoredQuote struct {
	ID         string          `json:"id"`
	Customer   string          `json:"customer,omitempty"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	Result     *quote.Result   `json:"result,omitempty"`
}

// SaveQuote stores a finished pricing result
func (s *Store) SaveQuote(ctx context.Context, customer string, result *quote.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return apperrors.Storage("encode quote result", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO quotes (id, customer, total_cost, total_price, result)
		VALUES (?, ?, ?, ?, ?)`,
		result.ID, customer, result.TotalCost.String(), result.TotalPrice.String(), string(payload),
	)
	if err != nil {
		return apperrors.Storage("save quote", err)
	}
	return nil
}

// GetQuote loads one saved quote with its full result
func (s *Store) GetQuote(ctx context.Context, id string) (*StoredQuote, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, customer, total_cost, total_price, result, created_at
		FROM quotes WHERE id = ?`, id)

	var (
		q                      StoredQuote
		cost, price, payload   string
		createdAt              string
	)
	if err := row.Scan(&q.ID, &q.Customer, &cost, &price, &payload, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("quote", id)
		}
		return nil, apperrors.Storage("load quote", err)
	}

	var err error
	if q.TotalCost, err = decimal.NewFromString(cost); err != nil {
		return nil, apperrors.Storage("decode quote total cost", err)
	}
	if q.TotalPrice, err = decimal.NewFromString(price); err != nil {
		return nil, apperrors.Storage("decode quote total price", err)
	}
	q.Result = &quote.Result{}
	if err := json.Unmarshal([]byte(payload), q.Result); err != nil {
		return nil, apperrors.Storage("decode quote result", err)
	}
	q.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)

	return &q, nil
}

// ListQuotes lists saved quote summaries, newest first. The full
// result payload is not loaded.
func (s *Store) ListQuotes(ctx context.Context) ([]*StoredQuote, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, customer, total_cost, total_price, created_at
		FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperrors.Storage("list quotes", err)
	}
	defer rows.Close()

	var quotes []*StoredQuote
	for rows.Next() {
		var (
			q           StoredQuote
			cost, price string
			createdAt   string
		)
		if err := rows.Scan(&q.ID, &q.Customer, &cost, &price, &createdAt); err != nil {
			return nil, apperrors.Storage("scan quote", err)
		}
		if q.TotalCost, err = decimal.NewFromString(cost); err != nil {
			return nil, apperrors.Storage("decode quote total cost", err)
		}
		if q.TotalPrice, err = decimal.NewFromString(price); err != nil {
			return nil, apperrors.Storage("decode quote total price", err)
		}
		q.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		quotes = append(quotes, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("list quotes", err)
	}
	return quotes, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*types.CatalogItem, error) {
	var (
		item                                                types.CatalogItem
		mode                                                string
		material, daily, laborDay, laborUnit, additional    string
		fixed, wastage, profit, coverage                    string
		tiers, layers                                       sql.NullString
	)

	err := row.Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.Unit,
		&material, &mode, &daily,
		&laborDay, &laborUnit, &additional,
		&fixed, &wastage, &profit, &coverage,
		&tiers, &layers,
	)
	if err != nil {
		return nil, err
	}

	item.LaborCostingMode = types.LaborCostingMode(mode)
	fields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&item.MaterialCostPerUnit, material},
		{&item.DailyOutput, daily},
		{&item.LaborCostPerDay, laborDay},
		{&item.LaborCostPerUnit, laborUnit},
		{&item.AdditionalCostPerUnit, additional},
		{&item.FixedCost, fixed},
		{&item.WastagePercent, wastage},
		{&item.DesiredProfitPercent, profit},
		{&item.Coverage, coverage},
	}
	for _, f := range fields {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return nil, err
		}
	}

	if tiers.Valid && tiers.String != "" {
		if err := json.Unmarshal([]byte(tiers.String), &item.PriceTiers); err != nil {
			return nil, err
		}
	}
	if layers.Valid && layers.String != "" {
		if err := json.Unmarshal([]byte(layers.String), &item.Layers); err != nil {
			return nil, err
		}
	}

	return &item, nil
}
