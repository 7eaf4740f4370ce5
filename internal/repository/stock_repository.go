package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	moneygoup_errors "moneygoup/internal"
	db "moneygoup/internal/db/query"
	"moneygoup/internal/db/models/postgres/public/model"
	"moneygoup/internal/db/models/postgres/public/table"
	"moneygoup/internal/domain"
	"moneygoup/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=stock_repository.go -destination=mock_stock_repository.go -package=repository

type StockRepository interface {
	List(ctx context.Context) ([]domain.Stock, error)
	// UpdateLatestPrice overwrites the stored price of an existing stock
	UpdateLatestPrice(ctx context.Context, stockID int32, price decimal.Decimal) error
}

type stockRepositoryHandler struct {
	DB *sql.DB
}

func NewStockRepository(db *sql.DB) StockRepository {
	return stockRepositoryHandler{
		DB: db,
	}
}

func (h stockRepositoryHandler) List(ctx context.Context) ([]domain.Stock, error) {
	t := table.Stocks
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.ID.ASC())

	result := []model.Stocks{}
	err := query.QueryContext(ctx, h.DB, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	out := make([]domain.Stock, len(result))
	for i, s := range result {
		out[i] = stockFromModel(s)
	}
	return out, nil
}

func (h stockRepositoryHandler) UpdateLatestPrice(ctx context.Context, stockID int32, price decimal.Decimal) error {
	t := table.Stocks
	query := t.UPDATE(t.Price).
		SET(postgres.String(price.String())).
		WHERE(t.ID.EQ(postgres.Int(int64(stockID))))

	return db.WithTx(ctx, h.DB, func(tx *sql.Tx) error {
		res, err := query.ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to update price for stock_id %d: %w", stockID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return moneygoup_errors.ErrStockNotFound{StockID: stockID}
		}
		return nil
	})
}

func stockFromModel(m model.Stocks) domain.Stock {
	s := domain.Stock{
		StockID:     m.ID,
		Symbol:      m.Symbol,
		CompanyName: util.StringValue(m.CompanyName),
	}
	if m.Price != nil {
		price, err := decimal.NewFromString(*m.Price)
		if err != nil {
			log.Printf("[WARN] ignoring unparsable price %q for %s", *m.Price, m.Symbol)
		} else {
			s.Price = &price
		}
	}
	return s
}
