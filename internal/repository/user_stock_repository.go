package repository

import (
	"context"
	"database/sql"
	"fmt"

	"moneygoup/internal/db/models/postgres/public/model"
	"moneygoup/internal/db/models/postgres/public/table"
	"moneygoup/internal/domain"
)

//go:generate mockgen -source=user_stock_repository.go -destination=mock_user_stock_repository.go -package=repository

// UserStockRepository reads ownership links. Links are created by the
// app; the sync never writes them.
type UserStockRepository interface {
	ListOwnersByStock(ctx context.Context) (domain.OwnersByStock, error)
}

type userStockRepositoryHandler struct {
	DB *sql.DB
}

func NewUserStockRepository(db *sql.DB) UserStockRepository {
	return userStockRepositoryHandler{
		DB: db,
	}
}

func (h userStockRepositoryHandler) ListOwnersByStock(ctx context.Context) (domain.OwnersByStock, error) {
	t := table.UserStocks
	query := t.SELECT(t.UserID, t.StockID).
		ORDER_BY(t.StockID.ASC(), t.UserID.ASC())

	result := []model.UserStocks{}
	err := query.QueryContext(ctx, h.DB, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock owners: %w", err)
	}

	out := domain.OwnersByStock{}
	for _, r := range result {
		out[r.StockID] = append(out[r.StockID], r.UserID)
	}
	return out, nil
}
