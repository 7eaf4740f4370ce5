package repository

import (
	"context"
	"database/sql"
	"fmt"

	db "moneygoup/internal/db/query"
	"moneygoup/internal/db/models/postgres/public/model"
	"moneygoup/internal/db/models/postgres/public/table"
	"moneygoup/internal/domain"
	"moneygoup/internal/util"

	"github.com/go-jet/jet/v2/postgres"
)

//go:generate mockgen -source=daily_price_repository.go -destination=mock_daily_price_repository.go -package=repository

// 13 columns per row keeps each statement well below the
// 65535 bind parameter limit
const upsertChunkSize = 500

type DailyPriceRepository interface {
	// Upsert writes records for the stock in one transaction. Rows that
	// already exist for (stock, date) have every other column overwritten.
	Upsert(ctx context.Context, stockID int32, records []domain.DailyPrice) (int64, error)
}

type dailyPriceRepositoryHandler struct {
	DB *sql.DB
}

func NewDailyPriceRepository(db *sql.DB) DailyPriceRepository {
	return dailyPriceRepositoryHandler{
		DB: db,
	}
}

func (h dailyPriceRepositoryHandler) Upsert(ctx context.Context, stockID int32, records []domain.DailyPrice) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	rows := make([]model.StockDailyPrice, len(records))
	for i, r := range records {
		rows[i] = dailyPriceToModel(stockID, r)
	}

	var total int64
	err := db.WithTx(ctx, h.DB, func(tx *sql.Tx) error {
		for start := 0; start < len(rows); start += upsertChunkSize {
			end := min(start+upsertChunkSize, len(rows))
			res, err := upsertDailyPriceStmt(rows[start:end]).ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("failed to upsert daily prices for stock_id %d: %w", stockID, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func upsertDailyPriceStmt(rows []model.StockDailyPrice) postgres.InsertStatement {
	t := table.StockDailyPrice
	return t.INSERT(t.AllColumns).
		MODELS(rows).
		ON_CONFLICT(t.StockID, t.Date).DO_UPDATE(
		postgres.SET(
			t.Open.SET(t.EXCLUDED.Open),
			t.High.SET(t.EXCLUDED.High),
			t.Low.SET(t.EXCLUDED.Low),
			t.Close.SET(t.EXCLUDED.Close),
			t.Volume.SET(t.EXCLUDED.Volume),
			t.AdjOpen.SET(t.EXCLUDED.AdjOpen),
			t.AdjHigh.SET(t.EXCLUDED.AdjHigh),
			t.AdjLow.SET(t.EXCLUDED.AdjLow),
			t.AdjClose.SET(t.EXCLUDED.AdjClose),
			t.AdjVolume.SET(t.EXCLUDED.AdjVolume),
			t.DailyChange.SET(t.EXCLUDED.DailyChange),
		),
	)
}

func dailyPriceToModel(stockID int32, r domain.DailyPrice) model.StockDailyPrice {
	return model.StockDailyPrice{
		StockID:     stockID,
		Date:        r.Date,
		Open:        r.Open.Ptr(),
		High:        r.High.Ptr(),
		Low:         r.Low.Ptr(),
		Close:       r.Close.Ptr(),
		Volume:      util.VolumePtr(r.Volume),
		AdjOpen:     r.AdjOpen.Ptr(),
		AdjHigh:     r.AdjHigh.Ptr(),
		AdjLow:      r.AdjLow.Ptr(),
		AdjClose:    r.AdjClose.Ptr(),
		AdjVolume:   util.VolumePtr(r.AdjVolume),
		DailyChange: r.DailyChange,
	}
}
