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

//go:generate mockgen -source=news_repository.go -destination=mock_news_repository.go -package=repository

type NewsRepository interface {
	// Upsert inserts items keyed by link and returns the id of every
	// item, in input order. Existing rows keep their id and created_at.
	Upsert(ctx context.Context, items []domain.NewsItem) ([]int32, error)
	// Link associates each news id with the user and stock. Associations
	// that already exist are left alone.
	Link(ctx context.Context, userID, stockID int32, newsIDs []int32) (int64, error)
}

type newsRepositoryHandler struct {
	DB *sql.DB
}

func NewNewsRepository(db *sql.DB) NewsRepository {
	return newsRepositoryHandler{
		DB: db,
	}
}

func (h newsRepositoryHandler) Upsert(ctx context.Context, items []domain.NewsItem) ([]int32, error) {
	if len(items) == 0 {
		return nil, nil
	}

	// one row per link, last occurrence wins
	byLink := map[string]model.News{}
	seen := util.NewSet[string]()
	links := []string{}
	for _, item := range items {
		if seen.Add(item.Link) {
			links = append(links, item.Link)
		}
		byLink[item.Link] = model.News{
			Title:          item.Title,
			Link:           item.Link,
			PubDate:        item.PublishedAt,
			Source:         item.Source,
			SentimentScore: item.SentimentScore,
		}
	}
	rows := make([]model.News, len(links))
	linkExprs := make([]postgres.Expression, len(links))
	for i, link := range links {
		rows[i] = byLink[link]
		linkExprs[i] = postgres.String(link)
	}

	insert := upsertNewsStmt(rows)
	t := table.News
	query := t.SELECT(t.ID, t.Link).
		WHERE(t.Link.IN(linkExprs...))

	result := []model.News{}
	err := db.WithTx(ctx, h.DB, func(tx *sql.Tx) error {
		if _, err := insert.ExecContext(ctx, tx); err != nil {
			return fmt.Errorf("failed to upsert news: %w", err)
		}
		if err := query.QueryContext(ctx, tx, &result); err != nil {
			return fmt.Errorf("failed to resolve news ids: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	idByLink := map[string]int32{}
	for _, r := range result {
		idByLink[r.Link] = r.ID
	}
	out := make([]int32, len(items))
	for i, item := range items {
		id, ok := idByLink[item.Link]
		if !ok {
			return nil, fmt.Errorf("news id not found for link %s", item.Link)
		}
		out[i] = id
	}

	return out, nil
}

func (h newsRepositoryHandler) Link(ctx context.Context, userID, stockID int32, newsIDs []int32) (int64, error) {
	if len(newsIDs) == 0 {
		return 0, nil
	}

	rows := make([]model.UserStockNews, len(newsIDs))
	for i, id := range newsIDs {
		rows[i] = model.UserStockNews{
			UserID:  userID,
			StockID: stockID,
			NewsID:  id,
		}
	}

	stmt := linkNewsStmt(rows)

	var inserted int64
	err := db.WithTx(ctx, h.DB, func(tx *sql.Tx) error {
		res, err := stmt.ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to link news to user_id %d stock_id %d: %w", userID, stockID, err)
		}
		inserted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// created_at is left to its default on insert and never updated
func upsertNewsStmt(rows []model.News) postgres.InsertStatement {
	t := table.News
	return t.INSERT(t.Title, t.Link, t.PubDate, t.Source, t.SentimentScore).
		MODELS(rows).
		ON_CONFLICT(t.Link).DO_UPDATE(
		postgres.SET(
			t.Title.SET(t.EXCLUDED.Title),
			t.PubDate.SET(t.EXCLUDED.PubDate),
			t.Source.SET(t.EXCLUDED.Source),
			t.SentimentScore.SET(t.EXCLUDED.SentimentScore),
		),
	)
}

func linkNewsStmt(rows []model.UserStockNews) postgres.InsertStatement {
	t := table.UserStockNews
	return t.INSERT(t.AllColumns).
		MODELS(rows).
		ON_CONFLICT(t.UserID, t.StockID, t.NewsID).DO_NOTHING()
}
