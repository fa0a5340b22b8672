package history_repo

import (
	"crash_backend/internal/repository"
	"context"
	"slices"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "game_history"
	colID         = "id"
	colCrashValue = "crash_value"
)

type repo struct {
	db        trmpgx.Tr
	getter    *trmpgx.CtxGetter
	txManager trm.Manager
	capacity  int
}

// NewPGRepository История крашей в таблице game_history, хранится не больше capacity строк
func NewPGRepository(db *pgxpool.Pool, txManager trm.Manager, capacity int) repository.HistoryRepository {
	return newRepo(db, txManager, capacity)
}

func newRepo(db trmpgx.Tr, txManager trm.Manager, capacity int) *repo {
	return &repo{
		db:        db,
		getter:    trmpgx.DefaultCtxGetter,
		txManager: txManager,
		capacity:  capacity,
	}
}

func insertQuery(crashPoint float64) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colCrashValue).
		Values(crashPoint).
		PlaceholderFormat(sq.Dollar)
}

// evictQuery - удаляет всё, кроме capacity последних строк
func evictQuery(capacity int) sq.DeleteBuilder {
	keep := sq.Select(colID).
		From(table).
		OrderBy(colID + " DESC").
		Limit(uint64(capacity))
	return sq.Delete(table).
		Where(sq.Expr(colID+" NOT IN (?)", keep)).
		PlaceholderFormat(sq.Dollar)
}

func recentQuery(n int) sq.SelectBuilder {
	return sq.Select(colCrashValue).
		From(table).
		OrderBy(colID + " DESC").
		Limit(uint64(n)).
		PlaceholderFormat(sq.Dollar)
}

// Record - вставка точки краша и удаление строк сверх ёмкости одной транзакцией
func (r *repo) Record(ctx context.Context, crashPoint float64) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		tr := r.getter.DefaultTrOrDB(txCtx, r.db)

		sqlStr, args, err := insertQuery(crashPoint).ToSql()
		if err != nil {
			return err
		}
		if _, err = tr.Exec(txCtx, sqlStr, args...); err != nil {
			return err
		}

		sqlStr, args, err = evictQuery(r.capacity).ToSql()
		if err != nil {
			return err
		}
		_, err = tr.Exec(txCtx, sqlStr, args...)
		return err
	})
}

// Recent - последние n точек краша, от старой к новой
func (r *repo) Recent(ctx context.Context, n int) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}

	sqlStr, args, err := recentQuery(n).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]float64, 0, n)
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(out)
	return out, nil
}
