package account_repo

import (
	"crash_backend/internal/model"
	"crash_backend/internal/repository"
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "accounts"
	colUserID       = "user_id"
	colBalance      = "balance"
	colTotalBets    = "total_bets"
	colTotalWins    = "total_wins"
	colTotalWagered = "total_bets_amount"
	colTotalWon     = "total_wins_amount"
	colBestMult     = "best_multiplier"
	colUpdatedAt    = "updated_at"
)

type repo struct {
	db              trmpgx.Tr
	getter          *trmpgx.CtxGetter
	startingBalance int64
}

// NewPGRepository Счета в PostgreSQL.
// Запросы выполняются в транзакции из контекста, если она открыта trm-менеджером.
func NewPGRepository(db *pgxpool.Pool, startingBalance int64) repository.AccountRepository {
	return newRepo(db, startingBalance)
}

func newRepo(db trmpgx.Tr, startingBalance int64) *repo {
	return &repo{
		db:              db,
		getter:          trmpgx.DefaultCtxGetter,
		startingBalance: startingBalance,
	}
}

func ensureQuery(userID, startingBalance int64) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colUserID, colBalance).
		Values(userID, startingBalance).
		Suffix("ON CONFLICT (" + colUserID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)
}

func selectQuery(userID int64) sq.SelectBuilder {
	return sq.Select(colUserID, colBalance, colTotalBets, colTotalWins, colTotalWagered, colTotalWon, colBestMult).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)
}

// debitQuery - UPDATE срабатывает только при balance >= amount
func debitQuery(userID, amount int64) sq.UpdateBuilder {
	return sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" - ?", amount)).
		Set(colTotalBets, sq.Expr(colTotalBets+" + 1")).
		Set(colTotalWagered, sq.Expr(colTotalWagered+" + ?", amount)).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colUserID: userID}).
		Where(sq.GtOrEq{colBalance: amount}).
		PlaceholderFormat(sq.Dollar)
}

func creditQuery(userID, amount int64) sq.UpdateBuilder {
	return sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", amount)).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)
}

func recordWinQuery(userID, payout int64, multiplier float64) sq.UpdateBuilder {
	return sq.Update(table).
		Set(colTotalWins, sq.Expr(colTotalWins+" + 1")).
		Set(colTotalWon, sq.Expr(colTotalWon+" + ?", payout)).
		Set(colBestMult, sq.Expr("GREATEST("+colBestMult+", ?)", multiplier)).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)
}

// ensure - создает строку счета, если её ещё нет
func (r *repo) ensure(ctx context.Context, userID int64) error {
	sqlStr, args, err := ensureQuery(userID, r.startingBalance).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).Exec(ctx, sqlStr, args...)
	return err
}

// GetOrCreate - возвращает счет пользователя, создавая его при первом обращении
func (r *repo) GetOrCreate(ctx context.Context, userID int64) (*model.Account, error) {
	if err := r.ensure(ctx, userID); err != nil {
		return nil, err
	}

	sqlStr, args, err := selectQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	var acc model.Account
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).
		Scan(&acc.UserID, &acc.Balance, &acc.TotalBets, &acc.TotalWins, &acc.TotalWagered, &acc.TotalWon, &acc.BestMultiplier)
	if err != nil {
		return nil, err
	}

	return &acc, nil
}

// Debit - условное списание. Возвращает false, если денег не хватило
func (r *repo) Debit(ctx context.Context, userID int64, amount int64) (bool, error) {
	if err := r.ensure(ctx, userID); err != nil {
		return false, err
	}

	sqlStr, args, err := debitQuery(userID, amount).ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() == 1, nil
}

// Credit - начисление на баланс
func (r *repo) Credit(ctx context.Context, userID int64, amount int64) error {
	if err := r.ensure(ctx, userID); err != nil {
		return err
	}

	sqlStr, args, err := creditQuery(userID, amount).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).Exec(ctx, sqlStr, args...)
	return err
}

// RecordWin - счетчики побед и лучший множитель, баланс не меняет
func (r *repo) RecordWin(ctx context.Context, userID int64, payout int64, multiplier float64) error {
	if err := r.ensure(ctx, userID); err != nil {
		return err
	}

	sqlStr, args, err := recordWinQuery(userID, payout, multiplier).ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).Exec(ctx, sqlStr, args...)
	return err
}

// Count - количество заведенных счетов
func (r *repo) Count(ctx context.Context) (int, error) {
	sqlStr, args, err := sq.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.getter.DefaultTrOrDB(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
