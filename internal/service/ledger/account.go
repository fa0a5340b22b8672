package ledger

import (
	"crash_backend/internal/model"
	"context"
	"fmt"
)

// GetAccount Возвращает счет, при первом обращении создает его
func (s *serv) GetAccount(ctx context.Context, userID int64) (*model.Account, error) {
	acc, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get account %d: %w", userID, err)
	}
	return acc, nil
}

func (s *serv) Balance(ctx context.Context, userID int64) (int64, error) {
	acc, err := s.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

func (s *serv) Stats(ctx context.Context, userID int64) (model.Stats, error) {
	acc, err := s.GetAccount(ctx, userID)
	if err != nil {
		return model.Stats{}, err
	}
	return acc.Stats(), nil
}

func (s *serv) AccountsCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
