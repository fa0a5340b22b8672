// Package memtx - менеджер транзакций для хранилищ в памяти.
// Репозитории в памяти атомарны на уровне отдельной операции, поэтому
// транзакция сводится к вызову функции с тем же контекстом.
package memtx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type manager struct{}

func NewManager() trm.Manager {
	return manager{}
}

func (manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (manager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
