package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	Upsert(ctx context.Context, record any, conflict []string, update []string) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetWhere(ctx context.Context, conditions map[string]any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	UpdateWhere(ctx context.Context, model any, conditions map[string]any, values map[string]any) error
}
