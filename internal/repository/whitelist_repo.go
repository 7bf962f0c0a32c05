package repo

import (
	"context"

	"github.com/Alubalulu/sales-forecast-app/internal/lib"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type WhitelistRepository interface {
	Exists(ctx context.Context, email string) (bool, error)
	Add(ctx context.Context, email string) error
}

type WhitelistRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewWhitelistRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *WhitelistRepo {
	return &WhitelistRepo{
		db:     db,
		getter: c,
	}
}

func (r *WhitelistRepo) Exists(ctx context.Context, email string) (bool, error) {
	const op = "whitelist_repo.Exists"

	query := `SELECT EXISTS (SELECT 1 FROM whitelist WHERE email = $1)`

	var exists bool
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, lib.Err(op, err)
	}

	return exists, nil
}

func (r *WhitelistRepo) Add(ctx context.Context, email string) error {
	const op = "whitelist_repo.Add"

	query := `INSERT INTO whitelist (email, created_at) VALUES ($1, NOW())`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, email)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if string(pgErr.Code) == uniqueViolationCode {
				return ErrEmailExists
			}
		}
		return lib.Err(op, err)
	}

	return nil
}
