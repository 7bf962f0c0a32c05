package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Alubalulu/sales-forecast-app/internal/lib"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	SetRole(ctx context.Context, email string, role models.Role) error
	SetManager(ctx context.Context, email, managerEmail string) error
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	const op = "user_repo.GetByID"

	query := `
		SELECT id, google_id, email, display_name, role, manager_id, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	const op = "user_repo.GetByGoogleID"

	query := `
		SELECT id, google_id, email, display_name, role, manager_id, created_at
		FROM users
		WHERE google_id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, googleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

// Create inserts a user row for a first-time login. A concurrent insert for
// the same google_id loses the conflict and gets ErrNotFound; the caller
// re-fetches the winning row instead of failing the sign-in.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (google_id, email, display_name, role, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (google_id) DO NOTHING
		RETURNING id, google_id, email, display_name, role, manager_id, created_at;
	`

	var created models.User
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &created, query, user.GoogleID, user.Email, user.DisplayName, user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *UserRepo) SetRole(ctx context.Context, email string, role models.Role) error {
	const op = "user_repo.SetRole"

	query := `UPDATE users SET role = $1 WHERE email = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, role, email)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *UserRepo) SetManager(ctx context.Context, email, managerEmail string) error {
	const op = "user_repo.SetManager"

	query := `
		UPDATE users
		SET manager_id = (SELECT id FROM users WHERE email = $1)
		WHERE email = $2;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, managerEmail, email)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
