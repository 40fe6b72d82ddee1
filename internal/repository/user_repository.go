package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// userRow mirrors the users table for sqlx scanning.
type userRow struct {
	ID           int       `db:"id"`
	OpenID       string    `db:"open_id"`
	Name         *string   `db:"name"`
	Email        *string   `db:"email"`
	LoginMethod  *string   `db:"login_method"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	LastSignedIn time.Time `db:"last_signed_in"`
}

func (r userRow) toUser() *User {
	return &User{
		ID:           r.ID,
		OpenID:       r.OpenID,
		Name:         r.Name,
		Email:        r.Email,
		LoginMethod:  r.LoginMethod,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		LastSignedIn: r.LastSignedIn,
	}
}

type sqlxUserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

func (r *sqlxUserRepository) FindByID(ctx context.Context, id int) (*User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in
		FROM users WHERE id = $1
	`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

func (r *sqlxUserRepository) FindByOpenID(ctx context.Context, openID string) (*User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in
		FROM users WHERE open_id = $1
	`, openID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

func (r *sqlxUserRepository) Upsert(ctx context.Context, user *User) error {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO users (open_id, name, email, login_method, last_signed_in)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (open_id)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, users.name),
			email = COALESCE(EXCLUDED.email, users.email),
			login_method = COALESCE(EXCLUDED.login_method, users.login_method),
			last_signed_in = now(),
			updated_at = now()
		RETURNING id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in
	`, user.OpenID, user.Name, user.Email, user.LoginMethod)
	if err != nil {
		return err
	}
	*user = *row.toUser()
	return nil
}
