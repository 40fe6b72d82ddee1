package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	UserRepo UserRepository
	LeadRepo LeadRepository
}

// NewRepositories wires the Postgres-backed repositories: leads on pgxpool,
// users on sqlx over the stdlib driver.
func NewRepositories(pool *pgxpool.Pool, db *sqlx.DB) *Repositories {
	return &Repositories{
		UserRepo: NewUserRepository(db),
		LeadRepo: NewLeadRepository(pool),
	}
}

// NewMemoryRepositories wires the in-memory fallback. Both repositories
// share one store so lead ownership lines up with the users created here.
func NewMemoryRepositories(seedLeads func(userID int) []*Lead) *Repositories {
	store := NewMemoryStore(seedLeads)
	return &Repositories{
		UserRepo: NewMemoryUserRepository(store),
		LeadRepo: NewMemoryLeadRepository(store),
	}
}
