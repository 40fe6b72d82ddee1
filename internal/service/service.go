package service

import (
	"errors"

	"github.com/leadgrid/leadgrid-backend/internal/config"
	"github.com/leadgrid/leadgrid-backend/internal/db"
	"github.com/leadgrid/leadgrid-backend/internal/repository"
)

var (
	// ErrNotFound covers both a missing lead and a lead owned by someone
	// else, so callers cannot probe for existence across owners.
	ErrNotFound     = errors.New("lead not found or access denied")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidInput = errors.New("invalid input")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth AuthService
	Lead LeadService
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config *config.Config
	Repos  *repository.Repositories
	Redis  *db.RedisDB // optional, nil when REDIS_URL is not set
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Auth: NewAuthService(deps.Config, deps.Repos.UserRepo, deps.Redis),
		Lead: NewLeadService(deps.Repos.LeadRepo),
	}
}
