package handlers

import (
	"github.com/leadgrid/leadgrid-backend/internal/models"
	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/leadgrid/leadgrid-backend/internal/service"
)

// ============================================
// Handlers Container
// ============================================

type Handlers struct {
	Auth *AuthHandler
	Lead *LeadHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth: NewAuthHandler(services.Auth),
		Lead: NewLeadHandler(services.Lead),
	}
}

func toUserResponse(u *repository.User) models.UserResponse {
	return models.UserResponse{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastSignedIn: u.LastSignedIn,
	}
}

func toLeadResponse(l *repository.Lead) models.LeadResponse {
	return models.LeadResponse{
		ID:               l.ID,
		Name:             l.Name,
		FirstName:        l.FirstName,
		LastName:         l.LastName,
		Title:            l.Title,
		Company:          l.Company,
		CompanyLogo:      l.CompanyLogo,
		Avatar:           l.Avatar,
		Status:           l.Status,
		Confidence:       l.Confidence,
		Email:            l.Email,
		Phone:            l.Phone,
		Linkedin:         l.Linkedin,
		Location:         l.Location,
		TechStack:        l.TechStack,
		AIInsight:        l.AIInsight,
		MutualConnection: l.MutualConnection,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
		UserID:           l.UserID,
	}
}
