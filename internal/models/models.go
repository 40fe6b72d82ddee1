package models

import "time"

// ============================================
// Auth DTOs
// ============================================

type CallbackRequest struct {
	Code string `json:"code" binding:"required"`
}

type UserResponse struct {
	ID           int       `json:"id"`
	OpenID       string    `json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"loginMethod"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// ============================================
// Lead DTOs
// ============================================

type LeadResponse struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	FirstName        *string   `json:"firstName"`
	LastName         *string   `json:"lastName"`
	Title            *string   `json:"title"`
	Company          string    `json:"company"`
	CompanyLogo      *string   `json:"companyLogo"`
	Avatar           *string   `json:"avatar"`
	Status           string    `json:"status"`
	Confidence       int       `json:"confidence"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	Linkedin         *string   `json:"linkedin"`
	Location         *string   `json:"location"`
	TechStack        []string  `json:"techStack"`
	AIInsight        *string   `json:"aiInsight"`
	MutualConnection *string   `json:"mutualConnection"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	UserID           int       `json:"userId"`
}

// CreateLeadRequest carries every client-settable field. Owner, id and
// timestamps are always server-assigned.
type CreateLeadRequest struct {
	Name             string   `json:"name" binding:"required"`
	FirstName        *string  `json:"firstName"`
	LastName         *string  `json:"lastName"`
	Title            *string  `json:"title"`
	Company          string   `json:"company" binding:"required"`
	CompanyLogo      *string  `json:"companyLogo"`
	Avatar           *string  `json:"avatar"`
	Status           *string  `json:"status" binding:"omitempty,oneof=enriched processing failed pending"`
	Confidence       *int     `json:"confidence" binding:"omitempty,gte=0,lte=100"`
	Email            *string  `json:"email"`
	Phone            *string  `json:"phone"`
	Linkedin         *string  `json:"linkedin"`
	Location         *string  `json:"location"`
	TechStack        []string `json:"techStack"`
	AIInsight        *string  `json:"aiInsight"`
	MutualConnection *string  `json:"mutualConnection"`
}

// UpdateLeadRequest is a partial replacement: nil means "leave unchanged".
type UpdateLeadRequest struct {
	Name             *string   `json:"name"`
	FirstName        *string   `json:"firstName"`
	LastName         *string   `json:"lastName"`
	Title            *string   `json:"title"`
	Company          *string   `json:"company"`
	CompanyLogo      *string   `json:"companyLogo"`
	Avatar           *string   `json:"avatar"`
	Status           *string   `json:"status" binding:"omitempty,oneof=enriched processing failed pending"`
	Confidence       *int      `json:"confidence" binding:"omitempty,gte=0,lte=100"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	Linkedin         *string   `json:"linkedin"`
	Location         *string   `json:"location"`
	TechStack        *[]string `json:"techStack"`
	AIInsight        *string   `json:"aiInsight"`
	MutualConnection *string   `json:"mutualConnection"`
}
