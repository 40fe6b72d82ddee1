// internal/repository/repository.go
package repository

import (
	"context"
	"encoding/json"
	"time"
)

// ============================================
// Models / Entities
// ============================================

type User struct {
	ID           int
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time
}

type Lead struct {
	ID               int
	Name             string
	FirstName        *string
	LastName         *string
	Title            *string
	Company          string
	CompanyLogo      *string
	Avatar           *string
	Status           string
	Confidence       int
	Email            *string
	Phone            *string
	Linkedin         *string
	Location         *string
	TechStack        []string
	AIInsight        *string
	MutualConnection *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           int
}

// ============================================
// Repository Interfaces
// ============================================

type UserRepository interface {
	FindByID(ctx context.Context, id int) (*User, error)
	FindByOpenID(ctx context.Context, openID string) (*User, error)
	// Upsert creates the user on first sign-in and refreshes
	// name/email/login_method/last_signed_in on every subsequent one.
	Upsert(ctx context.Context, user *User) error
}

type LeadRepository interface {
	FindByUserID(ctx context.Context, userID int) ([]*Lead, error)
	FindByID(ctx context.Context, id int) (*Lead, error)
	Create(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id int) error
	// MarkStaleProcessingFailed flips leads stuck in "processing" since
	// before cutoff to "failed" and returns how many rows changed.
	MarkStaleProcessingFailed(ctx context.Context, cutoff time.Time) (int64, error)
}

// ============================================
// TechStack (de)serialization
// ============================================
//
// tech_stack is stored as JSON text, never as a native array column.
// A nil slice round-trips as NULL; malformed stored text reads as nil.

func marshalTechStack(ts []string) *string {
	if ts == nil {
		return nil
	}
	data, err := json.Marshal(ts)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

func unmarshalTechStack(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var ts []string
	if err := json.Unmarshal([]byte(*raw), &ts); err != nil {
		return nil
	}
	return ts
}
