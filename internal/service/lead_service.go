package service

import (
	"context"
	"strings"

	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/leadgrid/leadgrid-backend/internal/types"
)

// ============================================
// Lead Service
// ============================================

// CreateLeadInput carries the client-settable fields of a new lead. The
// owner is always the authenticated caller, never part of the input.
type CreateLeadInput struct {
	Name             string
	FirstName        *string
	LastName         *string
	Title            *string
	Company          string
	CompanyLogo      *string
	Avatar           *string
	Status           *string
	Confidence       *int
	Email            *string
	Phone            *string
	Linkedin         *string
	Location         *string
	TechStack        []string
	AIInsight        *string
	MutualConnection *string
}

// UpdateLeadInput is a partial update: nil fields stay untouched. The owner
// and creation timestamp are not part of the editable set.
type UpdateLeadInput struct {
	Name             *string
	FirstName        *string
	LastName         *string
	Title            *string
	Company          *string
	CompanyLogo      *string
	Avatar           *string
	Status           *string
	Confidence       *int
	Email            *string
	Phone            *string
	Linkedin         *string
	Location         *string
	TechStack        *[]string
	AIInsight        *string
	MutualConnection *string
}

type LeadService interface {
	List(ctx context.Context, userID int, filter string) ([]*repository.Lead, error)
	GetByID(ctx context.Context, id, userID int) (*repository.Lead, error)
	Create(ctx context.Context, userID int, input CreateLeadInput) (*repository.Lead, error)
	Update(ctx context.Context, id, userID int, input UpdateLeadInput) (*repository.Lead, error)
	Delete(ctx context.Context, id, userID int) error
}

type leadService struct {
	leadRepo repository.LeadRepository
}

func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

// ownedLead is the single ownership guard shared by get/update/delete.
// A missing row and a row owned by another user are indistinguishable.
func (s *leadService) ownedLead(ctx context.Context, id, userID int) (*repository.Lead, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil || lead.UserID != userID {
		return nil, ErrNotFound
	}
	return lead, nil
}

func (s *leadService) List(ctx context.Context, userID int, filter string) ([]*repository.Lead, error) {
	leads, err := s.leadRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(filter))
	if normalized == "" {
		if leads == nil {
			leads = []*repository.Lead{}
		}
		return leads, nil
	}

	matched := []*repository.Lead{}
	for _, lead := range leads {
		haystack := strings.ToLower(lead.Name + " " + lead.Company)
		if strings.Contains(haystack, normalized) {
			matched = append(matched, lead)
		}
	}
	return matched, nil
}

func (s *leadService) GetByID(ctx context.Context, id, userID int) (*repository.Lead, error) {
	return s.ownedLead(ctx, id, userID)
}

func (s *leadService) Create(ctx context.Context, userID int, input CreateLeadInput) (*repository.Lead, error) {
	lead := &repository.Lead{
		Name:             input.Name,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Title:            input.Title,
		Company:          input.Company,
		CompanyLogo:      input.CompanyLogo,
		Avatar:           input.Avatar,
		Status:           types.StatusPending,
		Confidence:       0,
		Email:            input.Email,
		Phone:            input.Phone,
		Linkedin:         input.Linkedin,
		Location:         input.Location,
		TechStack:        input.TechStack,
		AIInsight:        input.AIInsight,
		MutualConnection: input.MutualConnection,
		UserID:           userID,
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Confidence != nil {
		lead.Confidence = *input.Confidence
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *leadService) Update(ctx context.Context, id, userID int, input UpdateLeadInput) (*repository.Lead, error) {
	lead, err := s.ownedLead(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.FirstName != nil {
		lead.FirstName = input.FirstName
	}
	if input.LastName != nil {
		lead.LastName = input.LastName
	}
	if input.Title != nil {
		lead.Title = input.Title
	}
	if input.Company != nil {
		lead.Company = *input.Company
	}
	if input.CompanyLogo != nil {
		lead.CompanyLogo = input.CompanyLogo
	}
	if input.Avatar != nil {
		lead.Avatar = input.Avatar
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Confidence != nil {
		lead.Confidence = *input.Confidence
	}
	if input.Email != nil {
		lead.Email = input.Email
	}
	if input.Phone != nil {
		lead.Phone = input.Phone
	}
	if input.Linkedin != nil {
		lead.Linkedin = input.Linkedin
	}
	if input.Location != nil {
		lead.Location = input.Location
	}
	if input.TechStack != nil {
		lead.TechStack = *input.TechStack
	}
	if input.AIInsight != nil {
		lead.AIInsight = input.AIInsight
	}
	if input.MutualConnection != nil {
		lead.MutualConnection = input.MutualConnection
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *leadService) Delete(ctx context.Context, id, userID int) error {
	if _, err := s.ownedLead(ctx, id, userID); err != nil {
		return err
	}
	return s.leadRepo.Delete(ctx, id)
}
