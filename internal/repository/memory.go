// internal/repository/memory.go
//
// In-memory fallback store used when no DATABASE_URL is configured. It is
// the full system of record in that mode: nothing persists across process
// restarts and it is single-process only. Not a cache.
package repository

import (
	"context"
	"sync"
	"time"
)

type MemoryStore struct {
	mu sync.Mutex

	leads      map[int]*Lead
	nextLeadID int

	users         map[int]*User
	usersByOpenID map[string]int
	nextUserID    int

	// seedLeads provides the fixed demo leads for a user; each userID is
	// seeded at most once, the first time it is touched.
	seedLeads func(userID int) []*Lead
	seeded    map[int]bool
}

// NewMemoryStore builds the shared backing state for the memory repositories.
// seedLeads may be nil, in which case users start with no leads.
func NewMemoryStore(seedLeads func(userID int) []*Lead) *MemoryStore {
	return &MemoryStore{
		leads:         make(map[int]*Lead),
		nextLeadID:    1,
		users:         make(map[int]*User),
		usersByOpenID: make(map[string]int),
		nextUserID:    1,
		seedLeads:     seedLeads,
		seeded:        make(map[int]bool),
	}
}

// ensureSeeded must be called with s.mu held.
func (s *MemoryStore) ensureSeeded(userID int) {
	if s.seeded[userID] || s.seedLeads == nil {
		return
	}
	s.seeded[userID] = true
	for _, l := range s.seedLeads(userID) {
		c := cloneLead(l)
		c.ID = s.nextLeadID
		s.nextLeadID++
		c.UserID = userID
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}
		s.leads[c.ID] = c
	}
}

func cloneLead(l *Lead) *Lead {
	c := *l
	if l.TechStack != nil {
		c.TechStack = append([]string(nil), l.TechStack...)
	}
	return &c
}

func cloneUser(u *User) *User {
	c := *u
	return &c
}

// ============================================
// Lead repository
// ============================================

type memoryLeadRepository struct {
	store *MemoryStore
}

func NewMemoryLeadRepository(store *MemoryStore) LeadRepository {
	return &memoryLeadRepository{store: store}
}

func (r *memoryLeadRepository) FindByUserID(ctx context.Context, userID int) ([]*Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.ensureSeeded(userID)

	var leads []*Lead
	// Ascending id keeps insertion order.
	for id := 1; id < r.store.nextLeadID; id++ {
		if l, ok := r.store.leads[id]; ok && l.UserID == userID {
			leads = append(leads, cloneLead(l))
		}
	}
	return leads, nil
}

func (r *memoryLeadRepository) FindByID(ctx context.Context, id int) (*Lead, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.leads[id]
	if !ok {
		return nil, nil
	}
	return cloneLead(l), nil
}

func (r *memoryLeadRepository) Create(ctx context.Context, lead *Lead) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.ensureSeeded(lead.UserID)

	now := time.Now()
	lead.ID = r.store.nextLeadID
	r.store.nextLeadID++
	lead.CreatedAt = now
	lead.UpdatedAt = now
	r.store.leads[lead.ID] = cloneLead(lead)
	return nil
}

func (r *memoryLeadRepository) Update(ctx context.Context, lead *Lead) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.leads[lead.ID]
	if !ok {
		return nil
	}
	lead.CreatedAt = existing.CreatedAt
	lead.UserID = existing.UserID
	lead.UpdatedAt = time.Now()
	r.store.leads[lead.ID] = cloneLead(lead)
	return nil
}

func (r *memoryLeadRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.leads, id)
	return nil
}

func (r *memoryLeadRepository) MarkStaleProcessingFailed(ctx context.Context, cutoff time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for _, l := range r.store.leads {
		if l.Status == "processing" && l.UpdatedAt.Before(cutoff) {
			l.Status = "failed"
			l.UpdatedAt = time.Now()
			n++
		}
	}
	return n, nil
}

// ============================================
// User repository
// ============================================

type memoryUserRepository struct {
	store *MemoryStore
}

func NewMemoryUserRepository(store *MemoryStore) UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id int) (*User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *memoryUserRepository) FindByOpenID(ctx context.Context, openID string) (*User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, ok := r.store.usersByOpenID[openID]
	if !ok {
		return nil, nil
	}
	return cloneUser(r.store.users[id]), nil
}

func (r *memoryUserRepository) Upsert(ctx context.Context, user *User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	if id, ok := r.store.usersByOpenID[user.OpenID]; ok {
		existing := r.store.users[id]
		if user.Name != nil {
			existing.Name = user.Name
		}
		if user.Email != nil {
			existing.Email = user.Email
		}
		if user.LoginMethod != nil {
			existing.LoginMethod = user.LoginMethod
		}
		existing.LastSignedIn = now
		existing.UpdatedAt = now
		*user = *cloneUser(existing)
		return nil
	}

	user.ID = r.store.nextUserID
	r.store.nextUserID++
	if user.Role == "" {
		user.Role = "user"
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	user.LastSignedIn = now
	r.store.users[user.ID] = cloneUser(user)
	r.store.usersByOpenID[user.OpenID] = user.ID
	return nil
}
