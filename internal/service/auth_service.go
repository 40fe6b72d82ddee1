package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/leadgrid/leadgrid-backend/internal/config"
	"github.com/leadgrid/leadgrid-backend/internal/db"
	"github.com/leadgrid/leadgrid-backend/internal/repository"
)

// ============================================
// Auth Service
// ============================================
//
// Login itself lives in the external OAuth portal. This service only
// exchanges the callback code for an identity, upserts the user row and
// issues/validates the HMAC-signed session token carried by the cookie.

type AuthService interface {
	// ExchangeCode resolves the OAuth callback code to a user and returns
	// the user plus a fresh session token.
	ExchangeCode(ctx context.Context, code string) (*repository.User, string, error)
	// ResolveUser returns the user for a session token, or nil when the
	// token is missing/invalid/expired. It never fails on bad credentials;
	// route protection decides whether nil is acceptable.
	ResolveUser(ctx context.Context, token string) (*repository.User, error)
	SessionTTL() time.Duration
}

type portalIdentity struct {
	OpenID      string  `json:"openId"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	LoginMethod *string `json:"loginMethod"`
}

type authService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	redis    *db.RedisDB
	client   *http.Client
}

func NewAuthService(cfg *config.Config, userRepo repository.UserRepository, redis *db.RedisDB) AuthService {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		redis:    redis,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *authService) SessionTTL() time.Duration {
	return time.Duration(s.cfg.SessionHours) * time.Hour
}

func (s *authService) ExchangeCode(ctx context.Context, code string) (*repository.User, string, error) {
	identity, err := s.fetchIdentity(ctx, code)
	if err != nil {
		return nil, "", err
	}

	user := &repository.User{
		OpenID:      identity.OpenID,
		Name:        identity.Name,
		Email:       identity.Email,
		LoginMethod: identity.LoginMethod,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to upsert user: %w", err)
	}

	// The cached row is stale after upsert.
	if s.redis != nil {
		s.redis.DeleteCache(ctx, userCacheKey(user.ID))
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// fetchIdentity exchanges the code with the OAuth portal. Without a portal
// configured (local development on the memory store) the code itself is
// treated as the open identifier.
func (s *authService) fetchIdentity(ctx context.Context, code string) (*portalIdentity, error) {
	if s.cfg.OAuthPortalURL == "" {
		method := "dev"
		name := "Local Developer"
		return &portalIdentity{OpenID: code, Name: &name, LoginMethod: &method}, nil
	}

	body, _ := json.Marshal(map[string]string{
		"code":          code,
		"client_id":     s.cfg.OAuthClientID,
		"client_secret": s.cfg.OAuthClientSecret,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.OAuthPortalURL+"/api/token", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal exchange failed: status %d", resp.StatusCode)
	}

	var identity portalIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("portal exchange failed: %w", err)
	}
	if identity.OpenID == "" {
		return nil, ErrInvalidToken
	}
	return &identity, nil
}

func (s *authService) issueToken(user *repository.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    strconv.Itoa(user.ID),
		"openId": user.OpenID,
		"jti":    uuid.New().String(),
		"iat":    now.Unix(),
		"exp":    now.Add(s.SessionTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *authService) ResolveUser(ctx context.Context, tokenString string) (*repository.User, error) {
	if tokenString == "" {
		return nil, nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, nil
	}
	userID, err := strconv.Atoi(sub)
	if err != nil {
		return nil, nil
	}

	return s.loadUser(ctx, userID)
}

func (s *authService) loadUser(ctx context.Context, userID int) (*repository.User, error) {
	if s.redis != nil {
		var cached repository.User
		if err := s.redis.GetCache(ctx, userCacheKey(userID), &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user != nil && s.redis != nil {
		s.redis.SetCache(ctx, userCacheKey(userID), user, 5*time.Minute)
	}
	return user, nil
}

func userCacheKey(userID int) string {
	return "user:" + strconv.Itoa(userID)
}
