package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/peritagem-backend/internal/auth"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"github.com/heartmarshall/peritagem-backend/pkg/ctxutil"
)

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Profile     *domain.Profile
}

// Login authenticates a profile with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong,
// and ErrForbidden if the profile is pending or blocked.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.profiles.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get profile: %w", err)
	}

	if p.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !p.CanAct() {
		return nil, domain.ErrForbidden
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(p.ID, p.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", p.ID.String()),
		slog.String("role", p.Role.String()))

	return &AuthResult{AccessToken: token, ExpiresAt: expiresAt, Profile: p}, nil
}

// ValidateToken validates an access token and returns the bearer's id and
// the role it was issued with. Authorization always re-reads the profile.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.Role, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", err)
	}
	return claims.UserID, claims.Role, nil
}

// Me returns the caller's profile.
func (s *Service) Me(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me get profile: %w", err)
	}
	return p, nil
}
