package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// Register creates a pending client profile. A manager must approve it (and
// may change its role) before it can log in.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Profile, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by a DB constraint.
	p, err := s.profiles.Create(ctx, domain.Profile{
		Email:        input.Email,
		Name:         input.Name,
		Role:         domain.RoleClient,
		Status:       domain.ProfileStatusPending,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile registered",
		slog.String("user_id", p.ID.String()))

	return p, nil
}
