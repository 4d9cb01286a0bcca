package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/janolinej/internal/common"
	"github.com/dmitrijs2005/janolinej/internal/logging"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"github.com/dmitrijs2005/janolinej/internal/store"
)

// AuthService gates the session behind a seeded account.
type AuthService interface {
	// Authenticate returns the user whose email and password match exactly,
	// or common.ErrorUnauthorized. There is no lockout or rate limiting.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	repos store.RepositoryManager
	db    DB
	log   logging.Logger
}

// NewAuthService constructs an AuthService over db.
func NewAuthService(repos store.RepositoryManager, db DB, log logging.Logger) AuthService {
	return &authService{repos: repos, db: db, log: log}
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repos.Users(s.db).GetByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Info(ctx, "login rejected", "email", email)
			return nil, common.ErrorUnauthorized
		}
		s.log.Error(ctx, "login lookup failed", "err", err)
		return nil, fmt.Errorf("authenticate: %w: %w", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "login accepted", "user_id", u.ID, "role", string(u.Role))
	return u, nil
}
