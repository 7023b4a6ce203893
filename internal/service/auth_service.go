package service

import (
	"context"
	"errors"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for credential hashes.
const bcryptCost = 12

// defaultTags are created for every new account.
var defaultTags = []struct{ name, color string }{
	{"Work", "#ef4444"},
	{"Personal", "#3b82f6"},
	{"Urgent", "#f97316"},
}

type AuthService struct {
	users *repository.UserRepository
	tags  *repository.TagRepository
}

func NewAuthService(users *repository.UserRepository, tags *repository.TagRepository) *AuthService {
	return &AuthService{users: users, tags: tags}
}

// Register creates a user with a hashed credential and seeds the
// default tag set. A taken email is reported as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, req *validation.RegisterRequest) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	for _, dt := range defaultTags {
		tag := &domain.Tag{
			ID:     uuid.NewString(),
			UserID: u.ID,
			Name:   dt.name,
			Color:  dt.color,
		}
		if err := s.tags.Create(ctx, tag); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// Login verifies the credential and issues a session token. The error is
// uniform whether the email is unknown or the password wrong.
func (s *AuthService) Login(ctx context.Context, req *validation.LoginRequest) (string, *domain.User, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Profile returns the user behind an authenticated session.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
