package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// IdentityService registers and authenticates users. Returned users never
// carry the credential hash.
type IdentityService interface {
	Register(ctx context.Context, email, imageURL, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

type identityService struct {
	userRepo repository.UserRepository
}

func NewIdentityService(userRepo repository.UserRepository) IdentityService {
	return &identityService{userRepo: userRepo}
}

func (s *identityService) Register(ctx context.Context, email, imageURL, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("email is required: %w", model.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", model.ErrValidation)
	}
	// bcrypt only hashes the first 72 bytes and rejects longer input.
	if len(password) > 72 {
		return nil, fmt.Errorf("password must be at most 72 bytes: %w", model.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.Create(ctx, email, imageURL, string(hash))
}

// Authenticate collapses unknown-email and wrong-password into one
// ErrUnauthorized so the login form cannot be used to probe for accounts.
func (s *identityService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	userID, hash, err := s.userRepo.CredentialByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authenticate %s: %w", email, model.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, fmt.Errorf("authenticate %s: %w", email, model.ErrUnauthorized)
	}
	return s.userRepo.FindByID(ctx, userID)
}

func (s *identityService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *identityService) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}
