package services

import (
	"context"
	"errors"
	"time"

	"relay-chat/internal/domain/user"
	"relay-chat/internal/repository"
	relay_errors "relay-chat/pkg/errors"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

func NewUserService(userRepo repository.UserRepository, tokens *TokenService) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (s *UserService) Signup(ctx context.Context, in SignupInput) (user.User, error) {
	if in.Email == "" || in.Password == "" {
		return user.User{}, relay_errors.ErrValidation
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return user.User{}, relay_errors.ErrAlreadyExists
	} else if !errors.Is(err, relay_errors.ErrNotFound) {
		return user.User{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return user.User{}, err
	}

	newUser := &user.User{
		ID:           uuid.New(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return user.User{}, err
	}

	return *newUser, nil
}

// Signin verifies the credentials and returns a signed session token.
func (s *UserService) Signin(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", relay_errors.ErrValidation
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !VerifyPassword(u.PasswordHash, password) {
		return "", relay_errors.ErrInvalidCredential
	}

	return s.tokens.Issue(u.ID.String(), u.Email)
}

// ListOthers returns every registered user except the caller, newest first.
func (s *UserService) ListOthers(ctx context.Context) ([]user.User, error) {
	ac, ok := AuthFromContext(ctx)
	if !ok {
		return nil, relay_errors.ErrUnauthenticated
	}

	requesterID, err := uuid.Parse(ac.Claims.UserID)
	if err != nil {
		return nil, relay_errors.ErrUnauthenticated
	}

	return s.userRepo.ListOthers(ctx, requesterID)
}
