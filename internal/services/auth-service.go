package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/RationSeva/ration_service/internal/clients/googleauth"
	"github.com/RationSeva/ration_service/internal/domain"
	"github.com/RationSeva/ration_service/internal/dto"
	"github.com/RationSeva/ration_service/internal/helper"
	"github.com/RationSeva/ration_service/internal/repository"
	"github.com/google/uuid"
)

// SessionExchanger resolves an OAuth session id to verified profile data.
type SessionExchanger interface {
	ExchangeSession(ctx context.Context, sessionID string) (*googleauth.SessionData, error)
}

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.UserLogin) (*dto.AuthResponse, error)
	GoogleSession(ctx context.Context, sessionID string) (*dto.AuthResponse, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type authService struct {
	repo        repository.UserRepository
	sessionRepo repository.SessionRepository
	oauth       SessionExchanger
	auth        helper.Auth
}

func NewAuthService(
	repo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	oauth SessionExchanger,
	auth helper.Auth,
) AuthService {
	return &authService{
		repo:        repo,
		sessionRepo: sessionRepo,
		oauth:       oauth,
		auth:        auth,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	role := strings.TrimSpace(input.Role)

	if name == "" || email == "" || strings.TrimSpace(input.Password) == "" || phone == "" {
		return nil, errors.New("invalid inputs")
	}
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, errors.New("invalid role")
	}

	// advisory duplicate check, read-then-write
	if existing, err := s.repo.FindUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, input dto.UserLogin) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (s *authService) GoogleSession(ctx context.Context, sessionID string) (*dto.AuthResponse, error) {
	data, err := s.oauth.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindUserByEmail(ctx, data.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		// first OAuth login: create the account with a random password
		// the user never sees
		hash, hashErr := s.auth.HashPassword(uuid.NewString())
		if hashErr != nil {
			return nil, hashErr
		}

		user = &domain.User{
			ID:           uuid.NewString(),
			Name:         data.Name,
			Email:        data.Email,
			Phone:        "",
			PasswordHash: hash,
			Role:         domain.RoleUser,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	session := &domain.Session{
		SessionToken: data.SessionToken,
		UserID:       user.ID,
		ExpiresAt:    time.Now().UTC().Add(7 * 24 * time.Hour),
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:        token,
		User:         user,
		SessionToken: data.SessionToken,
	}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.FindUserByID(ctx, userID)
}

// ListUsers returns non-admin accounts only.
func (s *authService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsersByRole(ctx, domain.RoleUser)
}
