package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillsphere/skillsphere/internal/app/models"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/app/repositories"
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
	"github.com/skillsphere/skillsphere/internal/pkg/auth"
	"github.com/skillsphere/skillsphere/internal/pkg/logger"
	"github.com/skillsphere/skillsphere/internal/pkg/validation"
)

// AuthService handles registration, login and token issuance
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// validateRegistration collects all field errors for a registration request
func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	verr := &apperrors.ValidationError{}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		verr.Add("email", "email is required")
	} else if !validation.CompiledPatterns.Email.MatchString(email) {
		verr.Add("email", "email format is invalid")
	}

	if len(req.Password) < validation.PasswordMinLength {
		verr.Add("password", fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}

	if len(strings.TrimSpace(req.Name)) < validation.NameMinLength {
		verr.Add("name", "name is required")
	}

	return verr.ErrOrNil()
}

// Register creates a new user account and returns a signed token with the
// public user projection.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     strings.TrimSpace(req.Name),
	}

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		// The unique constraint backstops the pre-check under concurrency
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, _, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Msg("User registered")

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    toPublicUser(user),
	}, nil
}

// Login verifies credentials and returns a signed token. Both an unknown
// email and a wrong password surface as apperrors.ErrInvalidCredentials so
// the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    toPublicUser(user),
	}, nil
}

func toPublicUser(user *models.User) dto.PublicUser {
	return dto.PublicUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}
