package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/pkg/apperrors"
	"github.com/skillsphere/skillsphere/internal/pkg/auth"
)

func newTestAuthService(userRepo *fakeUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(userRepo, jwtService)
}

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newTestAuthService(userRepo)

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:    "Learner@Example.com",
		Password: "secret1",
		Name:     "Learner",
	})
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "learner@example.com", resp.User.Email)
	assert.Equal(t, "Learner", resp.User.Name)

	// Stored password must be hashed, never the plaintext
	stored, err := userRepo.GetUserByEmail(context.Background(), "learner@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret1"))
}

func TestRegisterCollectsAllFieldErrors(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Name:     "  ",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newTestAuthService(userRepo)

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "secret1", Name: "First"}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginSucceedsWithValidCredentials(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newTestAuthService(userRepo)

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:    "learner@example.com",
		Password: "secret1",
		Name:     "Learner",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "learner@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFailsIdenticallyForUnknownEmailAndWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := newTestAuthService(userRepo)

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:    "learner@example.com",
		Password: "secret1",
		Name:     "Learner",
	})
	require.NoError(t, err)

	_, unknownErr := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	_, wrongPassErr := service.Login(context.Background(), &dto.LoginRequest{
		Email:    "learner@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}
