package auth

import (
	"context"
	"testing"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/auth"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/user"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type stubUserRepo struct {
	byEmail map[string]user.User
	byID    map[string]user.User
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	testUser := user.User{
		ID:           "user-1",
		CompanyID:    "company-1",
		Email:        "manager@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleManager,
	}

	repo := &stubUserRepo{
		byEmail: map[string]user.User{testUser.Email: testUser},
		byID:    map[string]user.User{testUser.ID: testUser},
	}
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	return NewAuthService(repo, jwtSvc), jwtSvc
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, jwtSvc := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "manager@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "company-1", resp.CompanyID)
	assert.Equal(t, "manager", resp.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	token, err := jwtSvc.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
	companyID, _ := token.Get("company_id")
	assert.Equal(t, "company-1", companyID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "manager@example.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Identical error for unknown email and bad password.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_ValidationError(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RotatesAndRevokesOldToken(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	loginResp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "manager@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, loginResp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "user-1", refreshed.UserID)

	// The original refresh token is single use.
	_, err = svc.Refresh(ctx, loginResp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	loginResp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "manager@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, loginResp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	t.Parallel()
	svc, jwtSvc := newTestService(t)
	ctx := context.Background()

	loginResp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "manager@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, loginResp.RefreshToken))

	assert.True(t, jwtSvc.IsTokenRevoked(loginResp.RefreshToken))

	_, err = svc.Refresh(ctx, loginResp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
