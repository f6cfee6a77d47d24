package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/auth"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/user"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/jwt"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, err := a.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	// The old refresh token stops working the moment a new pair is issued.
	a.Service.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.validateRefreshToken(refreshToken); err != nil {
		return err
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) validateRefreshToken(refreshToken string) (userID string, err error) {
	if refreshToken == "" {
		return "", auth.ErrInvalidToken
	}

	if a.Service.IsTokenRevoked(refreshToken) {
		return "", auth.ErrRefreshTokenRevoked
	}

	token, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		if errors.Is(err, jwxjwt.ErrTokenExpired()) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}

	id, ok := token.Get("user_id")
	userID, isString := id.(string)
	if !ok || !isString || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.LoginResponse, error) {
	var resp auth.LoginResponse
	var err error

	resp.AccessToken, resp.ExpiresAt, err = a.Service.GenerateAccessToken(
		userData.ID, userData.Email, userData.EmployeeID, userData.CompanyID, userData.Role,
	)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshExp, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	resp.UserID = userData.ID
	resp.CompanyID = userData.CompanyID
	resp.Role = string(userData.Role)

	return resp, nil
}
