package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
	"github.com/sjmp-dev/parish-admin-api/pkg/config"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type authAccountStore interface {
	FindByUsername(ctx context.Context, username string) (*models.StaffAccount, error)
	Create(ctx context.Context, account *models.StaffAccount) error
}

// AuthService authenticates staff and issues access tokens. Passwords are
// compared against bcrypt hashes only; no plaintext path exists.
type AuthService struct {
	accounts authAccountStore
	activity activityRecorder
	validate *validator.Validate
	logger   *zap.Logger
	cfg      config.AuthConfig
}

// NewAuthService constructs the service.
func NewAuthService(accounts authAccountStore, activity activityRecorder, logger *zap.Logger, cfg config.AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		accounts: accounts,
		activity: activity,
		validate: validator.New(),
		logger:   logger,
		cfg:      cfg,
	}
}

// Login verifies credentials and returns the legacy login body plus a
// token. Wrong username and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, input models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, appErrors.ErrValidation.Clone("username and password are required")
	}

	account, err := s.accounts.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, appErrors.ErrInactiveAccount
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, models.ActivityLogin, "staff", account.Name, account.Username)
	return &models.LoginResponse{
		Success:  true,
		Token:    token,
		User:     account,
		UserType: account.Role,
	}, nil
}

// Register creates a staff account with a bcrypt-hashed password. The
// username must not already be taken, compared case-insensitively.
func (s *AuthService) Register(ctx context.Context, input models.RegisterRequest) (*models.StaffAccount, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, appErrors.ErrValidation.Clone("name, username and a password of at least 6 characters are required")
	}

	if _, err := s.accounts.FindByUsername(ctx, input.Username); err == nil {
		return nil, appErrors.ErrConflict.Clone("username is already taken")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleWebsiteManager
	}

	account := &models.StaffAccount{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
		Address:      input.Address,
		Contact:      input.Contact,
		IsActive:     true,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, models.ActivityRegister, "staff", account.Name, account.Username)
	return account, nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}

func (s *AuthService) issueToken(account *models.StaffAccount) (string, error) {
	now := time.Now()
	claims := models.JWTClaims{
		UserID:   account.ID,
		Username: account.Username,
		Role:     account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.Error("sign access token failed", zap.Error(err))
		return "", appErrors.ErrInternal
	}
	return signed, nil
}
