package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type accountStore interface {
	List(ctx context.Context) ([]models.StaffAccount, error)
	FindByID(ctx context.Context, id string) (*models.StaffAccount, error)
	FindByUsername(ctx context.Context, username string) (*models.StaffAccount, error)
	Update(ctx context.Context, account *models.StaffAccount) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// AccountUpdateInput carries the editable staff profile fields. Nil
// pointers leave the stored value untouched.
type AccountUpdateInput struct {
	Name       *string `json:"name"`
	Username   *string `json:"username"`
	Role       *string `json:"role"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Address    *string `json:"address"`
	Contact    *string `json:"contact"`
	Notes      *string `json:"notes"`
	Password   *string `json:"password"`
}

// AccountService manages staff accounts for the settings pages.
type AccountService struct {
	repo     accountStore
	activity activityRecorder
	logger   *zap.Logger
}

// NewAccountService constructs the service.
func NewAccountService(repo accountStore, activity activityRecorder, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{repo: repo, activity: activity, logger: logger}
}

// List returns all staff accounts.
func (s *AccountService) List(ctx context.Context) ([]models.StaffAccount, error) {
	return s.repo.List(ctx)
}

// Get returns one staff account.
func (s *AccountService) Get(ctx context.Context, id string) (*models.StaffAccount, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	return account, nil
}

// Update edits a staff profile. A username change must not collide with
// another account; a password change is re-hashed.
func (s *AccountService) Update(ctx context.Context, id string, input AccountUpdateInput, actor string) (*models.StaffAccount, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != account.Username {
		existing, err := s.repo.FindByUsername(ctx, *input.Username)
		if err == nil && existing.ID != id {
			return nil, appErrors.ErrConflict.Clone("username is already taken")
		} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		account.Username = *input.Username
	}

	applyString(&account.Name, input.Name)
	applyString(&account.Role, input.Role)
	applyString(&account.Position, input.Position)
	applyString(&account.Department, input.Department)
	applyString(&account.Address, input.Address)
	applyString(&account.Contact, input.Contact)
	applyString(&account.Notes, input.Notes)

	// Validate and hash before touching the store so a rejected
	// password leaves the profile untouched.
	var passwordHash string
	if input.Password != nil && *input.Password != "" {
		if len(*input.Password) < 6 {
			return nil, appErrors.ErrValidation.Clone("password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	if err := s.repo.Update(ctx, account); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}

	if passwordHash != "" {
		if err := s.repo.UpdatePassword(ctx, id, passwordHash); err != nil {
			return nil, err
		}
	}

	s.activity.Record(ctx, models.ActivityUpdate, "staff", account.Name, actor)
	return account, nil
}

// SetActive enables or disables a login.
func (s *AccountService) SetActive(ctx context.Context, id string, active bool, actor string) (*models.StaffAccount, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	account.IsActive = active

	action := models.ActivityDeactivated
	if active {
		action = models.ActivityActivated
	}
	s.activity.Record(ctx, action, "staff", account.Name, actor)
	return account, nil
}

// Delete removes a staff account.
func (s *AccountService) Delete(ctx context.Context, id string, actor string) error {
	account, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}
	s.activity.Record(ctx, models.ActivityDelete, "staff", account.Name, actor)
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
