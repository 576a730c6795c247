package admins

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/db"
	"github.com/soundreel/admin-backend/pkg/db/models"
	"github.com/soundreel/admin-backend/pkg/enums"
	pkgerrors "github.com/soundreel/admin-backend/pkg/errors"
	"github.com/soundreel/admin-backend/pkg/security"
)

const minPasswordLength = 8

type adminsRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	List(ctx context.Context, excludeID uuid.UUID) ([]models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Updates(ctx context.Context, id uuid.UUID, values map[string]any) error
}

// Service exposes admin account management to the panel.
type Service interface {
	ListAdmins(ctx context.Context, callerID uuid.UUID) ([]AdminDTO, error)
	SaveAdmin(ctx context.Context, actorID uuid.UUID, input SaveAdminInput) (*AdminDTO, error)
}

type service struct {
	repo        adminsRepository
	passwordCfg config.PasswordConfig
}

// NewService builds an admin management service.
func NewService(repo adminsRepository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin repository is required")
	}
	return &service{repo: repo, passwordCfg: passwordCfg}, nil
}

// ListAdmins returns every admin except the caller, oldest first.
func (s *service) ListAdmins(ctx context.Context, callerID uuid.UUID) ([]AdminDTO, error) {
	rows, err := s.repo.List(ctx, callerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list admins")
	}
	out := make([]AdminDTO, len(rows))
	for i := range rows {
		out[i] = *FromModel(&rows[i])
	}
	return out, nil
}

// SaveAdmin creates a new admin or updates the one named by input.ID.
func (s *service) SaveAdmin(ctx context.Context, actorID uuid.UUID, input SaveAdminInput) (*AdminDTO, error) {
	if actorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}

	fields := map[string]string{}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		fields["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "email is invalid"
	}
	if !input.Role.IsValid() {
		fields["role"] = "role must be SUPER_ADMIN or ADMIN"
	}
	if input.ID == nil {
		if len(input.Password) < minPasswordLength {
			fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
		}
	} else if input.Password != "" && len(input.Password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}
	if len(fields) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}

	if input.ID != nil {
		return s.update(ctx, actorID, *input.ID, email, input)
	}
	return s.create(ctx, actorID, email, input)
}

func (s *service) create(ctx context.Context, actorID uuid.UUID, email string, input SaveAdminInput) (*AdminDTO, error) {
	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         input.Role,
		CreatedBy:    &actorID,
		UpdatedBy:    &actorID,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if db.IsUniqueViolation(err, "email") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"email": "email already exists"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create admin")
	}
	return FromModel(admin), nil
}

func (s *service) update(ctx context.Context, actorID, id uuid.UUID, email string, input SaveAdminInput) (*AdminDTO, error) {
	values := map[string]any{
		"email":      email,
		"first_name": strings.TrimSpace(input.FirstName),
		"last_name":  strings.TrimSpace(input.LastName),
		"role":       input.Role,
		"updated_by": actorID,
	}
	if input.Password != "" {
		hash, err := security.HashPassword(input.Password, s.passwordCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		values["password_hash"] = hash
	}

	if err := s.repo.Updates(ctx, id, values); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "admin not found")
		}
		if db.IsUniqueViolation(err, "email") {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"email": "email already exists"})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update admin")
	}

	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload admin")
	}
	return FromModel(admin), nil
}

// RoleAllowsManagement reports whether the given role may manage admin accounts.
func RoleAllowsManagement(role enums.AdminRole) bool {
	return role == enums.AdminRoleSuperAdmin
}
