package services

import (
	"context"
	"strings"

	"beamtime-api/config"
	"beamtime-api/models"
	"beamtime-api/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	if db == nil {
		db = config.DB
	}
	return &UserService{db: db}
}

type CreateUserInput struct {
	Name        string
	Email       string
	Affiliation *string
	Role        models.UserRole
}

// UpdateUserInput holds the fields to change; nil fields are left untouched.
type UpdateUserInput struct {
	Name        *string
	Email       *string
	Affiliation *string
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	name := utils.SanitizeInput(in.Name)
	email := utils.SanitizeInput(in.Email)
	if name == "" {
		return nil, invalid("name is required")
	}
	if !utils.ValidateEmail(email) {
		return nil, invalid("email %q is not a valid address", in.Email)
	}
	if !in.Role.Valid() {
		return nil, invalid("role %q is not one of %s", in.Role, joinRoles())
	}

	user := models.User{
		Name:        name,
		Email:       email,
		Affiliation: sanitizeOptional(in.Affiliation),
		Role:        in.Role,
	}
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	updates := make(map[string]interface{})
	if in.Name != nil {
		name := utils.SanitizeInput(*in.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		updates["name"] = name
	}
	if in.Email != nil {
		email := utils.SanitizeInput(*in.Email)
		if !utils.ValidateEmail(email) {
			return nil, invalid("email %q is not a valid address", *in.Email)
		}
		updates["email"] = email
	}
	if in.Affiliation != nil {
		updates["affiliation"] = sanitizeOptional(in.Affiliation)
	}

	var user models.User
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := lookup(tx, &user, id, "User"); err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&user, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func sanitizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	cleaned := utils.SanitizeInput(*v)
	return &cleaned
}

func joinRoles() string {
	names := make([]string, 0, len(models.UserRoles))
	for _, r := range models.UserRoles {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
