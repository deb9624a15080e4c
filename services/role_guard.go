package services

import (
	"fmt"

	"beamtime-api/models"

	"gorm.io/gorm"
)

// CheckRole permits the action only when actual equals required.
func CheckRole(actual, required models.UserRole) error {
	if actual != required {
		return &Error{Kind: ErrInvalidRole, Detail: fmt.Sprintf("User must have role %s", required)}
	}
	return nil
}

// EnsureRole loads the user and fails with ErrNotFound or ErrInvalidRole.
func EnsureRole(tx *gorm.DB, userID uint, required models.UserRole) (*models.User, error) {
	var user models.User
	if err := lookup(tx, &user, userID, "User"); err != nil {
		return nil, err
	}
	if err := CheckRole(user.Role, required); err != nil {
		return nil, err
	}
	return &user, nil
}
