// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
	"sync"

	"beamtime-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

var registerOnce sync.Once

// RegisterValidators adds the beamtime tags to gin's binding validator:
// user_role, request_status and strict_email.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
			return models.UserRole(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("request_status", func(fl validator.FieldLevel) bool {
			return models.RequestStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("strict_email", func(fl validator.FieldLevel) bool {
			return ValidateEmail(SanitizeInput(fl.Field().String()))
		})
	})
}
