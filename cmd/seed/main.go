// Seed script creating one user per role for local development
// cmd/seed/main.go
package main

import (
	"context"
	"errors"

	"beamtime-api/config"
	"beamtime-api/models"
	"beamtime-api/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var seedUsers = []services.CreateUserInput{
	{Name: "Dr. PI", Email: "pi@example.com", Role: models.RolePI},
	{Name: "Manager", Email: "manager@example.com", Role: models.RoleProjectManager},
	{Name: "Allocator", Email: "allocator@example.com", Role: models.RoleAllocator},
	{Name: "Approver", Email: "approver@example.com", Role: models.RoleApprover},
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		config.Log.Info("No .env file found")
	}

	// Initialize database
	config.InitDB()

	ctx := context.Background()
	svc := services.NewUserService(config.DB)

	for _, in := range seedUsers {
		var existing models.User
		err := config.DB.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
		if err == nil {
			config.Log.WithField("email", in.Email).Info("User already exists, skipping")
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			config.Log.WithError(err).WithField("email", in.Email).Error("Failed to look up user")
			continue
		}

		user, err := svc.Create(ctx, in)
		if err != nil {
			config.Log.WithError(err).WithField("email", in.Email).Error("Failed to create user")
			continue
		}

		config.Log.WithFields(logrus.Fields{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		}).Info("Created user")
	}

	config.Log.Info("Seeding completed!")
}
