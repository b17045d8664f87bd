package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/iyforlando/academy-api/internal/config"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
	"github.com/iyforlando/academy-api/internal/services"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: provision-profile <email> <role> [display name]")
		fmt.Println("Roles: superuser, admin, teacher, viewer")
		os.Exit(1)
	}

	email := os.Args[1]
	role := os.Args[2]
	displayName := email
	if len(os.Args) > 3 {
		displayName = strings.Join(os.Args[3:], " ")
	}

	switch role {
	case models.StoredRoleSuperuser, models.StoredRoleAdmin, models.StoredRoleTeacher, models.StoredRoleViewer:
	default:
		log.Fatalf("Invalid role: %s", role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	profileService := services.NewProfileService(db)

	profile, err := profileService.Provision(ctx, email, displayName, role)
	if err != nil {
		log.Fatalf("Failed to provision profile: %v", err)
	}

	fmt.Printf("Provisioned %s as %s (id %s)\n", profile.Email, profile.Role, profile.ID)
}
