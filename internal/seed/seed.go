package seed

import (
	"context"
	"fmt"

	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/services"
	"github.com/vinayk/rollcall/internal/config"
	"github.com/vinayk/rollcall/internal/pkg/logger"
)

// UserCounter reports how many users exist. The user repository satisfies it.
type UserCounter interface {
	CountUsers(ctx context.Context) (int64, error)
}

// EnsureFirstUser creates the bootstrap admin account when the users table is
// empty. It is a no-op on every subsequent start.
func EnsureFirstUser(ctx context.Context, counter UserCounter, authService services.AuthService, cfg *config.BootstrapConfig) error {
	count, err := counter.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if count > 0 {
		return nil
	}

	username := cfg.AdminUsername
	admin := &models.User{
		Email:       cfg.AdminEmail,
		Username:    &username,
		FullName:    "Administrator",
		Type:        models.UserTypeAdmin,
		IsStaff:     true,
		IsSuperuser: true,
		IsActive:    true,
	}

	created, err := authService.CreateSuperuser(ctx, admin, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info().
		Int64("userId", created.ID).
		Str("email", created.Email).
		Str("username", username).
		Msg("Bootstrap admin account created")

	return nil
}
