package usecase

import "context"

// SeedUsecase provisions the initial admin account for fresh installations.
type SeedUsecase interface {
	// SeedAdmin creates the configured admin user if it does not exist yet.
	// Running it repeatedly is safe.
	SeedAdmin(ctx context.Context) error
}
