package impl

import (
	"context"
	"log/slog"

	"github.com/hatzenkracher/ipurchase/config"
	"github.com/hatzenkracher/ipurchase/internal/domain/entity"
	"github.com/hatzenkracher/ipurchase/internal/domain/repository"
	"github.com/hatzenkracher/ipurchase/internal/domain/service"
	"github.com/hatzenkracher/ipurchase/internal/errors"
	"github.com/hatzenkracher/ipurchase/internal/usecase"
)

type seedService struct {
	userRepo       repository.UserRepository
	passwordHasher service.PasswordHasher
	cfg            *config.Config
	logger         *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(
	userRepo repository.UserRepository,
	passwordHasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SeedUsecase {
	return &seedService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		cfg:            cfg,
		logger:         logger,
	}
}

// SeedAdmin creates the configured admin user if it does not exist yet.
func (s *seedService) SeedAdmin(ctx context.Context) error {
	if s.cfg == nil || s.cfg.Seed == nil || s.cfg.Seed.AdminUsername == "" {
		s.logger.InfoContext(ctx, "no seed admin configured, skipping")

		return nil
	}

	seed := s.cfg.Seed

	if _, err := s.userRepo.FindByUsername(ctx, seed.AdminUsername); err == nil {
		s.logger.InfoContext(ctx, "seed admin already exists",
			slog.String("username", seed.AdminUsername))

		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check for existing admin")
	}

	if seed.AdminPassword == "" {
		return errors.New("seed admin password must not be empty")
	}

	hash, err := s.passwordHasher.Hash(seed.AdminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	name := seed.AdminName
	if name == "" {
		name = seed.AdminUsername
	}

	admin := &entity.User{
		Username:     seed.AdminUsername,
		PasswordHash: hash,
		Name:         name,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		// A concurrent seeder may have won the race.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil
		}

		return errors.Wrap(err, "failed to create admin user")
	}

	s.logger.InfoContext(ctx, "seed admin created",
		slog.String("userID", admin.ID.String()),
		slog.String("username", admin.Username))

	return nil
}
