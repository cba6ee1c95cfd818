// Command seed provisions the configured admin account and exits. It is safe
// to run repeatedly, e.g. as an init container.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hatzenkracher/ipurchase/config"
	"github.com/hatzenkracher/ipurchase/internal/infra/auth"
	logs "github.com/hatzenkracher/ipurchase/internal/infra/log"
	"github.com/hatzenkracher/ipurchase/internal/infra/persistence/postgres"
	"github.com/hatzenkracher/ipurchase/internal/usecase"
	"github.com/hatzenkracher/ipurchase/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
			impl.NewSeedService,
		),
		fx.Invoke(runSeed),
	).Run()
}

func runSeed(ctx context.Context, seeder usecase.SeedUsecase, shutdowner fx.Shutdowner) {
	go func() {
		if err := seeder.SeedAdmin(ctx); err != nil {
			slog.Error("Seeding failed", slog.Any("error", err))
			os.Exit(1)
		}

		if err := shutdowner.Shutdown(); err != nil {
			slog.Error("Failed to shut down", slog.Any("error", err))
		}
	}()
}
