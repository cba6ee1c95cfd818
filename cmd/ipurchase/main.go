package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hatzenkracher/ipurchase/config"
	"github.com/hatzenkracher/ipurchase/internal/delivery"
	"github.com/hatzenkracher/ipurchase/internal/delivery/http"
	"github.com/hatzenkracher/ipurchase/internal/delivery/http/middleware"
	"github.com/hatzenkracher/ipurchase/internal/delivery/http/router/handler"
	"github.com/hatzenkracher/ipurchase/internal/domain/service"
	"github.com/hatzenkracher/ipurchase/internal/infra/auth"
	logs "github.com/hatzenkracher/ipurchase/internal/infra/log"
	"github.com/hatzenkracher/ipurchase/internal/infra/persistence/postgres"
	"github.com/hatzenkracher/ipurchase/internal/infra/qrlabel"
	"github.com/hatzenkracher/ipurchase/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewCompanySettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newLabelService,
		),
	)
}

// newLabelService creates the QR label service with dependency injection
func newLabelService(cfg *config.Config) service.LabelService {
	if cfg.Label == nil {
		// Use default values if not configured
		return qrlabel.NewLabelService(256, "M")
	}

	return qrlabel.NewLabelService(cfg.Label.Size, cfg.Label.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDeviceService,
			impl.NewCompanySettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewCompanySettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
