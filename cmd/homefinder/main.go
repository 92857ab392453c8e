package main

import (
	"context"
	"log/slog"
	"os"

	"homefinder/config"
	"homefinder/internal/delivery"
	"homefinder/internal/delivery/http"
	"homefinder/internal/delivery/http/middleware"
	"homefinder/internal/delivery/http/router/handler"
	"homefinder/internal/infra/auth"
	"homefinder/internal/infra/geo"
	logs "homefinder/internal/infra/log"
	"homefinder/internal/infra/persistence/postgres"
	"homefinder/internal/usecase/impl"

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
			postgres.NewPropertyRepository,
			postgres.NewInterestRepository,
			postgres.NewNotificationRepository,
			postgres.NewFavoriteRepository,
			postgres.NewFeedbackRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geo.NewStaticGeocoder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPropertyService,
			impl.NewInterestService,
			impl.NewNotificationService,
			impl.NewFavoriteService,
			impl.NewFeedbackService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPropertyHandler,
			handler.NewInterestHandler,
			handler.NewNotificationHandler,
			handler.NewFavoriteHandler,
			handler.NewFeedbackHandler,
			handler.NewStatsHandler,
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
