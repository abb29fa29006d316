package main

import (
	"context"
	"log/slog"
	"os"

	"bookmarks/config"
	"bookmarks/internal/delivery"
	"bookmarks/internal/delivery/api"
	"bookmarks/internal/delivery/api/middleware"
	"bookmarks/internal/delivery/api/router"
	"bookmarks/internal/delivery/api/router/handler"
	"bookmarks/internal/infra/auth"
	logs "bookmarks/internal/infra/log"
	"bookmarks/internal/infra/persistence/memory"
	"bookmarks/internal/infra/persistence/postgres"
	"bookmarks/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Configuration is resolved once, before the graph is built, because the
	// store driver decides which repositories get provided.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Database.Driver == config.StoreDriverMemory {
		return fx.Provide(
			memory.NewStore,
			memory.NewUserRepository,
			memory.NewBookmarkRepository,
			memory.NewTransactionManager,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewUserRepository,
		postgres.NewBookmarkRepository,
		postgres.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewPasswordHasher,
		auth.NewPasswordPolicy,
		auth.NewJWTService,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewSessionService,
		impl.NewProfileService,
		impl.NewBookmarkService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAuthHandler,
		handler.NewUserHandler,
		handler.NewBookmarkHandler,
		router.NewRouter,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
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
