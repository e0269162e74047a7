package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/config"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/cache"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/database"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/infra/repository"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/present/rest"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/present/rest/middleware"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/schemas"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/service"
	"github.com/SaharBarak/portfolio-v2-sub001/internal/usecase"
)

const serviceName = "portfolio"

func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the query, mutation and realtime server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(opts.Config)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), conf)
		},
	}
}

func serve(ctx context.Context, conf config.Config) error {
	if conf.Server.EnableTrace {
		shutdown, err := setupTraceProvider(ctx, conf.Server.TraceEndpoint, serviceName, version)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("failed to flush traces", slog.String("error", err.Error()))
			}
		}()
	}

	db, err := database.Open(conf.Server.DatabaseDriver, conf.Server.DatabaseDsn)
	if err != nil {
		return err
	}
	repos := repository.NewRepositories(db)
	if err := repos.Migrate(ctx); err != nil {
		return err
	}

	validator, err := schemas.NewValidator()
	if err != nil {
		return err
	}

	var results usecase.ResultCache = cache.NewMemory(conf.Server.CacheTTL)
	if conf.Server.MemcachedAddr != "" {
		results = cache.NewMemcached(database.NewMemcached(conf.Server.MemcachedAddr), conf.Server.CacheTTL)
	}

	var (
		publisher usecase.ChangePublisher
		signal    *service.SignalService
	)
	if conf.Server.RedisAddr != "" {
		rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		defer rdb.Close()
		signal = service.NewSignalService(rdb)
		publisher = signal
	}

	notifier := usecase.NewNotifier(results, publisher)
	auth := middleware.NewAuthMiddleware(service.NewAuthService(conf.Sync.TokenHash))
	if conf.Sync.TokenHash == "" {
		slog.Warn("sync.tokenHash is empty, sync mutations are disabled")
	}

	handler := rest.NewHandler(newUsecases(repos, validator, results, notifier), auth, signal)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware(serviceName))
	}
	handler.RegisterRoutes(e)

	errc := make(chan error, 1)
	go func() {
		slog.Info("listening", slog.String("addr", conf.Server.Listen))
		errc <- e.Start(conf.Server.Listen)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newUsecases(
	repos *repository.Repositories,
	validator usecase.Validator,
	results usecase.ResultCache,
	notifier *usecase.Notifier,
) rest.Usecases {
	return rest.Usecases{
		Projects:          usecase.NewQueryUsecase[domain.Project](repos.Projects, results),
		ProjectsSync:      usecase.NewSyncUsecase[domain.ProjectInput, domain.Project](repos.Projects, validator, schemas.Project, notifier),
		Research:          usecase.NewQueryUsecase[domain.Research](repos.Research, results),
		ResearchSync:      usecase.NewSyncUsecase[domain.ResearchInput, domain.Research](repos.Research, validator, schemas.Research, notifier),
		Contributions:     usecase.NewQueryUsecase[domain.Contribution](repos.Contributions, results),
		ContributionsSync: usecase.NewSyncUsecase[domain.ContributionInput, domain.Contribution](repos.Contributions, validator, schemas.Contribution, notifier),
		Now:               usecase.NewQueryUsecase[domain.NowItem](repos.Now, results),
		NowSync:           usecase.NewSyncUsecase[domain.NowInput, domain.NowItem](repos.Now, validator, schemas.Now, notifier),
		Links:             usecase.NewQueryUsecase[domain.Link](repos.Links, results),
		LinksSync:         usecase.NewSyncUsecase[domain.LinkInput, domain.Link](repos.Links, validator, schemas.Link, notifier),
		Blog:              usecase.NewQueryUsecase[domain.BlogPost](repos.Blog, results),
		BlogSync:          usecase.NewSyncUsecase[domain.BlogInput, domain.BlogPost](repos.Blog, validator, schemas.Blog, notifier),
		About:             usecase.NewAboutUsecase(repos.About, validator, results, notifier),
		Availability:      usecase.NewAvailabilityUsecase(repos.Availability, validator, results, notifier),
		Likes:             usecase.NewLikesUsecase(repos.Likes, validator, notifier),
	}
}
