package main

import (
	"context"
	"errors"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	_ "media-fetcher/docs"

	"media-fetcher/internal/delivery/http/handlers"
	"media-fetcher/internal/delivery/http/routers"
	domain "media-fetcher/internal/domain/repositories"
	"media-fetcher/internal/infrastructure/extractor"
	"media-fetcher/internal/infrastructure/queue"
	infra_repo "media-fetcher/internal/infrastructure/repositories"
	"media-fetcher/internal/infrastructure/storage"
	"media-fetcher/internal/pkg/config"
	"media-fetcher/internal/pkg/logger"
	"media-fetcher/internal/usecases"
	"media-fetcher/pkg/errors/i18n"
)

func main() {
	fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Provide(
			config.LoadConfig,
			newLogger,

			// Repositories & storage
			newExtractor,
			fx.Annotate(infra_repo.NewInMemoryJobRepository, fx.As(new(domain.JobRepository))),
			newLocalStorage,
			newMirror,

			// Services
			usecases.NewMetadataProber,
			newRunner,
			newWorkerPool,
			newDownloadService,
			newCleanupService,

			// HTTP
			handlers.NewDownloadHandler,
			newCron,
			newApp,
		),
		fx.Invoke(prepare, registerCleanup, registerServer),
	).Run()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level, cfg.Log.Format)
}

// prepare runs the startup preconditions: storage directories and messages.
func prepare(cfg *config.Config, log *zap.Logger) error {
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}
	if err := i18n.Load(cfg.Log.Locale); err != nil {
		log.Warn("locale not available, falling back to en", zap.String("locale", cfg.Log.Locale), zap.Error(err))
		return i18n.Load("en")
	}
	return nil
}

func newExtractor(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) domain.MediaExtractor {
	y := extractor.NewYTDLP(cfg.Download.Format, cfg.Download.OutputTemplate, cfg.Download.ProbeTimeout, log)
	if cfg.Download.AutoInstall {
		lc.Append(fx.Hook{OnStart: y.Install})
	}
	return y
}

func newLocalStorage(cfg *config.Config) *storage.LocalStorage {
	return storage.NewLocalStorage(cfg.Download.Dir)
}

// newMirror returns nil when no bucket is configured.
func newMirror(cfg *config.Config, log *zap.Logger) (domain.ArtifactMirror, error) {
	if cfg.Mirror.Bucket == "" {
		return nil, nil
	}
	m, err := storage.NewS3Mirror(context.Background(), cfg.Mirror.Bucket, cfg.Mirror.Region, cfg.Mirror.Prefix)
	if err != nil {
		return nil, err
	}
	log.Info("artifact mirror enabled", zap.String("bucket", cfg.Mirror.Bucket), zap.String("region", cfg.Mirror.Region))
	return m, nil
}

func newRunner(cfg *config.Config, jobs domain.JobRepository, ext domain.MediaExtractor, mirror domain.ArtifactMirror, log *zap.Logger) *usecases.DownloadRunner {
	return usecases.NewDownloadRunner(jobs, ext, cfg.Download.Dir, mirror, log)
}

func newWorkerPool(lc fx.Lifecycle, cfg *config.Config, runner *usecases.DownloadRunner, log *zap.Logger) *queue.WorkerPool {
	pool := queue.NewWorkerPool(cfg.Download.Workers, runner, log)
	lc.Append(fx.Hook{OnStop: pool.Shutdown})
	return pool
}

func newDownloadService(
	prober *usecases.MetadataProber,
	jobs domain.JobRepository,
	pool *queue.WorkerPool,
	store *storage.LocalStorage,
	log *zap.Logger,
) usecases.DownloadService {
	return usecases.NewDownloadService(prober, jobs, pool, store, log)
}

func newCleanupService(cfg *config.Config, store *storage.LocalStorage, log *zap.Logger) usecases.CleanupService {
	return usecases.NewCleanupService(store, cfg.Cleanup.MaxAge, log)
}

func newCron(lc fx.Lifecycle) *cron.Cron {
	c := cron.New(cron.WithSeconds())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
	return c
}

func registerCleanup(cfg *config.Config, c *cron.Cron, svc usecases.CleanupService) error {
	_, err := svc.Schedule(c, cfg.Cleanup.Schedule)
	return err
}

func newApp(cfg *config.Config, h *handlers.DownloadHandler) *fiber.App {
	app := routers.NewApp()
	routers.SetupDownloadRoutes(app, h, routers.StaticDirs{
		Static:    cfg.Server.StaticDir,
		Downloads: cfg.Download.Dir,
	})
	return app
}

func registerServer(lc fx.Lifecycle, cfg *config.Config, app *fiber.App, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr())
			if err != nil {
				return err
			}
			log.Info("server listening", zap.String("addr", cfg.Addr()))
			go func() {
				if err := app.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
					log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			log.Info("shutting down server")
			return app.ShutdownWithContext(ctx)
		},
	})
}
