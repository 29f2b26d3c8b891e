package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/resumes"
	"resume-scorer/internal/scores"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/services/health"
	"resume-scorer/internal/shared/config"
	"resume-scorer/internal/shared/server"
	"resume-scorer/internal/shared/server/middleware"
	"resume-scorer/internal/shared/storage/db"
	"resume-scorer/internal/shared/storage/object"
	localstore "resume-scorer/internal/shared/storage/object/local"
	s3store "resume-scorer/internal/shared/storage/object/s3"
	"resume-scorer/internal/shared/telemetry"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	Engine         *scoring.Engine
	ResumesRepo    resumes.DraftsRepo
	ScoresService  *scores.Service
	ResumesService *resumes.Service
	ScoresHandler  *scores.Handler
	ResumesHandler *resumes.Handler
	Health         *health.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	engine, err := BuildEngine(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Engine: engine,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		ScoresHandler:  app.ScoresHandler,
		ResumesHandler: app.ResumesHandler,
		Health:         app.Health,
		Limiter:        middleware.NewRateLimiter(nil),
	})

	return app, nil
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// BuildEngine configures the scoring engine from cfg.
func BuildEngine(cfg config.Config) (*scoring.Engine, error) {
	lib := scoring.DefaultLibrary()
	if path := strings.TrimSpace(cfg.ScoringLibraryFile); path != "" {
		loaded, err := scoring.LoadLibrary(path)
		if err != nil {
			return nil, fmt.Errorf("load scoring library: %w", err)
		}
		lib = loaded
		telemetry.Info("scoring.library_loaded", map[string]any{"path": path})
	}
	return scoring.NewEngine(
		scoring.WithLibrary(lib),
		scoring.WithDeterministicFallback(cfg.ScoringDeterministic),
		scoring.WithBatchConcurrency(cfg.BatchConcurrency),
	), nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repositories", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, errors.New("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var repo resumes.DraftsRepo
	if app.DB != nil {
		repo = &resumes.PGRepo{DB: app.DB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	scoresSvc := &scores.Service{
		Engine: app.Engine,
		Store:  app.Store,
	}
	resumesSvc := &resumes.Service{
		Repo:   repo,
		Scorer: scoresSvc,
	}

	app.ResumesRepo = repo
	app.ScoresService = scoresSvc
	app.ResumesService = resumesSvc
	app.ScoresHandler = scores.NewHandler(scoresSvc)
	app.ResumesHandler = resumes.NewHandler(resumesSvc)
	app.Health = health.NewService(app.DB, app.Engine.Library(), app.Config.ObjectStoreType)

	if app.ScoresHandler == nil || app.ResumesHandler == nil {
		return errors.New("failed to initialize handlers")
	}
	return nil
}
