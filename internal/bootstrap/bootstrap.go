package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/alumnihub/internal/app/controllers"
	appMigrations "github.com/yigit/alumnihub/internal/app/migrations"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	appRepos "github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/app/repositories/mockapi"
	"github.com/yigit/alumnihub/internal/app/repositories/mockdata"
	"github.com/yigit/alumnihub/internal/app/repositories/remote"
	appRoutes "github.com/yigit/alumnihub/internal/app/routes"
	appServices "github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/config"
	"github.com/yigit/alumnihub/internal/db"
	appMiddleware "github.com/yigit/alumnihub/internal/middleware"
	pkgAuth "github.com/yigit/alumnihub/internal/pkg/auth"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
	"github.com/yigit/alumnihub/internal/pkg/helpers"
	"github.com/yigit/alumnihub/internal/pkg/logger"
	"github.com/yigit/alumnihub/internal/seed"
)

// DefaultConfigPath is read when no config path is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config      *config.Config
	Store       *mockdata.Store // nil when the remote API is used
	Sources     appRepos.DataSources
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	AdminAuth   *appMiddleware.AdminAuth
	JWTService  *pkgAuth.JWTService
	Logger      zerolog.Logger

	closers []func()
}

// Close releases connections opened for persistence
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = config.GetEnv("ALUMNI_CONFIG", DefaultConfigPath)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}
	return cfg, SetupLogger(cfg, os.Stdout), nil
}

// SetupLogger configures the global logger from cfg, writing to out.
func SetupLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		Output: out,
	})

	lgr := logger.Get()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return lgr
}

// SetupPersistence opens the backend the mock store writes collections to.
// The returned func closes whatever connection was opened.
func SetupPersistence(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (mockdata.Source, func(), error) {
	noop := func() {}

	switch cfg.Mock.Persistence {
	case config.PersistenceFile:
		files, err := filestorage.NewLocalStorage(cfg.Mock.DataDir)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		lgr.Info().Str("dir", cfg.Mock.DataDir).Msg("Mock collections persisted to files")
		return mockdata.NewFileSource(files), noop, nil

	case config.PersistenceRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("failed to connect to redis: %w", err)
		}
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Mock collections persisted to redis")
		return mockdata.NewRedisSource(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	case config.PersistencePostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(database, lgr).Migrate(ctx); err != nil {
			database.Close()
			return nil, noop, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Mock collections persisted to postgres")
		return mockdata.NewPostgresSource(database.Pool), database.Close, nil

	default:
		return mockdata.NewMemorySource(), noop, nil
	}
}

// SetupStore builds the mock store: persisted collections layered over the seed document.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*mockdata.Store, func(), error) {
	raw, err := seed.Load(cfg.Mock.SeedPath)
	if err != nil {
		return nil, func() {}, err
	}

	persist, closeFn, err := SetupPersistence(ctx, cfg, lgr)
	if err != nil {
		return nil, closeFn, err
	}

	if cfg.Mock.SeedOnStart && cfg.Mock.Persistence != config.PersistenceMemory {
		if _, err := seed.Populate(ctx, raw, persist, lgr); err != nil {
			// Unseeded collections still fall back to the seed layer
			lgr.Error().Err(err).Msg("Failed to seed persistence, proceeding anyway...")
		}
	}

	store := mockdata.NewStore(
		mockdata.NewLayeredSource(mockdata.NewSeedSource(raw), persist),
		mockdata.WithLogger(logger.Component("mockdata")),
	)
	return store, closeFn, nil
}

// BuildDataSources picks the mock or the remote data sources once, at composition time.
func BuildDataSources(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.DataSources, *mockdata.Store, func(), error) {
	if cfg.ShouldUseMockAPI() {
		store, closeFn, err := SetupStore(ctx, cfg, lgr)
		if err != nil {
			return appRepos.DataSources{}, nil, closeFn, err
		}
		lgr.Info().Str("persistence", cfg.Mock.Persistence).Str("latency", cfg.Mock.Latency).Msg("Using mock API")
		sources := mockapi.NewDataSources(store, mockapi.Options{
			Latency: helpers.ParseDuration(cfg.Mock.Latency, mockapi.DefaultLatency),
			Logger:  logger.Component("mockapi"),
		})
		return sources, store, closeFn, nil
	}

	client, err := remote.NewClient(remote.Config{
		BaseURL:    cfg.API.BaseURL,
		Token:      cfg.API.Token,
		Timeout:    helpers.ParseDuration(cfg.API.Timeout, 10*time.Second),
		MaxRetries: cfg.API.MaxRetries,
		RetryDelay: helpers.ParseDuration(cfg.API.RetryDelay, 200*time.Millisecond),
	}, logger.Component("remote"))
	if err != nil {
		return appRepos.DataSources{}, nil, func() {}, fmt.Errorf("failed to create API client: %w", err)
	}
	lgr.Info().Str("baseUrl", cfg.API.BaseURL).Msg("Using remote API")
	return remote.NewDataSources(client), nil, func() {}, nil
}

// BuildDependencies initializes data sources, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Config: cfg, Logger: lgr}

	sources, store, closeFn, err := BuildDataSources(ctx, cfg, lgr)
	deps.closers = append(deps.closers, closeFn)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Store = store
	deps.Sources = sources

	deps.Services = appServices.NewServices(sources)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	deps.JWTService = NewJWTService(cfg)
	deps.AdminAuth = appMiddleware.NewAdminAuth(cfg.Auth.AdminTokenHash, deps.JWTService, logger.Component("auth"))

	return deps, nil
}

// NewJWTService builds the admin token service from the auth section.
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.JWTSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.Auth.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.Auth.JWTIssuer,
	})
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	router.Use(appMiddleware.CORS(appMiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		MaxAge:       helpers.ParseDuration(cfg.CORS.MaxAge, 12*time.Hour),
	}))
	if cfg.RateLimit.Enabled {
		router.Use(appMiddleware.RateLimiter(appMiddleware.RateLimitConfig{
			Limit:  int64(cfg.RateLimit.Limit),
			Period: helpers.ParseDuration(cfg.RateLimit.Period, time.Minute),
		}))
	}

	router.NoRoute(func(c *gin.Context) {
		appMiddleware.AbortWithError(c, dto.NotFoundDetail("Route not found: "+c.Request.Method+" "+c.Request.URL.Path))
	})

	appRoutes.SetupRouter(router, deps.Controllers, deps.AdminAuth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
