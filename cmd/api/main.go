package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "kisanmitra/internal/common/api"
	"kisanmitra/internal/config"
	"kisanmitra/internal/database"
	"kisanmitra/internal/features/auth"
	"kisanmitra/internal/features/community"
	"kisanmitra/internal/features/croplog"
	"kisanmitra/internal/features/marketplace"
	"kisanmitra/internal/features/scheme"
	"kisanmitra/internal/features/sweeper"
	"kisanmitra/internal/features/system"
	"kisanmitra/internal/features/user"
	"kisanmitra/internal/features/weatheralert"
	"kisanmitra/internal/logger"
	"kisanmitra/internal/middleware"
	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	requestlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware(cfg))
	app.Use(compress.New())
	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later",
			})
		},
	}))
	if cfg.Environment == "development" {
		app.Use(requestlogger.New())
	}

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one, then installs the JSON 404 fallback.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// ConfigureJWT pushes the token secrets and lifetimes from config into the
// token helpers before anything can issue a token.
func ConfigureJWT(cfg *config.Config) {
	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTExpire, cfg.JWTRefreshExpire)
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, mongodb *database.MongodbDB, zlog *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := database.EnsureIndexes(ctx, mongodb.DB); err != nil {
					zlog.Error("failed to ensure indexes", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

// StartAlertHub runs the websocket fan-out loop for the lifetime of the app.
func StartAlertHub(lc fx.Lifecycle, hub *weatheralert.AlertHub) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go hub.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			hub.Stop()
			return nil
		},
	})
}

// StartSweeper schedules the background expiry sweeps.
func StartSweeper(lc fx.Lifecycle, svc sweeper.SweeperService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.InitializeScheduler()
		},
		OnStop: func(ctx context.Context) error {
			return svc.StopScheduler()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Database
			database.NewDatabase,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Repository
			user.NewUserRepository,
			croplog.NewCropLogRepository,
			marketplace.NewListingRepository,
			community.NewPostRepository,
			scheme.NewSchemeRepository,
			weatheralert.NewAlertRepository,

			// Initialize Service
			auth.NewAuthService,
			user.NewUserService,
			croplog.NewCropLogService,
			marketplace.NewListingService,
			community.NewPostService,
			scheme.NewSchemeService,
			weatheralert.NewAlertHub,
			weatheralert.NewAlertService,
			sweeper.NewSweeperService,

			// Interface Adapters to satisfy Fx
			func(r user.UserRepository) middleware.UserFinder { return r },

			// Initialize Controller
			auth.NewAuthController,
			user.NewUserController,
			croplog.NewCropLogController,
			marketplace.NewListingController,
			community.NewPostController,
			scheme.NewSchemeController,
			weatheralert.NewAlertController,

			// Initialize API Routes
			AsRoute(system.NewHealthApi),
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(croplog.NewCropLogApi),
			AsRoute(marketplace.NewListingApi),
			AsRoute(community.NewPostApi),
			AsRoute(scheme.NewSchemeApi),
			AsRoute(weatheralert.NewAlertApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			ConfigureJWT,
			RegisterAllRoutesWithAnnotation,
			StartServer,
			StartAlertHub,
			StartSweeper,
			InitializeIndexes,
		),
	)

	app.Run()
}
