package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carbon-tracker/core/apidoc"
	"carbon-tracker/core/cache"
	"carbon-tracker/core/carbonapi"
	"carbon-tracker/core/config"
	"carbon-tracker/core/database"
	"carbon-tracker/core/loader"
	"carbon-tracker/core/logger"
	"carbon-tracker/core/middleware/auth"
	"carbon-tracker/core/middleware/cors"
	"carbon-tracker/core/middleware/rayid"
	"carbon-tracker/core/storage"

	"carbon-tracker/feature/carbonevent"
	"carbon-tracker/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the carbon tracker server",
	Long:  `Starts the HTTP server, publishes the API document and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration (an invalid port stops here)
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Carbon Interface client, cached when Redis is configured
		var estimator carbonapi.Estimator = carbonapi.NewClient(cfg.Carbon)
		var estimateCache cache.Cache
		if cfg.Cache.Enabled() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			rc, err := cache.NewRedis(ctx, cfg.Cache)
			cancel()
			if err != nil {
				logg.Warn("Estimate cache unavailable, continuing without it", zap.Error(err))
			} else {
				defer rc.Close()
				estimateCache = rc
				estimator = carbonapi.NewCachedEstimator(estimator, rc, cfg.Cache.TTL(), logg)
				logg.Info("Estimate cache enabled", zap.String("address", cfg.Cache.Address))
			}
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		events := carbonevent.NewService(carbonevent.NewRepository(db), estimator, store, cfg.Storage.Bucket, cfg.Storage.Region, logg)
		mgr.Register(carbonevent.NewFeature(events))
		mgr.Register(health.NewFeature(health.NewService(db, store, cfg.Storage.Bucket, estimateCache, logg)))

		// 7. API Document with the local server entry
		spec, err := buildSpec(mgr, cfg)
		if err != nil {
			logg.Fatal("Failed to build API document", zap.Error(err))
		}
		if err := apidoc.Register(swag.Name, spec); err != nil {
			logg.Fatal("Failed to register API document", zap.Error(err))
		}

		// 8. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		app.Use(recover.New())

		// RayID must come before logging to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(cors.New(cfg.Server.CorsOrigins))

		// API documentation is public
		apidoc.NewHandler(spec).RegisterRoutes(app)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 9. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.Int("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
