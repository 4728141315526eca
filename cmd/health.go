package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"carbon-tracker/core/cache"
	"carbon-tracker/core/config"
	"carbon-tracker/core/database"
	"carbon-tracker/core/logger"
	"carbon-tracker/core/storage"
	"carbon-tracker/feature/health"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// healthCmd represents the health command
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database, object storage and cache",
	Long:  `Runs the same checks as GET /health once and prints the report. Exits non-zero when a dependency failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		// A failed connection is reported by the check instead of aborting
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
		}

		var c cache.Cache
		if cfg.Cache.Enabled() {
			rc, err := cache.NewRedis(ctx, cfg.Cache)
			if err != nil {
				logg.Warn("Cache connection failed", zap.Error(err))
			} else {
				defer rc.Close()
				c = rc
			}
		}

		report := health.NewService(db, store, cfg.Storage.Bucket, c, logg).Check(ctx)
		if db == nil {
			report.Status = health.StatusError
			report.Components["database"] = health.ComponentStatus{Status: health.StatusError, Error: "connection failed"}
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		logg.Info("Health check completed",
			zap.String("status", report.Status),
			zap.Duration("execution_time", time.Since(startTime)),
		)

		if !report.Healthy() {
			return fmt.Errorf("service unhealthy")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)
}
