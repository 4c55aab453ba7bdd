// Package bootstrap prepares the runtime dependencies shared by the server
// and the command line tools.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"postboard/internal/cache"
	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/middleware"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database, creates the schema if needed and
// connects to Redis when REDIS_URL is set. An unreachable Redis is logged and
// yields a nil client so the service still starts with rate limiting off.
func InitRuntime(ctx context.Context, cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := database.InitSchema(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}

	r, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Redis unavailable, continuing without rate limiting",
			slog.String("error", err.Error()))
		r = nil
	}

	return db, r, nil
}
