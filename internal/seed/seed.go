package seed

import (
	"context"
	"fmt"
	"log/slog"

	"postboard/internal/middleware"
	"postboard/internal/models"

	"gorm.io/gorm"
)

const defaultBatchSize = 100

// Options controls how demo data is generated.
type Options struct {
	Count     int
	Clean     bool
	DryRun    bool
	BatchSize int
	// Seed for gofakeit; zero picks a random seed.
	Seed int64
}

func (o Options) batchSize() int {
	if o.BatchSize <= 0 {
		return defaultBatchSize
	}
	return o.BatchSize
}

// Seed optionally clears the posts table and then inserts opts.Count posts.
func Seed(ctx context.Context, db *gorm.DB, opts Options) ([]*models.Post, error) {
	if opts.Clean && !opts.DryRun {
		if err := ClearPosts(ctx, db); err != nil {
			return nil, err
		}
	}

	posts, err := NewFactory(db, opts).CreatePosts(ctx, opts.Count)
	if err != nil {
		return nil, fmt.Errorf("seed posts: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "Seeded posts",
		slog.Int("count", len(posts)),
		slog.Bool("dry_run", opts.DryRun))
	return posts, nil
}

// ClearPosts removes every row from the posts table.
func ClearPosts(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Post{}).Error; err != nil {
		return fmt.Errorf("clear posts: %w", err)
	}
	return nil
}
