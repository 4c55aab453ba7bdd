// Package seed provides helpers to create demo posts for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"log/slog"
	"strings"

	"postboard/internal/middleware"
	"postboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds posts and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID int64
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
// A non-zero opts.Seed makes the generated content reproducible.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(opts.Seed)
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// BuildPost constructs a post populated with fake content but does not
// persist it.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:   strings.TrimSuffix(gofakeit.Sentence(5), "."),
		Content: gofakeit.Paragraph(1, 3, 8, "\n"),
	}
	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost builds and persists a single post.
func (f *Factory) CreatePost(ctx context.Context, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(overrides...)
	if f.opts.DryRun {
		f.nextID++
		post.ID = f.nextID
		middleware.Logger.InfoContext(ctx, "[dry-run] CreatePost", slog.Int64("id", post.ID))
		return post, nil
	}
	if err := f.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePosts persists count generated posts in batches.
func (f *Factory) CreatePosts(ctx context.Context, count int) ([]*models.Post, error) {
	if count <= 0 {
		return nil, nil
	}
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, f.BuildPost())
	}

	if f.opts.DryRun {
		for _, p := range posts {
			f.nextID++
			p.ID = f.nextID
		}
		middleware.Logger.InfoContext(ctx, "[dry-run] CreatePosts", slog.Int("count", len(posts)))
		return posts, nil
	}

	if err := f.db.WithContext(ctx).CreateInBatches(posts, f.opts.batchSize()).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
