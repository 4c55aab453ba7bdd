// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/observability"

	"gorm.io/gorm"
)

const postsTable = "posts"

// PostRepository defines the interface for post data operations.
// Every method issues exactly one SQL statement.
type PostRepository interface {
	List(ctx context.Context) ([]*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	defer observability.TrackQuery("select", postsTable)()

	posts := make([]*models.Post, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts post and fills in the id assigned by storage.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", postsTable)()

	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID returns gorm.ErrRecordNotFound when no row has the given id.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	defer observability.TrackQuery("select", postsTable)()

	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces title and content of the row matching post.ID and reports
// how many rows matched.
func (r *postRepository) Update(ctx context.Context, post *models.Post) (int64, error) {
	defer observability.TrackQuery("update", postsTable)()

	// map form so empty strings are written rather than skipped as zero values
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		})
	return result.RowsAffected, result.Error
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	defer observability.TrackQuery("delete", postsTable)()

	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}
