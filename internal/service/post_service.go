// Package service implements the post operations on top of the repository.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/observability"
	"postboard/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	Title   string
	Content string
}

type UpdatePostInput struct {
	PostID  int64
	Title   string
	Content string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ListPosts returns every stored post ordered by id.
func (s *PostService) ListPosts(ctx context.Context) (posts []*models.Post, err error) {
	ctx, done := s.begin(ctx, "list")
	defer func() { done(err) }()

	posts, err = s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// CreatePost inserts a new post; storage assigns the id. Empty strings are
// accepted and identical posts are not deduplicated.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (post *models.Post, err error) {
	ctx, done := s.begin(ctx, "create")
	defer func() { done(err) }()

	post = &models.Post{Title: in.Title, Content: in.Content}
	if err = s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetPost returns the post with the given id or a Not-Found AppError.
func (s *PostService) GetPost(ctx context.Context, postID int64) (post *models.Post, err error) {
	ctx, done := s.begin(ctx, "get", attribute.Int64("post.id", postID))
	defer func() { done(err) }()

	return s.getPost(ctx, postID)
}

// UpdatePost replaces title and content of an existing post. A missing id is
// reported as Not-Found, the same as DeletePost.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (post *models.Post, err error) {
	ctx, done := s.begin(ctx, "update", attribute.Int64("post.id", in.PostID))
	defer func() { done(err) }()

	post = &models.Post{ID: in.PostID, Title: in.Title, Content: in.Content}
	rows, err := s.postRepo.Update(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", in.PostID, err)
	}
	if rows == 0 {
		return nil, models.NewNotFoundError("Post")
	}
	return post, nil
}

// DeletePost removes the post and returns its pre-deletion contents.
func (s *PostService) DeletePost(ctx context.Context, postID int64) (post *models.Post, err error) {
	ctx, done := s.begin(ctx, "delete", attribute.Int64("post.id", postID))
	defer func() { done(err) }()

	post, err = s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err = s.postRepo.Delete(ctx, postID); err != nil {
		return nil, fmt.Errorf("delete post %d: %w", postID, err)
	}
	return post, nil
}

func (s *PostService) getPost(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post")
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}
	return post, nil
}

// begin opens a span for op and returns a completion func that records the
// outcome on the span, the operation counter and, for failures, the log.
func (s *PostService) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	span, ctx := observability.NewSpan(ctx, "PostService."+op, attrs...)
	return ctx, func(err error) {
		defer span.End()

		switch {
		case err == nil:
			observability.PostOperations.WithLabelValues(op, observability.OutcomeOK).Inc()
		case models.IsNotFound(err):
			observability.PostOperations.WithLabelValues(op, observability.OutcomeNotFound).Inc()
		default:
			observability.PostOperations.WithLabelValues(op, observability.OutcomeError).Inc()
			span.SetError(err)
			middleware.Logger.ErrorContext(ctx, "post operation failed",
				slog.String("operation", op),
				slog.String("error", err.Error()))
		}
	}
}
