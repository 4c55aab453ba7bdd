package service

import (
	"context"
	"errors"
	"testing"

	"postboard/internal/database"
	"postboard/internal/models"
	"postboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	listFn    func(context.Context) ([]*models.Post, error)
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, int64) (*models.Post, error)
	updateFn  func(context.Context, *models.Post) (int64, error)
	deleteFn  func(context.Context, int64) error

	deleted []int64
}

func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) (int64, error) {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		listFn:    func(_ context.Context) ([]*models.Post, error) { return []*models.Post{}, nil },
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ int64) (*models.Post, error) { return nil, gorm.ErrRecordNotFound },
		updateFn:  func(_ context.Context, _ *models.Post) (int64, error) { return 0, nil },
		deleteFn:  func(_ context.Context, _ int64) error { return nil },
	}
}

func TestPostService_CreatePost(t *testing.T) {
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 7
		return nil
	}
	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "A", Content: "B"})
	require.NoError(t, err)
	assert.Equal(t, &models.Post{ID: 7, Title: "A", Content: "B"}, post)
}

func TestPostService_CreatePost_StorageError(t *testing.T) {
	repo := noopPostRepo()
	storageErr := errors.New("disk full")
	repo.createFn = func(_ context.Context, _ *models.Post) error { return storageErr }
	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "A", Content: "B"})
	assert.Nil(t, post)
	assert.ErrorIs(t, err, storageErr)
	assert.False(t, models.IsNotFound(err))
}

func TestPostService_GetPost(t *testing.T) {
	tests := []struct {
		name        string
		getByID     func(context.Context, int64) (*models.Post, error)
		expectPost  bool
		expectNotFD bool
	}{
		{
			name: "found",
			getByID: func(_ context.Context, id int64) (*models.Post, error) {
				return &models.Post{ID: id, Title: "A", Content: "B"}, nil
			},
			expectPost: true,
		},
		{
			name: "missing",
			getByID: func(_ context.Context, _ int64) (*models.Post, error) {
				return nil, gorm.ErrRecordNotFound
			},
			expectNotFD: true,
		},
		{
			name: "storage failure",
			getByID: func(_ context.Context, _ int64) (*models.Post, error) {
				return nil, errors.New("connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := noopPostRepo()
			repo.getByIDFn = tt.getByID
			svc := NewPostService(repo)

			post, err := svc.GetPost(context.Background(), 1)
			if tt.expectPost {
				require.NoError(t, err)
				assert.Equal(t, int64(1), post.ID)
				return
			}
			require.Error(t, err)
			assert.Nil(t, post)
			assert.Equal(t, tt.expectNotFD, models.IsNotFound(err))
		})
	}
}

func TestPostService_UpdatePost(t *testing.T) {
	repo := noopPostRepo()
	var written *models.Post
	repo.updateFn = func(_ context.Context, p *models.Post) (int64, error) {
		written = p
		return 1, nil
	}
	svc := NewPostService(repo)

	post, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: 3, Title: "C", Content: "D"})
	require.NoError(t, err)
	assert.Equal(t, &models.Post{ID: 3, Title: "C", Content: "D"}, post)
	assert.Equal(t, post, written)
}

func TestPostService_UpdatePost_MissingIsNotFound(t *testing.T) {
	svc := NewPostService(noopPostRepo())

	post, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: 999999, Title: "C", Content: "D"})
	assert.Nil(t, post)
	assert.True(t, models.IsNotFound(err))
}

func TestPostService_DeletePost(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id int64) (*models.Post, error) {
		return &models.Post{ID: id, Title: "C", Content: "D"}, nil
	}
	svc := NewPostService(repo)

	post, err := svc.DeletePost(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &models.Post{ID: 1, Title: "C", Content: "D"}, post)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestPostService_DeletePost_MissingDoesNotDelete(t *testing.T) {
	repo := noopPostRepo()
	svc := NewPostService(repo)

	post, err := svc.DeletePost(context.Background(), 999999)
	assert.Nil(t, post)
	assert.True(t, models.IsNotFound(err))
	assert.Empty(t, repo.deleted)
}

func TestPostService_ListPosts_Error(t *testing.T) {
	repo := noopPostRepo()
	repo.listFn = func(_ context.Context) ([]*models.Post, error) {
		return nil, errors.New("timeout")
	}
	svc := NewPostService(repo)

	posts, err := svc.ListPosts(context.Background())
	assert.Error(t, err)
	assert.Nil(t, posts)
}

func newSQLiteService(t *testing.T) *PostService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.InitSchema(context.Background(), db))
	return NewPostService(repository.NewPostRepository(db))
}

func TestPostService_Lifecycle(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, CreatePostInput{Title: "A", Content: "B"})
	require.NoError(t, err)

	got, err := svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	for i := 0; i < 3; i++ {
		_, err := svc.CreatePost(ctx, CreatePostInput{Title: "N", Content: "M"})
		require.NoError(t, err)
	}
	all, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 4)
	assert.Contains(t, all, created)

	updated, err := svc.UpdatePost(ctx, UpdatePostInput{PostID: created.ID, Title: "C", Content: "D"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err = svc.GetPost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.Post{ID: created.ID, Title: "C", Content: "D"}, got)

	deleted, err := svc.DeletePost(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, got, deleted)

	_, err = svc.GetPost(ctx, created.ID)
	assert.True(t, models.IsNotFound(err))

	_, err = svc.DeletePost(ctx, created.ID)
	assert.True(t, models.IsNotFound(err))

	remaining, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, len(all)-1)
}
