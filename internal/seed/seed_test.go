package seed

import (
	"context"
	"testing"

	"postboard/internal/database"
	"postboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
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
	return db
}

func countPosts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Post{}).Count(&n).Error)
	return n
}

func TestBuildPost(t *testing.T) {
	f := NewFactory(nil, Options{Seed: 42})

	p := f.BuildPost()
	assert.NotEmpty(t, p.Title)
	assert.NotEmpty(t, p.Content)
	assert.Zero(t, p.ID)

	p = f.BuildPost(func(p *models.Post) { p.Title = "fixed" })
	assert.Equal(t, "fixed", p.Title)
}

func TestCreatePosts_DryRunAssignsSyntheticIDs(t *testing.T) {
	f := NewFactory(nil, Options{DryRun: true})

	posts, err := f.CreatePosts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, int64(1001), posts[0].ID)
	assert.Equal(t, int64(1003), posts[2].ID)
}

func TestSeed_InsertsAndCleans(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()

	posts, err := Seed(ctx, db, Options{Count: 7, BatchSize: 3})
	require.NoError(t, err)
	assert.Len(t, posts, 7)
	assert.Equal(t, int64(7), countPosts(t, db))
	for _, p := range posts {
		assert.NotZero(t, p.ID)
	}

	_, err = Seed(ctx, db, Options{Count: 2, Clean: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), countPosts(t, db))
}

func TestSeed_ZeroCount(t *testing.T) {
	db := setupSQLiteDB(t)

	posts, err := Seed(context.Background(), db, Options{})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, countPosts(t, db))
}

func TestCreatePost_PersistsOverrides(t *testing.T) {
	db := setupSQLiteDB(t)
	f := NewFactory(db, Options{})

	p, err := f.CreatePost(context.Background(), func(p *models.Post) { p.Content = "" })
	require.NoError(t, err)

	var stored models.Post
	require.NoError(t, db.First(&stored, p.ID).Error)
	assert.Equal(t, p.Title, stored.Title)
	assert.Equal(t, "", stored.Content)
}
