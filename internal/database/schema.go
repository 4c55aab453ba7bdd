package database

import (
	"context"
	"fmt"

	"postboard/internal/middleware"

	"gorm.io/gorm"
)

// InitSchema creates the tables for PersistentModels when they are absent.
// It is safe to run repeatedly and never drops columns or data.
func InitSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "Database schema ready")
	return nil
}
