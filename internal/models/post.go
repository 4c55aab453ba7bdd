// Package models contains data structures for the application's domain models.
package models

// Post represents a post record stored in the posts table.
type Post struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"type:text;index" json:"title"`
	Content string `gorm:"type:text;index" json:"content"`
}

// PostInput is the request body accepted by create and update.
// Pointer fields distinguish an absent field from an empty string.
type PostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate reports a validation error when a required field is absent.
func (in PostInput) Validate() error {
	switch {
	case in.Title == nil && in.Content == nil:
		return NewValidationError("Fields 'title' and 'content' are required")
	case in.Title == nil:
		return NewValidationError("Field 'title' is required")
	case in.Content == nil:
		return NewValidationError("Field 'content' is required")
	}
	return nil
}
