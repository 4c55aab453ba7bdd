package database

import (
	"testing"

	modelspkg "postboard/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesPost(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*modelspkg.Post); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include Post")
}
