package repository_test

import (
	"testing"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/callbridge/callbridge/internal/repository"
)

func TestRepositoryImpl_Accessors(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)

	tests := []struct {
		name     string
		validate func(t *testing.T, repo repository.Repository)
	}{
		{
			name: "sub-repositories are not nil",
			validate: func(t *testing.T, repo repository.Repository) {
				assert.NotNil(t, repo.Call())
				assert.NotNil(t, repo.Conversation())
				assert.NotNil(t, repo.Message())
				assert.NotNil(t, repo.Lead())
			},
		},
		{
			name: "accessors return the same instance",
			validate: func(t *testing.T, repo repository.Repository) {
				assert.Equal(t, repo.Call(), repo.Call())
				assert.Equal(t, repo.Conversation(), repo.Conversation())
				assert.Equal(t, repo.Message(), repo.Message())
				assert.Equal(t, repo.Lead(), repo.Lead())
			},
		},
		{
			name: "ping reports a healthy connection",
			validate: func(t *testing.T, repo repository.Repository) {
				assert.NoError(t, repo.Ping())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, repo)
		})
	}
}

func TestRepositoryImpl_PingClosedConnection(t *testing.T) {
	db, cleanup := setupTestDB(t)
	repo := repository.NewRepository(db)
	cleanup()

	assert.Error(t, repo.Ping())
}
