package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/microblog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Password{}, &model.Follow{}, &model.Tweet{}))
	return db
}

func seedUser(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()
	ctx := context.Background()
	u, err := repo.Create(ctx, email, "https://example.com/avatar.png", "$2a$10$hash")
	require.NoError(t, err)
	return u
}
