// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "nguvan_backend/internals/databases"
	lessonModel "nguvan_backend/internals/features/lessons/lessons/model"
	userModel "nguvan_backend/internals/features/users/user/model"
	"nguvan_backend/internals/helpers/logger"
)

// DB opens a migrated in-memory sqlite database private to tb.
// A single connection keeps every query on the same :memory: database.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(tb, err)

	sqlDB, err := db.DB()
	require.NoError(tb, err)
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(tb, database.AutoMigrate(db))
	return db
}

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.Nop()
}

func CreateLesson(tb testing.TB, db *gorm.DB, title string) *lessonModel.LessonModel {
	tb.Helper()
	l := &lessonModel.LessonModel{LessonTitle: title}
	require.NoError(tb, db.Create(l).Error)
	return l
}

func CreateUser(tb testing.TB, db *gorm.DB, first, last string) *userModel.UserModel {
	tb.Helper()
	u := &userModel.UserModel{
		UserFirstName: first,
		UserLastName:  last,
		UserEmail:     first + "." + uuid.NewString()[:8] + "@example.test",
	}
	require.NoError(tb, db.Create(u).Error)
	return u
}

func Ptr[T any](v T) *T { return &v }
