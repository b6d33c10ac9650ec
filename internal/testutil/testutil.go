// Package testutil 提供测试用的 SQLite 数据库和配置
package testutil

import (
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/pkg/database"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestJWTSecret = "test-secret-test-secret-test-secret"

// NewDB 每个测试一个临时文件数据库，表结构与线上迁移一致
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// NewConfig 与 configs/config.yaml 的默认值一致，关闭限流和缓存
func NewConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "5000", Mode: "test"},
		JWT: config.JWTConfig{
			Secret:     TestJWTSecret,
			ExpireTime: time.Hour,
		},
		CORS:        config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Stats:       config.StatsConfig{DefaultAvgTime: 15},
		Leaderboard: config.LeaderboardConfig{Limit: 50},
	}
}

func CreateTopic(t *testing.T, db *gorm.DB, slug string) *model.Topic {
	t.Helper()
	topic := &model.Topic{Slug: slug, Name: slug}
	require.NoError(t, db.Create(topic).Error)
	return topic
}

func CreateQuestion(t *testing.T, db *gorm.DB, title string, difficulty model.Difficulty, topicSlug string) *model.Question {
	t.Helper()
	question := &model.Question{
		Title:      title,
		Difficulty: difficulty,
		Link:       "https://leetcode.com/problems/" + title,
		TopicSlug:  topicSlug,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
