package repository

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the service tables
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every new connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE dive_sites (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT,
			location_country TEXT,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			depth_m REAL,
			features TEXT,
			webflow_item_id TEXT
		)`,
		`CREATE TABLE reviews (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			site_id TEXT NOT NULL,
			author_id TEXT NOT NULL,
			parent_review_id TEXT,
			thread_depth INTEGER NOT NULL,
			rating INTEGER NOT NULL,
			body TEXT NOT NULL,
			like_count INTEGER NOT NULL DEFAULT 0,
			dislike_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE review_reactions (
			review_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			reaction TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (review_id, user_id)
		)`,
		`CREATE TABLE review_photos (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			review_id TEXT NOT NULL,
			storage_path TEXT NOT NULL
		)`,
		`CREATE TABLE site_stats (
			site_id TEXT PRIMARY KEY,
			avg_rating REAL NOT NULL,
			review_count INTEGER NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE photo_uploads (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			storage_path TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'TEMP',
			file_name TEXT NOT NULL,
			file_size INTEGER NOT NULL,
			content_type TEXT NOT NULL,
			uploaded_by TEXT NOT NULL,
			expires_at DATETIME
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create table: %v", err)
		}
	}

	return db
}
