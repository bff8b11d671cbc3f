package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createTeamMemberTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		bio TEXT NOT NULL,
		photo_url TEXT,
		connect_email TEXT,
		book_links TEXT NOT NULL DEFAULT '[]',
		social_links TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPressReleaseTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE press_releases (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT,
		content TEXT NOT NULL,
		excerpt TEXT NOT NULL,
		publish_date DATETIME NOT NULL,
		author TEXT,
		category TEXT,
		tags TEXT NOT NULL DEFAULT '[]',
		featured_image_url TEXT,
		attachments TEXT NOT NULL DEFAULT '[]',
		is_published BOOLEAN NOT NULL DEFAULT false,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAssetTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE assets (
		id TEXT PRIMARY KEY,
		path TEXT NOT NULL UNIQUE,
		url TEXT NOT NULL,
		content_type TEXT NOT NULL,
		size INTEGER NOT NULL,
		kind TEXT NOT NULL,
		uploaded_by TEXT,
		created_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
