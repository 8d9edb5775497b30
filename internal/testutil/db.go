package testutil

import (
	"database/sql"
	"os"
	"testing"

	"mblog/internal/config"
	"mblog/internal/db"
)

// OpenTestDB connects to the test Postgres instance, applies migrations
// and starts from empty tables. Skips the test when TEST_DB_HOST is not
// set so the unit suites stay runnable without a database.
func OpenTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set, skipping postgres test")
	}
	conn, err := db.Open(config.DatabaseConfig{
		Host:     host,
		Port:     5432,
		User:     "mblog",
		Password: "mblog_pass",
		DBName:   "mblog_test",
		SSLMode:  "disable",
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(conn); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if _, err := conn.Exec("TRUNCATE posts, users RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return conn, func() {
		_ = conn.Close()
	}
}
