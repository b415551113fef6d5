package services

import (
	"testing"

	"clefmusic-api/internal/db"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open("sqlite://file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	if err := db.RunMigrations(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return database
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
