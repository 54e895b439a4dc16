package test

import (
	"log"
	"os"
	"testing"

	"github.com/salahapp/salah-server/internal/db"
)

var integration bool

func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") != "" {
		if err := db.InitTestDB("../migrations"); err != nil {
			log.Fatalf("failed to init test database: %v", err)
		}
		integration = true
	}
	os.Exit(m.Run())
}

// requireDB skips integration tests when no test database is configured.
func requireDB(t *testing.T) {
	t.Helper()
	if !integration {
		t.Skip("TEST_DATABASE_URL not set")
	}
}
