package database

import (
	"fmt"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	if dbURL := os.Getenv("TEST_DATABASE_URL"); dbURL != "" {
		var err error
		testDB, err = SetupTestDB(dbURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to setup test database: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure postgres is running and TEST_DATABASE_URL points at it\n")
			os.Exit(1)
		}
	}

	code := m.Run()

	TeardownTestDB(testDB)

	os.Exit(code)
}
