package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-dashboard/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection used by repository tests
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and skips the test when it
// is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	setup := &TestDatabaseSetup{DB: db}
	t.Cleanup(setup.Close)
	return setup
}

// ResetTables recreates the schema and empties every table
func (s *TestDatabaseSetup) ResetTables(ctx context.Context) error {
	if _, err := s.DB.Exec(ctx, postgresql.Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	for _, table := range []string{"attendance_records", "employees"} {
		_, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}

// Close closes the database connection
func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
