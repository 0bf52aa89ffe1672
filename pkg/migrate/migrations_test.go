package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/washdesk/washdesk-backend/pkg/migrate"
)

func TestInitSchemaMigration(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_init_schema.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no init schema migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE wash_records",
		"CREATE TABLE price_entries",
		"CONSTRAINT idx_price_entries_cell UNIQUE (car_category, wash_type)",
		"company_id uuid NOT NULL REFERENCES companies(id) ON DELETE CASCADE",
		"license_plate text NOT NULL UNIQUE",
		"username text NOT NULL UNIQUE",
		"CREATE INDEX idx_wash_records_created_at ON wash_records(created_at, id)",
		"DROP TABLE IF EXISTS wash_records",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestValidateDirAcceptsBundledMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("bundled migrations failed validation: %v", err)
	}
}
