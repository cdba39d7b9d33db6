package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `database:
  host: db.internal
  port: 5433
  dbname: finance
  user: haibun
  password: secret
  sslmode: require
csv:
  currency: "$"
  skiprows: 1
  stoprows: 2
  item_column: 1
  value_column: 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 5433 {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.CSV.Currency != "$" || cfg.CSV.SkipRows != 1 || cfg.CSV.StopRows != 2 {
		t.Errorf("unexpected csv config: %+v", cfg.CSV)
	}
	if cfg.CSV.ItemColumn != 1 || cfg.CSV.ValueColumn != 3 {
		t.Errorf("unexpected csv columns: %+v", cfg.CSV)
	}

	want := "host=db.internal port=5433 user=haibun password=secret dbname=finance sslmode=require"
	if got := cfg.Database.ConnString(); got != want {
		t.Errorf("ConnString() = %q, want %q", got, want)
	}
}

func TestBuildAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database:\n  host: localhost\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("default port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.CSV.ItemColumn != 1 || cfg.CSV.ValueColumn != 2 {
		t.Errorf("default columns = %+v", cfg.CSV)
	}
}

func TestBuildEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database:\n  password: fromfile\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HAIBUN_DATABASE_PASSWORD", "fromenv")

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.Database.Password != "fromenv" {
		t.Errorf("password = %q, want env override", cfg.Database.Password)
	}
}

func TestBuildCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Build("", nil)
	if !errors.Is(err, ErrCreated) {
		t.Fatalf("first Build error = %v, want ErrCreated", err)
	}

	// The created file is readable on the next run.
	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if cfg.Database.DBName != "database_name" {
		t.Errorf("created file dbname = %q, want placeholder", cfg.Database.DBName)
	}
}

func TestBuildMissingExplicitFile(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("Build accepted a missing explicit config file")
	}
}
