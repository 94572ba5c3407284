package database_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/image-processing/pkg/database"
	"github.com/JaimeStill/image-processing/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &database.Config{Name: "images", User: "plugin"}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want %q", cfg.Host, "localhost")
	}
	if cfg.Port != 5432 {
		t.Errorf("Port = %d, want %d", cfg.Port, 5432)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want %q", cfg.SSLMode, "disable")
	}
	if !cfg.MigrateOnStart() {
		t.Error("MigrateOnStart() = false, want true by default")
	}
}

func TestConfig_Finalize_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
	}{
		{"missing name", database.Config{User: "u"}},
		{"missing user", database.Config{Name: "n"}},
		{"bad lifetime", database.Config{Name: "n", User: "u", ConnMaxLifetime: "forever"}},
		{"bad timeout", database.Config{Name: "n", User: "u", ConnTimeout: "soon"}},
		{"bad ssl mode", database.Config{Name: "n", User: "u", SSLMode: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := cfg.Finalize(nil); err == nil {
				t.Error("Finalize() succeeded, want error")
			}
		})
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "6543")
	t.Setenv("TEST_DB_AUTO_MIGRATE", "false")

	cfg := &database.Config{Name: "images", User: "plugin"}
	env := &database.Env{Host: "TEST_DB_HOST", Port: "TEST_DB_PORT", AutoMigrate: "TEST_DB_AUTO_MIGRATE"}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "db.internal" {
		t.Errorf("Host = %q, want %q", cfg.Host, "db.internal")
	}
	if cfg.Port != 6543 {
		t.Errorf("Port = %d, want %d", cfg.Port, 6543)
	}
	if cfg.MigrateOnStart() {
		t.Error("MigrateOnStart() = true, want false from env")
	}
}

func TestConfig_Merge(t *testing.T) {
	off := false
	base := &database.Config{Host: "a", Name: "base", User: "u"}
	base.Merge(&database.Config{Host: "b", AutoMigrate: &off})

	if base.Host != "b" {
		t.Errorf("Host = %q, want %q", base.Host, "b")
	}
	if base.Name != "base" {
		t.Errorf("Name = %q, want %q", base.Name, "base")
	}
	if base.MigrateOnStart() {
		t.Error("MigrateOnStart() = true after overlay disabled it")
	}
}

func TestConfig_Dsn(t *testing.T) {
	cfg := &database.Config{Name: "images", User: "plugin", Password: "pw"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	dsn := cfg.Dsn()
	for _, part := range []string{"host=localhost", "port=5432", "dbname=images", "user=plugin", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("Dsn() = %q, missing %q", dsn, part)
		}
	}
}

func TestPing_NotReadyBeforeStart(t *testing.T) {
	cfg := &database.Config{Name: "images", User: "plugin"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys, err := database.New(cfg, nil, logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer sys.Connection().Close()

	if err := sys.Ping(context.Background()); !errors.Is(err, database.ErrNotReady) {
		t.Errorf("Ping() error = %v, want %v", err, database.ErrNotReady)
	}
}
