package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("driver = %q, want %q", cfg.Database.Driver, DriverSQLite)
	}
	if cfg.Notes.Retention != 7*24*time.Hour {
		t.Errorf("retention = %v, want 168h", cfg.Notes.Retention)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.RabbitMQ.Enabled {
		t.Error("rabbitmq should be disabled by default")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Errorf("address = %q", cfg.Server.Address)
	}
	if cfg.Database.Path != "/tmp/other.db" {
		t.Errorf("path = %q", cfg.Database.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		db      DatabaseConfig
		ret     time.Duration
		wantErr bool
	}{
		{"sqlite ok", DatabaseConfig{Driver: DriverSQLite, Path: "a.db"}, time.Hour, false},
		{"sqlite without path", DatabaseConfig{Driver: DriverSQLite}, time.Hour, true},
		{"postgres ok", DatabaseConfig{Driver: DriverPostgres, Host: "db", Name: "planner"}, time.Hour, false},
		{"postgres without host", DatabaseConfig{Driver: DriverPostgres, Name: "planner"}, time.Hour, true},
		{"unknown driver", DatabaseConfig{Driver: "mysql"}, time.Hour, true},
		{"zero retention", DatabaseConfig{Driver: DriverSQLite, Path: "a.db"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.db, Notes: NotesConfig{Retention: tt.ret}}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
