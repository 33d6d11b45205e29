package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Data.Path != "./school_data.json" {
			t.Errorf("expected data path ./school_data.json, got %s", config.Data.Path)
		}

		if config.Database.Path != "./registrar.db" {
			t.Errorf("expected database path ./registrar.db, got %s", config.Database.Path)
		}

		if !config.Catalog.Seed {
			t.Error("expected catalog seeding to be enabled by default")
		}

		if len(config.Catalog.Courses) != 3 {
			t.Fatalf("expected 3 catalog courses, got %d", len(config.Catalog.Courses))
		}

		if config.Catalog.Courses[0].ID != "CS101" {
			t.Errorf("expected first catalog course CS101, got %s", config.Catalog.Courses[0].ID)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Data.Path != defaultConfig.Data.Path {
			t.Errorf("created config data path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[data]
path = "/custom/records.json"
csv_path = "/custom/records.csv"

[database]
path = "/custom/path.db"
max_open_conns = 2
max_idle_conns = 1

[log]
level = "debug"

[catalog]
seed = false
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Data.Path != "/custom/records.json" {
			t.Errorf("expected data path /custom/records.json, got %s", config.Data.Path)
		}

		if config.Database.MaxOpenConns != 2 {
			t.Errorf("expected max_open_conns 2, got %d", config.Database.MaxOpenConns)
		}

		if config.Catalog.Seed {
			t.Error("expected catalog seeding to be disabled")
		}

		if len(config.Catalog.Courses) != 0 {
			t.Errorf("expected no catalog courses, got %d", len(config.Catalog.Courses))
		}
	})

	t.Run("LoadConfig applies environment overrides", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")
		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		t.Setenv("REGISTRAR_DATA_PATH", "/env/records.json")
		t.Setenv("REGISTRAR_LOG_LEVEL", "warn")

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Data.Path != "/env/records.json" {
			t.Errorf("expected env data path, got %s", config.Data.Path)
		}
		if config.Log.Level != "warn" {
			t.Errorf("expected env log level warn, got %s", config.Log.Level)
		}
		if config.Database.Path != "./registrar.db" {
			t.Errorf("expected database path to keep file value, got %s", config.Database.Path)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("LoadConfig rejects invalid config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")
		if err := os.WriteFile(configPath, []byte("[data]\npath = \"\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig rejects malformed toml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")
		if err := os.WriteFile(configPath, []byte("[data\npath = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
