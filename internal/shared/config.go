package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Values may be overridden by the environment variables named in the env tags.
type Config struct {
	Data     DataConfig     `toml:"data"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// DataConfig locates the session document and its exports.
type DataConfig struct {
	Path    string `toml:"path" env:"REGISTRAR_DATA_PATH"`
	CSVPath string `toml:"csv_path" env:"REGISTRAR_CSV_PATH"`
	Pretty  bool   `toml:"pretty" env:"REGISTRAR_DATA_PRETTY"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path" env:"REGISTRAR_DATABASE_PATH"`
	MaxOpenConns int    `toml:"max_open_conns" env:"REGISTRAR_DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns int    `toml:"max_idle_conns" env:"REGISTRAR_DATABASE_MAX_IDLE_CONNS"`
}

// LogConfig controls logger verbosity and the TUI log destination.
type LogConfig struct {
	Level   string `toml:"level" env:"REGISTRAR_LOG_LEVEL"`
	TUIFile string `toml:"tui_file" env:"REGISTRAR_LOG_TUI_FILE"`
}

// CatalogConfig lists the courses seeded into a fresh session.
type CatalogConfig struct {
	Seed    bool            `toml:"seed" env:"REGISTRAR_CATALOG_SEED"`
	Courses []CatalogCourse `toml:"courses"`
}

// CatalogCourse is a single seeded course.
type CatalogCourse struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path,
// then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := ApplyEnv(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// ApplyEnv overrides config fields from their REGISTRAR_* environment variables.
func ApplyEnv(config *Config) error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("%w: failed to read environment: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate reports missing paths that every command depends on.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("%w: data.path is required", ErrInvalidConfig)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is required", ErrInvalidConfig)
	}
	for i, course := range c.Catalog.Courses {
		if course.ID == "" {
			return fmt.Errorf("%w: catalog.courses[%d] has no id", ErrInvalidConfig, i)
		}
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := WriteFileAtomic(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
