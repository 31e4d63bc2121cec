package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	ScriptPath    string
	OutputPath    string
	DatabaseURL   string
	Provider      string
	WatchDebounce time.Duration
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".ddlplan")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "ddlplan"))

	// Set environment variable prefix
	viper.SetEnvPrefix("DDLPLAN")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("script_path", "schema.sql")
	viper.SetDefault("output_path", "plan.sql")
	viper.SetDefault("provider", "postgres")
	viper.SetDefault("watch_debounce", 500*time.Millisecond)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		ScriptPath:    viper.GetString("script_path"),
		OutputPath:    viper.GetString("output_path"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Provider:      viper.GetString("provider"),
		WatchDebounce: viper.GetDuration("watch_debounce"),
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("script_path", cfg.ScriptPath)
	viper.Set("output_path", cfg.OutputPath)
	viper.Set("provider", cfg.Provider)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "ddlplan")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configPath, ".ddlplan.yaml")
	return viper.WriteConfigAs(configFile)
}
