// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like RANKER_WORKERS
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent.
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "scheme-recommender"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.Ranker.PriorityCategoryBonus == 0 {
		cfg.Ranker.PriorityCategoryBonus = 10
	}
	if cfg.Ranker.BenefitBonusMax == 0 {
		cfg.Ranker.BenefitBonusMax = 10
	}
	if cfg.Ranker.BenefitReferenceAmount == 0 {
		cfg.Ranker.BenefitReferenceAmount = 100000
	}
	if cfg.Ranker.UrgencyBonus == 0 {
		cfg.Ranker.UrgencyBonus = 5
	}
	if cfg.Ranker.DeadlineHorizonDays == 0 {
		cfg.Ranker.DeadlineHorizonDays = 30
	}
	if cfg.Ranker.HighPriorityThreshold == 0 {
		cfg.Ranker.HighPriorityThreshold = 80
	}
	if cfg.Ranker.MediumPriorityThreshold == 0 {
		cfg.Ranker.MediumPriorityThreshold = 50
	}
	if cfg.Ranker.Workers == 0 {
		cfg.Ranker.Workers = 4
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Logging.Level != "debug" && cfg.Logging.Level != "info" &&
		cfg.Logging.Level != "warn" && cfg.Logging.Level != "error" {
		return fmt.Errorf("unknown logging level %q", cfg.Logging.Level)
	}
	if cfg.Ranker.DeadlineHorizonDays < 0 {
		return fmt.Errorf("deadline horizon must be non-negative, got %d", cfg.Ranker.DeadlineHorizonDays)
	}
	if cfg.Ranker.Workers < 1 {
		return fmt.Errorf("ranker workers must be at least 1, got %d", cfg.Ranker.Workers)
	}
	if cfg.Ranker.MediumPriorityThreshold > cfg.Ranker.HighPriorityThreshold {
		return fmt.Errorf("medium priority threshold %v exceeds high threshold %v",
			cfg.Ranker.MediumPriorityThreshold, cfg.Ranker.HighPriorityThreshold)
	}
	return nil
}
