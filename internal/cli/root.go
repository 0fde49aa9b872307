// internal/cli/root.go
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scheme-recommender/internal/common/config"
	"scheme-recommender/internal/common/logger"
)

const app = "recommender"

var (
	cfgFile  string
	nowFlag  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "recommender evaluates government scheme eligibility and ranks recommendations for a user profile",
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "reference time as RFC3339 (default is the current time)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override: debug, info, warn, error")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) logger.Logger {
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	return logger.NewStructured(level, cfg.Logging.Format)
}

// referenceTime resolves the injected clock. Every age and deadline
// computation downstream uses this single instant.
func referenceTime() (time.Time, error) {
	if nowFlag == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --now: %w", err)
	}
	return t.UTC(), nil
}
