// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Ranker  RankerConfig  `mapstructure:"ranker"`
}

// AppConfig identifies the running binary.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig holds default input locations for the CLI harness.
type CatalogConfig struct {
	SchemesPath string `mapstructure:"schemes_path"`
	ProfilePath string `mapstructure:"profile_path"`
}

// RankerConfig holds the composite-score policy knobs. These mirror
// recommend.Config; the engine itself never reads configuration implicitly.
type RankerConfig struct {
	PriorityCategoryBonus   float64 `mapstructure:"priority_category_bonus"`
	BenefitBonusMax         float64 `mapstructure:"benefit_bonus_max"`
	BenefitReferenceAmount  float64 `mapstructure:"benefit_reference_amount"`
	UrgencyBonus            float64 `mapstructure:"urgency_bonus"`
	DeadlineHorizonDays     int     `mapstructure:"deadline_horizon_days"`
	HighPriorityThreshold   float64 `mapstructure:"high_priority_threshold"`
	MediumPriorityThreshold float64 `mapstructure:"medium_priority_threshold"`
	Workers                 int     `mapstructure:"workers"`
}
