// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"planner-workers/internal/engine"
)

const defaultEnvironment = "development"

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml on top
// and expands ${VAR} placeholders. A missing base file is not an error.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = defaultEnvironment
	}
	v.SetConfigName("config." + env)
	_ = v.MergeInConfig()

	return decode(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	// CAMUNDA_BROKER_ADDRESS overrides camunda.broker_address
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile loads the first .env found walking up to the module root.
// Variables already set in the process win.
func loadEnvFile() string {
	possiblePaths := []string{".env", "../.env", "../../.env", "../../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

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
			return ""
		}
		dir = parent
	}
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok || !strings.Contains(strVal, "$") {
			continue
		}
		if expanded := os.ExpandEnv(strVal); expanded != strVal && expanded != "" {
			v.Set(key, expanded)
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "planner-workers"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = defaultEnvironment
	}

	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}
	if cfg.Camunda.ConnectRetries == 0 {
		cfg.Camunda.ConnectRetries = 5
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5000
	}

	for key, worker := range cfg.Workers {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = 5
		}
		if worker.Timeout == 0 {
			worker.Timeout = 30000
		}
		if worker.MaxRetries == 0 {
			worker.MaxRetries = 3
		}
		cfg.Workers[key] = worker
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required")
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	e := cfg.Engine
	if e.Projection.AdSpendRatio < 0 || e.Projection.AdSpendRatio > 1 {
		return fmt.Errorf("engine.projection.ad_spend_ratio must be within [0, 1]")
	}
	if e.Projection.CloseRate < 0 || e.Projection.CloseRate > 1 {
		return fmt.Errorf("engine.projection.close_rate must be within [0, 1]")
	}
	if e.Projection.CostPerClick < 0 {
		return fmt.Errorf("engine.projection.cost_per_click must not be negative")
	}
	if !sort.SliceIsSorted(e.Maturity.Tiers, func(i, j int) bool {
		return e.Maturity.Tiers[i].Below < e.Maturity.Tiers[j].Below
	}) {
		return fmt.Errorf("engine.maturity.tiers must be ascending by below")
	}
	for _, tier := range e.Maturity.Tiers {
		if tier.Factor <= 0 || tier.Factor > 1 {
			return fmt.Errorf("engine.maturity.tiers factor %v must be within (0, 1]", tier.Factor)
		}
	}
	if !engine.MonotonicTiers(e.Maturity.Tiers) {
		return fmt.Errorf("engine.maturity.tiers factors must not decrease as the budget grows")
	}
	if n := len(e.Maturity.Tiers); n > 0 && e.Maturity.TopFactor != 0 && e.Maturity.TopFactor < e.Maturity.Tiers[n-1].Factor {
		return fmt.Errorf("engine.maturity.top_factor %v must not be below the last tier factor %v",
			e.Maturity.TopFactor, e.Maturity.Tiers[n-1].Factor)
	}
	if e.Maturity.TopFactor < 0 || e.Maturity.TopFactor > 1 {
		return fmt.Errorf("engine.maturity.top_factor must be within [0, 1]")
	}
	for key, v := range map[string]*float64{
		"engine.goals.boost":                 e.Goals.Boost,
		"engine.challenges.critical_penalty": e.Challenges.CriticalPenalty,
		"engine.challenges.overload_penalty": e.Challenges.OverloadPenalty,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}
	if e.Score.Ceiling != 0 && e.Score.Ceiling <= e.Score.Floor {
		return fmt.Errorf("engine.score.ceiling must be greater than engine.score.floor")
	}
	if e.Budget.MediumBelow != 0 && e.Budget.MediumBelow <= e.Budget.LowBelow {
		return fmt.Errorf("engine.budget.medium_below must be greater than engine.budget.low_below")
	}
	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetWorkerConfig falls back to an enabled worker with default limits.
func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}
	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30000,
		MaxRetries:    3,
	}
}

func IsWorkerEnabled(cfg *Config, workerName string) bool {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker.Enabled
	}
	return true
}
