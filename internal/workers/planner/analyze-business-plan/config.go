// internal/workers/planner/analyze-business-plan/config.go
package analyzebusinessplan

import (
	"time"

	"planner-workers/internal/common/config"
	"planner-workers/internal/engine"
)

type Config struct {
	Timeout time.Duration
	Policy  engine.Policy
}

// LoadConfig reads the worker timeout and the engine policy. A nil app config
// yields the engine defaults.
func LoadConfig(appCfg *config.Config) *Config {
	if appCfg == nil {
		return &Config{
			Timeout: 10 * time.Second,
			Policy:  engine.DefaultPolicy(),
		}
	}
	wcfg := config.GetWorkerConfig(appCfg, TaskType)
	return &Config{
		Timeout: config.GetDuration(wcfg.Timeout),
		Policy:  appCfg.Engine.Policy(),
	}
}
