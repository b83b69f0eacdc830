// Package app wires configuration, logging, the result cache, and the
// calculation services into one shared core.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/amitrb/finplan/internal/cache"
	"github.com/amitrb/finplan/internal/common"
	"github.com/amitrb/finplan/internal/interfaces"
	"github.com/amitrb/finplan/internal/models"
	"github.com/amitrb/finplan/internal/services/insurance"
	"github.com/amitrb/finplan/internal/services/planner"
)

// App holds all initialized services. It is the shared core used by
// cmd/finplan-server and by the server tests.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Cache            interfaces.Cache
	PlannerService   interfaces.PlannerService
	InsuranceService interfaces.InsuranceService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, cache, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	// Load configuration - check provided path, FINPLAN_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("FINPLAN_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "finplan.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/finplan.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	return NewAppWithConfig(config, logger), nil
}

// NewAppWithConfig builds an App from an already-loaded config and logger.
// Used by tests to avoid filesystem config resolution.
func NewAppWithConfig(config *common.Config, logger *common.Logger) *App {
	assumptions := assumptionsFromConfig(config.Planner)

	return &App{
		Config:           config,
		Logger:           logger,
		Cache:            cache.New(config.Cache, logger),
		PlannerService:   planner.NewService(assumptions, logger),
		InsuranceService: insurance.NewService(logger),
		StartupTime:      time.Now(),
	}
}

// assumptionsFromConfig overlays configured assumption values on the
// published defaults. Zero values keep the default.
func assumptionsFromConfig(cfg common.PlannerConfig) models.Assumptions {
	a := models.DefaultAssumptions()
	if cfg.Inflation > 0 {
		a.Inflation = cfg.Inflation
	}
	if cfg.PostRetirementReturn > 0 {
		a.PostRetirementReturn = cfg.PostRetirementReturn
	}
	if cfg.SIPStepUp > 0 {
		a.SIPStepUp = cfg.SIPStepUp
	}
	if cfg.LifeExpectancy > 0 {
		a.LifeExpectancy = cfg.LifeExpectancy
	}
	return a
}

// Close releases the app's resources.
func (a *App) Close() {
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Cache close failed")
		}
	}
}
