package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Planner.Inflation != 0.06 {
		t.Errorf("Planner.Inflation default = %v, want 0.06", cfg.Planner.Inflation)
	}
	if cfg.Planner.LifeExpectancy != 90 {
		t.Errorf("Planner.LifeExpectancy default = %d, want 90", cfg.Planner.LifeExpectancy)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled by default")
	}
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("FINPLAN_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d after env override, want 9090", cfg.Server.Port)
	}
}

func TestConfig_CacheAddressEnvEnablesCache(t *testing.T) {
	t.Setenv("FINPLAN_CACHE_ADDRESS", "localhost:6379")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if !cfg.Cache.Enabled {
		t.Error("setting a cache address should enable the cache")
	}
	if cfg.Cache.Address != "localhost:6379" {
		t.Errorf("Cache.Address = %q, want localhost:6379", cfg.Cache.Address)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finplan.toml")

	data := []byte(`
environment = "production"

[server]
port = 9000

[planner]
inflation = 0.07
life_expectancy = 85
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("environment = production should report IsProduction")
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Planner.Inflation != 0.07 {
		t.Errorf("Planner.Inflation = %v, want 0.07", cfg.Planner.Inflation)
	}
	if cfg.Planner.LifeExpectancy != 85 {
		t.Errorf("Planner.LifeExpectancy = %d, want 85", cfg.Planner.LifeExpectancy)
	}
	// Unspecified sections keep defaults.
	if cfg.Planner.PostRetirementReturn != 0.05 {
		t.Errorf("Planner.PostRetirementReturn = %v, want default 0.05", cfg.Planner.PostRetirementReturn)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/finplan.toml")
	if err != nil {
		t.Fatalf("LoadConfig with missing file failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestLoadConfig_RejectsBadAssumptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finplan.toml")

	data := []byte(`
[planner]
inflation = 6.0
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("inflation of 600% should be rejected")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cases := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"prod", true},
		{"PROD", true},
		{" production ", true},
		{"development", false},
		{"", false},
	}
	for _, c := range cases {
		cfg := &Config{Environment: c.env}
		if got := cfg.IsProduction(); got != c.want {
			t.Errorf("IsProduction(%q) = %v, want %v", c.env, got, c.want)
		}
	}
}
