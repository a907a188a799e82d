package goConsole

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MrEthical07/goConsole/permission"
)

type fileConfig struct {
	Gateway struct {
		BaseURL        string        `yaml:"base_url"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		UserAgent      string        `yaml:"user_agent"`
	} `yaml:"gateway"`
	Routes struct {
		LoginPath         string `yaml:"login_path"`
		DefaultPath       string `yaml:"default_path"`
		UnknownPathPolicy string `yaml:"unknown_path_policy"`
		Rules             []struct {
			Path  string   `yaml:"path"`
			Modes []string `yaml:"modes"`
		} `yaml:"rules"`
	} `yaml:"routes"`
	Menu []struct {
		Label string   `yaml:"label"`
		Icon  string   `yaml:"icon"`
		Path  string   `yaml:"path"`
		Modes []string `yaml:"modes"`
	} `yaml:"menu"`
	Audit struct {
		Enabled    bool `yaml:"enabled"`
		BufferSize int  `yaml:"buffer_size"`
		DropIfFull bool `yaml:"drop_if_full"`
	} `yaml:"audit"`
	Metrics struct {
		Enabled                 bool `yaml:"enabled"`
		EnableLatencyHistograms bool `yaml:"enable_latency_histograms"`
	} `yaml:"metrics"`
}

// LoadConfigFile reads a YAML console configuration. Fields absent from the
// file keep their defaults; mode strings are parsed strictly so a typoed mode
// fails loading instead of silently denying access.
//
// LoadConfigFile may return an error when input validation, dependency calls, or security checks fail.
func LoadConfigFile(path string) (Config, []RouteRule, []MenuEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("read config file: %w", err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, nil, nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg := defaultConfig()
	cfg.Gateway.BaseURL = raw.Gateway.BaseURL
	if raw.Gateway.RequestTimeout > 0 {
		cfg.Gateway.RequestTimeout = raw.Gateway.RequestTimeout
	}
	if raw.Gateway.UserAgent != "" {
		cfg.Gateway.UserAgent = raw.Gateway.UserAgent
	}
	if raw.Routes.LoginPath != "" {
		cfg.Routes.LoginPath = raw.Routes.LoginPath
	}
	if raw.Routes.DefaultPath != "" {
		cfg.Routes.DefaultPath = raw.Routes.DefaultPath
	}
	switch raw.Routes.UnknownPathPolicy {
	case "", "deny":
		cfg.Routes.UnknownPathPolicy = UnknownPathDeny
	case "allow":
		cfg.Routes.UnknownPathPolicy = UnknownPathAllow
	default:
		return Config{}, nil, nil, fmt.Errorf("unknown_path_policy %q: must be deny or allow", raw.Routes.UnknownPathPolicy)
	}
	cfg.Audit.Enabled = raw.Audit.Enabled
	if raw.Audit.BufferSize > 0 {
		cfg.Audit.BufferSize = raw.Audit.BufferSize
	}
	if raw.Audit.Enabled {
		cfg.Audit.DropIfFull = raw.Audit.DropIfFull
	}
	cfg.Metrics.Enabled = raw.Metrics.Enabled
	cfg.Metrics.EnableLatencyHistograms = raw.Metrics.EnableLatencyHistograms

	routes := make([]RouteRule, 0, len(raw.Routes.Rules))
	for _, rule := range raw.Routes.Rules {
		modes, err := permission.ParseModes(rule.Modes)
		if err != nil {
			return Config{}, nil, nil, fmt.Errorf("route %s: %w", rule.Path, err)
		}
		routes = append(routes, RouteRule{Path: rule.Path, Modes: modes})
	}

	menu := make([]MenuEntry, 0, len(raw.Menu))
	for _, entry := range raw.Menu {
		modes, err := permission.ParseModes(entry.Modes)
		if err != nil {
			return Config{}, nil, nil, fmt.Errorf("menu entry %s: %w", entry.Path, err)
		}
		menu = append(menu, MenuEntry{
			Label:        entry.Label,
			Icon:         entry.Icon,
			Path:         entry.Path,
			AllowedModes: modes,
		})
	}

	return cfg, routes, menu, nil
}
