package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	goConsole "github.com/MrEthical07/goConsole"
	"github.com/MrEthical07/goConsole/session"
)

const (
	version = "0.1.0"
	appName = "goconsole"
)

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Role-gated admin console client",
		Long: `goconsole is a terminal client for the admin console backend.

It keeps a persistent session under your user config directory, attaches
the bearer token to every backend call, and applies the same mode-based
route rules the web shell enforces.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(
		loginCmd(&configPath),
		logoutCmd(&configPath),
		whoamiCmd(&configPath),
		menuCmd(&configPath),
		customersCmd(&configPath),
		modelsCmd(&configPath),
		reportsCmd(&configPath),
		usersCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s\n", appName, version)
			},
		},
	)

	return cmd
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, appName, "config.yaml"), nil
}

// buildConsole loads the YAML config and assembles a Console backed by the
// on-disk session file, so every invocation of the binary sees the same
// login state.
func buildConsole(configPath string) (*goConsole.Console, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, routes, menu, err := goConsole.LoadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	storage, err := session.DefaultFileStorage(appName)
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	console, err := goConsole.New().
		WithConfig(cfg).
		WithStorage(storage).
		WithRoutes(routes).
		WithMenu(menu).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build console: %w", err)
	}

	return console, nil
}
