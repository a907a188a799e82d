package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	goConsole "github.com/MrEthical07/goConsole"
)

func loginCmd(configPath *string) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if username == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Username: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil {
					return fmt.Errorf("read username: %w", err)
				}
				username = strings.TrimSpace(line)
			}

			fmt.Fprint(cmd.OutOrStdout(), "Password: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password := strings.TrimRight(line, "\r\n")

			sess, err := console.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", sess.Identity.Username, sess.Identity.Mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")

	return cmd
}

func logoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := console.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func whoamiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			sess, ok, err := console.CurrentSession()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) mode=%s\n", sess.Identity.Username, sess.Identity.Name, sess.Identity.Mode)
			return nil
		},
	}
}

func menuCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the navigation entries visible to the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			entries := console.VisibleMenu()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No visible entries (not logged in?)")
				return nil
			}

			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", entry.Label, entry.Path)
			}
			return nil
		},
	}
}

// requireRoute guards a subcommand the same way the web shell guards its
// screen: redirect decisions become errors the user can act on.
func requireRoute(cmd *cobra.Command, console *goConsole.Console, path string) error {
	decision, err := console.Authorize(cmd.Context(), path)
	if err != nil {
		return err
	}
	switch decision {
	case goConsole.DecisionRedirectLogin:
		return fmt.Errorf("not logged in: run %s login", appName)
	case goConsole.DecisionRedirectDefault:
		return fmt.Errorf("your mode is not allowed to access %s", path)
	}
	return nil
}
