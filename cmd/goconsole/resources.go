package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	goConsole "github.com/MrEthical07/goConsole"
)

func customersCmd(configPath *string) *cobra.Command {
	var includeAll bool

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List customers and their locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := requireRoute(cmd, console, "/customers"); err != nil {
				return err
			}

			customers, err := console.ListCustomers(cmd.Context(), includeAll)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tENABLED\tLOCATIONS")
			for _, customer := range customers {
				fmt.Fprintf(w, "%d\t%s\t%t\t%d\n", customer.ID, customer.Name, customer.Enabled, len(customer.Locations))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&includeAll, "all", false, "Include disabled customers")

	return cmd
}

func modelsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List model versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := requireRoute(cmd, console, "/modelmgrs"); err != nil {
				return err
			}

			versions, err := console.ListModelVersions(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tVERSION\tTHRESHOLD\tUPDATED")
			for _, v := range versions {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n", v.ID, v.VersionName, v.Threshold, v.UpdateDate)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(uploadModelCmd(configPath))

	return cmd
}

func uploadModelCmd(configPath *string) *cobra.Command {
	var (
		versionName string
		archivePath string
		showModel   bool
		showScore   bool
		threshold   float64
		usernames   []string
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a new model version archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := requireRoute(cmd, console, "/modelmgrs"); err != nil {
				return err
			}

			archive, err := os.Open(archivePath)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer archive.Close()

			err = console.UploadModelVersion(cmd.Context(), goConsole.UploadModelInput{
				VersionName: versionName,
				Filename:    archivePath,
				Archive:     archive,
				ShowModel:   showModel,
				ShowScore:   showScore,
				Threshold:   threshold,
				Usernames:   usernames,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s\n", versionName)
			return nil
		},
	}

	cmd.Flags().StringVar(&versionName, "name", "", "Version name (required)")
	cmd.Flags().StringVar(&archivePath, "archive", "", "Path to the model ZIP archive (required)")
	cmd.Flags().BoolVar(&showModel, "show-model", false, "Render model output on devices")
	cmd.Flags().BoolVar(&showScore, "show-score", false, "Render detection scores on devices")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "Detection threshold")
	cmd.Flags().StringSliceVar(&usernames, "assign", nil, "Usernames to assign the version to")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("archive")

	return cmd
}

func reportsCmd(configPath *string) *cobra.Command {
	var (
		start      string
		end        string
		customerID string
		ownerName  string
	)

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Query detection photo reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := requireRoute(cmd, console, "/reports"); err != nil {
				return err
			}

			startTime, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
			endTime, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("parse --end: %w", err)
			}

			reports, err := console.QueryPhotos(cmd.Context(), goConsole.PhotoQuery{
				StartTime:  startTime,
				EndTime:    endTime,
				CustomerID: customerID,
				OwnerName:  ownerName,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCUSTOMER\tOWNER\tLABELS")
			for _, report := range reports {
				labels := strings.ReplaceAll(report.DetectLabels, ",", ", ")
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", report.ID, report.CustomerID, report.OwnerName, labels)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Range start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "Range end date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&customerID, "customer", "", "Filter by customer ID")
	cmd.Flags().StringVar(&ownerName, "owner", "", "Filter by owner username")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	cmd.AddCommand(downloadPhotoCmd(configPath))

	return cmd
}

func downloadPhotoCmd(configPath *string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download <photo-id>",
		Short: "Download one report photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := requireRoute(cmd, console, "/reports"); err != nil {
				return err
			}

			photoID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse photo id: %w", err)
			}

			data, err := console.DownloadPhoto(cmd.Context(), photoID)
			if err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = fmt.Sprintf("photo_%d.jpg", photoID)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write photo: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", path, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file path")

	return cmd
}

func usersCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List managed accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := requireRoute(cmd, console, "/users"); err != nil {
				return err
			}

			users, err := console.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tMODE\tENABLED")
			for _, user := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", user.ID, user.Username, user.Name, user.Mode, user.Enable)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(createUserCmd(configPath))

	return cmd
}

func createUserCmd(configPath *string) *cobra.Command {
	var input goConsole.CreateUserInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a managed account",
		RunE: func(cmd *cobra.Command, args []string) error {
			console, err := buildConsole(*configPath)
			if err != nil {
				return err
			}
			defer console.Close()

			if err := requireRoute(cmd, console, "/users"); err != nil {
				return err
			}

			if err := console.CreateUser(cmd.Context(), input); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", input.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Username, "username", "", "Account username (required)")
	cmd.Flags().StringVar(&input.Password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Mode, "mode", "", "Account mode (required)")
	cmd.Flags().BoolVar(&input.Enable, "enable", true, "Enable the account on creation")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}
