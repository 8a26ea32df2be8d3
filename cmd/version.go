package cmd

import (
	"errors"
	"fmt"

	"github.com/nmehta/studysnap/internal/selfupdate"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("studysnap", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		checker := selfupdate.NewChecker("nmehta", "studysnap")
		result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
		if err != nil {
			if errors.Is(err, selfupdate.ErrDevBuild) {
				fmt.Println("Development build; skipping update check.")
				return nil
			}
			return fmt.Errorf("check for updates: %w", err)
		}

		if result.UpdateAvailable {
			fmt.Printf("Update available: %s → installed %s\n", result.LatestVersion, result.CurrentVersion)
			if result.ReleaseURL != "" {
				fmt.Println(result.ReleaseURL)
			}
		} else {
			fmt.Println("You are on the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
