package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zemdomu/zemdomu/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zemdomu",
		Short: "zemdomu - semantic HTML and JSX linter",
		Long: `zemdomu lints HTML and JSX/TSX files for semantic markup and
accessibility issues: heading structure, landmark content, labeled form
controls, and cross-component heading conflicts in React codebases.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(lintCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Handle custom exit codes from check command
		if exitErr, ok := err.(*CheckExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("zemdomu version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
