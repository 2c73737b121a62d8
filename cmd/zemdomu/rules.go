package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zemdomu/zemdomu/domain"
)

var rulesJSON bool

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List every lint rule with its default severity and description.

Examples:
  # Human-readable listing
  zemdomu rules

  # JSON for tooling
  zemdomu rules --json`,
		RunE: runRules,
	}

	cmd.Flags().BoolVar(&rulesJSON, "json", false, "Output rules as JSON")
	return cmd
}

func runRules(cmd *cobra.Command, args []string) error {
	rules := domain.AllRules()

	if rulesJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rules)
	}

	width := 0
	for _, info := range rules {
		if len(info.ID) > width {
			width = len(info.ID)
		}
	}

	for _, info := range rules {
		fmt.Printf("%-*s  %-7s  %s\n", width, info.ID, info.DefaultSeverity, info.Description)
	}
	return nil
}
