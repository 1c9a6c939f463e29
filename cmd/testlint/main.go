// Package main provides the entry point for the testlint CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/testlint/cmd/testlint/commands"
	"github.com/Sumatoshi-tech/testlint/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "testlint",
		Short: "Testlint - convention checks for end-to-end test suites",
		Long: `Testlint checks parsed test sources against project conventions.

Commands:
  lint      Run the lint rules over UAST input
  rules     List the registered rules`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewLintCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "testlint %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
