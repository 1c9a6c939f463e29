package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/testlint/internal/config"
)

// RulesCommand holds the flags for the rules command.
type RulesCommand struct {
	configPath string
}

// NewRulesCommand creates the rules listing command.
func NewRulesCommand() *cobra.Command {
	cmd := &RulesCommand{}

	cobraCmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered rules",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file (default: built-in defaults)")

	return cobraCmd
}

// Run executes the rules command.
func (c *RulesCommand) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	registry, _, err := cfg.BuildRegistry()
	if err != nil {
		return err
	}

	for _, descriptor := range registry.Descriptors() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", descriptor.ID, descriptor.Description)
	}

	return nil
}
