package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"frontend-setup/internal/config"
)

var componentsConfigPath string

// componentsCmd prints the checklist offered by the shadcn command.
var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the components offered by the shadcn checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(componentsConfigPath)
		if err != nil {
			return err
		}
		for _, name := range cfg.Catalog {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	componentsCmd.Flags().StringVarP(&componentsConfigPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.AddCommand(componentsCmd)
}
