package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"urlfill/internal/config"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long: `Inspect the active configuration:
  show   - Print the effective configuration as JSON
  path   - Print the configuration file location
  schema - Print the JSON schema for the configuration file`,
		RunE: showConfig,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the effective configuration (defaults, file and environment merged) as JSON.`,
		RunE:  showConfig,
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return fmt.Errorf("failed to resolve config file: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if write, _ := cmd.Flags().GetBool("write"); write {
				path, err := config.GenerateSchemaFile()
				if err != nil {
					return fmt.Errorf("failed to generate schema: %w", err)
				}
				fmt.Println("Schema written to:", path)
				return nil
			}

			data, err := config.SchemaJSON()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
	schemaCmd.Flags().Bool("write", false, "Write the schema next to the config file instead of printing it")

	cmd.AddCommand(showCmd)
	cmd.AddCommand(pathCmd)
	cmd.AddCommand(schemaCmd)

	return cmd
}

func showConfig(_ *cobra.Command, _ []string) error {
	cfg := config.Get()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
