package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"urlfill/internal/cli/styles"
	"urlfill/internal/config"
)

// NewTemplatesCmd creates the templates command
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List configured URL templates",
		Long:  `List the URL templates available via the --template flag, with their descriptions.`,
		RunE:  listTemplates,
	}

	cmd.Flags().Bool("plain", false, "Disable styled output")

	return cmd
}

func listTemplates(cmd *cobra.Command, _ []string) error {
	cfg := config.Get()
	plain, _ := cmd.Flags().GetBool("plain")

	if len(cfg.Templates) == 0 {
		fmt.Println("No templates configured.")
		return nil
	}

	names := make([]string, 0, len(cfg.Templates))
	for name := range cfg.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	if plain {
		for _, name := range names {
			fmt.Printf("%s\t%s\n", name, cfg.Templates[name].URL)
		}
		return nil
	}

	fmt.Println(styles.Title.Render("Configured templates"))
	fmt.Println()

	for _, name := range names {
		tpl := cfg.Templates[name]
		fmt.Printf("  %s  %s\n", styles.Name.Render(name), styles.URL.Render(tpl.URL))
		if tpl.Description != "" {
			fmt.Printf("      %s\n", styles.Muted.Render(tpl.Description))
		}
	}

	return nil
}
