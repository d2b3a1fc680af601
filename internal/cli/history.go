package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

const (
	unknownValue        = "Unknown"
	defaultHistoryLimit = 20
	defaultSearchLimit  = 10
	maxTemplateDisplay  = 40
	maxOutputDisplay    = 60
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage expansion history",
		Long: `Manage expansion history with various subcommands:
  list   - Show recent expansions
  search - Search through past expansions
  clear  - Clear history (with confirmation)
  stats  - Show history statistics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to list if no subcommand
			return listHistory(cmd, args)
		},
	}

	// List subcommand (also default behavior)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent expansions",
		Long:  `Display recent template expansions with their outputs and timestamps.`,
		RunE:  listHistory,
	}
	listCmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of history entries to show")
	listCmd.Flags().BoolP("verbose", "v", false, "Show full templates and queries")

	// Search subcommand
	searchCmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search through expansion history",
		Long:  `Search for templates, outputs and queries in expansion history.`,
		Args:  cobra.ExactArgs(1),
		RunE:  searchHistory,
	}
	searchCmd.Flags().IntP("limit", "n", defaultSearchLimit, "Number of search results to show")

	// Clear subcommand
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear expansion history",
		Long:  `Clear all expansion history. This action cannot be undone.`,
		RunE:  clearHistory,
	}
	clearCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	// Stats subcommand
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show history statistics",
		Long:  `Display statistics about recorded expansions.`,
		RunE:  showStats,
	}

	// Add global flags
	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of history entries to show")
	cmd.Flags().BoolP("verbose", "v", false, "Show full templates and queries")

	// Add subcommands
	cmd.AddCommand(listCmd)
	cmd.AddCommand(searchCmd)
	cmd.AddCommand(clearCmd)
	cmd.AddCommand(statsCmd)

	return cmd
}

// listHistory displays recent expansions
func listHistory(cmd *cobra.Command, _ []string) error {
	cli, err := NewCLI()
	if err != nil {
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}
	defer closeQuietly(cli)

	ctx := context.Background()

	limit, _ := cmd.Flags().GetInt("limit")
	verbose, _ := cmd.Flags().GetBool("verbose")

	history, err := cli.Queries.GetExpansions(ctx, int64(limit))
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	if len(history) == 0 {
		fmt.Println("No expansion history found.")
		return nil
	}

	// Create tabwriter for aligned output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if verbose {
		fmt.Fprintln(w, "ID\tWHEN\tTEMPLATE\tQUERY\tOUTPUT")
		fmt.Fprintln(w, "--\t----\t--------\t-----\t------")

		for _, entry := range history {
			when := unknownValue
			if entry.CreatedAt.Valid {
				when = entry.CreatedAt.Time.Format("2006-01-02 15:04")
			}

			query := entry.Query.String
			if !entry.Query.Valid || query == "" {
				query = "-"
			}

			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				entry.ID, when,
				truncateString(entry.Template, maxTemplateDisplay),
				truncateString(query, maxTemplateDisplay),
				truncateString(entry.Output, maxOutputDisplay))
		}
	} else {
		fmt.Fprintln(w, "WHEN\tOUTPUT")
		fmt.Fprintln(w, "----\t------")

		for _, entry := range history {
			when := unknownValue
			if entry.CreatedAt.Valid {
				// Show relative time for recent entries
				if time.Since(entry.CreatedAt.Time) < 24*time.Hour {
					when = entry.CreatedAt.Time.Format("15:04")
				} else {
					when = entry.CreatedAt.Time.Format("Jan 02")
				}
			}

			fmt.Fprintf(w, "%s\t%s\n", when, truncateString(entry.Output, maxOutputDisplay))
		}
	}

	return nil
}

// searchHistory searches through expansion history
func searchHistory(cmd *cobra.Command, args []string) error {
	cli, err := NewCLI()
	if err != nil {
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}
	defer closeQuietly(cli)

	ctx := context.Background()
	term := args[0]
	limit, _ := cmd.Flags().GetInt("limit")

	results, err := cli.Queries.SearchExpansions(ctx, term, int64(limit))
	if err != nil {
		return fmt.Errorf("failed to search history: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No history entries found matching '%s'.\n", term)
		return nil
	}

	fmt.Printf("Found %d result(s) for '%s':\n\n", len(results), term)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "WHEN\tTEMPLATE\tOUTPUT")
	fmt.Fprintln(w, "----\t--------\t------")

	for _, entry := range results {
		when := unknownValue
		if entry.CreatedAt.Valid {
			when = entry.CreatedAt.Time.Format("Jan 02 15:04")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", when,
			truncateString(entry.Template, maxTemplateDisplay),
			truncateString(entry.Output, maxOutputDisplay))
	}

	return nil
}

// clearHistory clears all expansion history
func clearHistory(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	// Confirmation unless --force is used
	if !force {
		fmt.Print("This will permanently delete all expansion history. Continue? [y/N]: ")
		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "y" && response != "yes" {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	cli, err := NewCLI()
	if err != nil {
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}
	defer closeQuietly(cli)

	deleted, err := cli.Queries.DeleteAllExpansions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Printf("Successfully cleared %d history entries.\n", deleted)
	return nil
}

// showStats displays statistics about expansion history
func showStats(_ *cobra.Command, _ []string) error {
	cli, err := NewCLI()
	if err != nil {
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}
	defer closeQuietly(cli)

	ctx := context.Background()

	stats, err := cli.Queries.GetExpansionStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history stats: %w", err)
	}

	fmt.Println("Expansion History Statistics")
	fmt.Println("============================")
	fmt.Printf("Total expansions: %d\n", stats.TotalExpansions)

	if stats.OldestEntry.Valid && stats.NewestEntry.Valid {
		fmt.Printf("Date range: %s to %s\n",
			stats.OldestEntry.Time.Format("2006-01-02"),
			stats.NewestEntry.Time.Format("2006-01-02"))
	}

	return nil
}

// truncateString shortens s to max characters, appending "..." when cut.
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
