package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"urlfill/internal/build"
	"urlfill/internal/config"
	"urlfill/internal/logging"
	"urlfill/internal/parser"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errReported marks errors whose message was already written to stderr with
// the proper prefix; Execute only sets the exit status for them.
var errReported = errors.New("error already reported")

// log is the CLI-wide logger, replaced once configuration is loaded.
var log zerolog.Logger = logging.NewFromEnv()

// Execute runs the root command and exits non-zero on any failure.
func Execute(info build.Info) {
	rootCmd := NewRootCmd(info)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// NewRootCmd creates the root command for urlfill
func NewRootCmd(info build.Info) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "urlfill <urls> [query-fragments...]",
		Short: "Expand search placeholders in URL templates",
		Long: `urlfill substitutes search queries into URL templates.

Templates contain placeholder tokens of the form {search<options>\<delimiter>}.
Options select and transform the query text before it is percent-encoded and
spliced into the surrounding URL:

  !N    use query at position N (1-based) instead of the placeholder order
  !W<P> keep only word P of the query (repeatable)
  !U    uppercase the whole query; !U<P> uppercases word P
  !C    capitalize each word
  !R    reverse word order
  !M    strip encoded commas

Multiple URL entries are separated by '<|>', multiple queries by '%%'. Text
after '<>' in an entry is passed through untouched.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
				log = zerolog.Nop()
				return nil
			}
			cfg := config.Get()
			log = logging.FromSettings(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
		RunE: runFill,
	}

	rootCmd.Flags().StringP("template", "t", "", "Use a configured named template instead of a urls argument")
	rootCmd.Flags().Bool("no-history", false, "Do not record this expansion in the history")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress log output")

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("urlfill %s\n", info.Version)
			fmt.Printf("commit: %s\n", info.Commit)
			fmt.Printf("built: %s\n", info.BuildDate)
			fmt.Printf("go: %s\n", info.GoVersion)
		},
	}

	// Init command
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize urlfill database and configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return fmt.Errorf("failed to initialize CLI: %w", err)
			}
			defer closeQuietly(cli)

			fmt.Printf("urlfill %s - Initialization complete!\n", info.Version)
			fmt.Println("Database initialized at:", cli.Config.Database.Path)

			// Show XDG directories
			xdgDirs, err := config.GetXDGDirs()
			if err == nil {
				fmt.Println("Configuration directories:")
				fmt.Printf("- Config: %s\n", xdgDirs.ConfigHome)
				fmt.Printf("- Data: %s\n", xdgDirs.DataHome)
				fmt.Printf("- State: %s\n", xdgDirs.StateHome)
			}

			// Show configured templates
			fmt.Println("Configured templates:")
			for name, tpl := range cli.Config.Templates {
				fmt.Printf("- %s -> %s\n", name, tpl.URL)
			}
			return nil
		},
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewTemplatesCmd())

	return rootCmd
}

// runFill is the default command: expand placeholders and print the result.
func runFill(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	templateName, _ := cmd.Flags().GetString("template")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	var urls string
	var fragments []string

	switch {
	case templateName != "":
		tpl, ok := cfg.Templates[templateName]
		if !ok {
			return fmt.Errorf("unknown template %q", templateName)
		}
		urls = tpl.URL
		fragments = args
	case len(args) == 0:
		fmt.Fprintln(os.Stderr, "error_: missing urls argument")
		return errReported
	default:
		urls = args[0]
		fragments = args[1:]
	}

	p := parser.New(cfg)
	queries := p.SplitQueries(fragments)

	result, err := p.Expand(urls, queries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return errReported
	}

	log.Debug().
		Int("entries", len(result.Entries)).
		Int("queries", len(queries)).
		Dur("took", result.ProcessingTime).
		Msg("expanded url templates")

	// An empty URL list is a silent success.
	if len(result.Entries) == 0 {
		return nil
	}

	fmt.Println(result.Output)

	if cfg.History.Enabled && !noHistory {
		if err := recordExpansion(cfg, urls, result.Output, fragments); err != nil {
			log.Warn().Err(err).Msg("failed to record expansion history")
		}
	}

	return nil
}

// recordExpansion stores one expansion in the history database and prunes it
// to the configured size.
func recordExpansion(cfg *config.Config, template, output string, fragments []string) error {
	cli, err := NewCLI()
	if err != nil {
		return err
	}
	defer closeQuietly(cli)

	ctx := context.Background()

	query := sql.NullString{String: strings.Join(fragments, " "), Valid: len(fragments) > 0}
	if err := cli.Queries.AddExpansion(ctx, template, output, query); err != nil {
		return err
	}

	if cfg.History.MaxEntries > 0 {
		if err := cli.Queries.PruneExpansions(ctx, int64(cfg.History.MaxEntries)); err != nil {
			return err
		}
	}

	if cfg.History.RetentionPeriodDays > 0 {
		return cli.Queries.PruneExpansionsByAge(ctx, int64(cfg.History.RetentionPeriodDays))
	}
	return nil
}
