package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for csvsearch
func NewRootCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "csvsearch <directory> <word>...",
		Short: "Search CSV files under a directory for rows containing words",
		Long: `csvsearch walks a directory tree, reads every .csv file it finds and
reports the data rows that contain any of the given words.

Matching is a plain substring test against the row's cells joined by spaces,
case-insensitive unless --case-sensitive is given. The first line of each file
is its header and is not searched.

Files that cannot be read or parsed are reported on stderr and skipped; they
never stop the scan.

Configuration is read from .csvsearch/config.yaml in the current directory
(or the file named by --config) and overridden by flags.`,
		Example: `  csvsearch ./exports alice
  csvsearch ./exports invoice refund --case-sensitive
  csvsearch ./exports acme -f plain
  csvsearch ./exports acme -c Name,Amount --report results.yaml`,
		Version: Version,
		// main prints the error once
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a directory and at least one word to search for")
			}
			if len(args) < 2 {
				return fmt.Errorf("requires at least one word to search for in %s", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only useful for argument errors, which are reported before RunE
			cmd.SilenceUsage = true

			opts.root = args[0]
			opts.terms = args[1:]
			opts.overrides = collectOverrides(cmd, opts)

			return runSearch(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.caseSensitive, "case-sensitive", false, "Match words with exact case")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: plain, table, markdown, html (default from config: table)")
	flags.StringSliceVarP(&opts.columns, "columns", "c", nil, "Summary table columns (comma-separated header names)")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default .csvsearch/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostics level: trace, debug, info, warn, error")
	flags.StringSliceVar(&opts.excludeDirs, "exclude-dir", nil, "Directory name to skip (repeatable)")
	flags.BoolVar(&opts.skipHidden, "skip-hidden", false, "Skip directories whose name starts with '.'")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "Limit traversal depth (0 = unlimited, 1 = directory only)")
	flags.BoolVar(&opts.progress, "progress", false, "Print each file on stderr as it is scanned")
	flags.StringVar(&opts.reportPath, "report", "", "Also write a YAML report of the results to this path")

	return cmd
}

// collectOverrides turns explicitly set flags into config overrides
func collectOverrides(cmd *cobra.Command, opts *searchOptions) configOverrides {
	var o configOverrides
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		o.logLevel = &opts.logLevel
	}
	if flags.Changed("format") {
		o.format = &opts.format
	}
	if flags.Changed("columns") {
		o.columns = &opts.columns
	}
	if flags.Changed("exclude-dir") {
		o.excludeDirs = &opts.excludeDirs
	}
	if flags.Changed("skip-hidden") {
		o.skipHidden = &opts.skipHidden
	}
	if flags.Changed("max-depth") {
		o.maxDepth = &opts.maxDepth
	}
	return o
}
