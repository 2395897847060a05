package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	tablesFlag  string
	formatFlag  string
	traceFlag   bool
	verboseFlag int
)

var rootCmd = &cobra.Command{
	Use:   "slr <input-file> <output-file>",
	Short: "Table-driven SLR(1) parser for pre-tokenized programs",
	Long: `Parse a file of whitespace-separated terminal names and write either
"Parsing successful!" and the parse tree, or the error diagnostic, to the
output file. An output file of "-" writes to stdout.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(verboseFlag, traceFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunParse(cmd.OutOrStdout(), args[0], args[1], ParseOptions{
			Tables: tablesFlag,
			Format: formatFlag,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesFlag, "tables", "", "Load ACTION/GOTO tables from a YAML file instead of the built-in ones")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "text", "Output format: text, json or dot")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Log every parser step to stderr")
	rootCmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "Increase log verbosity (-vv traces parser steps)")
}

// configureLogging sends logs to stderr. Tracing needs debug level.
func configureLogging(verbosity int, trace bool) {
	if trace && verbosity < 2 {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
