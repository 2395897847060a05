package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chriserin/slr/internal/db"
	"github.com/chriserin/slr/internal/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	historyDBFlag     string
	historyLimitFlag  int
	historyFailedFlag bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List parse runs recorded by batch --db",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunHistory(cmd.OutOrStdout(), historyDBFlag, db.ListOptions{
			Limit:      historyLimitFlag,
			FailedOnly: historyFailedFlag,
		})
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDBFlag, "db", "slr.db", "SQLite file written by batch --db")
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum runs to show")
	historyCmd.Flags().BoolVar(&historyFailedFlag, "failed", false, "Show only rejected inputs")
	rootCmd.AddCommand(historyCmd)
}

func RunHistory(w io.Writer, path string, opts db.ListOptions) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.Newf("no database at %s; run `slr batch --db %s` first", path, path)
	}

	sqlDB, err := db.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer sqlDB.Close()

	runs, err := db.List(sqlDB, opts)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return nil
	}

	now := time.Now()
	for _, r := range runs {
		ui.RunLine(w, r.FilePath, r.Accepted, r.CreatedAt, now)
	}
	return nil
}
