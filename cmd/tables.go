package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var tablesFormatFlag string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the ACTION and GOTO tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunTables(cmd.OutOrStdout(), tablesFlag, tablesFormatFlag)
	},
}

func init() {
	tablesCmd.Flags().StringVar(&tablesFormatFlag, "format", "grid", "Output format: grid or yaml")
	rootCmd.AddCommand(tablesCmd)
}

func RunTables(w io.Writer, path, format string) error {
	t, err := loadTables(path)
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		return t.Dump(w)
	case "grid", "":
	default:
		return errors.Newf("unknown format: %s", format)
	}

	terminals := t.Terminals()
	nonterminals := t.Nonterminals()

	fmt.Fprintln(w, "ACTION")
	actions := newGrid(w, terminals)
	for _, s := range t.States() {
		row := []string{strconv.Itoa(s)}
		for _, sym := range terminals {
			cell := ""
			if a, ok := t.Action(s, sym); ok {
				cell = a.String()
			}
			row = append(row, cell)
		}
		actions.Append(row)
	}
	actions.Render()

	fmt.Fprintln(w, "GOTO")
	gotos := newGrid(w, nonterminals)
	for _, s := range t.States() {
		row := []string{strconv.Itoa(s)}
		empty := true
		for _, sym := range nonterminals {
			cell := ""
			if next, ok := t.Goto(s, sym); ok {
				cell = strconv.Itoa(next)
				empty = false
			}
			row = append(row, cell)
		}
		if !empty {
			gotos.Append(row)
		}
	}
	gotos.Render()

	fmt.Fprintln(w, t)
	return nil
}

func newGrid(w io.Writer, columns []string) *tablewriter.Table {
	g := tablewriter.NewWriter(w)
	g.SetHeader(append([]string{"state"}, columns...))
	g.SetAutoFormatHeaders(false)
	g.SetAutoWrapText(false)
	return g
}
