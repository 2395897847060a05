package cmd

import (
	"fmt"
	"io"

	"github.com/chriserin/slr/internal/grammar"
	"github.com/spf13/cobra"
)

var grammarCheckFlag bool

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the grammar's productions by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunGrammar(cmd.OutOrStdout(), grammarCheckFlag)
	},
}

func init() {
	grammarCmd.Flags().BoolVar(&grammarCheckFlag, "check", false, "Verify the grammar as EBNF")
	rootCmd.AddCommand(grammarCmd)
}

func RunGrammar(w io.Writer, check bool) error {
	g := grammar.Default()
	if check {
		if err := g.Verify(); err != nil {
			return err
		}
		fmt.Fprintf(w, "grammar ok: %d productions, %d nonterminals, %d terminals\n",
			g.Len(), len(g.Nonterminals()), len(g.Terminals()))
		return nil
	}

	for id := 0; id < g.Len(); id++ {
		fmt.Fprintf(w, "%2d  %s\n", id, g.Production(id))
	}
	return nil
}
