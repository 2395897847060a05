package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/chriserin/slr/internal/db"
	"github.com/chriserin/slr/internal/render"
	"github.com/chriserin/slr/internal/tokens"
	"github.com/chriserin/slr/internal/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	batchDBFlag     string
	batchJobsFlag   int
	batchOutDirFlag string
)

var batchCmd = &cobra.Command{
	Use:   "batch <input-file>...",
	Short: "Parse many token files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunBatch(cmd.OutOrStdout(), args, BatchOptions{
			ParseOptions: ParseOptions{Tables: tablesFlag, Format: formatFlag},
			DB:           batchDBFlag,
			Jobs:         batchJobsFlag,
			OutDir:       batchOutDirFlag,
		})
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchDBFlag, "db", "", "Record results in this SQLite file")
	batchCmd.Flags().IntVar(&batchJobsFlag, "jobs", runtime.NumCPU(), "Files parsed at once")
	batchCmd.Flags().StringVar(&batchOutDirFlag, "out-dir", "", "Write outputs here instead of next to each input")
	rootCmd.AddCommand(batchCmd)
}

type BatchOptions struct {
	ParseOptions
	DB     string
	Jobs   int
	OutDir string
}

type batchResult struct {
	input      string
	output     string
	tokens     int
	accepted   bool
	diagnostic string
}

// outputPath maps in.tok to in.out, in dir when it is set.
func outputPath(input, dir string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".out"
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

// checkOutputs rejects inputs that would write the same output file.
func checkOutputs(inputs []string, dir string) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		out := filepath.Clean(outputPath(input, dir))
		if prev, ok := seen[out]; ok {
			return errors.Newf("%s and %s would both write %s", prev, input, out)
		}
		seen[out] = input
	}
	return nil
}

// RunBatch parses every input, writing one output file per input, and
// prints a status line per input in argument order.
func RunBatch(w io.Writer, inputs []string, opts BatchOptions) error {
	if err := checkOutputs(inputs, opts.OutDir); err != nil {
		return err
	}
	p, err := newParser(opts.Tables)
	if err != nil {
		return err
	}
	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}

	results := make([]batchResult, len(inputs))
	g := new(errgroup.Group)
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g.SetLimit(jobs)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			res := batchResult{input: input, output: outputPath(input, opts.OutDir)}

			var buf bytes.Buffer
			toks, err := tokens.ReadFile(input)
			if err != nil {
				res.diagnostic = render.Diagnostic(err)
				if werr := render.Write(&buf, opts.Format, nil, err); werr != nil {
					return werr
				}
			} else {
				root, perr := p.Parse(toks)
				res.tokens = len(toks)
				res.accepted = perr == nil
				if perr != nil {
					res.diagnostic = render.Diagnostic(perr)
				}
				if werr := render.Write(&buf, opts.Format, root, perr); werr != nil {
					return werr
				}
			}

			if err := os.WriteFile(res.output, buf.Bytes(), 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", res.output)
			}
			log.Debugf("%s -> %s", input, res.output)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.DB != "" {
		if err := recordBatch(opts.DB, tableSource(opts.Tables), results); err != nil {
			return err
		}
	}

	accepted := 0
	for _, res := range results {
		if res.accepted {
			accepted++
			ui.OkLine(w, res.input, res.tokens)
		} else {
			ui.ErrLine(w, res.input, res.diagnostic)
		}
	}
	ui.SummaryLine(w, accepted, len(results)-accepted)
	return nil
}

func recordBatch(path, source string, results []batchResult) error {
	sqlDB, err := db.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer sqlDB.Close()

	for _, res := range results {
		_, err := db.Record(sqlDB, db.Run{
			FilePath:    res.input,
			TokenCount:  res.tokens,
			Accepted:    res.accepted,
			Diagnostic:  res.diagnostic,
			TableSource: source,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
