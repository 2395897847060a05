package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/chriserin/slr/internal/render"
	"github.com/chriserin/slr/internal/tokens"
	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("slr.cmd")

// ParseOptions carries the root command's flags.
type ParseOptions struct {
	Tables string
	Format string
}

// RunParse parses the tokens in input and writes the outcome to output, or
// to w when output is "-". A rejected or unreadable input is reported in the
// output and is not an error; failing to load tables or write the output is.
func RunParse(w io.Writer, input, output string, opts ParseOptions) error {
	p, err := newParser(opts.Tables)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	toks, err := tokens.ReadFile(input)
	if err != nil {
		log.Errorf("%s", err)
		if werr := render.Write(&buf, opts.Format, nil, err); werr != nil {
			return werr
		}
	} else {
		root, perr := p.Parse(toks)
		if werr := render.Write(&buf, opts.Format, root, perr); werr != nil {
			return werr
		}
		log.Infof("%s: %d tokens, accepted=%t", input, len(toks), perr == nil)
	}

	if output == "-" {
		_, err := w.Write(buf.Bytes())
		return errors.Wrap(err, "writing output")
	}
	return errors.Wrapf(os.WriteFile(output, buf.Bytes(), 0o644), "writing %s", output)
}
