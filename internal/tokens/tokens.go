// Package tokens reads pre-tokenized programs: terminal names separated by
// any whitespace, newlines included.
package tokens

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Read returns the tokens of r in order.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var toks []string
	for sc.Scan() {
		toks = append(toks, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading tokens")
	}
	return toks, nil
}

// ReadFile opens path and reads its tokens.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	toks, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return toks, nil
}
