package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriserin/slr/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBatch(t *testing.T, inputs []string, opts BatchOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunBatch(&buf, inputs, opts))
	return buf.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestBatch_WritesOutputNextToInputs(t *testing.T) {
	inTempDir(t)
	writeTokens(t, "good.tok", "vtype id semi")
	writeTokens(t, "bad.tok", "vtype id assign")

	out := runBatch(t, []string{"good.tok", "bad.tok"}, BatchOptions{Jobs: 2})

	assert.Equal(t, "Parsing successful!\nCODE\n  VDECL\n    vtype\n    id\n    semi\n  CODE\n", readFile(t, "good.out"))
	assert.Equal(t, "Error: Unexpected token '$' at position 3\nError: No ACTION entry for state 11 and token '$'\n", readFile(t, "bad.out"))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "good.tok")
	assert.Contains(t, lines[0], "3 tokens")
	assert.Contains(t, lines[1], "bad.tok")
	assert.Contains(t, lines[1], "Error: Unexpected token '$' at position 3")
	assert.Equal(t, "parsed 2 files: 1 accepted, 1 rejected", lines[2])
}

func TestBatch_PreservesInputOrder(t *testing.T) {
	inTempDir(t)
	var inputs []string
	for _, name := range []string{"e.tok", "d.tok", "c.tok", "b.tok", "a.tok"} {
		inputs = append(inputs, writeTokens(t, name, "vtype id semi vtype id semi"))
	}

	out := runBatch(t, inputs, BatchOptions{Jobs: 4})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	for i, in := range inputs {
		assert.Contains(t, lines[i], in)
	}
	assert.Equal(t, "parsed 5 files: 5 accepted, 0 rejected", lines[5])
}

func TestBatch_OutDir(t *testing.T) {
	dir := inTempDir(t)
	writeTokens(t, "prog.tok", "vtype id semi")

	runBatch(t, []string{"prog.tok"}, BatchOptions{OutDir: "results", Jobs: 1})

	assert.Contains(t, readFile(t, filepath.Join(dir, "results", "prog.out")), "Parsing successful!")
	_, err := os.Stat("prog.out")
	assert.True(t, os.IsNotExist(err))
}

func TestBatch_ZeroJobsStillRuns(t *testing.T) {
	inTempDir(t)
	writeTokens(t, "prog.tok", "foo")

	out := runBatch(t, []string{"prog.tok"}, BatchOptions{})
	assert.Contains(t, out, "parsed 1 file: 0 accepted, 1 rejected")
}

func TestBatch_MissingInputIsRejected(t *testing.T) {
	inTempDir(t)

	out := runBatch(t, []string{"nope.tok"}, BatchOptions{Jobs: 1})
	assert.Contains(t, out, "nope.tok")
	assert.Contains(t, out, "0 accepted, 1 rejected")
	assert.Contains(t, readFile(t, "nope.out"), "Error: opening nope.tok")
}

func TestBatch_RecordsRuns(t *testing.T) {
	inTempDir(t)
	writeTokens(t, "good.tok", "vtype id semi")
	writeTokens(t, "bad.tok", "foo")

	runBatch(t, []string{"good.tok", "bad.tok"}, BatchOptions{DB: "runs.db", Jobs: 2})

	sqlDB, err := db.Open("runs.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	runs, err := db.List(sqlDB, db.ListOptions{})
	require.NoError(t, err)
	require.Len(t, runs, 2)

	byPath := map[string]db.Run{}
	for _, r := range runs {
		byPath[r.FilePath] = r
	}
	assert.True(t, byPath["good.tok"].Accepted)
	assert.Equal(t, 3, byPath["good.tok"].TokenCount)
	assert.Empty(t, byPath["good.tok"].Diagnostic)
	assert.False(t, byPath["bad.tok"].Accepted)
	assert.Contains(t, byPath["bad.tok"].Diagnostic, "'foo'")
	assert.Equal(t, "builtin", byPath["bad.tok"].TableSource)
}

func TestBatch_RejectsCollidingOutputs(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.MkdirAll("a", 0o755))
	require.NoError(t, os.MkdirAll("b", 0o755))
	first := writeTokens(t, filepath.Join("a", "prog.tok"), "vtype id semi")
	second := writeTokens(t, filepath.Join("b", "prog.tok"), "foo")

	var buf bytes.Buffer
	err := RunBatch(&buf, []string{first, second}, BatchOptions{OutDir: "results", Jobs: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join("results", "prog.out"))
	assert.Empty(t, buf.String())
	_, statErr := os.Stat("results")
	assert.True(t, os.IsNotExist(statErr))

	// without --out-dir each output lands next to its own input
	runBatch(t, []string{first, second}, BatchOptions{Jobs: 2})
	assert.Contains(t, readFile(t, filepath.Join("a", "prog.out")), "Parsing successful!")
	assert.Contains(t, readFile(t, filepath.Join("b", "prog.out")), "Error: Unexpected token 'foo'")
}

func TestBatch_RejectsSameDirectorySameStem(t *testing.T) {
	inTempDir(t)
	writeTokens(t, "prog.tok", "vtype id semi")
	writeTokens(t, "prog.txt", "vtype id semi")

	var buf bytes.Buffer
	err := RunBatch(&buf, []string{"prog.tok", "prog.txt"}, BatchOptions{Jobs: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would both write prog.out")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("src", "prog.out"), outputPath(filepath.Join("src", "prog.tok"), ""))
	assert.Equal(t, filepath.Join("out", "prog.out"), outputPath(filepath.Join("src", "prog.tok"), "out"))
	assert.Equal(t, "noext.out", outputPath("noext", ""))
}
