package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"-C", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSimplifyCommand(t *testing.T) {
	out, err := run(t, "", "simplify", "<1,2>+<3,4>")
	require.NoError(t, err)
	assert.Equal(t, "<4, 6>\n", out)
}

func TestSimplifyCommandFromStdin(t *testing.T) {
	out, err := run(t, "<1,0,0> × <0,1,0>", "simplify", "--source")
	require.NoError(t, err)
	assert.Equal(t, "<1, 0, 0> × <0, 1, 0> = <0, 0, 1>\n", out)
}

func TestSimplifyCommandPrecision(t *testing.T) {
	out, err := run(t, "", "simplify", "-p", "2", "1.5*3")
	require.NoError(t, err)
	assert.Equal(t, "4.50\n", out)
}

func TestSimplifyCommandUnknownFormat(t *testing.T) {
	_, err := run(t, "", "simplify", "--format", "xml", "1")
	assert.Error(t, err)
}

func TestTokensCommand(t *testing.T) {
	out, err := run(t, "", "tokens", "<1,x>")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "Number")
	assert.Contains(t, lines[5], "EOF")
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "", "parse", "--positions=false", "1+2")
	require.NoError(t, err)
	assert.Equal(t, "Binary +\n  Number 1\n  Number 2\n", out)
}

func TestFmtCommand(t *testing.T) {
	out, err := run(t, "", "fmt", "[1,2;3,4]*<x,y>")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2; 3, 4] * <x, y>\n", out)
}

func TestFmtCommandWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.la")
	require.NoError(t, os.WriteFile(path, []byte("<1,2>+x"), 0644))

	_, err := run(t, "", "fmt", "-w", "-f", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<1, 2> + x\n", string(data))
}

func TestFmtCommandWriteNeedsFile(t *testing.T) {
	_, err := run(t, "", "fmt", "-w", "1")
	assert.Error(t, err)
}

func TestGrammarCheckCommand(t *testing.T) {
	out, err := run(t, "", "grammar", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok:")
}

func TestReadSource(t *testing.T) {
	src, err := readSource(strings.NewReader("from stdin"), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", src)

	src, err = readSource(strings.NewReader("ignored"), "", []string{"<1,", "2>"})
	require.NoError(t, err)
	assert.Equal(t, "<1, 2>", src)

	_, err = readSource(nil, filepath.Join(t.TempDir(), "missing.la"), nil)
	assert.Error(t, err)
}
