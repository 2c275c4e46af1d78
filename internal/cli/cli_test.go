package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenarios(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"crossing edges", "0 0,0 1,2 0\n1 0,1 1,3 0\n", "OK\n"},
		{"disjoint squares", "0 0,0 4,4 4,4 0\n10 10,10 14,14 14,14 10\n", "NOK\n"},
		{"square inside square", "0 0,0 4,4 4,4 0\n1 1,1 2,2 2,2 1\n", "OK\n"},
		{"shared edge", "0 0,0 2,2 2,2 0\n2 0,2 2,4 2,4 0\n", "OK\n"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			status, stdout, stderr := run(t, c.input)
			assert.Equal(t, StatusOK, status)
			assert.Equal(t, c.expected, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRunExplain(t *testing.T) {
	status, stdout, _ := run(t, "0 0,0 4,4 4,4 0\n1 1,1 2,2 2,2 1\n", "--explain")
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "OK\nsecond polygon inside first\n", stdout)

	_, stdout, _ = run(t, "0 0,0 1,2 0\n1 0,1 1,3 0\n", "--explain")
	assert.Equal(t, "OK\nedges intersect: edge 1 of first, edge 1 of second\n", stdout)
}

func TestRunColor(t *testing.T) {
	_, stdout, _ := run(t, "0 0,0 4,4 4,4 0\n10 10,10 14,14 14,14 10\n", "--color")
	assert.Contains(t, stdout, "NOK")
	assert.Contains(t, stdout, "\x1b[")
}

func TestRunVerbose(t *testing.T) {
	_, stdout, stderr := run(t, "0 0,0 4,4 4,4 0\n10 10,10 14,14 14,14 10\n", "-v")
	assert.Equal(t, "NOK\n", stdout)
	assert.Contains(t, stderr, "normalized polygons")
	assert.Contains(t, stderr, "are apart")
	assert.Contains(t, stderr, "overlap check finished")
}

func TestRunBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   string
	}{
		{"missing line", "0 0,0 1,2 0\n", "expected 2 polygon lines, got 1"},
		{"bad number", "0 0,0 x,2 0\n1 0,1 1,3 0\n", "line 1: point 2: y: invalid integer"},
		{"collinear", "0 0,1 1,2 2\n1 0,1 1,3 0\n", "first polygon: degenerate polygon"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			status, stdout, stderr := run(t, c.input)
			assert.Equal(t, StatusBadInput, status)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "invalid input")
			assert.Contains(t, stderr, c.err)
		})
	}
}

func TestRunSVG(t *testing.T) {
	status, stdout, _ := run(t, "", "--svg", filepath.Join("testdata", "nested.svg"), "--explain")
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "OK\nsecond polygon inside first\n", stdout)

	status, stdout, _ = run(t, "", "--svg", filepath.Join("testdata", "disjoint.svg"))
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "NOK\n", stdout)
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	status, stdout, _ := run(t, "0 0,0 1,2 0\n1 0,1 1,3 0\n", "--png", path)
	require.Equal(t, StatusOK, status)
	assert.Equal(t, "OK\n", stdout)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunUsageErrors(t *testing.T) {
	status, _, stderr := run(t, "", "--no-such-flag")
	assert.Equal(t, StatusUsage, status)
	assert.Contains(t, stderr, "no-such-flag")

	status, _, stderr = run(t, "", "--imgcat")
	assert.Equal(t, StatusUsage, status)
	assert.Contains(t, stderr, "--imgcat requires --png")

	status, _, _ = run(t, "", "--svg", filepath.Join("testdata", "missing.svg"))
	assert.Equal(t, StatusUsage, status)
}

func TestReadInputOpenError(t *testing.T) {
	path := filepath.Join("testdata", "missing.svg")
	_, _, err := readInput(options{svg: path}, strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), path+": "), err.Error())
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestRunHelp(t *testing.T) {
	status, stdout, stderr := run(t, "", "--help")
	assert.Equal(t, StatusOK, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "polyoverlap")
}

// Helpers

func run(t *testing.T, input string, args ...string) (status int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	status = Run(args, strings.NewReader(input), &out, &errOut)
	return status, out.String(), errOut.String()
}
