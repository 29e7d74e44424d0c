package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-peak/dsp/integrate"
	"github.com/cwbudde/algo-peak/internal/curveio"
	"github.com/cwbudde/algo-peak/internal/logging"
	"github.com/cwbudde/algo-peak/internal/runconfig"
	"github.com/cwbudde/algo-peak/measure/peak"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { logging.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func synthFile(t *testing.T, args ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dsc.csv")
	_, _, err := run(t, "", append([]string{"synth", "--output", path}, args...)...)
	require.NoError(t, err)

	return path
}

func readCSV(t *testing.T, s string) (x, y []float64) {
	t.Helper()
	x, y, err := curveio.Read(strings.NewReader(s), "", "")
	require.NoError(t, err)
	return x, y
}

func TestSynth(t *testing.T) {
	out, _, err := run(t, "", "synth", "--points", "101", "--noise", "0")
	require.NoError(t, err)

	x, y := readCSV(t, out)
	require.Len(t, x, 101)
	assert.Equal(t, 700.0, x[0])
	assert.Equal(t, 1100.0, x[100])

	// The downward peak sits at x=900, index 50.
	assert.Less(t, y[50], y[40])
	assert.Less(t, y[50], y[60])

	up, _, err := run(t, "", "synth", "--points", "101", "--noise", "0", "--down=false")
	require.NoError(t, err)

	_, yu := readCSV(t, up)
	assert.Greater(t, yu[50], yu[40])
}

func TestExtractFromFlags(t *testing.T) {
	input := synthFile(t)

	out, stderr, err := run(t, "", "extract",
		"--input", input,
		"--left", "700,800",
		"--right", "1000,1100",
		"--pointing-down",
	)
	require.NoError(t, err)

	x, y := readCSV(t, out)
	require.NotEmpty(t, x)
	assert.InDelta(t, 1, integrate.Trapz(x, y), 1e-9)
	assert.Contains(t, stderr, "start=")
	assert.Contains(t, stderr, "tpib.read")
	assert.NotContains(t, stderr, "peak.iteration")
}

func TestExtractGridAndDebug(t *testing.T) {
	input := synthFile(t, "--noise", "0")

	out, stderr, err := run(t, "", "--debug", "extract",
		"--input", input,
		"--left", "700,800",
		"--right", "1000,1100",
		"--pointing-down",
		"--no-normalize",
		"--estimator", "repeated-median",
		"--grid", "25",
	)
	require.NoError(t, err)

	x, y := readCSV(t, out)
	require.Len(t, x, 25)
	assert.Greater(t, y[12], 0.0)
	assert.Contains(t, stderr, "peak.iteration")
	assert.Contains(t, stderr, "normalized=false")
}

func TestExtractFromRunFile(t *testing.T) {
	dir := t.TempDir()
	input := synthFile(t)

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curve.csv"), data, 0o644))

	output := filepath.Join(dir, "peak.csv")
	runFile := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(runFile, []byte(strings.Join([]string{
		"input: curve.csv",
		"output: " + output,
		"left: [700, 800]",
		"right: [1000, 1100]",
		"peak_pointing_down: true",
		"iterations: 20",
		"",
	}, "\n")), 0o644))

	stdout, _, err := run(t, "", "extract", "--config", runFile)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	x, y, err := curveio.Read(f, "", "")
	require.NoError(t, err)
	assert.InDelta(t, 1, integrate.Trapz(x, y), 1e-9)

	// A flag overrides the run file.
	stdout, _, err = run(t, "", "extract", "--config", runFile, "--output", "-", "--grid", "10")
	require.NoError(t, err)
	gx, _ := readCSV(t, stdout)
	assert.Len(t, gx, 10)
}

func TestExtractFromStdin(t *testing.T) {
	data, err := os.ReadFile(synthFile(t))
	require.NoError(t, err)

	out, _, err := run(t, string(data), "extract",
		"--input", "-",
		"--left", "700,800",
		"--right", "1000,1100",
		"--pointing-down",
	)
	require.NoError(t, err)

	x, _ := readCSV(t, out)
	assert.NotEmpty(t, x)
}

func TestExtractErrors(t *testing.T) {
	input := synthFile(t)

	t.Run("no input", func(t *testing.T) {
		_, _, err := run(t, "", "extract", "--left", "0,1", "--right", "2,3")
		require.ErrorIs(t, err, errNoInput)
	})

	t.Run("missing bounds", func(t *testing.T) {
		_, _, err := run(t, "", "extract", "--input", input)
		require.ErrorIs(t, err, runconfig.ErrInvalid)
	})

	t.Run("unknown estimator", func(t *testing.T) {
		_, _, err := run(t, "", "extract", "--input", input,
			"--left", "700,800", "--right", "1000,1100", "--estimator", "nope")
		require.ErrorIs(t, err, runconfig.ErrInvalid)
	})

	t.Run("no boundary", func(t *testing.T) {
		// A convex curve highest at its left edge never drops below the
		// left flank line.
		var csv strings.Builder
		csv.WriteString("x,y\n")
		for i := 0; i <= 40; i++ {
			d := float64(i - 20)
			fmt.Fprintf(&csv, "%d,%g\n", i, d*d)
		}

		_, _, err := run(t, csv.String(), "extract", "--input", "-",
			"--left", "0,10", "--right", "30,40")
		require.ErrorIs(t, err, peak.ErrNoBoundaryFound)
		assert.Contains(t, err.Error(), "left")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", "extract", "--input", filepath.Join(t.TempDir(), "none.csv"),
			"--left", "700,800", "--right", "1000,1100")
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
