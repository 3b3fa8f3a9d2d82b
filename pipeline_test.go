package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ai "github.com/cs-au-dk/absdom/analysis/absint"
	"github.com/cs-au-dk/absdom/analysis/cfg"
	"github.com/cs-au-dk/absdom/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.Opts().SetNoColorize(true)
	os.Exit(m.Run())
}

const program = `package p

func inc(x int) int {
	return x + 1
}

func dec(x int) int {
	return x - 1
}
`

func writeProgram(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.go")
	require.NoError(t, os.WriteFile(path, []byte(program), 0644))
	return path
}

func TestLoadPipeline(t *testing.T) {
	path := writeProgram(t)

	pl, err := loadPipeline(path, "")
	require.NoError(t, err)
	require.Len(t, pl.cfgs, 2)
	assert.Equal(t, "inc", pl.cfgs[0].Name())
	assert.Equal(t, "dec", pl.cfgs[1].Name())

	pl, err = loadPipeline(path, "dec")
	require.NoError(t, err)
	require.Len(t, pl.cfgs, 1)
	assert.Equal(t, "dec", pl.cfgs[0].Name())

	_, err = loadPipeline(path, "main")
	assert.ErrorContains(t, err, "function main not found")

	_, err = loadPipeline(filepath.Join(t.TempDir(), "missing.go"), "")
	assert.ErrorContains(t, err, "reading")
}

func TestRunCollectsMetrics(t *testing.T) {
	pl, err := loadPipeline(writeProgram(t), "")
	require.NoError(t, err)

	var seen []string
	ms, err := pl.run(ai.ReachingDefinitionsAnalysis, func(c *cfg.Cfg, report ai.Report) error {
		seen = append(seen, c.Name())
		assert.Equal(t, "∅", report.At(c.Exit()))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"inc", "dec"}, seen)
	require.Len(t, ms, 2)
	assert.Equal(t, "inc", ms[0].function)
	assert.Equal(t, pl.cfgs[0].Size(), ms[0].nodes)
	assert.True(t, strings.HasPrefix(ms.String(), "Analyzed 2 functions in "))
	assert.Contains(t, ms.String(), "\n  inc (reaching-definitions): ")

	_, err = pl.run("interval", func(*cfg.Cfg, ai.Report) error { return nil })
	assert.ErrorContains(t, err, `unknown analysis "interval"`)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "out", outputName("out", "f", false))
	assert.Equal(t, "out_f", outputName("out", "f", true))
	assert.Equal(t, filepath.Join(os.TempDir(), "absdom_T.m"), outputName("", "T.m", true))
}
