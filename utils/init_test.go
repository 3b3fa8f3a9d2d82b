package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cs-au-dk/absdom/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfigKeepsExplicitFlags(t *testing.T) {
	saved := *opts
	defer func() { *opts = saved }()

	path := filepath.Join(t.TempDir(), "absdom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
task = "reaching-definitions"
domain = "sign"
widening_threshold = 9
`), 0644))

	cfg, meta, err := config.Load(path)
	require.NoError(t, err)

	opts.task = "values"
	opts.domain = "parity"
	opts.wideningThreshold = 3
	opts.function = "main"

	applyConfig(cfg, meta, map[string]bool{"domain": true})

	assert.True(t, Opts().Task().IsReachingDefinitions())
	assert.Equal(t, "parity", Opts().Domain().Name(), "explicit -domain must win over the file")
	assert.Equal(t, 9, Opts().WideningThreshold())
	assert.Equal(t, "main", Opts().Function())
}

func TestCanColorize(t *testing.T) {
	saved := opts.noColorize
	defer func() { opts.noColorize = saved }()

	red := func(is ...interface{}) string { return "<red>" }

	opts.noColorize = true
	assert.Equal(t, "ab", CanColorize(red)("a", "b"))

	opts.noColorize = false
	assert.Equal(t, "<red>", CanColorize(red)("a"))
}

func TestIsChoice(t *testing.T) {
	assert.True(t, isChoice(task, "cfg-to-dot"))
	assert.True(t, isChoice(domains, "extsign-parity"))
	assert.False(t, isChoice(domains, "interval"))
}
