// Package config loads the optional TOML configuration file of the analyzer.
// Values found in the file act as defaults for the command-line options.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Task              string `toml:"task"`
	Domain            string `toml:"domain"`
	Function          string `toml:"function"`
	Format            string `toml:"format"`
	WideningThreshold uint   `toml:"widening_threshold"`
	NoColorize        bool   `toml:"no_colorize"`
	Verbose           bool   `toml:"verbose"`
}

// MetaData records which keys were present in a decoded configuration file.
type MetaData struct {
	md toml.MetaData
}

// IsDefined reports whether the top-level key was set in the file.
func (m MetaData) IsDefined(key string) bool {
	return m.md.IsDefined(key)
}

var defaultConfig = Config{
	Task:              "values",
	Domain:            "extsign-parity",
	Format:            "svg",
	WideningThreshold: 3,
}

// Load decodes the configuration file at path on top of the defaults.
// Unknown keys are reported as an error.
func Load(path string) (Config, MetaData, error) {
	cfg := defaultConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, MetaData{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, MetaData{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, MetaData{md}, nil
}
