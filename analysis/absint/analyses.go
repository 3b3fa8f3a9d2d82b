package absint

import (
	"fmt"
	"sort"

	"github.com/cs-au-dk/absdom/analysis/cfg"
	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/nonrel"
)

// Report is the printable result of an analysis.
type Report interface {
	String() string
	// At prints the state after n.
	At(n cfg.Node) string
}

const (
	AvailableExpressionsAnalysis = "available-expressions"
	ReachingDefinitionsAnalysis  = "reaching-definitions"
)

var analyses = map[string]func(*cfg.Cfg, Options) Report{
	nonrel.SignDomain{}.Name(): func(c *cfg.Cfg, o Options) Report {
		return Values[L.Sign](nonrel.SignDomain{}, c, o)
	},
	nonrel.ExtSignDomain{}.Name(): func(c *cfg.Cfg, o Options) Report {
		return Values[L.ExtSign](nonrel.ExtSignDomain{}, c, o)
	},
	nonrel.ParityDomain{}.Name(): func(c *cfg.Cfg, o Options) Report {
		return Values[L.Parity](nonrel.ParityDomain{}, c, o)
	},
	nonrel.ExtSignParityDomain{}.Name(): func(c *cfg.Cfg, o Options) Report {
		return Values[L.ExtSignParity](nonrel.ExtSignParityDomain{}, c, o)
	},
	AvailableExpressionsAnalysis: func(c *cfg.Cfg, o Options) Report {
		return AvailableExpressions(c, o)
	},
	ReachingDefinitionsAnalysis: func(c *cfg.Cfg, o Options) Report {
		return ReachingDefinitions(c, o)
	},
}

// Analyses lists the names accepted by Analyze: the value domains and the
// dataflow analyses.
func Analyses() []string {
	names := make([]string, 0, len(analyses))
	for name := range analyses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Analyze runs the analysis with the given name over c.
func Analyze(name string, c *cfg.Cfg, opts Options) (Report, error) {
	run, ok := analyses[name]
	if !ok {
		return nil, fmt.Errorf("unknown analysis %q", name)
	}
	return run(c, opts), nil
}
