package main

import (
	"fmt"
	"os"
	"path/filepath"

	ai "github.com/cs-au-dk/absdom/analysis/absint"
	"github.com/cs-au-dk/absdom/analysis/cfg"
)

// outputName picks the destination of the rendering of fun, without the
// format extension.
func outputName(base, fun string, many bool) string {
	switch {
	case base == "":
		return filepath.Join(os.TempDir(), "absdom_"+fun)
	case many:
		return base + "_" + fun
	}
	return base
}

// secondaryTask checks whether a task other than printing analysis results
// was provided, and executes it.
func (pl pipeline) secondaryTask() (bool, metrics, error) {
	switch {
	// cfg-to-dot : renders the CFG of every selected function, with the
	// value analysis result at every node.
	case task.IsCfgToDot():
		many := len(pl.cfgs) > 1
		ms, err := pl.run(opts.Domain().Name(), func(c *cfg.Cfg, report ai.Report) error {
			out, err := c.Render(outputName(opts.Output(), c.Name(), many), opts.OutputFormat(), report.At)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		})
		return true, ms, err
	}
	return false, nil, nil
}
