package main

import (
	"fmt"
	"os"
	"time"

	ai "github.com/cs-au-dk/absdom/analysis/absint"
	"github.com/cs-au-dk/absdom/analysis/cfg"
	"github.com/cs-au-dk/absdom/utils"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// pipeline holds the control-flow graphs of the functions selected for
// analysis.
type pipeline struct {
	path string
	cfgs []*cfg.Cfg
}

// loadPipeline parses the Go source file at path and keeps the function
// named fun, or every function when fun is empty.
func loadPipeline(path, fun string) (pipeline, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return pipeline{}, fmt.Errorf("reading %s: %w", path, err)
	}

	cfgs, err := cfg.ParseFile(path, src)
	if err != nil {
		return pipeline{}, err
	}

	if fun != "" {
		selected := cfgs[:0]
		for _, c := range cfgs {
			if c.Name() == fun {
				selected = append(selected, c)
			}
		}
		if len(selected) == 0 {
			return pipeline{}, fmt.Errorf("function %s not found in %s", fun, path)
		}
		cfgs = selected
	}

	return pipeline{path, cfgs}, nil
}

func (pl pipeline) options() ai.Options {
	return ai.Options{
		WideningThreshold: opts.WideningThreshold(),
		Logger:            utils.Logger(),
	}
}

// analysisName maps the task to the name of the analysis to run.
func analysisName() string {
	switch {
	case task.IsAvailableExpressions():
		return ai.AvailableExpressionsAnalysis
	case task.IsReachingDefinitions():
		return ai.ReachingDefinitionsAnalysis
	}
	return opts.Domain().Name()
}

// run executes the named analysis on every selected function.
func (pl pipeline) run(name string, do func(*cfg.Cfg, ai.Report) error) (metrics, error) {
	var ms metrics
	for _, c := range pl.cfgs {
		start := time.Now()
		report, err := ai.Analyze(name, c, pl.options())
		if err != nil {
			return ms, err
		}
		ms = append(ms, runMetrics{c.Name(), name, c.Size(), time.Since(start)})

		utils.Logger().Debug("analysis done",
			zap.String("function", c.Name()),
			zap.String("analysis", name),
			zap.Duration("elapsed", time.Since(start)))

		if err := do(c, report); err != nil {
			return ms, err
		}
	}
	return ms, nil
}

// printResults prints the state after every node of every selected function.
func (pl pipeline) printResults(name string) (metrics, error) {
	header := utils.CanColorize(color.New(color.FgCyan, color.Bold).SprintFunc())
	return pl.run(name, func(c *cfg.Cfg, report ai.Report) error {
		fmt.Println(header(c.Name()), "with", name)
		fmt.Print(report)
		fmt.Println()
		return nil
	})
}
