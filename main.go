package main

import (
	"time"

	"github.com/cs-au-dk/absdom/utils"
	"go.uber.org/zap"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()
	path := utils.MakePath()
	logger := utils.Logger()
	defer func() { _ = logger.Sync() }()
	defer utils.TimeTrack(time.Now(), "absdom")

	pl, err := loadPipeline(path, opts.Function())
	if err != nil {
		logger.Fatal("Failed to load the target", zap.String("path", path), zap.Error(err))
	}
	logger.Debug("loaded target", zap.String("path", path), zap.Int("functions", len(pl.cfgs)))

	done, ms, err := pl.secondaryTask()
	if !done {
		ms, err = pl.printResults(analysisName())
	}
	gatherMetrics(ms)
	if err != nil {
		logger.Fatal("Analysis failed", zap.Error(err))
	}
}
