package main

import (
	"fmt"
	"time"

	"github.com/cs-au-dk/absdom/utils"
	"github.com/cs-au-dk/absdom/utils/indenter"
	"github.com/fatih/color"
)

type runMetrics struct {
	function string
	analysis string
	nodes    int
	elapsed  time.Duration
}

type metrics []runMetrics

// String lists the runs, one per line, after the total time spent.
func (ms metrics) String() string {
	highlight := utils.CanColorize(color.New(color.FgGreen).SprintFunc())

	var total time.Duration
	runs := make([]string, len(ms))
	for i, m := range ms {
		runs[i] = fmt.Sprintf("%s (%s): %d nodes in %s",
			m.function, m.analysis, m.nodes, highlight(m.elapsed.String()))
		total += m.elapsed
	}

	return indenter.Indenter().
		Start(fmt.Sprintf("Analyzed %d functions in %s {", len(ms), highlight(total.String()))).
		NestStringsSep(",", runs...).
		End("}")
}

// gatherMetrics prints the timing of every analysis run with -verbose.
func gatherMetrics(ms metrics) {
	if len(ms) == 0 {
		return
	}
	opts.OnVerbose(func() {
		fmt.Println(ms)
	})
}
