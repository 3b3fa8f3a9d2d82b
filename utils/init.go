package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/cs-au-dk/absdom/config"
	"github.com/cs-au-dk/absdom/utils/slices"
)

type options struct {
	wideningThreshold uint
	function          string
	outputFormat      string
	output            string
	configPath        string
	task              string
	domain            string
	noColorize        bool
	verbose           bool
}

const (
	_VALUES = iota
	_AVAILABLE_EXPRESSIONS
	_REACHING_DEFINITIONS
	_CFG_TO_DOT
)

const (
	_DOMAIN_SIGN = iota
	_DOMAIN_EXTSIGN
	_DOMAIN_PARITY
	_DOMAIN_EXTSIGN_PARITY
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

// choice is a valid value of an enumerated flag.
type choice struct{ flag, explanation string }

func isChoice(choices []choice, flag string) bool {
	_, ok := slices.Find(choices, func(c choice) bool { return c.flag == flag })
	return ok
}

var task = []choice{{
	"values",
	"Run the value analysis selected with -domain and print the abstract environment at every statement",
}, {
	"available-expressions",
	"Run the available expressions (must) analysis",
}, {
	"reaching-definitions",
	"Run the reaching definitions (may) analysis",
}, {
	"cfg-to-dot",
	"Render the control-flow graph of the target function, annotated with the value analysis result",
}}

var domains = []choice{{
	"sign",
	"Sign lattice: ⊥, -, 0, +, ⊤",
}, {
	"extsign",
	"Extended sign lattice: adds 0- and 0+",
}, {
	"parity",
	"Parity lattice: ⊥, Even, Odd, ⊤",
}, {
	"extsign-parity",
	"Reduced product of extended sign and parity",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

type domainInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

// SetNoColorize toggles colorized pretty printing. Tests use it to get
// stable textual output.
func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

func (optInterface) WideningThreshold() int {
	return int(opts.wideningThreshold)
}

func (optInterface) Function() string {
	return opts.function
}

func (optInterface) OutputFormat() string {
	return opts.outputFormat
}

func (optInterface) Output() string {
	return opts.output
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}

func (taskInterface) IsAvailableExpressions() bool {
	return opts.task == task[_AVAILABLE_EXPRESSIONS].flag
}

func (taskInterface) IsReachingDefinitions() bool {
	return opts.task == task[_REACHING_DEFINITIONS].flag
}

func (taskInterface) IsCfgToDot() bool {
	return opts.task == task[_CFG_TO_DOT].flag
}

func (optInterface) Domain() domainInterface {
	return domainInterface{}
}

func (domainInterface) Name() string {
	return opts.domain
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"
	domainFlag := "\n"
	for _, dom := range domains {
		domainFlag += dom.flag + " -- " + dom.explanation + "\n"
	}
	domainFlag += "\n"

	flag.StringVar(&(opts.function), "fun", "", "name of the function to analyze. Every function in the file is analyzed when empty.")
	flag.StringVar(&(opts.outputFormat), "format", "svg", "output file format for -task=cfg-to-dot [dot | svg | png | jpg]")
	flag.StringVar(&(opts.output), "o", "", "output file (without extension) for -task=cfg-to-dot. Defaults to a temporary file.")
	flag.StringVar(&(opts.configPath), "config", "", "TOML file providing default values for the options.")
	flag.StringVar(&(opts.task), "task", task[_VALUES].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.StringVar(&(opts.domain), "domain", domains[_DOMAIN_EXTSIGN_PARITY].flag, "Value domain used by the value analysis. Options:"+domainFlag)
	flag.UintVar(&(opts.wideningThreshold), "widen", 3, "number of visits of a loop head after which widening replaces join")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

// applyConfig fills in every option that was not explicitly given on the
// command line with the value found in the configuration file.
func applyConfig(cfg config.Config, meta config.MetaData, explicit map[string]bool) {
	set := func(flagName string, key string, do func()) {
		if !explicit[flagName] && meta.IsDefined(key) {
			do()
		}
	}

	set("task", "task", func() { opts.task = cfg.Task })
	set("domain", "domain", func() { opts.domain = cfg.Domain })
	set("fun", "function", func() { opts.function = cfg.Function })
	set("format", "format", func() { opts.outputFormat = cfg.Format })
	set("widen", "widening_threshold", func() { opts.wideningThreshold = cfg.WideningThreshold })
	set("no-colorize", "no_colorize", func() { opts.noColorize = cfg.NoColorize })
	set("verbose", "verbose", func() { opts.verbose = cfg.Verbose })
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	flag.Parse()

	if opts.configPath != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

		cfg, meta, err := config.Load(opts.configPath)
		if err != nil {
			log.Fatalf("Could not load configuration: %v", err)
		}
		applyConfig(cfg, meta, explicit)
	}

	if !isChoice(task, opts.task) {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}
	if !isChoice(domains, opts.domain) {
		log.Fatalf("Value \"%s\" is not valid for -domain", opts.domain)
	}
	if !slices.OneOf(opts.outputFormat, "dot", "svg", "png", "jpg") {
		log.Fatalf("Value \"%s\" is not valid for -format", opts.outputFormat)
	}

	if Opts().Task().IsCfgToDot() {
		opts.noColorize = true
	}
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
