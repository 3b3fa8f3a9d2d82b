package testutil

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cs-au-dk/absdom/analysis/cfg"
)

// LoadResult contains the CFGs of every function declared in a Go source
// file, together with the annotations found in its comments.
type LoadResult struct {
	// Name identifies the loaded program, e.g. the example directory.
	Name string
	Fset *token.FileSet
	// Cfgs are the CFGs of the functions in declaration order.
	Cfgs  []*cfg.Cfg
	Notes *NotesManager
}

// Cfg retrieves the CFG of the function named fun.
func (l LoadResult) Cfg(t *testing.T, fun string) *cfg.Cfg {
	t.Helper()
	for _, c := range l.Cfgs {
		if c.Name() == fun {
			return c
		}
	}
	t.Fatalf("function %s not found in %s", fun, l.Name)
	return nil
}

// LoadSource parses content as a Go file named filename. Only the base name
// appears in the code locations of the CFG nodes.
func LoadSource(t *testing.T, filename string, content string) LoadResult {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filepath.Base(filename), content, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", filename, err)
	}

	res := LoadResult{
		Name: filename,
		Fset: fset,
		Cfgs: cfg.FromAST(fset, file),
	}
	res.Notes = MakeNotesManager(t, res, file)
	return res
}

// LoadCfg parses content and returns the CFG of fun.
func LoadCfg(t *testing.T, content string, fun string) *cfg.Cfg {
	t.Helper()
	return LoadSource(t, "prog.go", content).Cfg(t, fun)
}

// examplesDir is the location of the example programs relative to the root
// of the module.
const examplesDir = "examples/src"

// LoadExample loads the main.go file of the example program in the given
// directory of examples/src. root is the path of the module root relative to
// the directory of the test.
func LoadExample(t *testing.T, root string, example string) LoadResult {
	t.Helper()

	path := filepath.Join(root, examplesDir, example, "main.go")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read example %s: %v", example, err)
	}

	res := LoadSource(t, path, string(content))
	res.Name = example
	return res
}

// ListExamples lists the example programs in sorted order.
func ListExamples(t *testing.T, root string) []string {
	t.Helper()

	entries, err := os.ReadDir(filepath.Join(root, examplesDir))
	if err != nil {
		t.Fatalf("failed to list examples: %v", err)
	}

	var examples []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(root, examplesDir, entry.Name(), "main.go")); err == nil {
			examples = append(examples, entry.Name())
		}
	}
	sort.Strings(examples)
	return examples
}
