package utils

import (
	"flag"
)

// MakePath returns the Go source file to analyze: the first non-flag
// argument passed to absdom. If no path is provided, it defaults to
// "main.go" in the working directory.
func MakePath() (path string) {
	args := flag.Args()
	if len(args) >= 1 {
		return args[0]
	}
	return "main.go"
}
