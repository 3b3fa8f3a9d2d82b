// Package indenter pretty prints nested collections, one entry per line,
// indenting every nesting level by two spaces.
package indenter

import (
	"fmt"
	"strings"
)

// indenter accumulates the output of a single pretty printing job.
// Every call to Indenter starts a fresh job, so concurrent printers never
// share state.
type indenter struct {
	buf   *strings.Builder
	level int
}

func Indenter() indenter {
	return indenter{buf: &strings.Builder{}}
}

// Nested returns an indenter that continues at one level deeper than i.
// It is used when an entry of a collection is itself a collection.
func (i indenter) Nested() indenter {
	return indenter{buf: &strings.Builder{}, level: i.level + 1}
}

func (i indenter) indent() string {
	return strings.Repeat("  ", i.level)
}

func (i indenter) Start(str string) indenter {
	i.buf.Reset()
	i.buf.WriteString(str)
	return i
}

type stringableString string

func (s stringableString) String() string {
	return string(s)
}

func (i indenter) NestStrings(strs ...string) indenter {
	return i.NestStringsSep("", strs...)
}

func (i indenter) NestStringsSep(sep string, strs ...string) indenter {
	stringers := make([]fmt.Stringer, len(strs))
	for i, v := range strs {
		stringers[i] = stringableString(v)
	}
	return i.NestSep(sep, stringers...)
}

func (i indenter) Nest(strs ...fmt.Stringer) indenter {
	return i.NestSep("", strs...)
}

// NestSep writes every entry on its own line, separated by sep. A single
// entry is kept on the current line.
func (i indenter) NestSep(sep string, strs ...fmt.Stringer) indenter {
	if len(strs) == 1 {
		i.buf.WriteString(strs[0].String())
		return i
	}

	i.level++
	for j, str := range strs {
		i.buf.WriteString("\n" + i.indent() + str.String())
		if j < len(strs)-1 {
			i.buf.WriteString(sep)
		}
	}
	i.level--
	i.buf.WriteString("\n")
	return i
}

func (i indenter) NestThunked(strs ...func() string) indenter {
	return i.NestThunkedSep("", strs...)
}

func (i indenter) NestThunkedSep(sep string, strs ...func() string) indenter {
	stringers := make([]fmt.Stringer, len(strs))
	for j, thunk := range strs {
		stringers[j] = stringableString(thunk())
	}
	return i.NestSep(sep, stringers...)
}

func (i indenter) End(str string) string {
	res := i.buf.String()
	if len(res) > 0 && res[len(res)-1] == '\n' {
		res += i.indent() + str
	} else {
		res += str
	}
	i.buf.Reset()
	return res
}
