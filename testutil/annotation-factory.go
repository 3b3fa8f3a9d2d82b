package testutil

import (
	"fmt"
	"strings"

	"golang.org/x/tools/go/expect"
)

const (
	id_BOT         = "bot"
	id_AVAILABLE   = "available"
	id_UNAVAILABLE = "unavailable"
	id_REACHES     = "reaches"
	id_KILLED      = "killed"
)

// Value annotations are named after the domain. product stands for the
// reduced product of extended signs and parities.
var domainOfNote = map[string]string{
	"sign":    "sign",
	"extsign": "extsign",
	"parity":  "parity",
	"product": "extsign-parity",
}

// Convert expect.Identifier to string.
func idToStr(x interface{}) string {
	return string(x.(expect.Identifier))
}

type annFactory struct{}

// Factory for creating annotation strings. Interpolate
// results with Go source code. Wrap multiple factory calls
// in the At function to concatenate multiple annotations
// on the same line and prefix with "//@ "
var Ann = annFactory{}

// Value creates an annotation expecting x to have the value v in the
// domain named by note, e.g. extsign or product.
func (annFactory) Value(note, x, v string) string {
	return fmt.Sprintf("%s(%s, %q)", note, x, v)
}

func (annFactory) Bot(note string) string {
	return id_BOT + "(" + note + ")"
}

func (annFactory) Available(e string) string {
	return fmt.Sprintf("%s(%q)", id_AVAILABLE, e)
}

func (annFactory) Unavailable(e string) string {
	return fmt.Sprintf("%s(%q)", id_UNAVAILABLE, e)
}

func (annFactory) Reaches(x string, line int) string {
	return fmt.Sprintf("%s(%s, %d)", id_REACHES, x, line)
}

func (annFactory) Killed(x string, line int) string {
	return fmt.Sprintf("%s(%s, %d)", id_KILLED, x, line)
}

// Prefixes a sequence of strings with "//@ "
func At(anns ...string) string {
	return "//@ " + strings.Join(anns, ", ")
}

// CreateAnnotation interprets a note. Malformed notes are reported as
// errors.
func (mgr *NotesManager) CreateAnnotation(note *expect.Note) (Annotation, error) {
	basic := basicAnnotation{note, mgr}

	arity := func(n int) error {
		if len(note.Args) != n {
			return fmt.Errorf("%s: expected %d arguments", basic, n)
		}
		return nil
	}

	switch note.Name {
	case id_BOT:
		if err := arity(1); err != nil {
			return nil, err
		}
		dom, ok := domainOfNote[idToStr(note.Args[0])]
		if !ok {
			return nil, fmt.Errorf("%s: unknown domain", basic)
		}
		return AnnBot{basic, dom}, nil
	case id_AVAILABLE, id_UNAVAILABLE:
		if err := arity(1); err != nil {
			return nil, err
		}
		return AnnAvailable{basic, note.Args[0].(string), note.Name == id_AVAILABLE}, nil
	case id_REACHES, id_KILLED:
		if err := arity(2); err != nil {
			return nil, err
		}
		return AnnReaches{basic, idToStr(note.Args[0]), int(note.Args[1].(int64)), note.Name == id_REACHES}, nil
	}

	if dom, ok := domainOfNote[note.Name]; ok {
		if err := arity(2); err != nil {
			return nil, err
		}
		return AnnValue{basic, dom, idToStr(note.Args[0]), note.Args[1].(string)}, nil
	}
	return nil, fmt.Errorf("%s: unknown annotation", basic)
}
