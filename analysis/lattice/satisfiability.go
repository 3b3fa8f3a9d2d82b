package lattice

// Satisfiability is the three-valued outcome of evaluating a predicate over
// abstract values.
type Satisfiability uint8

const (
	// Unknown means that the predicate may or may not hold.
	Unknown Satisfiability = iota
	// Satisfied means that the predicate holds for every concrete value.
	Satisfied
	// NotSatisfied means that the predicate holds for no concrete value.
	NotSatisfied
)

// SatisfiabilityOf lifts a concrete truth value.
func SatisfiabilityOf(b bool) Satisfiability {
	if b {
		return Satisfied
	}
	return NotSatisfied
}

func (s Satisfiability) String() string {
	switch s {
	case Satisfied:
		return "satisfied"
	case NotSatisfied:
		return "not satisfied"
	case Unknown:
		return "unknown"
	}
	panic(errPatternMatch(uint8(s)))
}

// Negate computes ¬s.
func (s Satisfiability) Negate() Satisfiability {
	switch s {
	case Satisfied:
		return NotSatisfied
	case NotSatisfied:
		return Satisfied
	}
	return Unknown
}

// And computes s ∧ o.
func (s Satisfiability) And(o Satisfiability) Satisfiability {
	switch {
	case s == NotSatisfied || o == NotSatisfied:
		return NotSatisfied
	case s == Satisfied && o == Satisfied:
		return Satisfied
	}
	return Unknown
}

// Or computes s ∨ o.
func (s Satisfiability) Or(o Satisfiability) Satisfiability {
	switch {
	case s == Satisfied || o == Satisfied:
		return Satisfied
	case s == NotSatisfied && o == NotSatisfied:
		return NotSatisfied
	}
	return Unknown
}

// Join merges the outcomes of two paths: they agree or the result is
// unknown.
func (s Satisfiability) Join(o Satisfiability) Satisfiability {
	if s == o {
		return s
	}
	return Unknown
}

// Refine combines two sound answers to the same question, e.g. the answers
// of the two components of a product domain. A definite answer wins.
func (s Satisfiability) Refine(o Satisfiability) Satisfiability {
	if s != Unknown {
		return s
	}
	return o
}

// IsDefinite holds for Satisfied and NotSatisfied.
func (s Satisfiability) IsDefinite() bool {
	return s != Unknown
}
