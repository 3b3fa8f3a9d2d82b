package lattice

// ParityLattice is the lattice of parities.
type ParityLattice struct {
	lattice
}

var parityLattice = &ParityLattice{}

func (l *ParityLattice) Parity() *ParityLattice {
	return l
}

func (*ParityLattice) String() string {
	return colorize.Lattice("Parity")
}

func (l *ParityLattice) Eq(o Lattice) bool {
	switch o := o.(type) {
	case *ParityLattice:
		return l == o
	default:
		return false
	}
}

func (*ParityLattice) Top() Element {
	return ParityTop
}

func (*ParityLattice) Bot() Element {
	return ParityBot
}

// Elements lists every member of the lattice.
func (*ParityLattice) Elements() []Parity {
	return []Parity{ParityBot, Even, Odd, ParityTop}
}
