package lattice

// ExtSignLattice is the lattice of extended signs.
type ExtSignLattice struct {
	lattice
}

var extSignLattice = &ExtSignLattice{}

func (l *ExtSignLattice) ExtSign() *ExtSignLattice {
	return l
}

func (*ExtSignLattice) String() string {
	return colorize.Lattice("ExtSign")
}

func (l *ExtSignLattice) Eq(o Lattice) bool {
	switch o := o.(type) {
	case *ExtSignLattice:
		return l == o
	default:
		return false
	}
}

func (*ExtSignLattice) Top() Element {
	return ExtSignTop
}

func (*ExtSignLattice) Bot() Element {
	return ExtSignBot
}

// Elements lists every member of the lattice.
func (*ExtSignLattice) Elements() []ExtSign {
	return []ExtSign{
		ExtSignBot, ExtSignNeg, ExtSignZero, ExtSignPos,
		ExtSignNegOrZero, ExtSignPosOrZero, ExtSignTop,
	}
}
