package lattice

// SignLattice is the lattice of signs.
type SignLattice struct {
	lattice
}

var signLattice = &SignLattice{}

func (l *SignLattice) Sign() *SignLattice {
	return l
}

func (*SignLattice) String() string {
	return colorize.Lattice("Sign")
}

func (l *SignLattice) Eq(o Lattice) bool {
	switch o := o.(type) {
	case *SignLattice:
		return l == o
	default:
		return false
	}
}

func (*SignLattice) Top() Element {
	return SignTop
}

func (*SignLattice) Bot() Element {
	return SignBot
}

// Elements lists every member of the lattice.
func (*SignLattice) Elements() []Sign {
	return []Sign{SignBot, SignNeg, SignZero, SignPos, SignTop}
}
