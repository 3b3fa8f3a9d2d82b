package lattice

// ExtSignParityLattice is the reduced product of the extended sign and
// parity lattices.
type ExtSignParityLattice struct {
	lattice
}

var extSignParityLattice = &ExtSignParityLattice{}

func (l *ExtSignParityLattice) ExtSignParity() *ExtSignParityLattice {
	return l
}

func (*ExtSignParityLattice) String() string {
	return colorize.Lattice(extSignLattice.String() + " × " + parityLattice.String())
}

func (l *ExtSignParityLattice) Eq(o Lattice) bool {
	switch o := o.(type) {
	case *ExtSignParityLattice:
		return l == o
	default:
		return false
	}
}

func (*ExtSignParityLattice) Top() Element {
	return ExtSignParityTop
}

func (*ExtSignParityLattice) Bot() Element {
	return ExtSignParityBot
}

// Elements lists every reduced pair. Pairs that reduce to another pair are
// not members of the lattice.
func (*ExtSignParityLattice) Elements() (res []ExtSignParity) {
	for _, s := range extSignLattice.Elements() {
		for _, p := range parityLattice.Elements() {
			e := ExtSignParity{s, p}
			if e.Reduce() == e {
				res = append(res, e)
			}
		}
	}
	return res
}
