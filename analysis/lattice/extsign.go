package lattice

// ExtSign is a member of the extended sign lattice:
//
//	            ⊤
//	          /   \
//	        0-     0+
//	       /  \   /  \
//	      -     0     +
//	       \    |    /
//	            ⊥
//
// Every element denotes a set of the concrete sign classes
// negative (n), zero (z) and positive (p). The lattice operations are
// computed on those sets and mapped back to the closest element above:
//
//	╔════╦═════════╗
//	║ e  ║ γ(e)    ║
//	╠════╬═════════╣
//	║ ⊥  ║ ∅       ║
//	║ -  ║ {n}     ║
//	║ 0  ║ {z}     ║
//	║ +  ║ {p}     ║
//	║ 0- ║ {n,z}   ║
//	║ 0+ ║ {z,p}   ║
//	║ ⊤  ║ {n,z,p} ║
//	╚════╩═════════╝
//
// {n,p} has no element of its own and is abstracted to ⊤.
type ExtSign uint8

const (
	ExtSignBot ExtSign = iota
	ExtSignNeg
	ExtSignZero
	ExtSignPos
	ExtSignNegOrZero
	ExtSignPosOrZero
	ExtSignTop
)

// signClasses is a set of concrete sign classes.
type signClasses uint8

const (
	classNeg signClasses = 1 << iota
	classZero
	classPos
)

var extSignGamma = [...]signClasses{
	ExtSignBot:       0,
	ExtSignNeg:       classNeg,
	ExtSignZero:      classZero,
	ExtSignPos:       classPos,
	ExtSignNegOrZero: classNeg | classZero,
	ExtSignPosOrZero: classZero | classPos,
	ExtSignTop:       classNeg | classZero | classPos,
}

var extSignAlpha = [...]ExtSign{
	0:                               ExtSignBot,
	classNeg:                        ExtSignNeg,
	classZero:                       ExtSignZero,
	classPos:                        ExtSignPos,
	classNeg | classZero:            ExtSignNegOrZero,
	classZero | classPos:            ExtSignPosOrZero,
	classNeg | classPos:             ExtSignTop,
	classNeg | classZero | classPos: ExtSignTop,
}

func (e ExtSign) gamma() signClasses {
	return extSignGamma[e]
}

func (c signClasses) alpha() ExtSign {
	return extSignAlpha[c]
}

// ExtSign abstracts an integer.
func (elementFactory) ExtSign(n int64) ExtSign {
	switch {
	case n > 0:
		return ExtSignPos
	case n < 0:
		return ExtSignNeg
	}
	return ExtSignZero
}

// Lattice retrieves the extended sign lattice.
func (ExtSign) Lattice() Lattice {
	return extSignLattice
}

func (e ExtSign) String() string {
	switch e {
	case ExtSignBot:
		return "⊥"
	case ExtSignNeg:
		return "-"
	case ExtSignZero:
		return "0"
	case ExtSignPos:
		return "+"
	case ExtSignNegOrZero:
		return "0-"
	case ExtSignPosOrZero:
		return "0+"
	case ExtSignTop:
		return "⊤"
	}
	panic(errPatternMatch(uint8(e)))
}

func (e ExtSign) Height() int {
	switch e {
	case ExtSignBot:
		return 0
	case ExtSignNeg, ExtSignZero, ExtSignPos:
		return 1
	case ExtSignNegOrZero, ExtSignPosOrZero:
		return 2
	}
	return 3
}

func (e ExtSign) IsTop() bool {
	return e == ExtSignTop
}

func (e ExtSign) IsBot() bool {
	return e == ExtSignBot
}

func (e1 ExtSign) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

func (e1 ExtSign) eq(e2 Element) bool {
	return e1 == e2.(ExtSign)
}

func (e1 ExtSign) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

func (e1 ExtSign) leq(e2 Element) bool {
	return e1.MonoLeq(e2.(ExtSign))
}

// MonoLeq is the order of the Hasse diagram: γ(e1) ⊆ γ(e2).
func (e1 ExtSign) MonoLeq(e2 ExtSign) bool {
	return e1.gamma()&^e2.gamma() == 0
}

func (e1 ExtSign) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

func (e1 ExtSign) geq(e2 Element) bool {
	return e2.leq(e1)
}

func (e1 ExtSign) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

func (e1 ExtSign) join(e2 Element) Element {
	return e1.MonoJoin(e2.(ExtSign))
}

// MonoJoin returns the larger of two comparable elements, 0+ or 0- when
// joining 0 with + or -, and ⊤ otherwise.
func (e1 ExtSign) MonoJoin(e2 ExtSign) ExtSign {
	return (e1.gamma() | e2.gamma()).alpha()
}

// MonoWiden coincides with the join, since the lattice has finite height.
func (e1 ExtSign) MonoWiden(e2 ExtSign) ExtSign {
	return e1.MonoJoin(e2)
}

func (e1 ExtSign) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

func (e1 ExtSign) meet(e2 Element) Element {
	return e1.MonoMeet(e2.(ExtSign))
}

// MonoMeet returns the smaller of two comparable elements, 0 for 0+ ⊓ 0-,
// and ⊥ otherwise.
func (e1 ExtSign) MonoMeet(e2 ExtSign) ExtSign {
	return (e1.gamma() & e2.gamma()).alpha()
}

var _ = isValue[ExtSign]
