package pde

// TermKind selects the operator a term contributes in its owning dimension.
type TermKind int

const (
	// Mass is multiplication by the term's g function.
	Mass TermKind = iota

	// Grad is the first derivative weighted by the term's g function,
	// discretized with a central numerical flux and periodic boundaries.
	Grad
)

// GFunc is a term's pointwise coefficient function of position and time.
type GFunc func(x, t float64) float64

// SpaceFunc is one separable spatial component of a solution or source.
type SpaceFunc func(x float64) float64

// TimeFunc scales a separable function in time.
type TimeFunc func(t float64) float64

// Term is one factor of a separable operator term: the operator applied in
// a single dimension.
type Term struct {
	Kind TermKind
	G    GFunc
	Name string
}

// Identity is the mass term with unit coefficient, used in the dimensions a
// separable term leaves untouched.
var Identity = Term{Kind: Mass, G: func(x, t float64) float64 { return 1 }, Name: "mass"}

// Dimension is one spatial axis of an equation's domain.
type Dimension struct {
	Min, Max float64
	Name     string
}

// Width returns the domain extent.
func (d Dimension) Width() float64 { return d.Max - d.Min }

// Source is a separable source: one spatial component per dimension and a
// time scaling.
type Source struct {
	Space []SpaceFunc
	Time  TimeFunc
}

// Definition declares an equation symbolically, before discretization.
// Terms is indexed [term][dimension]; every row must cover every dimension.
type Definition struct {
	Name    string
	Dims    []Dimension
	Terms   [][]Term
	Sources []Source

	// separable initial condition; nil starts from zero
	Initial []SpaceFunc

	// separable exact solution, when the equation has one
	ExactSpace []SpaceFunc
	ExactTime  TimeFunc

	DefaultLevel  int
	DefaultDegree int
}
