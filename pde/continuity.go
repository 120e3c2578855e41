package pde

import "math"

// The continuity family: df/dt + v·grad(f) = sources with unit velocity,
// periodic boundaries, and manufactured separable solutions.

func negOne(x, t float64) float64 { return -1 }

func continuity1() Definition {
	return Definition{
		Name: "continuity_1",
		Dims: []Dimension{
			{Min: -1, Max: 1, Name: "x"},
		},
		Terms: [][]Term{
			{{Kind: Grad, G: negOne, Name: "v_x.d_dx"}},
		},
		Sources: []Source{
			{
				Space: []SpaceFunc{func(x float64) float64 { return math.Cos(2 * math.Pi * x) }},
				Time:  func(t float64) float64 { return 2 * math.Cos(2*t) },
			},
			{
				Space: []SpaceFunc{func(x float64) float64 { return math.Sin(2 * math.Pi * x) }},
				Time:  func(t float64) float64 { return -2 * math.Pi * math.Sin(2*t) },
			},
		},
		ExactSpace: []SpaceFunc{
			func(x float64) float64 { return math.Cos(2 * math.Pi * x) },
		},
		ExactTime:     func(t float64) float64 { return math.Sin(2 * t) },
		DefaultLevel:  2,
		DefaultDegree: 2,
	}
}

func continuity2() Definition {
	cosPiX := func(x float64) float64 { return math.Cos(math.Pi * x) }
	sinPiX := func(x float64) float64 { return math.Sin(math.Pi * x) }
	sin2PiY := func(y float64) float64 { return math.Sin(2 * math.Pi * y) }
	cos2PiY := func(y float64) float64 { return math.Cos(2 * math.Pi * y) }

	return Definition{
		Name: "continuity_2",
		Dims: []Dimension{
			{Min: -1, Max: 1, Name: "x"},
			{Min: -2, Max: 2, Name: "y"},
		},
		Terms: [][]Term{
			{{Kind: Grad, G: negOne, Name: "v_x.d_dx"}, Identity},
			{Identity, {Kind: Grad, G: negOne, Name: "v_y.d_dy"}},
		},
		Sources: []Source{
			{
				Space: []SpaceFunc{cosPiX, sin2PiY},
				Time:  func(t float64) float64 { return 2 * math.Cos(2*t) },
			},
			{
				Space: []SpaceFunc{cosPiX, cos2PiY},
				Time:  func(t float64) float64 { return 2 * math.Pi * math.Sin(2*t) },
			},
			{
				Space: []SpaceFunc{sinPiX, sin2PiY},
				Time:  func(t float64) float64 { return -math.Pi * math.Sin(2*t) },
			},
		},
		ExactSpace:    []SpaceFunc{cosPiX, sin2PiY},
		ExactTime:     func(t float64) float64 { return math.Sin(2 * t) },
		DefaultLevel:  2,
		DefaultDegree: 2,
	}
}

func continuity3() Definition {
	cosPiX := func(x float64) float64 { return math.Cos(math.Pi * x) }
	sinPiX := func(x float64) float64 { return math.Sin(math.Pi * x) }
	sin2PiY := func(y float64) float64 { return math.Sin(2 * math.Pi * y) }
	cos2PiY := func(y float64) float64 { return math.Cos(2 * math.Pi * y) }
	cos2PiZ3 := func(z float64) float64 { return math.Cos(2 * math.Pi * z / 3) }
	sin2PiZ3 := func(z float64) float64 { return math.Sin(2 * math.Pi * z / 3) }

	return Definition{
		Name: "continuity_3",
		Dims: []Dimension{
			{Min: -1, Max: 1, Name: "x"},
			{Min: -2, Max: 2, Name: "y"},
			{Min: -3, Max: 3, Name: "z"},
		},
		Terms: [][]Term{
			{{Kind: Grad, G: negOne, Name: "v_x.d_dx"}, Identity, Identity},
			{Identity, {Kind: Grad, G: negOne, Name: "v_y.d_dy"}, Identity},
			{Identity, Identity, {Kind: Grad, G: negOne, Name: "v_z.d_dz"}},
		},
		Sources: []Source{
			{
				Space: []SpaceFunc{cosPiX, sin2PiY, cos2PiZ3},
				Time:  func(t float64) float64 { return 2 * math.Cos(2*t) },
			},
			{
				Space: []SpaceFunc{cosPiX, cos2PiY, cos2PiZ3},
				Time:  func(t float64) float64 { return 2 * math.Pi * math.Sin(2*t) },
			},
			{
				Space: []SpaceFunc{sinPiX, sin2PiY, cos2PiZ3},
				Time:  func(t float64) float64 { return -math.Pi * math.Sin(2*t) },
			},
			{
				Space: []SpaceFunc{cosPiX, sin2PiY, sin2PiZ3},
				Time:  func(t float64) float64 { return -2.0 / 3.0 * math.Pi * math.Sin(2*t) },
			},
		},
		ExactSpace:    []SpaceFunc{cosPiX, sin2PiY, cos2PiZ3},
		ExactTime:     func(t float64) float64 { return math.Sin(2 * t) },
		DefaultLevel:  2,
		DefaultDegree: 2,
	}
}

// registry maps selection names to definitions.
var registry = map[string]func() Definition{
	"continuity_1": continuity1,
	"continuity_2": continuity2,
	"continuity_3": continuity3,
}

// Names lists the registered equation names.
func Names() []string {
	return []string{"continuity_1", "continuity_2", "continuity_3"}
}
