package referenceframe

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Input wraps the value of a single joint.
//   - revolute inputs are in degrees.
//   - prismatic inputs are in mm.
type Input struct {
	Value float64
}

// FloatsToInputs wraps a slice of floats in Inputs.
func FloatsToInputs(floats []float64) []Input {
	inputs := make([]Input, len(floats))
	for i, f := range floats {
		inputs[i] = Input{f}
	}
	return inputs
}

// InputsToFloats unwraps Inputs to raw floats.
func InputsToFloats(inputs []Input) []float64 {
	floats := make([]float64, len(inputs))
	for i, f := range inputs {
		floats[i] = f.Value
	}
	return floats
}

// InterpolateInputs returns the configuration a fraction `by` of the way along the straight joint space line
// from `from` to `to`; 0 gives from and 1 gives to. Both must have the same length.
func InterpolateInputs(from, to []Input, by float64) []Input {
	vals := InputsToFloats(to)
	start := InputsToFloats(from)
	floats.Sub(vals, start)
	floats.AddScaled(start, by, vals)
	return FloatsToInputs(start)
}

// InputsL2Distance returns the euclidean distance between two configurations, or +Inf when their lengths differ.
func InputsL2Distance(from, to []Input) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	return floats.Distance(InputsToFloats(from), InputsToFloats(to), 2)
}
