package kinematics

import (
	"github.com/pkg/errors"

	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/spatialmath"
)

// Sample returns steps+1 configurations evenly spaced in joint space from `from` to `to`, both included.
func Sample(from, to []referenceframe.Input, steps int) ([][]referenceframe.Input, error) {
	if len(from) != len(to) {
		return nil, referenceframe.NewConfigurationLengthMismatchError(len(to), len(from))
	}
	if steps < 1 {
		return nil, errors.Errorf("need at least one step, got %d", steps)
	}
	samples := make([][]referenceframe.Input, 0, steps+1)
	for i := 0; i <= steps; i++ {
		samples = append(samples, referenceframe.InterpolateInputs(from, to, float64(i)/float64(steps)))
	}
	return samples, nil
}

// PathLength sums the translation (mm) and rotation (radians) between consecutive poses.
func PathLength(poses []spatialmath.Pose) (float64, float64) {
	var dist, angle float64
	for i := 1; i < len(poses); i++ {
		d, a := spatialmath.PoseDelta(poses[i-1], poses[i])
		dist += d
		angle += a
	}
	return dist, angle
}
