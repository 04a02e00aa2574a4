package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// RotationFormat tags the encoding of rotation data in a kinematic description.
type RotationFormat string

// Supported rotation encodings.
const (
	// RotationFormatQuaternion is [w, x, y, z].
	RotationFormatQuaternion = RotationFormat("quaternion")
	// RotationFormatEulerZYXDegrees is [yaw, pitch, roll] in degrees, applied about Z, then Y, then X.
	RotationFormatEulerZYXDegrees = RotationFormat("euler-zyx-deg")
	// RotationFormatEulerZYXRadians is RotationFormatEulerZYXDegrees in radians.
	RotationFormatEulerZYXRadians = RotationFormat("euler-zyx-rad")
	// RotationFormatAxisAngle is [theta, x, y, z] with theta in radians.
	RotationFormatAxisAngle = RotationFormat("axis-angle")
	// RotationFormatAxisAngleDegrees is [theta, x, y, z] with theta in degrees.
	RotationFormatAxisAngleDegrees = RotationFormat("axis-angle-deg")
	// RotationFormatMatrix is the nine entries of a rotation matrix in row major order.
	RotationFormatMatrix = RotationFormat("matrix")
)

// SupportedRotationFormats lists every format NewRotation accepts.
func SupportedRotationFormats() []RotationFormat {
	return []RotationFormat{
		RotationFormatQuaternion,
		RotationFormatEulerZYXDegrees,
		RotationFormatEulerZYXRadians,
		RotationFormatAxisAngle,
		RotationFormatAxisAngleDegrees,
		RotationFormatMatrix,
	}
}

// NewRotation converts rotation data in the given encoding to the canonical unit quaternion.
// The encoding tag does not survive: every caller downstream only ever sees a *Quaternion.
func NewRotation(format RotationFormat, data []float64) (*Quaternion, error) {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, NewDegenerateRotationError(format, "rotation data is not finite")
		}
	}

	var o Orientation
	switch format {
	case RotationFormatQuaternion:
		if len(data) != 4 {
			return nil, NewInvalidRotationDataError(format, len(data), 4)
		}
		return NewQuaternion(data[0], data[1], data[2], data[3])
	case RotationFormatEulerZYXDegrees:
		if len(data) != 3 {
			return nil, NewInvalidRotationDataError(format, len(data), 3)
		}
		o = NewEulerAnglesDegrees(data[0], data[1], data[2])
	case RotationFormatEulerZYXRadians:
		if len(data) != 3 {
			return nil, NewInvalidRotationDataError(format, len(data), 3)
		}
		o = &EulerAngles{Yaw: data[0], Pitch: data[1], Roll: data[2]}
	case RotationFormatAxisAngle, RotationFormatAxisAngleDegrees:
		if len(data) != 4 {
			return nil, NewInvalidRotationDataError(format, len(data), 4)
		}
		axis := r3.Vector{X: data[1], Y: data[2], Z: data[3]}
		if axis.Norm() < quatNormTolerance {
			return nil, NewDegenerateRotationError(format, "rotation axis has zero length")
		}
		theta := data[0]
		if format == RotationFormatAxisAngleDegrees {
			theta *= degToRad
		}
		o = NewR4AAFromVector(theta, axis)
	case RotationFormatMatrix:
		rm, err := NewRotationMatrix(data)
		if err != nil {
			return nil, err
		}
		o = rm
	default:
		return nil, NewUnsupportedRotationFormatError(format)
	}

	q := o.Quaternion()
	return NewQuaternion(q.Real, q.Imag, q.Jmag, q.Kmag)
}
