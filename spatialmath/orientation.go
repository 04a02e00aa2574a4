package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
	EulerAngles() *EulerAngles
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &Quaternion{Real: 1}
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
// q and -q are treated as the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return SameRotation(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// OrientationAlmostEqualEps is OrientationAlmostEqual with a caller supplied tolerance.
func OrientationAlmostEqualEps(o1, o2 Orientation, epsilon float64) bool {
	return SameRotation(o1.Quaternion(), o2.Quaternion(), epsilon)
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	q := Quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &q
}

// OrientationBetweenVectors returns the shortest-arc rotation taking the direction of from onto the
// direction of to. Antiparallel inputs are resolved with a half turn about an arbitrary perpendicular.
func OrientationBetweenVectors(from, to r3.Vector) Orientation {
	if from.Norm2() == 0 || to.Norm2() == 0 {
		return NewZeroOrientation()
	}
	a := from.Normalize()
	b := to.Normalize()
	d := a.Dot(b)
	switch {
	case d > 1-1e-12:
		return NewZeroOrientation()
	case d < -1+1e-12:
		perp := a.Cross(r3.Vector{X: 1})
		if perp.Norm2() < 1e-12 {
			perp = a.Cross(r3.Vector{Y: 1})
		}
		perp = perp.Normalize()
		return &Quaternion{Imag: perp.X, Jmag: perp.Y, Kmag: perp.Z}
	}
	c := a.Cross(b)
	q := Quaternion(normalizeQuat(quat.Number{Real: 1 + d, Imag: c.X, Jmag: c.Y, Kmag: c.Z}))
	return &q
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions have double
// coverage, q == -q, and this function will *not* account for that. Use OrientationAlmostEqual unless you're certain
// this is what you want.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) < tol &&
		math.Abs(a.Imag-b.Imag) < tol &&
		math.Abs(a.Jmag-b.Jmag) < tol &&
		math.Abs(a.Kmag-b.Kmag) < tol
}

// SameRotation reports whether two quaternions describe the same rotation, accounting for double coverage.
func SameRotation(a, b quat.Number, tol float64) bool {
	return QuaternionAlmostEqual(a, b, tol) || QuaternionAlmostEqual(a, Flip(b), tol)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}
