package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Pose represents a rigid transform: a 6dof translation and orientation in mm and unit quaternion.
// Applying a Pose to a point rotates the point and then translates it.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// NewZeroPose returns a pose at (0,0,0) with same orientation as whatever frame it is placed in.
func NewZeroPose() Pose {
	return newDualQuaternion()
}

// NewPose takes in a position and orientation and returns a Pose.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	q := newDualQuaternion()
	q.Real = normalizeQuat(o.Quaternion())
	q.SetTranslation(p)
	return q
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in.
func NewPoseFromPoint(point r3.Vector) Pose {
	q := newDualQuaternion()
	q.SetTranslation(point)
	return q
}

// NewPoseFromOrientation takes in an orientation and returns a Pose at the origin of its frame.
func NewPoseFromOrientation(o Orientation) Pose {
	return NewPose(r3.Vector{}, o)
}

// Compose returns a Pose equal to a∘b: the transform b is applied first, then a.
// Composition is associative but not commutative.
func Compose(a, b Pose) Pose {
	return &dualQuaternion{newDualQuaternionFromPose(a).Transformation(newDualQuaternionFromPose(b).Number)}
}

// PoseInverse will return the inverse of a pose. So if a given pose p is the pose of A relative to B, PoseInverse(p) will give
// the pose of B relative to A.
func PoseInverse(p Pose) Pose {
	return &dualQuaternion{newDualQuaternionFromPose(p).Invert()}
}

// PoseBetween returns the difference between two Poses, i.e. the pose b expressed in the frame of a.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// TransformPoint applies p to a point: the point is rotated and then translated.
func TransformPoint(p Pose, pt r3.Vector) r3.Vector {
	return RotateVector(p, pt).Add(p.Point())
}

// RotateVector applies only the rotation of p to a free vector.
func RotateVector(p Pose, v r3.Vector) r3.Vector {
	return rotateVector(p.Orientation().Quaternion(), v)
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, 1e-6)
}

// PoseAlmostEqualEps will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon) && OrientationAlmostEqualEps(a.Orientation(), b.Orientation(), epsilon)
}

// PoseDelta returns the translation distance in mm and the rotation angle in radians between two poses.
func PoseDelta(a, b Pose) (float64, float64) {
	between := PoseBetween(a, b)
	q := between.Orientation().Quaternion()
	if q.Real < 0 {
		q = Flip(q)
	}
	return between.Point().Norm(), QuatToR4AA(q).Theta
}

// PoseConfig is the serialized form of a Pose.
type PoseConfig struct {
	Translation r3.Vector   `json:"translation"`
	Quaternion  [4]float64  `json:"quaternion"`
	EulerDeg    EulerAngles `json:"euler_zyx_deg"`
}

// NewPoseConfig returns the serializable form of p. Euler angles are reported in degrees for display.
func NewPoseConfig(p Pose) *PoseConfig {
	q := p.Orientation().Quaternion()
	ea := QuatToEulerAngles(q)
	return &PoseConfig{
		Translation: p.Point(),
		Quaternion:  [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag},
		EulerDeg:    EulerAngles{Roll: ea.Roll * radToDeg, Pitch: ea.Pitch * radToDeg, Yaw: ea.Yaw * radToDeg},
	}
}

// ParseConfig converts a PoseConfig back into a Pose. The quaternion is authoritative.
func (pc *PoseConfig) ParseConfig() (Pose, error) {
	q, err := NewQuaternion(pc.Quaternion[0], pc.Quaternion[1], pc.Quaternion[2], pc.Quaternion[3])
	if err != nil {
		return nil, err
	}
	return NewPose(pc.Translation, q), nil
}

// PoseString returns a compact human readable form of a pose.
func PoseString(p Pose) string {
	pt := p.Point()
	q := p.Orientation().Quaternion()
	return fmt.Sprintf("{X:%.3f Y:%.3f Z:%.3f Q:[%.6f %.6f %.6f %.6f]}", pt.X, pt.Y, pt.Z, q.Real, q.Imag, q.Jmag, q.Kmag)
}

