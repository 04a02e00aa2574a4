package referenceframe

import (
	"encoding/json"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

// axisNormTolerance is how far from unit length a joint axis may be before it is rejected.
const axisNormTolerance = 1e-3

// JointType names the motion a joint produces.
type JointType string

// The closed set of supported joint types.
const (
	// RevoluteJoint rotates about its axis; values are in degrees.
	RevoluteJoint = JointType("revolute")
	// PrismaticJoint translates along its axis; values are in mm.
	PrismaticJoint = JointType("prismatic")
)

// Joint is a single degree of freedom. It is immutable after construction.
type Joint struct {
	name      string
	jointType JointType
	axis      r3.Vector
	limit     Limit
	home      float64
}

// NewJoint validates and creates a joint. The axis is renormalized to exactly unit length.
func NewJoint(name string, jt JointType, axis r3.Vector, limit Limit, home float64) (*Joint, error) {
	if name == "" {
		return nil, errors.New("joint name cannot be empty")
	}
	switch jt {
	case RevoluteJoint, PrismaticJoint:
	default:
		return nil, NewUnsupportedJointTypeError(jt)
	}
	norm := axis.Norm()
	if !spatialmath.R3VectorIsFinite(axis) || math.Abs(norm-1) > axisNormTolerance {
		return nil, NewInvalidAxisError(name, axis)
	}
	if !limit.valid() {
		return nil, NewInvalidLimitError(name, limit)
	}
	if !utils.IsFinite(home) || !limit.Contains(home) {
		return nil, NewHomeOutOfRangeError(name, home, limit)
	}
	return &Joint{
		name:      name,
		jointType: jt,
		axis:      axis.Mul(1 / norm),
		limit:     limit,
		home:      home,
	}, nil
}

// Name returns the unique name of the joint.
func (j *Joint) Name() string {
	return j.name
}

// Type returns whether the joint is revolute or prismatic.
func (j *Joint) Type() JointType {
	return j.jointType
}

// Axis returns the unit axis of motion expressed in the joint frame.
func (j *Joint) Axis() r3.Vector {
	return j.axis
}

// Limit returns the range of motion of the joint.
func (j *Joint) Limit() Limit {
	return j.limit
}

// Home returns the joint's rest value.
func (j *Joint) Home() float64 {
	return j.home
}

// Resolve applies the limit policy to value and returns the value the joint will actually take.
// NaN is rejected under every policy. Infinite values clamp to the matching bound in clamp mode.
func (j *Joint) Resolve(value float64, policy LimitPolicy) (float64, error) {
	if math.IsNaN(value) {
		return 0, NewJointLimitExceededError(j.name, value, j.limit)
	}
	v := value
	if !j.limit.Contains(value) {
		switch policy {
		case ClampLimits:
			v = j.limit.Clamp(value)
		case StrictLimits:
			return 0, NewJointLimitExceededError(j.name, value, j.limit)
		default:
			return 0, errors.Errorf("unknown limit policy %v", policy)
		}
	}
	// an unbounded limit can still leave the value infinite
	if !utils.IsFinite(v) {
		return 0, NewJointLimitExceededError(j.name, value, j.limit)
	}
	return v, nil
}

// Transform returns the motion of the joint at value: a rotation of value degrees about the axis for a revolute
// joint or a translation of value mm along the axis for a prismatic joint. The value actually applied, after the
// limit policy, is returned alongside the pose.
func (j *Joint) Transform(value float64, policy LimitPolicy) (spatialmath.Pose, float64, error) {
	v, err := j.Resolve(value, policy)
	if err != nil {
		return nil, 0, err
	}
	switch j.jointType {
	case RevoluteJoint:
		return spatialmath.NewPoseFromOrientation(spatialmath.NewR4AAFromVector(utils.DegToRad(v), j.axis)), v, nil
	case PrismaticJoint:
		return spatialmath.NewPoseFromPoint(j.axis.Mul(v)), v, nil
	default:
		return nil, 0, NewUnsupportedJointTypeError(j.jointType)
	}
}

// AlmostEquals returns if the other joint describes the same motion up to floating point error.
func (j *Joint) AlmostEquals(other *Joint) bool {
	return other != nil && j.name == other.name && j.jointType == other.jointType &&
		spatialmath.R3VectorAlmostEqual(j.axis, other.axis, 1e-8) &&
		limitsAlmostEqual([]Limit{j.limit}, []Limit{other.limit}) &&
		utils.Float64AlmostEqual(j.home, other.home, 1e-8)
}

// MarshalJSON serializes the joint as a JointConfig.
func (j *Joint) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewJointConfig(j))
}
