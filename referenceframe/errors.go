package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidAxis is returned when a joint axis is zero, non-finite, or not a unit vector.
	ErrInvalidAxis = errors.New("invalid joint axis")
	// ErrHomeOutOfRange is returned when a joint's home value lies outside its limits.
	ErrHomeOutOfRange = errors.New("home position out of joint range")
	// ErrInvalidPrimitive is returned when a collision primitive is missing a field or has a non-positive size.
	ErrInvalidPrimitive = errors.New("invalid primitive")
	// ErrDuplicateJointName is returned when two links of a chain share a joint name.
	ErrDuplicateJointName = errors.New("duplicate joint name")
	// ErrEmptyChain is returned when a chain is built without links.
	ErrEmptyChain = errors.New("chain has no links")
	// ErrConfigurationLengthMismatch is returned when the number of joint values differs from the number of links.
	ErrConfigurationLengthMismatch = errors.New("configuration length does not match chain")
	// ErrJointLimitExceeded is returned when a joint value falls outside the joint's limits or is not finite.
	ErrJointLimitExceeded = errors.New("joint limit exceeded")
	// ErrUnsupportedJointType is returned for joint types other than revolute and prismatic.
	ErrUnsupportedJointType = errors.New("unsupported joint type")
	// ErrInvalidLimit is returned when a joint's lower limit exceeds its upper limit.
	ErrInvalidLimit = errors.New("invalid joint limit")
	// ErrFrameCountMismatch is returned when a frame list does not have one entry per link plus the base.
	ErrFrameCountMismatch = errors.New("frame count does not match chain")
	// ErrNoModelInformation is used when there is no model information.
	ErrNoModelInformation = errors.New("no model information")
)

// NewInvalidAxisError returns an error for a joint axis that cannot be used.
func NewInvalidAxisError(joint string, axis r3.Vector) error {
	return errors.Wrapf(ErrInvalidAxis, "joint %q axis %v must be a finite unit vector", joint, axis)
}

// NewHomeOutOfRangeError returns an error for a home value outside the joint limits.
func NewHomeOutOfRangeError(joint string, home float64, limit Limit) error {
	return errors.Wrapf(ErrHomeOutOfRange, "joint %q home %.5f not in %v", joint, home, limit)
}

// NewInvalidPrimitiveError returns an error describing why a primitive was rejected.
func NewInvalidPrimitiveError(name, reason string) error {
	if name == "" {
		return errors.Wrap(ErrInvalidPrimitive, reason)
	}
	return errors.Wrapf(ErrInvalidPrimitive, "%q: %s", name, reason)
}

// NewDuplicateJointNameError returns an error naming the two links that share a joint name.
func NewDuplicateJointNameError(name string, first, second int) error {
	return errors.Wrapf(ErrDuplicateJointName, "%q used by links %d and %d", name, first, second)
}

// NewConfigurationLengthMismatchError returns an error for a configuration of the wrong length.
func NewConfigurationLengthMismatchError(got, want int) error {
	return errors.Wrapf(ErrConfigurationLengthMismatch, "got %d joint values, chain has %d joints", got, want)
}

// NewJointLimitExceededError returns an error for a joint value outside its limits.
func NewJointLimitExceededError(joint string, value float64, limit Limit) error {
	return errors.Wrapf(ErrJointLimitExceeded, "joint %q value %.5f not in %v", joint, value, limit)
}

// NewUnsupportedJointTypeError returns an error for an unknown joint type.
func NewUnsupportedJointTypeError(jt JointType) error {
	return errors.Wrapf(ErrUnsupportedJointType, "%q, supported types are %q and %q", string(jt), RevoluteJoint, PrismaticJoint)
}

// NewInvalidLimitError returns an error for inverted or undefined joint limits.
func NewInvalidLimitError(joint string, limit Limit) error {
	return errors.Wrapf(ErrInvalidLimit, "joint %q limits %v must satisfy min <= max", joint, limit)
}

// NewFrameCountMismatchError returns an error for a frame list of the wrong length.
func NewFrameCountMismatchError(got, want int) error {
	return errors.Wrapf(ErrFrameCountMismatch, "got %d frames, need %d", got, want)
}

// newLinkError attaches the link position to an error raised while building or solving that link.
func newLinkError(err error, index int) error {
	return errors.Wrapf(err, "link %d", index)
}

// newVectorLengthError is used when a description field that should hold a 3-vector does not.
func newVectorLengthError(field string, got int) error {
	return errors.Errorf("%s must have 3 values, got %d", field, got)
}
