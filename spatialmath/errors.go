package spatialmath

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedRotationFormat is returned when a rotation is tagged with an unknown encoding.
	ErrUnsupportedRotationFormat = errors.New("unsupported rotation format")
	// ErrDegenerateRotation is returned when rotation data cannot describe a proper rotation,
	// e.g. a zero-norm quaternion or a non-orthonormal matrix.
	ErrDegenerateRotation = errors.New("degenerate rotation")
	// ErrInvalidRotationData is returned when rotation data has the wrong shape for its encoding.
	ErrInvalidRotationData = errors.New("invalid rotation data")
	// ErrBadGeometryDimensions is returned when a geometry is created with impossible dimensions.
	ErrBadGeometryDimensions = errors.New("invalid geometry dimensions")
)

// NewUnsupportedRotationFormatError is used when a rotation format tag is not recognized.
func NewUnsupportedRotationFormatError(format RotationFormat) error {
	return errors.Wrapf(ErrUnsupportedRotationFormat, "%q, supported formats are %v", string(format), SupportedRotationFormats())
}

// NewDegenerateRotationError is used when rotation data has no well defined orientation.
func NewDegenerateRotationError(format RotationFormat, reason string) error {
	return errors.Wrapf(ErrDegenerateRotation, "%s: %s", format, reason)
}

// NewInvalidRotationDataError is used when the number of rotation values does not match the format.
func NewInvalidRotationDataError(format RotationFormat, got, want int) error {
	return errors.Wrapf(ErrInvalidRotationData, "%s expects %d values, got %d", format, want, got)
}

func newBadGeometryDimensionsError(g Geometry) error {
	return errors.Wrapf(ErrBadGeometryDimensions, "for geometry of type %T", g)
}
