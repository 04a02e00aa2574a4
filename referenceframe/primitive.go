package referenceframe

import (
	"strconv"

	"github.com/golang/geo/r3"

	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

// PrimitiveType names a kind of collision primitive.
type PrimitiveType string

// The closed set of primitive kinds.
const (
	PrimitiveCylinder = PrimitiveType("cylinder")
	PrimitiveBox      = PrimitiveType("box")
)

// Primitive is a solid attached to a link, expressed in that link's output frame.
//
// A cylinder is given by the centre of its base disc, a radius and a scaled axis whose length is the
// cylinder length. A box is given by its centre and its length, width and height, which lie along the
// local X, Z and Y axes respectively. An optional box axis turns the length edge onto that direction.
type Primitive struct {
	name          string
	primitiveType PrimitiveType
	pos           r3.Vector
	radius        float64
	axis          r3.Vector
	hasAxis       bool
	length        float64
	width         float64
	height        float64
}

// NewCylinderPrimitive creates a cylinder primitive running from pos to pos+axis.
func NewCylinderPrimitive(name string, pos r3.Vector, radius float64, axis r3.Vector) (*Primitive, error) {
	p := &Primitive{
		name:          name,
		primitiveType: PrimitiveCylinder,
		pos:           pos,
		radius:        radius,
		axis:          axis,
		hasAxis:       true,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewBoxPrimitive creates a box primitive centered on pos. A nil axis keeps the length edge on local X.
func NewBoxPrimitive(name string, pos r3.Vector, length, width, height float64, axis *r3.Vector) (*Primitive, error) {
	p := &Primitive{
		name:          name,
		primitiveType: PrimitiveBox,
		pos:           pos,
		length:        length,
		width:         width,
		height:        height,
	}
	if axis != nil {
		p.axis = *axis
		p.hasAxis = true
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Primitive) validate() error {
	if !spatialmath.R3VectorIsFinite(p.pos) {
		return NewInvalidPrimitiveError(p.name, "position must be finite")
	}
	if p.hasAxis && (!spatialmath.R3VectorIsFinite(p.axis) || p.axis.Norm() == 0) {
		return NewInvalidPrimitiveError(p.name, "axis must be a finite non-zero vector")
	}
	switch p.primitiveType {
	case PrimitiveCylinder:
		if !utils.IsFinite(p.radius) || p.radius <= 0 {
			return NewInvalidPrimitiveError(p.name, "cylinder radius must be positive")
		}
	case PrimitiveBox:
		if !utils.IsFinite(p.length, p.width, p.height) || p.length <= 0 || p.width <= 0 || p.height <= 0 {
			return NewInvalidPrimitiveError(p.name, "box length, width and height must be positive")
		}
	default:
		return NewInvalidPrimitiveError(p.name, "unknown primitive type "+strconv.Quote(string(p.primitiveType)))
	}
	return nil
}

// Name returns the optional name of the primitive.
func (p *Primitive) Name() string {
	return p.name
}

// Type returns the kind of the primitive.
func (p *Primitive) Type() PrimitiveType {
	return p.primitiveType
}

// Pos returns the reference position of the primitive: the base disc centre of a cylinder or the centre of a box.
func (p *Primitive) Pos() r3.Vector {
	return p.pos
}

// Axis returns the primitive's axis and whether one was given.
func (p *Primitive) Axis() (r3.Vector, bool) {
	return p.axis, p.hasAxis
}

// Radius returns the radius of a cylinder primitive.
func (p *Primitive) Radius() float64 {
	return p.radius
}

// Dims returns the length, width and height of a box primitive.
func (p *Primitive) Dims() (length, width, height float64) {
	return p.length, p.width, p.height
}

// label names the primitive for output: the primitive name if it has one, else its position in the link.
func (p *Primitive) label(joint string, index int) string {
	if p.name != "" {
		return joint + ":" + p.name
	}
	return joint + ":" + strconv.Itoa(index)
}

// geometry builds the primitive as a geometry in its link's output frame.
func (p *Primitive) geometry(label string) (spatialmath.Geometry, error) {
	switch p.primitiveType {
	case PrimitiveCylinder:
		return spatialmath.NewCylinderFromAxis(p.pos, p.axis, p.radius, label)
	case PrimitiveBox:
		o := spatialmath.NewZeroOrientation()
		if p.hasAxis {
			o = spatialmath.OrientationBetweenVectors(r3.Vector{X: 1}, p.axis)
		}
		return spatialmath.NewBox(spatialmath.NewPose(p.pos, o), r3.Vector{X: p.length, Y: p.height, Z: p.width}, label)
	default:
		return nil, NewInvalidPrimitiveError(p.name, "unknown primitive type "+strconv.Quote(string(p.primitiveType)))
	}
}
