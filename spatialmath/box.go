package spatialmath

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/kinchain/utils"
)

// Ordered list of box vertices.
var boxVertices = [8]r3.Vector{
	{1, 1, 1},
	{1, 1, -1},
	{1, -1, 1},
	{1, -1, -1},
	{-1, 1, 1},
	{-1, 1, -1},
	{-1, -1, 1},
	{-1, -1, -1},
}

// Box is a collision geometry that represents a 3D rectangular prism, it has a pose and half size that fully define it.
// The pose is the centre of the box.
type Box struct {
	center   Pose
	halfSize r3.Vector
	label    string
}

// NewBox instantiates a new box Geometry.
func NewBox(pose Pose, dims r3.Vector, label string) (*Box, error) {
	// Negative dimensions not allowed. Zero dimensions are allowed for bounding boxes, etc.
	if dims.X < 0 || dims.Y < 0 || dims.Z < 0 || !R3VectorIsFinite(dims) {
		return nil, newBadGeometryDimensionsError(&Box{})
	}
	return &Box{
		center:   pose,
		halfSize: dims.Mul(0.5),
		label:    label,
	}, nil
}

func (b *Box) geometry() {}

// String returns a human readable string that represents the box.
func (b *Box) String() string {
	pt := b.center.Point()
	return fmt.Sprintf("Type: Box | Position: X:%.1f, Y:%.1f, Z:%.1f | Dims: X:%.0f, Y:%.0f, Z:%.0f",
		pt.X, pt.Y, pt.Z, 2*b.halfSize.X, 2*b.halfSize.Y, 2*b.halfSize.Z)
}

// MarshalJSON serializes the box as a GeometryConfig.
func (b *Box) MarshalJSON() ([]byte, error) {
	config, err := NewGeometryConfig(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// Label returns the label of this box.
func (b *Box) Label() string {
	return b.label
}

// Pose returns the pose of the box.
func (b *Box) Pose() Pose {
	return b.center
}

// Dims returns the full edge lengths of the box along its local X, Y and Z axes.
func (b *Box) Dims() r3.Vector {
	return b.halfSize.Mul(2)
}

// AlmostEqual compares the box with another geometry and checks if they are equivalent.
func (b *Box) AlmostEqual(g Geometry) bool {
	other, ok := g.(*Box)
	if !ok {
		return false
	}
	return utils.Float64AlmostEqual(b.halfSize.X, other.halfSize.X, 1e-8) &&
		utils.Float64AlmostEqual(b.halfSize.Y, other.halfSize.Y, 1e-8) &&
		utils.Float64AlmostEqual(b.halfSize.Z, other.halfSize.Z, 1e-8) &&
		PoseAlmostEqualEps(b.center, other.center, 1e-6)
}

// Transform premultiplies the box pose with a transform, allowing the box to be moved in space.
func (b *Box) Transform(toPremultiply Pose) Geometry {
	return &Box{
		center:   Compose(toPremultiply, b.center),
		halfSize: b.halfSize,
		label:    b.label,
	}
}

// Vertices returns the eight corners of the box in the coordinates its pose is expressed in.
func (b *Box) Vertices() [8]r3.Vector {
	var verts [8]r3.Vector
	for i, v := range boxVertices {
		local := r3.Vector{X: v.X * b.halfSize.X, Y: v.Y * b.halfSize.Y, Z: v.Z * b.halfSize.Z}
		verts[i] = TransformPoint(b.center, local)
	}
	return verts
}
