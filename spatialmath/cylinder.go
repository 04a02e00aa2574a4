package spatialmath

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/r3"

	"go.viam.com/kinchain/utils"
)

// Cylinder is a collision geometry that represents a right circular cylinder. Its pose is the centre
// of the cylinder with the local Z axis running along the cylinder's central axis.
//
// .   ___________
// .  |           |
// .  x-----O-----x
// .  |___________|
//
// Length is the distance between the x's.
type Cylinder struct {
	pose   Pose
	radius float64
	length float64
	label  string
}

// NewCylinder instantiates a new cylinder Geometry centered on pose.
func NewCylinder(pose Pose, radius, length float64, label string) (*Cylinder, error) {
	if radius <= 0 || length <= 0 || !utils.IsFinite(radius, length) {
		return nil, newBadGeometryDimensionsError(&Cylinder{})
	}
	return &Cylinder{pose: pose, radius: radius, length: length, label: label}, nil
}

// NewCylinderFromAxis builds a cylinder whose base disc is centered at base and whose central axis is
// the scaled vector axis: the cylinder runs from base to base+axis.
func NewCylinderFromAxis(base, axis r3.Vector, radius float64, label string) (*Cylinder, error) {
	length := axis.Norm()
	if length == 0 {
		return nil, newBadGeometryDimensionsError(&Cylinder{})
	}
	center := base.Add(axis.Mul(0.5))
	return NewCylinder(NewPose(center, OrientationBetweenVectors(r3.Vector{Z: 1}, axis)), radius, length, label)
}

func (c *Cylinder) geometry() {}

// String returns a human readable string that represents the cylinder.
func (c *Cylinder) String() string {
	pt := c.pose.Point()
	return fmt.Sprintf("Type: Cylinder | Position: X:%.1f, Y:%.1f, Z:%.1f | Radius: %.1f, Length: %.1f",
		pt.X, pt.Y, pt.Z, c.radius, c.length)
}

// MarshalJSON serializes the cylinder as a GeometryConfig.
func (c *Cylinder) MarshalJSON() ([]byte, error) {
	config, err := NewGeometryConfig(c)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}

// Label returns the label of this cylinder.
func (c *Cylinder) Label() string {
	return c.label
}

// Pose returns the pose of the cylinder.
func (c *Cylinder) Pose() Pose {
	return c.pose
}

// Radius returns the radius of the cylinder.
func (c *Cylinder) Radius() float64 {
	return c.radius
}

// Length returns the length of the cylinder along its axis.
func (c *Cylinder) Length() float64 {
	return c.length
}

// Endpoints returns the centres of the two end discs, base first.
func (c *Cylinder) Endpoints() (r3.Vector, r3.Vector) {
	half := c.length / 2
	return TransformPoint(c.pose, r3.Vector{Z: -half}), TransformPoint(c.pose, r3.Vector{Z: half})
}

// Axis returns the central axis scaled to the cylinder's length, pointing from base to tip.
func (c *Cylinder) Axis() r3.Vector {
	return RotateVector(c.pose, r3.Vector{Z: c.length})
}

// AlmostEqual compares the cylinder with another geometry and checks if they are equivalent.
func (c *Cylinder) AlmostEqual(g Geometry) bool {
	other, ok := g.(*Cylinder)
	if !ok {
		return false
	}
	return PoseAlmostEqualEps(c.pose, other.pose, 1e-6) &&
		utils.Float64AlmostEqual(c.radius, other.radius, 1e-8) &&
		utils.Float64AlmostEqual(c.length, other.length, 1e-8)
}

// Transform premultiplies the cylinder pose with a transform, allowing the cylinder to be moved in space.
func (c *Cylinder) Transform(toPremultiply Pose) Geometry {
	return &Cylinder{
		pose:   Compose(toPremultiply, c.pose),
		radius: c.radius,
		length: c.length,
		label:  c.label,
	}
}
