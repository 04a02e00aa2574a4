package spatialmath

import (
	"encoding/json"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// GeometryType names a kind of Geometry.
type GeometryType string

// The closed set of geometry kinds.
const (
	BoxType      = GeometryType("box")
	CylinderType = GeometryType("cylinder")
)

// Geometry is a solid placed in space. The set of implementations is closed (*Box and *Cylinder),
// so consumers may type switch over it exhaustively.
type Geometry interface {
	Pose() Pose
	Label() string
	// Transform premultiplies the geometry pose with a transform, returning a new geometry.
	Transform(Pose) Geometry
	AlmostEqual(Geometry) bool
	String() string
	json.Marshaler

	geometry()
}

// GeometryConfig is the serialized form of a Geometry.
type GeometryConfig struct {
	Type  GeometryType `json:"type"`
	Label string       `json:"label,omitempty"`

	Pose *PoseConfig `json:"pose"`

	// box dimensions, X is the length edge
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	Z float64 `json:"z,omitempty"`

	// cylinder radius, length and end points of the central axis
	R    float64     `json:"r,omitempty"`
	L    float64     `json:"l,omitempty"`
	Ends []r3.Vector `json:"ends,omitempty"`
}

// NewGeometryConfig returns the serializable form of g.
func NewGeometryConfig(g Geometry) (*GeometryConfig, error) {
	config := &GeometryConfig{Label: g.Label(), Pose: NewPoseConfig(g.Pose())}
	switch gType := g.(type) {
	case *Box:
		config.Type = BoxType
		config.X, config.Y, config.Z = gType.Dims().X, gType.Dims().Y, gType.Dims().Z
	case *Cylinder:
		config.Type = CylinderType
		config.R = gType.Radius()
		config.L = gType.Length()
		a, b := gType.Endpoints()
		config.Ends = []r3.Vector{a, b}
	default:
		return nil, errors.Errorf("cannot serialize geometry of type %T", g)
	}
	return config, nil
}
