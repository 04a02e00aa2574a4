package referenceframe

import (
	"github.com/pkg/errors"

	"go.viam.com/kinchain/spatialmath"
)

// LinkSpec is the unvalidated description of a link handed to NewChain.
type LinkSpec struct {
	Joint      *Joint
	Offset     spatialmath.Pose
	Primitives []*Primitive
}

// Link is one joint of a chain together with the fixed offset from its parent frame and the primitives that move
// with it. The parent frame is the output frame of the previous link, or the chain base for the first link.
type Link struct {
	index      int
	joint      *Joint
	offset     spatialmath.Pose
	primitives []*Primitive
	// local holds each primitive as a labelled geometry in the link's output frame.
	local []spatialmath.Geometry
}

// NewLink validates spec and creates the link at the given position in its chain. A nil offset is the identity.
func NewLink(index int, spec LinkSpec) (*Link, error) {
	if spec.Joint == nil {
		return nil, errors.New("link has no joint")
	}
	offset := spec.Offset
	if offset == nil {
		offset = spatialmath.NewZeroPose()
	}
	l := &Link{
		index:      index,
		joint:      spec.Joint,
		offset:     offset,
		primitives: make([]*Primitive, 0, len(spec.Primitives)),
		local:      make([]spatialmath.Geometry, 0, len(spec.Primitives)),
	}
	for i, p := range spec.Primitives {
		if p == nil {
			return nil, NewInvalidPrimitiveError("", "primitive is nil")
		}
		g, err := p.geometry(p.label(spec.Joint.Name(), i))
		if err != nil {
			return nil, err
		}
		l.primitives = append(l.primitives, p)
		l.local = append(l.local, g)
	}
	return l, nil
}

// Index returns the position of the link in its chain, counted from the base.
func (l *Link) Index() int {
	return l.index
}

// Name returns the name of the link's joint.
func (l *Link) Name() string {
	return l.joint.Name()
}

// Joint returns the link's joint.
func (l *Link) Joint() *Joint {
	return l.joint
}

// Offset returns the fixed transform from the parent frame to the joint frame at the joint's zero value.
func (l *Link) Offset() spatialmath.Pose {
	return l.offset
}

// Primitives returns a copy of the link's primitives.
func (l *Link) Primitives() []*Primitive {
	return append([]*Primitive(nil), l.primitives...)
}

// Transform returns the pose of the link's output frame relative to its parent frame: the offset followed by the
// joint motion at value.
func (l *Link) Transform(value float64, policy LimitPolicy) (spatialmath.Pose, error) {
	motion, _, err := l.joint.Transform(value, policy)
	if err != nil {
		return nil, err
	}
	return spatialmath.Compose(l.offset, motion), nil
}

// Geometries places the link's primitives in the frame that frame is expressed in.
func (l *Link) Geometries(frame spatialmath.Pose) []spatialmath.Geometry {
	geoms := make([]spatialmath.Geometry, 0, len(l.local))
	for _, g := range l.local {
		geoms = append(geoms, g.Transform(frame))
	}
	return geoms
}
