// Package referenceframe models a serial kinematic chain: joints, the fixed offsets between them, and the
// collision primitives each link carries. It also computes the frame of every link for a configuration of
// joint values and places the primitives in world space.
package referenceframe

import (
	"github.com/pkg/errors"

	"go.viam.com/kinchain/spatialmath"
)

// Chain is an immutable, ordered, non-empty sequence of links from the base to the flange.
// A Chain holds no joint values and is safe for concurrent use.
type Chain struct {
	name  string
	links []*Link
	mount spatialmath.Pose
	// primitives fixed to the base frame, with their geometry in that frame
	basePrimitives []*Primitive
	baseLocal      []spatialmath.Geometry
	// derived once at construction
	limits []Limit
	home   []Input
	index  map[string]int
}

// ChainOption configures optional chain properties.
type ChainOption func(*chainOptions)

type chainOptions struct {
	mount          spatialmath.Pose
	basePrimitives []*Primitive
}

// baseLabel prefixes the labels of primitives fixed to the base frame.
const baseLabel = "mount"

// WithMount places the chain's base at pose. By default the base is the world origin.
func WithMount(pose spatialmath.Pose) ChainOption {
	return func(o *chainOptions) {
		if pose != nil {
			o.mount = pose
		}
	}
}

// WithBasePrimitives fixes primitives to the base frame, frames[0]. They do not move with any joint and are
// labelled "mount:<primitive name or index>".
func WithBasePrimitives(prims ...*Primitive) ChainOption {
	return func(o *chainOptions) {
		o.basePrimitives = append(o.basePrimitives, prims...)
	}
}

// NewChain validates every link and builds the chain. Construction is all or nothing: the first invalid
// link aborts it and no partial chain is returned.
func NewChain(name string, specs []LinkSpec, opts ...ChainOption) (*Chain, error) {
	if len(specs) == 0 {
		return nil, errors.Wrapf(ErrEmptyChain, "chain %q", name)
	}
	o := &chainOptions{mount: spatialmath.NewZeroPose()}
	for _, opt := range opts {
		opt(o)
	}

	c := &Chain{
		name:   name,
		links:  make([]*Link, 0, len(specs)),
		mount:  o.mount,
		limits: make([]Limit, 0, len(specs)),
		home:   make([]Input, 0, len(specs)),
		index:  make(map[string]int, len(specs)),
	}
	for i, p := range o.basePrimitives {
		if p == nil {
			return nil, NewInvalidPrimitiveError("", "base primitive is nil")
		}
		g, err := p.geometry(p.label(baseLabel, i))
		if err != nil {
			return nil, errors.Wrapf(err, "base primitive %d", i)
		}
		c.basePrimitives = append(c.basePrimitives, p)
		c.baseLocal = append(c.baseLocal, g)
	}
	for i, spec := range specs {
		link, err := NewLink(i, spec)
		if err != nil {
			return nil, newLinkError(err, i)
		}
		jointName := link.Name()
		if first, ok := c.index[jointName]; ok {
			return nil, NewDuplicateJointNameError(jointName, first, i)
		}
		c.index[jointName] = i
		c.links = append(c.links, link)
		c.limits = append(c.limits, link.Joint().Limit())
		c.home = append(c.home, Input{link.Joint().Home()})
	}
	return c, nil
}

// Name returns the name of the chain.
func (c *Chain) Name() string {
	return c.name
}

// Len returns the number of links.
func (c *Chain) Len() int {
	return len(c.links)
}

// Link returns the link at index i, counted from the base.
func (c *Chain) Link(i int) (*Link, error) {
	if i < 0 || i >= len(c.links) {
		return nil, errors.Errorf("link index %d out of range [0, %d)", i, len(c.links))
	}
	return c.links[i], nil
}

// Links returns a copy of the chain's links in order.
func (c *Chain) Links() []*Link {
	return append([]*Link(nil), c.links...)
}

// DoF returns the limits of every joint in order.
func (c *Chain) DoF() []Limit {
	return append([]Limit(nil), c.limits...)
}

// Home returns the home configuration of the chain.
func (c *Chain) Home() []Input {
	return append([]Input(nil), c.home...)
}

// JointNames returns the joint names in order.
func (c *Chain) JointNames() []string {
	names := make([]string, 0, len(c.links))
	for _, l := range c.links {
		names = append(names, l.Name())
	}
	return names
}

// JointIndex returns the position of the named joint and whether it exists.
func (c *Chain) JointIndex(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Mount returns the default base frame of the chain.
func (c *Chain) Mount() spatialmath.Pose {
	return c.mount
}

// BasePrimitives returns a copy of the primitives fixed to the base frame.
func (c *Chain) BasePrimitives() []*Primitive {
	return append([]*Primitive(nil), c.basePrimitives...)
}

// AlmostEquals returns if the other chain has the same name, mount, base primitives and joints up to floating
// point error.
func (c *Chain) AlmostEquals(other *Chain) bool {
	if other == nil || c.name != other.name || len(c.links) != len(other.links) {
		return false
	}
	if !spatialmath.PoseAlmostEqual(c.mount, other.mount) || !geometriesAlmostEqual(c.baseLocal, other.baseLocal) {
		return false
	}
	for i, l := range c.links {
		o := other.links[i]
		if !l.joint.AlmostEquals(o.joint) || !spatialmath.PoseAlmostEqual(l.offset, o.offset) {
			return false
		}
		if !geometriesAlmostEqual(l.local, o.local) {
			return false
		}
	}
	return true
}

func geometriesAlmostEqual(a, b []spatialmath.Geometry) bool {
	if len(a) != len(b) {
		return false
	}
	for i, g := range a {
		if g.Label() != b[i].Label() || !g.AlmostEqual(b[i]) {
			return false
		}
	}
	return true
}
