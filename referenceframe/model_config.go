package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"go.viam.com/kinchain/spatialmath"
)

// ModelConfig represents all supported fields in a kinematic description file.
type ModelConfig struct {
	Name  string       `yaml:"name" json:"name"`
	Pose  *PoseConfig  `yaml:"pose,omitempty" json:"pose,omitempty" jsonschema:"description=optional mount pose of the chain base"`
	Links []LinkConfig `yaml:"links" json:"links"`
	// BasePrimitives are fixed to the base frame and never move with a joint.
	BasePrimitives []PrimitiveConfig `yaml:"base_primitives,omitempty" json:"base_primitives,omitempty"`

	OriginalFile *ModelFile `yaml:"-" json:"-"`
}

// LinkConfig describes one link: its joint, the offset from the parent frame and its collision primitives.
type LinkConfig struct {
	Joint      JointConfig       `yaml:"joint" json:"joint"`
	Offset     *PoseConfig       `yaml:"offset,omitempty" json:"offset,omitempty"`
	Primitives []PrimitiveConfig `yaml:"primitives,omitempty" json:"primitives,omitempty"`
}

// JointConfig describes a joint. Limits and home are in degrees or mm.
type JointConfig struct {
	Name   string    `yaml:"name" json:"name"`
	Type   string    `yaml:"type" json:"type" jsonschema:"enum=revolute,enum=prismatic"`
	Axis   []float64 `yaml:"axis" json:"axis"`
	Limits []float64 `yaml:"limits" json:"limits" jsonschema:"description=lower then upper bound"`
	Home   *float64  `yaml:"home,omitempty" json:"home,omitempty"`
}

// PoseConfig is a translation T in mm and a rotation R tagged with its encoding Rformat.
// R may nest, e.g. a quaternion written as [w, [x, y, z]].
type PoseConfig struct {
	T       []float64     `yaml:"T,omitempty" json:"T,omitempty"`
	R       []interface{} `yaml:"R,omitempty" json:"R,omitempty"`
	Rformat string        `yaml:"Rformat,omitempty" json:"Rformat,omitempty"`
}

// PrimitiveConfig describes a cylinder or a box in its link's output frame.
type PrimitiveConfig struct {
	Type   string    `yaml:"type" json:"type" jsonschema:"enum=cylinder,enum=box"`
	Name   string    `yaml:"name,omitempty" json:"name,omitempty"`
	Pos    []float64 `yaml:"pos" json:"pos"`
	Radius float64   `yaml:"radius,omitempty" json:"radius,omitempty"`
	Axis   []float64 `yaml:"axis,omitempty" json:"axis,omitempty"`
	Length float64   `yaml:"length,omitempty" json:"length,omitempty"`
	Width  float64   `yaml:"width,omitempty" json:"width,omitempty"`
	Height float64   `yaml:"height,omitempty" json:"height,omitempty"`
}

// ParseConfig converts the ModelConfig struct into a Chain with the name modelName.
// The name from the description is used if modelName is empty.
func (cfg *ModelConfig) ParseConfig(modelName string) (*Chain, error) {
	if modelName == "" {
		modelName = cfg.Name
	}
	if len(cfg.Links) == 0 {
		return nil, errors.Wrapf(ErrEmptyChain, "chain %q", modelName)
	}

	var opts []ChainOption
	if cfg.Pose != nil {
		mount, err := cfg.Pose.ParseConfig()
		if err != nil {
			return nil, errors.Wrap(err, "mount pose")
		}
		opts = append(opts, WithMount(mount))
	}
	for i, pc := range cfg.BasePrimitives {
		p, err := pc.ParseConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "base primitive %d", i)
		}
		opts = append(opts, WithBasePrimitives(p))
	}

	specs := make([]LinkSpec, 0, len(cfg.Links))
	for i, lc := range cfg.Links {
		spec, err := lc.ParseConfig()
		if err != nil {
			return nil, newLinkError(err, i)
		}
		specs = append(specs, spec)
	}
	return NewChain(modelName, specs, opts...)
}

// ParseConfig converts a LinkConfig into a LinkSpec.
func (lc *LinkConfig) ParseConfig() (LinkSpec, error) {
	joint, err := lc.Joint.ParseConfig()
	if err != nil {
		return LinkSpec{}, err
	}
	offset := spatialmath.NewZeroPose()
	if lc.Offset != nil {
		offset, err = lc.Offset.ParseConfig()
		if err != nil {
			return LinkSpec{}, errors.Wrapf(err, "joint %q offset", lc.Joint.Name)
		}
	}
	prims := make([]*Primitive, 0, len(lc.Primitives))
	for _, pc := range lc.Primitives {
		p, err := pc.ParseConfig()
		if err != nil {
			return LinkSpec{}, errors.Wrapf(err, "joint %q", lc.Joint.Name)
		}
		prims = append(prims, p)
	}
	return LinkSpec{Joint: joint, Offset: offset, Primitives: prims}, nil
}

// ParseConfig converts a JointConfig into a Joint. A missing home is 0 moved inside the limits.
func (jc *JointConfig) ParseConfig() (*Joint, error) {
	axis, err := vectorFromSlice("axis", jc.Axis)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidAxis, err.Error())
	}
	if len(jc.Limits) != 2 {
		return nil, errors.Wrapf(ErrInvalidLimit, "joint %q limits need [min, max], got %d values", jc.Name, len(jc.Limits))
	}
	limit := Limit{Min: jc.Limits[0], Max: jc.Limits[1]}
	home := limit.Clamp(0)
	if jc.Home != nil {
		home = *jc.Home
	}
	return NewJoint(jc.Name, JointType(jc.Type), axis, limit, home)
}

// ParseConfig converts a PrimitiveConfig into a Primitive.
func (pc *PrimitiveConfig) ParseConfig() (*Primitive, error) {
	if pc.Pos == nil {
		return nil, NewInvalidPrimitiveError(pc.Name, "pos is required")
	}
	pos, err := vectorFromSlice("pos", pc.Pos)
	if err != nil {
		return nil, NewInvalidPrimitiveError(pc.Name, err.Error())
	}
	var axis *r3.Vector
	if pc.Axis != nil {
		a, err := vectorFromSlice("axis", pc.Axis)
		if err != nil {
			return nil, NewInvalidPrimitiveError(pc.Name, err.Error())
		}
		axis = &a
	}

	switch PrimitiveType(pc.Type) {
	case PrimitiveCylinder:
		if axis == nil {
			return nil, NewInvalidPrimitiveError(pc.Name, "cylinder axis is required")
		}
		return NewCylinderPrimitive(pc.Name, pos, pc.Radius, *axis)
	case PrimitiveBox:
		return NewBoxPrimitive(pc.Name, pos, pc.Length, pc.Width, pc.Height, axis)
	default:
		return nil, NewInvalidPrimitiveError(pc.Name, "unknown primitive type "+pc.Type)
	}
}

// ParseConfig normalizes the rotation and returns the pose. A missing rotation is the identity and a missing
// Rformat means quaternion.
func (pc *PoseConfig) ParseConfig() (spatialmath.Pose, error) {
	t := r3.Vector{}
	if pc.T != nil {
		var err error
		if t, err = vectorFromSlice("T", pc.T); err != nil {
			return nil, err
		}
		if !spatialmath.R3VectorIsFinite(t) {
			return nil, errors.Errorf("translation %v is not finite", t)
		}
	}
	if len(pc.R) == 0 {
		return spatialmath.NewPoseFromPoint(t), nil
	}
	data, err := flattenFloats(pc.R)
	if err != nil {
		return nil, errors.Wrap(spatialmath.ErrInvalidRotationData, err.Error())
	}
	format := spatialmath.RotationFormat(pc.Rformat)
	if format == "" {
		format = spatialmath.RotationFormatQuaternion
	}
	q, err := spatialmath.NewRotation(format, data)
	if err != nil {
		return nil, err
	}
	return spatialmath.NewPose(t, q), nil
}

// NewModelConfig returns the description of a chain. Rotations are written as quaternions.
func NewModelConfig(c *Chain) *ModelConfig {
	cfg := &ModelConfig{Name: c.Name(), Links: make([]LinkConfig, 0, c.Len())}
	if !spatialmath.PoseAlmostEqual(c.Mount(), spatialmath.NewZeroPose()) {
		cfg.Pose = NewPoseConfig(c.Mount())
	}
	for _, p := range c.basePrimitives {
		cfg.BasePrimitives = append(cfg.BasePrimitives, *NewPrimitiveConfig(p))
	}
	for _, l := range c.links {
		lc := LinkConfig{Joint: *NewJointConfig(l.Joint()), Offset: NewPoseConfig(l.Offset())}
		for _, p := range l.primitives {
			lc.Primitives = append(lc.Primitives, *NewPrimitiveConfig(p))
		}
		cfg.Links = append(cfg.Links, lc)
	}
	return cfg
}

// NewJointConfig returns the description of a joint.
func NewJointConfig(j *Joint) *JointConfig {
	home := j.Home()
	axis := j.Axis()
	return &JointConfig{
		Name:   j.Name(),
		Type:   string(j.Type()),
		Axis:   []float64{axis.X, axis.Y, axis.Z},
		Limits: []float64{j.Limit().Min, j.Limit().Max},
		Home:   &home,
	}
}

// NewPoseConfig returns the description of a pose with its rotation as [w, [x, y, z]].
func NewPoseConfig(p spatialmath.Pose) *PoseConfig {
	pt := p.Point()
	q := p.Orientation().Quaternion()
	return &PoseConfig{
		T:       []float64{pt.X, pt.Y, pt.Z},
		R:       []interface{}{q.Real, []interface{}{q.Imag, q.Jmag, q.Kmag}},
		Rformat: string(spatialmath.RotationFormatQuaternion),
	}
}

// NewPrimitiveConfig returns the description of a primitive.
func NewPrimitiveConfig(p *Primitive) *PrimitiveConfig {
	pc := &PrimitiveConfig{
		Type: string(p.Type()),
		Name: p.Name(),
		Pos:  []float64{p.pos.X, p.pos.Y, p.pos.Z},
	}
	if p.hasAxis {
		pc.Axis = []float64{p.axis.X, p.axis.Y, p.axis.Z}
	}
	switch p.Type() {
	case PrimitiveCylinder:
		pc.Radius = p.radius
	case PrimitiveBox:
		pc.Length, pc.Width, pc.Height = p.Dims()
	}
	return pc
}

func vectorFromSlice(field string, v []float64) (r3.Vector, error) {
	if len(v) != 3 {
		return r3.Vector{}, newVectorLengthError(field, len(v))
	}
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}

// flattenFloats turns arbitrarily nested numeric lists, as decoded from YAML or JSON, into a flat slice.
func flattenFloats(vals []interface{}) ([]float64, error) {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		switch x := v.(type) {
		case []float64:
			out = append(out, x...)
		case []interface{}:
			nested, err := flattenFloats(x)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		default:
			f, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
	}
	return out, nil
}
