package referenceframe

import (
	"go.uber.org/multierr"

	"go.viam.com/kinchain/spatialmath"
)

// Frames computes the frame of the base and of every link's output for the given joint values, starting from
// the chain's mount. The result has Len()+1 entries: index 0 is the base, index i+1 is the output frame of
// link i, and the last entry is the flange.
//
// Under StrictLimits every out of range joint is reported in one combined error.
func (c *Chain) Frames(inputs []Input, policy LimitPolicy) ([]spatialmath.Pose, error) {
	return c.FramesFromBase(c.mount, inputs, policy)
}

// FramesFromBase is Frames with an explicit base frame in place of the chain's mount.
func (c *Chain) FramesFromBase(base spatialmath.Pose, inputs []Input, policy LimitPolicy) ([]spatialmath.Pose, error) {
	if len(inputs) != len(c.links) {
		return nil, NewConfigurationLengthMismatchError(len(inputs), len(c.links))
	}
	if base == nil {
		base = spatialmath.NewZeroPose()
	}

	var errAll error
	frames := make([]spatialmath.Pose, 0, len(c.links)+1)
	frames = append(frames, base)
	composed := base
	for i, link := range c.links {
		local, err := link.Transform(inputs[i].Value, policy)
		if err != nil {
			multierr.AppendInto(&errAll, newLinkError(err, i))
			continue
		}
		if errAll != nil {
			continue
		}
		composed = spatialmath.Compose(composed, local)
		frames = append(frames, composed)
	}
	if errAll != nil {
		return nil, errAll
	}
	return frames, nil
}

// Transform returns the flange pose for the given joint values.
func (c *Chain) Transform(inputs []Input, policy LimitPolicy) (spatialmath.Pose, error) {
	frames, err := c.Frames(inputs, policy)
	if err != nil {
		return nil, err
	}
	return frames[len(frames)-1], nil
}

// ClampInputs returns a copy of inputs with every value moved inside its joint's limits.
// Non-finite values cannot be clamped and are reported as errors.
func (c *Chain) ClampInputs(inputs []Input) ([]Input, error) {
	return c.resolveInputs(inputs, ClampLimits)
}

// CheckInputs reports every joint whose value is outside its limits without computing any frames.
func (c *Chain) CheckInputs(inputs []Input) error {
	_, err := c.resolveInputs(inputs, StrictLimits)
	return err
}

func (c *Chain) resolveInputs(inputs []Input, policy LimitPolicy) ([]Input, error) {
	if len(inputs) != len(c.links) {
		return nil, NewConfigurationLengthMismatchError(len(inputs), len(c.links))
	}
	var errAll error
	resolved := make([]Input, len(inputs))
	for i, link := range c.links {
		v, err := link.Joint().Resolve(inputs[i].Value, policy)
		if err != nil {
			multierr.AppendInto(&errAll, newLinkError(err, i))
			continue
		}
		resolved[i] = Input{v}
	}
	if errAll != nil {
		return nil, errAll
	}
	return resolved, nil
}
