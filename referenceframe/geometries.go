package referenceframe

import (
	"github.com/pkg/errors"

	"go.viam.com/kinchain/spatialmath"
)

// Geometries places every primitive of the chain using frames as returned by Frames: base primitives ride on
// frames[0] and the primitives of link i on frames[i+1], the output frame of that link. Base primitives come
// first, then link order, then the order the primitives were declared. Each is labelled
// "<joint>:<primitive name or index>", base primitives "mount:<primitive name or index>".
func (c *Chain) Geometries(frames []spatialmath.Pose) ([]spatialmath.Geometry, error) {
	if len(frames) != len(c.links)+1 {
		return nil, NewFrameCountMismatchError(len(frames), len(c.links)+1)
	}
	if frames[0] == nil {
		return nil, errors.New("frame 0 is nil")
	}
	geoms := make([]spatialmath.Geometry, 0, len(c.baseLocal))
	for _, g := range c.baseLocal {
		geoms = append(geoms, g.Transform(frames[0]))
	}
	for i, link := range c.links {
		if frames[i+1] == nil {
			return nil, errors.Errorf("frame %d is nil", i+1)
		}
		geoms = append(geoms, link.Geometries(frames[i+1])...)
	}
	return geoms, nil
}

// GeometriesAt computes the frames for inputs and places every primitive of the chain in them.
func (c *Chain) GeometriesAt(inputs []Input, policy LimitPolicy) ([]spatialmath.Geometry, error) {
	frames, err := c.Frames(inputs, policy)
	if err != nil {
		return nil, err
	}
	return c.Geometries(frames)
}
