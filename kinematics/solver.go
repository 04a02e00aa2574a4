// Package kinematics evaluates the forward kinematics of a chain for one configuration or for many at once.
package kinematics

import (
	"go.viam.com/kinchain/logging"
	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/spatialmath"
)

// Solver binds a chain to a limit policy and a base frame. It holds no mutable state and may be shared
// between goroutines.
type Solver struct {
	chain  *referenceframe.Chain
	policy referenceframe.LimitPolicy
	base   spatialmath.Pose
	logger logging.Logger
}

// NewSolver returns a solver placing the chain at its mount.
func NewSolver(chain *referenceframe.Chain, policy referenceframe.LimitPolicy, logger logging.Logger) *Solver {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Solver{
		chain:  chain,
		policy: policy,
		base:   chain.Mount(),
		logger: logger,
	}
}

// WithBase returns a copy of the solver that places the chain at base instead of its mount.
func (s *Solver) WithBase(base spatialmath.Pose) *Solver {
	cp := *s
	if base != nil {
		cp.base = base
	}
	return &cp
}

// Chain returns the solver's chain.
func (s *Solver) Chain() *referenceframe.Chain {
	return s.chain
}

// Policy returns the solver's limit policy.
func (s *Solver) Policy() referenceframe.LimitPolicy {
	return s.policy
}

// Frames returns the base frame followed by the output frame of every link.
func (s *Solver) Frames(inputs []referenceframe.Input) ([]spatialmath.Pose, error) {
	if s.policy == referenceframe.ClampLimits {
		s.logClamped(inputs)
	}
	return s.chain.FramesFromBase(s.base, inputs, s.policy)
}

// Flange returns the pose of the last link's output frame.
func (s *Solver) Flange(inputs []referenceframe.Input) (spatialmath.Pose, error) {
	frames, err := s.Frames(inputs)
	if err != nil {
		return nil, err
	}
	return frames[len(frames)-1], nil
}

// Geometries returns every primitive of the chain placed at the given configuration.
func (s *Solver) Geometries(inputs []referenceframe.Input) ([]spatialmath.Geometry, error) {
	frames, err := s.Frames(inputs)
	if err != nil {
		return nil, err
	}
	return s.chain.Geometries(frames)
}

func (s *Solver) logClamped(inputs []referenceframe.Input) {
	if len(inputs) != s.chain.Len() {
		return
	}
	for i, l := range s.chain.Links() {
		applied, err := l.Joint().Resolve(inputs[i].Value, referenceframe.ClampLimits)
		if err == nil && applied != inputs[i].Value {
			s.logger.Debugw("clamped joint value", "joint", l.Name(), "requested", inputs[i].Value, "applied", applied)
		}
	}
}
