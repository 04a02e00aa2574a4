package kinematics

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

// BatchFrames computes the frames of every configuration in parallel, bounded by utils.Workers.
// Results are in the order of configs. The first failing configuration cancels the rest and is returned.
func BatchFrames(
	ctx context.Context,
	chain *referenceframe.Chain,
	configs [][]referenceframe.Input,
	policy referenceframe.LimitPolicy,
) ([][]spatialmath.Pose, error) {
	results := make([][]spatialmath.Pose, len(configs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(utils.Workers(len(configs)))
	for i, config := range configs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			frames, err := chain.Frames(config, policy)
			if err != nil {
				return errors.Wrapf(err, "configuration %d", i)
			}
			results[i] = frames
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// BatchFlange is BatchFrames keeping only the flange pose of each configuration.
func BatchFlange(
	ctx context.Context,
	chain *referenceframe.Chain,
	configs [][]referenceframe.Input,
	policy referenceframe.LimitPolicy,
) ([]spatialmath.Pose, error) {
	all, err := BatchFrames(ctx, chain, configs, policy)
	if err != nil {
		return nil, err
	}
	flanges := make([]spatialmath.Pose, 0, len(all))
	for _, frames := range all {
		flanges = append(flanges, frames[len(frames)-1])
	}
	return flanges, nil
}
