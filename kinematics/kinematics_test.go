package kinematics

import (
	"context"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/kinchain/logging"
	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/robots"
	"go.viam.com/kinchain/spatialmath"
)

func randomConfigs(t *testing.T, c *referenceframe.Chain, n int) [][]referenceframe.Input {
	t.Helper()
	//nolint:gosec
	r := rand.New(rand.NewSource(1))
	configs := make([][]referenceframe.Input, 0, n)
	for i := 0; i < n; i++ {
		config := make([]referenceframe.Input, 0, c.Len())
		for _, lim := range c.DoF() {
			config = append(config, referenceframe.Input{Value: lim.Min + r.Float64()*(lim.Max-lim.Min)})
		}
		configs = append(configs, config)
	}
	return configs
}

func TestSolver(t *testing.T) {
	c, err := robots.Load("heavyarm")
	test.That(t, err, test.ShouldBeNil)

	logger, logs := logging.NewObservedTestLogger(t)
	s := NewSolver(c, referenceframe.ClampLimits, logger)
	test.That(t, s.Chain(), test.ShouldEqual, c)
	test.That(t, s.Policy(), test.ShouldEqual, referenceframe.ClampLimits)

	outside := c.Home()
	outside[0] = referenceframe.Input{Value: 400}
	flange, err := s.Flange(outside)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logs.FilterMessage("clamped joint value").Len(), test.ShouldEqual, 1)

	atBound := c.Home()
	atBound[0] = referenceframe.Input{Value: 185}
	want, err := c.Transform(atBound, referenceframe.StrictLimits)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(flange, want), test.ShouldBeTrue)

	lifted := s.WithBase(spatialmath.NewPoseFromPoint(r3.Vector{Z: 1000}))
	home, err := lifted.Flange(c.Home())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.R3VectorAlmostEqual(home.Point(), r3.Vector{X: 105, Z: 4215}, 1e-3), test.ShouldBeTrue)
	frames, err := s.Frames(c.Home())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, spatialmath.PoseAlmostEqual(frames[0], spatialmath.NewZeroPose()), test.ShouldBeTrue)

	geoms, err := s.Geometries(c.Home())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, geoms, test.ShouldHaveLength, 8)

	strict := NewSolver(c, referenceframe.StrictLimits, nil)
	_, err = strict.Flange(outside)
	test.That(t, errors.Is(err, referenceframe.ErrJointLimitExceeded), test.ShouldBeTrue)
}

func TestBatchMatchesSequential(t *testing.T) {
	c, err := robots.Load("rv1a")
	test.That(t, err, test.ShouldBeNil)
	configs := randomConfigs(t, c, 200)

	batch, err := BatchFrames(context.Background(), c, configs, referenceframe.StrictLimits)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, batch, test.ShouldHaveLength, len(configs))
	for i, config := range configs {
		frames, err := c.Frames(config, referenceframe.StrictLimits)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, batch[i], test.ShouldHaveLength, len(frames))
		for j := range frames {
			test.That(t, spatialmath.PoseAlmostEqual(batch[i][j], frames[j]), test.ShouldBeTrue)
		}
	}

	flanges, err := BatchFlange(context.Background(), c, configs, referenceframe.StrictLimits)
	test.That(t, err, test.ShouldBeNil)
	for i := range configs {
		test.That(t, spatialmath.PoseAlmostEqual(flanges[i], batch[i][len(batch[i])-1]), test.ShouldBeTrue)
	}

	empty, err := BatchFrames(context.Background(), c, nil, referenceframe.StrictLimits)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, empty, test.ShouldHaveLength, 0)
}

func TestBatchErrors(t *testing.T) {
	c, err := robots.Load("rv1a")
	test.That(t, err, test.ShouldBeNil)
	configs := randomConfigs(t, c, 20)
	configs[7] = configs[7][:3]

	_, err = BatchFrames(context.Background(), c, configs, referenceframe.StrictLimits)
	test.That(t, errors.Is(err, referenceframe.ErrConfigurationLengthMismatch), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "configuration 7")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = BatchFlange(ctx, c, randomConfigs(t, c, 20), referenceframe.StrictLimits)
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
}

func TestSample(t *testing.T) {
	from := referenceframe.FloatsToInputs([]float64{0, 0, 90})
	to := referenceframe.FloatsToInputs([]float64{10, -20, 100})
	samples, err := Sample(from, to, 4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, samples, test.ShouldHaveLength, 5)
	test.That(t, samples[0], test.ShouldResemble, from)
	test.That(t, referenceframe.InputsToFloats(samples[2]), test.ShouldResemble, []float64{5, -10, 95})
	test.That(t, referenceframe.InputsL2Distance(samples[4], to), test.ShouldAlmostEqual, 0.)

	_, err = Sample(from, to[:2], 4)
	test.That(t, errors.Is(err, referenceframe.ErrConfigurationLengthMismatch), test.ShouldBeTrue)
	_, err = Sample(from, to, 0)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestPathLength(t *testing.T) {
	poses := []spatialmath.Pose{
		spatialmath.NewZeroPose(),
		spatialmath.NewPoseFromPoint(r3.Vector{X: 3, Y: 4}),
		spatialmath.NewPose(r3.Vector{X: 3, Y: 4}, spatialmath.NewEulerAnglesDegrees(90, 0, 0)),
	}
	dist, angle := PathLength(poses)
	test.That(t, dist, test.ShouldAlmostEqual, 5.)
	test.That(t, angle, test.ShouldAlmostEqual, 1.5707963267948966)

	dist, angle = PathLength(poses[:1])
	test.That(t, dist, test.ShouldEqual, 0.)
	test.That(t, angle, test.ShouldEqual, 0.)
}
