package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"go.viam.com/kinchain/kinematics"
	"go.viam.com/kinchain/logging"
	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/robots"
	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

const (
	// Flags.
	flagDebug  = "debug"
	flagModel  = "model"
	flagRobot  = "robot"
	flagJoints = "joints"
	flagMode   = "mode"
	flagJSON   = "json"
	flagFrom   = "from"
	flagTo     = "to"
	flagSteps  = "steps"
)

// chainFlags returns fresh instances of the flags every chain command takes, preceded by extra.
func chainFlags(extra ...cli.Flag) []cli.Flag {
	return append(extra,
		&cli.StringFlag{
			Name:    flagModel,
			Aliases: []string{"m"},
			Usage:   "load the kinematic description from `FILE` (.yaml, .yml, .json or .json5)",
			EnvVars: []string{"KINCHAIN_MODEL"},
		},
		&cli.StringFlag{
			Name:    flagRobot,
			Aliases: []string{"r"},
			Usage:   "use a built in description, see 'kinchain robots'",
		},
		&cli.StringFlag{
			Name:  flagMode,
			Value: "strict",
			Usage: "what to do with joint values outside their limits: strict or clamp",
		},
		&cli.BoolFlag{
			Name:  flagJSON,
			Usage: "print JSON instead of a table",
		},
	)
}

func jointsFlag() cli.Flag {
	return &cli.Float64SliceFlag{
		Name:    flagJoints,
		Aliases: []string{"j"},
		Usage:   "joint values in degrees or mm, defaults to the home configuration",
	}
}

// runner holds state shared by the commands of one invocation.
type runner struct {
	logger logging.Logger
}

func newApp(out io.Writer) *cli.App {
	r := &runner{logger: logging.NewNopLogger()}
	return &cli.App{
		Name:      "kinchain",
		Usage:     "forward kinematics for serial manipulators",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				r.logger = logging.NewDebugLogger("kinchain")
			}
			logging.ReplaceGlobal(r.logger)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "robots",
				Usage:  "list the built in robot descriptions",
				Action: r.robotsAction,
			},
			{
				Name:      "validate",
				Usage:     "load a description and summarize its joints",
				UsageText: "kinchain validate [--model FILE | --robot NAME] [--json]",
				Flags:     chainFlags(),
				Action:    r.validateAction,
			},
			{
				Name:      "solve",
				Usage:     "print the frame of every link for a joint configuration",
				UsageText: "kinchain solve [--model FILE | --robot NAME] [--joints a,b,c...] [--mode strict|clamp] [--json]",
				Flags:     chainFlags(jointsFlag()),
				Action:    r.solveAction,
			},
			{
				Name:      "geometries",
				Usage:     "print the collision primitives placed at a joint configuration",
				UsageText: "kinchain geometries [--model FILE | --robot NAME] [--joints a,b,c...] [--mode strict|clamp] [--json]",
				Flags:     chainFlags(jointsFlag()),
				Action:    r.geometriesAction,
			},
			{
				Name:      "sweep",
				Usage:     "sample a straight joint space path and print the flange along it",
				UsageText: "kinchain sweep [--model FILE | --robot NAME] --to a,b,c... [--from a,b,c...] [--steps N]",
				Flags: chainFlags(
					&cli.Float64SliceFlag{
						Name:  flagFrom,
						Usage: "start configuration, defaults to home",
					},
					&cli.Float64SliceFlag{
						Name:     flagTo,
						Usage:    "end configuration",
						Required: true,
					},
					&cli.IntFlag{
						Name:  flagSteps,
						Value: 10,
						Usage: "number of intervals between the two configurations",
					},
				),
				Action: r.sweepAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of a kinematic description",
				Action: r.schemaAction,
			},
		},
	}
}

func (r *runner) robotsAction(c *cli.Context) error {
	for _, name := range robots.Names() {
		printf(c, "%s\n", name)
	}
	return nil
}

func (r *runner) validateAction(c *cli.Context) error {
	chain, err := r.loadChain(c)
	if err != nil {
		return err
	}
	if c.Bool(flagJSON) {
		return printJSON(c, referenceframe.NewModelConfig(chain))
	}
	printf(c, "%s\n", jointTable(chain))
	return nil
}

func (r *runner) solveAction(c *cli.Context) error {
	solver, inputs, err := r.solverAndInputs(c)
	if err != nil {
		return err
	}
	frames, err := solver.Frames(inputs)
	if err != nil {
		return err
	}
	names := append([]string{"base"}, solver.Chain().JointNames()...)
	if c.Bool(flagJSON) {
		return printJSON(c, lo.Map(frames, func(f spatialmath.Pose, i int) frameJSON {
			return frameJSON{Name: names[i], Pose: spatialmath.NewPoseConfig(f)}
		}))
	}
	printf(c, "%s\n", frameTable(names, frames))
	return nil
}

func (r *runner) geometriesAction(c *cli.Context) error {
	solver, inputs, err := r.solverAndInputs(c)
	if err != nil {
		return err
	}
	geoms, err := solver.Geometries(inputs)
	if err != nil {
		return err
	}
	if c.Bool(flagJSON) {
		return printJSON(c, geoms)
	}
	printf(c, "%s\n", geometryTable(geoms))
	return nil
}

func (r *runner) sweepAction(c *cli.Context) error {
	chain, err := r.loadChain(c)
	if err != nil {
		return err
	}
	policy, err := referenceframe.ParseLimitPolicy(c.String(flagMode))
	if err != nil {
		return err
	}
	from := chain.Home()
	if c.IsSet(flagFrom) {
		from = referenceframe.FloatsToInputs(c.Float64Slice(flagFrom))
	}
	to := referenceframe.FloatsToInputs(c.Float64Slice(flagTo))
	samples, err := kinematics.Sample(from, to, c.Int(flagSteps))
	if err != nil {
		return err
	}
	flanges, err := kinematics.BatchFlange(c.Context, chain, samples, policy)
	if err != nil {
		return err
	}
	dist, angle := kinematics.PathLength(flanges)
	r.logger.Debugw("sweep done", "samples", len(samples), "distance_mm", dist, "rotation_rad", angle)
	if c.Bool(flagJSON) {
		return printJSON(c, newSweepJSON(samples, flanges, dist, angle))
	}
	printf(c, "%s\n", sweepTable(samples, flanges))
	printf(c, "flange path: %.3f mm, %.3f deg\n", dist, utils.RadToDeg(angle))
	return nil
}

func (r *runner) schemaAction(c *cli.Context) error {
	return printJSON(c, referenceframe.ModelJSONSchema())
}

func (r *runner) loadChain(c *cli.Context) (*referenceframe.Chain, error) {
	switch {
	case c.String(flagModel) != "" && c.String(flagRobot) != "":
		return nil, errors.New("use only one of --model and --robot")
	case c.String(flagModel) != "":
		return referenceframe.ParseModelFile(c.String(flagModel), "", r.logger)
	case c.String(flagRobot) != "":
		return robots.Load(c.String(flagRobot))
	default:
		return nil, errors.New("a description is required, pass --model FILE or --robot NAME")
	}
}

func (r *runner) solverAndInputs(c *cli.Context) (*kinematics.Solver, []referenceframe.Input, error) {
	chain, err := r.loadChain(c)
	if err != nil {
		return nil, nil, err
	}
	policy, err := referenceframe.ParseLimitPolicy(c.String(flagMode))
	if err != nil {
		return nil, nil, err
	}
	inputs := chain.Home()
	if c.IsSet(flagJoints) {
		inputs = referenceframe.FloatsToInputs(c.Float64Slice(flagJoints))
	}
	return kinematics.NewSolver(chain, policy, r.logger.Sublogger("solver")), inputs, nil
}

func printf(c *cli.Context, format string, args ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(c.App.Writer, format, args...)
}

func printJSON(c *cli.Context, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	printf(c, "%s\n", data)
	return nil
}
