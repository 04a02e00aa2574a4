package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/robots"
	"go.viam.com/kinchain/spatialmath"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := newApp(&buf).Run(append([]string{"kinchain"}, args...))
	return buf.String(), err
}

func TestRobotsCommand(t *testing.T) {
	out, err := run(t, "robots")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Fields(out), test.ShouldResemble, robots.Names())
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", "--robot", "heavyarm", "--json")
	test.That(t, err, test.ShouldBeNil)

	var frames []frameJSON
	test.That(t, json.Unmarshal([]byte(out), &frames), test.ShouldBeNil)
	test.That(t, frames, test.ShouldHaveLength, 8)
	test.That(t, frames[0].Name, test.ShouldEqual, "base")
	test.That(t, frames[7].Name, test.ShouldEqual, "tool")
	flange := frames[7].Pose.Translation
	test.That(t, spatialmath.R3VectorAlmostEqual(flange, r3.Vector{X: 105, Z: 3215}, 1e-3), test.ShouldBeTrue)

	out, err = run(t, "solve", "-r", "heavyarm", "-j", "0,0,0,0,0,0,100", "--json")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, json.Unmarshal([]byte(out), &frames), test.ShouldBeNil)
	flange = frames[7].Pose.Translation
	test.That(t, spatialmath.R3VectorAlmostEqual(flange, r3.Vector{X: 105, Z: 3315}, 1e-3), test.ShouldBeTrue)

	out, err = run(t, "solve", "--robot", "heavyarm")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "3215.000")

	t.Run("limits", func(t *testing.T) {
		_, err := run(t, "solve", "--robot", "heavyarm", "--joints", "400,0,0,0,0,0,0")
		test.That(t, errors.Is(err, referenceframe.ErrJointLimitExceeded), test.ShouldBeTrue)

		out, err := run(t, "solve", "--robot", "heavyarm", "--joints", "400,0,0,0,0,0,0", "--mode", "clamp")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "tool")

		_, err = run(t, "solve", "--robot", "heavyarm", "--mode", "loose")
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("length", func(t *testing.T) {
		_, err := run(t, "solve", "--robot", "heavyarm", "--joints", "0,0")
		test.That(t, errors.Is(err, referenceframe.ErrConfigurationLengthMismatch), test.ShouldBeTrue)
	})
}

func TestChainSelection(t *testing.T) {
	_, err := run(t, "validate")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "description is required")

	_, err = run(t, "validate", "--robot", "heavyarm", "--model", "arm.yaml")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "only one of")

	_, err = run(t, "validate", "--robot", "nope")
	test.That(t, err, test.ShouldNotBeNil)

	data, err := robots.Description("rv1a")
	test.That(t, err, test.ShouldBeNil)
	path := filepath.Join(t.TempDir(), "rv1a.yaml")
	test.That(t, os.WriteFile(path, data, 0o600), test.ShouldBeNil)

	out, err := run(t, "validate", "--model", path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "J1")
	test.That(t, out, test.ShouldContainSubstring, "prismatic")

	out, err = run(t, "validate", "--model", path, "--json")
	test.That(t, err, test.ShouldBeNil)
	cfg, err := referenceframe.DecodeModelConfig([]byte(out), "json")
	test.That(t, err, test.ShouldBeNil)
	chain, err := cfg.ParseConfig("")
	test.That(t, err, test.ShouldBeNil)
	want, err := robots.Load("rv1a")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, chain.AlmostEquals(want), test.ShouldBeTrue)
}

func TestGeometriesCommand(t *testing.T) {
	out, err := run(t, "geometries", "--robot", "heavyarm", "--json")
	test.That(t, err, test.ShouldBeNil)
	var geoms []spatialmath.GeometryConfig
	test.That(t, json.Unmarshal([]byte(out), &geoms), test.ShouldBeNil)
	test.That(t, geoms, test.ShouldHaveLength, 8)
	test.That(t, geoms[7].Label, test.ShouldEqual, "tool:flange")
	test.That(t, geoms[7].Type, test.ShouldEqual, spatialmath.BoxType)

	out, err = run(t, "geometries", "--robot", "heavyarm")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "J1:base")
	test.That(t, out, test.ShouldContainSubstring, "cylinder")
}

func TestSweepCommand(t *testing.T) {
	out, err := run(t, "sweep", "--robot", "heavyarm", "--to", "0,0,0,0,0,0,100", "--steps", "4", "--json")
	test.That(t, err, test.ShouldBeNil)
	var sweep sweepJSON
	test.That(t, json.Unmarshal([]byte(out), &sweep), test.ShouldBeNil)
	test.That(t, sweep.Samples, test.ShouldHaveLength, 5)
	test.That(t, sweep.DistanceMM, test.ShouldAlmostEqual, 100, 1e-6)
	test.That(t, sweep.RotationDeg, test.ShouldAlmostEqual, 0, 1e-6)
	test.That(t, sweep.Samples[2].Joints[6], test.ShouldAlmostEqual, 50.)
	test.That(t, sweep.Samples[4].Flange.Translation.Z, test.ShouldAlmostEqual, 3315, 1e-6)

	out, err = run(t, "sweep", "--robot", "heavyarm", "--to", "0,0,0,0,0,0,100", "--steps", "2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "flange path: 100.000 mm, 0.000 deg")

	_, err = run(t, "sweep", "--robot", "heavyarm")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = run(t, "sweep", "--robot", "heavyarm", "--to", "0,0", "--steps", "2")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, "schema")
	test.That(t, err, test.ShouldBeNil)
	var schema map[string]interface{}
	test.That(t, json.Unmarshal([]byte(out), &schema), test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "ModelConfig")
}
