package main

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"go.viam.com/kinchain/referenceframe"
	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

type frameJSON struct {
	Name string                  `json:"name"`
	Pose *spatialmath.PoseConfig `json:"pose"`
}

type sweepSampleJSON struct {
	Joints []float64               `json:"joints"`
	Flange *spatialmath.PoseConfig `json:"flange"`
}

type sweepJSON struct {
	Samples     []sweepSampleJSON `json:"samples"`
	DistanceMM  float64           `json:"distance_mm"`
	RotationDeg float64           `json:"rotation_deg"`
}

func newSweepJSON(samples [][]referenceframe.Input, flanges []spatialmath.Pose, dist, angle float64) *sweepJSON {
	return &sweepJSON{
		Samples: lo.Map(samples, func(s []referenceframe.Input, i int) sweepSampleJSON {
			return sweepSampleJSON{
				Joints: referenceframe.InputsToFloats(s),
				Flange: spatialmath.NewPoseConfig(flanges[i]),
			}
		}),
		DistanceMM:  dist,
		RotationDeg: utils.RadToDeg(angle),
	}
}

func jointTable(chain *referenceframe.Chain) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s: %d joints", chain.Name(), chain.Len()))
	t.AppendHeader(table.Row{"#", "Joint", "Type", "Axis", "Limits", "Home", "Offset", "Primitives"})
	for _, l := range chain.Links() {
		j := l.Joint()
		t.AppendRow(table.Row{
			l.Index(),
			j.Name(),
			j.Type(),
			vectorString(j.Axis()),
			j.Limit().String(),
			fmt.Sprintf("%.2f", j.Home()),
			spatialmath.PoseString(l.Offset()),
			len(l.Primitives()),
		})
	}
	return t.Render()
}

func frameTable(names []string, frames []spatialmath.Pose) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Frame", "Translation (mm)", "Yaw/Pitch/Roll (deg)"})
	for i, f := range frames {
		t.AppendRow(table.Row{i, names[i], vectorString(f.Point()), eulerString(f.Orientation())})
	}
	return t.Render()
}

func geometryTable(geoms []spatialmath.Geometry) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Label", "Type", "Centre (mm)", "Size (mm)"})
	for i, g := range geoms {
		var kind, size string
		switch gType := g.(type) {
		case *spatialmath.Box:
			kind = string(spatialmath.BoxType)
			size = vectorString(gType.Dims())
		case *spatialmath.Cylinder:
			kind = string(spatialmath.CylinderType)
			size = fmt.Sprintf("r %.2f l %.2f", gType.Radius(), gType.Length())
		}
		t.AppendRow(table.Row{i, g.Label(), kind, vectorString(g.Pose().Point()), size})
	}
	return t.Render()
}

func sweepTable(samples [][]referenceframe.Input, flanges []spatialmath.Pose) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Step", "Joints", "Flange (mm)", "Yaw/Pitch/Roll (deg)"})
	for i, s := range samples {
		vals := lo.Map(s, func(in referenceframe.Input, _ int) string {
			return fmt.Sprintf("%.2f", in.Value)
		})
		t.AppendRow(table.Row{i, strings.Join(vals, " "), vectorString(flanges[i].Point()), eulerString(flanges[i].Orientation())})
	}
	return t.Render()
}

func vectorString(v r3.Vector) string {
	return fmt.Sprintf("%.3f %.3f %.3f", v.X, v.Y, v.Z)
}

func eulerString(o spatialmath.Orientation) string {
	ea := o.EulerAngles()
	return fmt.Sprintf("%.3f %.3f %.3f", utils.RadToDeg(ea.Yaw), utils.RadToDeg(ea.Pitch), utils.RadToDeg(ea.Roll))
}
