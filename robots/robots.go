// Package robots ships kinematic descriptions of known arms.
package robots

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/kinchain/referenceframe"
)

//go:embed kinematics/*.yaml
var kinematics embed.FS

const kinematicsDir = "kinematics"

// Names returns the names of every built in description, sorted.
func Names() []string {
	entries, err := kinematics.ReadDir(kinematicsDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Description returns the raw YAML description of the named robot.
func Description(name string) ([]byte, error) {
	data, err := kinematics.ReadFile(path.Join(kinematicsDir, name+".yaml"))
	if err != nil {
		return nil, errors.Errorf("unknown robot %q, known robots are %v", name, Names())
	}
	return data, nil
}

// Load builds the chain of the named robot.
func Load(name string) (*referenceframe.Chain, error) {
	data, err := Description(name)
	if err != nil {
		return nil, err
	}
	return referenceframe.UnmarshalModelYAML(data, name)
}
