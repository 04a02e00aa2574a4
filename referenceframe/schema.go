package referenceframe

import (
	"github.com/invopop/jsonschema"
)

// ModelJSONSchema returns the JSON schema of a kinematic description file.
func ModelJSONSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&ModelConfig{})
}
