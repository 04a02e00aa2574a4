package referenceframe

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"go.viam.com/kinchain/logging"
)

// ModelFile is a struct that stores the raw bytes of the file used to create the model as well as its extension,
// which is useful for knowing how to unmarshal it.
type ModelFile struct {
	Bytes     []byte
	Extension string
}

// UnmarshalModelYAML will parse the given YAML data into a chain. modelName sets the name of the chain,
// will use the name from the YAML if string is empty.
func UnmarshalModelYAML(yamlData []byte, modelName string) (*Chain, error) {
	cfg, err := DecodeModelConfig(yamlData, "yaml")
	if err != nil {
		return nil, err
	}
	return cfg.ParseConfig(modelName)
}

// UnmarshalModelJSON will parse the given JSON data into a chain. modelName sets the name of the chain,
// will use the name from the JSON if string is empty.
func UnmarshalModelJSON(jsonData []byte, modelName string) (*Chain, error) {
	cfg, err := DecodeModelConfig(jsonData, "json")
	if err != nil {
		return nil, err
	}
	return cfg.ParseConfig(modelName)
}

// DecodeModelConfig decodes a description without validating it. Unknown fields are rejected so that
// misspelled keys do not silently fall back to defaults.
func DecodeModelConfig(data []byte, extension string) (*ModelConfig, error) {
	// empty data probably means that the robot has no model information
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoModelInformation
	}
	cfg := &ModelConfig{OriginalFile: &ModelFile{Bytes: data, Extension: extension}}
	switch extension {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal yaml file")
		}
	case "json":
		if err := decodeStrictJSON(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal json file")
		}
	case "json5":
		// comments, trailing commas and unquoted keys are normalized away before the strict decode
		var loose interface{}
		if err := json5.Unmarshal(data, &loose); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal json5 file")
		}
		normalized, err := json.Marshal(loose)
		if err != nil {
			return nil, err
		}
		if err := decodeStrictJSON(normalized, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal json5 file")
		}
	default:
		return nil, errors.Errorf("unsupported description format %q, expected yaml, json or json5", extension)
	}
	return cfg, nil
}

func decodeStrictJSON(data []byte, cfg *ModelConfig) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// ParseModelFile will read a given file and parse the contained YAML, JSON or JSON5 description, picking the
// format from the file extension. A nil logger logs to the global logger.
func ParseModelFile(filename, modelName string, logger logging.Logger) (*Chain, error) {
	if logger == nil {
		logger = logging.Global()
	}
	//nolint:gosec
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read description file")
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	cfg, err := DecodeModelConfig(data, ext)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}
	chain, err := cfg.ParseConfig(modelName)
	if err != nil {
		return nil, errors.Wrapf(err, "building chain from %s", filename)
	}
	logger.Debugw("loaded kinematic chain",
		"file", filename,
		"name", chain.Name(),
		"joints", chain.JointNames(),
		"mount", chain.Mount().Point(),
	)
	return chain, nil
}
