package undofsm

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	configDocument struct {
		Initial State     `yaml:"initial"`
		States  yaml.Node `yaml:"states"`
	}

	stateDocument struct {
		Transitions Transitions `yaml:"transitions"`
	}
)

// ParseConfig decodes a YAML (or JSON) document of the form
//
//	initial: normal
//	states:
//	  normal:
//	    transitions:
//	      study: busy
//	  busy: {}
//
// States keep the order in which they appear in the document.
func ParseConfig(data []byte) (*Config, error) {
	var doc configDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ErrConfig{Reason: "failed to decode document", Err: err}
	}

	if doc.States.Kind != yaml.MappingNode {
		return nil, &ErrConfig{Reason: "states must be a mapping"}
	}

	cfg := NewConfig(doc.Initial)

	for i := 0; i+1 < len(doc.States.Content); i += 2 {
		key, value := doc.States.Content[i], doc.States.Content[i+1]

		var sd stateDocument
		if err := value.Decode(&sd); err != nil {
			return nil, &ErrConfig{Reason: "failed to decode state " + key.Value, Err: err}
		}

		cfg.States.Push(StateConfig{Name: State(key.Value), Transitions: sd.Transitions})
	}

	return cfg, nil
}

// LoadConfig reads r to the end and decodes it with ParseConfig.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrConfig{Reason: "failed to read document", Err: err}
	}

	return ParseConfig(data)
}

// LoadConfigFile decodes the configuration stored at path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrConfig{Reason: "failed to read " + path, Err: err}
	}

	return ParseConfig(data)
}
