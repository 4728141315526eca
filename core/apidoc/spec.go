package apidoc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

// ErrAlreadyRegistered is returned when a document is registered twice under the same name.
var ErrAlreadyRegistered = errors.New("api document already registered")

// Spec is a rendered, immutable OpenAPI document.
// It implements swag.Swagger so it can be served by gofiber/swagger.
type Spec struct {
	json []byte
	yaml []byte
}

// Render marshals doc into JSON and YAML.
func Render(doc *openapi3.T) (*Spec, error) {
	jsonDoc, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal api document: %w", err)
	}

	yamlDoc, err := toYAML(jsonDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert api document to yaml: %w", err)
	}

	return &Spec{json: jsonDoc, yaml: yamlDoc}, nil
}

// ReadDoc returns the JSON document.
func (s *Spec) ReadDoc() string {
	return string(s.json)
}

// JSON returns the JSON document.
func (s *Spec) JSON() []byte {
	return s.json
}

// YAML returns the YAML document.
func (s *Spec) YAML() []byte {
	return s.yaml
}

// Register publishes spec in the swag registry under name.
func Register(name string, spec *Spec) error {
	// swag.Register panics on duplicates
	if swag.GetSwagger(name) != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	swag.Register(name, spec)
	return nil
}

// toYAML re-encodes a JSON document as block style YAML.
func toYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	resetStyle(&node)
	return yaml.Marshal(&node)
}

func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}
