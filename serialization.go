package pushkit

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/kart-io/pushkit/pkg/payload"
)

// ToJSON serializes a payload to compact JSON, the wire format consumed
// by the target service.
func ToJSON(p payload.Payload) ([]byte, error) {
	return json.Marshal(p)
}

// ToJSONIndent serializes a payload to indented JSON for logs and debugging.
func ToJSONIndent(p payload.Payload) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// ToYAML serializes a payload to YAML for fixtures and debugging.
func ToYAML(p payload.Payload) ([]byte, error) {
	return yaml.Marshal(map[string]interface{}(p))
}
