package formatter

import (
	"encoding/json"
)

type responseBuilder struct{}

// NewResponseBuilder creates a new response builder for API payloads
func NewResponseBuilder() *responseBuilder {
	return &responseBuilder{}
}

// BuildJSON serializes a payload to JSON
func (rb *responseBuilder) BuildJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// BuildIndentedJSON serializes a payload for terminal output
func (rb *responseBuilder) BuildIndentedJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
