package format

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/reoring/streamconv/model"
)

type yamlFormat struct{}

// YAML renders block-style YAML with two-space indentation.
func YAML() Format { return yamlFormat{} }

func (yamlFormat) Name() string { return "yaml" }

func (yamlFormat) Marshal(r *model.Request) ([]byte, error) {
	if err := checkNil(r, "yaml"); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, encodeError("yaml", err)
	}
	if err := enc.Close(); err != nil {
		return nil, encodeError("yaml", err)
	}
	return buf.Bytes(), nil
}

func (yamlFormat) Unmarshal(data []byte) (*model.Request, error) {
	var r model.Request
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&r)
	return decoded(&r, "yaml", err)
}
