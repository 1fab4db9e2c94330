package format

import (
	j "github.com/goccy/go-json"

	"github.com/reoring/streamconv/model"
)

type jsonFormat struct{}

// JSON renders pretty-printed JSON with two-space indentation.
func JSON() Format { return jsonFormat{} }

func (jsonFormat) Name() string { return "json" }

func (jsonFormat) Marshal(r *model.Request) ([]byte, error) {
	if err := checkNil(r, "json"); err != nil {
		return nil, err
	}
	out, err := j.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, encodeError("json", err)
	}
	return append(out, '\n'), nil
}

func (jsonFormat) Unmarshal(data []byte) (*model.Request, error) {
	var r model.Request
	err := j.Unmarshal(data, &r)
	return decoded(&r, "json", err)
}
