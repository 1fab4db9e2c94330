package format

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/reoring/streamconv/model"
)

type tomlFormat struct{}

// TOML renders the request as nested tables with arrays of tables for gifts.
func TOML() Format { return tomlFormat{} }

func (tomlFormat) Name() string { return "toml" }

func (tomlFormat) Marshal(r *model.Request) ([]byte, error) {
	if err := checkNil(r, "toml"); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(r); err != nil {
		return nil, encodeError("toml", err)
	}
	return buf.Bytes(), nil
}

func (tomlFormat) Unmarshal(data []byte) (*model.Request, error) {
	var r model.Request
	md, err := toml.Decode(string(data), &r)
	if err == nil {
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			err = fmt.Errorf("unknown keys %v", undecoded)
		}
	}
	return decoded(&r, "toml", err)
}
