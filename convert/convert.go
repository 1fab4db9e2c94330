package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/format"
	"github.com/reoring/streamconv/model"
)

// Converter renders a request in a fixed sequence of formats.
type Converter struct {
	formats []format.Format
}

// NewConverter returns a Converter writing formats in the given order.
func NewConverter(formats ...format.Format) *Converter {
	return &Converter{formats: formats}
}

// Default renders YAML followed by TOML.
func Default() *Converter { return NewConverter(format.YAML(), format.TOML()) }

// Render encodes req in every format and concatenates the results without a
// separator. Nothing is returned unless every encoder succeeds.
func (c *Converter) Render(req *model.Request) ([]byte, error) {
	var buf bytes.Buffer
	for _, f := range c.formats {
		out, err := f.Marshal(req)
		if err != nil {
			return nil, err
		}
		buf.Write(out)
	}
	return buf.Bytes(), nil
}

// Convert renders req and writes the result to w.
func (c *Converter) Convert(req *model.Request, w io.Writer) error {
	out, err := c.Render(req)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("convert: write output: %w", err)
	}
	return nil
}

// Run is the whole pipeline: decode the file at path once, then write every
// rendering to w.
func Run(ctx context.Context, path string, w io.Writer, opt streamconv.ParseOpt) (*model.Request, error) {
	dec, err := NewDecoder(opt)
	if err != nil {
		return nil, err
	}
	req, err := dec.DecodeFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := Default().Convert(req, w); err != nil {
		return nil, err
	}
	return req, nil
}
