// Package convert runs the Request pipeline: read, decode and validate the
// JSON input once, then render it in each requested format.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	j "github.com/goccy/go-json"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/jsonschema"
	"github.com/reoring/streamconv/model"
)

// Decoder turns JSON bytes into a validated model.Request. The compiled
// schema is rebuilt when a RequestType is registered after NewDecoder.
type Decoder struct {
	opt    streamconv.ParseOpt
	strict bool

	mu     sync.Mutex
	gen    uint64
	schema *jsonschema.Validator
}

// NewDecoder compiles the Request schema for opt.
func NewDecoder(opt streamconv.ParseOpt) (*Decoder, error) {
	d := &Decoder{opt: opt, strict: opt.Unknown == streamconv.UnknownStrict}
	if _, err := d.requestSchema(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Decoder) requestSchema() (*jsonschema.Validator, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	gen := model.RequestTypesGeneration()
	if d.schema != nil && d.gen == gen {
		return d.schema, nil
	}
	schema, err := model.CompileRequestSchema(d.strict)
	if err != nil {
		return nil, fmt.Errorf("convert: request schema: %w", err)
	}
	d.schema, d.gen = schema, gen
	return schema, nil
}

// Decode parses data, validates it against the Request schema and the typed
// model rules, and returns the request. Errors are streamconv.Issues for
// syntax and schema failures.
func (d *Decoder) Decode(ctx context.Context, data []byte) (*model.Request, error) {
	tree, err := streamconv.ParseTreeBytes(ctx, data, d.opt)
	if err != nil {
		return nil, err
	}
	schema, err := d.requestSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(tree); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var req model.Request
	if err := j.Unmarshal(data, &req); err != nil {
		return nil, unmarshalIssues(err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeReader reads r to completion and decodes it.
func (d *Decoder) DecodeReader(ctx context.Context, r io.Reader) (*model.Request, error) {
	data, err := streamconv.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.Decode(ctx, data)
}

// DecodeFile reads the file at path and decodes it.
func (d *Decoder) DecodeFile(ctx context.Context, path string) (*model.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(streamconv.ErrRead, err)
	}
	return d.Decode(ctx, data)
}

// unmarshalIssues maps go-json errors to Issues; the schema pass catches
// nearly everything, so this covers cases such as 1.0 for an integer field.
func unmarshalIssues(err error) error {
	if iss, ok := streamconv.AsIssues(err); ok {
		return iss
	}
	var te *j.UnmarshalTypeError
	if errors.As(err, &te) {
		path := "/" + strings.ReplaceAll(te.Field, ".", "/")
		it := streamconv.NewIssue(path, streamconv.CodeInvalidType, map[string]string{"expected": te.Type.String()})
		it.Cause = err
		return streamconv.AppendIssues(nil, it)
	}
	it := streamconv.NewIssue("/", streamconv.CodeInvalidType, nil)
	it.Message = err.Error()
	it.Cause = err
	return streamconv.AppendIssues(nil, it)
}
