// Package format renders a decoded Request as text and reads it back.
package format

import (
	"fmt"
	"sort"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/model"
)

// Format is one textual encoding of a Request.
type Format interface {
	Name() string
	// Marshal renders r. Failures wrap streamconv.ErrEncode.
	Marshal(r *model.Request) ([]byte, error)
	// Unmarshal reads a document produced by Marshal and validates the typed
	// invariants of the result.
	Unmarshal(data []byte) (*model.Request, error)
}

var registry = map[string]func() Format{
	"json": func() Format { return JSON() },
	"yaml": func() Format { return YAML() },
	"toml": func() Format { return TOML() },
}

// ByName returns the format registered under name.
func ByName(name string) (Format, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("format: unknown format %q (known: %v)", name, Names())
	}
	return f(), nil
}

// Names lists the registered format names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func encodeError(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", streamconv.ErrEncode, name, err)
}

func decoded(r *model.Request, name string, err error) (*model.Request, error) {
	if err != nil {
		it := streamconv.NewIssue("/", streamconv.CodeParseError, nil)
		it.Message = name + ": " + err.Error()
		it.Cause = err
		return nil, streamconv.AppendIssues(nil, it)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func checkNil(r *model.Request, name string) error {
	if r == nil {
		return encodeError(name, fmt.Errorf("nil request"))
	}
	return nil
}
