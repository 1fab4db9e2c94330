package codec

import (
	"context"
	"slices"
	"strings"

	streamconv "github.com/reoring/streamconv"
)

// Enum returns a Codec for a string-tagged enumeration. Only the listed tags
// decode; anything else is an invalid_enum issue rather than a default.
func Enum[T ~string](tags ...T) streamconv.Codec[string, T] {
	return &enumCodec[T]{tags: slices.Clone(tags)}
}

type enumCodec[T ~string] struct {
	tags []T
}

func (c *enumCodec[T]) Decode(ctx context.Context, a string) (T, error) {
	if !slices.Contains(c.tags, T(a)) {
		var zero T
		return zero, c.issue(a)
	}
	return T(a), nil
}

func (c *enumCodec[T]) Encode(ctx context.Context, b T) (string, error) {
	if !slices.Contains(c.tags, b) {
		return "", c.issue(string(b))
	}
	return string(b), nil
}

func (c *enumCodec[T]) issue(got string) streamconv.Issues {
	allowed := make([]string, len(c.tags))
	for i, t := range c.tags {
		allowed[i] = string(t)
	}
	return streamconv.AppendIssues(nil, streamconv.NewIssue("/", streamconv.CodeInvalidEnum, map[string]string{
		"got":     got,
		"allowed": strings.Join(allowed, ", "),
	}))
}
