package streamconv

import "context"

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B. Decode validates the
// wire value; Encode must only be called with values Decode could produce.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// Decode is a thin wrapper around Codec.Decode for the forward direction.
func Decode[A, B any](ctx context.Context, c Codec[A, B], a A) (B, error) {
	return c.Decode(ctx, a)
}

// Encode is a convenience wrapper over Codec.Encode (domain->wire) direction.
func Encode[A, B any](ctx context.Context, c Codec[A, B], b B) (A, error) {
	return c.Encode(ctx, b)
}

// SafeDecode decodes a, returning (zero, false) on error.
func SafeDecode[A, B any](ctx context.Context, c Codec[A, B], a A) (B, bool) {
	v, err := c.Decode(ctx, a)
	if err != nil {
		var zero B
		return zero, false
	}
	return v, true
}
