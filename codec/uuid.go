package codec

import (
	"context"

	"github.com/google/uuid"

	streamconv "github.com/reoring/streamconv"
)

// UUID returns a Codec between RFC 4122 text and uuid.UUID. Decoding accepts
// the hyphenated, braced, urn:uuid: and 32-digit forms; encoding always emits
// the hyphenated lowercase form.
func UUID() streamconv.Codec[string, uuid.UUID] { return uuidCodec{} }

type uuidCodec struct{}

func (uuidCodec) Decode(ctx context.Context, a string) (uuid.UUID, error) {
	id, err := uuid.Parse(a)
	if err != nil {
		return uuid.Nil, formatIssue("uuid", err)
	}
	return id, nil
}

func (uuidCodec) Encode(ctx context.Context, b uuid.UUID) (string, error) {
	return b.String(), nil
}
