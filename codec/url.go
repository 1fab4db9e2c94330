package codec

import (
	"context"
	"errors"
	"net/url"
	"strings"

	streamconv "github.com/reoring/streamconv"
)

var (
	errRelativeURL = errors.New("relative URL without scheme")
	errEmptyHost   = errors.New("empty host")
)

// Schemes whose URLs always carry a host. file URLs may omit it.
var hostSchemes = map[string]bool{
	"http": true, "https": true, "ws": true, "wss": true, "ftp": true,
}

// URL returns a Codec between absolute URL text and *url.URL.
func URL() streamconv.Codec[string, *url.URL] { return urlCodec{} }

type urlCodec struct{}

func (urlCodec) Decode(ctx context.Context, a string) (*url.URL, error) {
	u, err := url.Parse(a)
	if err != nil {
		return nil, formatIssue("uri", err)
	}
	if !u.IsAbs() {
		return nil, formatIssue("uri", errRelativeURL)
	}
	if u.Host == "" && u.Opaque == "" && hostSchemes[strings.ToLower(u.Scheme)] {
		return nil, formatIssue("uri", errEmptyHost)
	}
	return u, nil
}

func (urlCodec) Encode(ctx context.Context, b *url.URL) (string, error) {
	if b == nil || !b.IsAbs() {
		return "", formatIssue("uri", errRelativeURL)
	}
	return b.String(), nil
}
