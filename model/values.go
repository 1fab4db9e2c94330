package model

import (
	"context"
	"net/url"
	"time"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/codec"
)

var (
	durationCodec  = codec.Duration()
	urlCodec       = codec.URL()
	timestampCodec = codec.TimeRFC3339()
)

// Duration is an elapsed time written in human-readable form ("1h 30m").
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return codec.FormatDuration(time.Duration(d)) }

func (d Duration) MarshalText() ([]byte, error) {
	s, err := streamconv.Encode(context.Background(), durationCodec, time.Duration(d))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := streamconv.Decode(context.Background(), durationCodec, string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// URL is an absolute URL. The zero value has no URL and fails to marshal.
type URL struct {
	u *url.URL
}

// MustParseURL parses s or panics; intended for fixtures and tests.
func MustParseURL(s string) URL {
	var u URL
	if err := u.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return u
}

// URL returns a copy of the parsed URL, or nil for the zero value.
func (u URL) URL() *url.URL {
	if u.u == nil {
		return nil
	}
	c := *u.u
	return &c
}

func (u URL) IsZero() bool { return u.u == nil }

func (u URL) String() string {
	if u.u == nil {
		return ""
	}
	return u.u.String()
}

func (u URL) MarshalText() ([]byte, error) {
	s, err := urlCodec.Encode(context.Background(), u.u)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (u *URL) UnmarshalText(b []byte) error {
	v, err := urlCodec.Decode(context.Background(), string(b))
	if err != nil {
		return err
	}
	u.u = v
	return nil
}

// Timestamp is an instant encoded as RFC 3339 text and held in UTC.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns t as a Timestamp, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{t: t.UTC()} }

func (ts Timestamp) Time() time.Time { return ts.t }

func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

func (ts Timestamp) Equal(o Timestamp) bool { return ts.t.Equal(o.t) }

func (ts Timestamp) String() string {
	s, _ := timestampCodec.Encode(context.Background(), ts.t)
	return s
}

func (ts Timestamp) MarshalText() ([]byte, error) {
	s, err := timestampCodec.Encode(context.Background(), ts.t)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (ts *Timestamp) UnmarshalText(b []byte) error {
	v, err := timestampCodec.Decode(context.Background(), string(b))
	if err != nil {
		return err
	}
	ts.t = v
	return nil
}
