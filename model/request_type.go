package model

import (
	"context"
	"slices"
	"sync"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/codec"
)

// RequestType is the "type" tag of a Request. It is an open, string-keyed
// enumeration: new variants are added with RegisterRequestType and keep the
// same wire convention.
type RequestType string

const RequestSuccess RequestType = "success"

var (
	requestTypesMu sync.RWMutex
	requestTypes   = []RequestType{RequestSuccess}
	requestCodec   = codec.Enum(requestTypes...)
	requestTypeGen uint64
)

// RegisterRequestType adds a recognized tag. Registering an existing tag is a
// no-op. Schemas built by RequestSchema embed the tags known at build time;
// RequestTypesGeneration tells holders of a compiled schema when to rebuild.
func RegisterRequestType(t RequestType) {
	requestTypesMu.Lock()
	defer requestTypesMu.Unlock()
	if slices.Contains(requestTypes, t) {
		return
	}
	requestTypes = append(requestTypes, t)
	requestCodec = codec.Enum(requestTypes...)
	requestTypeGen++
}

// RequestTypesGeneration changes every time a new tag is registered.
func RequestTypesGeneration() uint64 {
	requestTypesMu.RLock()
	defer requestTypesMu.RUnlock()
	return requestTypeGen
}

// RequestTypes lists the recognized tags in registration order.
func RequestTypes() []RequestType {
	requestTypesMu.RLock()
	defer requestTypesMu.RUnlock()
	return slices.Clone(requestTypes)
}

func currentRequestCodec() streamconv.Codec[string, RequestType] {
	requestTypesMu.RLock()
	defer requestTypesMu.RUnlock()
	return requestCodec
}

// Known reports whether t is a registered tag.
func (t RequestType) Known() bool {
	_, ok := streamconv.SafeDecode(context.Background(), currentRequestCodec(), string(t))
	return ok
}

func (t RequestType) MarshalText() ([]byte, error) {
	s, err := currentRequestCodec().Encode(context.Background(), t)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (t *RequestType) UnmarshalText(b []byte) error {
	v, err := currentRequestCodec().Decode(context.Background(), string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
