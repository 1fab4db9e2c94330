package model

import (
	"context"

	"github.com/reoring/streamconv/codec"
	"github.com/reoring/streamconv/jsonschema"
)

// FormatHumanDuration is the JSON Schema format name for Duration fields.
const FormatHumanDuration = "human-duration"

func duration() *jsonschema.Schema { return jsonschema.String(FormatHumanDuration) }

// RequestSchema describes the Request document. With strict set, unknown
// keys are rejected at every level.
func RequestSchema(strict bool) *jsonschema.Schema {
	tags := RequestTypes()
	enum := make([]any, len(tags))
	for i, t := range tags {
		enum[i] = string(t)
	}
	publicTariff := jsonschema.Object(
		jsonschema.Prop("id", jsonschema.Uint32()),
		jsonschema.Prop("price", jsonschema.Uint32()),
		jsonschema.Prop("duration", duration()),
		jsonschema.Prop("description", jsonschema.String("")),
	)
	privateTariff := jsonschema.Object(
		jsonschema.Prop("client_price", jsonschema.Uint32()),
		jsonschema.Prop("duration", duration()),
		jsonschema.Prop("description", jsonschema.String("")),
	)
	stream := jsonschema.Object(
		jsonschema.Prop("user_id", jsonschema.String("uuid")),
		jsonschema.Prop("is_private", jsonschema.Bool()),
		jsonschema.Prop("settings", jsonschema.Uint32()),
		jsonschema.Prop("shard_url", jsonschema.String("uri")),
		jsonschema.Prop("public_tariff", publicTariff),
		jsonschema.Prop("private_tariff", privateTariff),
	)
	gift := jsonschema.Object(
		jsonschema.Prop("id", jsonschema.Uint32()),
		jsonschema.Prop("price", jsonschema.Uint32()),
		jsonschema.Prop("description", jsonschema.String("")),
	)
	debug := jsonschema.Object(
		jsonschema.Prop("duration", duration()),
		jsonschema.Prop("at", jsonschema.String("date-time")),
	)
	root := jsonschema.Object(
		jsonschema.Prop("type", &jsonschema.Schema{Type: "string", Enum: enum}),
		jsonschema.Prop("stream", stream),
		jsonschema.Prop("gifts", jsonschema.ArrayOf(gift)),
		jsonschema.Prop("debug", debug),
	)
	root.SchemaURI = jsonschema.Draft202012
	root.Title = "Request"
	root.Description = "Stream tariff request with gifts and debug timing"
	if strict {
		root.Strict()
	}
	return root
}

// Formats returns the format checkers backing RequestSchema, implemented by
// the same codecs the typed model uses.
func Formats() map[string]jsonschema.FormatChecker {
	ctx := context.Background()
	return map[string]jsonschema.FormatChecker{
		FormatHumanDuration: func(s string) error { _, err := codec.Duration().Decode(ctx, s); return err },
		"uuid":              func(s string) error { _, err := codec.UUID().Decode(ctx, s); return err },
		"uri":               func(s string) error { _, err := codec.URL().Decode(ctx, s); return err },
		"date-time":         func(s string) error { _, err := codec.TimeRFC3339().Decode(ctx, s); return err },
	}
}

// CompileRequestSchema compiles RequestSchema with Formats.
func CompileRequestSchema(strict bool) (*jsonschema.Validator, error) {
	return jsonschema.Compile(RequestSchema(strict), Formats())
}
