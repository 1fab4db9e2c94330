// Package streamconv converts a stream/tariff/gift Request document from JSON
// into YAML and TOML.
//
// The root package holds the shared vocabulary of the module:
//
// - The Issues error model (JSON Pointer path, stable code, localized message)
// - Parse options (duplicate keys, unknown keys, depth and size limits)
// - The Source interface and ParseTree, which turns JSON input into a
// JSON-compatible tree while enforcing those options
// - The Codec interface implemented by the value codecs under codec/
//
// Layout:
// - model/ declares the Request schema, convert/ runs the pipeline,
// format/ renders YAML, TOML and JSON, cmd/streamconv is the CLI.
//
// Typical usage:
//
//	dec, err := convert.NewDecoder(streamconv.DefaultParseOpt())
//	req, err := dec.Decode(ctx, data)
//	err = convert.NewConverter(format.YAML(), format.TOML()).Convert(req, os.Stdout)
package streamconv
