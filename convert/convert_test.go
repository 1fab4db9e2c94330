package convert_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	streamconv "github.com/reoring/streamconv"
	"github.com/reoring/streamconv/convert"
	"github.com/reoring/streamconv/format"
	"github.com/reoring/streamconv/model"
)

const fixturePath = "../testdata/request.json"

func readFixture(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	return string(b)
}

func decode(t *testing.T, opt streamconv.ParseOpt, doc string) (*model.Request, error) {
	t.Helper()
	dec, err := convert.NewDecoder(opt)
	require.NoError(t, err)
	return dec.Decode(context.Background(), []byte(doc))
}

func TestDecode_ConcreteScenario(t *testing.T) {
	req, err := decode(t, streamconv.DefaultParseOpt(), readFixture(t))
	require.NoError(t, err)

	assert.Equal(t, model.RequestSuccess, req.Type)
	assert.Equal(t, uint32(1), req.Stream.PublicTariff.ID)
	assert.Equal(t, uint32(250), req.Stream.PrivateTariff.ClientPrice)
	require.Len(t, req.Gifts, 2)
	assert.Equal(t, "Gift 1", req.Gifts[0].Description)
	assert.Equal(t, "Gift 2", req.Gifts[1].Description)
	assert.Equal(t, "234ms", req.Debug.Duration.String())
	assert.Equal(t, "2023-06-12T12:00:00Z", req.Debug.At.String())

	out, err := format.JSON().Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"type": "success"`)
	assert.Contains(t, string(out), `"Gift 1"`)
	assert.Contains(t, string(out), `"client_price": 250`)
}

func TestDecode_Rejections(t *testing.T) {
	base := readFixture(t)
	cases := []struct {
		name string
		old  string
		new  string
		path string
		code string
	}{
		{"unknown type", `"type": "success"`, `"type": "failure"`, "/type", streamconv.CodeInvalidEnum},
		{"type case", `"type": "success"`, `"type": "Success"`, "/type", streamconv.CodeInvalidEnum},
		{"bad uuid", `"8d3b2c1e-4f5a-4b6c-9d7e-1f2a3b4c5d6e"`, `"not-a-uuid"`, "/stream/user_id", streamconv.CodeInvalidFormat},
		{"bad url", `"https://n3.example.com/sv3"`, `"not a url"`, "/stream/shard_url", streamconv.CodeInvalidFormat},
		{"url without host", `"https://n3.example.com/sv3"`, `"http://"`, "/stream/shard_url", streamconv.CodeInvalidFormat},
		{"bad duration", `"234ms"`, `"234"`, "/debug/duration", streamconv.CodeInvalidFormat},
		{"bad timestamp", `"2023-06-12T12:00:00Z"`, `"2023-06-12"`, "/debug/at", streamconv.CodeInvalidFormat},
		{"wrong type", `"client_price": 250`, `"client_price": "250"`, "/stream/private_tariff/client_price", streamconv.CodeInvalidType},
		{"overflow", `"settings": 45345`, `"settings": 4294967296`, "/stream/settings", streamconv.CodeTooBig},
		{"negative", `"price": 100`, `"price": -1`, "/stream/public_tariff/price", streamconv.CodeTooSmall},
		{"missing", `"is_private": false,`, ``, "/stream/is_private", streamconv.CodeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := strings.Replace(base, tc.old, tc.new, 1)
			require.NotEqual(t, base, doc)

			_, err := decode(t, streamconv.DefaultParseOpt(), doc)
			require.Error(t, err)
			assert.Equal(t, streamconv.KindSchema, streamconv.KindOf(err))

			iss, ok := streamconv.AsIssues(err)
			require.True(t, ok)
			require.NotEmpty(t, iss)
			assert.Equal(t, tc.path, iss[0].Path)
			assert.Equal(t, tc.code, iss[0].Code)
		})
	}
}

func TestDecode_SyntaxErrors(t *testing.T) {
	base := readFixture(t)
	for name, doc := range map[string]string{
		"truncated": base[:len(base)/2],
		"garbage":   "<request/>",
		"duplicate": strings.Replace(base, `"type": "success",`, `"type": "success", "type": "success",`, 1),
		"not utf8":  strings.Replace(base, "Gift 1", "Gift \xff", 1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decode(t, streamconv.DefaultParseOpt(), doc)
			require.Error(t, err)
			assert.Equal(t, streamconv.KindSyntax, streamconv.KindOf(err))
		})
	}
}

func TestDecode_UnknownKeys(t *testing.T) {
	doc := strings.Replace(readFixture(t), `"is_private": false,`, `"is_private": false, "region": "eu",`, 1)

	req, err := decode(t, streamconv.DefaultParseOpt(), doc)
	require.NoError(t, err)
	assert.False(t, req.Stream.IsPrivate)

	opt := streamconv.DefaultParseOpt()
	opt.Unknown = streamconv.UnknownStrict
	_, err = decode(t, opt, doc)
	iss, ok := streamconv.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, "/stream/region", iss[0].Path)
	assert.Equal(t, streamconv.CodeUnknownKey, iss[0].Code)
}

func TestDecode_YearOneTimestamp(t *testing.T) {
	doc := strings.Replace(readFixture(t), `"2023-06-12T12:00:00Z"`, `"0001-01-01T00:00:00Z"`, 1)

	req, err := decode(t, streamconv.DefaultParseOpt(), doc)
	require.NoError(t, err)
	assert.True(t, req.Debug.At.IsZero())
	assert.Equal(t, "0001-01-01T00:00:00Z", req.Debug.At.String())

	var out bytes.Buffer
	require.NoError(t, convert.Default().Convert(req, &out))
	assert.Contains(t, out.String(), `at = "0001-01-01T00:00:00Z"`)
}

func TestDecode_SpacedDurations(t *testing.T) {
	doc := strings.Replace(readFixture(t), `"duration": "1h"`, `"duration": "1 h"`, 1)
	doc = strings.Replace(doc, `"234ms"`, `"234 ms"`, 1)

	req, err := decode(t, streamconv.DefaultParseOpt(), doc)
	require.NoError(t, err)
	assert.Equal(t, "1h", req.Stream.PublicTariff.Duration.String())
	assert.Equal(t, "234ms", req.Debug.Duration.String())
}

func TestDecode_TypeRegisteredAfterNewDecoder(t *testing.T) {
	dec, err := convert.NewDecoder(streamconv.DefaultParseOpt())
	require.NoError(t, err)

	model.RegisterRequestType("refund")
	doc := strings.Replace(readFixture(t), `"type": "success"`, `"type": "refund"`, 1)

	req, err := dec.Decode(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, model.RequestType("refund"), req.Type)
}

func TestDecode_IntegralFloatIsTypeError(t *testing.T) {
	doc := strings.Replace(readFixture(t), `"price": 100`, `"price": 100.0`, 1)
	_, err := decode(t, streamconv.DefaultParseOpt(), doc)
	require.Error(t, err)
	assert.Equal(t, streamconv.KindSchema, streamconv.KindOf(err))
}

func TestDecode_EmptyGifts(t *testing.T) {
	doc := readFixture(t)
	start := strings.Index(doc, `"gifts": [`)
	end := strings.Index(doc, `"debug"`)
	doc = doc[:start] + `"gifts": [],` + "\n  " + doc[end:]

	req, err := decode(t, streamconv.DefaultParseOpt(), doc)
	require.NoError(t, err)
	assert.Empty(t, req.Gifts)
}

func TestDecodeFile_Missing(t *testing.T) {
	dec, err := convert.NewDecoder(streamconv.DefaultParseOpt())
	require.NoError(t, err)

	_, err = dec.DecodeFile(context.Background(), filepath.Join(t.TempDir(), "request.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, streamconv.ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, streamconv.KindIO, streamconv.KindOf(err))
}

func TestDecodeReader(t *testing.T) {
	dec, err := convert.NewDecoder(streamconv.DefaultParseOpt())
	require.NoError(t, err)

	req, err := dec.DecodeReader(context.Background(), strings.NewReader(readFixture(t)))
	require.NoError(t, err)
	assert.Len(t, req.Gifts, 2)
}

func TestRun_WritesYAMLThenTOML(t *testing.T) {
	var out bytes.Buffer
	req, err := convert.Run(context.Background(), fixturePath, &out, streamconv.DefaultParseOpt())
	require.NoError(t, err)

	y, err := format.YAML().Marshal(req)
	require.NoError(t, err)
	tm, err := format.TOML().Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, string(y)+string(tm), out.String())

	s := out.String()
	assert.Less(t, strings.Index(s, "type: success"), strings.Index(s, `type = "success"`))
}

func TestRun_NoPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	doc := strings.Replace(readFixture(t), `"type": "success"`, `"type": "failure"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	_, err := convert.Run(context.Background(), path, &out, streamconv.DefaultParseOpt())
	require.Error(t, err)
	assert.Zero(t, out.Len())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestConvert_WriteError(t *testing.T) {
	req, err := decode(t, streamconv.DefaultParseOpt(), readFixture(t))
	require.NoError(t, err)

	err = convert.Default().Convert(req, failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestConverter_EncodeErrorWritesNothing(t *testing.T) {
	req, err := decode(t, streamconv.DefaultParseOpt(), readFixture(t))
	require.NoError(t, err)
	req.Type = "failure"

	var out bytes.Buffer
	err = convert.NewConverter(format.YAML(), format.TOML()).Convert(req, &out)
	require.Error(t, err)
	assert.Equal(t, streamconv.KindEncode, streamconv.KindOf(err))
	assert.Zero(t, out.Len())
}
