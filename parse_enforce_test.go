package streamconv_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	streamconv "github.com/reoring/streamconv"
)

func TestParseTree_DuplicateKey_Error(t *testing.T) {
	opt := streamconv.ParseOpt{Strictness: streamconv.Strictness{OnDuplicateKey: streamconv.Error}}
	_, err := streamconv.ParseTreeBytes(context.Background(), []byte(`{"a":1,"a":2}`), opt)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	iss, ok := streamconv.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues error, got: %v", err)
	}
	if iss[0].Code != streamconv.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key issue, got: %v", iss)
	}
	if iss[0].Path != "/a" {
		t.Fatalf("expected path=/a, got: %s", iss[0].Path)
	}
	if iss[0].Params["key"] != "a" {
		t.Fatalf("expected key param, got: %v", iss[0].Params)
	}
}

func TestParseTree_DuplicateKey_NestedPath(t *testing.T) {
	opt := streamconv.ParseOpt{Strictness: streamconv.Strictness{OnDuplicateKey: streamconv.Error}}
	_, err := streamconv.ParseTreeBytes(context.Background(), []byte(`[{"a":1,"a":2}]`), opt)
	iss, ok := streamconv.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Path != "/0/a" {
		t.Fatalf("expected path=/0/a, got: %s", iss[0].Path)
	}
}

func TestParseTree_DuplicateKey_WarnKeepsLast(t *testing.T) {
	var warned []streamconv.Issue
	opt := streamconv.ParseOpt{
		Strictness: streamconv.Strictness{OnDuplicateKey: streamconv.Warn},
		OnWarning:  func(it streamconv.Issue) { warned = append(warned, it) },
	}
	v, err := streamconv.ParseTreeBytes(context.Background(), []byte(`{"gifts":[{"id":1,"id":2}]}`), opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warned) != 1 || warned[0].Path != "/gifts/0/id" {
		t.Fatalf("expected one warning at /gifts/0/id, got: %v", warned)
	}
	gift := v.(map[string]any)["gifts"].([]any)[0].(map[string]any)
	if gift["id"] != json.Number("2") {
		t.Fatalf("expected last value to win, got: %v", gift["id"])
	}
}

func TestParseTree_MaxDepth_Exceeded(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	_, err := streamconv.ParseTreeBytes(context.Background(), []byte(`{"a":{"b":{"c":1}}}`), streamconv.ParseOpt{MaxDepth: 2})
	iss, ok := streamconv.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Path != "/a/b" || iss[0].Code != streamconv.CodeParseError {
		t.Fatalf("expected parse_error at /a/b, got: %v", iss)
	}
	if iss[0].Message != "max depth exceeded" {
		t.Fatalf("unexpected message: %q", iss[0].Message)
	}
}

func TestParseTree_MaxBytes_Exceeded(t *testing.T) {
	data := []byte(`{"description":"` + strings.Repeat("x", 64) + `"}`)
	_, err := streamconv.ParseTreeBytes(context.Background(), data, streamconv.ParseOpt{MaxBytes: 16})
	iss, ok := streamconv.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Code != streamconv.CodeTruncated || iss[0].Path != "/" {
		t.Fatalf("expected truncated at root, got: %v", iss)
	}
	if iss[0].Params["limit"] != "16" {
		t.Fatalf("expected limit param, got: %v", iss[0].Params)
	}
}

func TestParseTree_SyntaxErrors(t *testing.T) {
	cases := map[string]string{
		"garbage":   `not json`,
		"truncated": `{"type":"success"`,
		"trailing":  `{} {}`,
		"empty":     ``,
		"badutf8":   "{\"a\":\"\xff\"}",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := streamconv.ParseTreeBytes(context.Background(), []byte(in), streamconv.DefaultParseOpt())
			if err == nil {
				t.Fatalf("expected error")
			}
			if k := streamconv.KindOf(err); k != streamconv.KindSyntax {
				t.Fatalf("expected syntax kind, got %s (%v)", k, err)
			}
		})
	}
}

func TestParseTree_Shape(t *testing.T) {
	v, err := streamconv.ParseTreeBytes(context.Background(), []byte(`{"n":250,"b":true,"s":"x","z":null,"a":[]}`), streamconv.DefaultParseOpt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	if m["n"] != json.Number("250") || m["b"] != true || m["s"] != "x" || m["z"] != nil {
		t.Fatalf("unexpected tree: %#v", m)
	}
	if a, ok := m["a"].([]any); !ok || a == nil || len(a) != 0 {
		t.Fatalf("expected empty non-nil array, got: %#v", m["a"])
	}
}

func TestParseTree_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := streamconv.ParseTreeBytes(ctx, []byte(`{}`), streamconv.DefaultParseOpt())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestReadAll_WrapsErrRead(t *testing.T) {
	_, err := streamconv.ReadAll(failingReader{})
	if !errors.Is(err, streamconv.ErrRead) {
		t.Fatalf("expected ErrRead, got: %v", err)
	}
	if streamconv.KindOf(err) != streamconv.KindIO {
		t.Fatalf("expected io kind, got: %s", streamconv.KindOf(err))
	}
}
