package streamconv

import "testing"

func TestDetectJSONDuplicateKeysBytes_NoDup(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"a":1,"b":{"a":2}}`), -1)
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDetectJSONDuplicateKeysBytes_WithDup(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"a":1,"a":2,"b":{"c":1,"c":2}}`), -1)
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(iss), iss)
	}
	if iss[0].Code != CodeDuplicateKey || iss[0].Path != "/a" {
		t.Fatalf("unexpected first issue: %+v", iss[0])
	}
	if iss[1].Path != "/b/c" {
		t.Fatalf("unexpected second path: %s", iss[1].Path)
	}
}

func TestDetectJSONDuplicateKeysBytes_Limit(t *testing.T) {
	js := []byte(`{"a":1,"a":2,"a":3,"a":4}`)
	if iss := DetectJSONDuplicateKeysBytes(js, 2); len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(iss))
	}
	if iss := DetectJSONDuplicateKeysBytes(js, 0); len(iss) != 0 {
		t.Fatalf("expected reporting disabled, got %v", iss)
	}
}

func TestDetectJSONDuplicateKeysBytes_EscapedPointer(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"a/b":{"x~y":1,"x~y":2}}`), -1)
	if len(iss) != 1 || iss[0].Path != "/a~1b/x~0y" {
		t.Fatalf("expected escaped pointer, got %v", iss)
	}
}

func TestDetectJSONDuplicateKeysBytes_SyntaxError(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"a":@}`), -1)
	if len(iss) == 0 {
		t.Fatalf("expected a parse_error issue")
	}
}
