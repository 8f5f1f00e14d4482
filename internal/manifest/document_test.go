package manifest

import (
	"strings"
	"testing"
)

func TestParseRejectsNonObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `[1, 2]`},
		{"string", `"package"`},
		{"truncated", `{"name": "x"`},
		{"trailing data", `{"name": "x"} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestEncodePreservesKeyOrder(t *testing.T) {
	input := `{"zeta": 1, "alpha": {"b": 2, "a": 1}, "mid": [1, 2]}`
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	want := `{
  "zeta": 1,
  "alpha": {
    "b": 2,
    "a": 1
  },
  "mid": [
    1,
    2
  ]
}
`
	if string(out) != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", out, want)
	}
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	doc, err := Parse([]byte(`{"author": "ops <ops@example.com>", "a&b": "x"}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !strings.Contains(string(out), `"ops <ops@example.com>"`) {
		t.Errorf("value was escaped: %s", out)
	}
	if !strings.Contains(string(out), `"a&b"`) {
		t.Errorf("key was escaped: %s", out)
	}
}

func TestEncodeEmptyObject(t *testing.T) {
	doc, err := Parse([]byte(`{ }`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if string(out) != "{}\n" {
		t.Errorf("Encode() = %q, want %q", out, "{}\n")
	}
}

func TestDuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "{\n  \"a\": 3,\n  \"b\": 2\n}\n"
	if string(out) != want {
		t.Errorf("Encode() = %q, want %q", out, want)
	}
}

func TestDependency(t *testing.T) {
	doc, err := Parse([]byte(`{"dependencies": {"sails": "~0.10.5"}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	version, ok, err := doc.Dependency("sails")
	if err != nil {
		t.Fatalf("Dependency error: %v", err)
	}
	if !ok || version != "~0.10.5" {
		t.Errorf("Dependency(sails) = %q, %v; want %q, true", version, ok, "~0.10.5")
	}

	_, ok, err = doc.Dependency("passport")
	if err != nil {
		t.Fatalf("Dependency error: %v", err)
	}
	if ok {
		t.Error("Dependency(passport) should be absent")
	}
}
