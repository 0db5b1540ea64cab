package polonio

import "testing"

// TestBuiltinJSONEncodePreservesInsertionOrder checks that json_encode
// writes an object's fields in insertion order and does not re-sort them
// the way encoding/json's map[string]any would. It exercises the encoder
// only; the Decoder Token()/More() assumption DESIGN.md flags for
// oarkflow/json is exercised by the json_decode tests below.
func TestBuiltinJSONEncodePreservesInsertionOrder(t *testing.T) {
	out, err := runSource(t, `
var o = {"b": 2, "a": 1, "c": 3}
echo json_encode(o)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"b":2,"a":1,"c":3}`
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestBuiltinJSONEncodeArrayAndScalars(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want string
	}{
		{"null", "null", "null"},
		{"bool", "true", "true"},
		{"number", "42", "42"},
		{"string", `"hi"`, `"hi"`},
		{"array", `[1, "x", false]`, `[1,"x",false]`},
	}
	for _, c := range cases {
		out, err := runSource(t, "echo json_encode("+c.expr+")")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if out != c.want {
			t.Errorf("%s: got %q, want %q", c.name, out, c.want)
		}
	}
}

// TestBuiltinJSONDecodeRoundTripsOrderSensitiveKeys exercises the
// string->value direction with keys deliberately out of lexicographic
// order, so a decoder that silently sorted (or used an unordered map)
// would be caught by the json_encode(decoded) comparison below.
func TestBuiltinJSONDecodeRoundTripsOrderSensitiveKeys(t *testing.T) {
	out, err := runSource(t, `
var decoded = json_decode("{\"z\": 1, \"y\": [2, 3], \"x\": {\"w\": 4}}")
echo decoded["z"]
echo decoded["y"][1]
echo decoded["x"]["w"]
echo json_encode(decoded)
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `1` + `3` + `4` + `{"z":1,"y":[2,3],"x":{"w":4}}`
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestBuiltinJSONEncodeDecodeRoundTrip(t *testing.T) {
	out, err := runSource(t, `
var original = {"third": 3, "first": 1, "second": 2}
var text = json_encode(original)
var decoded = json_decode(text)
echo decoded["first"] + decoded["second"] + decoded["third"]
echo json_encode(decoded) == text
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "6true" {
		t.Fatalf("got %q, want %q", out, "6true")
	}
}

func TestBuiltinJSONDecodeRejectsMalformedInput(t *testing.T) {
	_, err := runSource(t, `echo json_decode("not json")`)
	if err == nil {
		t.Fatal("expected an error for malformed JSON input")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != RuntimeError {
		t.Fatalf("got %v, want a RuntimeError", err)
	}
}
