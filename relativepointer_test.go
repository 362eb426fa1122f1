package jsonschema

import "testing"

func TestParseRelativeJSONPointer(t *testing.T) {
	cases := []struct {
		in         string
		ancestors  int
		indexOrKey bool
		remainder  string
		wantErr    bool
	}{
		{in: "0", ancestors: 0},
		{in: "1/foo", ancestors: 1, remainder: "/foo"},
		{in: "2/0/bar", ancestors: 2, remainder: "/0/bar"},
		{in: "0#", ancestors: 0, indexOrKey: true},
		{in: "1#", ancestors: 1, indexOrKey: true},
		{in: "", wantErr: true},
		{in: "#", wantErr: true},
		{in: "01", wantErr: true},
		{in: "1foo", wantErr: true},
	}

	for _, tc := range cases {
		parsed, err := ParseRelativeJSONPointer(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRelativeJSONPointer(%q) expected error, got %+v", tc.in, parsed)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRelativeJSONPointer(%q) unexpected error: %v", tc.in, err)
		}
		if parsed.Ancestors != tc.ancestors || parsed.IndexOrKey != tc.indexOrKey || parsed.Remainder != tc.remainder {
			t.Errorf("ParseRelativeJSONPointer(%q) = %+v, want ancestors=%d indexOrKey=%v remainder=%q",
				tc.in, parsed, tc.ancestors, tc.indexOrKey, tc.remainder)
		}
	}
}

func TestEvaluateRelativeJSONPointer(t *testing.T) {
	document := map[string]interface{}{
		"foo": []interface{}{"bar", "baz"},
		"highly": map[string]interface{}{
			"nested": map[string]interface{}{
				"objects": true,
			},
		},
	}

	// Current position: /foo/1 ("baz").
	currentTokens := []string{"foo", "1"}

	value, err := EvaluateRelativeJSONPointer(document, currentTokens, "0")
	if err != nil {
		t.Fatalf("EvaluateRelativeJSONPointer(0) error: %v", err)
	}
	if value != "baz" {
		t.Errorf("EvaluateRelativeJSONPointer(0) = %v, want baz", value)
	}

	value, err = EvaluateRelativeJSONPointer(document, currentTokens, "1/0")
	if err != nil {
		t.Fatalf("EvaluateRelativeJSONPointer(1/0) error: %v", err)
	}
	if value != "bar" {
		t.Errorf("EvaluateRelativeJSONPointer(1/0) = %v, want bar", value)
	}

	index, err := EvaluateRelativeJSONPointer(document, currentTokens, "0#")
	if err != nil {
		t.Fatalf("EvaluateRelativeJSONPointer(0#) error: %v", err)
	}
	if index != 1 {
		t.Errorf("EvaluateRelativeJSONPointer(0#) = %v, want 1", index)
	}

	key, err := EvaluateRelativeJSONPointer(document, currentTokens, "1#")
	if err != nil {
		t.Fatalf("EvaluateRelativeJSONPointer(1#) error: %v", err)
	}
	if key != "foo" {
		t.Errorf("EvaluateRelativeJSONPointer(1#) = %v, want foo", key)
	}

	// Current position: /highly/nested/objects.
	deepTokens := []string{"highly", "nested", "objects"}
	value, err = EvaluateRelativeJSONPointer(document, deepTokens, "2/nested/objects")
	if err != nil {
		t.Fatalf("EvaluateRelativeJSONPointer(2/nested/objects) error: %v", err)
	}
	if value != true {
		t.Errorf("EvaluateRelativeJSONPointer(2/nested/objects) = %v, want true", value)
	}

	if _, err := EvaluateRelativeJSONPointer(document, currentTokens, "5"); err == nil {
		t.Error("expected error for ancestor count exceeding current depth")
	}

	if _, err := EvaluateRelativeJSONPointer(document, currentTokens, "0/missing"); err == nil {
		t.Error("expected error for remainder path not present in document")
	}
}
