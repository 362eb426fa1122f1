package jsonschema

import "testing"

func TestStrictFormatRejectsUnknownFormat(t *testing.T) {
	compiler := NewCompiler().WithStrictFormat(true)
	schema, err := compiler.Compile([]byte(`{"type": "string", "format": "not-a-real-format"}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	result := schema.Validate("anything")
	if result.IsValid() {
		t.Error("expected StrictFormat to reject an unregistered format name")
	}
	if err, ok := result.Errors["format"]; !ok || err.Code != "unknown_format" {
		t.Errorf("expected unknown_format error, got %+v", result.Errors)
	}
}

func TestNonStrictFormatIgnoresUnknownFormat(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type": "string", "format": "not-a-real-format"}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	result := schema.Validate("anything")
	if !result.IsValid() {
		t.Errorf("expected an unregistered format to be silently skipped by default, errors: %v", result.Errors)
	}
}

func TestFormatTimeoutTreatedAsMismatch(t *testing.T) {
	compiler := NewCompiler().WithRequireFormatValidation(true)
	compiler.RegisterFormat("slow-format", func(interface{}) bool {
		select {}
	})

	schema, err := compiler.Compile([]byte(`{"type": "string", "format": "slow-format"}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	result := schema.Validate("anything")
	if result.IsValid() {
		t.Error("expected a hanging format predicate to be treated as not matching")
	}
	if err, ok := result.Errors["format"]; !ok || err.Code != "format_timeout" {
		t.Errorf("expected format_timeout error, got %+v", result.Errors)
	}
}
