package jsonschema

import "testing"

func compileForOutputTest(t *testing.T) *Schema {
	t.Helper()
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return schema
}

func TestToOutputFlag(t *testing.T) {
	schema := compileForOutputTest(t)
	result := schema.Validate(map[string]any{"age": -1})

	unit, ok := result.ToOutput(OutputFlag, nil).(*Flag)
	if !ok {
		t.Fatalf("ToOutput(OutputFlag) returned %T, want *Flag", result.ToOutput(OutputFlag, nil))
	}
	if unit.Valid {
		t.Error("expected flag output to report invalid")
	}
}

func TestToOutputBasicListsFailures(t *testing.T) {
	schema := compileForOutputTest(t)
	result := schema.Validate(map[string]any{"age": -1})

	out, ok := result.ToOutput(OutputBasic, nil).(OutputUnit)
	if !ok {
		t.Fatalf("ToOutput(OutputBasic) returned %T, want OutputUnit", result.ToOutput(OutputBasic, nil))
	}
	if out.Valid {
		t.Error("expected basic output root to report invalid")
	}
	if len(out.Errors) == 0 {
		t.Error("expected basic output to list at least one failing unit")
	}
}

func TestToOutputDetailedReportsInvalidRoot(t *testing.T) {
	schema := compileForOutputTest(t)
	result := schema.Validate(map[string]any{"name": "Ada", "age": -1})

	out, ok := result.ToOutput(OutputDetailed, nil).(*OutputUnit)
	if !ok {
		t.Fatalf("ToOutput(OutputDetailed) returned %T, want *OutputUnit", result.ToOutput(OutputDetailed, nil))
	}
	if out.Valid {
		t.Error("expected detailed output root to report invalid")
	}
}

func TestToOutputVerboseReportsValidRoot(t *testing.T) {
	schema := compileForOutputTest(t)
	result := schema.Validate(map[string]any{"name": "Ada", "age": 30})

	out, ok := result.ToOutput(OutputVerbose, nil).(*OutputUnit)
	if !ok {
		t.Fatalf("ToOutput(OutputVerbose) returned %T, want *OutputUnit", result.ToOutput(OutputVerbose, nil))
	}
	if !out.Valid {
		t.Error("expected verbose output root to report valid")
	}
}

func TestValidateOutputUsesCompilerOption(t *testing.T) {
	compiler := NewCompiler()
	compiler.WithOutputFormat(OutputBasic)
	schema, err := compiler.Compile([]byte(`{"type": "string"}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	out, ok := schema.ValidateOutput(42).(OutputUnit)
	if !ok {
		t.Fatalf("ValidateOutput() returned %T, want OutputUnit", schema.ValidateOutput(42))
	}
	if out.Valid {
		t.Error("expected ValidateOutput to report invalid for a non-string instance")
	}
}
