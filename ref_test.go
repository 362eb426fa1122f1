package jsonschema

import "testing"

func TestRecursiveRefResolvesToRecursiveAnchor(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2019-09/schema",
		"$recursiveAnchor": true,
		"type": "object",
		"properties": {
			"children": {
				"type": "array",
				"items": { "$recursiveRef": "#" }
			}
		}
	}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if schema.RecursiveAnchor == nil || !*schema.RecursiveAnchor {
		t.Fatal("expected root schema to carry $recursiveAnchor: true")
	}

	valid := map[string]any{
		"children": []any{
			map[string]any{"children": []any{}},
		},
	}
	if result := schema.Validate(valid); !result.IsValid() {
		t.Errorf("expected nested recursive structure to be valid, errors: %v", result.Errors)
	}

	invalid := map[string]any{
		"children": []any{
			map[string]any{"children": "not-an-array"},
		},
	}
	if result := schema.Validate(invalid); result.IsValid() {
		t.Error("expected validation to fail when a nested child violates the recursive schema")
	}
}

func TestRecursiveRefUnresolvedProducesError(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2019-09/schema",
		"properties": {
			"next": { "$recursiveRef": "#/$defs/missing" }
		}
	}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	result := schema.Validate(map[string]any{"next": map[string]any{}})
	if result.IsValid() {
		t.Error("expected validation to fail for an unresolved $recursiveRef")
	}
}

func TestMaxReferenceDepthIgnoresAcyclicNesting(t *testing.T) {
	compiler := NewCompiler().WithMaxReferenceDepth(1)
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {
			"a": {
				"type": "object",
				"properties": {
					"b": {
						"type": "object",
						"properties": {
							"c": {
								"type": "object",
								"properties": {
									"d": { "type": "string" }
								}
							}
						}
					}
				}
			}
		}
	}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	instance := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{
					"d": "leaf",
				},
			},
		},
	}

	result := schema.Validate(instance)
	if !result.IsValid() {
		t.Errorf("expected deeply nested, reference-free instance to pass with MaxReferenceDepth=1, errors: %v", result.Errors)
	}
}

func TestMaxReferenceDepthBoundsRefChain(t *testing.T) {
	chain := []byte(`{
		"$defs": {
			"a": { "$ref": "#/$defs/b" },
			"b": { "$ref": "#/$defs/c" },
			"c": { "type": "string" }
		},
		"$ref": "#/$defs/a"
	}`)

	exceeded := NewCompiler().WithMaxReferenceDepth(1)
	schema, err := exceeded.Compile(chain)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if result := schema.Validate("leaf"); result.IsValid() {
		t.Error("expected a 3-hop $ref chain to exceed MaxReferenceDepth=1")
	}

	sufficient := NewCompiler().WithMaxReferenceDepth(5)
	schema, err = sufficient.Compile(chain)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if result := schema.Validate("leaf"); !result.IsValid() {
		t.Errorf("expected the same $ref chain to pass with MaxReferenceDepth=5, errors: %v", result.Errors)
	}
}
