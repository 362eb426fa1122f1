package jsonschema

import "time"

// formatCheckTimeout bounds how long a single format predicate may run before
// it is treated as "not matching" rather than left to hang or propagate an error.
const formatCheckTimeout = 100 * time.Millisecond

// runFormatCheck invokes a format predicate with a bounded time budget. A
// predicate that exceeds the budget or panics is treated as "not matching"
// rather than hanging the validation call or crashing it.
func runFormatCheck(validator func(interface{}) bool, value interface{}) (matched bool, timedOut bool) {
	done := make(chan bool, 1)
	go func() {
		defer func() {
			if recover() != nil {
				done <- false
			}
		}()
		done <- validator(value)
	}()

	select {
	case result := <-done:
		return result, false
	case <-time.After(formatCheckTimeout):
		return false, true
	}
}

// EvaluateFormat checks if the data conforms to the format specified in the schema.
// According to the JSON Schema Draft 2020-12:
//   - The "format" keyword defines the data format expected for a value.
//   - The format must be a string that names a specific format which the value should conform to.
//   - The function uses custom formats first, then falls back to the global `Formats` map.
//   - If the format is not supported or not found, it may fall back to a no-op validation depending on configuration.
//
// This method ensures that data matches the expected format as specified in the schema.
// It handles formats as annotations by default, but can assert format validation if configured.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-format
func evaluateFormat(schema *Schema, value interface{}) *EvaluationError {
	if schema.Format == nil {
		return nil
	}

	formatName := *schema.Format
	var formatDef *FormatDef
	var customValidator func(interface{}) bool

	// 1. Check compiler-specific custom formats first
	if schema.compiler != nil {
		schema.compiler.customFormatsRW.RLock()
		formatDef = schema.compiler.customFormats[formatName]
		schema.compiler.customFormatsRW.RUnlock()
	}

	if formatDef != nil {
		// Found in custom formats
		if formatDef.Type != "" {
			valueType := getDataType(value)
			if !matchesType(valueType, formatDef.Type) {
				return nil // Type doesn't match, so skip validation
			}
		}
		customValidator = formatDef.Validate
	} else if globalValidator, ok := Formats[formatName]; ok {
		// Fallback to global formats
		customValidator = globalValidator
	}

	assertFormat := false
	strictFormat := false
	if schema.compiler != nil {
		assertFormat = schema.compiler.AssertFormat || schema.compiler.Options.RequireFormatValidation
		strictFormat = schema.compiler.Options.StrictFormat
	}

	// If a validator was found (either custom or global)
	if customValidator != nil {
		matched, timedOut := runFormatCheck(customValidator, value)
		if !matched && assertFormat {
			if timedOut {
				return NewEvaluationError("format", "format_timeout", "Format '{format}' validation timed out and was treated as not matching", map[string]interface{}{"format": formatName})
			}
			return NewEvaluationError("format", "format_mismatch", "Value does not match format '{format}'", map[string]interface{}{"format": formatName})
		}
		return nil // Validation passed or not asserted
	}

	// If no validator was found and format evaluation is strict, fail
	// regardless of whether format is otherwise being asserted.
	if strictFormat {
		return NewEvaluationError("format", "unknown_format", "Unknown format '{format}'", map[string]interface{}{"format": formatName})
	}

	return nil // Default behavior: ignore unknown formats
}

// matchesType checks if a value type matches the required type
func matchesType(valueType, requiredType string) bool {
	if requiredType == "" {
		return true // No type restriction
	}

	// Special handling: integer is also considered number
	if requiredType == "number" && valueType == "integer" {
		return true
	}

	return valueType == requiredType
}
