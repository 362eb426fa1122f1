package jsonschema

import "net/url"

// evaluateID checks that the `$id` attribute in the schema conforms to URI
// standards and JSON Schema's per-draft expectations.
//   - The document root's `$id` must be an absolute URI without a fragment;
//     it serves both as the schema's identifier and as the base URI for
//     resolving relative references within the document.
//   - A nested schema's `$id` may be a relative URI reference resolved
//     against the enclosing base URI. Under Draft 6/7, a plain-name fragment
//     on a nested `$id` is tolerated as a legacy anchor; Draft 2019-09+
//     schemas must use `$anchor` instead and a fragment is rejected.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-the-id-keyword
func evaluateID(schema *Schema) *EvaluationError {
	if schema.ID == "" {
		return nil
	}

	uri, err := url.Parse(schema.uri)
	if err != nil {
		return NewEvaluationError("$id", "id_invalid", "Invalid `$id` URI: {error}", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if schema.parent == nil {
		if !uri.IsAbs() {
			return NewEvaluationError("$id", "id_not_absolute", "`$id` must be an absolute URI without a fragment.")
		}
		if uri.Fragment != "" {
			return NewEvaluationError("$id", "id_contains_fragment", "`$id` must not contain a fragment.")
		}
		return nil
	}

	if uri.Fragment != "" && !schema.Draft.SupportsLegacyID() {
		return NewEvaluationError("$id", "id_contains_fragment", "`$id` must not contain a fragment.")
	}

	return nil
}
