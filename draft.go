package jsonschema

import "strings"

// Draft identifies which JSON Schema specification version governs keyword
// semantics for a schema node.
type Draft int

const (
	Draft6 Draft = iota
	Draft7
	Draft201909
	Draft202012
)

// String returns a human-readable label for the draft, used in diagnostics.
func (d Draft) String() string {
	switch d {
	case Draft6:
		return "draft-06"
	case Draft7:
		return "draft-07"
	case Draft201909:
		return "2019-09"
	case Draft202012:
		return "2020-12"
	default:
		return "unknown"
	}
}

// SupportsRecursiveRef reports whether $recursiveRef/$recursiveAnchor apply under this draft.
func (d Draft) SupportsRecursiveRef() bool {
	return d == Draft201909
}

// SupportsDynamicRef reports whether $dynamicRef/$dynamicAnchor apply under this draft.
func (d Draft) SupportsDynamicRef() bool {
	return d == Draft202012
}

// SupportsLegacyID reports whether the bare "id" keyword is honored as an $id alias.
func (d Draft) SupportsLegacyID() bool {
	return d == Draft6 || d == Draft7
}

// detectDraft maps a $schema URI to a Draft, falling back when the URI is absent or unrecognized.
func detectDraft(schemaURI string, fallback Draft) Draft {
	if schemaURI == "" {
		return fallback
	}

	switch {
	case strings.Contains(schemaURI, "draft/2020-12"):
		return Draft202012
	case strings.Contains(schemaURI, "draft/2019-09"):
		return Draft201909
	case strings.Contains(schemaURI, "draft-07"):
		return Draft7
	case strings.Contains(schemaURI, "draft-06"):
		return Draft6
	default:
		return fallback
	}
}
