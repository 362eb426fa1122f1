package jsonschema

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// RelativeJSONPointer is a decoded Relative JSON Pointer: a non-negative
// ancestor count, followed either by an ordinary JSON Pointer navigating
// down from that ancestor (Remainder), or by a trailing "#" (IndexOrKey)
// requesting the ancestor's own array index or object key within its parent.
//
// See https://tools.ietf.org/html/draft-handrews-relative-json-pointer-01
type RelativeJSONPointer struct {
	Ancestors  int
	IndexOrKey bool
	Remainder  string
}

// ParseRelativeJSONPointer decodes the ancestor-count prefix and "#"
// terminal of a relative JSON pointer string, reusing jsonpointer's token
// model for the remainder once the prefix is stripped.
func ParseRelativeJSONPointer(pointer string) (*RelativeJSONPointer, error) {
	if pointer == "" {
		return nil, ErrRelativeJSONPointerInvalid
	}

	i := 0
	for i < len(pointer) && pointer[i] >= '0' && pointer[i] <= '9' {
		i++
	}
	if i == 0 {
		return nil, ErrRelativeJSONPointerInvalid
	}
	if i > 1 && pointer[0] == '0' {
		return nil, ErrRelativeJSONPointerInvalid
	}

	ancestors, err := strconv.Atoi(pointer[:i])
	if err != nil {
		return nil, ErrRelativeJSONPointerInvalid
	}

	rest := pointer[i:]
	if rest == "#" {
		return &RelativeJSONPointer{Ancestors: ancestors, IndexOrKey: true}, nil
	}
	if rest != "" && rest[0] != '/' {
		return nil, ErrRelativeJSONPointerInvalid
	}

	return &RelativeJSONPointer{Ancestors: ancestors, Remainder: rest}, nil
}

// EvaluateRelativeJSONPointer resolves pointer against document, given the
// tokens locating the current position within it (the same token slices
// jsonpointer.Parse produces for an absolute pointer to that position). It
// walks up Ancestors levels from currentTokens, then either returns that
// ancestor's own key/index within its parent, or applies the Remainder as
// an ordinary pointer from there.
func EvaluateRelativeJSONPointer(document interface{}, currentTokens []string, pointer string) (interface{}, error) {
	parsed, err := ParseRelativeJSONPointer(pointer)
	if err != nil {
		return nil, err
	}
	if parsed.Ancestors > len(currentTokens) {
		return nil, ErrRelativeJSONPointerOutOfRange
	}
	baseTokens := currentTokens[:len(currentTokens)-parsed.Ancestors]

	if parsed.IndexOrKey {
		if len(baseTokens) == 0 {
			return nil, ErrRelativeJSONPointerOutOfRange
		}
		last := baseTokens[len(baseTokens)-1]
		if index, err := strconv.Atoi(last); err == nil {
			return index, nil
		}
		return last, nil
	}

	target, err := navigateJSONPointerTokens(document, baseTokens)
	if err != nil {
		return nil, err
	}
	if parsed.Remainder == "" {
		return target, nil
	}
	return navigateJSONPointerTokens(target, jsonpointer.Parse(parsed.Remainder))
}

// navigateJSONPointerTokens walks a decoded token path through a generic
// JSON document (nested map[string]interface{}/[]interface{} values, the
// shape produced by the package's JSON decoding).
func navigateJSONPointerTokens(value interface{}, tokens []string) (interface{}, error) {
	current := value
	for _, token := range tokens {
		switch v := current.(type) {
		case map[string]interface{}:
			next, ok := v[token]
			if !ok {
				return nil, ErrRelativeJSONPointerOutOfRange
			}
			current = next
		case []interface{}:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(v) {
				return nil, ErrRelativeJSONPointerOutOfRange
			}
			current = v[index]
		default:
			return nil, ErrRelativeJSONPointerOutOfRange
		}
	}
	return current, nil
}
