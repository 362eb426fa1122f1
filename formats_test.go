package jsonschema

import "testing"

func TestIsIDNHostname(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"example.com", true},
		{"münchen.de", true},
		{"xn--mnchen-3ya.de", true},
		{"-bad-.com", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsIDNHostname(c.value); got != c.want {
			t.Errorf("IsIDNHostname(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsIDNEmail(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"user@münchen.de", true},
		{"user@example.com", true},
		{"not-an-email", false},
		{"user@[192.168.1.1]", true},
		{"@example.com", false},
	}
	for _, c := range cases {
		if got := IsIDNEmail(c.value); got != c.want {
			t.Errorf("IsIDNEmail(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsIRI(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"https://münchen.de/straße", true},
		{"https://example.com/path", true},
		{"not a uri", false},
		{"/relative/path", false},
	}
	for _, c := range cases {
		if got := IsIRI(c.value); got != c.want {
			t.Errorf("IsIRI(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestIsIRIReference(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"/straße/ü", true},
		{"https://münchen.de", true},
		{"not a uri", false},
	}
	for _, c := range cases {
		if got := IsIRIReference(c.value); got != c.want {
			t.Errorf("IsIRIReference(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestFormatsRegistryHasIDNAndIRIEntries(t *testing.T) {
	for _, name := range []string{"idn-hostname", "idn-email", "iri", "iri-reference"} {
		if _, ok := Formats[name]; !ok {
			t.Errorf("Formats registry is missing %q", name)
		}
	}
}

func TestEvaluateFormatIDNHostname(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type": "string", "format": "idn-hostname"}`))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	compiler.AssertFormat = true

	if result := schema.Validate("münchen.de"); !result.IsValid() {
		t.Errorf("expected münchen.de to be a valid idn-hostname, errors: %v", result.Errors)
	}
	if result := schema.Validate("-bad-.com"); result.IsValid() {
		t.Errorf("expected -bad-.com to be rejected as idn-hostname")
	}
}
