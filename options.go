package jsonschema

// OutputFormat selects the shape of a validation result tree produced by
// EvaluationResult's ToXxx projection methods.
type OutputFormat int

const (
	OutputFlag OutputFormat = iota
	OutputBasic
	OutputDetailed
	OutputVerbose
)

// Options consolidates the compiler-wide knobs that shape draft selection,
// output format, format assertion strictness, and reference-resolution budgets.
type Options struct {
	// DefaultDraft is used when a schema document has no $schema and no parent
	// to inherit a draft from.
	DefaultDraft Draft

	// OutputFormat controls the shape returned by Schema.ValidateOutput.
	OutputFormat OutputFormat

	// StrictFormat, when true, treats an unregistered format name as a
	// FormatUnknown evaluation error instead of silently skipping it.
	StrictFormat bool

	// StrictTypes, when true, applies plain JSON-Schema type checking. When
	// false, a numeric string also matches "number" (and "integer" when it has
	// no fractional part); no other coercion is made.
	StrictTypes bool

	// RequireFormatValidation, when true, asserts "format" as a hard failure
	// even under drafts where format is annotation-only by default.
	RequireFormatValidation bool

	// MaxReferenceDepth bounds $ref/$dynamicRef/$recursiveRef hop count per
	// validation call. Zero means unbounded.
	MaxReferenceDepth int

	// FetchHook, when set, is consulted before the compiler's scheme-keyed
	// Loaders map when a schema URI is not already registered.
	FetchHook func(uri string) ([]byte, error)
}

// DefaultOptions returns the zero-value-safe baseline: Draft 2020-12, flag
// output, lenient formats, and no reference-depth budget.
func DefaultOptions() Options {
	return Options{
		DefaultDraft: Draft202012,
		OutputFormat: OutputFlag,
	}
}

// WithOptions replaces the compiler's options wholesale.
func (c *Compiler) WithOptions(opts Options) *Compiler {
	c.Options = opts
	return c
}

// WithDefaultDraft sets the draft used when a schema declares no $schema.
func (c *Compiler) WithDefaultDraft(draft Draft) *Compiler {
	c.Options.DefaultDraft = draft
	return c
}

// WithOutputFormat sets the output shape that Schema.ValidateOutput renders.
func (c *Compiler) WithOutputFormat(format OutputFormat) *Compiler {
	c.Options.OutputFormat = format
	return c
}

// WithStrictFormat toggles FormatUnknown errors for unregistered format names.
func (c *Compiler) WithStrictFormat(strict bool) *Compiler {
	c.Options.StrictFormat = strict
	return c
}

// WithStrictTypes toggles rejection of type coercions like numeric strings
// that lenient validation otherwise tolerates.
func (c *Compiler) WithStrictTypes(strict bool) *Compiler {
	c.Options.StrictTypes = strict
	return c
}

// WithRequireFormatValidation forces "format" to assert even under drafts where it is annotation-only.
func (c *Compiler) WithRequireFormatValidation(require bool) *Compiler {
	c.Options.RequireFormatValidation = require
	return c
}

// WithMaxReferenceDepth bounds reference-resolution hops per validation call.
func (c *Compiler) WithMaxReferenceDepth(depth int) *Compiler {
	c.Options.MaxReferenceDepth = depth
	return c
}

// WithFetchHook installs a synchronous uri->bytes resolver consulted ahead of registered Loaders.
func (c *Compiler) WithFetchHook(hook func(uri string) ([]byte, error)) *Compiler {
	c.Options.FetchHook = hook
	return c
}
