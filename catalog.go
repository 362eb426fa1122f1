package jsonschema

// keywordDescriptor documents one keyword's evaluation priority and draft
// applicability. The priority groups mirror the order evaluate() already
// applies them in: identity and reference keywords resolve first since they
// can replace the effective schema outright, type-shape applicators run
// next, and unevaluatedProperties/unevaluatedItems run last because they
// depend on annotations left behind by every other applicator.
type keywordDescriptor struct {
	Name                string
	Drafts              []Draft // nil means "every draft"
	Priority            int
	ProducesAnnotations bool
}

const (
	priorityIdentity = iota * 10
	priorityReference
	priorityApplicator
	priorityUnevaluated
)

// keywordPriority is the catalog consulted by KeywordPriority and
// PresentKeywords to order a schema's active keywords, and by
// draftKeywordWarnings to flag keywords used outside the draft that defines
// them (e.g. $recursiveRef under Draft 2020-12). The legacy `id` entry is
// never flagged, because presentKeywordNames does not list `id`.
var keywordPriority = []keywordDescriptor{
	{Name: "$id", Priority: priorityIdentity},
	{Name: "id", Drafts: []Draft{Draft6, Draft7}, Priority: priorityIdentity},
	{Name: "$schema", Priority: priorityIdentity},
	{Name: "$anchor", Priority: priorityIdentity},
	{Name: "$dynamicAnchor", Drafts: []Draft{Draft202012}, Priority: priorityIdentity},
	{Name: "$recursiveAnchor", Drafts: []Draft{Draft201909}, Priority: priorityIdentity},

	{Name: "$ref", Priority: priorityReference},
	{Name: "$dynamicRef", Drafts: []Draft{Draft202012}, Priority: priorityReference},
	{Name: "$recursiveRef", Drafts: []Draft{Draft201909}, Priority: priorityReference},

	{Name: "type", Priority: priorityApplicator},
	{Name: "enum", Priority: priorityApplicator},
	{Name: "const", Priority: priorityApplicator},
	{Name: "allOf", Priority: priorityApplicator},
	{Name: "anyOf", Priority: priorityApplicator},
	{Name: "oneOf", Priority: priorityApplicator},
	{Name: "not", Priority: priorityApplicator},
	{Name: "if", Priority: priorityApplicator},
	{Name: "properties", Priority: priorityApplicator, ProducesAnnotations: true},
	{Name: "patternProperties", Priority: priorityApplicator, ProducesAnnotations: true},
	{Name: "additionalProperties", Priority: priorityApplicator, ProducesAnnotations: true},
	{Name: "propertyNames", Priority: priorityApplicator},
	{Name: "items", Priority: priorityApplicator, ProducesAnnotations: true},
	{Name: "prefixItems", Drafts: []Draft{Draft201909, Draft202012}, Priority: priorityApplicator, ProducesAnnotations: true},
	{Name: "contains", Priority: priorityApplicator, ProducesAnnotations: true},
	{Name: "format", Priority: priorityApplicator},
	{Name: "minimum", Priority: priorityApplicator},
	{Name: "maximum", Priority: priorityApplicator},
	{Name: "exclusiveMinimum", Priority: priorityApplicator},
	{Name: "exclusiveMaximum", Priority: priorityApplicator},
	{Name: "multipleOf", Priority: priorityApplicator},
	{Name: "minLength", Priority: priorityApplicator},
	{Name: "maxLength", Priority: priorityApplicator},
	{Name: "pattern", Priority: priorityApplicator},
	{Name: "maxProperties", Priority: priorityApplicator},
	{Name: "minProperties", Priority: priorityApplicator},
	{Name: "required", Priority: priorityApplicator},
	{Name: "dependentRequired", Priority: priorityApplicator},
	{Name: "dependentSchemas", Priority: priorityApplicator},
	{Name: "maxItems", Priority: priorityApplicator},
	{Name: "minItems", Priority: priorityApplicator},
	{Name: "uniqueItems", Priority: priorityApplicator},
	{Name: "maxContains", Priority: priorityApplicator},
	{Name: "minContains", Priority: priorityApplicator},
	{Name: "contentEncoding", Priority: priorityApplicator},
	{Name: "contentMediaType", Priority: priorityApplicator},
	{Name: "contentSchema", Priority: priorityApplicator},

	{Name: "unevaluatedProperties", Drafts: []Draft{Draft201909, Draft202012}, Priority: priorityUnevaluated, ProducesAnnotations: true},
	{Name: "unevaluatedItems", Drafts: []Draft{Draft201909, Draft202012}, Priority: priorityUnevaluated, ProducesAnnotations: true},
}

// keywordDescriptorsByName indexes keywordPriority for O(1) lookup.
var keywordDescriptorsByName = func() map[string]keywordDescriptor {
	m := make(map[string]keywordDescriptor, len(keywordPriority))
	for _, d := range keywordPriority {
		m[d.Name] = d
	}
	return m
}()

// supportsDraft reports whether a descriptor applies to draft. A nil Drafts
// list means the keyword is draft-agnostic.
func (d keywordDescriptor) supportsDraft(draft Draft) bool {
	if d.Drafts == nil {
		return true
	}
	for _, supported := range d.Drafts {
		if supported == draft {
			return true
		}
	}
	return false
}

// presentKeywordNames reports which catalogued keyword names are set on s.
func presentKeywordNames(s *Schema) []string {
	var names []string
	add := func(present bool, name string) {
		if present {
			names = append(names, name)
		}
	}

	add(s.ID != "", "$id")
	add(s.Schema != "", "$schema")
	add(s.Anchor != "", "$anchor")
	add(s.DynamicAnchor != "", "$dynamicAnchor")
	add(s.RecursiveAnchor != nil, "$recursiveAnchor")
	add(s.Ref != "", "$ref")
	add(s.DynamicRef != "", "$dynamicRef")
	add(s.RecursiveRef != "", "$recursiveRef")
	add(len(s.Type) > 0, "type")
	add(s.Enum != nil, "enum")
	add(s.Const != nil, "const")
	add(len(s.AllOf) > 0, "allOf")
	add(len(s.AnyOf) > 0, "anyOf")
	add(len(s.OneOf) > 0, "oneOf")
	add(s.Not != nil, "not")
	add(s.If != nil, "if")
	add(s.Properties != nil, "properties")
	add(s.PatternProperties != nil, "patternProperties")
	add(s.AdditionalProperties != nil, "additionalProperties")
	add(s.PropertyNames != nil, "propertyNames")
	add(s.Items != nil, "items")
	add(len(s.PrefixItems) > 0, "prefixItems")
	add(s.Contains != nil, "contains")
	add(s.Format != nil, "format")
	add(s.Minimum != nil, "minimum")
	add(s.Maximum != nil, "maximum")
	add(s.ExclusiveMinimum != nil, "exclusiveMinimum")
	add(s.ExclusiveMaximum != nil, "exclusiveMaximum")
	add(s.MultipleOf != nil, "multipleOf")
	add(s.MinLength != nil, "minLength")
	add(s.MaxLength != nil, "maxLength")
	add(s.Pattern != nil, "pattern")
	add(s.MaxProperties != nil, "maxProperties")
	add(s.MinProperties != nil, "minProperties")
	add(len(s.Required) > 0, "required")
	add(len(s.DependentRequired) > 0, "dependentRequired")
	add(s.DependentSchemas != nil, "dependentSchemas")
	add(s.MaxItems != nil, "maxItems")
	add(s.MinItems != nil, "minItems")
	add(s.UniqueItems != nil, "uniqueItems")
	add(s.MaxContains != nil, "maxContains")
	add(s.MinContains != nil, "minContains")
	add(s.ContentEncoding != nil, "contentEncoding")
	add(s.ContentMediaType != nil, "contentMediaType")
	add(s.ContentSchema != nil, "contentSchema")
	add(s.UnevaluatedProperties != nil, "unevaluatedProperties")
	add(s.UnevaluatedItems != nil, "unevaluatedItems")

	return names
}

// KeywordPriority returns the catalog evaluation priority for a keyword
// name, or priorityUnevaluated+1 (sorts last) if the keyword is not
// catalogued. evaluate() consults this to order its dispatch steps instead
// of relying on Go statement order.
func KeywordPriority(name string) int {
	if d, ok := keywordDescriptorsByName[name]; ok {
		return d.Priority
	}
	return priorityUnevaluated + 1
}

// PresentKeywords returns the keywords set on s, in catalog evaluation order
// (identity and references first, applicators next, unevaluated* last).
// validate.go's evaluate() orders its steps by KeywordPriority, which reads
// the same catalog; draftKeywordWarnings walks the unsorted
// presentKeywordNames list behind this function.
func PresentKeywords(s *Schema) []string {
	names := presentKeywordNames(s)
	order := make(map[string]int, len(names))
	for _, name := range names {
		if d, ok := keywordDescriptorsByName[name]; ok {
			order[name] = d.Priority
		}
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && order[sorted[j-1]] > order[sorted[j]]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

// draftKeywordWarnings flags keywords present on s that its detected draft
// does not define, e.g. a `$recursiveRef` surviving in a document whose
// `$schema` claims Draft 2020-12. These surface as annotations rather than
// errors: most implementations tolerate the foreign keyword as an unknown,
// inert property, so rejecting the instance outright would be too strict.
func draftKeywordWarnings(s *Schema) []string {
	var warnings []string
	for _, name := range presentKeywordNames(s) {
		d, ok := keywordDescriptorsByName[name]
		if !ok || d.supportsDraft(s.Draft) {
			continue
		}
		warnings = append(warnings, name)
	}
	return warnings
}
