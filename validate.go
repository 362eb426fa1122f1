package jsonschema

import (
	"reflect"
	"sort"
)

// evalStep is one named, conditionally-run unit of keyword evaluation.
// keyword identifies the entry in keywordPriority consulted to place the
// step in evaluate()'s dispatch order; present reports whether the step's
// keyword(s) are set on the schema being evaluated.
type evalStep struct {
	keyword string
	present bool
	run     func()
}

// Validate checks if the given instance conforms to the schema.
func (s *Schema) Validate(instance interface{}) *EvaluationResult {
	dynamicScope := NewDynamicScope()
	result, _, _ := s.evaluate(instance, dynamicScope)

	return result
}

// referenceBudgetExceeded checks the active reference-hop count against
// Options.MaxReferenceDepth before following a $ref/$dynamicRef/$recursiveRef,
// recording a budget_exceeded error and reporting true if the budget is spent.
// A hop count is used rather than dynamicScope.Size() because Size also grows
// for ordinary, reference-free schema-tree descent (nested properties, allOf,
// items, ...), which would make the budget fire on deeply nested but acyclic
// schemas that never follow a single reference.
func referenceBudgetExceeded(s *Schema, dynamicScope *DynamicScope, result *EvaluationResult, keyword string) bool {
	maxDepth := 0
	if c := s.GetCompiler(); c != nil {
		maxDepth = c.Options.MaxReferenceDepth
	}
	if maxDepth > 0 && dynamicScope.RefHops() >= maxDepth {
		//nolint:errcheck
		result.AddError(NewEvaluationError(keyword, "budget_exceeded", "Evaluation exceeded the configured {budget} budget", map[string]interface{}{
			"budget": "maxReferenceDepth",
		}))
		return true
	}
	return false
}

func (s *Schema) evaluate(instance interface{}, dynamicScope *DynamicScope) (*EvaluationResult, map[string]bool, map[int]bool) {
	result := NewEvaluationResult(s)
	evaluatedProps := make(map[string]bool)
	evaluatedItems := make(map[int]bool)

	// Cycle guard keyed on (schema node, instance location): a $ref/$dynamicRef/
	// $recursiveRef chain that revisits the same schema against the same instance
	// value before unwinding is a cycle. Instance location is approximated by the
	// instance value's own reference identity (maps/slices decoded from distinct
	// JSON Pointer locations are always distinct Go objects), so ordinary recursive
	// schemas applied down a tree (e.g. "items":{"$ref":"#"}) keep working: each
	// level's instance is a different slice/map even though the schema repeats.
	cycleKey := dynamicScopeKey{schema: s, instance: instanceIdentity(instance)}
	if dynamicScope.Visited(cycleKey) {
		//nolint:errcheck
		result.AddError(NewEvaluationError("$ref", "reference_cycle", "Reference cycle detected while evaluating schema '{uri}' at '{location}'", map[string]interface{}{
			"uri":      s.uri,
			"location": s.GetSchemaURI(),
		}))
		return result, evaluatedProps, evaluatedItems
	}

	dynamicScope.Enter(cycleKey)
	defer dynamicScope.Exit(cycleKey)
	dynamicScope.Push(s)

	if s.Boolean != nil {
		// Check if the schema is a boolean
		if err := s.evaluateBoolean(instance, evaluatedProps, evaluatedItems); err != nil {
			//nolint:errcheck
			result.AddError(err)
		}
	} else {
		if warnings := draftKeywordWarnings(s); len(warnings) > 0 {
			result.AddAnnotation("draftKeywordWarnings", warnings)
		}

		// Compile patterns for PatternProperties if not already compiled
		if s.PatternProperties != nil {
			s.compilePatterns()
		}

		// Each step below corresponds to one or more catalogued keywords.
		// Their relative order is decided at runtime by KeywordPriority, not
		// by the order they're declared here, so reordering keywordPriority
		// reorders dispatch without touching this list.
		steps := []evalStep{
			{keyword: "$id", present: s.ID != "", run: func() {
				if err := evaluateID(s); err != nil {
					//nolint:errcheck
					result.AddError(err)
				}
			}},
			{keyword: "$ref", present: s.ResolvedRef != nil, run: func() {
				if referenceBudgetExceeded(s, dynamicScope, result, "$ref") {
					return
				}
				dynamicScope.EnterRef()
				defer dynamicScope.ExitRef()

				refResult, props, items := s.ResolvedRef.evaluate(instance, dynamicScope)

				if refResult != nil {
					//nolint:errcheck
					result.AddDetail(refResult)

					if !refResult.IsValid() {
						//nolint:errcheck
						result.AddError(
							NewEvaluationError("$ref", "ref_mismatch", "Value does not match the reference schema"),
						)
					}
				}

				mergeStringMaps(evaluatedProps, props)
				mergeIntMaps(evaluatedItems, items)
			}},
			{keyword: "$dynamicRef", present: s.ResolvedDynamicRef != nil, run: func() {
				if referenceBudgetExceeded(s, dynamicScope, result, "$dynamicRef") {
					return
				}
				dynamicScope.EnterRef()
				defer dynamicScope.ExitRef()

				anchorSchema := s.ResolvedDynamicRef
				_, anchor := splitRef(s.DynamicRef)
				if !isJSONPointer(anchor) {
					dynamicAnchor := s.ResolvedDynamicRef.DynamicAnchor
					if dynamicAnchor != "" {
						if schema := dynamicScope.LookupDynamicAnchor(dynamicAnchor); schema != nil {
							anchorSchema = schema
						}
					}
				}

				dynamicRefResult, props, items := anchorSchema.evaluate(instance, dynamicScope)
				if dynamicRefResult != nil {
					//nolint:errcheck
					result.AddDetail(dynamicRefResult)

					if !dynamicRefResult.IsValid() {
						//nolint:errcheck
						result.AddError(
							NewEvaluationError("$dynamicRef", "dynamic_ref_mismatch", "Value does not match the dynamic reference schema"),
						)
					}
				}

				mergeStringMaps(evaluatedProps, props)
				mergeIntMaps(evaluatedItems, items)
			}},
			{keyword: "$recursiveRef", present: s.RecursiveRef != "", run: func() {
				if referenceBudgetExceeded(s, dynamicScope, result, "$recursiveRef") {
					return
				}
				dynamicScope.EnterRef()
				defer dynamicScope.ExitRef()

				target := s.ResolvedRecursiveRef
				if redirect := dynamicScope.LookupRecursiveAnchor(); redirect != nil {
					target = redirect
				}

				if target != nil {
					recursiveRefResult, props, items := target.evaluate(instance, dynamicScope)
					if recursiveRefResult != nil {
						//nolint:errcheck
						result.AddDetail(recursiveRefResult)

						if !recursiveRefResult.IsValid() {
							//nolint:errcheck
							result.AddError(
								NewEvaluationError("$recursiveRef", "recursive_ref_mismatch", "Value does not match the recursive reference schema"),
							)
						}
					}

					mergeStringMaps(evaluatedProps, props)
					mergeIntMaps(evaluatedItems, items)
				} else {
					//nolint:errcheck
					result.AddError(NewEvaluationError("$recursiveRef", "reference_unresolved", "Reference '{ref}' could not be resolved", map[string]interface{}{
						"ref": s.RecursiveRef,
					}))
				}
			}},
			{keyword: "type", present: s.Type != nil, run: func() {
				if err := evaluateType(s, instance); err != nil {
					//nolint:errcheck
					result.AddError(err)
				}
			}},
			{keyword: "enum", present: s.Enum != nil, run: func() {
				if err := evaluateEnum(s, instance); err != nil {
					//nolint:errcheck
					result.AddError(err)
				}
			}},
			{keyword: "const", present: s.Const != nil, run: func() {
				if err := evaluateConst(s, instance); err != nil {
					//nolint:errcheck
					result.AddError(err)
				}
			}},
			{keyword: "allOf", present: s.AllOf != nil, run: func() {
				allOfResults, allOfError := evaluateAllOf(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, allOfResult := range allOfResults {
					//nolint:errcheck
					result.AddDetail(allOfResult)
				}
				if allOfError != nil {
					//nolint:errcheck
					result.AddError(allOfError)
				}
			}},
			{keyword: "anyOf", present: s.AnyOf != nil, run: func() {
				anyOfResults, anyOfError := evaluateAnyOf(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, anyOfResult := range anyOfResults {
					//nolint:errcheck
					result.AddDetail(anyOfResult)
				}
				if anyOfError != nil {
					//nolint:errcheck
					result.AddError(anyOfError)
				}
			}},
			{keyword: "oneOf", present: s.OneOf != nil, run: func() {
				oneOfResults, oneOfError := evaluateOneOf(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, oneOfResult := range oneOfResults {
					//nolint:errcheck
					result.AddDetail(oneOfResult)
				}
				if oneOfError != nil {
					//nolint:errcheck
					result.AddError(oneOfError)
				}
			}},
			{keyword: "not", present: s.Not != nil, run: func() {
				notResult, notError := evaluateNot(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				if notResult != nil {
					//nolint:errcheck
					result.AddDetail(notResult)
				}
				if notError != nil {
					//nolint:errcheck
					result.AddError(notError)
				}
			}},
			{keyword: "if", present: s.If != nil || s.Then != nil || s.Else != nil, run: func() {
				conditionalResults, conditionalError := evaluateConditional(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, conditionalResult := range conditionalResults {
					//nolint:errcheck
					result.AddDetail(conditionalResult)
				}
				if conditionalError != nil {
					//nolint:errcheck
					result.AddError(conditionalError)
				}
			}},
			{keyword: "items", present: len(s.PrefixItems) > 0 ||
				s.Items != nil ||
				s.Contains != nil ||
				s.MaxContains != nil ||
				s.MinContains != nil ||
				s.MaxItems != nil ||
				s.MinItems != nil ||
				s.UniqueItems != nil, run: func() {
				arrayResults, arrayErrors := evaluateArray(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, arrayResult := range arrayResults {
					//nolint:errcheck
					result.AddDetail(arrayResult)
				}
				for _, arrayError := range arrayErrors {
					//nolint:errcheck
					result.AddError(arrayError)
				}
			}},
			{keyword: "multipleOf", present: s.MultipleOf != nil || s.Maximum != nil || s.ExclusiveMaximum != nil || s.Minimum != nil || s.ExclusiveMinimum != nil, run: func() {
				numericErrors := evaluateNumeric(s, instance)
				for _, numericError := range numericErrors {
					//nolint:errcheck
					result.AddError(numericError)
				}
			}},
			{keyword: "pattern", present: s.MaxLength != nil || s.MinLength != nil || s.Pattern != nil, run: func() {
				stringErrors := evaluateString(s, instance)
				for _, stringError := range stringErrors {
					//nolint:errcheck
					result.AddError(stringError)
				}
			}},
			{keyword: "format", present: s.Format != nil, run: func() {
				formatError := evaluateFormat(s, instance)
				if formatError != nil {
					//nolint:errcheck
					result.AddError(formatError)
				}
			}},
			{keyword: "properties", present: s.Properties != nil ||
				s.PatternProperties != nil ||
				s.AdditionalProperties != nil ||
				s.PropertyNames != nil ||
				s.MaxProperties != nil ||
				s.MinProperties != nil ||
				len(s.Required) > 0 ||
				len(s.DependentRequired) > 0, run: func() {
				objectResults, objectErrors := evaluateObject(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, objectResult := range objectResults {
					//nolint:errcheck
					result.AddDetail(objectResult)
				}
				for _, objectError := range objectErrors {
					//nolint:errcheck
					result.AddError(objectError)
				}
			}},
			{keyword: "dependentSchemas", present: s.DependentSchemas != nil, run: func() {
				dependentSchemasResults, dependentSchemasError := evaluateDependentSchemas(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, dependentSchemasResult := range dependentSchemasResults {
					//nolint:errcheck
					result.AddDetail(dependentSchemasResult)
				}
				if dependentSchemasError != nil {
					//nolint:errcheck
					result.AddError(dependentSchemasError)
				}
			}},
			{keyword: "contentSchema", present: s.ContentEncoding != nil || s.ContentMediaType != nil || s.ContentSchema != nil, run: func() {
				contentResult, contentError := evaluateContent(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				if contentError != nil {
					//nolint:errcheck
					result.AddDetail(contentResult)
					//nolint:errcheck
					result.AddError(contentError)
				}
			}},
			{keyword: "unevaluatedProperties", present: s.UnevaluatedProperties != nil, run: func() {
				unevaluatedPropertiesResults, unevaluatedPropertiesError := evaluateUnevaluatedProperties(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, unevaluatedPropertiesResult := range unevaluatedPropertiesResults {
					//nolint:errcheck
					result.AddDetail(unevaluatedPropertiesResult)
				}
				if unevaluatedPropertiesError != nil {
					//nolint:errcheck
					result.AddError(unevaluatedPropertiesError)
				}
			}},
			{keyword: "unevaluatedItems", present: s.UnevaluatedItems != nil, run: func() {
				unevaluatedItemsResults, unevaluatedItemsError := evaluateUnevaluatedItems(s, instance, evaluatedProps, evaluatedItems, dynamicScope)
				for _, unevaluatedItemsResult := range unevaluatedItemsResults {
					//nolint:errcheck
					result.AddDetail(unevaluatedItemsResult)
				}
				if unevaluatedItemsError != nil {
					//nolint:errcheck
					result.AddError(unevaluatedItemsError)
				}
			}},
		}

		sort.SliceStable(steps, func(i, j int) bool {
			return KeywordPriority(steps[i].keyword) < KeywordPriority(steps[j].keyword)
		})

		for _, step := range steps {
			if step.present {
				step.run()
			}
		}
	}

	// Pop the schema from the dynamic scope
	dynamicScope.Pop()

	return result, evaluatedProps, evaluatedItems
}

func (s *Schema) evaluateBoolean(instance interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool) *EvaluationError {
	if s.Boolean == nil {
		return nil
	}

	if *s.Boolean {
		switch v := instance.(type) {
		case map[string]interface{}:
			for key := range v {
				evaluatedProps[key] = true
			}
		case []interface{}:
			for index := range v {
				evaluatedItems[index] = true
			}
		}
		return nil // No error, validation passes as the schema is true
	} else {
		return NewEvaluationError("schema", "false_schema_mismatch", "No values are allowed because the schema is set to 'false'")
	}
}

// evaluateObject groups the validation of all object-specific keywords.
func evaluateObject(schema *Schema, data interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool, dynamicScope *DynamicScope) ([]*EvaluationResult, []*EvaluationError) {
	object, ok := data.(map[string]interface{})
	if !ok {
		// If data is not an object, then skip the object-specific validations.
		return nil, nil
	}

	results := []*EvaluationResult{}
	errors := []*EvaluationError{}

	// Validation Keywords for applying subschemas to Objects
	if schema.Properties != nil {
		propertiesResults, propertiesError := evaluateProperties(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if propertiesResults != nil {
			results = append(results, propertiesResults...)
		}
		if propertiesError != nil {
			errors = append(errors, propertiesError)
		}
	}

	if schema.PatternProperties != nil {
		patternPropertiesResults, patternPropertiesError := evaluatePatternProperties(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if patternPropertiesResults != nil {
			results = append(results, patternPropertiesResults...)
		}
		if patternPropertiesError != nil {
			errors = append(errors, patternPropertiesError)
		}
	}

	if schema.AdditionalProperties != nil {
		additionalPropertiesResults, additionalPropertiesError := evaluateAdditionalProperties(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if additionalPropertiesResults != nil {
			results = append(results, additionalPropertiesResults...)
		}
		if additionalPropertiesError != nil {
			errors = append(errors, additionalPropertiesError)
		}
	}

	if schema.PropertyNames != nil {
		propertyNamesResults, propertyNamesError := evaluatePropertyNames(schema, object, evaluatedProps, evaluatedItems, dynamicScope)

		if propertyNamesResults != nil {
			results = append(results, propertyNamesResults...)
		}
		if propertyNamesError != nil {
			errors = append(errors, propertyNamesError)
		}
	}

	// Validation Keywords for Objects
	if schema.MaxProperties != nil {
		if err := evaluateMaxProperties(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.MinProperties != nil {
		if err := evaluateMinProperties(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	if len(schema.Required) > 0 {
		requiredError := evaluateRequired(schema, object)
		if requiredError != nil {
			errors = append(errors, requiredError)
		}
	}

	if len(schema.DependentRequired) > 0 {
		if err := evaluateDependentRequired(schema, object); err != nil {
			errors = append(errors, err)
		}
	}

	return results, errors
}

// validateNumeric groups the validation of all numeric-specific keywords.
func evaluateNumeric(schema *Schema, data interface{}) []*EvaluationError {
	dataType := getDataType(data)

	if dataType != "number" && dataType != "integer" {
		// If data is not a number, then skip the numeric-specific validations.
		return nil
	}

	errors := []*EvaluationError{}

	value := NewRat(data)
	if value == nil {
		// If the type conversion fails, the data might not be a number.
		errors = append(errors, NewEvaluationError("type", "invalid_numberic", "Value is {received} but should be numeric", map[string]interface{}{
			"received": dataType,
		}))

		return errors
	}

	// Validation Keywords for Numeric Instances (number and integer)
	if schema.MultipleOf != nil {
		if err := evaluateMultipleOf(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Maximum != nil {
		if err := evaluateMaximum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.ExclusiveMaximum != nil {
		if err := evaluateExclusiveMaximum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Minimum != nil {
		if err := evaluateMinimum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.ExclusiveMinimum != nil {
		if err := evaluateExclusiveMinimum(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// validateString groups the validation of all string-specific keywords.
func evaluateString(schema *Schema, data interface{}) []*EvaluationError {
	value, ok := data.(string)
	if !ok {
		// If data is not a string, then skip the string-specific validations.
		return nil
	}

	errors := []*EvaluationError{}

	// Validation Keywords for Strings
	if schema.MaxLength != nil {
		if err := evaluateMaxLength(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.MinLength != nil {
		if err := evaluateMinLength(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if schema.Pattern != nil {
		if err := evaluatePattern(schema, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// validateArray groups the validation of all array-specific keywords.
func evaluateArray(schema *Schema, data interface{}, evaluatedProps map[string]bool, evaluatedItems map[int]bool, dynamicScope *DynamicScope) ([]*EvaluationResult, []*EvaluationError) {
	items, ok := data.([]interface{})
	if !ok {
		// If data is not an array, then skip the array-specific validations.
		return nil, nil
	}

	results := []*EvaluationResult{}
	errors := []*EvaluationError{}

	// Validation keywords for applying subschemas to arrays
	if len(schema.PrefixItems) > 0 {
		prefixItemsResults, prefixItemsError := evaluatePrefixItems(schema, items, evaluatedProps, evaluatedItems, dynamicScope)

		if prefixItemsResults != nil {
			results = append(results, prefixItemsResults...)
		}
		if prefixItemsError != nil {
			errors = append(errors, prefixItemsError)
		}
	}

	if schema.Items != nil {
		itemsResults, itemsError := evaluateItems(schema, items, evaluatedProps, evaluatedItems, dynamicScope)

		if itemsResults != nil {
			results = append(results, itemsResults...)
		}
		if itemsError != nil {
			errors = append(errors, itemsError)
		}
	}

	if schema.Contains != nil || schema.MaxContains != nil && schema.MinContains != nil {
		containsResults, containsError := evaluateContains(schema, items, evaluatedProps, evaluatedItems, dynamicScope)
		if containsResults != nil {
			results = append(results, containsResults...)
		}
		if containsError != nil {
			errors = append(errors, containsError)
		}
	}

	// Validation Keywords for Arrays
	if schema.MaxItems != nil {
		maxItemsError := evaluateMaxItems(schema, items)
		if maxItemsError != nil {
			errors = append(errors, maxItemsError)
		}
	}

	if schema.MinItems != nil {
		minItemsError := evaluateMinItems(schema, items)
		if minItemsError != nil {
			errors = append(errors, minItemsError)
		}
	}

	if schema.UniqueItems != nil && *schema.UniqueItems { // Check if UniqueItems is not nil before dereferencing
		uniqueItemsError := evaluateUniqueItems(schema, items)
		if uniqueItemsError != nil {
			errors = append(errors, uniqueItemsError)
		}
	}

	return results, errors
}

// dynamicScopeKey identifies a (schema node, instance location) pair on the
// active evaluation chain, per the cycle-detection invariant.
type dynamicScopeKey struct {
	schema   *Schema
	instance uintptr
}

// instanceIdentity returns a stable identity for reference-typed JSON values
// (objects and arrays decode to distinct Go maps/slices per location), or 0 for
// scalars, which have no independent identity to key a cycle guard on.
func instanceIdentity(instance interface{}) uintptr {
	switch v := instance.(type) {
	case map[string]interface{}:
		return reflect.ValueOf(v).Pointer()
	case []interface{}:
		return reflect.ValueOf(v).Pointer()
	default:
		return 0
	}
}

// DynamicScope struct defines a stack specifically for handling Schema types
type DynamicScope struct {
	schemas  []*Schema               // Slice storing pointers to Schema
	visited  map[dynamicScopeKey]int // Reference-count of (schema, instance) pairs currently being evaluated, for cycle detection
	refHops  int                     // Number of $ref/$dynamicRef/$recursiveRef hops currently on the active evaluation chain
}

// NewDynamicScope creates and returns a new empty DynamicScope
func NewDynamicScope() *DynamicScope {
	return &DynamicScope{schemas: make([]*Schema, 0), visited: make(map[dynamicScopeKey]int)}
}

// RefHops returns the number of $ref/$dynamicRef/$recursiveRef dereferences
// currently on the active evaluation chain. Unlike Size, this does not grow
// for plain schema-tree descent (properties, allOf, items, ...), only for
// following a reference keyword.
func (ds *DynamicScope) RefHops() int {
	return ds.refHops
}

// EnterRef marks one more reference hop as active on the evaluation chain.
func (ds *DynamicScope) EnterRef() {
	ds.refHops++
}

// ExitRef unwinds one reference hop once its evaluation has completed.
func (ds *DynamicScope) ExitRef() {
	ds.refHops--
}

// Visited reports whether key is already on the active evaluation chain.
func (ds *DynamicScope) Visited(key dynamicScopeKey) bool {
	return ds.visited[key] > 0
}

// Enter marks key as active on the evaluation chain.
func (ds *DynamicScope) Enter(key dynamicScopeKey) {
	ds.visited[key]++
}

// Exit unmarks key once its evaluation has unwound.
func (ds *DynamicScope) Exit(key dynamicScopeKey) {
	ds.visited[key]--
	if ds.visited[key] <= 0 {
		delete(ds.visited, key)
	}
}

// Push adds a Schema to the dynamic scope
func (ds *DynamicScope) Push(schema *Schema) {
	ds.schemas = append(ds.schemas, schema)
}

// Pop removes and returns the top Schema from the dynamic scope
func (ds *DynamicScope) Pop() *Schema {
	if len(ds.schemas) == 0 {
		return nil // Or handle the error
	}
	lastIndex := len(ds.schemas) - 1
	schema := ds.schemas[lastIndex]
	ds.schemas = ds.schemas[:lastIndex]
	return schema
}

// Peek returns the top Schema without removing it
func (ds *DynamicScope) Peek() *Schema {
	if len(ds.schemas) == 0 {
		return nil // Or handle the error
	}
	return ds.schemas[len(ds.schemas)-1]
}

// IsEmpty checks if the dynamic scope is empty
func (ds *DynamicScope) IsEmpty() bool {
	return len(ds.schemas) == 0
}

// Size returns the number of Schemas in the dynamic scope
func (ds *DynamicScope) Size() int {
	return len(ds.schemas)
}

// LookupDynamicAnchor searches for a dynamic anchor in the dynamic scope
func (ds *DynamicScope) LookupDynamicAnchor(anchor string) *Schema {
	// use the first schema dynamic anchor matching the anchor
	for i := 0; i < len(ds.schemas); i++ {
		schema := ds.schemas[i]

		if schema.dynamicAnchors != nil && schema.dynamicAnchors[anchor] != nil {
			return schema.dynamicAnchors[anchor]
		}
	}

	return nil
}

// LookupRecursiveAnchor walks the dynamic scope from the outermost frame inward
// and returns the document root of the first frame whose root declares
// "$recursiveAnchor": true. Implements the Draft 2019-09 $recursiveRef redirection
// rule, mirroring LookupDynamicAnchor's outermost-first walk for $dynamicRef.
func (ds *DynamicScope) LookupRecursiveAnchor() *Schema {
	for i := 0; i < len(ds.schemas); i++ {
		root := ds.schemas[i].getRootSchema()
		if root.RecursiveAnchor != nil && *root.RecursiveAnchor {
			return root
		}
	}

	return nil
}
