package jsonschema

import (
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// OutputUnit is a single node in a basic/detailed/verbose output tree, using
// the stable field names of the external result contract: valid,
// keywordLocation, absoluteKeywordLocation, instanceLocation, error, errors,
// annotations.
type OutputUnit struct {
	Valid                   bool           `json:"valid"`
	KeywordLocation         string         `json:"keywordLocation"`
	AbsoluteKeywordLocation string         `json:"absoluteKeywordLocation,omitempty"`
	InstanceLocation        string         `json:"instanceLocation"`
	Error                   string         `json:"error,omitempty"`
	Errors                  []OutputUnit   `json:"errors,omitempty"`
	Annotations             map[string]any `json:"annotations,omitempty"`
}

// ValidateOutput validates instance and renders the result using the
// compiler's configured Options.OutputFormat.
func (s *Schema) ValidateOutput(instance interface{}) any {
	result := s.Validate(instance)

	format := OutputFlag
	if c := s.GetCompiler(); c != nil {
		format = c.Options.OutputFormat
	}

	return result.ToOutput(format, nil)
}

// ToOutput renders the result in the given OutputFormat, localizing error
// messages with localizer when non-nil.
func (e *EvaluationResult) ToOutput(format OutputFormat, localizer *i18n.Localizer) any {
	switch format {
	case OutputBasic:
		return e.ToBasic(localizer)
	case OutputDetailed:
		return e.ToDetailed(localizer)
	case OutputVerbose:
		return e.ToVerbose(localizer)
	default:
		return e.ToFlag()
	}
}

func (e *EvaluationResult) localizedError(localizer *i18n.Localizer) string {
	if len(e.Errors) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		if localizer != nil {
			messages = append(messages, err.Localize(localizer))
		} else {
			messages = append(messages, err.Error())
		}
	}
	return strings.Join(messages, "; ")
}

func (e *EvaluationResult) toUnit(localizer *i18n.Localizer) OutputUnit {
	return OutputUnit{
		Valid:                   e.Valid,
		KeywordLocation:         e.EvaluationPath,
		AbsoluteKeywordLocation: e.SchemaLocation,
		InstanceLocation:        e.InstanceLocation,
		Error:                   e.localizedError(localizer),
		Annotations:             e.Annotations,
	}
}

// ToBasic renders a flat list of assertion outcomes: the root node plus one
// entry per failing descendant, mirroring spec §4.J's "basic" mode.
func (e *EvaluationResult) ToBasic(localizer *i18n.Localizer) OutputUnit {
	root := e.toUnit(localizer)
	if e.Valid {
		return root
	}

	var flat []OutputUnit
	e.collectFailures(localizer, &flat)
	root.Errors = flat
	return root
}

func (e *EvaluationResult) collectFailures(localizer *i18n.Localizer, out *[]OutputUnit) {
	if !e.Valid && len(e.Errors) > 0 {
		*out = append(*out, e.toUnit(localizer))
	}
	for _, detail := range e.Details {
		detail.collectFailures(localizer, out)
	}
}

// ToDetailed renders a tree with passing, annotation-free branches pruned,
// mirroring spec §4.J's "detailed" mode.
func (e *EvaluationResult) ToDetailed(localizer *i18n.Localizer) *OutputUnit {
	unit := e.toUnit(localizer)

	for _, detail := range e.Details {
		if child := detail.ToDetailed(localizer); child != nil {
			unit.Errors = append(unit.Errors, *child)
		}
	}

	if e.Valid && len(unit.Errors) == 0 && len(e.Annotations) == 0 {
		return nil
	}

	return &unit
}

// ToVerbose renders the complete tree, including successful branches and
// their annotations, mirroring spec §4.J's "verbose" mode.
func (e *EvaluationResult) ToVerbose(localizer *i18n.Localizer) *OutputUnit {
	unit := e.toUnit(localizer)

	for _, detail := range e.Details {
		child := detail.ToVerbose(localizer)
		unit.Errors = append(unit.Errors, *child)
	}

	return &unit
}
