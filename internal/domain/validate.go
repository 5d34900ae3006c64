package domain

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Counts every generated lesson must satisfy.
const (
	QuizOptionCount     = 4
	VisualCalloutCount  = 3
	MinMappingPairCount = 4
	MaxMappingPairCount = 6
)

const metaphorSchemaURL = "schema://metaphor_result.schema.json"

//go:embed schema/metaphor_result.schema.json
var schemaFS embed.FS

var (
	metaphorSchemaOnce sync.Once
	metaphorSchema     *jsonschema.Schema
	metaphorSchemaErr  error
)

// ValidateMetaphorJSON checks a raw model payload against the embedded
// MetaphorResult JSON schema. It catches shape errors (missing fields,
// wrong counts, unknown grid positions) before the payload is decoded.
func ValidateMetaphorJSON(raw []byte) error {
	schema, err := compiledMetaphorSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return NewValidationError("document", "is not valid JSON", nil)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: schema validation failed: %v", ErrValidation, err)
	}
	return nil
}

func compiledMetaphorSchema() (*jsonschema.Schema, error) {
	metaphorSchemaOnce.Do(func() {
		content, err := schemaFS.ReadFile("schema/metaphor_result.schema.json")
		if err != nil {
			metaphorSchemaErr = fmt.Errorf("read metaphor schema: %w", err)
			return
		}

		var def any
		if err := json.Unmarshal(content, &def); err != nil {
			metaphorSchemaErr = fmt.Errorf("parse metaphor schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(metaphorSchemaURL, def); err != nil {
			metaphorSchemaErr = fmt.Errorf("add metaphor schema: %w", err)
			return
		}

		metaphorSchema, metaphorSchemaErr = c.Compile(metaphorSchemaURL)
	})
	return metaphorSchema, metaphorSchemaErr
}

// ValidateMetaphorResult checks the invariants of a parsed result that a
// schema cannot express: exactly one correct option, distinct callout and
// option ids, unique 1-based step numbers, step counts per mode and step
// callouts referencing existing callouts.
func ValidateMetaphorResult(r *MetaphorResult, mode LessonStepMode) error {
	if r == nil {
		return NewValidationError("result", "is missing", nil)
	}

	if err := validateQuizOptions(r.QuizOptions); err != nil {
		return err
	}

	callouts, err := validateCallouts(r.VisualCallouts)
	if err != nil {
		return err
	}

	if n := len(r.MappingPairs); n < MinMappingPairCount || n > MaxMappingPairCount {
		return NewValidationError("mapping_pairs",
			fmt.Sprintf("must contain %d-%d pairs, got %d", MinMappingPairCount, MaxMappingPairCount, n), nil)
	}

	return validateLessonSteps(r.LessonSteps, mode, callouts)
}

func validateQuizOptions(options []QuizOption) error {
	if len(options) != QuizOptionCount {
		return NewValidationError("quiz_options",
			fmt.Sprintf("must contain exactly %d options, got %d", QuizOptionCount, len(options)), nil)
	}

	seen := make(map[string]bool, len(options))
	correct := 0
	for _, o := range options {
		if len(o.ID) != 1 || o.ID[0] < 'a' || o.ID[0] > 'z' {
			return NewValidationError("quiz_options", fmt.Sprintf("id %q must be a single lowercase letter", o.ID), nil)
		}
		if seen[o.ID] {
			return NewValidationError("quiz_options", fmt.Sprintf("id %q is duplicated", o.ID), nil)
		}
		seen[o.ID] = true
		if o.IsCorrect {
			correct++
		}
	}

	if correct != 1 {
		return NewValidationError("quiz_options",
			fmt.Sprintf("must have exactly one correct option, got %d", correct), nil)
	}
	return nil
}

func validateCallouts(callouts []VisualCallout) (map[int]bool, error) {
	if len(callouts) != VisualCalloutCount {
		return nil, NewValidationError("visual_callouts",
			fmt.Sprintf("must contain exactly %d callouts, got %d", VisualCalloutCount, len(callouts)), nil)
	}

	ids := make(map[int]bool, len(callouts))
	for _, c := range callouts {
		if c.ID < 1 || c.ID > VisualCalloutCount {
			return nil, NewValidationError("visual_callouts", fmt.Sprintf("id %d is out of range", c.ID), nil)
		}
		if ids[c.ID] {
			return nil, NewValidationError("visual_callouts", fmt.Sprintf("id %d is duplicated", c.ID), nil)
		}
		if !c.Position.IsValid() {
			return nil, NewValidationError("visual_callouts", fmt.Sprintf("position %q is not a grid position", c.Position), nil)
		}
		ids[c.ID] = true
	}
	return ids, nil
}

func validateLessonSteps(steps []LessonStep, mode LessonStepMode, callouts map[int]bool) error {
	lo, hi := mode.StepRange()
	if len(steps) < lo || len(steps) > hi {
		return NewValidationError("lesson_steps",
			fmt.Sprintf("must contain %d-%d steps in %s mode, got %d", lo, hi, mode, len(steps)), nil)
	}

	seen := make(map[int]bool, len(steps))
	for _, s := range steps {
		if s.StepNumber < 1 {
			return NewValidationError("lesson_steps", fmt.Sprintf("step number %d must be 1-based", s.StepNumber), nil)
		}
		if seen[s.StepNumber] {
			return NewValidationError("lesson_steps", fmt.Sprintf("step number %d is duplicated", s.StepNumber), nil)
		}
		seen[s.StepNumber] = true
		if !callouts[s.ImageCallout] {
			return NewValidationError("lesson_steps",
				fmt.Sprintf("step %d references unknown callout %d", s.StepNumber, s.ImageCallout), nil)
		}
	}
	return nil
}
