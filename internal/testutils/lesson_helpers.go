package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// MetaphorOption customises a result built by CreateMetaphorResult.
type MetaphorOption func(*domain.MetaphorResult)

// WithPersona sets the result persona.
func WithPersona(persona string) MetaphorOption {
	return func(r *domain.MetaphorResult) { r.Persona = persona }
}

// WithConcept sets the result concept.
func WithConcept(concept string) MetaphorOption {
	return func(r *domain.MetaphorResult) { r.Concept = concept }
}

// WithImagePrompt sets the image prompt the model returned.
func WithImagePrompt(prompt string) MetaphorOption {
	return func(r *domain.MetaphorResult) { r.ImagePrompt = prompt }
}

// WithLessonStepCount replaces the lesson steps with n sequential steps.
func WithLessonStepCount(n int) MetaphorOption {
	return func(r *domain.MetaphorResult) {
		r.LessonSteps = make([]domain.LessonStep, n)
		for i := range r.LessonSteps {
			r.LessonSteps[i] = domain.LessonStep{
				StepNumber:   i + 1,
				Title:        "Step",
				MetaphorText: "In the kitchen...",
				LiteralText:  "In the model...",
				ImageCallout: i%domain.VisualCalloutCount + 1,
			}
		}
	}
}

// WithQuizOptions replaces the quiz options.
func WithQuizOptions(options ...domain.QuizOption) MetaphorOption {
	return func(r *domain.MetaphorResult) { r.QuizOptions = options }
}

// CreateMetaphorResult returns a result satisfying every invariant in
// fixed mode, with option "b" correct.
func CreateMetaphorResult(t *testing.T, opts ...MetaphorOption) *domain.MetaphorResult {
	t.Helper()

	r := &domain.MetaphorResult{
		Persona:         "Jazz Drummer",
		Concept:         "Transformer Attention",
		MetaphorLogic:   "A drummer listens to every player but locks onto whoever carries the groove.",
		ExplanationText: "Attention weighs every token the way a drummer weighs every instrument.",
		ImagePrompt:     "A drummer on stage with glowing lines to each bandmate",
		VisualStyle:     "Smoky jazz club",
		QuizQuestion:    "Which bandmate gets the strongest connection line?",
		QuizAnswer:      "The bassist",
		QuizExplanation: "The bassist carries the groove, like the most relevant key.",
		MappingPairs: []domain.MappingPair{
			{ConceptTerm: "Query", MetaphorTerm: "The drummer's ear"},
			{ConceptTerm: "Key", MetaphorTerm: "Each instrument's sound"},
			{ConceptTerm: "Value", MetaphorTerm: "The rhythm borrowed"},
			{ConceptTerm: "Attention weight", MetaphorTerm: "How closely the drummer follows", Note: "sums to one"},
		},
		VisualCallouts: []domain.VisualCallout{
			{ID: 1, Position: domain.PositionTopLeft, Label: "The ear"},
			{ID: 2, Position: domain.PositionCenter, Label: "The groove"},
			{ID: 3, Position: domain.PositionBottomRight, Label: "The fill"},
		},
		QuizOptions: []domain.QuizOption{
			{ID: "a", Text: "The pianist", IsCorrect: false},
			{ID: "b", Text: "The bassist", IsCorrect: true},
			{ID: "c", Text: "The audience", IsCorrect: false},
			{ID: "d", Text: "The bartender", IsCorrect: false},
		},
	}
	WithLessonStepCount(3)(r)

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MustMarshal encodes v as JSON, failing the test on error.
func MustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal test value")
	return data
}

// MetaphorJSON returns the JSON the model would emit for r.
func MetaphorJSON(t *testing.T, r *domain.MetaphorResult) string {
	t.Helper()
	return string(MustMarshal(t, r))
}

// Demo fixture file names.
const (
	ChefFixture    = "chef_response.json"
	CaptainFixture = "captain_response.json"
)

// WriteFixtures writes chef and captain demo fixtures into dir and returns
// the results they were built from. Each fixture carries an extra field the
// domain model does not know about, so tests can check it survives.
func WriteFixtures(t *testing.T, dir string) (chef, captain *domain.MetaphorResult) {
	t.Helper()

	chef = CreateMetaphorResult(t, WithPersona("Chef"), WithImagePrompt(""))
	chef.ImageURL = "/images/chef_attention.png"
	captain = CreateMetaphorResult(t, WithPersona("Starship Captain"), WithImagePrompt(""))
	captain.ImageURL = "/images/captain_attention.png"

	WriteFixture(t, dir, ChefFixture, chef, map[string]interface{}{"fixture_note": "chef"})
	WriteFixture(t, dir, CaptainFixture, captain, map[string]interface{}{"fixture_note": "captain"})
	return chef, captain
}

// WriteFixture writes r plus extra top-level fields as dir/name.
func WriteFixture(t *testing.T, dir, name string, r *domain.MetaphorResult, extra map[string]interface{}) {
	t.Helper()

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(MustMarshal(t, r), &doc))
	for k, v := range extra {
		doc[k] = v
	}

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), MustMarshal(t, doc), 0o644))
}
