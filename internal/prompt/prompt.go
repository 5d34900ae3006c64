package prompt

import (
	"embed"
	"strings"
	"text/template"

	"github.com/phrazzld/dualclass-api/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type metaphorData struct {
	Concept         string
	Persona         string
	StepInstruction string
	Positions       string
	MinPairs        int
	MaxPairs        int
	Callouts        int
	Options         int
}

type errorMirrorData struct {
	Persona       string
	Concept       string
	MetaphorLogic string
	QuizQuestion  string
	QuizAnswer    string
	Correct       *domain.QuizOption
	Wrong         []domain.QuizOption
}

// BuildMetaphorPrompt renders the lesson generation prompt. Fixed mode asks
// for exactly 3 lesson steps; any other mode asks for 3-5.
func BuildMetaphorPrompt(concept, persona string, mode domain.LessonStepMode) string {
	positions := make([]string, len(domain.CalloutPositions))
	for i, p := range domain.CalloutPositions {
		positions[i] = string(p)
	}

	return render("metaphor.tmpl", metaphorData{
		Concept:         concept,
		Persona:         persona,
		StepInstruction: StepInstruction(mode),
		Positions:       strings.Join(positions, ", "),
		MinPairs:        domain.MinMappingPairCount,
		MaxPairs:        domain.MaxMappingPairCount,
		Callouts:        domain.VisualCalloutCount,
		Options:         domain.QuizOptionCount,
	})
}

// StepInstruction is the lesson step count phrase used for mode.
func StepInstruction(mode domain.LessonStepMode) string {
	if mode == domain.ModeFixed {
		return "exactly 3 lesson steps"
	}
	return "3-5 lesson steps"
}

// BuildErrorMirrorPrompt renders the misconception prompt for a finished
// quiz. Only the wrong options are listed, and their count is stated.
func BuildErrorMirrorPrompt(ctx domain.ErrorMirrorContext) string {
	data := errorMirrorData{
		Persona:       ctx.Persona,
		Concept:       ctx.Concept,
		MetaphorLogic: ctx.MetaphorLogic,
		QuizQuestion:  ctx.QuizQuestion,
		QuizAnswer:    ctx.QuizAnswer,
		Wrong:         ctx.WrongOptions(),
	}
	if correct, ok := ctx.CorrectOption(); ok {
		data.Correct = &correct
	}
	return render("error_mirror.tmpl", data)
}

// StyleImagePrompt wraps subject in the dual-lighting template shared by
// every generated illustration.
func StyleImagePrompt(subject string) string {
	return render("image_style.tmpl", struct{ Subject string }{subject})
}

// CleanupPrompt is the edit instruction that strips world-name text
// artifacts from a generated image.
func CleanupPrompt() string {
	return render("cleanup.tmpl", nil)
}

// render panics on execution errors. The templates are fixed at build time
// and each one is executed by the package tests.
func render(name string, data interface{}) string {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		panic("prompt: render " + name + ": " + err.Error())
	}
	return strings.TrimSpace(b.String())
}
