package lesson_test

import (
	"testing"

	"github.com/phrazzld/dualclass-api/internal/lesson"
	"github.com/stretchr/testify/assert"
)

func TestPersonaEmoji(t *testing.T) {
	tests := map[string]string{
		"Chef":              "👨‍🍳",
		"Home Baker":        "👨‍🍳",
		"Starship Captain":  "🧑‍✈️",
		"Astronaut":         "🧑‍✈️",
		"Private Detective": "🕵️",
		"Retro Gamer":       "🎮",
		"Guitar Hero":       "🎸",
		"Surfer":            "🏄",
		"Firefighter":       "🚒",
		"Professor":         "👨‍🏫",
		"Chef who surfs":    "👨‍🍳",
		"Accountant":        lesson.DefaultPersonaEmoji,
	}

	for persona, want := range tests {
		t.Run(persona, func(t *testing.T) {
			assert.Equal(t, want, lesson.PersonaEmoji(persona))
		})
	}
}

func TestConceptEmoji(t *testing.T) {
	tests := map[string]string{
		"Transformer Attention": "🧠",
		"Neural Networks":       "🧠",
		"Kubernetes":            "🐳",
		"Docker":                "🐳",
		"Crypto wallets":        "🔗",
		"Blockchain":            "🧠",
		"Encryption":            "🛡️",
		"SQL joins":             "💾",
		"REST API":              "🌐",
		"Recursion":             lesson.DefaultConceptEmoji,
	}

	for concept, want := range tests {
		t.Run(concept, func(t *testing.T) {
			assert.Equal(t, want, lesson.ConceptEmoji(concept))
		})
	}
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "Chef-Engineer", lesson.BadgeTitle("Sushi Chef"))
	assert.Equal(t, "Captain-Engineer", lesson.BadgeTitle("Starship Captain"))
	assert.Equal(t, lesson.DefaultBadgeTitle, lesson.BadgeTitle("Pilot"))

	assert.Equal(t, "👨‍🍳", lesson.BadgeEmoji("chef"))
	assert.Equal(t, "🧑‍✈️", lesson.BadgeEmoji("CAPTAIN"))
	assert.Equal(t, lesson.DefaultPersonaEmoji, lesson.BadgeEmoji("Pilot"))
}
