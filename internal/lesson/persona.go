package lesson

import "strings"

// Defaults when no rule matches.
const (
	DefaultPersonaEmoji = "👤"
	DefaultConceptEmoji = "💻"
	DefaultBadgeTitle   = "Engineer"
)

type rule struct {
	keywords []string
	value    string
}

func (r rule) matches(normalized string) bool {
	for _, k := range r.keywords {
		if strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}

// Rules are evaluated top to bottom. The first match wins.
var (
	personaEmojiRules = []rule{
		{keywords: []string{"chef", "cook", "baker"}, value: "👨‍🍳"},
		{keywords: []string{"captain", "pilot", "astronaut"}, value: "🧑‍✈️"},
		{keywords: []string{"detective", "investigator"}, value: "🕵️"},
		{keywords: []string{"gamer", "game"}, value: "🎮"},
		{keywords: []string{"musician", "music", "guitar"}, value: "🎸"},
		{keywords: []string{"surfer", "surf"}, value: "🏄"},
		{keywords: []string{"firefighter", "fire"}, value: "🚒"},
		{keywords: []string{"teacher", "professor"}, value: "👨‍🏫"},
	}

	conceptEmojiRules = []rule{
		{keywords: []string{"ai", "neural", "attention"}, value: "🧠"},
		{keywords: []string{"docker", "k8s", "kubernetes", "container"}, value: "🐳"},
		{keywords: []string{"blockchain", "crypto"}, value: "🔗"},
		{keywords: []string{"security", "encryption"}, value: "🛡️"},
		{keywords: []string{"database", "sql"}, value: "💾"},
		{keywords: []string{"network", "api"}, value: "🌐"},
	}

	badgeEmojiRules = []rule{
		{keywords: []string{"chef"}, value: "👨‍🍳"},
		{keywords: []string{"captain"}, value: "🧑‍✈️"},
	}

	badgeTitleRules = []rule{
		{keywords: []string{"chef"}, value: "Chef-Engineer"},
		{keywords: []string{"captain"}, value: "Captain-Engineer"},
	}
)

func lookup(rules []rule, s, def string) string {
	normalized := strings.ToLower(s)
	for _, r := range rules {
		if r.matches(normalized) {
			return r.value
		}
	}
	return def
}

// PersonaEmoji returns the emoji shown next to a persona.
func PersonaEmoji(persona string) string {
	return lookup(personaEmojiRules, persona, DefaultPersonaEmoji)
}

// ConceptEmoji returns the emoji shown next to a concept. Matching is by
// substring, so "ai" also matches words such as "chain".
func ConceptEmoji(concept string) string {
	return lookup(conceptEmojiRules, concept, DefaultConceptEmoji)
}

// BadgeEmoji returns the emoji on the dual class badge.
func BadgeEmoji(persona string) string {
	return lookup(badgeEmojiRules, persona, DefaultPersonaEmoji)
}

// BadgeTitle returns the dual class title earned for a persona.
func BadgeTitle(persona string) string {
	return lookup(badgeTitleRules, persona, DefaultBadgeTitle)
}
