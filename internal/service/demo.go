package service

import "strings"

// Fixture file names under the data directory.
const (
	ChefFixture    = "chef_response.json"
	CaptainFixture = "captain_response.json"
)

// Image paths used when the live path has no generated image.
const (
	FallbackImage    = "/images/chef_attention.png"
	PlaceholderImage = "/images/placeholder.png"
)

// demoPersonas are matched as lowercase substrings of the persona.
var demoPersonas = []string{"chef", "starship captain", "captain"}

// DemoFixture reports whether persona is served from a fixture and which
// one: chef_response.json when it mentions a chef, captain_response.json
// otherwise.
func DemoFixture(persona string) (string, bool) {
	lower := strings.ToLower(persona)
	for _, p := range demoPersonas {
		if strings.Contains(lower, p) {
			if strings.Contains(lower, "chef") {
				return ChefFixture, true
			}
			return CaptainFixture, true
		}
	}
	return "", false
}
