package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The demo and fallback fixtures shipped in public/data must satisfy the
// same invariants as live lessons in fixed mode.
func TestShippedFixtures(t *testing.T) {
	dataDir := filepath.Join("..", "..", "public", "data")
	imagesDir := filepath.Join("..", "..", "public")

	for _, name := range []string{service.ChefFixture, service.CaptainFixture} {
		t.Run(name, func(t *testing.T) {
			raw, err := os.ReadFile(filepath.Join(dataDir, name))
			require.NoError(t, err)

			require.NoError(t, domain.ValidateMetaphorJSON(raw))
			lesson, err := domain.NewLesson(raw)
			require.NoError(t, err)
			assert.NoError(t, domain.ValidateMetaphorResult(&lesson.Result, domain.ModeFixed))

			_, err = os.Stat(filepath.Join(imagesDir, filepath.FromSlash(lesson.Result.ImageURL)))
			assert.NoError(t, err, "fixture image %s must exist", lesson.Result.ImageURL)
		})
	}

	for _, image := range []string{service.FallbackImage, service.PlaceholderImage} {
		_, err := os.Stat(filepath.Join(imagesDir, filepath.FromSlash(image)))
		assert.NoError(t, err, "%s must exist", image)
	}
}
