package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/dualclass-api/internal/config"
	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/lesson"
	"github.com/phrazzld/dualclass-api/internal/mocks"
	"github.com/phrazzld/dualclass-api/internal/prompt"
	"github.com/phrazzld/dualclass-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is a modelClient backed by a MockGenerator.
type fakeClient struct {
	*mocks.MockGenerator
	edits   []string
	editFn  func(image []byte) ([]byte, error)
	pingErr error
}

func (f *fakeClient) EditImageBytes(ctx context.Context, instruction string, image []byte, mimeType string) ([]byte, string, error) {
	f.edits = append(f.edits, instruction)
	data, err := f.editFn(image)
	return data, mimeType, err
}

func (f *fakeClient) Ping(ctx context.Context) (string, error) {
	if f.pingErr != nil {
		return "", f.pingErr
	}
	return "Hello", nil
}

func (f *fakeClient) TextModel() string { return "gemini-test" }

func testEnv(t *testing.T, client *fakeClient) cliEnv {
	t.Helper()

	publicDir := t.TempDir()
	testutils.WriteFixtures(t, filepath.Join(publicDir, "data"))

	return cliEnv{
		loadConfig: func(path string) (*config.Config, error) {
			return &config.Config{
				Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
				Assets: config.AssetsConfig{PublicDir: publicDir, GeneratedSubdir: "images/generated", DataSubdir: "data"},
			}, nil
		},
		newClient: func(ctx context.Context, cfg *config.Config, log *slog.Logger) (modelClient, error) {
			return client, nil
		},
	}
}

func run(t *testing.T, env cliEnv, args ...string) (string, error) {
	t.Helper()

	out, _, err := runWithStderr(t, env, args...)
	return out, err
}

func runWithStderr(t *testing.T, env cliEnv, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd(env)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// sessionLogs decodes the session log lines from stderr, skipping slog
// records.
func sessionLogs(t *testing.T, stderr string) []lesson.LogEntry {
	t.Helper()

	var entries []lesson.LogEntry
	for _, line := range strings.Split(stderr, "\n") {
		if !strings.HasPrefix(line, `{"id":`) {
			continue
		}
		var e lesson.LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestPromptMetaphor(t *testing.T) {
	out, err := run(t, cliEnv{}, "prompt", "metaphor", "--concept", "Docker", "--persona", "Surfer", "--mode", "fixed")
	require.NoError(t, err)
	assert.Equal(t, prompt.BuildMetaphorPrompt("Docker", "Surfer", domain.ModeFixed)+"\n", out)

	_, err = run(t, cliEnv{}, "prompt", "metaphor", "--concept", "Docker", "--persona", "Surfer", "--mode", "epic")
	assert.ErrorIs(t, err, domain.ErrInvalidMode)

	_, err = run(t, cliEnv{}, "prompt", "metaphor", "--concept", "Docker")
	assert.Error(t, err, "persona is required")
}

func TestPromptErrorMirror(t *testing.T) {
	result := testutils.CreateMetaphorResult(t)
	path := filepath.Join(t.TempDir(), "lesson.json")
	require.NoError(t, os.WriteFile(path, testutils.MustMarshal(t, result), 0o644))

	out, err := run(t, cliEnv{}, "prompt", "error-mirror", "--context", path)
	require.NoError(t, err)
	assert.Equal(t, prompt.BuildErrorMirrorPrompt(result.ErrorMirrorContext())+"\n", out)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"persona":"Chef"}`), 0o644))
	_, err = run(t, cliEnv{}, "prompt", "error-mirror", "--context", empty)
	assert.ErrorContains(t, err, "no quiz_options")
}

func TestGenerate(t *testing.T) {
	t.Run("demo persona prints fixture", func(t *testing.T) {
		client := &fakeClient{MockGenerator: mocks.MockGeneratorThatFails()}
		out, err := run(t, testEnv(t, client), "generate", "--concept", "Attention", "--persona", "Chef")
		require.NoError(t, err)

		assert.Contains(t, out, `"persona": "Chef"`)
		assert.Contains(t, out, `"cached": true`)
		assert.Equal(t, 0, client.CallCount())
	})

	t.Run("demo persona summary and session log", func(t *testing.T) {
		client := &fakeClient{MockGenerator: &mocks.MockGenerator{}}

		_, stderr, err := runWithStderr(t, testEnv(t, client),
			"generate", "--concept", "Transformer Attention", "--persona", "Chef", "--log")
		require.NoError(t, err)

		assert.Contains(t, stderr, "👨‍🍳 Chef × 🧠 Transformer Attention (cached)\n")

		logs := sessionLogs(t, stderr)
		require.Len(t, logs, 3)
		assert.Equal(t, lesson.LogAPICall, logs[0].Type)
		assert.Equal(t, "dynamic", logs[0].Metadata["mode"])
		assert.Equal(t, lesson.LogAPIResponse, logs[1].Type)
		assert.Equal(t, true, logs[1].Metadata["cached"])
		assert.True(t, strings.HasSuffix(logs[1].Details, "..."))
		assert.Equal(t, lesson.LogInfo, logs[2].Type)
		assert.Equal(t, "Served cached lesson", logs[2].Message)
		for _, e := range logs {
			assert.NotEmpty(t, e.ID)
		}
	})

	t.Run("fallback is flagged in the summary", func(t *testing.T) {
		client := &fakeClient{MockGenerator: mocks.MockGeneratorThatFails()}

		out, stderr, err := runWithStderr(t, testEnv(t, client),
			"generate", "--concept", "Docker", "--persona", "Surfer")
		require.NoError(t, err)

		assert.Contains(t, out, `"fallback": true`)
		assert.Contains(t, stderr, "🏄 Surfer × 🐳 Docker (fallback)\n")
		assert.Empty(t, sessionLogs(t, stderr))
	})

	t.Run("invalid mode", func(t *testing.T) {
		client := &fakeClient{MockGenerator: &mocks.MockGenerator{}}

		_, err := run(t, testEnv(t, client), "generate", "--concept", "Docker", "--persona", "Surfer", "--mode", "epic")
		assert.ErrorIs(t, err, domain.ErrInvalidMode)
		assert.Equal(t, 0, client.CallCount())
	})

	t.Run("live persona calls the model", func(t *testing.T) {
		result := testutils.CreateMetaphorResult(t)
		client := &fakeClient{MockGenerator: mocks.NewMockGeneratorWithLesson(
			testutils.MetaphorJSON(t, result), "/images/generated/generated_1.png")}

		out, err := run(t, testEnv(t, client), "generate", "--concept", "Attention", "--persona", "Jazz Drummer", "--mode", "fixed")
		require.NoError(t, err)

		assert.Contains(t, out, `"imageUrl": "/images/generated/generated_1.png"`)
		assert.Contains(t, out, `"model": "gemini-test"`)
		require.Len(t, client.MetaphorCalls, 1)
		assert.Equal(t, domain.ModeFixed, client.MetaphorCalls[0].Mode)
	})

	t.Run("live lesson logs success", func(t *testing.T) {
		result := testutils.CreateMetaphorResult(t)
		client := &fakeClient{MockGenerator: mocks.NewMockGeneratorWithLesson(
			testutils.MetaphorJSON(t, result), "/images/generated/generated_1.png")}

		_, stderr, err := runWithStderr(t, testEnv(t, client),
			"generate", "--concept", "Kubernetes", "--persona", "Jazz Drummer", "--log")
		require.NoError(t, err)

		assert.Contains(t, stderr, "👤 Jazz Drummer × 🐳 Kubernetes\n")
		logs := sessionLogs(t, stderr)
		require.Len(t, logs, 3)
		assert.Equal(t, lesson.LogSuccess, logs[2].Type)
		assert.Equal(t, "gemini-test", logs[2].Metadata["model"])
	})
}

func TestRenderImage(t *testing.T) {
	client := &fakeClient{MockGenerator: mocks.NewMockGeneratorWithLesson("", "/images/generated/generated_9.png")}

	out, err := run(t, testEnv(t, client), "render-image", "--prompt", "a lighthouse")
	require.NoError(t, err)
	assert.Equal(t, "/images/generated/generated_9.png\n", out)
	assert.Equal(t, []string{"a lighthouse"}, client.ImagePrompts)

	_, err = run(t, testEnv(t, client), "render-image", "--prompt", "  ")
	assert.Error(t, err)
}

func TestCleanImage(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "chef_attention.png")
	bad := filepath.Join(dir, "captain_attention.jpg")
	require.NoError(t, os.WriteFile(good, []byte("original"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("broken"), 0o644))

	client := &fakeClient{
		MockGenerator: &mocks.MockGenerator{},
		editFn: func(image []byte) ([]byte, error) {
			if string(image) == "broken" {
				return nil, errors.New("no image data")
			}
			return []byte("cleaned"), nil
		},
	}

	out, err := run(t, testEnv(t, client), "clean-image", good, bad, filepath.Join(dir, "missing.png"))
	assert.ErrorContains(t, err, "2 of 3 images failed")
	assert.Len(t, client.edits, 2)
	assert.Equal(t, prompt.CleanupPrompt(), client.edits[0])

	cleaned, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "cleaned", string(cleaned))

	backup, err := os.ReadFile(filepath.Join(dir, "chef_attention_backup.png"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(backup))

	untouched, err := os.ReadFile(bad)
	require.NoError(t, err)
	assert.Equal(t, "broken", string(untouched))
	_, err = os.Stat(filepath.Join(dir, "captain_attention_backup.jpg"))
	assert.True(t, os.IsNotExist(err), "failed edits leave no backup")

	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, "OK    "+good)
}

func TestPing(t *testing.T) {
	out, err := run(t, testEnv(t, &fakeClient{MockGenerator: &mocks.MockGenerator{}}), "ping")
	require.NoError(t, err)
	assert.Equal(t, "gemini-test: Hello\n", out)

	_, err = run(t, testEnv(t, &fakeClient{MockGenerator: &mocks.MockGenerator{}, pingErr: errors.New("unauthorized")}), "ping")
	assert.ErrorContains(t, err, "unauthorized")
}
