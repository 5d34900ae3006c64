package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/lesson"
	"github.com/phrazzld/dualclass-api/internal/platform/assets"
	"github.com/phrazzld/dualclass-api/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(env cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one lesson and print it as JSON",
		Long: "Generate one lesson and print it as JSON on stdout. A one-line summary\n" +
			"goes to stderr, followed by the session log when --log is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			concept, _ := cmd.Flags().GetString("concept")
			persona, _ := cmd.Flags().GetString("persona")
			modeFlag, _ := cmd.Flags().GetString("mode")
			showLog, _ := cmd.Flags().GetBool("log")

			mode, err := domain.ParseLessonStepMode(modeFlag)
			if err != nil {
				return fmt.Errorf("%w: %q", err, modeFlag)
			}

			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}

			fixtures := assets.NewFixtureStore(filepath.Join(s.cfg.Assets.PublicDir, s.cfg.Assets.DataSubdir))
			svc, err := service.NewLessonService(s.client, fixtures, s.client.TextModel(), s.log)
			if err != nil {
				return err
			}

			state := lesson.Reduce(lesson.Session{}, lesson.ModeChanged{Mode: mode})
			state = addLog(state, lesson.LogAPICall, "Generating lesson", "", map[string]interface{}{
				"concept": concept,
				"persona": persona,
				"mode":    string(state.StepMode()),
			})

			l, err := svc.Generate(cmd.Context(), domain.GenerationRequest{
				Concept: concept,
				Persona: persona,
				Mode:    state.StepMode(),
			})
			if err != nil {
				state = addLog(state, lesson.LogError, "Lesson generation failed", err.Error(), nil)
				if showLog {
					_ = writeLogs(cmd.ErrOrStderr(), state.Logs)
				}
				return err
			}
			state = lesson.Reduce(state, lesson.LessonLoaded{Lesson: l})

			out, err := encodeLesson(l)
			if err != nil {
				return err
			}
			state = addLog(state, lesson.LogAPIResponse, "Lesson received", string(out), map[string]interface{}{
				"cached":       lesson.IsCached(l),
				"responseTime": l.Meta.ResponseTime,
			})
			if lesson.IsCached(l) {
				state = addLog(state, lesson.LogInfo, "Served cached lesson", "", nil)
			} else {
				state = addLog(state, lesson.LogSuccess, "Generated live lesson", "", map[string]interface{}{"model": l.Meta.Model})
			}

			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.ErrOrStderr(), summary(state.Lesson, persona, concept)); err != nil {
				return err
			}
			if showLog {
				return writeLogs(cmd.ErrOrStderr(), state.Logs)
			}
			return nil
		},
	}
	addLessonFlags(cmd)
	cmd.Flags().Bool("log", false, "Print the session log to stderr as JSON lines")
	return cmd
}

func addLog(s lesson.Session, t lesson.LogType, message, details string, metadata map[string]interface{}) lesson.Session {
	return lesson.Reduce(s, lesson.LogAdded{Entry: lesson.NewLogEntry(t, message, details, metadata)})
}

// encodeLesson renders l as indented JSON without HTML escaping.
func encodeLesson(l *domain.Lesson) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("encode lesson: %w", err)
	}
	return buf.Bytes(), nil
}

// summary is the one-line description printed after a lesson, for example
// "👨‍🍳 Chef × 🧠 Transformer Attention (cached)".
func summary(l *domain.Lesson, persona, concept string) string {
	line := fmt.Sprintf("%s %s × %s %s",
		lesson.PersonaEmoji(persona), persona, lesson.ConceptEmoji(concept), concept)
	switch {
	case l != nil && l.Meta.Fallback:
		line += " (fallback)"
	case lesson.IsCached(l):
		line += " (cached)"
	}
	return line
}

func writeLogs(w io.Writer, logs []lesson.LogEntry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, entry := range logs {
		if err := enc.Encode(entry); err != nil {
			return err
		}
	}
	return nil
}
