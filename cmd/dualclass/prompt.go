package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phrazzld/dualclass-api/internal/domain"
	"github.com/phrazzld/dualclass-api/internal/prompt"
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompts sent to the model",
	}
	cmd.AddCommand(newPromptMetaphorCmd())
	cmd.AddCommand(newPromptErrorMirrorCmd())
	return cmd
}

func newPromptMetaphorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metaphor",
		Short: "Print the metaphor lesson prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			concept, _ := cmd.Flags().GetString("concept")
			persona, _ := cmd.Flags().GetString("persona")
			modeFlag, _ := cmd.Flags().GetString("mode")

			mode, err := domain.ParseLessonStepMode(modeFlag)
			if err != nil {
				return fmt.Errorf("invalid --mode %q: %w", modeFlag, err)
			}
			req, err := domain.NewGenerationRequest(concept, persona, mode)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt.BuildMetaphorPrompt(req.Concept, req.Persona, req.Mode))
			return err
		},
	}
	addLessonFlags(cmd)
	return cmd
}

func newPromptErrorMirrorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "error-mirror",
		Short: "Print the error mirror prompt for a lesson or context JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("context")

			mirror, err := readMirrorContext(path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt.BuildErrorMirrorPrompt(mirror))
			return err
		},
	}
	cmd.Flags().String("context", "", "Path to a lesson or error mirror context JSON file")
	_ = cmd.MarkFlagRequired("context")
	return cmd
}

func addLessonFlags(cmd *cobra.Command) {
	cmd.Flags().String("concept", "", "Technical concept to explain")
	cmd.Flags().String("persona", "", "Persona whose world supplies the metaphor")
	cmd.Flags().String("mode", string(domain.ModeDynamic), "Lesson step mode: fixed or dynamic")
	_ = cmd.MarkFlagRequired("concept")
	_ = cmd.MarkFlagRequired("persona")
}

// readMirrorContext reads an error mirror context from path. A full lesson
// document works too, since it carries the same fields.
func readMirrorContext(path string) (domain.ErrorMirrorContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ErrorMirrorContext{}, fmt.Errorf("read context: %w", err)
	}

	var mirror domain.ErrorMirrorContext
	if err := json.Unmarshal(data, &mirror); err != nil {
		return domain.ErrorMirrorContext{}, fmt.Errorf("parse context %s: %w", path, err)
	}
	if len(mirror.QuizOptions) == 0 {
		return domain.ErrorMirrorContext{}, fmt.Errorf("context %s has no quiz_options", path)
	}
	return mirror, nil
}
