package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/phrazzld/dualclass-api/internal/platform/assets"
	"github.com/phrazzld/dualclass-api/internal/prompt"
	"github.com/spf13/cobra"
)

func newRenderImageCmd(env cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render-image",
		Short: "Render one styled image into the generated asset directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("prompt")
			if strings.TrimSpace(subject) == "" {
				return fmt.Errorf("--prompt cannot be empty")
			}

			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}

			url, err := s.client.GenerateImage(cmd.Context(), subject)
			if err != nil {
				return fmt.Errorf("render image: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}
	cmd.Flags().String("prompt", "", "Image subject; the dual-lighting style is added")
	_ = cmd.MarkFlagRequired("prompt")
	return cmd
}

func newCleanImageCmd(env cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "clean-image <file>...",
		Short: "Remove world labels from images, keeping a _backup copy of each original",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, file := range args {
				backup, err := cleanImage(cmd, s, file)
				if err != nil {
					failed++
					s.log.Error("Failed to clean image", "file", file, "error", err)
					fmt.Fprintf(out, "FAIL  %s: %v\n", file, err)
					continue
				}
				fmt.Fprintf(out, "OK    %s (backup %s)\n", file, backup)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d images failed", failed, len(args))
			}
			return nil
		},
	}
}

func cleanImage(cmd *cobra.Command, s *session, file string) (string, error) {
	original, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	edited, _, err := s.client.EditImageBytes(cmd.Context(), prompt.CleanupPrompt(), original, assets.MIMETypeFor(file))
	if err != nil {
		return "", err
	}
	return assets.ReplaceWithBackup(file, edited)
}
