package main

import (
	"fmt"

	"github.com/phrazzld/dualclass-api/internal/platform/gemini"
	"github.com/spf13/cobra"
)

func newPingCmd(env cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: fmt.Sprintf("Send %q to the configured text model", gemini.PingPrompt),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}

			reply, err := s.client.Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("ping %s: %w", s.client.TextModel(), err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.client.TextModel(), reply)
			return err
		},
	}
}
