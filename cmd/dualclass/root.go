package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/dualclass-api/internal/config"
	"github.com/phrazzld/dualclass-api/internal/generation"
	"github.com/phrazzld/dualclass-api/internal/platform/assets"
	"github.com/phrazzld/dualclass-api/internal/platform/gemini"
	"github.com/phrazzld/dualclass-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// modelClient is the model surface the CLI drives. *gemini.Client
// satisfies it.
type modelClient interface {
	generation.Generator
	EditImageBytes(ctx context.Context, instruction string, image []byte, mimeType string) ([]byte, string, error)
	Ping(ctx context.Context) (string, error)
	TextModel() string
}

// cliEnv supplies the configuration and model client to commands.
type cliEnv struct {
	loadConfig func(path string) (*config.Config, error)
	newClient  func(ctx context.Context, cfg *config.Config, log *slog.Logger) (modelClient, error)
}

func defaultEnv() cliEnv {
	return cliEnv{
		loadConfig: config.LoadFrom,
		newClient: func(ctx context.Context, cfg *config.Config, log *slog.Logger) (modelClient, error) {
			images, err := assets.NewImageStore(cfg.Assets.PublicDir, cfg.Assets.GeneratedSubdir)
			if err != nil {
				return nil, err
			}
			client, err := gemini.NewClient(ctx, log, cfg.LLM, images)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// session is the state a model-backed command runs with.
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	client modelClient
}

func newRootCmd(env cliEnv) *cobra.Command {
	root := &cobra.Command{
		Use:          "dualclass",
		Short:        "Operator tools for the Dual Class lesson generator",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "Path to a config file (defaults to ./config.yaml when present)")

	root.AddCommand(newPromptCmd())
	root.AddCommand(newGenerateCmd(env))
	root.AddCommand(newRenderImageCmd(env))
	root.AddCommand(newCleanImageCmd(env))
	root.AddCommand(newPingCmd(env))
	return root
}

// openSession loads configuration, logs to stderr and builds the model client.
func openSession(cmd *cobra.Command, env cliEnv) (*session, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := env.loadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.SetupWithWriter(cfg.Server, cmd.ErrOrStderr(), cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("set up logger: %w", err)
	}

	client, err := env.newClient(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}
	return &session{cfg: cfg, log: log, client: client}, nil
}
