package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/y-okubo/dotcell/internal/cli"
	"github.com/y-okubo/dotcell/internal/inference"
	"github.com/y-okubo/dotcell/internal/inference/openai"
	"github.com/y-okubo/dotcell/internal/tutor"
)

func newAskCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "ask",
		Short: "Interactive tutoring session about the Braille alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var client inference.Client
			if cfg.OpenAI.APIKey != "" {
				fmt.Printf("Using OpenAI provider (model: %s)\n", cfg.OpenAI.Model)
				openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxRetryAttempts)
				defer func() {
					_ = openaiClient.Close()
				}()
				client = openaiClient
			} else {
				fmt.Println("OPENAI_API_KEY is not set. Answers use the deterministic dot lookup.")
			}

			composer := tutor.NewComposer(client, slog.Default())
			askCLI := cli.NewAskCLI(composer, os.Stdin, os.Stdout)
			return askCLI.Run(cmd.Context())
		},
	}

	return command
}
