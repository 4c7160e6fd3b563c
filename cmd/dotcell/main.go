package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/y-okubo/dotcell/internal/config"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "dotcell",
		Short:         "Braille tutoring from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	rootCmd.AddCommand(newAskCommand())
	rootCmd.AddCommand(newPracticeCommand())
	rootCmd.AddCommand(newHistoryCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
