package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/y-okubo/dotcell/internal/cli"
	"github.com/y-okubo/dotcell/internal/lesson"
)

func newPracticeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "practice [lesson]",
		Short: "Walk through a practice lesson cell by cell",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			lessons, err := lesson.ReadLessons(cfg.Lessons.Directory)
			if err != nil {
				return fmt.Errorf("failed to read lessons: %w", err)
			}
			if len(lessons) == 0 {
				return fmt.Errorf("no lessons found in %s", cfg.Lessons.Directory)
			}

			if len(args) == 0 {
				names := make([]string, 0, len(lessons))
				for _, l := range lessons {
					names = append(names, l.Name)
				}
				fmt.Printf("Available lessons: %s\n", strings.Join(names, ", "))
				return nil
			}

			selected, ok := lesson.Find(lessons, args[0])
			if !ok {
				return fmt.Errorf("lesson %q not found in %s", args[0], cfg.Lessons.Directory)
			}

			practiceCLI := cli.NewPracticeCLI(selected, os.Stdin, os.Stdout)
			return practiceCLI.Run(cmd.Context())
		},
	}

	return command
}
