package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/y-okubo/dotcell/internal/database"
	"github.com/y-okubo/dotcell/internal/history"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "history",
		Short: "Show recent tutoring exchanges",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cfg.Database.Enabled() {
				return fmt.Errorf("history requires a configured database")
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			repo := history.NewDBRepository(db)
			exchanges, err := repo.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("repo.Recent() > %w", err)
			}
			if len(exchanges) == 0 {
				fmt.Println("No exchanges recorded yet.")
				return nil
			}

			bold := color.New(color.Bold)
			dim := color.New(color.Faint)
			for _, exchange := range exchanges {
				bold.Printf("%s  [%s]\n", exchange.CreatedAt.Format("2006-01-02 15:04:05"), exchange.Source)
				fmt.Printf("Q: %s", exchange.Input)
				if exchange.Target != "" {
					fmt.Printf(" (target: %s)", exchange.Target)
				}
				fmt.Println()
				fmt.Printf("A: %s\n", exchange.Response)
				if exchange.Error != "" {
					dim.Printf("   %s\n", exchange.Error)
				}
				fmt.Println()
			}
			return nil
		},
	}

	command.Flags().IntVar(&limit, "limit", 20, "number of exchanges to show")

	return command
}
