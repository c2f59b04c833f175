package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gardgear/internal/client"
	"gardgear/internal/store"
	"gardgear/internal/tui"
	"gardgear/pkg/config"
	applogger "gardgear/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:   "board",
		Short: "Maintenance kanban board",
		Long:  "Terminal kanban board for the maintenance dashboard API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, logger, err := buildStore(apiURL)
			if err != nil {
				return err
			}
			defer logger.Sync()

			program := tea.NewProgram(tui.NewModel(st, logger), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (defaults to GARDGEAR_API_URL)")

	root.AddCommand(newStatsCmd(&apiURL))
	root.AddCommand(newCreateCmd(&apiURL))
	return root
}

// buildStore wires the HTTP client, the store and a file logger. The TUI
// owns the terminal, so log output goes to a file instead of stderr.
func buildStore(apiURL string) (*store.Store, *zap.Logger, error) {
	cfg := config.New()
	if apiURL == "" {
		apiURL = cfg.Client.APIBaseURL
	}

	logger := applogger.NewFileLogger("./logs/board.log")

	api := client.New(apiURL, cfg.Client.Timeout)
	return store.New(api, logger), logger, nil
}

func newStatsCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print request status counts and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, logger, err := buildStore(*apiURL)
			if err != nil {
				return err
			}
			defer logger.Sync()

			st.Load(cmd.Context())
			if !st.Loaded() {
				return fmt.Errorf("failed to load collections from the API")
			}

			c := st.StatusCounts()
			fmt.Printf("total:        %d\n", c.Total)
			fmt.Printf("new:          %d\n", c.New)
			fmt.Printf("in progress:  %d\n", c.InProgress)
			fmt.Printf("repaired:     %d\n", c.Repaired)
			fmt.Printf("scrap:        %d\n", c.Scrap)
			fmt.Printf("overdue:      %d\n", c.Overdue)
			return nil
		},
	}
}

func newCreateCmd(apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a maintenance request via an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, logger, err := buildStore(*apiURL)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			st.Load(ctx)

			created, err := tui.RunCreateForm(ctx, st)
			if err != nil {
				return err
			}
			fmt.Printf("created request #%d (%s)\n", created.ID, created.Status)
			return nil
		},
	}
}
