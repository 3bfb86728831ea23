package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/worthit/internal/tui"
)

func (c *CLI) newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Browse logged items (interactive TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tui.Run(c.mgr, c.cur); err != nil {
				return fmt.Errorf("history: %w", err)
			}
			return nil
		},
	}
}
