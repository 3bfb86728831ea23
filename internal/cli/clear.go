package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/worthit/internal/ui"
)

func (c *CLI) newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the income profile and all history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Print("This will remove your income and history. Type y to confirm: ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.TrimSpace(strings.ToLower(line)) != "y" {
					fmt.Println(ui.Muted.Render("kept everything"))
					return nil
				}
			}
			if err := c.mgr.ClearAll(); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			ui.Ok("all data removed")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
