package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/worthit/internal/model"
	"github.com/Makepad-fr/worthit/internal/ui"
)

func (c *CLI) newProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the saved income profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := c.mgr.User()
			if u == nil {
				fmt.Println(ui.Muted.Render("no income profile yet"))
				fmt.Println("Run: worthit setup")
				return nil
			}

			lines := []string{ui.Title.Render("Income profile")}
			if u.IncomeType == model.IncomeSalary {
				lines = append(lines,
					fmt.Sprintf("Salary: %s/yr", c.cur.Currency(u.Salary)),
					fmt.Sprintf("Hours per week: %v", u.HoursPerWeek),
				)
			} else {
				lines = append(lines, fmt.Sprintf("Hourly rate: %s/hr gross", c.cur.Currency(u.HourlyRate)))
			}
			if u.TaxEnabled {
				lines = append(lines, fmt.Sprintf("Tax rate: %.0f%%", u.TaxRate*100))
			} else {
				lines = append(lines, "Taxes: ignored")
			}
			lines = append(lines, fmt.Sprintf("Net hourly rate: %s/hr", ui.Success.Render(c.cur.Currency(u.NetHourlyRate))))
			ui.Panel(lines)
			return nil
		},
	}
}
