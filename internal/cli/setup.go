package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/worthit/internal/model"
	"github.com/Makepad-fr/worthit/internal/timevalue"
	"github.com/Makepad-fr/worthit/internal/ui"
)

func (c *CLI) newSetupCommand() *cobra.Command {
	var (
		income       string
		rate         string
		salary       string
		hoursPerWeek float64
		noTax        bool
		taxRate      float64
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up or update your income profile",
		Long: `Builds the income profile all conversions are based on. The net
hourly rate is computed here and cached on the profile; existing history
items keep the rate they were evaluated at.`,
		Example: `  worthit setup --income hourly --rate 35 --tax-rate 0.25
  worthit setup --income salary --salary 90000 --hours-per-week 40 --no-tax`,
		RunE: func(cmd *cobra.Command, args []string) error {
			incomeType := model.IncomeHourly
			switch income {
			case "hourly":
			case "salary":
				incomeType = model.IncomeSalary
			default:
				return fmt.Errorf("setup: --income must be hourly or salary, got %q", income)
			}

			// Sanitize before touching the engine: parse-or-zero amounts,
			// clamp the tax rate, default the work week.
			hr := parseAmount(rate)
			sal := parseAmount(salary)
			if hoursPerWeek <= 0 {
				hoursPerWeek = 40
			}
			tr := timevalue.Clamp(taxRate, 0, 0.9)

			net := timevalue.NetHourlyRate(incomeType, hr, sal, hoursPerWeek, !noTax, tr)
			u := model.User{
				IncomeType:    incomeType,
				HourlyRate:    hr,
				Salary:        sal,
				HoursPerWeek:  hoursPerWeek,
				TaxEnabled:    !noTax,
				TaxRate:       tr,
				NetHourlyRate: timevalue.RoundTo(net, 2),
			}
			if err := c.mgr.SetUser(&u); err != nil {
				return fmt.Errorf("setup: %w", err)
			}

			ui.Panel([]string{
				ui.Title.Render("Income profile saved"),
				fmt.Sprintf("Net hourly rate: %s/hr", ui.Success.Render(c.cur.Currency(u.NetHourlyRate))),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&income, "income", "hourly", "income type: hourly or salary")
	cmd.Flags().StringVar(&rate, "rate", "", "gross hourly rate (hourly income)")
	cmd.Flags().StringVar(&salary, "salary", "", "gross annual salary (salary income)")
	cmd.Flags().Float64Var(&hoursPerWeek, "hours-per-week", 40, "work hours per week (salary income)")
	cmd.Flags().BoolVar(&noTax, "no-tax", false, "skip the tax deduction")
	cmd.Flags().Float64Var(&taxRate, "tax-rate", 0.25, "tax rate between 0 and 0.9")
	return cmd
}
