package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/worthit/internal/model"
	"github.com/Makepad-fr/worthit/internal/timevalue"
	"github.com/Makepad-fr/worthit/internal/ui"
)

func (c *CLI) newEvalCommand() *cobra.Command {
	var (
		note      string
		link      string
		buy       bool
		pass      bool
		logIt     bool
		remindIn  int
		remindMin int
	)

	cmd := &cobra.Command{
		Use:   "eval <price>",
		Short: "Convert a price into work time, optionally logging it",
		Long: `Shows how many net work-hours a price costs you. With --buy, --pass
or --log the evaluation is stored in your history; --remind additionally
records when to revisit the decision (run "worthit remind" for a live
countdown).`,
		Example: `  worthit eval 249.99
  worthit eval 1200 --note "standing desk" --buy
  worthit eval 89 --remind 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			price := parseAmount(args[0])

			user := c.mgr.User()
			var net float64
			if user != nil {
				net = user.NetHourlyRate
			}
			hours := timevalue.HoursRequired(price, net)

			ui.Panel([]string{
				fmt.Sprintf("%s =", ui.Title.Render(c.cur.Currency(price))),
				ui.Accent.Render(timevalue.HumanizeHours(hours)),
				timevalue.DescribeEffort(hours),
			})

			wantsLog := buy || pass || logIt || remindIn > 0 || remindMin > 0
			if !wantsLog {
				return nil
			}
			if user == nil {
				return fmt.Errorf("eval: no income profile yet; run `worthit setup` first")
			}

			status := model.StatusPending
			switch {
			case buy:
				status = model.StatusBought
			case pass:
				status = model.StatusPassed
			}

			var reminderAt *time.Time
			if remindIn > 0 || remindMin > 0 {
				at := time.Now().AddDate(0, 0, remindIn).Add(time.Duration(remindMin) * time.Minute)
				reminderAt = &at
			}

			item, err := c.mgr.AddItem(price, note, link, status, reminderAt)
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			ui.Ok("logged as " + string(item.Status) + " (" + item.ID + ")")
			if reminderAt != nil {
				ui.Ok("reminder noted for " + reminderAt.Local().Format(time.RFC1123))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "what the item is")
	cmd.Flags().StringVar(&link, "link", "", "where to find it")
	cmd.Flags().BoolVar(&buy, "buy", false, "log the item as bought")
	cmd.Flags().BoolVar(&pass, "pass", false, "log the item as passed")
	cmd.Flags().BoolVar(&logIt, "log", false, "log the item as pending")
	cmd.Flags().IntVar(&remindIn, "remind", 0, "log as pending and note a reminder in N days")
	cmd.Flags().IntVar(&remindMin, "remind-min", 0, "log as pending and note a reminder in N minutes")
	cmd.MarkFlagsMutuallyExclusive("buy", "pass")
	return cmd
}
