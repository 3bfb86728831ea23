package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/worthit/internal/app"
	"github.com/Makepad-fr/worthit/internal/reminder"
	"github.com/Makepad-fr/worthit/internal/timevalue"
	"github.com/Makepad-fr/worthit/internal/ui"
)

func (c *CLI) newRemindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind <item-id> <minutes>",
		Short: "Run a live reminder for a logged item",
		Long: `Schedules a reminder for an existing history item and waits for it
to fire. On delivery the item is looked up again by id; if it was deleted
in the meantime the reminder resolves to nothing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			mins := int(parseAmount(args[1]))
			if mins <= 0 {
				return fmt.Errorf("remind: minutes must be a positive number, got %q", args[1])
			}

			item, found := c.mgr.FindItem(id)
			if !found {
				return fmt.Errorf("remind: no item with id %s", id)
			}

			fireAt := time.Now().Add(time.Duration(mins) * time.Minute)
			if err := c.mgr.UpdateItem(id, app.ItemPatch{ReminderAt: &fireAt}); err != nil {
				return fmt.Errorf("remind: %w", err)
			}

			delivered := make(chan reminder.Payload, 1)
			sched := reminder.NewScheduler(func(p reminder.Payload, title, body string) {
				delivered <- p
			}, c.log)
			defer sched.Stop()

			sched.Schedule(fireAt, reminder.Payload{ItemID: id},
				"Is it worth it?", "Time to decide on your item.")
			ui.Ok(fmt.Sprintf("will remind about %s at %s",
				c.cur.Currency(item.Price), fireAt.Local().Format(time.Kitchen)))

			select {
			case p := <-delivered:
				c.showDelivered(p)
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
	return cmd
}

// showDelivered resolves a fired reminder back to its item. An unknown id
// (deleted before delivery) resolves silently to nothing.
func (c *CLI) showDelivered(p reminder.Payload) {
	item, found := c.mgr.FindItem(p.ItemID)
	if !found {
		return
	}
	ui.Panel([]string{
		ui.Title.Render("Is it worth it?"),
		fmt.Sprintf("%s = %s", c.cur.Currency(item.Price), timevalue.HumanizeHours(item.HoursRequired)),
		timevalue.DescribeEffort(item.HoursRequired),
		ui.Muted.Render("worthit history  # decide"),
	})
}
