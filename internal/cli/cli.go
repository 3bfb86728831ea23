// Package cli wires the worthit command surface.
package cli

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/worthit/internal/app"
	"github.com/Makepad-fr/worthit/internal/timevalue"
)

// CLI bundles the dependencies every command needs.
type CLI struct {
	mgr *app.Manager
	cur timevalue.Formatter
	log *slog.Logger
}

// NewRootCommand builds the worthit root command and its subcommands.
func NewRootCommand(mgr *app.Manager, cur timevalue.Formatter, log *slog.Logger) *cobra.Command {
	if log == nil {
		log = slog.Default()
	}
	c := &CLI{mgr: mgr, cur: cur, log: log}

	root := &cobra.Command{
		Use:   "worthit",
		Short: "Convert prices into the work-hours they cost you",
		Long: `WorthIt converts a purchase price into the number of work-hours
required to earn it, net of taxes. Log items, defer the decision with a
reminder, and review your history.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(c.newSetupCommand())
	root.AddCommand(c.newEvalCommand())
	root.AddCommand(c.newHistoryCommand())
	root.AddCommand(c.newProfileCommand())
	root.AddCommand(c.newRemindCommand())
	root.AddCommand(c.newClearCommand())
	return root
}

// parseAmount turns free-form money text into a non-negative number.
// Currency symbols, grouping commas and other noise are stripped;
// unparseable input degrades to 0 (the engine is total over its domain,
// sanitizing is our job).
func parseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
