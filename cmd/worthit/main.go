package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Makepad-fr/worthit/internal/app"
	"github.com/Makepad-fr/worthit/internal/cli"
	"github.com/Makepad-fr/worthit/internal/config"
	"github.com/Makepad-fr/worthit/internal/store"
	"github.com/Makepad-fr/worthit/internal/timevalue"
	"github.com/Makepad-fr/worthit/internal/ui"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := store.New(cfg.DataDir, logger)
	if err != nil {
		ui.Fail("init store: " + err.Error())
		os.Exit(1)
	}

	mgr := app.NewManager(st, logger)
	mgr.Load(ctx)

	root := cli.NewRootCommand(mgr, timevalue.NewFormatter(cfg.LanguageTag()), logger)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Render("✖ "+err.Error()))
		os.Exit(1)
	}
}
