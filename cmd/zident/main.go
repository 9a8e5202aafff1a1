package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"

	"github.com/zarlcorp/zident/internal/cli"
	"github.com/zarlcorp/zident/internal/config"
	"github.com/zarlcorp/zident/internal/identity"
	"github.com/zarlcorp/zident/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zident"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		err := cli.New(version).Execute(ctx, os.Args[1:])
		_ = app.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "zident: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runTUI() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.Logger(os.Stderr))

	gen := identity.New(cfg.GeneratorOptions()...)
	m := tui.New(version, cfg.DataDir, gen, cfg.Country(), cli.IsFirstRun(cfg.DataDir))

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
