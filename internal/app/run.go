package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/creatures-addons/internal/addon"
	"github.com/specialistvlad/creatures-addons/internal/ctxlog"
	"github.com/specialistvlad/creatures-addons/internal/game"
)

type operation func(context.Context, *addon.Config, game.Game) ([]addon.Result, error)

// Run prints the banner and dispatches: version only, uninstall, or backup
// (unless skipped) followed by install. Every operation runs for C3 first,
// then DS.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fmt.Fprintf(a.outW, "Creatures Exodus Add-on Installer v%s\n", Version)
	if a.config.Version {
		return nil
	}

	fmt.Fprintf(a.outW, "\nSource directory: %s\n", a.config.InputDir)
	fmt.Fprintf(a.outW, "Backup directory: %s\n", a.config.BackupDir)
	fmt.Fprintf(a.outW, "Creatures directory: %s\n\n", a.config.CreaturesDir)

	summary := addon.Summary{}

	if a.config.Uninstall {
		fmt.Fprintln(a.outW, "Uninstalling...")
		if err := a.forEachGame(ctx, "uninstall", addon.Uninstall, summary); err != nil {
			return err
		}
	} else {
		if a.config.SkipBackup {
			fmt.Fprintln(a.outW, "Skipping backups...")
		} else {
			fmt.Fprintln(a.outW, "Creating backups...")
			if err := a.forEachGame(ctx, "backup", addon.Backup, summary); err != nil {
				return err
			}
		}
		fmt.Fprintln(a.outW, "Installing add-ons...")
		if err := a.forEachGame(ctx, "install", addon.Install, summary); err != nil {
			return err
		}
	}

	fmt.Fprintf(a.outW, "\nDone! (%s)\n", summary)
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) forEachGame(ctx context.Context, name string, op operation, summary addon.Summary) error {
	for _, g := range game.All {
		results, err := op(ctx, a.addons, g)
		summary.Add(results...)
		if err != nil {
			a.logger.Error("Operation aborted.", "op", name, "game", g, "error", err, "completed", len(results))
			return fmt.Errorf("%s failed: %w", name, err)
		}
	}
	return nil
}
