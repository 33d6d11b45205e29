package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/registrar/internal/shared"
	"github.com/desertthunder/registrar/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive record browser on the configured data file.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.TUIFile)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	repo, err := r.open()
	if err != nil {
		return err
	}

	model := ui.NewModel(repo, ui.Options{
		Path:   r.config.Data.Path,
		Pretty: r.config.Data.Pretty,
		Logger: fileLogger,
	})
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
