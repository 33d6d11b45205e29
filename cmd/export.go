package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

type exportFunc func(src formatter.Source, path string) (string, error)

// Export returns an action writing every record with write.
//
// The destination comes from --output; CSV falls back to data.csv_path from the config.
// With --open the written file is handed to the system viewer.
func (r *Runner) Export(format string, write exportFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		repo, err := r.open()
		if err != nil {
			return err
		}

		path := cmd.String("output")
		if path == "" && format == "csv" {
			path = r.config.Data.CSVPath
		}

		written, err := write(repo, path)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", format, err)
		}

		r.logger.Info("export complete", "format", format, "path", written)
		if err := r.writePlain("Exported %d record(s) to %s\n", len(repo.Search("")), written); err != nil {
			return err
		}

		if cmd.Bool("open") {
			if err := shared.OpenFile(written); err != nil {
				r.logger.Warn("could not open export", "path", written, "error", err)
			}
		}
		return nil
	}
}
