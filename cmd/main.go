package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/registrar/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if err := shared.ApplyEnv(config); err != nil {
		logger.Fatalf("application error: %v", err)
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	if err := runner.App().Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrValidation),
			errors.Is(err, shared.ErrNotFound),
			errors.Is(err, shared.ErrMissingArgument),
			errors.Is(err, shared.ErrInvalidArgument),
			errors.Is(err, shared.ErrSnapshotNotFound):
			runner.logger.Warn(err.Error())
			os.Exit(1)
		default:
			runner.logger.Fatalf("application error: %v", err)
		}
	}
}
