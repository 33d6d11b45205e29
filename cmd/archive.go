package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/registrar/internal/archive"
	"github.com/desertthunder/registrar/internal/roster"
	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

// openArchive opens the configured database with migrations applied.
func (r *Runner) openArchive() (*archive.Store, *sql.DB, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return archive.NewStore(db, r.logger), db, nil
}

// ArchiveSave snapshots the current data file.
func (r *Runner) ArchiveSave(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.open()
	if err != nil {
		return err
	}

	store, db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := store.Save(cmd.String("label"), repo)
	if err != nil {
		return err
	}

	return r.writePlain("Saved snapshot #%d %s (%d students, %d instructors, %d courses)\n",
		snap.Sequence, snap.ID, snap.Counts.Students, snap.Counts.Instructors, snap.Counts.Courses)
}

// ArchiveList prints saved snapshots, newest first.
func (r *Runner) ArchiveList(ctx context.Context, cmd *cli.Command) error {
	store, db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := store.List()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(snapshots, cmd.Bool("pretty"))
	}

	if len(snapshots) == 0 {
		return r.writePlain("No snapshots saved\n")
	}

	r.writePlainHeader(fmt.Sprintf("Snapshots (%d)", len(snapshots)))
	for _, snap := range snapshots {
		label := snap.Label
		if label == "" {
			label = "-"
		}
		r.writePlain("#%-4d %s  %s  %s  S:%d I:%d C:%d\n",
			snap.Sequence, snap.ID, snap.CreatedAt.Format("2006-01-02 15:04"), label,
			snap.Counts.Students, snap.Counts.Instructors, snap.Counts.Courses)
	}
	return nil
}

// ArchiveRestore replaces the data file with a snapshot. Without an ID the latest snapshot is used.
func (r *Runner) ArchiveRestore(ctx context.Context, cmd *cli.Command) error {
	store, db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	id := cmd.StringArg("id")
	if id == "" {
		latest, err := store.Latest()
		if err != nil {
			return err
		}
		id = latest.ID
	}

	return r.mutate(func(repo *roster.Repository) error {
		if err := store.Restore(id, repo); err != nil {
			return err
		}
		r.logger.Info("snapshot restored", "id", id, "path", r.config.Data.Path)
		return r.writePlain("Restored snapshot %s into %s\n", id, r.config.Data.Path)
	})
}

// ArchiveDelete removes a snapshot.
func (r *Runner) ArchiveDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}

	store, db, err := r.openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Delete(id); err != nil {
		return err
	}
	return r.writePlain("Deleted snapshot %s\n", id)
}
