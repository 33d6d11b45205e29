package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/registrar/internal/roster"
	"github.com/desertthunder/registrar/internal/shared"
	"github.com/urfave/cli/v3"
)

// Register enrolls a student in a course.
func (r *Runner) Register(ctx context.Context, cmd *cli.Command) error {
	studentID, courseID, err := pairArgs(cmd, "student", "course")
	if err != nil {
		return err
	}

	return r.mutate(func(repo *roster.Repository) error {
		if err := repo.RegisterCourse(studentID, courseID); err != nil {
			return err
		}
		r.logger.Info("student registered", "student", studentID, "course", courseID)
		return r.writePlain("Registered %s for %s\n", studentID, courseID)
	})
}

// Unregister removes a student from a course.
func (r *Runner) Unregister(ctx context.Context, cmd *cli.Command) error {
	studentID, courseID, err := pairArgs(cmd, "student", "course")
	if err != nil {
		return err
	}

	return r.mutate(func(repo *roster.Repository) error {
		if err := repo.UnregisterCourse(studentID, courseID); err != nil {
			return err
		}
		r.logger.Info("student unregistered", "student", studentID, "course", courseID)
		return r.writePlain("Unregistered %s from %s\n", studentID, courseID)
	})
}

// Assign gives a course to an instructor, replacing any previous instructor.
func (r *Runner) Assign(ctx context.Context, cmd *cli.Command) error {
	instructorID, courseID, err := pairArgs(cmd, "instructor", "course")
	if err != nil {
		return err
	}

	return r.mutate(func(repo *roster.Repository) error {
		if err := repo.AssignCourse(instructorID, courseID); err != nil {
			return err
		}
		r.logger.Info("course assigned", "instructor", instructorID, "course", courseID)
		return r.writePlain("Assigned %s to %s\n", courseID, instructorID)
	})
}

// Unassign clears a course's instructor.
func (r *Runner) Unassign(ctx context.Context, cmd *cli.Command) error {
	courseID, err := requireArg(cmd, "course")
	if err != nil {
		return err
	}

	return r.mutate(func(repo *roster.Repository) error {
		if err := repo.UnassignCourse(courseID); err != nil {
			return err
		}
		r.logger.Info("course unassigned", "course", courseID)
		return r.writePlain("Unassigned %s\n", courseID)
	})
}

func pairArgs(cmd *cli.Command, first, second string) (string, string, error) {
	a, err := requireArg(cmd, first)
	if err != nil {
		return "", "", err
	}
	b, err := requireArg(cmd, second)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", shared.ErrNotFound, id)
}
