package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/roster"
	"github.com/urfave/cli/v3"
)

// StudentAdd creates a student and optionally registers it for a course.
func (r *Runner) StudentAdd(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	name, err := requireArg(cmd, "name")
	if err != nil {
		return err
	}
	course := cmd.String("course")

	return r.mutate(func(repo *roster.Repository) error {
		s, err := repo.CreateStudent(id, name, int(cmd.Int("age")), cmd.String("email"))
		if err != nil {
			return err
		}
		if course != "" {
			if err := repo.RegisterCourse(s.ID(), course); err != nil {
				return err
			}
		}
		r.logger.Info("student added", "id", s.ID(), "course", course)
		return r.writePlain("Added student %s (%s)\n", s.ID(), s.Name())
	})
}

// InstructorAdd creates an instructor and optionally assigns it a course.
func (r *Runner) InstructorAdd(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	name, err := requireArg(cmd, "name")
	if err != nil {
		return err
	}
	course := cmd.String("course")

	return r.mutate(func(repo *roster.Repository) error {
		i, err := repo.CreateInstructor(id, name, int(cmd.Int("age")), cmd.String("email"))
		if err != nil {
			return err
		}
		if course != "" {
			if err := repo.AssignCourse(i.ID(), course); err != nil {
				return err
			}
		}
		r.logger.Info("instructor added", "id", i.ID(), "course", course)
		return r.writePlain("Added instructor %s (%s)\n", i.ID(), i.Name())
	})
}

// CourseAdd creates a course with an optional instructor and enrolled students.
//
// --students takes a comma separated list; unknown IDs are skipped.
func (r *Runner) CourseAdd(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}
	name, err := requireArg(cmd, "name")
	if err != nil {
		return err
	}

	var students []string
	if raw := cmd.String("students"); raw != "" {
		students = strings.Split(raw, ",")
	}

	return r.mutate(func(repo *roster.Repository) error {
		c, err := repo.CreateCourse(id, name, cmd.String("instructor"), students)
		if err != nil {
			return err
		}
		r.logger.Info("course added", "id", c.ID(), "instructor", c.InstructorID())
		return r.writePlain("Added course %s (%s) with %d student(s)\n", c.ID(), c.Name(), len(repo.EnrolledStudents(c.ID())))
	})
}

// Edit returns an action that sets one field of a record of kind.
func (r *Runner) Edit(kind models.Kind) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		id, err := requireArg(cmd, "id")
		if err != nil {
			return err
		}
		field, err := requireArg(cmd, "field")
		if err != nil {
			return err
		}
		value := cmd.StringArg("value")

		return r.mutate(func(repo *roster.Repository) error {
			if err := repo.Edit(kind, id, field, value); err != nil {
				return err
			}
			r.logger.Info("record updated", "kind", kind, "id", id, "field", field)
			return r.writePlain("Updated %s %s\n", kind, id)
		})
	}
}

// Delete returns an action that removes a record of kind and its relations.
func (r *Runner) Delete(kind models.Kind) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		id, err := requireArg(cmd, "id")
		if err != nil {
			return err
		}

		return r.mutate(func(repo *roster.Repository) error {
			if err := repo.Delete(kind, id); err != nil {
				return err
			}
			r.logger.Info("record deleted", "kind", kind, "id", id)
			return r.writePlain("Deleted %s %s\n", kind, id)
		})
	}
}

// List returns an action that prints every record of kind.
func (r *Runner) List(kind models.Kind) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		repo, err := r.open()
		if err != nil {
			return err
		}

		records, err := repo.List(kind)
		if err != nil {
			return err
		}
		return r.writeRecords(cmd, repo, records)
	}
}

// Search prints records whose ID or name contains the query.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.open()
	if err != nil {
		return err
	}

	query := cmd.StringArg("query")
	records := repo.Search(query)
	r.logger.Debug("search", "query", query, "matches", len(records))
	return r.writeRecords(cmd, repo, records)
}

// Show prints a single record with its relations.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	id, err := requireArg(cmd, "id")
	if err != nil {
		return err
	}

	repo, err := r.open()
	if err != nil {
		return err
	}

	for _, kind := range []models.Kind{models.KindStudent, models.KindInstructor, models.KindCourse} {
		rec, err := repo.Get(kind, id)
		if err != nil {
			continue
		}
		row := formatter.Rows(repo, []models.Record{rec})[0]
		if cmd.Bool("json") {
			return r.writeJSON(row, true)
		}

		r.writePlainHeader(fmt.Sprintf("%s %s", row.Type, row.ID))
		r.writePlain("Name: %s\n", row.Name)
		if row.Age != "" {
			r.writePlain("Age: %s\n", row.Age)
			r.writePlain("Email: %s\n", row.Email)
		}
		if kind == models.KindCourse {
			r.writePlain("Course Name: %s\n", row.CourseName)
			r.writePlain("Instructor: %s\n", row.Instructor)
			return r.writePlain("Students: %s\n", row.Students)
		}
		return r.writePlain("Courses: %s\n", row.Courses)
	}

	return notFound(id)
}

// writeRecords prints records as a table, or as JSON rows with --json.
func (r *Runner) writeRecords(cmd *cli.Command, src formatter.Source, records []models.Record) error {
	rows := formatter.Rows(src, records)
	if cmd.Bool("json") {
		return r.writeJSON(rows, cmd.Bool("pretty"))
	}

	if len(rows) == 0 {
		return r.writePlain("No records found\n")
	}
	r.writePlain("%s\n", formatter.RenderTable(rows))
	return r.writePlain("%d record(s)\n", len(rows))
}
