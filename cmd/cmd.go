// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/urfave/cli/v3"
)

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output JSON rows",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}
}

func personFlags(course string) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     "age",
			Aliases:  []string{"a"},
			Usage:    "Age in years",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "email",
			Aliases:  []string{"e"},
			Usage:    "Email address",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "course",
			Usage: course,
		},
	}
}

// editCommand and deleteCommand are shared by every record kind.
func editCommand(r *Runner, kind models.Kind, fields string) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Change one field (" + fields + ")",
		ArgsUsage: "<id> <field> <value>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
			&cli.StringArg{Name: "field"},
			&cli.StringArg{Name: "value"},
		},
		Action: r.Edit(kind),
	}
}

func deleteCommand(r *Runner, kind models.Kind) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a record and its relations",
		ArgsUsage: "<id>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Action: r.Delete(kind),
	}
}

func listCommand(r *Runner, kind models.Kind) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List records in insertion order",
		Flags:   outputFlags(),
		Action:  r.List(kind),
	}
}

// studentCommand handles student records and registrations
func studentCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "student",
		Aliases: []string{"s"},
		Usage:   "Student records",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a student",
				ArgsUsage: "<id> <name>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "name"},
				},
				Flags:  personFlags("Course ID to register for"),
				Action: r.StudentAdd,
			},
			editCommand(r, models.KindStudent, "name, age, email"),
			deleteCommand(r, models.KindStudent),
			listCommand(r, models.KindStudent),
			{
				Name:      "register",
				Usage:     "Register a student for a course",
				ArgsUsage: "<student-id> <course-id>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "student"},
					&cli.StringArg{Name: "course"},
				},
				Action: r.Register,
			},
			{
				Name:      "unregister",
				Usage:     "Remove a student from a course",
				ArgsUsage: "<student-id> <course-id>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "student"},
					&cli.StringArg{Name: "course"},
				},
				Action: r.Unregister,
			},
		},
	}
}

// instructorCommand handles instructor records and course assignments
func instructorCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "instructor",
		Aliases: []string{"i"},
		Usage:   "Instructor records",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create an instructor",
				ArgsUsage: "<id> <name>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "name"},
				},
				Flags:  personFlags("Course ID to assign"),
				Action: r.InstructorAdd,
			},
			editCommand(r, models.KindInstructor, "name, age, email"),
			deleteCommand(r, models.KindInstructor),
			listCommand(r, models.KindInstructor),
			{
				Name:      "assign",
				Usage:     "Assign a course to an instructor",
				ArgsUsage: "<instructor-id> <course-id>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "instructor"},
					&cli.StringArg{Name: "course"},
				},
				Action: r.Assign,
			},
			{
				Name:      "unassign",
				Usage:     "Clear a course's instructor",
				ArgsUsage: "<course-id>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "course"},
				},
				Action: r.Unassign,
			},
		},
	}
}

// courseCommand handles course records
func courseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "course",
		Aliases: []string{"c"},
		Usage:   "Course records",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a course",
				ArgsUsage: "<id> <name>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
					&cli.StringArg{Name: "name"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "instructor",
						Usage: "Instructor ID",
					},
					&cli.StringFlag{
						Name:  "students",
						Usage: "Comma separated student IDs to enroll",
					},
				},
				Action: r.CourseAdd,
			},
			editCommand(r, models.KindCourse, "name"),
			deleteCommand(r, models.KindCourse),
			listCommand(r, models.KindCourse),
		},
	}
}

func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find records by ID or name (case-insensitive)",
		ArgsUsage: "[query]",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags:  outputFlags(),
		Action: r.Search,
	}
}

func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one record with its relations",
		ArgsUsage: "<id>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON",
			},
		},
		Action: r.Show,
	}
}

// exportCommand writes every record to a report file
func exportCommand(r *Runner) *cli.Command {
	output := func(usage string) []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   usage,
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the exported file afterwards",
			},
		}
	}

	return &cli.Command{
		Name:  "export",
		Usage: "Export records",
		Commands: []*cli.Command{
			{
				Name:   "csv",
				Usage:  "Export a CSV file",
				Flags:  output("Output file path (default: data.csv_path)"),
				Action: r.Export("csv", formatter.WriteCSVExport),
			},
			{
				Name:    "text",
				Aliases: []string{"txt"},
				Usage:   "Export a plain text table",
				Flags:   output("Output file path (default: school_data.txt)"),
				Action:  r.Export("text", formatter.WriteTextExport),
			},
			{
				Name:    "markdown",
				Aliases: []string{"md"},
				Usage:   "Export a markdown report",
				Flags:   output("Output file path (default: school_data.md)"),
				Action:  r.Export("markdown", formatter.WriteMarkdownExport),
			},
		},
	}
}

// archiveCommand manages roster snapshots in the database
func archiveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "archive",
		Usage: "Save and restore roster snapshots",
		Commands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Snapshot the current records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "label",
						Aliases: []string{"l"},
						Usage:   "Snapshot label",
					},
				},
				Action: r.ArchiveSave,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List snapshots, newest first",
				Flags:   outputFlags(),
				Action:  r.ArchiveList,
			},
			{
				Name:      "restore",
				Usage:     "Replace the data file with a snapshot (default: latest)",
				ArgsUsage: "[snapshot-id]",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.ArchiveRestore,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a snapshot",
				ArgsUsage: "<snapshot-id>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.ArchiveDelete,
			},
		},
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file or initialize the database",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example config to --config",
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the most recent migration",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Browse records in an interactive terminal UI",
		Action:  r.TUI,
	}
}
