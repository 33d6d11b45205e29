package formatter

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/roster"
	th "github.com/desertthunder/registrar/internal/testing"
)

func TestRows(t *testing.T) {
	r := th.NewRoster(t)
	rows := Rows(r, r.Search(""))

	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}

	t.Run("student row", func(t *testing.T) {
		got := rows[0].Table()
		want := []string{"Student", "S1", "Ann", "20", "ann@x.com", "Introduction to Computer Science, Calculus I"}
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("instructor row", func(t *testing.T) {
		got := rows[2]
		if got.Type != "Instructor" || got.Courses != "Introduction to Computer Science" {
			t.Errorf("unexpected instructor row %+v", got)
		}
		if got.Age != "45" || got.Email != "smith@uni.edu" {
			t.Errorf("instructor row missing age/email: %+v", got)
		}
	})

	t.Run("course row", func(t *testing.T) {
		got := rows[4]
		if got.Instructor != "Dr. Smith" {
			t.Errorf("expected instructor Dr. Smith, got %q", got.Instructor)
		}
		if got.Students != "Ann, Bob" {
			t.Errorf("expected students 'Ann, Bob', got %q", got.Students)
		}
		if got.Age != "" || got.Email != "" {
			t.Errorf("course row should leave age and email empty: %+v", got)
		}
		if got.Table()[5] != "Ann, Bob" {
			t.Errorf("course table row should list students, got %q", got.Table()[5])
		}
	})

	t.Run("unassigned course", func(t *testing.T) {
		got := rows[6]
		if got.ID != "PHYS101" || got.Instructor != "" || got.Students != "" {
			t.Errorf("unexpected row for empty course %+v", got)
		}
	})
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		r := th.NewRoster(t)

		data, err := ExportToCSV(r)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("export is not valid CSV: %v", err)
		}

		if len(records) != 8 {
			t.Fatalf("expected header plus 7 rows, got %d", len(records))
		}

		if strings.Join(records[0], ",") != "Type,ID,Name,Age,Email,Instructor,Course Name,Students,Courses" {
			t.Errorf("CSV missing headers, got: %v", records[0])
		}

		for i, record := range records {
			if len(record) != len(CSVHeaders) {
				t.Errorf("row %d has %d columns, want %d", i, len(record), len(CSVHeaders))
			}
		}

		if records[1][0] != "Student" || records[3][0] != "Instructor" || records[5][0] != "Course" {
			t.Errorf("rows not in student, instructor, course order")
		}

		course := records[5]
		if course[5] != "Dr. Smith" || course[6] != "Introduction to Computer Science" || course[7] != "Ann, Bob" {
			t.Errorf("unexpected course row %v", course)
		}

		instructor := records[3]
		if instructor[8] != "Introduction to Computer Science" {
			t.Errorf("instructor row should list assigned courses, got %v", instructor)
		}
	})

	t.Run("ExportToCSV empty roster", func(t *testing.T) {
		data, err := ExportToCSV(roster.New(nil))
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}
		if strings.Count(string(data), "\n") != 1 {
			t.Errorf("expected header only, got %q", data)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		r := th.NewRoster(t)

		data, err := ExportToText(r, r.Search("ann"))
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		for _, header := range TableHeaders {
			if !strings.Contains(output, header) {
				t.Errorf("Text missing header %s", header)
			}
		}
		if !strings.Contains(output, "ann@x.com") {
			t.Errorf("Text missing student email")
		}
		if strings.Contains(output, "Bob") {
			t.Errorf("Text should only include matching records")
		}
		if !strings.Contains(output, "1 record(s)") {
			t.Errorf("Text missing record count")
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		r := th.NewRoster(t)

		data, err := ExportToMarkdown(r)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# School Records",
			"## Students (2)",
			"## Instructors (2)",
			"## Courses (3)",
			"| S1 | Ann | 20 | ann@x.com | Introduction to Computer Science, Calculus I |",
			"| CS101 | Introduction to Computer Science | Dr. Smith | Ann, Bob |",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got: %s", want, output)
			}
		}
	})

	t.Run("ExportToMarkdown escapes pipes and marks empty sections", func(t *testing.T) {
		r := roster.New(nil)
		if _, err := r.CreateCourse("C1", "A | B", "", nil); err != nil {
			t.Fatalf("CreateCourse failed: %v", err)
		}

		data, err := ExportToMarkdown(r)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, `A \| B`) {
			t.Errorf("expected escaped pipe, got: %s", output)
		}
		if !strings.Contains(output, "## Students (0)\n\n_None_") {
			t.Errorf("expected empty students section, got: %s", output)
		}
	})
}

func TestWriters(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			path, err := WriteCSVExport(th.NewRoster(t), "")
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}

			if path != "school_data.csv" {
				t.Errorf("Expected 'school_data.csv', got '%s'", path)
			}

			th.AssertFileExists(t, path)
			content := th.MustReadFile(t, path)
			if !strings.HasPrefix(content, "Type,ID,Name,Age,Email,Instructor,Course Name,Students,Courses") {
				t.Errorf("CSV missing headers")
			}
		})

		t.Run("WithCustomPath", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "exports", "records.csv")

			got, err := WriteCSVExport(th.NewRoster(t), path)
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}
			if got != path {
				t.Errorf("Expected %s, got %s", path, got)
			}
			th.AssertFileExists(t, path)
		})

		t.Run("UnwritablePath", func(t *testing.T) {
			dir := t.TempDir()
			blocker := filepath.Join(dir, "blocker")
			th.MustWriteFile(t, blocker, "x")

			if _, err := WriteCSVExport(th.NewRoster(t), filepath.Join(blocker, "out.csv")); err == nil {
				t.Error("expected error writing beneath a regular file")
			}
		})
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.md")

		got, err := WriteMarkdownExport(th.NewRoster(t), path)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}
		if !strings.Contains(th.MustReadFile(t, got), "## Courses (3)") {
			t.Errorf("Markdown file missing courses section")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "records.txt")

		got, err := WriteTextExport(th.NewRoster(t), path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if !strings.Contains(th.MustReadFile(t, got), "7 record(s)") {
			t.Errorf("Text file missing record count")
		}
	})
}

func TestRowsUnknownRelations(t *testing.T) {
	r := roster.New(nil)
	c, err := r.CreateCourse("C1", "Algebra", "", nil)
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}

	rows := Rows(r, []models.Record{c})
	if rows[0].Instructor != "" {
		t.Errorf("expected empty instructor, got %q", rows[0].Instructor)
	}
}
