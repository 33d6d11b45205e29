// package formatter renders roster records as table rows and exports them to CSV, Markdown and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

// Source is the read side of a roster.
type Source interface {
	Search(term string) []models.Record
	RegisteredCourses(studentID string) []*models.Course
	AssignedCourses(instructorID string) []*models.Course
	EnrolledStudents(courseID string) []*models.Student
	InstructorOf(courseID string) *models.Instructor
}

var (
	// TableHeaders are the columns of the record table.
	TableHeaders = []string{"Type", "ID", "Name", "Age", "Email", "Courses"}
	// CSVHeaders are the columns of a CSV export.
	CSVHeaders = []string{"Type", "ID", "Name", "Age", "Email", "Instructor", "Course Name", "Students", "Courses"}
)

// Row is one record flattened to display text. Fields that do not apply to the record's kind are empty.
type Row struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        string `json:"age,omitempty"`
	Email      string `json:"email,omitempty"`
	Instructor string `json:"instructor,omitempty"`  // course rows: instructor name
	CourseName string `json:"course_name,omitempty"` // course rows: course name
	Students   string `json:"students,omitempty"`    // course rows: enrolled student names
	Courses    string `json:"courses,omitempty"`     // student and instructor rows: registered or assigned course names
}

// Table returns the row's [TableHeaders] columns.
//
// The Courses column lists course names for people and enrolled student names for courses.
func (r Row) Table() []string {
	related := r.Courses
	if r.Type == string(models.KindCourse) {
		related = r.Students
	}
	return []string{r.Type, r.ID, r.Name, r.Age, r.Email, related}
}

// CSV returns the row's [CSVHeaders] columns.
func (r Row) CSV() []string {
	return []string{r.Type, r.ID, r.Name, r.Age, r.Email, r.Instructor, r.CourseName, r.Students, r.Courses}
}

// Rows flattens records using src to resolve their relations.
func Rows(src Source, records []models.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{Type: string(rec.Kind()), ID: rec.ID(), Name: rec.Name()}

		switch v := rec.(type) {
		case *models.Student:
			row.Age = strconv.Itoa(v.Age())
			row.Email = v.Email()
			row.Courses = courseNames(src.RegisteredCourses(v.ID()))
		case *models.Instructor:
			row.Age = strconv.Itoa(v.Age())
			row.Email = v.Email()
			row.Courses = courseNames(src.AssignedCourses(v.ID()))
		case *models.Course:
			if i := src.InstructorOf(v.ID()); i != nil {
				row.Instructor = i.Name()
			}
			row.CourseName = v.Name()
			row.Students = studentNames(src.EnrolledStudents(v.ID()))
		}

		rows = append(rows, row)
	}
	return rows
}

// ExportToCSV writes every record with columns: Type, ID, Name, Age, Email, Instructor, Course Name, Students, Courses
func ExportToCSV(src Source) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(CSVHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range Rows(src, src.Search("")) {
		if err := writer.Write(row.CSV()); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderTable draws rows as a bordered text table with [TableHeaders].
func RenderTable(rows []Row) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, row.Table())
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(TableHeaders...).
		Rows(data...).
		String()
}

// ExportToText renders the given records as a plain text table with a record count
func ExportToText(src Source, records []models.Record) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(RenderTable(Rows(src, records)))
	buf.WriteString(fmt.Sprintf("\n%d record(s)\n", len(records)))

	return buf.Bytes(), nil
}

// ExportToMarkdown renders every record as a Markdown report with a section per kind
func ExportToMarkdown(src Source) ([]byte, error) {
	var buf bytes.Buffer
	rows := Rows(src, src.Search(""))

	buf.WriteString("# School Records\n\n")

	sections := []struct {
		kind    models.Kind
		title   string
		headers []string
		cells   func(Row) []string
	}{
		{
			kind:    models.KindStudent,
			title:   "Students",
			headers: []string{"ID", "Name", "Age", "Email", "Registered Courses"},
			cells:   func(r Row) []string { return []string{r.ID, r.Name, r.Age, r.Email, r.Courses} },
		},
		{
			kind:    models.KindInstructor,
			title:   "Instructors",
			headers: []string{"ID", "Name", "Age", "Email", "Assigned Courses"},
			cells:   func(r Row) []string { return []string{r.ID, r.Name, r.Age, r.Email, r.Courses} },
		},
		{
			kind:    models.KindCourse,
			title:   "Courses",
			headers: []string{"ID", "Name", "Instructor", "Enrolled Students"},
			cells:   func(r Row) []string { return []string{r.ID, r.CourseName, r.Instructor, r.Students} },
		},
	}

	for _, section := range sections {
		var matched []Row
		for _, row := range rows {
			if row.Type == string(section.kind) {
				matched = append(matched, row)
			}
		}

		buf.WriteString(fmt.Sprintf("## %s (%d)\n\n", section.title, len(matched)))
		if len(matched) == 0 {
			buf.WriteString("_None_\n\n")
			continue
		}

		writeMarkdownRow(&buf, section.headers)
		separators := make([]string, len(section.headers))
		for i := range separators {
			separators[i] = "---"
		}
		writeMarkdownRow(&buf, separators)
		for _, row := range matched {
			writeMarkdownRow(&buf, section.cells(row))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// WriteCSVExport writes the CSV export to path, defaulting to school_data.csv.
//
// The file is replaced atomically. Returns the path written.
func WriteCSVExport(src Source, path string) (string, error) {
	return writeExport(path, "school_data.csv", func() ([]byte, error) { return ExportToCSV(src) })
}

// WriteMarkdownExport writes the Markdown report to path, defaulting to school_data.md.
func WriteMarkdownExport(src Source, path string) (string, error) {
	return writeExport(path, "school_data.md", func() ([]byte, error) { return ExportToMarkdown(src) })
}

// WriteTextExport writes a text table of every record to path, defaulting to school_data.txt.
func WriteTextExport(src Source, path string) (string, error) {
	return writeExport(path, "school_data.txt", func() ([]byte, error) { return ExportToText(src, src.Search("")) })
}

func writeExport(path, fallback string, render func() ([]byte, error)) (string, error) {
	if path == "" {
		path = fallback
	}

	data, err := render()
	if err != nil {
		return "", fmt.Errorf("failed to render export: %w", err)
	}

	if err := shared.WriteFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return path, nil
}

func writeMarkdownRow(buf *bytes.Buffer, cells []string) {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", `\|`)
	}
	buf.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

func courseNames(courses []*models.Course) string {
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name())
	}
	return strings.Join(names, ", ")
}

func studentNames(students []*models.Student) string {
	names := make([]string, 0, len(students))
	for _, s := range students {
		names = append(names, s.Name())
	}
	return strings.Join(names, ", ")
}
