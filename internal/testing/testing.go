// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/registrar/internal/roster"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// NewRoster builds a small, fully linked repository:
//
//	students    S1 Ann (CS101, MATH101), S2 Bob (CS101)
//	instructors I1 Dr. Smith (CS101), I2 Dr. Jones (MATH101)
//	courses     CS101, MATH101, PHYS101 (no instructor, no students)
func NewRoster(t *testing.T) *roster.Repository {
	t.Helper()
	r := roster.New(nil)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("failed to build roster fixture: %v", err)
		}
	}

	_, err := r.CreateStudent("S1", "Ann", 20, "ann@x.com")
	must(err)
	_, err = r.CreateStudent("S2", "Bob", 22, "bob@x.com")
	must(err)
	_, err = r.CreateInstructor("I1", "Dr. Smith", 45, "smith@uni.edu")
	must(err)
	_, err = r.CreateInstructor("I2", "Dr. Jones", 52, "jones@uni.edu")
	must(err)
	_, err = r.CreateCourse("CS101", "Introduction to Computer Science", "I1", []string{"S1", "S2"})
	must(err)
	_, err = r.CreateCourse("MATH101", "Calculus I", "I2", nil)
	must(err)
	_, err = r.CreateCourse("PHYS101", "Physics I", "", nil)
	must(err)
	must(r.RegisterCourse("S1", "MATH101"))

	return r
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
