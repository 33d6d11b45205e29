package roster

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

// Enrollment is one (student, course) pair of the enrollment relation.
type Enrollment struct {
	StudentID string
	CourseID  string
}

// Counts is the number of records of each kind.
type Counts struct {
	Students    int `json:"students"`
	Instructors int `json:"instructors"`
	Courses     int `json:"courses"`
}

// Repository owns every record of a session along with the relations between them.
type Repository struct {
	students    *collection[*models.Student]
	instructors *collection[*models.Instructor]
	courses     *collection[*models.Course]
	enrollments []Enrollment
	assigned    map[string]uint64 // course ID -> assignment sequence
	sequence    uint64
	logger      *log.Logger
}

// New creates an empty Repository. A nil logger discards log output.
func New(logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Repository{logger: logger}
	r.Reset()
	return r
}

// Reset drops every record and relation.
func (r *Repository) Reset() {
	r.students = newCollection[*models.Student]()
	r.instructors = newCollection[*models.Instructor]()
	r.courses = newCollection[*models.Course]()
	r.enrollments = nil
	r.assigned = make(map[string]uint64)
	r.sequence = 0
}

// Counts reports how many records of each kind are held.
func (r *Repository) Counts() Counts {
	return Counts{
		Students:    r.students.len(),
		Instructors: r.instructors.len(),
		Courses:     r.courses.len(),
	}
}

// AddStudent stores an already validated student.
func (r *Repository) AddStudent(s *models.Student) error {
	if !r.students.add(s) {
		return alreadyExists(models.KindStudent, s.ID())
	}
	return nil
}

// AddInstructor stores an already validated instructor.
func (r *Repository) AddInstructor(i *models.Instructor) error {
	if !r.instructors.add(i) {
		return alreadyExists(models.KindInstructor, i.ID())
	}
	return nil
}

// AddCourse stores an already validated course.
//
// An instructor ID that matches no instructor is cleared and logged; the course is still added.
func (r *Repository) AddCourse(c *models.Course) error {
	if r.courses.has(c.ID()) {
		return alreadyExists(models.KindCourse, c.ID())
	}

	if c.HasInstructor() && !r.instructors.has(c.InstructorID()) {
		r.logger.Warn("course instructor not found, leaving unassigned", "course", c.ID(), "instructor", c.InstructorID())
		c.SetInstructorID("")
	}

	r.courses.add(c)
	if c.HasInstructor() {
		r.assigned[c.ID()] = r.nextSequence()
	}
	return nil
}

// CreateStudent validates the fields and adds a new student.
func (r *Repository) CreateStudent(id, name string, age int, email string) (*models.Student, error) {
	s, err := models.NewStudent(id, name, age, email)
	if err != nil {
		return nil, err
	}
	if err := r.AddStudent(s); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateInstructor validates the fields and adds a new instructor.
func (r *Repository) CreateInstructor(id, name string, age int, email string) (*models.Instructor, error) {
	i, err := models.NewInstructor(id, name, age, email)
	if err != nil {
		return nil, err
	}
	if err := r.AddInstructor(i); err != nil {
		return nil, err
	}
	return i, nil
}

// CreateCourse validates the fields, adds a new course and enrolls the listed students.
//
// An unknown instructor leaves the course unassigned and unknown student IDs are skipped;
// neither fails the create.
func (r *Repository) CreateCourse(id, name, instructorID string, studentIDs []string) (*models.Course, error) {
	c, err := models.NewCourse(id, name, strings.TrimSpace(instructorID))
	if err != nil {
		return nil, err
	}
	if err := r.AddCourse(c); err != nil {
		return nil, err
	}

	for _, sid := range studentIDs {
		sid = strings.TrimSpace(sid)
		if sid == "" {
			continue
		}
		if !r.students.has(sid) {
			r.logger.Warn("student not found, skipping enrollment", "course", c.ID(), "student", sid)
			continue
		}
		r.enroll(sid, c.ID())
	}
	return c, nil
}

// Student returns the student with the given ID.
func (r *Repository) Student(id string) (*models.Student, error) {
	s, ok := r.students.get(id)
	if !ok {
		return nil, notFound(models.KindStudent, id)
	}
	return s, nil
}

// Instructor returns the instructor with the given ID.
func (r *Repository) Instructor(id string) (*models.Instructor, error) {
	i, ok := r.instructors.get(id)
	if !ok {
		return nil, notFound(models.KindInstructor, id)
	}
	return i, nil
}

// Course returns the course with the given ID.
func (r *Repository) Course(id string) (*models.Course, error) {
	c, ok := r.courses.get(id)
	if !ok {
		return nil, notFound(models.KindCourse, id)
	}
	return c, nil
}

// Get returns the record of the given kind and ID.
func (r *Repository) Get(kind models.Kind, id string) (models.Record, error) {
	switch kind {
	case models.KindStudent:
		return r.Student(id)
	case models.KindInstructor:
		return r.Instructor(id)
	case models.KindCourse:
		return r.Course(id)
	default:
		return nil, unknownKind(kind)
	}
}

// Students lists students in insertion order.
func (r *Repository) Students() []*models.Student { return r.students.all() }

// Instructors lists instructors in insertion order.
func (r *Repository) Instructors() []*models.Instructor { return r.instructors.all() }

// Courses lists courses in insertion order.
func (r *Repository) Courses() []*models.Course { return r.courses.all() }

// List returns the records of one kind in insertion order.
func (r *Repository) List(kind models.Kind) ([]models.Record, error) {
	var out []models.Record
	switch kind {
	case models.KindStudent:
		for _, s := range r.students.order {
			out = append(out, s)
		}
	case models.KindInstructor:
		for _, i := range r.instructors.order {
			out = append(out, i)
		}
	case models.KindCourse:
		for _, c := range r.courses.order {
			out = append(out, c)
		}
	default:
		return nil, unknownKind(kind)
	}
	return out, nil
}

// Edit changes one field of a record from raw text.
//
// Students and instructors accept name, age and email; courses accept name.
// A rejected value leaves the record unchanged.
func (r *Repository) Edit(kind models.Kind, id, field, value string) error {
	field = strings.ToLower(strings.TrimSpace(field))
	switch kind {
	case models.KindStudent:
		s, err := r.Student(id)
		if err != nil {
			return err
		}
		return s.Set(field, value)
	case models.KindInstructor:
		i, err := r.Instructor(id)
		if err != nil {
			return err
		}
		return i.Set(field, value)
	case models.KindCourse:
		c, err := r.Course(id)
		if err != nil {
			return err
		}
		return c.Set(field, value)
	default:
		return unknownKind(kind)
	}
}

// Delete removes a record and every relation that mentions it.
//
// Deleting a student drops its enrollments, deleting an instructor unassigns its courses,
// and deleting a course drops its enrollments. An unknown ID returns [shared.ErrNotFound]
// and changes nothing.
func (r *Repository) Delete(kind models.Kind, id string) error {
	switch kind {
	case models.KindStudent:
		if !r.students.remove(id) {
			return notFound(kind, id)
		}
		r.dropEnrollments(func(e Enrollment) bool { return e.StudentID == id })
	case models.KindInstructor:
		if !r.instructors.remove(id) {
			return notFound(kind, id)
		}
		for _, c := range r.courses.order {
			if c.InstructorID() == id {
				c.SetInstructorID("")
				delete(r.assigned, c.ID())
			}
		}
	case models.KindCourse:
		if !r.courses.remove(id) {
			return notFound(kind, id)
		}
		delete(r.assigned, id)
		r.dropEnrollments(func(e Enrollment) bool { return e.CourseID == id })
	default:
		return unknownKind(kind)
	}
	r.logger.Debug("record deleted", "kind", kind, "id", id)
	return nil
}

// SeedCatalog adds catalog courses that are not present yet and returns how many were added.
func (r *Repository) SeedCatalog(catalog []shared.CatalogCourse) int {
	added := 0
	for _, entry := range catalog {
		if r.courses.has(entry.ID) {
			continue
		}
		c, err := models.NewCourse(entry.ID, entry.Name, "")
		if err != nil {
			r.logger.Warn("skipping invalid catalog course", "id", entry.ID, "error", err)
			continue
		}
		r.courses.add(c)
		added++
	}
	return added
}

func (r *Repository) nextSequence() uint64 {
	r.sequence++
	return r.sequence
}

func alreadyExists(kind models.Kind, id string) error {
	return fmt.Errorf("%w: %w: %s %s", shared.ErrValidation, shared.ErrAlreadyExists, strings.ToLower(string(kind)), id)
}

func notFound(kind models.Kind, id string) error {
	return fmt.Errorf("%w: %s %s", shared.ErrNotFound, strings.ToLower(string(kind)), id)
}

func unknownKind(kind models.Kind) error {
	return fmt.Errorf("%w: unknown record kind %q", shared.ErrInvalidArgument, kind)
}
