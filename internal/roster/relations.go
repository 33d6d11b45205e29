package roster

import (
	"fmt"
	"sort"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

// RegisterCourse enrolls a student in a course. Registering twice is a no-op.
func (r *Repository) RegisterCourse(studentID, courseID string) error {
	if _, err := r.Student(studentID); err != nil {
		return err
	}
	if _, err := r.Course(courseID); err != nil {
		return err
	}
	r.enroll(studentID, courseID)
	return nil
}

// UnregisterCourse removes a student from a course.
func (r *Repository) UnregisterCourse(studentID, courseID string) error {
	if _, err := r.Student(studentID); err != nil {
		return err
	}
	if _, err := r.Course(courseID); err != nil {
		return err
	}
	if !r.IsEnrolled(studentID, courseID) {
		return fmt.Errorf("%w: student %s is not registered for course %s", shared.ErrNotFound, studentID, courseID)
	}
	r.dropEnrollments(func(e Enrollment) bool {
		return e.StudentID == studentID && e.CourseID == courseID
	})
	return nil
}

// AssignCourse makes an instructor the instructor of a course.
//
// Assigning a course to the instructor it already has is a no-op; assigning it to a different
// instructor moves it to the end of the new instructor's list.
func (r *Repository) AssignCourse(instructorID, courseID string) error {
	if _, err := r.Instructor(instructorID); err != nil {
		return err
	}
	c, err := r.Course(courseID)
	if err != nil {
		return err
	}
	if c.InstructorID() == instructorID {
		return nil
	}
	c.SetInstructorID(instructorID)
	r.assigned[courseID] = r.nextSequence()
	return nil
}

// UnassignCourse clears a course's instructor.
func (r *Repository) UnassignCourse(courseID string) error {
	c, err := r.Course(courseID)
	if err != nil {
		return err
	}
	c.SetInstructorID("")
	delete(r.assigned, courseID)
	return nil
}

// IsEnrolled reports whether the pair is in the enrollment relation.
func (r *Repository) IsEnrolled(studentID, courseID string) bool {
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true
		}
	}
	return false
}

// Enrollments returns a copy of the enrollment relation in registration order.
func (r *Repository) Enrollments() []Enrollment {
	out := make([]Enrollment, len(r.enrollments))
	copy(out, r.enrollments)
	return out
}

// RegisteredCourses lists a student's courses in registration order.
func (r *Repository) RegisteredCourses(studentID string) []*models.Course {
	var out []*models.Course
	for _, e := range r.enrollments {
		if e.StudentID != studentID {
			continue
		}
		if c, ok := r.courses.get(e.CourseID); ok {
			out = append(out, c)
		}
	}
	return out
}

// EnrolledStudents lists a course's students in registration order.
func (r *Repository) EnrolledStudents(courseID string) []*models.Student {
	var out []*models.Student
	for _, e := range r.enrollments {
		if e.CourseID != courseID {
			continue
		}
		if s, ok := r.students.get(e.StudentID); ok {
			out = append(out, s)
		}
	}
	return out
}

// AssignedCourses lists an instructor's courses in the order they were assigned.
func (r *Repository) AssignedCourses(instructorID string) []*models.Course {
	var out []*models.Course
	for _, c := range r.courses.order {
		if c.InstructorID() == instructorID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return r.assigned[out[i].ID()] < r.assigned[out[j].ID()]
	})
	return out
}

// InstructorOf returns a course's instructor, or nil when it has none.
func (r *Repository) InstructorOf(courseID string) *models.Instructor {
	c, ok := r.courses.get(courseID)
	if !ok || !c.HasInstructor() {
		return nil
	}
	i, ok := r.instructors.get(c.InstructorID())
	if !ok {
		return nil
	}
	return i
}

func (r *Repository) enroll(studentID, courseID string) {
	if r.IsEnrolled(studentID, courseID) {
		return
	}
	r.enrollments = append(r.enrollments, Enrollment{StudentID: studentID, CourseID: courseID})
}

func (r *Repository) dropEnrollments(match func(Enrollment) bool) {
	kept := r.enrollments[:0]
	for _, e := range r.enrollments {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	r.enrollments = kept
}
