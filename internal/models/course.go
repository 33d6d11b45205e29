package models

import (
	"fmt"

	"github.com/desertthunder/registrar/internal/shared"
)

// Course is a catalog entry with an optional instructor.
//
// The instructor is held by ID; an empty ID means unassigned. The ID is not checked against
// any instructor here, so a course may point at an instructor that does not exist.
type Course struct {
	id           string
	name         string
	instructorID string
}

// NewCourse validates the ID and name and builds a Course.
func NewCourse(id, name, instructorID string) (*Course, error) {
	id, err := ValidateID(id)
	if err != nil {
		return nil, err
	}
	name, err = ValidateName(name)
	if err != nil {
		return nil, err
	}
	return &Course{id: id, name: name, instructorID: instructorID}, nil
}

func (c *Course) Kind() Kind           { return KindCourse }
func (c *Course) ID() string           { return c.id }
func (c *Course) Name() string         { return c.name }
func (c *Course) InstructorID() string { return c.instructorID }

// HasInstructor reports whether an instructor ID is set.
func (c *Course) HasInstructor() bool { return c.instructorID != "" }

// SetInstructorID points the course at an instructor; an empty ID clears it.
func (c *Course) SetInstructorID(id string) { c.instructorID = id }

// SetName replaces the course name; an invalid name leaves the previous value in place.
func (c *Course) SetName(name string) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	c.name = name
	return nil
}

// Set edits a course field from raw text. Only the name is editable.
func (c *Course) Set(field, value string) error {
	if field != FieldName {
		return fmt.Errorf("%w: %q (courses only allow name)", shared.ErrUnknownField, field)
	}
	return c.SetName(value)
}
