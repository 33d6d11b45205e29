package models

import (
	"fmt"

	"github.com/desertthunder/registrar/internal/shared"
)

// Kind tags a [Record] variant.
type Kind string

const (
	KindStudent    Kind = "Student"
	KindInstructor Kind = "Instructor"
	KindCourse     Kind = "Course"
)

// Record is any entity held by the roster.
type Record interface {
	Kind() Kind   // Kind reports which collection the record belongs to
	ID() string   // ID returns the record's unique key within its kind
	Name() string // Name returns the display name
}

// Person holds the validated fields shared by students and instructors.
type Person struct {
	name  string
	age   int
	email string
}

// NewPerson validates every field and returns a Person only if all of them pass.
func NewPerson(name string, age int, email string) (Person, error) {
	name, err := ValidateName(name)
	if err != nil {
		return Person{}, err
	}
	age, err = ValidateAge(age)
	if err != nil {
		return Person{}, err
	}
	email, err = ValidateEmail(email)
	if err != nil {
		return Person{}, err
	}
	return Person{name: name, age: age, email: email}, nil
}

func (p Person) Name() string  { return p.name }
func (p Person) Age() int      { return p.age }
func (p Person) Email() string { return p.email }

// SetName replaces the name; an invalid name leaves the previous value in place.
func (p *Person) SetName(name string) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	p.name = name
	return nil
}

// SetAge replaces the age; an invalid age leaves the previous value in place.
func (p *Person) SetAge(age int) error {
	age, err := ValidateAge(age)
	if err != nil {
		return err
	}
	p.age = age
	return nil
}

// SetEmail replaces the email; an invalid email leaves the previous value in place.
func (p *Person) SetEmail(email string) error {
	email, err := ValidateEmail(email)
	if err != nil {
		return err
	}
	p.email = email
	return nil
}

// Set edits a field from raw text: name, age or email.
func (p *Person) Set(field, value string) error {
	switch field {
	case FieldName:
		return p.SetName(value)
	case FieldAge:
		age, err := ParseAge(value)
		if err != nil {
			return err
		}
		return p.SetAge(age)
	case FieldEmail:
		return p.SetEmail(value)
	default:
		return fmt.Errorf("%w: %q (expected name, age or email)", shared.ErrUnknownField, field)
	}
}
