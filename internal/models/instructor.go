package models

// Instructor is a [Person] who teaches courses, keyed by an instructor ID.
type Instructor struct {
	Person
	id string
}

// NewInstructor validates the ID and person fields and builds an Instructor.
func NewInstructor(id, name string, age int, email string) (*Instructor, error) {
	id, err := ValidateID(id)
	if err != nil {
		return nil, err
	}
	person, err := NewPerson(name, age, email)
	if err != nil {
		return nil, err
	}
	return &Instructor{Person: person, id: id}, nil
}

func (i *Instructor) Kind() Kind { return KindInstructor }
func (i *Instructor) ID() string { return i.id }
