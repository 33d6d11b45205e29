package models

// Student is a [Person] enrolled under a student ID.
type Student struct {
	Person
	id string
}

// NewStudent validates the ID and person fields and builds a Student.
func NewStudent(id, name string, age int, email string) (*Student, error) {
	id, err := ValidateID(id)
	if err != nil {
		return nil, err
	}
	person, err := NewPerson(name, age, email)
	if err != nil {
		return nil, err
	}
	return &Student{Person: person, id: id}, nil
}

func (s *Student) Kind() Kind { return KindStudent }
func (s *Student) ID() string { return s.id }
