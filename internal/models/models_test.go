package models

import (
	"testing"

	"github.com/desertthunder/registrar/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudent(t *testing.T) {
	t.Run("NewStudent", func(t *testing.T) {
		s, err := NewStudent("S1", "Ann", 20, "ann@x.com")
		require.NoError(t, err)

		assert.Equal(t, KindStudent, s.Kind())
		assert.Equal(t, "S1", s.ID())
		assert.Equal(t, "Ann", s.Name())
		assert.Equal(t, 20, s.Age())
		assert.Equal(t, "ann@x.com", s.Email())
	})

	t.Run("NewStudent fails atomically", func(t *testing.T) {
		tc := []struct {
			name  string
			id    string
			pname string
			age   int
			email string
		}{
			{name: "missing id", id: "", pname: "Ann", age: 20, email: "ann@x.com"},
			{name: "missing name", id: "S1", pname: "", age: 20, email: "ann@x.com"},
			{name: "negative age", id: "S1", pname: "Ann", age: -1, email: "ann@x.com"},
			{name: "bad email", id: "S1", pname: "Ann", age: 20, email: "ann.x.com"},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				s, err := NewStudent(tt.id, tt.pname, tt.age, tt.email)
				assert.Nil(t, s)
				assert.ErrorIs(t, err, shared.ErrValidation)
			})
		}
	})

	t.Run("implements Record", func(t *testing.T) {
		s, err := NewStudent("S1", "Ann", 20, "ann@x.com")
		require.NoError(t, err)

		var r Record = s
		assert.Equal(t, "Ann", r.Name())
	})
}

func TestInstructor(t *testing.T) {
	i, err := NewInstructor("I1", "Dr. Smith", 45, "smith@uni.edu")
	require.NoError(t, err)

	assert.Equal(t, KindInstructor, i.Kind())
	assert.Equal(t, "I1", i.ID())
	assert.Equal(t, "Dr. Smith", i.Name())

	_, err = NewInstructor("I2", "Dr. Who", 45, "who@")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestPersonSet(t *testing.T) {
	newStudent := func(t *testing.T) *Student {
		t.Helper()
		s, err := NewStudent("S1", "Ann", 20, "ann@x.com")
		require.NoError(t, err)
		return s
	}

	t.Run("edits each field", func(t *testing.T) {
		s := newStudent(t)

		require.NoError(t, s.Set(FieldName, "Annie"))
		require.NoError(t, s.Set(FieldAge, "21"))
		require.NoError(t, s.Set(FieldEmail, "annie@x.com"))

		assert.Equal(t, "Annie", s.Name())
		assert.Equal(t, 21, s.Age())
		assert.Equal(t, "annie@x.com", s.Email())
	})

	t.Run("failed edit keeps prior value", func(t *testing.T) {
		s := newStudent(t)

		assert.ErrorIs(t, s.Set(FieldAge, "-5"), shared.ErrValidation)
		assert.ErrorIs(t, s.Set(FieldAge, "abc"), shared.ErrValidation)
		assert.ErrorIs(t, s.Set(FieldEmail, "a@b"), shared.ErrValidation)
		assert.ErrorIs(t, s.Set(FieldName, " "), shared.ErrValidation)

		assert.Equal(t, "Ann", s.Name())
		assert.Equal(t, 20, s.Age())
		assert.Equal(t, "ann@x.com", s.Email())
	})

	t.Run("unknown field", func(t *testing.T) {
		s := newStudent(t)
		assert.ErrorIs(t, s.Set("phone", "555"), shared.ErrUnknownField)
		assert.ErrorIs(t, s.Set(FieldID, "S9"), shared.ErrUnknownField)
	})
}

func TestCourse(t *testing.T) {
	t.Run("NewCourse without instructor", func(t *testing.T) {
		c, err := NewCourse("C1", "Algebra", "")
		require.NoError(t, err)

		assert.Equal(t, KindCourse, c.Kind())
		assert.Equal(t, "C1", c.ID())
		assert.Equal(t, "Algebra", c.Name())
		assert.False(t, c.HasInstructor())
	})

	t.Run("instructor reference", func(t *testing.T) {
		c, err := NewCourse("C1", "Algebra", "I1")
		require.NoError(t, err)
		assert.Equal(t, "I1", c.InstructorID())

		c.SetInstructorID("")
		assert.False(t, c.HasInstructor())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewCourse("", "Algebra", "")
		assert.ErrorIs(t, err, shared.ErrValidation)

		_, err = NewCourse("C1", "", "")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("Set", func(t *testing.T) {
		c, err := NewCourse("C1", "Algebra", "")
		require.NoError(t, err)

		require.NoError(t, c.Set(FieldName, "Algebra II"))
		assert.Equal(t, "Algebra II", c.Name())

		assert.ErrorIs(t, c.Set(FieldName, ""), shared.ErrValidation)
		assert.Equal(t, "Algebra II", c.Name())

		assert.ErrorIs(t, c.Set(FieldAge, "3"), shared.ErrUnknownField)
	})
}
