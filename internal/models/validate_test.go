package models

import (
	"errors"
	"testing"

	"github.com/desertthunder/registrar/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAge(t *testing.T) {
	t.Run("accepts non-negative ages", func(t *testing.T) {
		for _, age := range []int{0, 1, 20, 99, 150} {
			got, err := ValidateAge(age)
			require.NoError(t, err)
			assert.Equal(t, age, got)
		}
	})

	t.Run("rejects negative ages", func(t *testing.T) {
		for _, age := range []int{-1, -20} {
			_, err := ValidateAge(age)
			require.Error(t, err)
			assert.ErrorIs(t, err, shared.ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, FieldAge, verr.Field)
		}
	})
}

func TestParseAge(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "whole number", input: "20", want: 20},
		{name: "zero", input: "0", want: 0},
		{name: "surrounding whitespace", input: " 42 ", want: 42},
		{name: "negative", input: "-3", wantErr: true},
		{name: "fractional", input: "20.5", wantErr: true},
		{name: "non-numeric", input: "twenty", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAge(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, shared.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tc := []struct {
		input string
		valid bool
	}{
		{input: "a@b.com", valid: true},
		{input: "ann@x.com", valid: true},
		{input: "first.last-1@mail.example.org", valid: true},
		{input: "a@b", valid: false},
		{input: "a.b.com", valid: false},
		{input: "a@b@c.com", valid: false},
		{input: "@b.com", valid: false},
		{input: "a@.", valid: false},
		{input: "a@b.", valid: false},
		{input: "", valid: false},
	}

	for _, tt := range tc {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidateEmail(tt.input)
			if !tt.valid {
				assert.ErrorIs(t, err, shared.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValidateName(t *testing.T) {
	got, err := ValidateName("  Ann  ")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)

	for _, blank := range []string{"", "   "} {
		_, err := ValidateName(blank)
		assert.ErrorIs(t, err, shared.ErrValidation)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: FieldEmail, Value: "nope", Reason: "must look like name@domain.tld"}

	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), `"nope"`)
	assert.True(t, errors.Is(err, shared.ErrValidation))
}
