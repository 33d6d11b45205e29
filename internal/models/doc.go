// Package models defines the records kept by the registrar and the validation rules they share.
//
// The package contains three record variants, all implementing [Record]:
//   - [Student] : a [Person] identified by a student ID
//   - [Instructor] : a [Person] identified by an instructor ID
//   - [Course] : a course ID and name with an optional instructor reference
//
// [Person] carries the name, age and email fields common to students and instructors,
// and every constructor and setter runs the same validators ([ValidateName], [ValidateAge], [ValidateEmail]).
// A failing validator returns a [ValidationError] and leaves the record untouched.
//
// Relationships between records (enrollment, assigned courses) are not stored here;
// they belong to the roster that owns the records.
package models
