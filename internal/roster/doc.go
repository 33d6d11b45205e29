// Package roster holds the session's students, instructors and courses.
//
// A [Repository] stores each record once, in insertion order, keyed by ID within its kind.
// Relationships live beside the records rather than inside them:
//   - enrollment is an ordered set of (student ID, course ID) pairs, from which both a student's
//     registered courses and a course's enrolled students are derived
//   - a course's instructor is the course's instructor ID; an instructor's assigned courses are
//     derived from it and ordered by when each assignment was made
//
// [Document] is the JSON form of a repository. [Repository.Save] and [Repository.Load] move whole
// repositories to and from disk; a load that fails leaves the repository as it was.
package roster
