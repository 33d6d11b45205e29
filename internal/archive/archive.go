package archive

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/registrar/internal/roster"
	"github.com/desertthunder/registrar/internal/shared"
)

// Snapshot describes a stored copy of a roster.
type Snapshot struct {
	ID        string        `json:"id"`
	Sequence  int           `json:"sequence"`
	Label     string        `json:"label,omitempty"`
	Counts    roster.Counts `json:"counts"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store saves and restores roster snapshots.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// NewStore creates a Store over a migrated database. A nil logger discards log output.
func NewStore(db *sql.DB, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{db: db, logger: logger}
}

// NextSequence atomically increments and returns the next sequence number for the given table.
//
// Sequence numbers give snapshots a stable, human-readable order independent of their UUIDs.
func NextSequence(db *sql.DB, table string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequenceTable := table + "_sequence"

	_, err = tx.Exec(fmt.Sprintf("UPDATE %s SET value = value + 1 WHERE id = 1", sequenceTable))
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	var sequence int
	err = tx.QueryRow(fmt.Sprintf("SELECT value FROM %s WHERE id = 1", sequenceTable)).Scan(&sequence)
	if err != nil {
		return 0, fmt.Errorf("failed to get sequence value: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sequence transaction: %w", err)
	}

	return sequence, nil
}

// Save copies every record and relation of r into a new snapshot.
func (s *Store) Save(label string, r *roster.Repository) (*Snapshot, error) {
	sequence, err := NextSequence(s.db, "snapshots")
	if err != nil {
		return nil, fmt.Errorf("failed to generate sequence: %w", err)
	}

	snap := &Snapshot{
		ID:        shared.GenerateID(),
		Sequence:  sequence,
		Label:     label,
		Counts:    r.Counts(),
		CreatedAt: time.Now().UTC(),
	}
	doc := r.Document()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO snapshots (id, sequence, label, student_count, instructor_count, course_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.Sequence, snap.Label, snap.Counts.Students, snap.Counts.Instructors, snap.Counts.Courses, snap.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for pos, rec := range doc.Students {
		_, err := tx.Exec(`
			INSERT INTO snapshot_students (snapshot_id, position, student_id, name, age, email)
			VALUES (?, ?, ?, ?, ?, ?)
		`, snap.ID, pos, rec.StudentID, rec.Name, ageOf(rec.Age), rec.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to insert student %s: %w", rec.StudentID, err)
		}
	}

	assignedSeq := make(map[string]int)
	for pos, rec := range doc.Instructors {
		_, err := tx.Exec(`
			INSERT INTO snapshot_instructors (snapshot_id, position, instructor_id, name, age, email)
			VALUES (?, ?, ?, ?, ?, ?)
		`, snap.ID, pos, rec.InstructorID, rec.Name, ageOf(rec.Age), rec.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to insert instructor %s: %w", rec.InstructorID, err)
		}
		for n, cid := range rec.AssignedCourses {
			assignedSeq[cid] = n + 1
		}
	}

	for pos, rec := range doc.Courses {
		var instructorID sql.NullString
		if rec.InstructorID != nil {
			instructorID = sql.NullString{String: *rec.InstructorID, Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO snapshot_courses (snapshot_id, position, course_id, course_name, instructor_id, assigned_seq)
			VALUES (?, ?, ?, ?, ?, ?)
		`, snap.ID, pos, rec.CourseID, rec.CourseName, instructorID, assignedSeq[rec.CourseID])
		if err != nil {
			return nil, fmt.Errorf("failed to insert course %s: %w", rec.CourseID, err)
		}
	}

	for pos, e := range r.Enrollments() {
		_, err := tx.Exec(`
			INSERT INTO snapshot_enrollments (snapshot_id, position, student_id, course_id)
			VALUES (?, ?, ?, ?)
		`, snap.ID, pos, e.StudentID, e.CourseID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert enrollment %s/%s: %w", e.StudentID, e.CourseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	s.logger.Info("snapshot saved", "id", snap.ID, "sequence", snap.Sequence, "label", label)
	return snap, nil
}

// Get retrieves a snapshot header by ID.
func (s *Store) Get(id string) (*Snapshot, error) {
	query := `
		SELECT id, sequence, label, student_count, instructor_count, course_count, created_at
		FROM snapshots
		WHERE id = ?
	`
	return s.scanOne(s.db.QueryRow(query, id))
}

// Latest retrieves the most recently saved snapshot header.
func (s *Store) Latest() (*Snapshot, error) {
	query := `
		SELECT id, sequence, label, student_count, instructor_count, course_count, created_at
		FROM snapshots
		ORDER BY sequence DESC
		LIMIT 1
	`
	return s.scanOne(s.db.QueryRow(query))
}

// List retrieves every snapshot header, newest first.
func (s *Store) List() ([]*Snapshot, error) {
	query := `
		SELECT id, sequence, label, student_count, instructor_count, course_count, created_at
		FROM snapshots
		ORDER BY sequence DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return snapshots, nil
}

// Delete removes a snapshot and all of its rows.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec("DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrSnapshotNotFound, id)
	}

	s.logger.Info("snapshot deleted", "id", id)
	return nil
}

// Restore replaces the contents of r with the snapshot's records and relations.
//
// r is left untouched if the snapshot cannot be read.
func (s *Store) Restore(id string, r *roster.Repository) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	doc, err := s.document(id)
	if err != nil {
		return err
	}

	if err := r.Restore(doc); err != nil {
		return fmt.Errorf("failed to restore snapshot %s: %w", id, err)
	}

	s.logger.Info("snapshot restored", "id", id)
	return nil
}

// document rebuilds the JSON form of a snapshot.
func (s *Store) document(id string) (*roster.Document, error) {
	enrollments, err := s.enrollments(id)
	if err != nil {
		return nil, err
	}

	registered := make(map[string][]string)
	enrolled := make(map[string][]string)
	for _, e := range enrollments {
		registered[e.StudentID] = append(registered[e.StudentID], e.CourseID)
		enrolled[e.CourseID] = append(enrolled[e.CourseID], e.StudentID)
	}

	doc := &roster.Document{}

	err = s.each(`
		SELECT student_id, name, age, email FROM snapshot_students
		WHERE snapshot_id = ? ORDER BY position
	`, id, func(rows *sql.Rows) error {
		var rec roster.StudentRecord
		var age int
		if err := rows.Scan(&rec.StudentID, &rec.Name, &age, &rec.Email); err != nil {
			return err
		}
		rec.Age = &age
		rec.RegisteredCourses = registered[rec.StudentID]
		doc.Students = append(doc.Students, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read students: %w", err)
	}

	assigned := make(map[string][]string)
	err = s.each(`
		SELECT course_id, course_name, instructor_id FROM snapshot_courses
		WHERE snapshot_id = ? ORDER BY position
	`, id, func(rows *sql.Rows) error {
		var rec roster.CourseRecord
		var instructorID sql.NullString
		if err := rows.Scan(&rec.CourseID, &rec.CourseName, &instructorID); err != nil {
			return err
		}
		if instructorID.Valid {
			rec.InstructorID = &instructorID.String
		}
		rec.EnrolledStudents = enrolled[rec.CourseID]
		doc.Courses = append(doc.Courses, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read courses: %w", err)
	}

	err = s.each(`
		SELECT instructor_id, course_id FROM snapshot_courses
		WHERE snapshot_id = ? AND instructor_id IS NOT NULL ORDER BY assigned_seq, position
	`, id, func(rows *sql.Rows) error {
		var instructorID, courseID string
		if err := rows.Scan(&instructorID, &courseID); err != nil {
			return err
		}
		assigned[instructorID] = append(assigned[instructorID], courseID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read assignments: %w", err)
	}

	err = s.each(`
		SELECT instructor_id, name, age, email FROM snapshot_instructors
		WHERE snapshot_id = ? ORDER BY position
	`, id, func(rows *sql.Rows) error {
		var rec roster.InstructorRecord
		var age int
		if err := rows.Scan(&rec.InstructorID, &rec.Name, &age, &rec.Email); err != nil {
			return err
		}
		rec.Age = &age
		rec.AssignedCourses = assigned[rec.InstructorID]
		doc.Instructors = append(doc.Instructors, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read instructors: %w", err)
	}

	return doc, nil
}

func (s *Store) enrollments(id string) ([]roster.Enrollment, error) {
	var out []roster.Enrollment
	err := s.each(`
		SELECT student_id, course_id FROM snapshot_enrollments
		WHERE snapshot_id = ? ORDER BY position
	`, id, func(rows *sql.Rows) error {
		var e roster.Enrollment
		if err := rows.Scan(&e.StudentID, &e.CourseID); err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read enrollments: %w", err)
	}
	return out, nil
}

// each runs query with a snapshot ID and calls scan for every row.
func (s *Store) each(query, id string, scan func(*sql.Rows) error) error {
	rows, err := s.db.Query(query, id)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// scanOne scans a single row into a [Snapshot]
func (s *Store) scanOne(row *sql.Row) (*Snapshot, error) {
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrSnapshotNotFound
	}
	return snap, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var snap Snapshot
	err := row.Scan(
		&snap.ID,
		&snap.Sequence,
		&snap.Label,
		&snap.Counts.Students,
		&snap.Counts.Instructors,
		&snap.Counts.Courses,
		&snap.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan snapshot: %w", err)
	}
	return &snap, nil
}

func ageOf(age *int) int {
	if age == nil {
		return 0
	}
	return *age
}
