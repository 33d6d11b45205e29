package roster

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

// Document is the JSON form of a repository.
//
// References are stored as IDs. Missing top-level keys decode as empty collections.
type Document struct {
	Students    []StudentRecord    `json:"students"`
	Instructors []InstructorRecord `json:"instructors"`
	Courses     []CourseRecord     `json:"courses"`
}

// StudentRecord is a flattened [models.Student].
type StudentRecord struct {
	StudentID         string   `json:"student_id"`
	Name              string   `json:"name"`
	Age               *int     `json:"age"`
	Email             string   `json:"email"`
	RegisteredCourses []string `json:"registered_courses"`
}

// InstructorRecord is a flattened [models.Instructor].
type InstructorRecord struct {
	InstructorID    string   `json:"instructor_id"`
	Name            string   `json:"name"`
	Age             *int     `json:"age"`
	Email           string   `json:"email"`
	AssignedCourses []string `json:"assigned_courses"`
}

// CourseRecord is a flattened [models.Course]. InstructorID is null when the course is unassigned.
//
// EnrolledStudentIDs reads the older enrolled_students_ids key and is never written.
type CourseRecord struct {
	CourseID           string   `json:"course_id"`
	CourseName         string   `json:"course_name"`
	InstructorID       *string  `json:"instructor_id"`
	EnrolledStudents   []string `json:"enrolled_students"`
	EnrolledStudentIDs []string `json:"enrolled_students_ids,omitempty"`
}

// Document flattens the repository.
func (r *Repository) Document() *Document {
	doc := &Document{
		Students:    make([]StudentRecord, 0, r.students.len()),
		Instructors: make([]InstructorRecord, 0, r.instructors.len()),
		Courses:     make([]CourseRecord, 0, r.courses.len()),
	}

	for _, s := range r.students.order {
		age := s.Age()
		doc.Students = append(doc.Students, StudentRecord{
			StudentID:         s.ID(),
			Name:              s.Name(),
			Age:               &age,
			Email:             s.Email(),
			RegisteredCourses: courseIDs(r.RegisteredCourses(s.ID())),
		})
	}

	for _, i := range r.instructors.order {
		age := i.Age()
		doc.Instructors = append(doc.Instructors, InstructorRecord{
			InstructorID:    i.ID(),
			Name:            i.Name(),
			Age:             &age,
			Email:           i.Email(),
			AssignedCourses: courseIDs(r.AssignedCourses(i.ID())),
		})
	}

	for _, c := range r.courses.order {
		var instructorID *string
		if c.HasInstructor() {
			id := c.InstructorID()
			instructorID = &id
		}
		students := r.EnrolledStudents(c.ID())
		ids := make([]string, 0, len(students))
		for _, s := range students {
			ids = append(ids, s.ID())
		}
		doc.Courses = append(doc.Courses, CourseRecord{
			CourseID:         c.ID(),
			CourseName:       c.Name(),
			InstructorID:     instructorID,
			EnrolledStudents: ids,
		})
	}

	return doc
}

// Encode renders the repository as a JSON document.
func (r *Repository) Encode(pretty bool) ([]byte, error) {
	data, err := shared.MarshalJSON(r.Document(), pretty)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Decode replaces the repository's contents with a JSON document.
func (r *Repository) Decode(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrMalformedDocument, err)
	}
	return r.Restore(&doc)
}

// Restore replaces the repository's contents with doc.
//
// Instructors and students are built first, then courses, then relations. References to
// missing records are dropped and logged, as are records repeating an earlier ID. A record
// with an invalid field fails the restore and the repository keeps its previous contents.
func (r *Repository) Restore(doc *Document) error {
	next := New(r.logger)
	if err := next.restore(doc); err != nil {
		return err
	}
	*r = *next
	return nil
}

func (r *Repository) restore(doc *Document) error {
	for n, rec := range doc.Instructors {
		i, err := models.NewInstructor(rec.InstructorID, rec.Name, r.ageOrDefault(models.KindInstructor, rec.InstructorID, rec.Age), rec.Email)
		if err != nil {
			return fmt.Errorf("%w: instructor %d: %w", shared.ErrMalformedDocument, n, err)
		}
		if !r.instructors.add(i) {
			r.logger.Warn("duplicate instructor skipped", "id", i.ID())
		}
	}

	for n, rec := range doc.Students {
		s, err := models.NewStudent(rec.StudentID, rec.Name, r.ageOrDefault(models.KindStudent, rec.StudentID, rec.Age), rec.Email)
		if err != nil {
			return fmt.Errorf("%w: student %d: %w", shared.ErrMalformedDocument, n, err)
		}
		if !r.students.add(s) {
			r.logger.Warn("duplicate student skipped", "id", s.ID())
		}
	}

	for n, rec := range doc.Courses {
		c, err := models.NewCourse(rec.CourseID, rec.CourseName, "")
		if err != nil {
			return fmt.Errorf("%w: course %d: %w", shared.ErrMalformedDocument, n, err)
		}
		if !r.courses.add(c) {
			r.logger.Warn("duplicate course skipped", "id", c.ID())
			continue
		}
		if rec.InstructorID == nil {
			continue
		}
		iid := strings.TrimSpace(*rec.InstructorID)
		if iid == "" {
			continue
		}
		if !r.instructors.has(iid) {
			r.logger.Warn("dangling instructor reference dropped", "course", c.ID(), "instructor", iid)
			continue
		}
		c.SetInstructorID(iid)
	}

	r.restoreAssignments(doc)
	r.restoreEnrollments(doc)
	return nil
}

// restoreAssignments numbers assignments in each instructor's listed order, then picks up
// courses that name an instructor who does not list them.
//
// An instructor listing an unassigned course becomes its instructor.
func (r *Repository) restoreAssignments(doc *Document) {
	seen := make(map[string]bool)
	for _, rec := range doc.Instructors {
		iid := strings.TrimSpace(rec.InstructorID)
		if seen[iid] {
			continue
		}
		seen[iid] = true

		for _, cid := range rec.AssignedCourses {
			c, ok := r.courses.get(strings.TrimSpace(cid))
			if !ok {
				r.logger.Warn("dangling assigned course dropped", "instructor", iid, "course", cid)
				continue
			}
			if !c.HasInstructor() {
				c.SetInstructorID(iid)
			}
			if c.InstructorID() != iid {
				r.logger.Warn("assigned course belongs to another instructor", "instructor", iid, "course", cid, "owner", c.InstructorID())
				continue
			}
			if _, done := r.assigned[c.ID()]; !done {
				r.assigned[c.ID()] = r.nextSequence()
			}
		}
	}

	for _, c := range r.courses.order {
		if _, done := r.assigned[c.ID()]; c.HasInstructor() && !done {
			r.assigned[c.ID()] = r.nextSequence()
		}
	}
}

// restoreEnrollments rebuilds the enrollment relation from both sides of the document.
//
// Each student's course list and each course's student list is an ordering constraint;
// the merged relation satisfies all of them when the document is consistent.
func (r *Repository) restoreEnrollments(doc *Document) {
	var chains [][]Enrollment

	seen := make(map[string]bool)
	for _, rec := range doc.Students {
		sid := strings.TrimSpace(rec.StudentID)
		if seen[sid] {
			continue
		}
		seen[sid] = true

		var chain []Enrollment
		for _, cid := range rec.RegisteredCourses {
			if cid = strings.TrimSpace(cid); !r.courses.has(cid) {
				r.logger.Warn("dangling registered course dropped", "student", sid, "course", cid)
				continue
			}
			chain = appendUnique(chain, Enrollment{StudentID: sid, CourseID: cid})
		}
		chains = append(chains, chain)
	}

	seen = make(map[string]bool)
	for _, rec := range doc.Courses {
		cid := strings.TrimSpace(rec.CourseID)
		if seen[cid] {
			continue
		}
		seen[cid] = true

		ids := append(append([]string{}, rec.EnrolledStudents...), rec.EnrolledStudentIDs...)

		var chain []Enrollment
		for _, sid := range ids {
			if sid = strings.TrimSpace(sid); sid == "" {
				continue
			}
			if !r.students.has(sid) {
				r.logger.Warn("dangling enrolled student dropped", "course", cid, "student", sid)
				continue
			}
			chain = appendUnique(chain, Enrollment{StudentID: sid, CourseID: cid})
		}
		chains = append(chains, chain)
	}

	r.enrollments = mergeChains(chains)
}

func (r *Repository) ageOrDefault(kind models.Kind, id string, age *int) int {
	if age == nil {
		r.logger.Warn("missing age defaulted to 0", "kind", kind, "id", id)
		return 0
	}
	return *age
}

// mergeChains orders the union of the chains so each chain's order is kept.
//
// Ties go to the pair seen first. If the chains contradict each other the earliest
// remaining pair is taken and merging continues.
func mergeChains(chains [][]Enrollment) []Enrollment {
	var base []Enrollment
	known := make(map[Enrollment]bool)
	next := make(map[Enrollment][]Enrollment)
	indegree := make(map[Enrollment]int)

	for _, chain := range chains {
		for i, e := range chain {
			if !known[e] {
				known[e] = true
				base = append(base, e)
			}
			if i > 0 {
				next[chain[i-1]] = append(next[chain[i-1]], e)
				indegree[e]++
			}
		}
	}

	out := make([]Enrollment, 0, len(base))
	done := make(map[Enrollment]bool, len(base))
	for len(out) < len(base) {
		pick := -1
		for i, e := range base {
			if !done[e] && indegree[e] == 0 {
				pick = i
				break
			}
		}
		if pick < 0 {
			for i, e := range base {
				if !done[e] {
					pick = i
					break
				}
			}
		}

		e := base[pick]
		done[e] = true
		out = append(out, e)
		for _, n := range next[e] {
			indegree[n]--
		}
	}
	return out
}

func appendUnique(chain []Enrollment, e Enrollment) []Enrollment {
	for _, existing := range chain {
		if existing == e {
			return chain
		}
	}
	return append(chain, e)
}

func courseIDs(courses []*models.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID())
	}
	return ids
}
