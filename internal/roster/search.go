package roster

import (
	"strings"

	"github.com/desertthunder/registrar/internal/models"
)

// Search returns records whose ID or name contains term, ignoring case.
//
// Students come first, then instructors, then courses, each in insertion order.
// An empty term matches every record.
func (r *Repository) Search(term string) []models.Record {
	needle := strings.ToLower(strings.TrimSpace(term))
	matches := func(rec models.Record) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(rec.ID()), needle) ||
			strings.Contains(strings.ToLower(rec.Name()), needle)
	}

	var out []models.Record
	for _, s := range r.students.order {
		if matches(s) {
			out = append(out, s)
		}
	}
	for _, i := range r.instructors.order {
		if matches(i) {
			out = append(out, i)
		}
	}
	for _, c := range r.courses.order {
		if matches(c) {
			out = append(out, c)
		}
	}
	return out
}
