package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/desertthunder/registrar/internal/models"
)

var (
	_ list.Item = recordItem{}
)

// recordItem wraps a flattened record to implement [list.Item].
type recordItem struct {
	kind models.Kind
	row  formatter.Row
}

func (i recordItem) FilterValue() string { return i.row.Name }
func (i recordItem) Title() string {
	return fmt.Sprintf("%s %s  %s", styles.Badge(i.kind), i.row.ID, i.row.Name)
}

func (i recordItem) Description() string {
	var parts []string
	switch i.kind {
	case models.KindCourse:
		instructor := i.row.Instructor
		if instructor == "" {
			instructor = "unassigned"
		}
		parts = append(parts, "Instructor: "+instructor)
		if i.row.Students != "" {
			parts = append(parts, "Students: "+i.row.Students)
		}
	default:
		parts = append(parts, "Age "+i.row.Age, i.row.Email)
		if i.row.Courses != "" {
			parts = append(parts, "Courses: "+i.row.Courses)
		}
	}
	return strings.Join(parts, " • ")
}

// toItems flattens records into list items.
func toItems(src formatter.Source, records []models.Record) []list.Item {
	rows := formatter.Rows(src, records)
	items := make([]list.Item, len(rows))
	for n, row := range rows {
		items[n] = recordItem{kind: records[n].Kind(), row: row}
	}
	return items
}
