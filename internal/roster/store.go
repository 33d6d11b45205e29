package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/registrar/internal/shared"
)

// Save encodes the repository in full and atomically replaces the file at path.
func (r *Repository) Save(path string, pretty bool) error {
	data, err := r.Encode(pretty)
	if err != nil {
		return err
	}
	if err := shared.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	counts := r.Counts()
	r.logger.Debug("saved roster", "path", path, "students", counts.Students, "instructors", counts.Instructors, "courses", counts.Courses)
	return nil
}

// Load replaces the repository's contents with the document at path.
//
// A missing file matches [os.ErrNotExist]. On any failure the repository is unchanged.
func (r *Repository) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := r.Decode(data); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	counts := r.Counts()
	r.logger.Debug("loaded roster", "path", path, "students", counts.Students, "instructors", counts.Instructors, "courses", counts.Courses)
	return nil
}

// Open loads path into a new repository. When path does not exist the repository starts
// empty and, if catalog is non-empty, seeded with it.
func Open(path string, catalog []shared.CatalogCourse, logger *log.Logger) (*Repository, error) {
	r := New(logger)
	err := r.Load(path)
	switch {
	case err == nil:
		return r, nil
	case errors.Is(err, os.ErrNotExist):
		if n := r.SeedCatalog(catalog); n > 0 {
			r.logger.Info("seeded course catalog", "courses", n)
		}
		return r, nil
	default:
		return nil, err
	}
}
