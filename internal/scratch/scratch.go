// Package scratch manages the temporary working area holding private copies
// of the library databases, so the original library is never opened — not
// even read-only.
package scratch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Area is a process-local temporary directory with snapshot copies of the
// library databases.
type Area struct {
	Dir       string
	LibraryDB string
	// PersonDB is empty when the library carries no Person database;
	// face lookups are then unavailable.
	PersonDB string
}

// New snapshots the databases of the library rooted at libraryRoot into a
// fresh temporary directory.
func New(libraryRoot string) (*Area, error) {
	dir := filepath.Join(os.TempDir(), "photos-export-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create scratch area: %w", err)
	}

	a := &Area{
		Dir:       dir,
		LibraryDB: filepath.Join(dir, "Library.apdb"),
	}
	if err := copyFile(filepath.Join(libraryRoot, "Database", "Library.apdb"), a.LibraryDB); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("snapshot library database: %w", err)
	}

	// Older libraries have no Person database; faces are just absent then.
	personSrc := filepath.Join(libraryRoot, "Database", "Person.db")
	if _, err := os.Stat(personSrc); err == nil {
		a.PersonDB = filepath.Join(dir, "Person.db")
		if err := copyFile(personSrc, a.PersonDB); err != nil {
			os.RemoveAll(dir)
			return nil, fmt.Errorf("snapshot person database: %w", err)
		}
	}

	return a, nil
}

// Remove deletes the scratch area recursively.
func (a *Area) Remove() error {
	return os.RemoveAll(a.Dir)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
