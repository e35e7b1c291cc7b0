// Package metadata keeps exported files' embedded capture dates and person
// keywords in line with the library.
package metadata

// Dates holds the capture-date tags read from a file. An empty value means
// the tag is absent.
type Dates struct {
	// Create is the EXIF CreateDate tag.
	Create string
	// Original is the EXIF DateTimeOriginal tag.
	Original string
}

// Tool is the external metadata-editing capability. Implementations edit
// files in place; no backup copy is kept.
type Tool interface {
	ReadDates(path string) (Dates, error)
	// WriteDates sets both capture-date tags to value.
	WriteDates(path, value string) error
	// WriteKeywords replaces the file's keyword tag set.
	WriteKeywords(path string, keywords []string) error
	Close() error
}
