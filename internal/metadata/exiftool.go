package metadata

import (
	"fmt"
	"os"

	exiftool "github.com/barasher/go-exiftool"
	"github.com/rwcarlsen/goexif/exif"
)

// ExifTool edits tags through a persistent exiftool process. Reads stay
// in-process via goexif, which avoids a tool round trip per file.
type ExifTool struct {
	et *exiftool.Exiftool
}

// NewExifTool starts the exiftool process. The caller must Close it.
func NewExifTool() (*ExifTool, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("start exiftool: %w", err)
	}
	return &ExifTool{et: et}, nil
}

// ReadDates extracts the capture-date tags from the file at path. A file
// without an EXIF block reads as absent tags, not as an error.
func (t *ExifTool) ReadDates(path string) (Dates, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dates{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return Dates{}, nil
	}

	var d Dates
	if tag, err := x.Get(exif.DateTimeDigitized); err == nil {
		d.Create, _ = tag.StringVal()
	}
	if tag, err := x.Get(exif.DateTimeOriginal); err == nil {
		d.Original, _ = tag.StringVal()
	}
	return d, nil
}

// WriteDates sets both capture-date tags to value, overwriting the file in
// place.
func (t *ExifTool) WriteDates(path, value string) error {
	fm := exiftool.EmptyFileMetadata()
	fm.File = path
	fm.SetString("DateTimeOriginal", value)
	fm.SetString("CreateDate", value)
	return t.write(fm)
}

// WriteKeywords replaces the file's keyword set.
func (t *ExifTool) WriteKeywords(path string, keywords []string) error {
	fm := exiftool.EmptyFileMetadata()
	fm.File = path
	fm.SetStrings("Keywords", keywords)
	return t.write(fm)
}

func (t *ExifTool) write(fm exiftool.FileMetadata) error {
	fms := []exiftool.FileMetadata{fm}
	t.et.WriteMetadata(fms)
	if fms[0].Err != nil {
		return fmt.Errorf("exiftool write %s: %w", fm.File, fms[0].Err)
	}
	return nil
}

// Close terminates the exiftool process.
func (t *ExifTool) Close() error {
	return t.et.Close()
}
