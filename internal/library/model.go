package library

// Photo is one exportable master/version pair read from the library.
// Photos are immutable once read and arrive ordered by capture time.
type Photo struct {
	// ImagePath is the master file's path relative to the library's
	// Masters directory.
	ImagePath string
	FileName  string
	// ImageDate is seconds since the Cocoa reference date, not UNIX time.
	ImageDate    int64
	TZOffsetSecs int64
	// UUID identifies the version across library databases and keys face
	// lookups in the Person database.
	UUID string
	// ModelID is the version's rowid within the library database and keys
	// place lookups.
	ModelID int64
}
