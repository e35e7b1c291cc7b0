// Package phototime converts the library's stored timestamps into absolute
// capture instants and the string forms derived from them.
package phototime

import "time"

// The library stores image dates as seconds relative to the Cocoa reference
// date, not the UNIX epoch.
var cocoaEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Resolve converts a stored image date and timezone offset into the absolute
// capture instant.
func Resolve(imageDate, tzOffsetSecs int64) time.Time {
	return cocoaEpoch.Add(time.Duration(imageDate+tzOffsetSecs) * time.Second)
}

// DayKey formats the calendar day a photo is grouped and exported under.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ExifDate formats t the way EXIF date tags expect it.
func ExifDate(t time.Time) string {
	return t.Format("2006:01:02 15:04:05")
}
