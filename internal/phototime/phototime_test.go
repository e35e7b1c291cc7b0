package phototime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolve_ZeroOffsetIsReferenceDate(t *testing.T) {
	got := Resolve(0, 0)
	require.Equal(t, time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestResolve_AppliesTimezoneOffset(t *testing.T) {
	// 2023-05-01 22:30:00 UTC shot at UTC-7 resolves to the local instant.
	utc := time.Date(2023, time.May, 1, 22, 30, 0, 0, time.UTC)
	offset := int64(utc.Sub(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)).Seconds())

	got := Resolve(offset, -7*3600)
	require.Equal(t, utc.Add(-7*time.Hour), got)
}

func TestResolve_NegativeOffsetBeforeReference(t *testing.T) {
	got := Resolve(-86400, 0)
	require.Equal(t, "2000-12-31", DayKey(got))
}

func TestDayKey_TimezoneMovesDayBoundary(t *testing.T) {
	// 01:30 UTC on May 2nd is still May 1st two hours west.
	utc := time.Date(2023, time.May, 2, 1, 30, 0, 0, time.UTC)
	offset := int64(utc.Sub(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)).Seconds())

	require.Equal(t, "2023-05-02", DayKey(Resolve(offset, 0)))
	require.Equal(t, "2023-05-01", DayKey(Resolve(offset, -2*3600)))
}

func TestExifDate(t *testing.T) {
	ts := time.Date(2023, time.May, 1, 9, 5, 7, 0, time.UTC)
	require.Equal(t, "2023:05:01 09:05:07", ExifDate(ts))
}
