package value

import "time"

// TicksPerSecond is the number of 100ns ticks in a second.
const TicksPerSecond = int64(time.Second / 100)

// unixEpochTicks is the tick count of 1970-01-01T00:00:00Z.
const unixEpochTicks = 621355968000000000

// TicksFromTime returns the number of ticks between 0001-01-01T00:00:00Z and t.
// Precision below 100ns is truncated.
func TicksFromTime(t time.Time) int64 {
	return t.Unix()*TicksPerSecond + int64(t.Nanosecond()/100) + unixEpochTicks
}

// TimeFromTicks is the inverse of TicksFromTime. The result is in UTC.
func TimeFromTicks(ticks int64) time.Time {
	rel := ticks - unixEpochTicks
	sec := rel / TicksPerSecond
	rem := rel % TicksPerSecond
	if rem < 0 {
		sec--
		rem += TicksPerSecond
	}

	return time.Unix(sec, rem*100).UTC()
}

// TicksFromDuration converts d to ticks, truncating below 100ns.
func TicksFromDuration(d time.Duration) int64 {
	return int64(d / 100)
}

// DurationFromTicks converts ticks to a time.Duration.
func DurationFromTicks(ticks int64) time.Duration {
	return time.Duration(ticks) * 100
}

// DateTimeOffset is an instant paired with the offset it was observed at.
//
// Only the local wall-clock reading survives encoding, so a decoded value has
// the original clock reading in UTC.
type DateTimeOffset struct {
	time.Time
}

// NewDateTimeOffset wraps t.
func NewDateTimeOffset(t time.Time) DateTimeOffset {
	return DateTimeOffset{Time: t}
}

// LocalTicks returns the ticks of the wall-clock reading of d in its own zone.
func (d DateTimeOffset) LocalTicks() int64 {
	_, offset := d.Zone()
	return TicksFromTime(d.Time) + int64(offset)*TicksPerSecond
}

// DateTimeOffsetFromTicks builds a DateTimeOffset whose wall clock reads ticks
// in UTC.
func DateTimeOffsetFromTicks(ticks int64) DateTimeOffset {
	return DateTimeOffset{Time: TimeFromTicks(ticks)}
}
