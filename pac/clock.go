package pac

import "time"

// Clock provides the current moment to the time based predicates.
// It is read once per predicate call.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Local time is taken in Location, or in
// time.Local if Location is nil.
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the clock's location.
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same moment.
type FixedClock time.Time

// Now returns the fixed moment.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
