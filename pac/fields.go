package pac

import "time"

// Field setters. Each one normalizes immediately, so setting the month of
// Jan 31 to February yields a day in March, and the order of calls matters.

func setYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// setMonth takes a zero based month.
func setMonth(t time.Time, month int) time.Time {
	return time.Date(t.Year(), time.Month(month+1), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func setDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func setHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		hour, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func setMinute(t time.Time, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), minute, t.Second(), t.Nanosecond(), t.Location())
}

func setSecond(t time.Time, second int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), second, t.Nanosecond(), t.Location())
}

// utcFieldsIn returns a moment in loc whose wall clock reads the UTC time
// of t, assigning the fields one at a time.
func utcFieldsIn(t time.Time, loc *time.Location) time.Time {
	u := t.UTC()
	r := t.In(loc)
	r = setYear(r, u.Year())
	r = setMonth(r, int(u.Month())-1)
	r = setDay(r, u.Day())
	r = setHour(r, u.Hour())
	r = setMinute(r, u.Minute())
	return setSecond(r, u.Second())
}
