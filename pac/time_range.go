package pac

import (
	"time"

	"github.com/pkg/errors"
)

// gmtMarker as the last argument of a time based predicate selects UTC
// instead of local time.
const gmtMarker = "GMT"

// ErrBadTimeRangeArgs is returned by TimeRange when called with a number of
// arguments it cannot interpret.
var ErrBadTimeRangeArgs = errors.New("timeRange: bad number of arguments")

var weekdayNames = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

var monthNames = []string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

func lookupName(table []string, name string) int {
	for i, n := range table {
		if n == name {
			return i
		}
	}
	return -1
}

func stripGMT(args []string) ([]string, bool) {
	if n := len(args); n > 0 && args[n-1] == gmtMarker {
		return args[:n-1], true
	}
	return args, false
}

// WeekdayRange tests whether today is within [wd1, wd2], or is wd1 if only
// one day is given. The range does not wrap around the end of the week.
func (e *Evaluator) WeekdayRange(args ...string) bool {
	args, gmt := stripGMT(args)
	if len(args) < 1 {
		return false
	}
	now := e.clock.Now()
	if gmt {
		now = now.UTC()
	}

	wd1 := lookupName(weekdayNames, args[0])
	wd2 := wd1
	if len(args) == 2 {
		wd2 = lookupName(weekdayNames, args[1])
	}
	if wd1 == -1 || wd2 == -1 {
		return false
	}
	wday := int(now.Weekday())
	return wd1 <= wday && wday <= wd2
}

// DateRange tests the current date against a day, month, year, or a range
// built from them. With more than one argument the first half of the
// arguments describes the start and the second half the end of the range.
func (e *Evaluator) DateRange(args ...string) bool {
	args, gmt := stripGMT(args)
	now := e.clock.Now()
	switch len(args) {
	case 0:
		return false
	case 1:
		return dateIs(now, args[0], gmt)
	default:
		return dateWithin(now, args, gmt)
	}
}

func dateIs(now time.Time, arg string, gmt bool) bool {
	if gmt {
		now = now.UTC()
	}
	n, isNum := parseInt(arg)
	switch {
	case !isNum:
		return int(now.Month())-1 == lookupName(monthNames, arg)
	case n < 32:
		return now.Day() == n
	default:
		return now.Year() == n
	}
}

func dateWithin(now time.Time, args []string, gmt bool) bool {
	loc := now.Location()
	date1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	date2 := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, loc)

	// Two plain days mean a range within the current month.
	adjustMonth := false
	mid := len(args) / 2
	for _, arg := range args[:mid] {
		var isDay bool
		date1, isDay = applyDateArg(date1, arg)
		if isDay {
			adjustMonth = len(args) <= 2
		}
	}
	for _, arg := range args[mid:] {
		date2, _ = applyDateArg(date2, arg)
	}
	if adjustMonth {
		date1 = setMonth(date1, int(now.Month())-1)
		date2 = setMonth(date2, int(now.Month())-1)
	}

	if gmt {
		now = utcFieldsIn(now, loc)
	}
	return !now.Before(date1) && !now.After(date2)
}

func applyDateArg(t time.Time, arg string) (_ time.Time, isDay bool) {
	n, isNum := parseInt(arg)
	switch {
	case !isNum:
		return setMonth(t, lookupName(monthNames, arg)), false
	case n < 32:
		return setDay(t, n), true
	default:
		return setYear(t, n), false
	}
}

// TimeRange tests the current time against an hour, an hour range, or a
// range given as hour/minute or hour/minute/second pairs. Any argument
// count other than 1, 2, 4 or 6 (not counting "GMT") is an error.
func (e *Evaluator) TimeRange(args ...string) (bool, error) {
	args, gmt := stripGMT(args)
	now := e.clock.Now()
	switch len(args) {
	case 0:
		return false, nil
	case 1:
		return hourIs(now, args[0], gmt), nil
	case 2:
		return hourWithin(now, args[0], args[1], gmt), nil
	case 4:
		return timeWithinMinutes(now, args, gmt), nil
	case 6:
		return timeWithinSeconds(now, args, gmt), nil
	default:
		e.log.Warnw("timeRange called with bad arguments", "args", args)
		return false, errors.Wrapf(
			ErrBadTimeRangeArgs, "%d arguments given", len(args))
	}
}

func currentHour(now time.Time, gmt bool) float64 {
	if gmt {
		return float64(now.UTC().Hour())
	}
	return float64(now.Hour())
}

func hourIs(now time.Time, arg string, gmt bool) bool {
	return currentHour(now, gmt) == toNumber(arg)
}

func hourWithin(now time.Time, from, to string, gmt bool) bool {
	hour := currentHour(now, gmt)
	return toNumber(from) <= hour && hour <= toNumber(to)
}

// timeWithinMinutes handles h1, m1, h2, m2. The end of the range covers
// the whole of its last minute.
func timeWithinMinutes(now time.Time, args []string, gmt bool) bool {
	date1, ok1 := setClockFields(now, args[0], args[1])
	date2, ok2 := setClockFields(now, args[2], args[3])
	if !ok1 || !ok2 {
		return false
	}
	date2 = setSecond(date2, 59)
	return nowWithin(now, date1, date2, gmt)
}

// timeWithinSeconds handles h1, m1, s1, h2, m2, s2.
func timeWithinSeconds(now time.Time, args []string, gmt bool) bool {
	s1, ok1 := toInt(toNumber(args[2]))
	s2, ok2 := toInt(toNumber(args[5]))
	if !ok1 || !ok2 {
		return false
	}
	date1, ok1 := setClockFields(setSecond(now, s1), args[0], args[1])
	date2, ok2 := setClockFields(setSecond(now, s2), args[3], args[4])
	if !ok1 || !ok2 {
		return false
	}
	return nowWithin(now, date1, date2, gmt)
}

func setClockFields(t time.Time, hour, minute string) (time.Time, bool) {
	h, ok := toInt(toNumber(hour))
	if !ok {
		return t, false
	}
	m, ok := toInt(toNumber(minute))
	if !ok {
		return t, false
	}
	return setMinute(setHour(t, h), m), true
}

func nowWithin(now, date1, date2 time.Time, gmt bool) bool {
	if gmt {
		now = utcFieldsIn(now, now.Location())
	}
	return !now.Before(date1) && !now.After(date2)
}
