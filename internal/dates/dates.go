// Package dates classifies due dates relative to the current calendar day.
// All helpers accept a nil date and treat it as "no event", never an error.
package dates

import (
	"fmt"
	"math"
	"time"
)

// DefaultHorizonDays is the lookahead window used by IsUpcoming.
const DefaultHorizonDays = 7

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// IsOverdue reports whether d falls on a calendar day strictly before today.
func IsOverdue(d *time.Time) bool {
	return isOverdueAt(d, time.Now())
}

func isOverdueAt(d *time.Time, now time.Time) bool {
	if d == nil {
		return false
	}
	return d.Before(StartOfDay(now))
}

// IsUpcoming reports whether d falls within the default seven-day horizon.
func IsUpcoming(d *time.Time) bool {
	return IsUpcomingWithin(d, DefaultHorizonDays)
}

// IsUpcomingWithin reports whether d falls within
// [start of today, end of day today+days], both bounds inclusive.
func IsUpcomingWithin(d *time.Time, days int) bool {
	return isUpcomingAt(d, days, time.Now())
}

func isUpcomingAt(d *time.Time, days int, now time.Time) bool {
	if d == nil {
		return false
	}
	from := StartOfDay(now)
	until := EndOfDay(now.AddDate(0, 0, days))
	return !d.Before(from) && !d.After(until)
}

// DaysBetween returns the whole calendar days from now's day to d's day,
// negative when d is in the past. Calendar days are read in now's location,
// so a date carrying a foreign zone lands on the day its instant falls on
// locally.
func DaysBetween(now, d time.Time) int {
	diff := StartOfDay(d.In(now.Location())).Sub(StartOfDay(now))
	// rounding absorbs DST transitions inside the span
	return int(math.Round(diff.Hours() / 24))
}

// RelativeDate renders d relative to today: "Today", "Tomorrow", "Yesterday",
// "N days ago", "In N days" for up to a week ahead, otherwise a short date.
func RelativeDate(d *time.Time) string {
	return relativeDateAt(d, time.Now())
}

func relativeDateAt(d *time.Time, now time.Time) string {
	if d == nil {
		return ""
	}
	local := d.In(now.Location())
	switch days := DaysBetween(now, local); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	case days <= DefaultHorizonDays:
		return fmt.Sprintf("In %d days", days)
	default:
		return local.Format(dateLayout)
	}
}

const dateLayout = "Jan 2, 2006"

// FormatDate renders a short calendar date such as "Dec 25, 2024" on the
// server's local calendar. A nil date renders as the empty string.
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.In(time.Local).Format(dateLayout)
}
