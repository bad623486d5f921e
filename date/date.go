package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// USFormat is the month-first format used by spreadsheets and CSV exports.
const USFormat = "01/02/2006"

const readUSFormat = "1/2/2006"

const Day = 24 * time.Hour

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the Date of t in t's location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current date.
func Today() Date { return Of(time.Now()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Time returns midnight UTC on d.
func (d Date) Time() time.Time { return d.time() }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// US formats the date as MM/DD/YYYY.
func (d Date) US() string { return d.time().Format(USFormat) }

// SameMonth reports whether d falls in the given calendar month.
func (d Date) SameMonth(year int, month time.Month) bool { return d.y == year && d.m == month }

// PreviousMonth returns the calendar month before d's month, wrapping January
// to December of the previous year.
func (d Date) PreviousMonth() (int, time.Month) {
	if d.m == time.January {
		return d.y - 1, time.December
	}
	return d.y, d.m - 1
}

// MonthsBetween counts calendar-month boundaries crossed going from `from` to `to`.
//
// It is not elapsed time: 2024-01-31 to 2024-02-01 counts as one month.
func MonthsBetween(from, to Date) int {
	return (to.y-from.y)*12 + int(to.m) - int(from.m)
}

// DaysBetween returns the number of days from `from` to `to`.
func DaysBetween(from, to Date) int {
	return int(to.time().Sub(from.time()) / Day)
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return Of(on), nil
}

// ParseUS parses a month-first date like "06/01/2024" or "6/1/2024".
func ParseUS(str string) (Date, error) {
	on, err := time.Parse(readUSFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, USFormat, err)
	}
	return Of(on), nil
}

// ParseAny accepts either the US or the ISO format.
func ParseAny(str string) (Date, error) {
	if d, err := ParseUS(str); err == nil {
		return d, nil
	}
	return Parse(str)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseAny(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
