package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wall-clock layout used everywhere in the service.
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a value does not parse as HH:MM.
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange is returned when minute arithmetic leaves the day.
	ErrTimeOutOfRange = errors.New("types: time is out of the 00:00-23:59 range")
)

// TimeString is a wall-clock time of day ("08:00", "18:30") without a date
// or location attached. Reservations store their start and end as
// TimeString next to a separate calendar date column.
type TimeString string

// NewTimeString extracts the HH:MM component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an HH:MM value.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the strict zero-padded HH:MM format. time.Parse is too
// lenient here: it accepts "8:30", which would never compare equal to a
// zero-padded catalog value.
func (t TimeString) Validate() error {
	if _, _, err := t.split(); err != nil {
		return err
	}
	return nil
}

func (t TimeString) split() (hour, minute int, err error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return hour, minute, nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// minutes converts the value to minutes since midnight. "24:00" is
// accepted as the exclusive end-of-day mark produced by AddMinutes.
func (t TimeString) minutes() (int, error) {
	if t == "24:00" {
		return 24 * 60, nil
	}
	hour, minute, err := t.split()
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare false; callers are expected to Validate first.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the value shifted forward by d minutes.
// The result must stay inside the same day.
func (t TimeString) AddMinutes(d int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	m += d
	if m < 0 || m > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes", ErrTimeOutOfRange, string(t), d)
	}
	if m == 24*60 {
		// Midnight at the end of the day is representable as 00:00 of the
		// next day nowhere in this model, keep it as 23:59-exclusive 24h mark.
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Value implements driver.Valuer so TimeString binds as TEXT.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as either
// string or []byte depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = normalize(v)
		return nil
	case []byte:
		*t = normalize(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

// normalize trims a trailing seconds component ("08:00:00" -> "08:00").
// Anything that is not zero-padded HH:MM in front of the seconds is kept
// as is, so a later Validate rejects it instead of a sliced prefix
// masking the bad value.
func normalize(s string) TimeString {
	if len(s) > 5 && s[5] == ':' {
		return TimeString(s[:5])
	}
	return TimeString(s)
}
