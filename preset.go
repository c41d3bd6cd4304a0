package fluentcron

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PresetOption overrides a default of a preset.
// Presets run at 00:00 on the 1st of January unless told otherwise.
type PresetOption func(*preset)

type preset struct {
	minute     int
	hour       int
	dayOfMonth int
	month      int
}

func newPreset(opts []PresetOption) preset {
	p := preset{dayOfMonth: 1, month: 1}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// At sets the time of day a preset fires.
//
// Example:
//
//	EveryDay(At(2, 30)) // "30 2 * * *"
func At(hour, minute int) PresetOption {
	return func(p *preset) {
		p.hour = hour
		p.minute = minute
	}
}

// OnDayOfMonth sets the day of month for EveryMonth and EveryYear.
func OnDayOfMonth(day int) PresetOption {
	return func(p *preset) {
		p.dayOfMonth = day
	}
}

// InMonth sets the month for EveryYear.
func InMonth(month int) PresetOption {
	return func(p *preset) {
		p.month = month
	}
}

// EveryDay resets the builder and fires once a day.
//
// Examples:
//
//	EveryDay()          // "0 0 * * *"
//	EveryDay(At(6, 15)) // "15 6 * * *"
func EveryDay(opts ...PresetOption) FieldOption {
	return func(b *Builder) error {
		p := newPreset(opts)
		return b.apply(
			WithExpression(""),
			WithMinute(p.minute),
			WithHour(p.hour),
		)
	}
}

// EveryMonth resets the builder and fires once a month.
//
// Examples:
//
//	EveryMonth()                            // "0 0 1 * *"
//	EveryMonth(OnDayOfMonth(15), At(12, 0)) // "0 12 15 * *"
func EveryMonth(opts ...PresetOption) FieldOption {
	return func(b *Builder) error {
		p := newPreset(opts)
		return b.apply(
			WithExpression(""),
			WithDayOfMonth(p.dayOfMonth),
			WithMinute(p.minute),
			WithHour(p.hour),
		)
	}
}

// EveryYear resets the builder and fires once a year.
//
// Examples:
//
//	EveryYear()                             // "0 0 1 JAN *"
//	EveryYear(InMonth(12), OnDayOfMonth(25)) // "0 0 25 DEC *"
func EveryYear(opts ...PresetOption) FieldOption {
	return func(b *Builder) error {
		p := newPreset(opts)
		return b.apply(
			WithExpression(""),
			WithMonth(p.month),
			WithDayOfMonth(p.dayOfMonth),
			WithMinute(p.minute),
			WithHour(p.hour),
		)
	}
}

// EveryDayOfWeek resets the builder and fires once a week on day.
// time.Sunday maps to 1.
//
// Example:
//
//	EveryDayOfWeek(time.Monday, At(8, 0)) // "0 8 * * MON"
func EveryDayOfWeek(day time.Weekday, opts ...PresetOption) FieldOption {
	return func(b *Builder) error {
		p := newPreset(opts)
		return b.apply(
			WithExpression(""),
			WithWeekday(int(day)+1),
			WithMinute(p.minute),
			WithHour(p.hour),
		)
	}
}

// TimeWindow resets the builder and restricts it to the minutes and hours
// between two "HH:MM" bounds. The minute range comes from the minute parts
// and the hour range from the hour parts, so the window is only contiguous
// when both ranges are.
//
// Example:
//
//	TimeWindow("06:00", "06:59") // "0-59 6 * * *"
func TimeWindow(from, to string) FieldOption {
	return func(b *Builder) error {
		fromHour, fromMinute, err := ParseHourMinute(from)
		if err != nil {
			return err
		}
		toHour, toMinute, err := ParseHourMinute(to)
		if err != nil {
			return err
		}
		return b.apply(
			WithExpression(""),
			WithMinutesBetween(fromMinute, toMinute),
			WithHoursBetween(fromHour, toHour),
		)
	}
}

// ParseHourMinute reads an "HH:MM" time as used by TimeWindow. It only
// checks the format; ranges are checked by the field the values go into.
// Malformed input returns ErrInvalidExpression.
func ParseHourMinute(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidExpression, value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: hour in %q is not a number", ErrInvalidExpression, value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: minute in %q is not a number", ErrInvalidExpression, value)
	}

	return hour, minute, nil
}
