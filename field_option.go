package fluentcron

// WithMinute sets the minute field to a single value (0-59).
//
// Example:
//
//	WithMinute(30) // "30 * * * *"
func WithMinute(at int) FieldOption {
	return func(b *Builder) error { return b.setSingle(Minute, at) }
}

// WithMinutes sets the minute field to a list of values.
// Duplicates are dropped, keeping the first occurrence. A list that is
// left with one value is written as that single value.
//
// Examples:
//
//	WithMinutes(0, 15, 30, 45) // "0,15,30,45 * * * *"
//	WithMinutes(5, 5)          // "5 * * * *"
func WithMinutes(minutes ...int) FieldOption {
	return func(b *Builder) error { return b.setMany(Minute, minutes) }
}

// WithMinutesBetween sets the minute field to an inclusive range.
// A range whose ends are equal is written as a single value.
//
// Examples:
//
//	WithMinutesBetween(0, 29) // "0-29 * * * *"
//	WithMinutesBetween(5, 5)  // "5 * * * *"
func WithMinutesBetween(from, to int) FieldOption {
	return func(b *Builder) error { return b.setRange(Minute, from, to) }
}

// WithMinutesAll sets the minute field to "*".
func WithMinutesAll() FieldOption {
	return func(b *Builder) error { return b.setAll(Minute) }
}

// WithMinutesEvery applies an interval to the current minute token,
// replacing any interval already there. An interval of 0 removes it.
//
// Examples:
//
//	// "*/5 * * * *"
//	b.Set(WithMinutesEvery(5))
//
//	// "0-29/10 * * * *"
//	b.Set(WithMinutesBetween(0, 29), WithMinutesEvery(10))
//
//	// "0-29 * * * *"
//	b.Set(WithMinutesEvery(0))
func WithMinutesEvery(interval int) FieldOption {
	return func(b *Builder) error { return b.setEvery(Minute, interval) }
}

// WithHour sets the hour field to a single value (0-24).
func WithHour(at int) FieldOption {
	return func(b *Builder) error { return b.setSingle(Hour, at) }
}

// WithHours sets the hour field to a list of values, see WithMinutes.
func WithHours(hours ...int) FieldOption {
	return func(b *Builder) error { return b.setMany(Hour, hours) }
}

// WithHoursBetween sets the hour field to an inclusive range.
func WithHoursBetween(from, to int) FieldOption {
	return func(b *Builder) error { return b.setRange(Hour, from, to) }
}

// WithHoursAll sets the hour field to "*".
func WithHoursAll() FieldOption {
	return func(b *Builder) error { return b.setAll(Hour) }
}

// WithHoursEvery applies an interval to the current hour token.
func WithHoursEvery(interval int) FieldOption {
	return func(b *Builder) error { return b.setEvery(Hour, interval) }
}

// WithDayOfMonth sets the day of month field to a single value (1-31).
func WithDayOfMonth(at int) FieldOption {
	return func(b *Builder) error { return b.setSingle(DayOfMonth, at) }
}

// WithDaysOfMonth sets the day of month field to a list of values, see WithMinutes.
func WithDaysOfMonth(days ...int) FieldOption {
	return func(b *Builder) error { return b.setMany(DayOfMonth, days) }
}

// WithDaysOfMonthBetween sets the day of month field to an inclusive range.
func WithDaysOfMonthBetween(from, to int) FieldOption {
	return func(b *Builder) error { return b.setRange(DayOfMonth, from, to) }
}

// WithDaysOfMonthAll sets the day of month field to "*".
func WithDaysOfMonthAll() FieldOption {
	return func(b *Builder) error { return b.setAll(DayOfMonth) }
}

// WithDaysOfMonthEvery applies an interval to the current day of month token.
func WithDaysOfMonthEvery(interval int) FieldOption {
	return func(b *Builder) error { return b.setEvery(DayOfMonth, interval) }
}

// WithMonth sets the month field to a single value (1-12), rendered as
// JAN..DEC unless month names are disabled.
//
// Example:
//
//	WithMonth(3) // "* * * MAR *"
func WithMonth(at int) FieldOption {
	return func(b *Builder) error { return b.setSingle(Month, at) }
}

// WithMonths sets the month field to a list of values.
//
// Example:
//
//	WithMonths(1, 4, 7, 10) // "* * * JAN,APR,JUL,OCT *"
func WithMonths(months ...int) FieldOption {
	return func(b *Builder) error { return b.setMany(Month, months) }
}

// WithMonthsBetween sets the month field to an inclusive range. Both ends
// are rendered the same way, as names or as numbers.
//
// Example:
//
//	WithMonthsBetween(6, 8) // "* * * JUN-AUG *"
func WithMonthsBetween(from, to int) FieldOption {
	return func(b *Builder) error { return b.setRange(Month, from, to) }
}

// WithMonthsAll sets the month field to "*".
func WithMonthsAll() FieldOption {
	return func(b *Builder) error { return b.setAll(Month) }
}

// WithWeekday sets the day of week field to a single value (1-7, 1 is
// Sunday), rendered as SUN..SAT unless weekday names are disabled.
//
// Example:
//
//	WithWeekday(1) // "* * * * SUN"
func WithWeekday(at int) FieldOption {
	return func(b *Builder) error { return b.setSingle(Weekday, at) }
}

// WithWeekdays sets the day of week field to a list of values.
func WithWeekdays(weekdays ...int) FieldOption {
	return func(b *Builder) error { return b.setMany(Weekday, weekdays) }
}

// WithWeekdaysBetween sets the day of week field to an inclusive range.
//
// Example:
//
//	WithWeekdaysBetween(2, 6) // "* * * * MON-FRI"
func WithWeekdaysBetween(from, to int) FieldOption {
	return func(b *Builder) error { return b.setRange(Weekday, from, to) }
}

// WithWeekdaysAll sets the day of week field to "*".
func WithWeekdaysAll() FieldOption {
	return func(b *Builder) error { return b.setAll(Weekday) }
}
