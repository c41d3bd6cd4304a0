package fluentcron

// Option configures a Builder at construction time. Options are only
// accepted by New; a builder's configuration never changes afterwards.
type Option func(*config)

type config struct {
	expression   string
	monthNames   bool
	weekdayNames bool
}

// SetExpression seeds the builder with an existing five-field expression.
// An empty or blank expression leaves the default "* * * * *".
//
// Examples:
//
//	// Start from every day at 09:00:
//	SetExpression("0 9 * * *")
func SetExpression(expression string) Option {
	return func(c *config) {
		c.expression = expression
	}
}

// EnableMonthNames renders months as JAN..DEC (default).
//
// Example:
//
//	EnableMonthNames() // WithMonth(3) renders "MAR"
func EnableMonthNames() Option {
	return func(c *config) {
		c.monthNames = true
	}
}

// DisableMonthNames renders months as 1..12.
//
// Example:
//
//	DisableMonthNames() // WithMonth(3) renders "3"
func DisableMonthNames() Option {
	return func(c *config) {
		c.monthNames = false
	}
}

// EnableWeekdayNames renders days of the week as SUN..SAT (default).
//
// Example:
//
//	EnableWeekdayNames() // WithWeekday(2) renders "MON"
func EnableWeekdayNames() Option {
	return func(c *config) {
		c.weekdayNames = true
	}
}

// DisableWeekdayNames renders days of the week as 1..7, where 1 is Sunday.
//
// Example:
//
//	DisableWeekdayNames() // WithWeekday(2) renders "2"
func DisableWeekdayNames() Option {
	return func(c *config) {
		c.weekdayNames = false
	}
}
