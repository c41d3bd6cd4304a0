package fluentcron

import "errors"

// Field identifies one of the five positions of a cron expression.
type Field int

const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	Weekday
)

const fieldCount = 5

// DefaultExpression is the expression a builder holds when no seed is given.
const DefaultExpression = "* * * * *"

func (f Field) String() string {
	switch f {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case DayOfMonth:
		return "day of month"
	case Month:
		return "month"
	case Weekday:
		return "day of week"
	default:
		return "unknown field"
	}
}

var (
	ErrInvalidExpression = errors.New(
		"invalid expression",
	)
	ErrOutOfRange = errors.New(
		"value out of range",
	)
	ErrInvalidRange = errors.New(
		"invalid range. from cannot be greater than to",
	)
	ErrInvalidInterval = errors.New(
		"invalid interval. interval cannot be less than 0",
	)
)

var monthNames = []string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// 1 is Sunday. Thursday is THU, the name cron parsers accept, not THR.
var weekdayNames = []string{
	"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT",
}
