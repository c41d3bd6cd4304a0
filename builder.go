// Package fluentcron builds five-field cron expressions (minute, hour,
// day of month, month, day of week) one field at a time, validating every
// value against its field's legal range before it is written.
package fluentcron

import (
	"fmt"
	"strings"
)

// Builder holds the five fields of a cron expression.
// Every field always holds a complete token:
//   - "*" (every value)
//   - a single value, e.g. "5" or "MAR"
//   - a list, e.g. "1,15,30"
//   - a range, e.g. "9-17" or "MON-FRI"
//   - any of the above followed by an interval, e.g. "*/5" or "0-30/10"
//
// Use New to get a Builder. The zero value reads as "* * * * *" and renders
// months and days of the week as numbers.
//
// A Builder is not safe for concurrent mutation. The string returned by
// Build can be shared freely.
//
// Example usage:
//
//	// Every 15 minutes between 09:00 and 17:59, Monday to Friday
//	b, _ := New()
//	err := b.Set(
//	    WithMinutesEvery(15),
//	    WithHoursBetween(9, 17),
//	    WithWeekdaysBetween(2, 6),
//	)
//	b.Build() // "*/15 9-17 * * MON-FRI"
type Builder struct {
	// monthNames/weekdayNames are fixed by New
	monthNames   bool
	weekdayNames bool

	// fields are indexed by Field
	fields [fieldCount]string
}

// FieldOption changes one or more fields of a Builder.
type FieldOption func(*Builder) error

// Set applies the options in order.
// If any option fails, every field is rolled back to its state before the
// call and the error is returned.
//
// Example:
//
//	err := b.Set(WithMinute(30), WithHour(2))
//	if err != nil {
//	    // b unchanged, handle error
//	}
func (b *Builder) Set(opts ...FieldOption) error {
	original := b.fields

	if err := b.apply(opts...); err != nil {
		b.fields = original
		return err
	}

	return nil
}

func (b *Builder) apply(opts ...FieldOption) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(b); err != nil {
			return err
		}
	}
	return nil
}

// Reset re-initializes all five fields from expression.
// An empty or blank expression resets to "* * * * *". Any other
// expression must split into exactly five whitespace-separated fields,
// otherwise ErrInvalidExpression is returned and the builder is unchanged.
func (b *Builder) Reset(expression string) error {
	fields, err := splitExpression(expression)
	if err != nil {
		return err
	}
	b.fields = fields
	return nil
}

// Build returns the expression as "MINUTE HOUR DOM MONTH DOW".
func (b *Builder) Build() string {
	fields := b.fieldsOrDefault()
	return strings.Join(fields[:], " ")
}

func (b *Builder) String() string {
	return b.Build()
}

// Minute returns the current minute token.
func (b *Builder) Minute() string { return b.field(Minute) }

// Hour returns the current hour token.
func (b *Builder) Hour() string { return b.field(Hour) }

// DayOfMonth returns the current day of month token.
func (b *Builder) DayOfMonth() string { return b.field(DayOfMonth) }

// Month returns the current month token.
func (b *Builder) Month() string { return b.field(Month) }

// Weekday returns the current day of week token.
func (b *Builder) Weekday() string { return b.field(Weekday) }

// Field returns the current token of f.
func (b *Builder) Field(f Field) string {
	if f < Minute || f > Weekday {
		return ""
	}
	return b.field(f)
}

// field reads an unset field of a zero Builder as "*".
func (b *Builder) field(f Field) string {
	if b.fields[f] == "" {
		return "*"
	}
	return b.fields[f]
}

func (b *Builder) fieldsOrDefault() [fieldCount]string {
	var fields [fieldCount]string
	for i := range fields {
		fields[i] = b.field(Field(i))
	}
	return fields
}

// WithExpression replaces all five fields, see Reset.
func WithExpression(expression string) FieldOption {
	return func(b *Builder) error {
		return b.Reset(expression)
	}
}

func splitExpression(expression string) ([fieldCount]string, error) {
	var fields [fieldCount]string

	if strings.TrimSpace(expression) == "" {
		expression = DefaultExpression
	}

	parts := strings.Fields(expression)
	if len(parts) != fieldCount {
		return fields, fmt.Errorf(
			"%w: %q has %d fields, expected %d",
			ErrInvalidExpression, expression, len(parts), fieldCount,
		)
	}

	copy(fields[:], parts)
	return fields, nil
}
