package fluentcron

import (
	"fmt"
	"strconv"
	"strings"
)

// domain is the legal numeric range of a field and, for month and day of
// week, the names its values may be rendered as.
type domain struct {
	min, max int
	names    []string
	interval bool
}

// The hour range accepts 24.
var domains = [fieldCount]domain{
	Minute:     {min: 0, max: 59, interval: true},
	Hour:       {min: 0, max: 24, interval: true},
	DayOfMonth: {min: 1, max: 31, interval: true},
	Month:      {min: 1, max: 12, names: monthNames},
	Weekday:    {min: 1, max: 7, names: weekdayNames},
}

func guardValue(f Field, value int) error {
	d := domains[f]
	if value < d.min || value > d.max {
		return fmt.Errorf(
			"%w: %s value %d is not within %d-%d",
			ErrOutOfRange, f, value, d.min, d.max,
		)
	}
	return nil
}

func guardRange(f Field, from, to int) error {
	if from > to {
		return fmt.Errorf("%w: %s values from %d to %d", ErrInvalidRange, f, from, to)
	}
	return nil
}

func guardInterval(f Field, interval int) error {
	if interval < 0 {
		return fmt.Errorf("%w: %s interval %d", ErrInvalidInterval, f, interval)
	}
	return nil
}

func (b *Builder) useNames(f Field) bool {
	switch f {
	case Month:
		return b.monthNames
	case Weekday:
		return b.weekdayNames
	default:
		return false
	}
}

// render must only be called with a value that passed guardValue.
func (b *Builder) render(f Field, value int) string {
	d := domains[f]
	if d.names != nil && b.useNames(f) {
		return d.names[value-d.min]
	}
	return strconv.Itoa(value)
}

func (b *Builder) setSingle(f Field, value int) error {
	if err := guardValue(f, value); err != nil {
		return err
	}
	b.fields[f] = b.render(f, value)
	return nil
}

// setMany keeps the first occurrence of each value, in order.
func (b *Builder) setMany(f Field, values []int) error {
	values = distinct(values)
	switch len(values) {
	case 0:
		return fmt.Errorf("%w: no %s values given", ErrOutOfRange, f)
	case 1:
		return b.setSingle(f, values[0])
	}

	for _, v := range values {
		if err := guardValue(f, v); err != nil {
			return err
		}
	}

	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = b.render(f, v)
	}
	b.fields[f] = strings.Join(tokens, ",")
	return nil
}

func (b *Builder) setRange(f Field, from, to int) error {
	if from == to {
		return b.setSingle(f, from)
	}

	if err := guardValue(f, from); err != nil {
		return err
	}
	if err := guardValue(f, to); err != nil {
		return err
	}
	if err := guardRange(f, from, to); err != nil {
		return err
	}

	b.fields[f] = b.render(f, from) + "-" + b.render(f, to)
	return nil
}

func (b *Builder) setAll(f Field) error {
	b.fields[f] = "*"
	return nil
}

// setEvery replaces any interval suffix of the current token. An interval
// of 0 only strips the suffix.
func (b *Builder) setEvery(f Field, interval int) error {
	if !domains[f].interval {
		return fmt.Errorf("%w: %s does not take an interval", ErrInvalidInterval, f)
	}
	if err := guardInterval(f, interval); err != nil {
		return err
	}

	base, _, _ := strings.Cut(b.field(f), "/")
	if interval > 0 {
		base += "/" + strconv.Itoa(interval)
	}
	b.fields[f] = base
	return nil
}

func distinct(values []int) []int {
	seen := make(map[int]bool, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
