package fluentcron

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// Schedule parses the built expression with robfig/cron's standard parser
// so it can be registered with a cron.Cron.
//
// The standard parser is stricter than the builder: hour 24 is rejected.
// It also numbers days of the week from 0 (Sunday), so numeric weekdays
// written with DisableWeekdayNames are shifted down by one before parsing;
// the returned schedule fires on the same days the builder means.
//
// Example:
//
//	schedule, err := b.Schedule()
//	if err != nil {
//	    return err
//	}
//	c.Schedule(schedule, job)
func (b *Builder) Schedule() (cron.Schedule, error) {
	expression := b.Build()

	fields := b.fieldsOrDefault()
	weekday, err := robfigWeekday(fields[Weekday])
	if err != nil {
		return nil, err
	}
	fields[Weekday] = weekday

	schedule, err := cron.ParseStandard(strings.Join(fields[:], " "))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, expression, err)
	}

	return schedule, nil
}

// robfigWeekday rewrites every numeric day (1 is Sunday) of a day of week
// token to robfig/cron's numbering (0 is Sunday). Names, "*" and interval
// steps are left as they are.
func robfigWeekday(token string) (string, error) {
	parts := strings.Split(token, ",")
	for i, part := range parts {
		base, step, hasStep := strings.Cut(part, "/")

		from, to, isRange := strings.Cut(base, "-")
		shifted, err := shiftWeekday(from)
		if err != nil {
			return "", err
		}
		if isRange {
			end, err := shiftWeekday(to)
			if err != nil {
				return "", err
			}
			shifted += "-" + end
		}

		if hasStep {
			shifted += "/" + step
		}
		parts[i] = shifted
	}
	return strings.Join(parts, ","), nil
}

func shiftWeekday(value string) (string, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		// "*", "?" or a name
		return value, nil
	}
	if err := guardValue(Weekday, n); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return strconv.Itoa(n - 1), nil
}
