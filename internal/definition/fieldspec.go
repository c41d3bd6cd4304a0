package definition

import (
	"github.com/pkg/errors"

	"github.com/xwinata/fluentcron"
)

func (p *Preset) validate() error {
	var (
		usesDay     bool
		usesMonth   bool
		usesWeekday bool
		usesWindow  bool
	)
	switch p.Kind {
	case PresetDaily:
	case PresetMonthly:
		usesDay = true
	case PresetYearly:
		usesDay, usesMonth = true, true
	case PresetWeekly:
		usesWeekday = true
		if p.Weekday == "" {
			return errors.New("weekly preset needs a weekday")
		}
		if _, err := ParseWeekday(p.Weekday); err != nil {
			return err
		}
	case PresetWindow:
		usesWindow = true
		if p.From == "" || p.To == "" {
			return errors.New("window preset needs from and to")
		}
	case "":
		return errors.New("preset has no kind")
	default:
		return errors.Errorf("unknown preset kind %q", p.Kind)
	}

	switch {
	case p.Day != nil && !usesDay:
		return errors.Errorf("%s preset does not take a day", p.Kind)
	case p.Month != nil && !usesMonth:
		return errors.Errorf("%s preset does not take a month", p.Kind)
	case p.Weekday != "" && !usesWeekday:
		return errors.Errorf("%s preset does not take a weekday", p.Kind)
	case p.At != "" && usesWindow:
		return errors.Errorf("%s preset does not take at, use from and to", p.Kind)
	case (p.From != "" || p.To != "") && !usesWindow:
		return errors.Errorf("%s preset does not take from or to", p.Kind)
	}

	if p.At != "" {
		if _, _, err := fluentcron.ParseHourMinute(p.At); err != nil {
			return err
		}
	}
	return nil
}

func (p *Preset) option() (fluentcron.FieldOption, error) {
	var opts []fluentcron.PresetOption
	if p.At != "" {
		hour, minute, err := fluentcron.ParseHourMinute(p.At)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fluentcron.At(hour, minute))
	}
	if p.Day != nil {
		opts = append(opts, fluentcron.OnDayOfMonth(*p.Day))
	}
	if p.Month != nil {
		opts = append(opts, fluentcron.InMonth(*p.Month))
	}

	switch p.Kind {
	case PresetDaily:
		return fluentcron.EveryDay(opts...), nil
	case PresetMonthly:
		return fluentcron.EveryMonth(opts...), nil
	case PresetYearly:
		return fluentcron.EveryYear(opts...), nil
	case PresetWeekly:
		day, err := ParseWeekday(p.Weekday)
		if err != nil {
			return nil, err
		}
		return fluentcron.EveryDayOfWeek(day, opts...), nil
	case PresetWindow:
		return fluentcron.TimeWindow(p.From, p.To), nil
	default:
		return nil, errors.Errorf("unknown preset kind %q", p.Kind)
	}
}

// fieldSetters holds the fluentcron constructors for one field.
type fieldSetters struct {
	at      func(int) fluentcron.FieldOption
	values  func(...int) fluentcron.FieldOption
	between func(int, int) fluentcron.FieldOption
	all     func() fluentcron.FieldOption
	every   func(int) fluentcron.FieldOption
}

var setters = map[fluentcron.Field]fieldSetters{
	fluentcron.Minute: {
		at:      fluentcron.WithMinute,
		values:  fluentcron.WithMinutes,
		between: fluentcron.WithMinutesBetween,
		all:     fluentcron.WithMinutesAll,
		every:   fluentcron.WithMinutesEvery,
	},
	fluentcron.Hour: {
		at:      fluentcron.WithHour,
		values:  fluentcron.WithHours,
		between: fluentcron.WithHoursBetween,
		all:     fluentcron.WithHoursAll,
		every:   fluentcron.WithHoursEvery,
	},
	fluentcron.DayOfMonth: {
		at:      fluentcron.WithDayOfMonth,
		values:  fluentcron.WithDaysOfMonth,
		between: fluentcron.WithDaysOfMonthBetween,
		all:     fluentcron.WithDaysOfMonthAll,
		every:   fluentcron.WithDaysOfMonthEvery,
	},
	fluentcron.Month: {
		at:      fluentcron.WithMonth,
		values:  fluentcron.WithMonths,
		between: fluentcron.WithMonthsBetween,
		all:     fluentcron.WithMonthsAll,
	},
	fluentcron.Weekday: {
		at:      fluentcron.WithWeekday,
		values:  fluentcron.WithWeekdays,
		between: fluentcron.WithWeekdaysBetween,
		all:     fluentcron.WithWeekdaysAll,
	},
}

func (s *FieldSpec) validate(f fluentcron.Field) error {
	bases := 0
	if s.At != nil {
		bases++
	}
	if len(s.Values) > 0 {
		bases++
	}
	if s.Between != nil {
		bases++
		if len(s.Between) != 2 {
			return errors.Errorf("%s between needs exactly two values, got %d", f, len(s.Between))
		}
	}
	if s.All {
		bases++
	}

	if bases > 1 {
		return errors.Errorf("%s sets more than one of at, values, between and all", f)
	}
	if s.Every != nil && setters[f].every == nil {
		return errors.Errorf("%s does not take an interval", f)
	}
	if bases == 0 && s.Every == nil {
		return errors.Errorf("%s is empty", f)
	}
	return nil
}

// options must only be called on a spec that passed validate.
func (s *FieldSpec) options(f fluentcron.Field) []fluentcron.FieldOption {
	set := setters[f]

	var opts []fluentcron.FieldOption
	switch {
	case s.At != nil:
		opts = append(opts, set.at(*s.At))
	case len(s.Values) > 0:
		opts = append(opts, set.values(s.Values...))
	case len(s.Between) == 2:
		opts = append(opts, set.between(s.Between[0], s.Between[1]))
	case s.All:
		opts = append(opts, set.all())
	}

	if s.Every != nil {
		opts = append(opts, set.every(*s.Every))
	}
	return opts
}
