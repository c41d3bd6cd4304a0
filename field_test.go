package fluentcron

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	b, err := New(opts...)
	require.NoError(t, err)
	return b
}

func TestFieldOption_SingleValue(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		set      FieldOption
		expected string
	}{
		{name: "minute", set: WithMinute(59), expected: "59 * * * *"},
		{name: "hour", set: WithHour(23), expected: "* 23 * * *"},
		{name: "hour upper bound", set: WithHour(24), expected: "* 24 * * *"},
		{name: "day of month", set: WithDayOfMonth(31), expected: "* * 31 * *"},
		{name: "month name", set: WithMonth(12), expected: "* * * DEC *"},
		{name: "month number", opts: []Option{DisableMonthNames()}, set: WithMonth(12), expected: "* * * 12 *"},
		{name: "weekday name", set: WithWeekday(5), expected: "* * * * THU"},
		{name: "weekday number", opts: []Option{DisableWeekdayNames()}, set: WithWeekday(5), expected: "* * * * 5"},
		{
			name:     "names enabled explicitly",
			opts:     []Option{DisableMonthNames(), EnableMonthNames(), EnableWeekdayNames()},
			set:      WithMonth(2),
			expected: "* * * FEB *",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(t, tt.opts...)
			require.NoError(t, b.Set(tt.set))
			assert.Equal(t, tt.expected, b.Build())
		})
	}
}

func TestFieldOption_EveryValueInDomain(t *testing.T) {
	single := map[Field]func(int) FieldOption{
		Minute:     WithMinute,
		Hour:       WithHour,
		DayOfMonth: WithDayOfMonth,
		Month:      WithMonth,
		Weekday:    WithWeekday,
	}

	for f, with := range single {
		d := domains[f]
		t.Run(f.String(), func(t *testing.T) {
			named := newBuilder(t)
			numeric := newBuilder(t, DisableMonthNames(), DisableWeekdayNames())

			for v := d.min; v <= d.max; v++ {
				require.NoError(t, named.Set(with(v)))
				require.NoError(t, numeric.Set(with(v)))

				assert.Equal(t, strconv.Itoa(v), numeric.Field(f))
				if d.names != nil {
					assert.Equal(t, d.names[v-d.min], named.Field(f))
				} else {
					assert.Equal(t, strconv.Itoa(v), named.Field(f))
				}
			}

			for _, v := range []int{d.min - 1, d.max + 1, -100} {
				err := named.Set(with(v))
				assert.ErrorIs(t, err, ErrOutOfRange)
				assert.Contains(t, err.Error(), f.String())
				assert.Contains(t, err.Error(), strconv.Itoa(v))
			}
		})
	}
}

func TestFieldOption_OutOfRangeLeavesFieldsUnchanged(t *testing.T) {
	opts := []FieldOption{
		WithMinute(60),
		WithMinutes(1, 60),
		WithMinutesBetween(-1, 5),
		WithHour(25),
		WithHours(0, 25),
		WithHoursBetween(0, 25),
		WithDayOfMonth(0),
		WithDaysOfMonth(0, 1),
		WithDaysOfMonthBetween(1, 32),
		WithMonth(13),
		WithMonths(1, 13),
		WithMonthsBetween(0, 12),
		WithWeekday(0),
		WithWeekdays(8, 1),
		WithWeekdaysBetween(1, 8),
	}

	for i, opt := range opts {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b := newBuilder(t, SetExpression("1 2 3 4 5"))
			assert.ErrorIs(t, b.Set(opt), ErrOutOfRange)
			assert.Equal(t, "1 2 3 4 5", b.Build())
		})
	}
}

func TestFieldOption_List(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		set         FieldOption
		expected    string
		expectError error
	}{
		{name: "minutes", set: WithMinutes(0, 15, 30, 45), expected: "0,15,30,45 * * * *"},
		{name: "keeps encounter order", set: WithHours(18, 6, 12), expected: "* 18,6,12 * * *"},
		{name: "drops duplicates", set: WithDaysOfMonth(1, 15, 1, 15, 28), expected: "* * 1,15,28 * *"},
		{name: "singleton collapses", set: WithMinutes(7, 7, 7), expected: "7 * * * *"},
		{name: "month names", set: WithMonths(1, 4, 7, 10), expected: "* * * JAN,APR,JUL,OCT *"},
		{name: "month numbers", opts: []Option{DisableMonthNames()}, set: WithMonths(1, 4), expected: "* * * 1,4 *"},
		{name: "weekday names", set: WithWeekdays(1, 7), expected: "* * * * SUN,SAT"},
		{name: "weekday numbers", opts: []Option{DisableWeekdayNames()}, set: WithWeekdays(1, 7), expected: "* * * * 1,7"},
		{name: "singleton weekday collapses to name", set: WithWeekdays(2, 2), expected: "* * * * MON"},
		{name: "empty list", set: WithMinutes(), expectError: ErrOutOfRange},
		{name: "invalid member", set: WithMonths(1, 2, 13), expectError: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(t, tt.opts...)
			err := b.Set(tt.set)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, DefaultExpression, b.Build())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.Build())
		})
	}
}

func TestFieldOption_Range(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		set         FieldOption
		expected    string
		expectError error
	}{
		{name: "minutes", set: WithMinutesBetween(0, 29), expected: "0-29 * * * *"},
		{name: "hours", set: WithHoursBetween(9, 17), expected: "* 9-17 * * *"},
		{name: "days of month", set: WithDaysOfMonthBetween(1, 7), expected: "* * 1-7 * *"},
		{name: "months by name", set: WithMonthsBetween(6, 8), expected: "* * * JUN-AUG *"},
		{name: "months by number", opts: []Option{DisableMonthNames()}, set: WithMonthsBetween(6, 8), expected: "* * * 6-8 *"},
		{name: "weekdays by name", set: WithWeekdaysBetween(2, 6), expected: "* * * * MON-FRI"},
		{name: "weekdays by number", opts: []Option{DisableWeekdayNames()}, set: WithWeekdaysBetween(2, 6), expected: "* * * * 2-6"},
		{name: "equal ends collapse", set: WithMinutesBetween(5, 5), expected: "5 * * * *"},
		{name: "equal named ends collapse", set: WithMonthsBetween(3, 3), expected: "* * * MAR *"},
		{name: "reversed", set: WithHoursBetween(17, 9), expectError: ErrInvalidRange},
		{name: "reversed weekdays", set: WithWeekdaysBetween(7, 1), expectError: ErrInvalidRange},
		{name: "bound checked before order", set: WithMinutesBetween(70, 10), expectError: ErrOutOfRange},
		{name: "collapsed point still checked", set: WithDaysOfMonthBetween(0, 0), expectError: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(t, tt.opts...)
			err := b.Set(tt.set)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, DefaultExpression, b.Build())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.Build())
		})
	}
}

func TestFieldOption_All(t *testing.T) {
	b := newBuilder(t, SetExpression("1 2 3 4 5"))

	require.NoError(t, b.Set(
		WithMinutesAll(),
		WithHoursAll(),
		WithDaysOfMonthAll(),
		WithMonthsAll(),
		WithWeekdaysAll(),
	))
	assert.Equal(t, DefaultExpression, b.Build())
}

func TestFieldOption_Every(t *testing.T) {
	tests := []struct {
		name        string
		seed        string
		set         []FieldOption
		expected    string
		expectError error
	}{
		{name: "every minute", set: []FieldOption{WithMinutesEvery(1)}, expected: "*/1 * * * *"},
		{name: "every 2 hours", set: []FieldOption{WithHoursEvery(2)}, expected: "* */2 * * *"},
		{name: "every 3 days", set: []FieldOption{WithDaysOfMonthEvery(3)}, expected: "* * */3 * *"},
		{
			name:     "range base",
			set:      []FieldOption{WithMinutesBetween(0, 29), WithMinutesEvery(10)},
			expected: "0-29/10 * * * *",
		},
		{
			name:     "interval replaced",
			set:      []FieldOption{WithMinutesEvery(5), WithMinutesEvery(20)},
			expected: "*/20 * * * *",
		},
		{
			name:     "zero strips interval",
			seed:     "0-30/5 */2 * * *",
			set:      []FieldOption{WithMinutesEvery(0), WithHoursEvery(0)},
			expected: "0-30 * * * *",
		},
		{
			name:     "zero without interval keeps base",
			set:      []FieldOption{WithHour(6), WithHoursEvery(0)},
			expected: "* 6 * * *",
		},
		{
			name:     "seeded interval replaced",
			seed:     "* * 1/7 * *",
			set:      []FieldOption{WithDaysOfMonthEvery(14)},
			expected: "* * 1/14 * *",
		},
		{
			name:        "negative",
			set:         []FieldOption{WithHoursEvery(-2)},
			expectError: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(t, SetExpression(tt.seed))
			before := b.Build()
			err := b.Set(tt.set...)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, before, b.Build())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.Build())
		})
	}
}

func TestBuilder_EveryOnlyForIntervalFields(t *testing.T) {
	b := newBuilder(t)

	assert.ErrorIs(t, b.setEvery(Month, 2), ErrInvalidInterval)
	assert.ErrorIs(t, b.setEvery(Weekday, 2), ErrInvalidInterval)
	assert.Equal(t, DefaultExpression, b.Build())
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "minute", Minute.String())
	assert.Equal(t, "hour", Hour.String())
	assert.Equal(t, "day of month", DayOfMonth.String())
	assert.Equal(t, "month", Month.String())
	assert.Equal(t, "day of week", Weekday.String())
	assert.Equal(t, "unknown field", Field(-1).String())
}
