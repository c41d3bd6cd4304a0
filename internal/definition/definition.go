// Package definition reads named cron schedules from YAML and turns them
// into fluentcron builders.
//
// A file looks like:
//
//	month_names: true
//	weekday_names: true
//	schedules:
//	  - name: nightly-backup
//	    preset: {kind: daily, at: "02:30"}
//	  - name: reports
//	    seed: "0 9 * * *"
//	    minute: {every: 15}
//	    weekday: {between: [2, 6]}
//
// Each entry is applied in a fixed order: seed, preset, then minute, hour,
// day_of_month, month and weekday, each with its base value before its
// interval.
package definition

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xwinata/fluentcron"
)

// File is a set of named schedule definitions.
type File struct {
	// MonthNames/WeekdayNames override the caller's naming when set.
	MonthNames   *bool `yaml:"month_names,omitempty"`
	WeekdayNames *bool `yaml:"weekday_names,omitempty"`

	Schedules []Definition `yaml:"schedules"`
}

// Definition describes how to build one expression.
type Definition struct {
	Name string `yaml:"name"`

	// Seed is a five-field expression to start from.
	Seed string `yaml:"seed,omitempty"`

	Preset *Preset `yaml:"preset,omitempty"`

	Minute     *FieldSpec `yaml:"minute,omitempty"`
	Hour       *FieldSpec `yaml:"hour,omitempty"`
	DayOfMonth *FieldSpec `yaml:"day_of_month,omitempty"`
	Month      *FieldSpec `yaml:"month,omitempty"`
	Weekday    *FieldSpec `yaml:"weekday,omitempty"`
}

// Preset selects one of the fluentcron presets.
type Preset struct {
	// Kind is one of daily, monthly, yearly, weekly or window.
	Kind string `yaml:"kind"`

	// At is "HH:MM" for daily, monthly, yearly and weekly.
	At string `yaml:"at,omitempty"`

	// Day is used by monthly and yearly, Month by yearly and Weekday by
	// weekly. Giving one to a preset that does not use it is an error.
	Day     *int   `yaml:"day,omitempty"`
	Month   *int   `yaml:"month,omitempty"`
	Weekday string `yaml:"weekday,omitempty"`

	// From/To are "HH:MM" bounds for window.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
}

// FieldSpec sets one field. At most one of At, Values, Between and All may
// be given; Every is applied on top of the result.
type FieldSpec struct {
	At      *int  `yaml:"at,omitempty"`
	Values  []int `yaml:"values,omitempty"`
	Between []int `yaml:"between,omitempty"`
	All     bool  `yaml:"all,omitempty"`
	Every   *int  `yaml:"every,omitempty"`
}

// Naming is the month and weekday rendering used when building.
type Naming struct {
	MonthNames   bool
	WeekdayNames bool
}

// Rendered is a built definition.
type Rendered struct {
	Name       string
	Expression string
}

const (
	PresetDaily   = "daily"
	PresetMonthly = "monthly"
	PresetYearly  = "yearly"
	PresetWeekly  = "weekly"
	PresetWindow  = "window"
)

// LoadFile reads and validates a definition file.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open schedule file")
	}
	defer f.Close()

	file, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return file, nil
}

// Load decodes and validates a definition file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("schedule file is empty")
		}
		return nil, errors.Wrap(err, "failed to decode schedule file")
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks the structure of every definition. Field values are
// checked by fluentcron when the definition is built.
func (f *File) Validate() error {
	if len(f.Schedules) == 0 {
		return errors.New("no schedules defined")
	}

	seen := make(map[string]bool, len(f.Schedules))
	for i := range f.Schedules {
		d := &f.Schedules[i]
		if d.Name == "" {
			return errors.Errorf("schedule #%d has no name", i+1)
		}
		if seen[d.Name] {
			return errors.Errorf("schedule %q is defined more than once", d.Name)
		}
		seen[d.Name] = true

		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Naming returns defaults with the file's overrides applied.
func (f *File) Naming(defaults Naming) Naming {
	if f.MonthNames != nil {
		defaults.MonthNames = *f.MonthNames
	}
	if f.WeekdayNames != nil {
		defaults.WeekdayNames = *f.WeekdayNames
	}
	return defaults
}

// CheckFunc inspects a built definition before it is rendered.
type CheckFunc func(name string, b *fluentcron.Builder) error

// Render builds every definition in file order. When check is non-nil it
// runs on each builder and its error stops rendering.
func (f *File) Render(defaults Naming, check CheckFunc) ([]Rendered, error) {
	naming := f.Naming(defaults)

	rendered := make([]Rendered, 0, len(f.Schedules))
	for i := range f.Schedules {
		d := &f.Schedules[i]
		b, err := d.NewBuilder(naming)
		if err != nil {
			return nil, err
		}
		if check != nil {
			if err := check(d.Name, b); err != nil {
				return nil, errors.Wrapf(err, "schedule %q", d.Name)
			}
		}
		rendered = append(rendered, Rendered{Name: d.Name, Expression: b.Build()})
	}
	return rendered, nil
}

// Validate checks the definition's structure.
func (d *Definition) Validate() error {
	if d.Preset != nil {
		if err := d.Preset.validate(); err != nil {
			return errors.Wrapf(err, "schedule %q", d.Name)
		}
	}

	for _, spec := range d.fieldSpecs() {
		if spec.spec == nil {
			continue
		}
		if err := spec.spec.validate(spec.field); err != nil {
			return errors.Wrapf(err, "schedule %q", d.Name)
		}
	}
	return nil
}

// NewBuilder builds the definition with the given naming.
func (d *Definition) NewBuilder(naming Naming) (*fluentcron.Builder, error) {
	b, err := fluentcron.New(namingOptions(naming)...)
	if err != nil {
		return nil, err
	}

	opts, err := d.Options()
	if err != nil {
		return nil, err
	}
	if err := b.Set(opts...); err != nil {
		return nil, errors.Wrapf(err, "schedule %q", d.Name)
	}
	return b, nil
}

// Options converts the definition into field options in application order.
func (d *Definition) Options() ([]fluentcron.FieldOption, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var opts []fluentcron.FieldOption
	if d.Seed != "" {
		opts = append(opts, fluentcron.WithExpression(d.Seed))
	}

	if d.Preset != nil {
		opt, err := d.Preset.option()
		if err != nil {
			return nil, errors.Wrapf(err, "schedule %q", d.Name)
		}
		opts = append(opts, opt)
	}

	for _, spec := range d.fieldSpecs() {
		if spec.spec == nil {
			continue
		}
		opts = append(opts, spec.spec.options(spec.field)...)
	}
	return opts, nil
}

type namedSpec struct {
	field fluentcron.Field
	spec  *FieldSpec
}

func (d *Definition) fieldSpecs() []namedSpec {
	return []namedSpec{
		{fluentcron.Minute, d.Minute},
		{fluentcron.Hour, d.Hour},
		{fluentcron.DayOfMonth, d.DayOfMonth},
		{fluentcron.Month, d.Month},
		{fluentcron.Weekday, d.Weekday},
	}
}

func namingOptions(naming Naming) []fluentcron.Option {
	opts := []fluentcron.Option{fluentcron.EnableMonthNames(), fluentcron.EnableWeekdayNames()}
	if !naming.MonthNames {
		opts[0] = fluentcron.DisableMonthNames()
	}
	if !naming.WeekdayNames {
		opts[1] = fluentcron.DisableWeekdayNames()
	}
	return opts
}

// ParseWeekday accepts full or three-letter English day names in any case.
func ParseWeekday(name string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for day := time.Sunday; day <= time.Saturday; day++ {
		full := strings.ToLower(day.String())
		if key == full || key == full[:3] {
			return day, nil
		}
	}
	return 0, errors.Errorf("unknown weekday %q", name)
}
