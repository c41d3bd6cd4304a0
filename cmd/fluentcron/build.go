package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xwinata/fluentcron/internal/definition"
)

// presetFlags only apply together with --preset.
var presetFlags = []string{"at", "day", "in-month", "on", "from", "to"}

// fieldFlag is the flag prefix of one field, e.g. --minute, --minute-every.
type fieldFlag struct {
	name     string
	interval bool
	spec     func(*definition.Definition) **definition.FieldSpec
}

var fieldFlags = []fieldFlag{
	{name: "minute", interval: true, spec: func(d *definition.Definition) **definition.FieldSpec { return &d.Minute }},
	{name: "hour", interval: true, spec: func(d *definition.Definition) **definition.FieldSpec { return &d.Hour }},
	{name: "day-of-month", interval: true, spec: func(d *definition.Definition) **definition.FieldSpec { return &d.DayOfMonth }},
	{name: "month", spec: func(d *definition.Definition) **definition.FieldSpec { return &d.Month }},
	{name: "weekday", spec: func(d *definition.Definition) **definition.FieldSpec { return &d.Weekday }},
}

func newBuildCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one expression from flags",
		Example: `  fluentcron build --minute-every 5
  fluentcron build --preset daily --at 02:30
  fluentcron build --preset window --from 06:00 --to 06:59 --minute-every 5
  fluentcron build --seed "0 9 * * *" --weekday-between 2,6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.settings()

			def, err := definitionFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			b, err := def.NewBuilder(s.naming())
			if err != nil {
				return err
			}
			if check := a.check(s); check != nil {
				if err := check(def.Name, b); err != nil {
					return errors.Wrap(err, "check failed")
				}
			}

			a.log.Debug().Str("expression", b.Build()).Msg("built")
			_, err = fmt.Fprintln(a.out, b.Build())
			return err
		},
	}

	flags := cmd.Flags()
	flags.String("seed", "", "five-field expression to start from")
	flags.String("preset", "", "preset to apply: daily, monthly, yearly, weekly or window")
	flags.String("at", "", "preset time of day as HH:MM")
	flags.Int("day", 0, "preset day of month")
	flags.Int("in-month", 0, "preset month (1-12)")
	flags.String("on", "", "weekly preset day, e.g. monday")
	flags.String("from", "", "window preset start as HH:MM")
	flags.String("to", "", "window preset end as HH:MM")

	for _, f := range fieldFlags {
		flags.IntSlice(f.name, nil, fmt.Sprintf("%s value or comma separated list", f.name))
		flags.IntSlice(f.name+"-between", nil, fmt.Sprintf("%s range as from,to", f.name))
		flags.Bool(f.name+"-all", false, fmt.Sprintf("set %s to *", f.name))
		if f.interval {
			flags.Int(f.name+"-every", 0, fmt.Sprintf("%s interval, 0 removes it", f.name))
		}
	}

	return cmd
}

func definitionFromFlags(flags *pflag.FlagSet) (*definition.Definition, error) {
	def := &definition.Definition{Name: "build"}

	var err error
	if def.Seed, err = flags.GetString("seed"); err != nil {
		return nil, err
	}

	if !flags.Changed("preset") {
		for _, name := range presetFlags {
			if flags.Changed(name) {
				return nil, errors.Errorf("--%s needs --preset", name)
			}
		}
	} else {
		p := &definition.Preset{}
		if p.Kind, err = flags.GetString("preset"); err != nil {
			return nil, err
		}
		if p.At, err = flags.GetString("at"); err != nil {
			return nil, err
		}
		if p.Day, err = optionalInt(flags, "day"); err != nil {
			return nil, err
		}
		if p.Month, err = optionalInt(flags, "in-month"); err != nil {
			return nil, err
		}
		if p.Weekday, err = flags.GetString("on"); err != nil {
			return nil, err
		}
		if p.From, err = flags.GetString("from"); err != nil {
			return nil, err
		}
		if p.To, err = flags.GetString("to"); err != nil {
			return nil, err
		}
		def.Preset = p
	}

	for _, f := range fieldFlags {
		spec, err := fieldSpecFromFlags(flags, f)
		if err != nil {
			return nil, err
		}
		*f.spec(def) = spec
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// fieldSpecFromFlags returns nil when none of the field's flags were given.
func fieldSpecFromFlags(flags *pflag.FlagSet, f fieldFlag) (*definition.FieldSpec, error) {
	spec := &definition.FieldSpec{}
	set := false

	if flags.Changed(f.name) {
		values, err := flags.GetIntSlice(f.name)
		if err != nil {
			return nil, err
		}
		spec.Values = values
		set = true
	}
	if flags.Changed(f.name + "-between") {
		between, err := flags.GetIntSlice(f.name + "-between")
		if err != nil {
			return nil, err
		}
		spec.Between = between
		set = true
	}
	if flags.Changed(f.name + "-all") {
		all, err := flags.GetBool(f.name + "-all")
		if err != nil {
			return nil, err
		}
		spec.All = all
		set = set || all
	}
	if f.interval && flags.Changed(f.name+"-every") {
		every, err := flags.GetInt(f.name + "-every")
		if err != nil {
			return nil, err
		}
		spec.Every = &every
		set = true
	}

	if !set {
		return nil, nil
	}
	return spec, nil
}

// optionalInt returns nil unless the flag was given, so that an explicit 0
// reaches validation instead of reading as unset.
func optionalInt(flags *pflag.FlagSet, name string) (*int, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetInt(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
