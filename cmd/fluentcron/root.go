package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xwinata/fluentcron"
	"github.com/xwinata/fluentcron/internal/definition"
)

const envPrefix = "FLUENTCRON"

// app carries what every subcommand needs once flags and env are resolved.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	root   *cobra.Command

	// log is set up by the root command's pre-run; logReady reports whether
	// that happened.
	log      zerolog.Logger
	logReady bool
}

type settings struct {
	MonthNames   bool
	WeekdayNames bool
	Check        bool
	LogLevel     string
}

func (a *app) settings() settings {
	return settings{
		MonthNames:   a.v.GetBool("month-names"),
		WeekdayNames: a.v.GetBool("weekday-names"),
		Check:        a.v.GetBool("check"),
		LogLevel:     a.v.GetString("log-level"),
	}
}

func (s settings) naming() definition.Naming {
	return definition.Naming{
		MonthNames:   s.MonthNames,
		WeekdayNames: s.WeekdayNames,
	}
}

func newApp(out, errOut io.Writer) *app {
	a := &app{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
		log:    zerolog.Nop(),
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "fluentcron",
		Short:         "Build five-field cron expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logger, err := newLogger(errOut, a.v.GetString("log-level"))
			if err != nil {
				return err
			}
			a.log = logger
			a.logReady = true
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.Bool("month-names", true, "render months as JAN..DEC")
	flags.Bool("weekday-names", true, "render days of the week as SUN..SAT")
	flags.Bool("check", false, "verify every expression with the robfig/cron standard parser")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	if err := a.v.BindPFlags(flags); err != nil {
		panic(errors.Wrap(err, "failed to bind flags"))
	}

	root.AddCommand(
		newBuildCommand(a),
		newRenderCommand(a),
	)

	a.root = root
	return a
}

// execute runs the command line and logs any error it returns, including
// flag parsing errors and errors from before the logger was configured.
func (a *app) execute(args []string) error {
	a.root.SetArgs(args)

	err := a.root.Execute()
	if err != nil {
		logger := a.log
		if !a.logReady {
			logger, _ = newLogger(a.errOut, "")
		}
		logger.Error().Err(err).Msg("command failed")
	}
	return err
}

// check verifies b with robfig/cron when --check is set.
func (a *app) check(s settings) definition.CheckFunc {
	if !s.Check {
		return nil
	}
	return func(name string, b *fluentcron.Builder) error {
		if _, err := b.Schedule(); err != nil {
			return err
		}
		a.log.Debug().Str("schedule", name).Msg("check passed")
		return nil
	}
}
