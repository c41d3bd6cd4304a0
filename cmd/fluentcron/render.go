package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xwinata/fluentcron/internal/definition"
)

func newRenderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "render FILE",
		Short:   "Build every schedule in a YAML definition file",
		Example: "  fluentcron render schedules.yaml --check",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.settings()

			file, err := definition.LoadFile(args[0])
			if err != nil {
				return err
			}

			rendered, err := file.Render(s.naming(), a.check(s))
			if err != nil {
				return err
			}

			for _, r := range rendered {
				a.log.Debug().Str("schedule", r.Name).Str("expression", r.Expression).Msg("built")
				if _, err := fmt.Fprintf(a.out, "%s\t%s\n", r.Name, r.Expression); err != nil {
					return err
				}
			}

			a.log.Info().Int("count", len(rendered)).Str("file", args[0]).Msg("rendered")
			return nil
		},
	}
}
