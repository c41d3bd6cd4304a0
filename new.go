package fluentcron

// New creates a new Builder with the given options.
// Returns an error if the seed expression does not have exactly five fields.
//
// Month and weekday names are enabled by default and the builder starts
// from "* * * * *" unless SetExpression is given.
func New(opts ...Option) (*Builder, error) {
	cfg := config{
		monthNames:   true,
		weekdayNames: true,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	builder := Builder{
		monthNames:   cfg.monthNames,
		weekdayNames: cfg.weekdayNames,
	}

	if err := builder.Reset(cfg.expression); err != nil {
		return nil, err
	}

	return &builder, nil
}
