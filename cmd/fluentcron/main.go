// Command fluentcron builds cron expressions from flags or from a YAML file
// of named schedule definitions.
//
// Usage:
//
//	fluentcron build --preset weekly --on monday --at 09:45
//	fluentcron build --seed "0 9 * * *" --minute-every 15 --weekday-between 2,6
//	fluentcron render schedules.yaml --check
//
// Settings can also come from FLUENTCRON_MONTH_NAMES, FLUENTCRON_WEEKDAY_NAMES,
// FLUENTCRON_LOG_LEVEL and FLUENTCRON_CHECK.
package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
