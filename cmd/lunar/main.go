// Command lunar converts dates between the Gregorian and Chinese lunar
// calendars from the terminal.
//
// Usage:
//
//	lunar solar 2024-02-10
//	lunar lunar 2023 2 1 --leap
//	lunar terms 2024 --json
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

func main() {
	cmd := newRootCmd(calendar.RealClock{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
