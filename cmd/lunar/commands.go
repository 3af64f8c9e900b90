package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/festival"
)

// app carries the global flags shared by every subcommand.
type app struct {
	clock         calendar.Clock
	jsonOutput    bool
	timezone      string
	festivalsPath string
}

// dayView is a conversion with the extras shown by the solar and lunar commands.
type dayView struct {
	calendar.Conversion
	Festivals festival.Festivals `json:"festivals"`
	Zodiac    string             `json:"zodiac"`
}

// yearView summarises one lunar year.
type yearView struct {
	Year          int                  `json:"year"`
	Days          int                  `json:"days"`
	LeapMonth     int                  `json:"leapMonth"`
	LeapMonthDays int                  `json:"leapMonthDays"`
	GzYear        string               `json:"gzYear"`
	Animal        string               `json:"animal"`
	NewYear       string               `json:"newYear"`
	Months        []calendar.MonthSpan `json:"months"`
}

func newRootCmd(clock calendar.Clock) *cobra.Command {
	a := &app{clock: clock}

	root := &cobra.Command{
		Use:   "lunar",
		Short: "Convert dates between the Gregorian and Chinese lunar calendars",
		Long: `Convert dates between the Gregorian and Chinese lunar calendars.

Supported range: 1900-01-31 to 2100-12-31.

Available subcommands:
  solar  - Gregorian date to lunar date (defaults to today)
  lunar  - Lunar date to Gregorian date
  terms  - The 24 solar terms of a year
  year   - Months and leap month of a lunar year
  astro  - Western zodiac sign of a month and day`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&a.jsonOutput, "json", false, "Print JSON instead of a table")
	flags.StringVar(&a.timezone, "tz", "Local", "IANA timezone used to decide today")
	flags.StringVar(&a.festivalsPath, "festivals", "", "YAML festival overlay file")

	root.AddCommand(
		a.solarCmd(),
		a.lunarCmd(),
		a.termsCmd(),
		a.yearCmd(),
		a.astroCmd(),
	)
	return root
}

func (a *app) solarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solar [YYYY-MM-DD]",
		Short: "Convert a Gregorian date to the lunar calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.converter()
			if err != nil {
				return err
			}

			var c calendar.Conversion
			if len(args) == 0 {
				c, err = conv.Today()
			} else {
				var d calendar.SolarDate
				if d, err = calendar.ParseDate(args[0]); err != nil {
					return err
				}
				c, err = conv.SolarToLunar(d.Year, d.Month, d.Day)
			}
			if err != nil {
				return err
			}
			return a.printDay(cmd.OutOrStdout(), c)
		},
	}
}

func (a *app) lunarCmd() *cobra.Command {
	var leap bool
	cmd := &cobra.Command{
		Use:   "lunar YEAR MONTH DAY",
		Short: "Convert a lunar date to the Gregorian calendar",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args, "year", "month", "day")
			if err != nil {
				return err
			}
			conv, err := a.converter()
			if err != nil {
				return err
			}
			c, err := conv.LunarToSolar(nums[0], nums[1], nums[2], leap)
			if err != nil {
				return err
			}
			return a.printDay(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().BoolVar(&leap, "leap", false, "The month is the year's leap month")
	return cmd
}

func (a *app) termsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms YEAR",
		Short: "List the 24 solar terms of a Gregorian year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args, "year")
			if err != nil {
				return err
			}
			terms, err := calendar.SolarTerms(nums[0])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), terms)
			}

			rows := make([][]string, 0, len(terms))
			for _, t := range terms {
				rows = append(rows, []string{strconv.Itoa(t.Index), t.Name, t.Date})
			}
			writeRows(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func (a *app) yearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year YEAR",
		Short: "Describe the months of a lunar year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args, "year")
			if err != nil {
				return err
			}
			view, err := a.year(nums[0])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			leap := "-"
			if view.LeapMonth > 0 {
				leap = fmt.Sprintf("%d (%d days)", view.LeapMonth, view.LeapMonthDays)
			}
			rows := [][]string{
				{"Year", fmt.Sprintf("%d %s%s", view.Year, view.GzYear, view.Animal)},
				{"New year", view.NewYear},
				{"Days", strconv.Itoa(view.Days)},
				{"Leap month", leap},
			}
			for _, m := range view.Months {
				name, _ := calendar.ChineseMonth(m.Month)
				if m.Leap {
					name = "闰" + name
				}
				rows = append(rows, []string{"", name, strconv.Itoa(m.Days)})
			}
			writeRows(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

func (a *app) astroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "astro MONTH DAY",
		Short: "Print the Western zodiac sign of a month and day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args, "month", "day")
			if err != nil {
				return err
			}
			sign, err := calendar.ZodiacSign(nums[0], nums[1])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"zodiac": sign})
			}
			fmt.Fprintln(cmd.OutOrStdout(), sign)
			return nil
		},
	}
}

func (a *app) converter() (*calendar.Converter, error) {
	loc := time.Local
	if a.timezone != "" && a.timezone != "Local" {
		var err error
		if loc, err = time.LoadLocation(a.timezone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", a.timezone, err)
		}
	}
	return calendar.NewConverter(calendar.WithClock(a.clock), calendar.WithLocation(loc)), nil
}

func (a *app) festivals() (*festival.Table, error) {
	if a.festivalsPath == "" {
		return festival.Default(), nil
	}
	return festival.LoadFile(a.festivalsPath)
}

func (a *app) year(year int) (yearView, error) {
	months, err := calendar.Months(year)
	if err != nil {
		return yearView{}, err
	}
	conv, err := a.converter()
	if err != nil {
		return yearView{}, err
	}
	newYear, err := conv.LunarToSolar(year, 1, 1, false)
	if err != nil {
		return yearView{}, err
	}
	days, _ := calendar.YearDays(year)
	leapMonth, _ := calendar.LeapMonth(year)
	leapDays, _ := calendar.LeapMonthDays(year)

	return yearView{
		Year:          year,
		Days:          days,
		LeapMonth:     leapMonth,
		LeapMonthDays: leapDays,
		GzYear:        calendar.GanZhiYear(year),
		Animal:        calendar.Animal(year),
		NewYear:       newYear.SolarDate,
		Months:        months,
	}, nil
}

func (a *app) printDay(w io.Writer, c calendar.Conversion) error {
	table, err := a.festivals()
	if err != nil {
		return err
	}
	zodiac, _ := calendar.ZodiacSign(c.SMonth, c.SDay)
	view := dayView{Conversion: c, Festivals: table.ForConversion(c), Zodiac: zodiac}

	if a.jsonOutput {
		return writeJSON(w, view)
	}

	term := c.TermName()
	if term == "" {
		term = "-"
	}
	names := slices.Concat(view.Festivals.Solar, view.Festivals.Lunar)
	festivals := "-"
	if len(names) > 0 {
		festivals = joinNames(names)
	}

	writeRows(w, [][]string{
		{"Solar", c.SolarDate, c.WeekdayLabel},
		{"Lunar", c.Lunar().String(), c.MonthCn + c.DayCn},
		{"Pillars", c.GzYear + "年", c.GzMonth + "月", c.GzDay + "日"},
		{"Animal", c.Animal},
		{"Zodiac", zodiac},
		{"Term", term},
		{"Festivals", festivals},
	})
	return nil
}

func parseInts(args []string, names ...string) ([]int, error) {
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer, got %q", calendar.ErrInvalidArgument, names[i], arg)
		}
		nums[i] = n
	}
	return nums, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
