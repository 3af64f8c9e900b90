// Package festival looks up the named holidays of a day in the Gregorian
// and lunar calendars.
package festival

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

var builtinSolar = map[string][]string{
	"1-1":   {"元旦节"},
	"2-14":  {"情人节"},
	"3-8":   {"妇女节"},
	"3-12":  {"植树节"},
	"4-1":   {"愚人节"},
	"5-1":   {"劳动节"},
	"5-4":   {"青年节"},
	"5-12":  {"护士节"},
	"6-1":   {"儿童节"},
	"7-1":   {"建党节"},
	"8-1":   {"建军节"},
	"9-10":  {"教师节"},
	"10-1":  {"国庆节"},
	"12-24": {"平安夜"},
	"12-25": {"圣诞节"},
}

var builtinLunar = map[string][]string{
	"1-1":   {"春节"},
	"1-15":  {"元宵节"},
	"2-2":   {"龙抬头"},
	"5-5":   {"端午节"},
	"7-7":   {"七夕节"},
	"7-15":  {"中元节"},
	"8-15":  {"中秋节"},
	"9-9":   {"重阳节"},
	"10-1":  {"寒衣节"},
	"10-15": {"下元节"},
	"12-8":  {"腊八节"},
	"12-23": {"北方小年"},
	"12-24": {"南方小年"},
	"12-30": {"除夕"},
}

type key struct {
	month, day int
}

// Table maps calendar days to festival names. A Table is read-only once
// built and may be shared between goroutines.
type Table struct {
	solar map[key][]string
	lunar map[key][]string
}

// Festivals lists the festivals of one day in both calendars.
type Festivals struct {
	Solar []string `json:"solar"`
	Lunar []string `json:"lunar"`
}

// Overlay is the YAML document accepted by LoadFile. Keys are "month-day".
type Overlay struct {
	Solar map[string][]string `yaml:"solar"`
	Lunar map[string][]string `yaml:"lunar"`
}

// Default returns the built-in festival table.
func Default() *Table {
	t, err := New(Overlay{})
	if err != nil {
		panic(fmt.Sprintf("festival: built-in table: %v", err))
	}
	return t
}

// New builds a table from the built-in festivals plus an overlay. Names in
// the overlay are added to those already defined for the day.
func New(overlay Overlay) (*Table, error) {
	t := &Table{
		solar: make(map[key][]string),
		lunar: make(map[key][]string),
	}
	for _, src := range []struct {
		name  string
		dst   map[key][]string
		days  map[string][]string
		limit int
	}{
		{"solar", t.solar, builtinSolar, 31},
		{"lunar", t.lunar, builtinLunar, 30},
		{"solar", t.solar, overlay.Solar, 31},
		{"lunar", t.lunar, overlay.Lunar, 30},
	} {
		if err := merge(src.dst, src.days, src.limit); err != nil {
			return nil, fmt.Errorf("%s festivals: %w", src.name, err)
		}
	}
	return t, nil
}

// LoadFile reads a YAML overlay from path and merges it over the built-in
// table.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read festival file: %w", err)
	}
	var overlay Overlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse festival file %s: %w", path, err)
	}
	t, err := New(overlay)
	if err != nil {
		return nil, fmt.Errorf("festival file %s: %w", path, err)
	}
	return t, nil
}

func merge(dst map[key][]string, days map[string][]string, maxDay int) error {
	// Sorted so that errors are reported deterministically.
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		parsed, err := parseKey(k, maxDay)
		if err != nil {
			return err
		}
		for _, name := range days[k] {
			name = strings.TrimSpace(name)
			if name == "" || contains(dst[parsed], name) {
				continue
			}
			dst[parsed] = append(dst[parsed], name)
		}
	}
	return nil
}

func parseKey(s string, maxDay int) (key, error) {
	m, d, ok := strings.Cut(s, "-")
	if !ok {
		return key{}, fmt.Errorf("invalid day %q, expected month-day", s)
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > 12 {
		return key{}, fmt.Errorf("invalid month in %q", s)
	}
	day, err := strconv.Atoi(d)
	if err != nil || day < 1 || day > maxDay {
		return key{}, fmt.Errorf("invalid day in %q, expected 1-%d", s, maxDay)
	}
	return key{month, day}, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Solar returns the Gregorian festivals on month-day. The result is never
// nil and may be modified by the caller.
func (t *Table) Solar(month, day int) []string {
	return lookup(t.solar, key{month, day})
}

// Lunar returns the lunar festivals on month-day, ignoring leap months.
func (t *Table) Lunar(month, day int) []string {
	return lookup(t.lunar, key{month, day})
}

func lookup(m map[key][]string, k key) []string {
	names := m[k]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ForConversion returns the festivals falling on a converted day. Leap
// month days carry no lunar festival. When the twelfth month is 29 days
// long, its last day also takes the festivals of 12-30.
func (t *Table) ForConversion(c calendar.Conversion) Festivals {
	f := Festivals{
		Solar: t.Solar(c.SMonth, c.SDay),
		Lunar: []string{},
	}
	if c.IsLeap {
		return f
	}
	f.Lunar = t.Lunar(c.LMonth, c.LDay)
	if c.LMonth == 12 && c.LDay == 29 {
		if days, err := calendar.MonthDays(c.LYear, 12); err == nil && days == 29 {
			for _, name := range t.Lunar(12, 30) {
				if !contains(f.Lunar, name) {
					f.Lunar = append(f.Lunar, name)
				}
			}
		}
	}
	return f
}
