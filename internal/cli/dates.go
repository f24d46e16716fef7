package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const dayLayout = "2006-01-02"

// parseDay resolves "today", "yesterday" or YYYY-MM-DD to local midnight.
func parseDay(s string, now time.Time) (time.Time, error) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return midnight, nil
	case "yesterday":
		return midnight.AddDate(0, 0, -1), nil
	}
	t, err := time.ParseInLocation(dayLayout, strings.TrimSpace(s), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD, today or yesterday)", s)
	}
	return t, nil
}

// dateFlag is a pflag.Value holding an optional day bound. With endOfDay
// set, the stored instant is the following midnight so the named day is
// included.
type dateFlag struct {
	raw      string
	value    *time.Time
	endOfDay bool
	now      func() time.Time
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string { return f.raw }

func (f *dateFlag) Type() string { return "date" }

func (f *dateFlag) Set(s string) error {
	t, err := parseDay(s, f.now())
	if err != nil {
		return err
	}
	if f.endOfDay {
		t = t.AddDate(0, 0, 1)
	}
	f.raw = s
	f.value = &t
	return nil
}

// Time returns the parsed bound, or nil when the flag was not given.
func (f *dateFlag) Time() *time.Time {
	return f.value
}
