package cronparser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

// ErrNoOccurrence is returned for a spec that never fires, such as Feb 30.
var ErrNoOccurrence = errors.New("schedule has no next occurrence")

var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// Schedule is a parsed five-field cron expression bound to a time zone.
type Schedule struct {
	spec     string
	schedule cron.Schedule
}

// Parse parses spec in tz. If tz is non-empty and the spec has no CRON_TZ=/TZ=
// prefix, it prepends CRON_TZ=<tz>. Defaults to UTC when no tz is given.
func Parse(spec, tz string) (*Schedule, error) {
	fullSpec := buildSpec(strings.TrimSpace(spec), tz)

	schedule, err := _parser.Parse(fullSpec)
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	if schedule.Next(time.Now()).IsZero() {
		return nil, fmt.Errorf("cron spec %q: %w", spec, ErrNoOccurrence)
	}

	return &Schedule{
		spec:     fullSpec,
		schedule: schedule,
	}, nil
}

// Next returns the next occurrence strictly after `after`, or the zero time
// when none exists within the search horizon.
func (s *Schedule) Next(after time.Time) time.Time {
	return s.schedule.Next(after)
}

// String returns the spec with its time zone prefix.
func (s *Schedule) String() string {
	return s.spec
}

func buildSpec(spec, tz string) string {
	hasTZPrefix := strings.HasPrefix(spec, "CRON_TZ=") ||
		strings.HasPrefix(spec, "TZ=")

	if tz != "" && !hasTZPrefix {
		return "CRON_TZ=" + tz + " " + spec
	}

	if !hasTZPrefix {
		return "CRON_TZ=UTC " + spec
	}

	return spec
}
