package matching

import (
	"fmt"
	"strings"
	"time"

	"homeconnect/models"
)

// AvailabilityPolicy decides whether a provider serves the request's time
// window. Exactly one policy is active per deployment; the filter stage calls
// it through this interface regardless of which availability representation
// the provider documents carry.
type AvailabilityPolicy interface {
	Qualifies(p *models.Provider, desired *time.Time) (bool, error)
}

// NewPolicy returns the policy selected by configuration. Unknown names fall
// back to the boolean flag policy.
func NewPolicy(name string) AvailabilityPolicy {
	if strings.EqualFold(name, "weekly") {
		return WeeklySchedulePolicy{}
	}
	return BooleanFlagPolicy{}
}

// BooleanFlagPolicy gates on the flat availableToday flag. The flag defaults
// to true when absent.
type BooleanFlagPolicy struct{}

func (BooleanFlagPolicy) Qualifies(p *models.Provider, _ *time.Time) (bool, error) {
	return p.IsAvailableToday(), nil
}

// WeeklySchedulePolicy evaluates the provider's weekly working hours and
// blocked dates against the desired instant, in UTC. Without a desired
// instant it falls back to the availableToday flag.
type WeeklySchedulePolicy struct{}

func (WeeklySchedulePolicy) Qualifies(p *models.Provider, desired *time.Time) (bool, error) {
	if desired == nil {
		return p.IsAvailableToday(), nil
	}

	t := desired.UTC()
	date := t.Format("2006-01-02")
	for _, blocked := range p.BlockedDates {
		if strings.TrimSpace(blocked) == date {
			return false, nil
		}
	}

	ranges := workingHoursFor(p, t.Weekday())
	if len(ranges) == 0 {
		// Not working that day.
		return false, nil
	}

	for _, rng := range ranges {
		start, end, err := parseRange(rng, t)
		if err != nil {
			return false, err
		}
		// Half-open interval: start inclusive, end exclusive.
		if !t.Before(start) && t.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

// workingHoursFor looks up the ranges for a weekday, tolerating key casing
// differences across schema revisions.
func workingHoursFor(p *models.Provider, day time.Weekday) []string {
	if ranges, ok := p.WeeklyWorkingHours[day.String()]; ok {
		return ranges
	}
	for key, ranges := range p.WeeklyWorkingHours {
		if strings.EqualFold(key, day.String()) {
			return ranges
		}
	}
	return nil
}

// parseRange turns one "HH:MM-HH:MM" entry into start/end instants anchored
// to the desired calendar date in UTC.
func parseRange(rng string, day time.Time) (time.Time, time.Time, error) {
	parts := strings.SplitN(strings.TrimSpace(rng), "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed working-hour range %q", rng)
	}
	start, err := anchorTime(parts[0], day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := anchorTime(parts[1], day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("working-hour range %q ends before it starts", rng)
	}
	return start, end, nil
}

func anchorTime(hhmm string, day time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed time of day %q: %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC), nil
}
