package matching

import (
	"testing"
	"time"

	"homeconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func instant(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	utc := parsed.UTC()
	return &utc
}

func TestBooleanFlagPolicy(t *testing.T) {
	policy := BooleanFlagPolicy{}

	tests := []struct {
		name string
		flag *bool
		want bool
	}{
		{"absent flag defaults to available", nil, true},
		{"explicitly available", boolPtr(true), true},
		{"explicitly unavailable", boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Provider{ID: "p1", AvailableToday: tt.flag}
			got, err := policy.Qualifies(p, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeeklySchedulePolicy_FallsBackToFlagWithoutDesiredTime(t *testing.T) {
	policy := WeeklySchedulePolicy{}

	p := &models.Provider{ID: "p1", AvailableToday: boolPtr(false)}
	got, err := policy.Qualifies(p, nil)
	require.NoError(t, err)
	assert.False(t, got)

	p.AvailableToday = nil
	got, err = policy.Qualifies(p, nil)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestWeeklySchedulePolicy_WorkingHours(t *testing.T) {
	policy := WeeklySchedulePolicy{}

	// 2025-07-10 is a Thursday.
	p := &models.Provider{
		ID: "p1",
		WeeklyWorkingHours: map[string][]string{
			"Thursday": {"09:00-12:00", "13:00-17:00"},
		},
	}

	tests := []struct {
		name    string
		desired string
		want    bool
	}{
		{"inside second range", "2025-07-10T15:00:00Z", true},
		{"start of first range is inclusive", "2025-07-10T09:00:00Z", true},
		{"end of first range is exclusive", "2025-07-10T12:00:00Z", false},
		{"between ranges", "2025-07-10T12:30:00Z", false},
		{"last minute before close", "2025-07-10T16:59:00Z", true},
		{"end of day is exclusive", "2025-07-10T17:00:00Z", false},
		{"day with no defined hours", "2025-07-11T10:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Qualifies(p, instant(t, tt.desired))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeeklySchedulePolicy_BlockedDates(t *testing.T) {
	policy := WeeklySchedulePolicy{}

	p := &models.Provider{
		ID:           "p1",
		BlockedDates: []string{"2025-07-10"},
		WeeklyWorkingHours: map[string][]string{
			"Thursday": {"09:00-17:00"},
		},
	}

	got, err := policy.Qualifies(p, instant(t, "2025-07-10T10:00:00Z"))
	require.NoError(t, err)
	assert.False(t, got, "blocked date wins over working hours")

	// Following Thursday is not blocked.
	got, err = policy.Qualifies(p, instant(t, "2025-07-17T10:00:00Z"))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestWeeklySchedulePolicy_UTCDateBoundary(t *testing.T) {
	policy := WeeklySchedulePolicy{}

	// 2025-07-11T01:00+03:00 is still Thursday 22:00 in UTC.
	p := &models.Provider{
		ID: "p1",
		WeeklyWorkingHours: map[string][]string{
			"Thursday": {"20:00-23:00"},
		},
	}
	desired, err := time.Parse(time.RFC3339, "2025-07-11T01:00:00+03:00")
	require.NoError(t, err)
	utc := desired.UTC()

	got, err := policy.Qualifies(p, &utc)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestWeeklySchedulePolicy_CaseInsensitiveWeekdayKeys(t *testing.T) {
	policy := WeeklySchedulePolicy{}

	p := &models.Provider{
		ID: "p1",
		WeeklyWorkingHours: map[string][]string{
			"thursday": {"09:00-17:00"},
		},
	}
	got, err := policy.Qualifies(p, instant(t, "2025-07-10T10:00:00Z"))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestWeeklySchedulePolicy_MalformedRanges(t *testing.T) {
	policy := WeeklySchedulePolicy{}
	desired := instant(t, "2025-07-10T10:00:00Z")

	tests := []struct {
		name   string
		ranges []string
	}{
		{"missing separator", []string{"0900 1200"}},
		{"garbage time of day", []string{"9am-5pm"}},
		{"inverted range", []string{"17:00-09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Provider{
				ID:                 "p1",
				WeeklyWorkingHours: map[string][]string{"Thursday": tt.ranges},
			}
			_, err := policy.Qualifies(p, desired)
			assert.Error(t, err)
		})
	}
}

func TestNewPolicy(t *testing.T) {
	assert.IsType(t, WeeklySchedulePolicy{}, NewPolicy("weekly"))
	assert.IsType(t, BooleanFlagPolicy{}, NewPolicy("boolean"))
	assert.IsType(t, BooleanFlagPolicy{}, NewPolicy(""))
}
