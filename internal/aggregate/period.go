package aggregate

import (
	"fmt"
	"time"
)

type Granularity string

const (
	GranularityDaily     Granularity = "daily"
	GranularityWeekly    Granularity = "weekly"
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

// ParseGranularity maps caller input to a Granularity. The aggregation
// functions themselves assume a valid value; this is the boundary check
// for user-supplied strings.
func ParseGranularity(s string) (Granularity, bool) {
	switch Granularity(s) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly, GranularityQuarterly, GranularityYearly:
		return Granularity(s), true
	}
	return "", false
}

const dayStampLayout = "2006-01-02"

// periodKey computes the canonical sortable bucket key for a YYYY-MM-DD
// date stamp. All five formats are zero-padded and year-anchored, so
// plain lexicographic sorting orders them chronologically. Vendor exports
// are the ultimate source of these stamps, so malformed ones group under
// their raw value instead of failing.
func periodKey(date string, g Granularity) string {
	switch g {
	case GranularityDaily:
		return date
	case GranularityWeekly:
		return weekKey(date)
	case GranularityMonthly:
		if len(date) < 7 {
			return date
		}
		return date[:7]
	case GranularityQuarterly:
		t, err := time.Parse(dayStampLayout, date)
		if err != nil {
			return date
		}
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("%04d-Q%d", t.Year(), quarter)
	case GranularityYearly:
		if len(date) < 4 {
			return date
		}
		return date[:4]
	}
	panic("unknown granularity: " + string(g))
}

// weekKey uses the simplified week formula ceil((dayOfYear + jan1Weekday
// + 1) / 7). This is deliberately not ISO-8601 week numbering; weeks
// never span a year boundary.
func weekKey(date string) string {
	t, err := time.Parse(dayStampLayout, date)
	if err != nil {
		return date
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	week := (t.YearDay() + int(jan1.Weekday()) + 1 + 6) / 7
	return fmt.Sprintf("%04d-W%02d", t.Year(), week)
}

// periodDisplay builds the human label for a bucket. firstDate is the
// date stamp of the first record grouped into the bucket; the weekly
// label rolls it back to the preceding Sunday rather than decoding the
// week key.
func periodDisplay(key, firstDate string, g Granularity) string {
	switch g {
	case GranularityDaily:
		if t, err := time.Parse(dayStampLayout, key); err == nil {
			return t.Format("Jan 2")
		}
		return key
	case GranularityWeekly:
		t, err := time.Parse(dayStampLayout, firstDate)
		if err != nil {
			return key
		}
		start := t.AddDate(0, 0, -int(t.Weekday()))
		return "Week of " + start.Format("Jan 2")
	case GranularityMonthly:
		if t, err := time.Parse("2006-01", key); err == nil {
			return t.Format("January 2006")
		}
		return key
	case GranularityQuarterly:
		if len(key) == 7 {
			return key[:4] + " " + key[5:]
		}
		return key
	case GranularityYearly:
		return key
	}
	return key
}
