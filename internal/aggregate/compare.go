package aggregate

import (
	"swiped/internal/models"
	"time"
)

// FilterByDateRange keeps the records whose date falls inside
// [from 00:00:00.000, to 23:59:59.999]. Both bounds are normalized to
// calendar-day boundaries regardless of the time-of-day passed in.
func FilterByDateRange(records []models.DailyUsageRecord, from, to time.Time) []models.DailyUsageRecord {
	start, end := dayBounds(from, to)

	out := make([]models.DailyUsageRecord, 0, len(records))
	for _, rec := range records {
		t, err := time.ParseInLocation(dayStampLayout, rec.Date, from.Location())
		if err != nil {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterMatchesByDateRange applies the same bounds to Hinge matches,
// keyed by their match date.
func FilterMatchesByDateRange(matches []models.HingeMatch, from, to time.Time) []models.HingeMatch {
	start, end := dayBounds(from, to)

	out := make([]models.HingeMatch, 0, len(matches))
	for _, m := range matches {
		if m.MatchDate == "" {
			continue
		}
		t, err := time.ParseInLocation(dayStampLayout, dayStamp(m.MatchDate), from.Location())
		if err != nil {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			out = append(out, m)
		}
	}
	return out
}

// CalculatePreviousPeriod returns the immediately preceding range of
// identical duration: previousTo = from − 1ms, previousFrom = previousTo
// − (to − from). The returned range never overlaps the input and its
// millisecond duration always equals the input's.
func CalculatePreviousPeriod(from, to time.Time) (time.Time, time.Time) {
	previousTo := from.Add(-time.Millisecond)
	previousFrom := previousTo.Add(-to.Sub(from))
	return previousFrom, previousTo
}

func dayBounds(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(999*time.Millisecond), to.Location())
	return start, end
}
