package aggregate

import (
	"sort"
	"swiped/internal/models"
)

// AggregateDailyUsage rolls daily usage records up into buckets of the
// requested granularity, summing every metric and computing the derived
// rates. Buckets come back sorted ascending by period key. Empty input
// yields an empty result, never an error.
func AggregateDailyUsage(records []models.DailyUsageRecord, g Granularity) []models.AggregatedBucket {
	grouped := make(map[string][]models.DailyUsageRecord)
	firstDate := make(map[string]string)

	for _, rec := range records {
		key := periodKey(rec.Date, g)
		if _, ok := grouped[key]; !ok {
			firstDate[key] = rec.Date
		}
		grouped[key] = append(grouped[key], rec)
	}

	buckets := make([]models.AggregatedBucket, 0, len(grouped))
	for key, members := range grouped {
		bucket := models.AggregatedBucket{
			Period:        key,
			PeriodDisplay: periodDisplay(key, firstDate[key], g),
		}
		for _, rec := range members {
			bucket.Matches += rec.Matches
			bucket.SwipeLikes += rec.SwipeLikes
			bucket.SwipePasses += rec.SwipePasses
			bucket.AppOpens += rec.AppOpens
			bucket.MessagesSent += rec.MessagesSent
			bucket.MessagesReceived += rec.MessagesReceived
			bucket.SwipesCombined += rec.SwipesCombined
		}
		bucket.TotalMessages = bucket.MessagesSent + bucket.MessagesReceived
		bucket.MatchRate = safeRate(bucket.Matches, bucket.SwipeLikes)
		bucket.LikeRatio = safeRate(bucket.SwipeLikes, bucket.SwipeLikes+bucket.SwipePasses)
		buckets = append(buckets, bucket)
	}

	sortBuckets(buckets)
	return buckets
}

// FlattenHingeEvents turns matches with nested messages into discrete
// dated events: a match event at the matched date, a like event at the
// liked date, and one message event per chat entry.
func FlattenHingeEvents(matches []models.HingeMatch) []models.HingeEvent {
	var events []models.HingeEvent
	for _, m := range matches {
		if m.MatchDate != "" {
			events = append(events, models.HingeEvent{Date: dayStamp(m.MatchDate), Type: models.EventMatch, MatchID: m.MatchID})
		}
		if m.LikeDate != "" {
			events = append(events, models.HingeEvent{Date: dayStamp(m.LikeDate), Type: models.EventLike, MatchID: m.MatchID})
		}
		for _, chat := range m.Chats {
			if chat.Date == "" {
				continue
			}
			t := models.EventMessageSent
			if chat.Direction == "received" {
				t = models.EventMessageReceived
			}
			events = append(events, models.HingeEvent{Date: dayStamp(chat.Date), Type: t, MatchID: m.MatchID})
		}
	}
	return events
}

// AggregateHingeEvents applies the same group-and-sum algorithm to the
// flattened Hinge event stream. conversationsStarted counts the distinct
// match ids that produced a match event inside the bucket.
func AggregateHingeEvents(matches []models.HingeMatch, g Granularity) []models.AggregatedBucket {
	events := FlattenHingeEvents(matches)

	grouped := make(map[string][]models.HingeEvent)
	firstDate := make(map[string]string)
	for _, ev := range events {
		key := periodKey(ev.Date, g)
		if _, ok := grouped[key]; !ok {
			firstDate[key] = ev.Date
		}
		grouped[key] = append(grouped[key], ev)
	}

	buckets := make([]models.AggregatedBucket, 0, len(grouped))
	for key, members := range grouped {
		bucket := models.AggregatedBucket{
			Period:        key,
			PeriodDisplay: periodDisplay(key, firstDate[key], g),
		}
		conversations := make(map[string]struct{})
		for _, ev := range members {
			switch ev.Type {
			case models.EventMatch:
				bucket.Matches++
				conversations[ev.MatchID] = struct{}{}
			case models.EventLike:
				bucket.SwipeLikes++
			case models.EventMessageSent:
				bucket.MessagesSent++
			case models.EventMessageReceived:
				bucket.MessagesReceived++
			}
		}
		bucket.ConversationsStarted = len(conversations)
		bucket.TotalMessages = bucket.MessagesSent + bucket.MessagesReceived
		bucket.MatchRate = safeRate(bucket.Matches, bucket.SwipeLikes)
		bucket.LikeRatio = safeRate(bucket.SwipeLikes, bucket.SwipeLikes+bucket.SwipePasses)
		buckets = append(buckets, bucket)
	}

	sortBuckets(buckets)
	return buckets
}

func safeRate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}

func sortBuckets(buckets []models.AggregatedBucket) {
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})
}

// dayStamp truncates a vendor timestamp to its YYYY-MM-DD prefix.
func dayStamp(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}
