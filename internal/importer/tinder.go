package importer

import (
	"fmt"
	"sort"
	"swiped/internal/models"
	"swiped/internal/providers"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Extractor turns raw vendor export files into anonymized payloads. It
// holds no state between calls; the logger is its only dependency.
type Extractor struct {
	logger providers.Logger
}

func NewExtractor(logger providers.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// TinderExtract is the result of a successful Tinder pipeline run.
type TinderExtract struct {
	TinderID   string
	Anonymized map[string]interface{}
	DailyUsage []models.DailyUsageRecord
}

// ExtractTinderData parses, validates and anonymizes a single-file Tinder
// export and derives the profile id from the anonymized birth/create
// dates. Validation failures come back as *ValidationError with their
// full diagnostics; anything else is wrapped as ErrExtractionFailed.
func (e *Extractor) ExtractTinderData(raw string) (*TinderExtract, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		e.logger.Errorf(providers.TypeApp, "Tinder export is not valid JSON: %s", err)
		return nil, fmt.Errorf("%w: unparseable export", ErrExtractionFailed)
	}

	if errs := e.validateTinder(doc); len(errs) > 0 {
		verr := &ValidationError{Errors: errs}
		e.logger.Errorf(providers.TypeApp, "Tinder export rejected: %s", verr)
		return nil, verr
	}

	e.detectPhotoShape(doc)

	anon := anonymizeTinder(doc)
	user := mapAt(anon, "User")
	id := DeriveProfileID(cast.ToString(user["birth_date"]), cast.ToString(user["create_date"]))

	return &TinderExtract{
		TinderID:   id,
		Anonymized: anon,
		DailyUsage: buildDailyUsage(mapAt(anon, "Usage")),
	}, nil
}

// buildDailyUsage flattens the per-field date→count maps of the vendor
// Usage section into one record per calendar day.
func buildDailyUsage(usage map[string]interface{}) []models.DailyUsageRecord {
	appOpens := mapAt(usage, "app_opens")
	likes := mapAt(usage, "swipes_likes")
	passes := mapAt(usage, "swipes_passes")
	matches := mapAt(usage, "matches")
	sent := mapAt(usage, "messages_sent")
	received := mapAt(usage, "messages_received")

	days := make(map[string]struct{})
	for _, m := range []map[string]interface{}{appOpens, likes, passes, matches, sent, received} {
		for day := range m {
			days[day] = struct{}{}
		}
	}

	records := make([]models.DailyUsageRecord, 0, len(days))
	for day := range days {
		rec := models.DailyUsageRecord{
			Date:             day,
			AppOpens:         cast.ToInt(appOpens[day]),
			SwipeLikes:       cast.ToInt(likes[day]),
			SwipePasses:      cast.ToInt(passes[day]),
			Matches:          cast.ToInt(matches[day]),
			MessagesSent:     cast.ToInt(sent[day]),
			MessagesReceived: cast.ToInt(received[day]),
		}
		rec.SwipesCombined = rec.SwipeLikes + rec.SwipePasses
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	return records
}
