package importer

import (
	"sort"
	"swiped/internal/providers"

	"github.com/spf13/cast"
)

var tinderUsageFields = []string{
	"app_opens", "swipes_likes", "swipes_passes",
	"matches", "messages_sent", "messages_received",
}

var tinderOptionalUserFields = []string{
	"birth_date", "gender", "gender_filter",
	"interested_in", "age_filter_min", "age_filter_max",
}

// validateTinder runs the ordered checks over a parsed Tinder export.
// It mutates doc in exactly one place: the create_date recovery writes
// the inferred value back into User so downstream steps see it.
func (e *Extractor) validateTinder(doc map[string]interface{}) []FieldError {
	var errs []FieldError

	usage, ok := doc["Usage"].(map[string]interface{})
	if !ok {
		return append(errs, FieldError{
			Kind:    KindUsageMissing,
			Message: "export has no Usage section",
			Diagnostics: map[string]interface{}{
				"top_level_keys": topLevelKeys(doc),
			},
		})
	}

	for _, field := range tinderUsageFields {
		if len(mapAt(usage, field)) == 0 {
			e.logger.Warnf(providers.TypeApp, "Tinder usage field %s is empty", field)
		}
	}

	appOpens := mapAt(usage, "app_opens")
	if len(appOpens) == 0 {
		errs = append(errs, FieldError{
			Kind:    KindAppOpens,
			Message: "Usage.app_opens has no entries",
		})
	}

	if messages, ok := doc["Messages"].([]interface{}); !ok {
		errs = append(errs, FieldError{
			Kind:    KindMessagesInvalid,
			Message: "Messages is missing or not an array",
		})
	} else {
		e.logger.Debugf(providers.TypeApp, "Tinder export has %d message threads", len(messages))
	}

	user, ok := doc["User"].(map[string]interface{})
	if !ok {
		return append(errs, FieldError{
			Kind:    KindUserMissing,
			Message: "export has no User section",
		})
	}

	for _, field := range tinderOptionalUserFields {
		if _, ok := user[field]; !ok {
			e.logger.Warnf(providers.TypeApp, "Tinder user field %s is missing", field)
		}
	}

	if _, ok := user["birth_date"]; !ok {
		errs = append(errs, FieldError{
			Kind:    KindUserBirthDate,
			Message: "User.birth_date is missing",
		})
	}

	if _, ok := user["create_date"]; !ok {
		if recovered, ok := earliestUsageDay(appOpens); ok {
			e.logger.Warnf(providers.TypeApp, "User.create_date missing, inferred %s from app_opens", recovered)
			user["create_date"] = recovered
		} else {
			errs = append(errs, FieldError{
				Kind:    KindUserCreateDate,
				Message: "User.create_date is missing and cannot be inferred",
				Diagnostics: map[string]interface{}{
					"usage_days":      len(appOpens),
					"app_opens_total": sumUsageValues(appOpens),
				},
			})
		}
	}

	return errs
}

// earliestUsageDay returns the lexicographically smallest date key, which
// for YYYY-MM-DD stamps is also the earliest calendar day.
func earliestUsageDay(usage map[string]interface{}) (string, bool) {
	if len(usage) == 0 {
		return "", false
	}
	days := make([]string, 0, len(usage))
	for day := range usage {
		days = append(days, day)
	}
	sort.Strings(days)
	return days[0], true
}

func sumUsageValues(usage map[string]interface{}) int {
	total := 0
	for _, v := range usage {
		total += cast.ToInt(v)
	}
	return total
}

// detectPhotoShape reports which historical photo-array layout is present.
// Telemetry only; the anonymizer treats both the same.
func (e *Extractor) detectPhotoShape(doc map[string]interface{}) {
	photos := sliceAt(doc, "Photos")
	if len(photos) == 0 {
		return
	}
	if _, ok := photos[0].(map[string]interface{}); ok {
		e.logger.Debugf(providers.TypeApp, "Tinder export uses object-array photo layout (%d photos)", len(photos))
		return
	}
	e.logger.Debugf(providers.TypeApp, "Tinder export uses plain-URL photo layout (%d photos)", len(photos))
}
