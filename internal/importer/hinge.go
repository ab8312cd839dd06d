package importer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"swiped/internal/models"
	"swiped/internal/providers"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// HingeExtract is the result of a successful Hinge pipeline run.
type HingeExtract struct {
	HingeID    string
	Anonymized map[string]interface{}
	Matches    []models.HingeMatch
}

// ExtractHingeData parses each file of a multi-file Hinge export,
// classifies and merges them into one document, validates it and derives
// the profile id from the age/signup_time substitutes.
func (e *Extractor) ExtractHingeData(raws []string) (*HingeExtract, error) {
	docs := make([]interface{}, 0, len(raws))
	for i, raw := range raws {
		var doc interface{}
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			e.logger.Errorf(providers.TypeApp, "Hinge export file %d is not valid JSON: %s", i, err)
			return nil, fmt.Errorf("%w: unparseable export file %d", ErrExtractionFailed, i)
		}
		docs = append(docs, doc)
	}

	merged := e.mergeHingeFiles(docs)

	errs, data := e.validateHinge(merged)
	if len(errs) > 0 {
		verr := &ValidationError{Errors: errs}
		e.logger.Errorf(providers.TypeApp, "Hinge export rejected: %s", verr)
		return nil, verr
	}

	anon := anonymizeHinge(merged)
	id := DeriveProfileID(data.Age, data.SignupTime)

	return &HingeExtract{
		HingeID:    id,
		Anonymized: anon,
		Matches:    buildHingeMatches(sliceAt(anon, sectionMatches)),
	}, nil
}

// buildHingeMatches converts the raw matches array into typed entries.
// Entries without an explicit match id get one derived from their own
// timestamps so repeated uploads dedup consistently even if the vendor
// reorders the array.
func buildHingeMatches(raw []interface{}) []models.HingeMatch {
	matches := make([]models.HingeMatch, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		match := models.HingeMatch{
			MatchID:   cast.ToString(m["match_id"]),
			MatchDate: eventDate(m["match"]),
			LikeDate:  eventDate(m["like"]),
		}
		for _, c := range sliceAt(m, "chats") {
			chat, ok := c.(map[string]interface{})
			if !ok {
				continue
			}
			direction := cast.ToString(chat["direction"])
			if direction != "received" {
				direction = "sent"
			}
			match.Chats = append(match.Chats, models.HingeMessage{
				Date:      eventDate(chat),
				Direction: direction,
			})
		}
		if match.MatchID == "" {
			match.MatchID = fallbackMatchID(match, i)
		}
		matches = append(matches, match)
	}
	return matches
}

// fallbackMatchID hashes the entry's like/match/chat timestamps so the id
// stays stable across re-uploads regardless of array position. Entries
// carrying no timestamps at all have nothing stable to hash and keep the
// positional id.
func fallbackMatchID(m models.HingeMatch, idx int) string {
	if m.MatchDate == "" && m.LikeDate == "" && len(m.Chats) == 0 {
		return fmt.Sprintf("match-%04d", idx)
	}
	h := sha256.New()
	h.Write([]byte(m.MatchDate))
	h.Write([]byte{'|'})
	h.Write([]byte(m.LikeDate))
	for _, c := range m.Chats {
		h.Write([]byte{'|'})
		h.Write([]byte(c.Date))
	}
	return "match-" + hex.EncodeToString(h.Sum(nil))[:16]
}

// eventDate digs a timestamp out of the several shapes Hinge has used:
// a bare string, an object with a timestamp, or an array of such objects.
func eventDate(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]interface{}:
		if ts, ok := t["timestamp"]; ok {
			return cast.ToString(ts)
		}
		return cast.ToString(t["date"])
	case []interface{}:
		if len(t) > 0 {
			return eventDate(t[0])
		}
	}
	return ""
}
