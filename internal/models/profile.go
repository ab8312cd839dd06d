package models

import "time"

type Provider string

const (
	ProviderTinder Provider = "tinder"
	ProviderHinge  Provider = "hinge"
)

// Profile is one anonymized dating profile keyed by its content-derived id.
type Profile struct {
	ID           string                 `json:"id"`
	Provider     Provider               `json:"provider"`
	Anonymized   map[string]interface{} `json:"anonymized"`
	DailyUsage   []DailyUsageRecord     `json:"daily_usage,omitempty"`
	Matches      []HingeMatch           `json:"matches,omitempty"`
	ImportedAt   time.Time              `json:"imported_at"`
	LastUploadAt time.Time              `json:"last_upload_at"`
}

// ProfileSummary is the listing view of a stored profile.
type ProfileSummary struct {
	ID           string    `json:"id"`
	Provider     Provider  `json:"provider"`
	UsageDays    int       `json:"usage_days"`
	Matches      int       `json:"matches"`
	ImportedAt   time.Time `json:"imported_at"`
	LastUploadAt time.Time `json:"last_upload_at"`
}

// Clone returns a deep copy so callers can't mutate stored state.
func (p *Profile) Clone() *Profile {
	cp := &Profile{
		ID:           p.ID,
		Provider:     p.Provider,
		Anonymized:   deepCopyMap(p.Anonymized),
		ImportedAt:   p.ImportedAt,
		LastUploadAt: p.LastUploadAt,
	}
	if p.DailyUsage != nil {
		cp.DailyUsage = make([]DailyUsageRecord, len(p.DailyUsage))
		copy(cp.DailyUsage, p.DailyUsage)
	}
	if p.Matches != nil {
		cp.Matches = make([]HingeMatch, len(p.Matches))
		for i, m := range p.Matches {
			mc := m
			if m.Chats != nil {
				mc.Chats = make([]HingeMessage, len(m.Chats))
				copy(mc.Chats, m.Chats)
			}
			cp.Matches[i] = mc
		}
	}
	return cp
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = deepCopyValue(v)
	}
	return dst
}

func deepCopyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(t)
	case []interface{}:
		cp := make([]interface{}, len(t))
		for i, e := range t {
			cp[i] = deepCopyValue(e)
		}
		return cp
	default:
		return v
	}
}
