package importer

import "github.com/spf13/cast"

// Direct PII removed outright from the Tinder User section.
var tinderPIIFields = []string{"email", "full_name", "name", "username", "phone_id", "authIds"}

// anonymizeTinder builds a redacted copy of a validated Tinder export.
// Only the User section changes; every other section passes through so
// the document keeps its original structural shape.
func anonymizeTinder(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	user := mapAt(doc, "User")
	redacted := make(map[string]interface{}, len(user))
	for k, v := range user {
		redacted[k] = v
	}
	for _, field := range tinderPIIFields {
		delete(redacted, field)
	}
	redacted["instagram"] = truthy(user["instagram"])
	redacted["spotify"] = spotifyConnected(user["spotify"])

	out["User"] = redacted
	return out
}

// spotifyConnected handles the three historical shapes of the spotify
// field: absent, empty object (current exports carry no boolean), and
// the legacy object with an explicit spotify_connected key.
func spotifyConnected(v interface{}) bool {
	m, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	if connected, ok := m["spotify_connected"]; ok {
		return cast.ToBool(connected)
	}
	return false
}
