package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hingeUserDoc() map[string]interface{} {
	return map[string]interface{}{
		"preferences": map[string]interface{}{"distance_miles_max": float64(25)},
		"account":     map[string]interface{}{"signup_time": "2023-01-01T00:00:00Z"},
		"identity": map[string]interface{}{
			"fbid":                       "fb-1",
			"phone_country_code":         "DE",
			"phone_country_calling_code": "49",
			"instagram_authorized":       false,
			"email":                      "jane@example.com",
			"phone":                      "+4915112345678",
			"phone_carrier":              "TestCarrier",
		},
		"installs": []interface{}{
			map[string]interface{}{"app_version": "9.1.0", "ip_address": "10.0.0.1", "idfa": "x", "idfv": "y", "adid": "z", "user_agent": "ua"},
			map[string]interface{}{"app_version": "9.2.0"},
		},
		"devices": []interface{}{
			map[string]interface{}{"platform": "android", "device_id": "d-1", "user_agent": "ua"},
		},
		"location": map[string]interface{}{"country": "DE", "latitude": float64(52.5), "longitude": float64(13.4)},
		"profile": map[string]interface{}{
			"age":        float64(28),
			"first_name": "Jane",
			"last_name":  "Roe",
			"height":     float64(170),
		},
	}
}

func TestAnonymizeHinge_IdentityAllowlist(t *testing.T) {
	merged := map[string]interface{}{"user": hingeUserDoc()}

	anon := anonymizeHinge(merged)
	identity := anon["user"].(map[string]interface{})["identity"].(map[string]interface{})

	assert.Equal(t, "fb-1", identity["fbid"])
	assert.Equal(t, "DE", identity["phone_country_code"])
	assert.Equal(t, "49", identity["phone_country_calling_code"])
	assert.Equal(t, false, identity["instagram_authorized"])
	assert.Equal(t, true, identity["has_email"])
	assert.Equal(t, true, identity["has_phone"])
	assert.Equal(t, true, identity["has_phone_carrier"])

	for _, dropped := range []string{"email", "phone", "phone_carrier"} {
		_, present := identity[dropped]
		assert.False(t, present, "raw field %s must be dropped", dropped)
	}
}

func TestAnonymizeHinge_InstallsAndDevices(t *testing.T) {
	merged := map[string]interface{}{"user": hingeUserDoc()}

	anon := anonymizeHinge(merged)
	user := anon["user"].(map[string]interface{})

	installs := user["installs"].([]interface{})
	require.Len(t, installs, 2)
	first := installs[0].(map[string]interface{})
	assert.Equal(t, "9.1.0", first["app_version"])
	for _, dropped := range hingeInstallDrop {
		_, present := first[dropped]
		assert.False(t, present, "install field %s must be dropped", dropped)
	}

	devices := user["devices"].([]interface{})
	require.Len(t, devices, 1)
	device := devices[0].(map[string]interface{})
	assert.Equal(t, "android", device["platform"])
	for _, dropped := range hingeDeviceDrop {
		_, present := device[dropped]
		assert.False(t, present, "device field %s must be dropped", dropped)
	}
}

func TestAnonymizeHinge_LocationReducedToCountry(t *testing.T) {
	merged := map[string]interface{}{"user": hingeUserDoc()}

	anon := anonymizeHinge(merged)
	location := anon["user"].(map[string]interface{})["location"].(map[string]interface{})

	assert.Equal(t, map[string]interface{}{"country": "DE"}, location)
}

func TestAnonymizeHinge_ProfileNameFlags(t *testing.T) {
	merged := map[string]interface{}{"user": hingeUserDoc()}

	anon := anonymizeHinge(merged)
	profile := anon["user"].(map[string]interface{})["profile"].(map[string]interface{})

	_, hasFirst := profile["first_name"]
	_, hasLast := profile["last_name"]
	assert.False(t, hasFirst)
	assert.False(t, hasLast)
	assert.Equal(t, true, profile["has_first_name"])
	assert.Equal(t, true, profile["has_last_name"])
	assert.Equal(t, float64(28), profile["age"])
	assert.Equal(t, float64(170), profile["height"])
}

func TestAnonymizeHinge_OtherSectionsPassThrough(t *testing.T) {
	matches := []interface{}{map[string]interface{}{"match": "2023-02-01"}}
	prompts := []interface{}{map[string]interface{}{"prompt": "p", "text": "t", "type": "free"}}
	media := []interface{}{map[string]interface{}{"url": "https://m.example.com/1.jpg"}}
	subs := []interface{}{map[string]interface{}{"plan": "hinge+"}}
	merged := map[string]interface{}{
		"user":          hingeUserDoc(),
		"matches":       matches,
		"prompts":       prompts,
		"media":         media,
		"subscriptions": subs,
	}

	anon := anonymizeHinge(merged)

	assert.Equal(t, matches, anon["matches"])
	assert.Equal(t, prompts, anon["prompts"])
	assert.Equal(t, media, anon["media"])
	assert.Equal(t, subs, anon["subscriptions"])
}
