package importer

// Identity fields carried over as-is; everything else in identity is
// either dropped or reduced to a presence flag.
var hingeIdentityKeep = []string{"fbid", "phone_country_code", "phone_country_calling_code", "instagram_authorized"}

var hingeInstallDrop = []string{"ip_address", "idfa", "idfv", "adid", "user_agent"}
var hingeDeviceDrop = []string{"device_id", "user_agent"}

// anonymizeHinge builds a redacted copy of a merged Hinge document. The
// user section is rebuilt field by field; matches, prompts, media and
// subscriptions pass through untouched.
func anonymizeHinge(merged map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(merged))
	for k, v := range merged {
		out[k] = v
	}

	user := mapAt(merged, sectionUser)
	if user == nil {
		return out
	}

	redacted := make(map[string]interface{}, len(user))
	if prefs, ok := user["preferences"]; ok {
		redacted["preferences"] = prefs
	}
	if account, ok := user["account"]; ok {
		redacted["account"] = account
	}

	if identity := mapAt(user, "identity"); identity != nil {
		redacted["identity"] = anonymizeHingeIdentity(identity)
	}
	if installs, ok := user["installs"].([]interface{}); ok {
		redacted["installs"] = dropFieldsFromEntries(installs, hingeInstallDrop)
	}
	if devices, ok := user["devices"].([]interface{}); ok {
		redacted["devices"] = dropFieldsFromEntries(devices, hingeDeviceDrop)
	}
	if location := mapAt(user, "location"); location != nil {
		loc := make(map[string]interface{}, 1)
		if country, ok := location["country"]; ok {
			loc["country"] = country
		}
		redacted["location"] = loc
	}
	if profile := mapAt(user, "profile"); profile != nil {
		redacted["profile"] = anonymizeHingeProfile(profile)
	}

	out[sectionUser] = redacted
	return out
}

func anonymizeHingeIdentity(identity map[string]interface{}) map[string]interface{} {
	kept := make(map[string]interface{}, len(hingeIdentityKeep)+3)
	for _, k := range hingeIdentityKeep {
		if v, ok := identity[k]; ok {
			kept[k] = v
		}
	}
	kept["has_email"] = truthy(identity["email"])
	kept["has_phone"] = truthy(identity["phone"])
	kept["has_phone_carrier"] = truthy(identity["phone_carrier"])
	return kept
}

func anonymizeHingeProfile(profile map[string]interface{}) map[string]interface{} {
	kept := make(map[string]interface{}, len(profile))
	for k, v := range profile {
		if k == "first_name" || k == "last_name" {
			continue
		}
		kept[k] = v
	}
	kept["has_first_name"] = truthy(profile["first_name"])
	kept["has_last_name"] = truthy(profile["last_name"])
	return kept
}

// dropFieldsFromEntries rebuilds each array entry without the given
// fields, preserving array length and entry order.
func dropFieldsFromEntries(entries []interface{}, drop []string) []interface{} {
	out := make([]interface{}, len(entries))
	for i, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			out[i] = entry
			continue
		}
		cp := make(map[string]interface{}, len(m))
		for k, v := range m {
			cp[k] = v
		}
		for _, field := range drop {
			delete(cp, field)
		}
		out[i] = cp
	}
	return out
}
