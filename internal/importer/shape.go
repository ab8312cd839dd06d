package importer

// Helpers for poking at the semi-structured vendor documents. Everything
// arrives as map[string]interface{}/[]interface{} from the JSON decoder.

func mapAt(doc map[string]interface{}, key string) map[string]interface{} {
	if doc == nil {
		return nil
	}
	m, _ := doc[key].(map[string]interface{})
	return m
}

func sliceAt(doc map[string]interface{}, key string) []interface{} {
	if doc == nil {
		return nil
	}
	s, _ := doc[key].([]interface{})
	return s
}

func hasAnyKey(m map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func topLevelKeys(doc map[string]interface{}) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	return keys
}

// truthy mirrors the loose presence semantics of the vendor exports:
// nil, false, empty string and numeric zero are absent, anything else
// counts as set.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}
