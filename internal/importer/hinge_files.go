package importer

import "swiped/internal/providers"

// Hinge exports arrive as several independently named JSON files. File
// naming is not stable across client versions, so each file's role is
// inferred from its structural shape. Classification order matters:
// the first matching shape wins per file.

type hingeFileKind int

const (
	hingeFileUnknown hingeFileKind = iota
	hingeFileUser
	hingeFileMatches
	hingeFilePrompts
	hingeFileMedia
	hingeFileSubscriptions
)

const (
	sectionUser          = "user"
	sectionMatches       = "matches"
	sectionPrompts       = "prompts"
	sectionMedia         = "media"
	sectionSubscriptions = "subscriptions"
)

func classifyHingeFile(doc interface{}) hingeFileKind {
	if m, ok := doc.(map[string]interface{}); ok {
		if hasAnyKey(m, "preferences", "identity", "account", "profile") {
			return hingeFileUser
		}
		return hingeFileUnknown
	}

	arr, ok := doc.([]interface{})
	if !ok || len(arr) == 0 {
		return hingeFileUnknown
	}
	first, ok := arr[0].(map[string]interface{})
	if !ok {
		return hingeFileUnknown
	}

	switch {
	case hasAnyKey(first, "chats", "like", "match", "block", "we_met"):
		return hingeFileMatches
	case hasAnyKey(first, "prompt") && hasAnyKey(first, "text", "options") && hasAnyKey(first, "type"):
		return hingeFilePrompts
	case hasAnyKey(first, "url", "media"):
		return hingeFileMedia
	case hasAnyKey(first, "subscription", "plan"):
		return hingeFileSubscriptions
	default:
		return hingeFileUnknown
	}
}

var hingeSectionByKind = map[hingeFileKind]string{
	hingeFileUser:          sectionUser,
	hingeFileMatches:       sectionMatches,
	hingeFilePrompts:       sectionPrompts,
	hingeFileMedia:         sectionMedia,
	hingeFileSubscriptions: sectionSubscriptions,
}

// mergeHingeFiles classifies each parsed file and merges them into one
// logical document. A recognized section set by an earlier file is never
// overwritten; unrecognized objects are merged key-by-key without
// clobbering existing keys.
func (e *Extractor) mergeHingeFiles(docs []interface{}) map[string]interface{} {
	merged := make(map[string]interface{})

	for i, doc := range docs {
		kind := classifyHingeFile(doc)
		if section, ok := hingeSectionByKind[kind]; ok {
			if _, exists := merged[section]; exists {
				e.logger.Warnf(providers.TypeApp, "Hinge file %d also classifies as %s, keeping earlier file", i, section)
				continue
			}
			merged[section] = doc
			continue
		}

		m, ok := doc.(map[string]interface{})
		if !ok {
			e.logger.Warnf(providers.TypeApp, "Hinge file %d has an unrecognized non-object shape, skipping", i)
			continue
		}
		for k, v := range m {
			if _, exists := merged[k]; !exists {
				merged[k] = v
			}
		}
	}

	return merged
}
