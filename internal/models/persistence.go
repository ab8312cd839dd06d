package models

import "time"

// StorageV2 is the current persistence envelope with an explicit version
// field. V1 files (a bare id→profile map) unmarshal with Version zero,
// which the file manager uses to route migration.
type StorageV2 struct {
	Version  int                 `json:"version"`
	Profiles map[string]*Profile `json:"profiles"`
	SavedAt  time.Time           `json:"saved_at"`
}

const StorageVersion = 2
