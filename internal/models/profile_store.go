package models

import "sync"

// ProfileStore holds all imported profiles. Reads hand out deep copies;
// the only write paths are Upsert (with additive merge on re-upload)
// and PutData (snapshot restore).
type ProfileStore struct {
	Mutex sync.RWMutex
	Data  map[string]*Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{Data: make(map[string]*Profile)}
}

func (ps *ProfileStore) Get(id string) (*Profile, bool) {
	ps.Mutex.RLock()
	defer ps.Mutex.RUnlock()
	p, ok := ps.Data[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

func (ps *ProfileStore) Len() int {
	ps.Mutex.RLock()
	defer ps.Mutex.RUnlock()
	return len(ps.Data)
}

func (ps *ProfileStore) IDs() []string {
	ps.Mutex.RLock()
	defer ps.Mutex.RUnlock()
	ids := make([]string, 0, len(ps.Data))
	for id := range ps.Data {
		ids = append(ids, id)
	}
	return ids
}

// Upsert stores a freshly extracted profile. If the id already exists the
// histories are merged additively: only usage days and matches not already
// present are appended, existing records are never touched. The anonymized
// document is replaced by the newest upload.
func (ps *ProfileStore) Upsert(p *Profile) {
	ps.Mutex.Lock()
	defer ps.Mutex.Unlock()

	existing, ok := ps.Data[p.ID]
	if !ok {
		ps.Data[p.ID] = p.Clone()
		return
	}

	existing.Anonymized = deepCopyMap(p.Anonymized)
	existing.LastUploadAt = p.LastUploadAt

	seen := make(map[string]struct{}, len(existing.DailyUsage))
	for _, r := range existing.DailyUsage {
		seen[r.Date] = struct{}{}
	}
	for _, r := range p.DailyUsage {
		if _, dup := seen[r.Date]; dup {
			continue
		}
		existing.DailyUsage = append(existing.DailyUsage, r)
	}

	known := make(map[string]struct{}, len(existing.Matches))
	for _, m := range existing.Matches {
		known[m.MatchID] = struct{}{}
	}
	for _, m := range p.Matches {
		if _, dup := known[m.MatchID]; dup {
			continue
		}
		mc := m
		if m.Chats != nil {
			mc.Chats = make([]HingeMessage, len(m.Chats))
			copy(mc.Chats, m.Chats)
		}
		existing.Matches = append(existing.Matches, mc)
	}
}

func (ps *ProfileStore) PutData(data map[string]*Profile) {
	ps.Mutex.Lock()
	defer ps.Mutex.Unlock()
	ps.Data = data
}

func (ps *ProfileStore) GetData() map[string]*Profile {
	ps.Mutex.RLock()
	defer ps.Mutex.RUnlock()

	copyMap := make(map[string]*Profile, len(ps.Data))
	for k, v := range ps.Data {
		copyMap[k] = v.Clone()
	}
	return copyMap
}
