package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinderProfile(id string) *Profile {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	return &Profile{
		ID:       id,
		Provider: ProviderTinder,
		Anonymized: map[string]interface{}{
			"User": map[string]interface{}{"birth_date": "1994-06-01"},
		},
		DailyUsage: []DailyUsageRecord{
			{Date: "2024-01-01", SwipeLikes: 10},
			{Date: "2024-01-02", SwipeLikes: 5},
		},
		ImportedAt:   now,
		LastUploadAt: now,
	}
}

func TestProfileStore_GetReturnsClone(t *testing.T) {
	store := NewProfileStore()
	store.Upsert(tinderProfile("p1"))

	a, ok := store.Get("p1")
	require.True(t, ok)
	a.DailyUsage[0].SwipeLikes = 999
	a.Anonymized["User"].(map[string]interface{})["birth_date"] = "mutated"

	b, ok := store.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 10, b.DailyUsage[0].SwipeLikes)
	assert.Equal(t, "1994-06-01", b.Anonymized["User"].(map[string]interface{})["birth_date"])
}

func TestProfileStore_GetMissing(t *testing.T) {
	store := NewProfileStore()
	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestProfileStore_UpsertMergesNewUsageDaysOnly(t *testing.T) {
	store := NewProfileStore()
	store.Upsert(tinderProfile("p1"))

	later := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	store.Upsert(&Profile{
		ID:       "p1",
		Provider: ProviderTinder,
		Anonymized: map[string]interface{}{
			"User": map[string]interface{}{"birth_date": "1994-06-01", "schools": []interface{}{}},
		},
		DailyUsage: []DailyUsageRecord{
			{Date: "2024-01-02", SwipeLikes: 777}, // overlaps, must not replace
			{Date: "2024-01-03", SwipeLikes: 8},
		},
		ImportedAt:   later,
		LastUploadAt: later,
	})

	p, ok := store.Get("p1")
	require.True(t, ok)
	require.Len(t, p.DailyUsage, 3)
	assert.Equal(t, 5, p.DailyUsage[1].SwipeLikes)
	assert.Equal(t, "2024-01-03", p.DailyUsage[2].Date)

	// anonymized document is replaced by the newest upload
	_, hasSchools := p.Anonymized["User"].(map[string]interface{})["schools"]
	assert.True(t, hasSchools)

	// first import time is kept, upload time advances
	assert.Equal(t, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), p.ImportedAt)
	assert.Equal(t, later, p.LastUploadAt)
}

func TestProfileStore_UpsertMergesNewMatchesOnly(t *testing.T) {
	store := NewProfileStore()
	now := time.Now()
	store.Upsert(&Profile{
		ID:       "h1",
		Provider: ProviderHinge,
		Matches: []HingeMatch{
			{MatchID: "m1", MatchDate: "2023-02-01", Chats: []HingeMessage{{Date: "2023-02-02", Direction: "sent"}}},
		},
		ImportedAt:   now,
		LastUploadAt: now,
	})

	store.Upsert(&Profile{
		ID:       "h1",
		Provider: ProviderHinge,
		Matches: []HingeMatch{
			{MatchID: "m1", MatchDate: "changed"},
			{MatchID: "m2", MatchDate: "2023-03-01"},
		},
		ImportedAt:   now,
		LastUploadAt: now,
	})

	p, ok := store.Get("h1")
	require.True(t, ok)
	require.Len(t, p.Matches, 2)
	assert.Equal(t, "2023-02-01", p.Matches[0].MatchDate)
	assert.Len(t, p.Matches[0].Chats, 1)
	assert.Equal(t, "m2", p.Matches[1].MatchID)
}

func TestProfileStore_UpsertDoesNotAliasInput(t *testing.T) {
	store := NewProfileStore()
	in := tinderProfile("p1")
	store.Upsert(in)

	in.DailyUsage[0].SwipeLikes = 123

	p, ok := store.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 10, p.DailyUsage[0].SwipeLikes)
}

func TestProfileStore_GetDataDeepCopies(t *testing.T) {
	store := NewProfileStore()
	store.Upsert(tinderProfile("p1"))

	data := store.GetData()
	data["p1"].DailyUsage[0].SwipeLikes = 42

	p, ok := store.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 10, p.DailyUsage[0].SwipeLikes)
}

func TestProfileStore_PutDataReplaces(t *testing.T) {
	store := NewProfileStore()
	store.Upsert(tinderProfile("p1"))

	store.PutData(map[string]*Profile{
		"p2": tinderProfile("p2"),
	})

	assert.Equal(t, 1, store.Len())
	_, ok := store.Get("p1")
	assert.False(t, ok)
	_, ok = store.Get("p2")
	assert.True(t, ok)
	assert.Equal(t, []string{"p2"}, store.IDs())
}
