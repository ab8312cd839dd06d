package services

import (
	"swiped/internal/aggregate"
	"swiped/internal/importer"
	"swiped/internal/models"
	"swiped/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinderExport = `{
	"Usage": {
		"app_opens": {"2024-01-01": 3, "2024-01-02": 2},
		"swipes_likes": {"2024-01-01": 10, "2024-01-02": 5},
		"swipes_passes": {"2024-01-01": 5, "2024-01-02": 5},
		"matches": {"2024-01-01": 2, "2024-01-02": 1},
		"messages_sent": {"2024-01-01": 7},
		"messages_received": {"2024-01-01": 4}
	},
	"Messages": [],
	"User": {
		"birth_date": "1994-06-01",
		"create_date": "2022-11-20",
		"email": "somebody@example.com"
	}
}`

const hingeUserExport = `{"profile":{"age":28},"account":{"signup_time":"2023-01-01T00:00:00Z"},"identity":{}}`
const hingeMatchesExport = `[{"match":"2023-02-01","like":"2023-01-30","chats":[{"timestamp":"2023-02-02T10:00:00Z"}]}]`

func newTestService() (ProfileServiceInterface, *testutil.MockLogger) {
	logger := &testutil.MockLogger{}
	return NewProfileService(logger, importer.NewExtractor(logger)), logger
}

func TestProfileService_ImportTinderThenAggregate(t *testing.T) {
	svc, _ := newTestService()

	id, err := svc.ImportTinder(tinderExport)
	require.NoError(t, err)
	assert.Equal(t, importer.DeriveProfileID("1994-06-01", "2022-11-20"), id)
	assert.Equal(t, 1, svc.GetProfileCount())
	assert.Equal(t, int64(1), svc.GetImportCount())

	buckets, ok := svc.GetAggregated(id, aggregate.GranularityWeekly)
	require.True(t, ok)
	require.Len(t, buckets, 1)
	assert.Equal(t, 3, buckets[0].Matches)
	assert.Equal(t, 15, buckets[0].SwipeLikes)
	assert.InDelta(t, 0.2, buckets[0].MatchRate, 1e-9)
	assert.InDelta(t, 0.6, buckets[0].LikeRatio, 1e-9)
}

func TestProfileService_ImportTinderInvalid(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ImportTinder(`{"User":{}}`)
	var verr *importer.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, svc.GetProfileCount())
	assert.Equal(t, int64(0), svc.GetImportCount())
}

func TestProfileService_ImportHingeThenAggregate(t *testing.T) {
	svc, _ := newTestService()

	id, err := svc.ImportHinge([]string{hingeUserExport, hingeMatchesExport})
	require.NoError(t, err)

	buckets, ok := svc.GetAggregated(id, aggregate.GranularityMonthly)
	require.True(t, ok)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2023-01", buckets[0].Period)
	assert.Equal(t, 1, buckets[0].SwipeLikes)
	assert.Equal(t, "2023-02", buckets[1].Period)
	assert.Equal(t, 1, buckets[1].Matches)
	assert.Equal(t, 1, buckets[1].MessagesSent)
	assert.Equal(t, 1, buckets[1].ConversationsStarted)
}

func TestProfileService_ReuploadMergesAdditively(t *testing.T) {
	svc, _ := newTestService()

	id, err := svc.ImportTinder(tinderExport)
	require.NoError(t, err)

	// second export overlaps one day and adds another
	second := `{
		"Usage": {
			"app_opens": {"2024-01-02": 99, "2024-01-03": 1},
			"swipes_likes": {"2024-01-03": 4},
			"swipes_passes": {},
			"matches": {},
			"messages_sent": {},
			"messages_received": {}
		},
		"Messages": [],
		"User": {"birth_date": "1994-06-01", "create_date": "2022-11-20"}
	}`
	id2, err := svc.ImportTinder(second)
	require.NoError(t, err)
	assert.Equal(t, id, id2)
	assert.Equal(t, 1, svc.GetProfileCount())
	assert.Equal(t, int64(2), svc.GetImportCount())

	buckets, ok := svc.GetAggregated(id, aggregate.GranularityDaily)
	require.True(t, ok)
	require.Len(t, buckets, 3)
	// overlapping day keeps the original numbers
	assert.Equal(t, "2024-01-02", buckets[1].Period)
	assert.Equal(t, 2, buckets[1].AppOpens)
	assert.Equal(t, "2024-01-03", buckets[2].Period)
	assert.Equal(t, 4, buckets[2].SwipeLikes)
}

func TestProfileService_GetAggregatedUnknownProfile(t *testing.T) {
	svc, _ := newTestService()
	_, ok := svc.GetAggregated("missing", aggregate.GranularityDaily)
	assert.False(t, ok)
}

func TestProfileService_GetComparison(t *testing.T) {
	svc, _ := newTestService()
	id, err := svc.ImportTinder(tinderExport)
	require.NoError(t, err)

	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	cmp, ok := svc.GetComparison(id, aggregate.GranularityDaily, from, to)
	require.True(t, ok)

	require.Len(t, cmp.Current, 1)
	assert.Equal(t, "2024-01-02", cmp.Current[0].Period)
	require.Len(t, cmp.Previous, 1)
	assert.Equal(t, "2024-01-01", cmp.Previous[0].Period)

	assert.Equal(t, "2024-01-02T00:00:00Z", cmp.From)
	assert.Equal(t, "2024-01-01T23:59:59Z", cmp.PreviousTo)
}

func TestProfileService_GetComparisonUnknownProfile(t *testing.T) {
	svc, _ := newTestService()
	_, ok := svc.GetComparison("missing", aggregate.GranularityDaily, time.Now(), time.Now())
	assert.False(t, ok)
}

func TestProfileService_GetProfiles(t *testing.T) {
	svc, _ := newTestService()
	tid, err := svc.ImportTinder(tinderExport)
	require.NoError(t, err)
	hid, err := svc.ImportHinge([]string{hingeUserExport, hingeMatchesExport})
	require.NoError(t, err)

	summaries := svc.GetProfiles()
	require.Len(t, summaries, 2)

	byID := make(map[string]models.ProfileSummary)
	for _, s := range summaries {
		byID[s.ID] = s
	}
	assert.Equal(t, models.ProviderTinder, byID[tid].Provider)
	assert.Equal(t, 2, byID[tid].UsageDays)
	assert.Equal(t, models.ProviderHinge, byID[hid].Provider)
	assert.Equal(t, 1, byID[hid].Matches)
}

func TestProfileService_SnapshotRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	id, err := svc.ImportTinder(tinderExport)
	require.NoError(t, err)

	snap := svc.GetSnapshot()
	assert.Equal(t, models.StorageVersion, snap.Version)
	require.Contains(t, snap.Profiles, id)
	assert.WithinDuration(t, time.Now(), snap.SavedAt, time.Minute)

	restored, _ := newTestService()
	restored.PutProfiles(snap.Profiles)
	assert.Equal(t, 1, restored.GetProfileCount())

	buckets, ok := restored.GetAggregated(id, aggregate.GranularityYearly)
	require.True(t, ok)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024", buckets[0].Period)
}
