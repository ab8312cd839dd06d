package services

import (
	"swiped/internal/aggregate"
	"swiped/internal/importer"
	"swiped/internal/models"
	"swiped/internal/providers"
	"time"

	"go.uber.org/atomic"
)

type Comparison struct {
	From         string                    `json:"from"`
	To           string                    `json:"to"`
	PreviousFrom string                    `json:"previousFrom"`
	PreviousTo   string                    `json:"previousTo"`
	Current      []models.AggregatedBucket `json:"current"`
	Previous     []models.AggregatedBucket `json:"previous"`
}

type ProfileServiceInterface interface {
	ImportTinder(raw string) (string, error)
	ImportHinge(raws []string) (string, error)
	GetAggregated(id string, g aggregate.Granularity) ([]models.AggregatedBucket, bool)
	GetComparison(id string, g aggregate.Granularity, from, to time.Time) (*Comparison, bool)
	GetProfiles() []models.ProfileSummary
	GetProfileCount() int
	GetImportCount() int64
	GetSnapshot() *models.StorageV2
	PutProfiles(data map[string]*models.Profile)
}

type ProfileService struct {
	logger    providers.Logger
	extractor *importer.Extractor
	store     *models.ProfileStore
	imports   atomic.Int64
}

func NewProfileService(logger providers.Logger, extractor *importer.Extractor) ProfileServiceInterface {
	return &ProfileService{
		logger:    logger,
		extractor: extractor,
		store:     models.NewProfileStore(),
	}
}

func (ps *ProfileService) ImportTinder(raw string) (string, error) {
	extract, err := ps.extractor.ExtractTinderData(raw)
	if err != nil {
		return "", err
	}

	now := time.Now()
	ps.store.Upsert(&models.Profile{
		ID:           extract.TinderID,
		Provider:     models.ProviderTinder,
		Anonymized:   extract.Anonymized,
		DailyUsage:   extract.DailyUsage,
		ImportedAt:   now,
		LastUploadAt: now,
	})
	ps.imports.Inc()
	ps.logger.Infof(providers.TypeApp, "Imported tinder profile %s (%d usage days)", extract.TinderID, len(extract.DailyUsage))
	return extract.TinderID, nil
}

func (ps *ProfileService) ImportHinge(raws []string) (string, error) {
	extract, err := ps.extractor.ExtractHingeData(raws)
	if err != nil {
		return "", err
	}

	now := time.Now()
	ps.store.Upsert(&models.Profile{
		ID:           extract.HingeID,
		Provider:     models.ProviderHinge,
		Anonymized:   extract.Anonymized,
		Matches:      extract.Matches,
		ImportedAt:   now,
		LastUploadAt: now,
	})
	ps.imports.Inc()
	ps.logger.Infof(providers.TypeApp, "Imported hinge profile %s (%d matches)", extract.HingeID, len(extract.Matches))
	return extract.HingeID, nil
}

func (ps *ProfileService) GetAggregated(id string, g aggregate.Granularity) ([]models.AggregatedBucket, bool) {
	profile, ok := ps.store.Get(id)
	if !ok {
		return nil, false
	}
	if profile.Provider == models.ProviderHinge {
		return aggregate.AggregateHingeEvents(profile.Matches, g), true
	}
	return aggregate.AggregateDailyUsage(profile.DailyUsage, g), true
}

func (ps *ProfileService) GetComparison(id string, g aggregate.Granularity, from, to time.Time) (*Comparison, bool) {
	profile, ok := ps.store.Get(id)
	if !ok {
		return nil, false
	}

	previousFrom, previousTo := aggregate.CalculatePreviousPeriod(from, to)

	cmp := &Comparison{
		From:         from.Format(time.RFC3339),
		To:           to.Format(time.RFC3339),
		PreviousFrom: previousFrom.Format(time.RFC3339),
		PreviousTo:   previousTo.Format(time.RFC3339),
	}

	if profile.Provider == models.ProviderHinge {
		cmp.Current = aggregate.AggregateHingeEvents(aggregate.FilterMatchesByDateRange(profile.Matches, from, to), g)
		cmp.Previous = aggregate.AggregateHingeEvents(aggregate.FilterMatchesByDateRange(profile.Matches, previousFrom, previousTo), g)
		return cmp, true
	}

	cmp.Current = aggregate.AggregateDailyUsage(aggregate.FilterByDateRange(profile.DailyUsage, from, to), g)
	cmp.Previous = aggregate.AggregateDailyUsage(aggregate.FilterByDateRange(profile.DailyUsage, previousFrom, previousTo), g)
	return cmp, true
}

func (ps *ProfileService) GetProfiles() []models.ProfileSummary {
	summaries := make([]models.ProfileSummary, 0, ps.store.Len())
	for _, id := range ps.store.IDs() {
		profile, ok := ps.store.Get(id)
		if !ok {
			continue
		}
		summaries = append(summaries, models.ProfileSummary{
			ID:           profile.ID,
			Provider:     profile.Provider,
			UsageDays:    len(profile.DailyUsage),
			Matches:      len(profile.Matches),
			ImportedAt:   profile.ImportedAt,
			LastUploadAt: profile.LastUploadAt,
		})
	}
	return summaries
}

func (ps *ProfileService) GetProfileCount() int {
	return ps.store.Len()
}

func (ps *ProfileService) GetImportCount() int64 {
	return ps.imports.Load()
}

func (ps *ProfileService) GetSnapshot() *models.StorageV2 {
	return &models.StorageV2{
		Version:  models.StorageVersion,
		Profiles: ps.store.GetData(),
		SavedAt:  time.Now(),
	}
}

func (ps *ProfileService) PutProfiles(data map[string]*models.Profile) {
	ps.store.PutData(data)
}
