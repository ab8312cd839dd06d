package controllers

import (
	"errors"
	"io"
	"net/http"
	"swiped/internal/aggregate"
	"swiped/internal/importer"
	"swiped/internal/providers"
	"swiped/internal/services"
	"swiped/internal/structures"
	"time"

	json "github.com/goccy/go-json"
)

var granularities = []aggregate.Granularity{
	aggregate.GranularityDaily,
	aggregate.GranularityWeekly,
	aggregate.GranularityMonthly,
	aggregate.GranularityQuarterly,
	aggregate.GranularityYearly,
}

type ApiController struct {
	conf    *structures.Config
	logger  providers.Logger
	service services.ProfileServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(conf *structures.Config, logger providers.Logger, service services.ProfileServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		conf:    conf,
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeImportError maps pipeline failures onto the API contract:
// validation errors surface their field-level diagnostics, everything
// else gets a uniform generic response.
func (ac *ApiController) writeImportError(w http.ResponseWriter, provider string, err error) {
	var verr *importer.ValidationError
	if errors.As(err, &verr) {
		ac.metrics.IncImportsTotal(provider, "invalid")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   "validation_failed",
			"details": verr.Errors,
		})
		return
	}
	ac.metrics.IncImportsTotal(provider, "failed")
	if errors.Is(err, importer.ErrExtractionFailed) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "extraction_failed"})
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// invalidateStats drops every cached rollup for a profile after an import.
func (ac *ApiController) invalidateStats(id string) {
	for _, g := range granularities {
		ac.cache.Del("stats:" + id + ":" + string(g))
	}
}

func (ac *ApiController) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, ac.conf.Importer.MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return body, true
}

func (ac *ApiController) ReceiveTinderExport(w http.ResponseWriter, r *http.Request) {
	body, ok := ac.readBody(w, r)
	if !ok {
		return
	}

	id, err := ac.service.ImportTinder(string(body))
	if err != nil {
		ac.writeImportError(w, "tinder", err)
		return
	}

	ac.metrics.IncImportsTotal("tinder", "ok")
	ac.invalidateStats(id)
	writeJSON(w, http.StatusCreated, map[string]string{"tinderId": id})
}

func (ac *ApiController) ReceiveHingeExport(w http.ResponseWriter, r *http.Request) {
	body, ok := ac.readBody(w, r)
	if !ok {
		return
	}

	var files []string
	if err := json.Unmarshal(body, &files); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id, err := ac.service.ImportHinge(files)
	if err != nil {
		ac.writeImportError(w, "hinge", err)
		return
	}

	ac.metrics.IncImportsTotal("hinge", "ok")
	ac.invalidateStats(id)
	writeJSON(w, http.StatusCreated, map[string]string{"hingeId": id})
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("p")
	g, ok := aggregate.ParseGranularity(r.URL.Query().Get("g"))
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cacheKey := "stats:" + id + ":" + string(g)
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	buckets, ok := ac.service.GetAggregated(id, g)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	gson, err := json.Marshal(buckets)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetComparison(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("p")
	g, ok := aggregate.ParseGranularity(r.URL.Query().Get("g"))
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	from, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("from"), time.Local)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	to, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("to"), time.Local)
	if err != nil || to.Before(from) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cmp, ok := ac.service.GetComparison(id, g, from, to)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (ac *ApiController) GetProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.GetProfiles())
}
