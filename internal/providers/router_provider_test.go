package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/stats", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/stats", routes[0].Url)
}

func TestRouterProvider_PostAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/import/tinder", dummyHandler())

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/import/tinder", routes[0].Url)
}

func TestRouterProvider_GetRejectsOtherMethods(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/stats", dummyHandler())

	req := httptest.NewRequest(http.MethodPost, "/stats", nil)
	rec := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterProvider_PostRejectsOtherMethods(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/import/tinder", dummyHandler())

	req := httptest.NewRequest(http.MethodGet, "/import/tinder", nil)
	rec := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterProvider_MatchingMethodPasses(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/profiles", dummyHandler())

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rec := httptest.NewRecorder()
	rp.GetRoutes()[0].Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
