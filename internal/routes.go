package internal

import (
	"net/http"
	"swiped/internal/controllers"
	"swiped/internal/providers"
	"swiped/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/import/tinder", http.HandlerFunc(apiController.ReceiveTinderExport))
	routers.Post("/import/hinge", http.HandlerFunc(apiController.ReceiveHingeExport))
	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	routers.Get("/stats/compare", http.HandlerFunc(apiController.GetComparison))
	routers.Get("/profiles", http.HandlerFunc(apiController.GetProfiles))
	return routers
}
