package main

import (
	"net/http"

	"clementus360/propalyst/analytics"
	"clementus360/propalyst/api"
	"clementus360/propalyst/config"
	"clementus360/propalyst/middleware"
	"clementus360/propalyst/routes"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	settings := config.LoadSettings()

	// Analytics is an explicit startup step, not an import side effect.
	analytics.Init(settings.MeasurementID)

	client := api.NewClient(settings.APIBaseURL)

	mux := http.NewServeMux()
	routes.RegisterRoutes(mux, client)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.TrackingMiddleware,
	)(mux)

	config.Logger.Info("Propalyst frontend listening on port ", settings.Port, ", backend at ", settings.APIBaseURL)
	config.Logger.Fatal(http.ListenAndServe(":"+settings.Port, handler))
}
