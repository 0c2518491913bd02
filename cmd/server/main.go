package main

import (
	"log"

	"tracktime-report/internal/api"
	"tracktime-report/internal/clickup"
	"tracktime-report/internal/config"
	"tracktime-report/internal/services"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize ClickUp client
	client := clickup.NewClient(clickup.Config{
		BaseURL:        cfg.ClickUp.BaseURL,
		APIToken:       cfg.ClickUp.APIToken,
		TimeoutSeconds: cfg.ClickUp.TimeoutSeconds,
	})

	// Initialize services
	entryService := services.NewEntryService(client, cfg.Cache.TTL)
	reportService := services.NewReportService()
	exportService := services.NewExportService()

	// Initialize handlers and routes
	handlers := api.NewHandlers(client, entryService, reportService, exportService)
	router := api.SetupRoutes(handlers)

	// Start server
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
