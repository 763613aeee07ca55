package app

import (
	"github.com/gorilla/mux"
	"github.com/schichtlog/schichtlog/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Shifts
	r.HandleFunc("/api/shift", deps.ShiftHandler.CreateShift).Methods("POST")
	r.HandleFunc("/api/shift", deps.ShiftHandler.ListShifts).Methods("GET")
	r.HandleFunc("/api/shift/{shiftId}", deps.ShiftHandler.DeleteShift).Methods("DELETE")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.GetSettings).Methods("GET")
	r.HandleFunc("/api/settings/{category}", deps.SettingsHandler.AddItem).Methods("POST")
	r.HandleFunc("/api/settings/{category}/{itemId}", deps.SettingsHandler.RemoveItem).Methods("DELETE")

	// Analysis
	r.HandleFunc("/api/analysis", deps.AnalysisHandler.GetAnalysis).Methods("GET")
	r.HandleFunc("/api/analysis/report", deps.ReportHandler.ExportReport).Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userId}", deps.UserHandler.DeleteUser).Methods("DELETE")
}
