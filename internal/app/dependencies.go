package app

import (
	"github.com/schichtlog/schichtlog/internal/config"
	"github.com/schichtlog/schichtlog/internal/database"
	"github.com/schichtlog/schichtlog/internal/event_bus"
	"github.com/schichtlog/schichtlog/internal/utils"
	"github.com/schichtlog/schichtlog/pkg/analysis"
	"github.com/schichtlog/schichtlog/pkg/report"
	"github.com/schichtlog/schichtlog/pkg/settings"
	"github.com/schichtlog/schichtlog/pkg/shift"
	"github.com/schichtlog/schichtlog/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.Bus
	Clock    utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	SettingsRepo    settings.Repo
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	ShiftRepo     shift.Repo
	ShiftService  shift.Service
	ShiftHandler  *shift.Handler
	OrphanWatcher *shift.OrphanWatcher

	AnalysisService analysis.Service
	AnalysisHandler *analysis.Handler

	PDFRenderer   report.Renderer
	ReportService report.Service
	ReportHandler *report.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *database.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.New()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.SettingsRepo = settings.NewSettingsRepo(db)
	deps.SettingsService = settings.NewSettingsService(deps.SettingsRepo, deps.EventBus)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.ShiftRepo = shift.NewShiftRepo(db)
	deps.ShiftService = shift.NewShiftService(deps.ShiftRepo, deps.EventBus, deps.Clock)
	deps.ShiftHandler = shift.NewHandler(deps.ShiftService)
	deps.OrphanWatcher = shift.NewOrphanWatcher(deps.ShiftRepo)
	deps.OrphanWatcher.Register(deps.EventBus)

	deps.AnalysisService = analysis.NewAnalysisService(deps.ShiftService, deps.SettingsService, deps.Clock)
	deps.AnalysisHandler = analysis.NewHandler(deps.AnalysisService)

	deps.PDFRenderer = report.NewPDFRenderer(deps.Clock)
	deps.ReportService = report.NewReportService(deps.AnalysisService, deps.SettingsService, deps.PDFRenderer, deps.Clock)
	deps.ReportHandler = report.NewHandler(deps.ReportService)

	return deps
}
