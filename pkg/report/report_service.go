package report

import (
	"context"
	"fmt"

	"github.com/schichtlog/schichtlog/internal/utils"
	"github.com/schichtlog/schichtlog/pkg/analysis"
	"github.com/schichtlog/schichtlog/pkg/settings"
)

type Service interface {
	Generate(ctx context.Context, query analysis.Query) (string, []byte, error)
}

// ServiceImpl runs the analysis pipeline for the requested range and hands the
// snapshot to the renderer.
type ServiceImpl struct {
	analysisService analysis.Service
	settingsService settings.Service
	renderer        Renderer
	clock           utils.Clock
}

func NewReportService(
	analysisService analysis.Service,
	settingsService settings.Service,
	renderer Renderer,
	clock utils.Clock,
) *ServiceImpl {
	return &ServiceImpl{
		analysisService: analysisService,
		settingsService: settingsService,
		renderer:        renderer,
		clock:           clock,
	}
}

// Generate returns the download filename and the rendered document.
func (s *ServiceImpl) Generate(ctx context.Context, query analysis.Query) (string, []byte, error) {
	result, err := s.analysisService.Analyze(ctx, query)
	if err != nil {
		return "", nil, err
	}
	userSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load settings: %w", err)
	}

	content, err := s.renderer.Render(Data{
		Label:       result.Range.Label,
		Stats:       result.Stats,
		TargetHours: result.Range.TargetHours,
		Delta:       result.Delta,
		Shifts:      result.Shifts,
		ShiftTypes:  userSettings.ShiftTypes,
	})
	if err != nil {
		return "", nil, err
	}

	return Filename(result.Range.Label, s.clock.Now()), content, nil
}
