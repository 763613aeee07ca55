package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schichtlog/schichtlog/internal/event_bus"
	"github.com/schichtlog/schichtlog/pkg/analysis"
	"github.com/schichtlog/schichtlog/pkg/settings"
	"github.com/schichtlog/schichtlog/pkg/shift"
	"github.com/schichtlog/schichtlog/pkg/user"
)

var ctx = user.WithUser(context.Background(), user.User{Id: "user-1", Username: "anna"})

func setupReportService(t *testing.T) (Service, shift.Service) {
	t.Helper()

	bus := event_bus.New()
	clock := testClock()
	shiftService := shift.NewShiftService(shift.NewStubShiftRepo(), bus, clock)
	settingsService := settings.NewSettingsService(settings.NewStubSettingsRepo(), bus)
	analysisService := analysis.NewAnalysisService(shiftService, settingsService, clock)

	return NewReportService(analysisService, settingsService, NewPDFRenderer(clock), clock), shiftService
}

func TestServiceImpl_Generate(t *testing.T) {
	t.Run("should return filename and document for the current month", func(t *testing.T) {
		// given
		service, shiftService := setupReportService(t)
		_, err := shiftService.Create(ctx, shift.Shift{Date: "2024-03-01", StartTime: "06:00", EndTime: "18:00"})
		require.NoError(t, err)

		// when
		filename, content, err := service.Generate(ctx, analysis.Query{Mode: analysis.ModeMonth})

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Schichttagebuch_März_2024_2024-03-31.pdf", filename)
		require.NotEmpty(t, content)
		assert.Equal(t, "%PDF", string(content[:4]))
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		// given
		service, _ := setupReportService(t)

		// when
		_, _, err := service.Generate(context.Background(), analysis.Query{Mode: analysis.ModeMonth})

		// then
		assert.Error(t, err)
	})
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.March, 31, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{"month label", "März 2024", "Schichttagebuch_März_2024_2024-03-31.pdf"},
		{"year label", "2024", "Schichttagebuch_2024_2024-03-31.pdf"},
		{"custom range label", "01.03.24 - 14.03.24", "Schichttagebuch_01.03.24_-_14.03.24_2024-03-31.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Filename(tt.label, now))
		})
	}
}
