package analysis

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/utils"
	"github.com/schichtlog/schichtlog/pkg/settings"
	"github.com/schichtlog/schichtlog/pkg/shift"
)

// Query selects the reporting interval and the optional attribute filters.
// ReferenceDate zero means "now".
type Query struct {
	Mode          RangeMode
	ReferenceDate string
	CustomStart   string
	CustomEnd     string
	Filters       Filters
}

// Result is the full outcome of one analysis run: the resolved range, the aggregated
// stats, the actual-vs-target delta (positive means more worked than planned), and
// the filtered shifts themselves for itemized views.
type Result struct {
	Range  DateRange
	Stats  Stats
	Delta  float64
	Shifts []shift.Shift
}

type Service interface {
	Analyze(ctx context.Context, query Query) (Result, error)
}

type ServiceImpl struct {
	shiftService    shift.Service
	settingsService settings.Service
	clock           utils.Clock
}

func NewAnalysisService(shiftService shift.Service, settingsService settings.Service, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		shiftService:    shiftService,
		settingsService: settingsService,
		clock:           clock,
	}
}

// Analyze runs the full pipeline from scratch on the current stored data: resolve
// the range, filter, aggregate. Nothing is cached between runs, so a repository
// update simply makes the next call return the fresh result.
func (s *ServiceImpl) Analyze(ctx context.Context, query Query) (Result, error) {
	shifts, err := s.shiftService.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load shifts: %w", err)
	}
	userSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load settings: %w", err)
	}

	reference := s.clock.Now()
	if query.ReferenceDate != "" {
		if parsed, ok := ParseDate(query.ReferenceDate, reference.Location()); ok {
			reference = parsed
		} else {
			log.Debugf("ignoring unparseable reference date %q", query.ReferenceDate)
		}
	}

	rng := ResolveRange(query.Mode, reference, query.CustomStart, query.CustomEnd)
	filtered := Filter(shifts, rng, query.Filters)
	stats := Aggregate(filtered, userSettings.ShiftTypes)

	log.Debugf("analysis %q: %d of %d shifts, %.1f of %.1f hours",
		rng.Label, stats.ShiftCount, len(shifts), stats.ActualHours, rng.TargetHours)

	return Result{
		Range:  rng,
		Stats:  stats,
		Delta:  stats.ActualHours - rng.TargetHours,
		Shifts: filtered,
	}, nil
}
