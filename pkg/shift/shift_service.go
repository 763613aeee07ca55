package shift

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/event_bus"
	"github.com/schichtlog/schichtlog/internal/utils"
	"github.com/schichtlog/schichtlog/pkg/user"
)

type Service interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Delete(ctx context.Context, shiftId string) (bool, error)
}

type ServiceImpl struct {
	repo  Repo
	bus   *event_bus.Bus
	clock utils.Clock
}

func NewShiftService(repo Repo, bus *event_bus.Bus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

// Create stores a new shift for the current user. The id and the audit timestamp are
// assigned here, never taken from the client.
func (s *ServiceImpl) Create(ctx context.Context, shift Shift) (Shift, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Shift{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if shift.Date == "" {
		return Shift{}, fmt.Errorf("shift date is required")
	}

	shift.ID = uuid.NewString()
	shift.CreatedAt = s.clock.Now()

	if err := s.repo.Store(ctx, userId, shift); err != nil {
		return Shift{}, err
	}
	log.Debugf("stored shift %s on %s for user %s", shift.ID, shift.Date, userId)

	s.bus.Publish(ctx, event_bus.TopicShiftCreated, event_bus.ShiftCreated{
		ShiftID: shift.ID,
		Date:    shift.Date,
	})
	return shift, nil
}

// List returns the current user's shifts in journal order: newest date first, then
// start time, with the creation timestamp as a tie-break.
func (s *ServiceImpl) List(ctx context.Context) ([]Shift, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	shifts, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}

	sort.Slice(shifts, func(i, j int) bool {
		a, b := shifts[i], shifts[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime > b.StartTime
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return shifts, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, shiftId string) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, shiftId)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("shift not deleted, probably because it does not exist (%s) or the user (%s) is not the owner", shiftId, userId)
		return false, nil
	}

	s.bus.Publish(ctx, event_bus.TopicShiftDeleted, event_bus.ShiftDeleted{ShiftID: shiftId})
	return true, nil
}
