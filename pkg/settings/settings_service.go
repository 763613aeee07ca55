package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/event_bus"
	"github.com/schichtlog/schichtlog/pkg/user"
)

type Service interface {
	Get(ctx context.Context) (Settings, error)
	AddShiftType(ctx context.Context, name string) (ShiftType, error)
	AddShiftCode(ctx context.Context, code string, hours float64) (ShiftCode, error)
	AddListItem(ctx context.Context, category Category, value string) error
	RemoveItem(ctx context.Context, category Category, idOrValue string) (bool, error)
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.Bus
}

func NewSettingsService(repo Repo, bus *event_bus.Bus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

// Get returns the current user's settings, seeding the defaults on first use.
func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to get current user: %w", err)
	}

	initialized, err := s.repo.IsInitialized(ctx, userId)
	if err != nil {
		return Settings{}, err
	}
	if !initialized {
		defaults := DefaultSettings()
		for i := range defaults.ShiftTypes {
			defaults.ShiftTypes[i].ID = uuid.NewString()
		}
		for i := range defaults.ShiftCodes {
			defaults.ShiftCodes[i].ID = uuid.NewString()
		}
		if err := s.repo.Init(ctx, userId, defaults); err != nil {
			return Settings{}, err
		}
		log.Infof("seeded default settings for user %s", userId)
	}

	return s.repo.Get(ctx, userId)
}

func (s *ServiceImpl) AddShiftType(ctx context.Context, name string) (ShiftType, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return ShiftType{}, fmt.Errorf("failed to get current user: %w", err)
	}

	t := ShiftType{ID: uuid.NewString(), Name: name}
	if err := s.repo.AddShiftType(ctx, userId, t); err != nil {
		return ShiftType{}, err
	}
	return t, nil
}

func (s *ServiceImpl) AddShiftCode(ctx context.Context, code string, hours float64) (ShiftCode, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return ShiftCode{}, fmt.Errorf("failed to get current user: %w", err)
	}

	c := ShiftCode{ID: uuid.NewString(), Code: code, Hours: hours}
	if err := s.repo.AddShiftCode(ctx, userId, c); err != nil {
		return ShiftCode{}, err
	}
	return c, nil
}

func (s *ServiceImpl) AddListItem(ctx context.Context, category Category, value string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if !category.IsListCategory() {
		return fmt.Errorf("category %q does not hold plain values", category)
	}
	return s.repo.AddListItem(ctx, userId, category, value)
}

// RemoveItem removes by id for the object categories and by value for the plain
// string lists. Shifts referencing a removed type or code keep their reference.
func (s *ServiceImpl) RemoveItem(ctx context.Context, category Category, idOrValue string) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	switch category {
	case CategoryShiftTypes:
		removedName := ""
		if current, err := s.repo.Get(ctx, userId); err == nil {
			for _, t := range current.ShiftTypes {
				if t.ID == idOrValue {
					removedName = t.Name
					break
				}
			}
		}
		removed, err := s.repo.RemoveShiftType(ctx, userId, idOrValue)
		if err != nil || !removed {
			return removed, err
		}
		s.bus.Publish(ctx, event_bus.TopicShiftTypeRemoved, event_bus.ShiftTypeRemoved{
			TypeID: idOrValue,
			Name:   removedName,
		})
		return true, nil
	case CategoryShiftCodes:
		return s.repo.RemoveShiftCode(ctx, userId, idOrValue)
	case CategoryVehicles, CategoryCallSigns, CategoryStations:
		return s.repo.RemoveListItem(ctx, userId, category, idOrValue)
	default:
		return false, fmt.Errorf("unknown settings category %q", category)
	}
}
