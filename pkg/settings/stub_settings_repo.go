package settings

import "context"

type StubSettingsRepo struct {
	Initialized map[string]bool
	Stored      map[string]*Settings
}

func NewStubSettingsRepo() *StubSettingsRepo {
	return &StubSettingsRepo{
		Initialized: make(map[string]bool),
		Stored:      make(map[string]*Settings),
	}
}

func (s *StubSettingsRepo) IsInitialized(ctx context.Context, userId string) (bool, error) {
	return s.Initialized[userId], nil
}

func (s *StubSettingsRepo) Init(ctx context.Context, userId string, settings Settings) error {
	s.Initialized[userId] = true
	stored := settings
	s.Stored[userId] = &stored
	return nil
}

func (s *StubSettingsRepo) Get(ctx context.Context, userId string) (Settings, error) {
	if stored := s.Stored[userId]; stored != nil {
		return *stored, nil
	}
	return Settings{}, nil
}

func (s *StubSettingsRepo) AddShiftType(ctx context.Context, userId string, t ShiftType) error {
	stored := s.ensure(userId)
	stored.ShiftTypes = append(stored.ShiftTypes, t)
	return nil
}

func (s *StubSettingsRepo) AddShiftCode(ctx context.Context, userId string, c ShiftCode) error {
	stored := s.ensure(userId)
	stored.ShiftCodes = append(stored.ShiftCodes, c)
	return nil
}

func (s *StubSettingsRepo) AddListItem(ctx context.Context, userId string, category Category, value string) error {
	stored := s.ensure(userId)
	switch category {
	case CategoryVehicles:
		stored.Vehicles = append(stored.Vehicles, value)
	case CategoryCallSigns:
		stored.CallSigns = append(stored.CallSigns, value)
	case CategoryStations:
		stored.Stations = append(stored.Stations, value)
	}
	return nil
}

func (s *StubSettingsRepo) RemoveShiftType(ctx context.Context, userId string, id string) (bool, error) {
	stored := s.ensure(userId)
	for i, t := range stored.ShiftTypes {
		if t.ID == id {
			stored.ShiftTypes = append(stored.ShiftTypes[:i], stored.ShiftTypes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubSettingsRepo) RemoveShiftCode(ctx context.Context, userId string, id string) (bool, error) {
	stored := s.ensure(userId)
	for i, c := range stored.ShiftCodes {
		if c.ID == id {
			stored.ShiftCodes = append(stored.ShiftCodes[:i], stored.ShiftCodes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubSettingsRepo) RemoveListItem(ctx context.Context, userId string, category Category, value string) (bool, error) {
	stored := s.ensure(userId)
	var list *[]string
	switch category {
	case CategoryVehicles:
		list = &stored.Vehicles
	case CategoryCallSigns:
		list = &stored.CallSigns
	case CategoryStations:
		list = &stored.Stations
	default:
		return false, nil
	}
	for i, v := range *list {
		if v == value {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubSettingsRepo) ensure(userId string) *Settings {
	if s.Stored[userId] == nil {
		s.Stored[userId] = &Settings{}
	}
	return s.Stored[userId]
}

func (s *StubSettingsRepo) Cleanup() {
	s.Initialized = make(map[string]bool)
	s.Stored = make(map[string]*Settings)
}
