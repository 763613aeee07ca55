package shift

import "context"

type StubShiftRepo struct {
	ByUser map[string][]Shift
}

func NewStubShiftRepo() *StubShiftRepo {
	return &StubShiftRepo{ByUser: make(map[string][]Shift)}
}

func (s *StubShiftRepo) Store(ctx context.Context, userId string, shift Shift) error {
	s.ByUser[userId] = append(s.ByUser[userId], shift)
	return nil
}

func (s *StubShiftRepo) GetAll(ctx context.Context, userId string) ([]Shift, error) {
	return s.ByUser[userId], nil
}

func (s *StubShiftRepo) Delete(ctx context.Context, userId string, shiftId string) (bool, error) {
	shifts := s.ByUser[userId]
	for i, sh := range shifts {
		if sh.ID == shiftId {
			s.ByUser[userId] = append(shifts[:i], shifts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubShiftRepo) CountByTypeId(ctx context.Context, userId string, typeId string) (int, error) {
	count := 0
	for _, sh := range s.ByUser[userId] {
		if sh.TypeID == typeId {
			count++
		}
	}
	return count, nil
}

func (s *StubShiftRepo) Cleanup() {
	s.ByUser = make(map[string][]Shift)
}
