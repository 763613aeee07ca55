package event_bus

const (
	TopicShiftCreated     Topic = "shift.created"
	TopicShiftDeleted     Topic = "shift.deleted"
	TopicShiftTypeRemoved Topic = "settings.shifttype.removed"
)

type ShiftCreated struct {
	ShiftID string
	Date    string
}

type ShiftDeleted struct {
	ShiftID string
}

type ShiftTypeRemoved struct {
	TypeID string
	Name   string
}
