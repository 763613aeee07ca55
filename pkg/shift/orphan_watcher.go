package shift

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/event_bus"
	"github.com/schichtlog/schichtlog/pkg/user"
)

// OrphanWatcher listens for shift-type removals and reports how many shifts are left
// referencing the removed type. The references themselves are kept; the analysis
// layer resolves them to "Unbekannt".
type OrphanWatcher struct {
	repo Repo
}

func NewOrphanWatcher(repo Repo) *OrphanWatcher {
	return &OrphanWatcher{repo: repo}
}

func (w *OrphanWatcher) Register(bus *event_bus.Bus) {
	bus.Subscribe(event_bus.TopicShiftTypeRemoved, w.handleTypeRemoved)
}

func (w *OrphanWatcher) handleTypeRemoved(e event_bus.Event) error {
	removed, ok := e.Data.(event_bus.ShiftTypeRemoved)
	if !ok {
		return fmt.Errorf("unexpected payload type %T on %s", e.Data, e.Topic)
	}

	ctx := e.Context()
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	count, err := w.repo.CountByTypeId(ctx, userId, removed.TypeID)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Warnf("shift type %q (%s) removed; %d shifts of user %s now reference an unknown type",
			removed.Name, removed.TypeID, count, userId)
	}
	return nil
}
