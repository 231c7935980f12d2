package journal

import (
	"sync"

	"github.com/konnect-labs/konnect/build"
)

// MemJournal keeps every recorded event in memory. Tests and short lived
// tools use it to inspect what was journaled.
type MemJournal struct {
	EventTypeRegistry

	lk     sync.Mutex
	events []*Event
}

var _ Journal = (*MemJournal)(nil)

func NewMemJournal(disabled DisabledEvents) *MemJournal {
	return &MemJournal{
		EventTypeRegistry: NewEventTypeRegistry(disabled),
	}
}

func (m *MemJournal) RecordEvent(evtType EventType, supplier func() interface{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("recovered from panic while recording journal event; type=%s, err=%v", evtType, r)
		}
	}()

	if !evtType.Enabled() {
		return
	}

	je := &Event{
		EventType: evtType,
		Timestamp: build.Clock.Now(),
		Data:      supplier(),
	}

	m.lk.Lock()
	m.events = append(m.events, je)
	m.lk.Unlock()
}

// Events returns the recorded events, optionally filtered to one system.
func (m *MemJournal) Events(system string) []*Event {
	m.lk.Lock()
	defer m.lk.Unlock()

	var out []*Event
	for _, e := range m.events {
		if system == "" || e.System == system {
			out = append(out, e)
		}
	}
	return out
}

func (m *MemJournal) Close() error {
	return nil
}
