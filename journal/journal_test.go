package journal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledEvents(t *testing.T) {
	req := require.New(t)

	test := func(dis DisabledEvents) func(*testing.T) {
		return func(t *testing.T) {
			registry := NewEventTypeRegistry(dis)

			reg1 := registry.RegisterEventType("system1", "disabled1")
			reg2 := registry.RegisterEventType("system1", "disabled2")

			req.False(reg1.Enabled())
			req.False(reg2.Enabled())
			req.True(reg1.safe)
			req.True(reg2.safe)

			reg3 := registry.RegisterEventType("system3", "enabled3")
			req.True(reg3.Enabled())
			req.True(reg3.safe)
		}
	}

	t.Run("direct", test(DisabledEvents{
		EventType{System: "system1", Event: "disabled1"},
		EventType{System: "system1", Event: "disabled2"},
	}))

	dis, err := ParseDisabledEvents("system1:disabled1,system1:disabled2")
	req.NoError(err)

	t.Run("parsed", test(dis))

	dis, err = ParseDisabledEvents("  system1:disabled1 , system1:disabled2  ")
	req.NoError(err)

	t.Run("parsed_spaces", test(dis))

	_, err = ParseDisabledEvents("system1")
	req.Error(err)

	dis, err = ParseDisabledEvents("")
	req.NoError(err)
	req.Empty(dis)
}

func TestMemJournal(t *testing.T) {
	j := NewMemJournal(DisabledEvents{{System: "market", Event: "noisy"}})

	on := j.RegisterEventType("market", "OrderCompleted")
	off := j.RegisterEventType("market", "noisy")

	MaybeRecordEvent(j, on, func() interface{} { return 1 })
	MaybeRecordEvent(j, off, func() interface{} { return 2 })
	j.RecordEvent(on, func() interface{} { panic("boom") })

	evts := j.Events("market")
	require.Len(t, evts, 1)
	require.Equal(t, 1, evts[0].Data)
	require.Empty(t, j.Events("token"))

	// unregistered event types are never enabled
	MaybeRecordEvent(j, EventType{System: "market", Event: "x"}, func() interface{} { return 3 })
	require.Len(t, j.Events(""), 1)

	MaybeRecordEvent(NilJournal(), on, func() interface{} { panic("never called") })
	MaybeRecordEvent(nil, on, func() interface{} { panic("never called") })
}
