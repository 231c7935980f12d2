package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/konnect-labs/konnect/chain/types"
	"github.com/konnect-labs/konnect/chain/types/mock"
)

func TestEventRoundTrip(t *testing.T) {
	events := []MarketEvent{
		&OrderCompleted{
			Marketplace: mock.Key(1),
			Listing:     mock.Key(2),
			Buyer:       mock.Key(3),
			Seller:      mock.Key(4),
			Asset:       mock.Key(5),
			Quantity:    3,
			Total:       3000,
			Reference:   mock.Key(6),
		},
		&ServiceOrderCreated{Escrow: mock.Key(7), Amount: 5000, Reference: mock.Key(6)},
		&ServiceOrderReleased{Escrow: mock.Key(7), Amount: 5000, Fee: 125},
		&ServiceOrderCancelled{Escrow: mock.Key(7), Buyer: mock.Key(3), Amount: 5000},
	}

	for _, me := range events {
		ev, err := ToEvent(me)
		require.NoError(t, err)
		require.Equal(t, me.EventType(), EventTypeOf(ev))

		out, err := DecodeEvent(ev)
		require.NoError(t, err)
		require.Equal(t, me, out)
	}
}

func TestEventEntries(t *testing.T) {
	ev, err := ToEvent(&ServiceOrderReleased{Amount: 5000, Fee: 125})
	require.NoError(t, err)

	require.Equal(t, EventTypeKey, ev.Entries[0].Key)
	ent, ok := ev.Entry("fee")
	require.True(t, ok)
	require.EqualValues(t, types.CodecCBOR, ent.Codec)
	require.Equal(t, []byte{0x18, 125}, ent.Value)

	ent, ok = ev.Entry("escrow")
	require.True(t, ok)
	require.Len(t, ent.Value, 2+types.KeyLength)
}

func TestDecodeForeignEvent(t *testing.T) {
	require.Equal(t, "", EventTypeOf(&types.Event{}))

	_, err := DecodeEvent(&types.Event{})
	require.Error(t, err)

	ev, err := ToEvent(&ServiceOrderCancelled{})
	require.NoError(t, err)
	ev.Entries = ev.Entries[:2]
	_, err = DecodeEvent(ev)
	require.Error(t, err)
}
