package market

import (
	"bytes"
	"fmt"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/konnect-labs/konnect/chain/types"
)

// EventTypeKey is the entry naming the kind of a market event.
const EventTypeKey = "$type"

const (
	EventOrderCompleted        = "OrderCompleted"
	EventServiceOrderCreated   = "ServiceOrderCreated"
	EventServiceOrderReleased  = "ServiceOrderReleased"
	EventServiceOrderCancelled = "ServiceOrderCancelled"
)

// MarketEvent is implemented by every event the market program emits.
type MarketEvent interface {
	EventType() string
}

type OrderCompleted struct {
	Marketplace types.Key
	Listing     types.Key
	Buyer       types.Key
	Seller      types.Key
	Asset       types.Key
	Quantity    uint32
	Total       uint64
	Reference   types.Key
}

type ServiceOrderCreated struct {
	Marketplace types.Key
	Listing     types.Key
	Buyer       types.Key
	Seller      types.Key
	Asset       types.Key
	Amount      uint64
	Reference   types.Key
	Escrow      types.Key
}

type ServiceOrderReleased struct {
	Marketplace types.Key
	Escrow      types.Key
	Buyer       types.Key
	Seller      types.Key
	Asset       types.Key
	Amount      uint64
	Fee         uint64
	Reference   types.Key
}

type ServiceOrderCancelled struct {
	Marketplace types.Key
	Escrow      types.Key
	Buyer       types.Key
	Amount      uint64
	Reference   types.Key
}

func (OrderCompleted) EventType() string        { return EventOrderCompleted }
func (ServiceOrderCreated) EventType() string   { return EventServiceOrderCreated }
func (ServiceOrderReleased) EventType() string  { return EventServiceOrderReleased }
func (ServiceOrderCancelled) EventType() string { return EventServiceOrderCancelled }

type eventBuilder struct {
	entries []types.EventEntry
	err     error
}

func newEventBuilder(typ string) *eventBuilder {
	b := &eventBuilder{}
	b.add(EventTypeKey, types.EventFlagIndexedAll, func(buf *bytes.Buffer) error {
		if err := cbg.WriteMajorTypeHeader(buf, cbg.MajTextString, uint64(len(typ))); err != nil {
			return err
		}
		_, err := buf.WriteString(typ)
		return err
	})
	return b
}

func (b *eventBuilder) add(name string, flags uint8, enc func(*bytes.Buffer) error) {
	if b.err != nil {
		return
	}
	buf := new(bytes.Buffer)
	if err := enc(buf); err != nil {
		b.err = xerrors.Errorf("encoding event entry %s: %w", name, err)
		return
	}
	b.entries = append(b.entries, types.EventEntry{
		Flags: flags,
		Key:   name,
		Codec: types.CodecCBOR,
		Value: buf.Bytes(),
	})
}

func (b *eventBuilder) key(name string, k types.Key) *eventBuilder {
	b.add(name, types.EventFlagIndexedAll, func(buf *bytes.Buffer) error {
		return cbg.WriteByteArray(buf, k[:])
	})
	return b
}

func (b *eventBuilder) uint(name string, v uint64) *eventBuilder {
	b.add(name, types.EventFlagIndexedKey, func(buf *bytes.Buffer) error {
		return cbg.WriteMajorTypeHeader(buf, cbg.MajUnsignedInt, v)
	})
	return b
}

func (b *eventBuilder) build() (*types.Event, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &types.Event{Entries: b.entries}, nil
}

// ToEvent encodes a market event. Every value is CBOR, keys as byte strings.
func ToEvent(me MarketEvent) (*types.Event, error) {
	b := newEventBuilder(me.EventType())
	switch e := me.(type) {
	case *OrderCompleted:
		b.key("marketplace", e.Marketplace).
			key("listing", e.Listing).
			key("buyer", e.Buyer).
			key("seller", e.Seller).
			key("asset", e.Asset).
			uint("quantity", uint64(e.Quantity)).
			uint("total", e.Total).
			key("reference", e.Reference)
	case *ServiceOrderCreated:
		b.key("marketplace", e.Marketplace).
			key("listing", e.Listing).
			key("buyer", e.Buyer).
			key("seller", e.Seller).
			key("asset", e.Asset).
			uint("amount", e.Amount).
			key("reference", e.Reference).
			key("escrow", e.Escrow)
	case *ServiceOrderReleased:
		b.key("marketplace", e.Marketplace).
			key("escrow", e.Escrow).
			key("buyer", e.Buyer).
			key("seller", e.Seller).
			key("asset", e.Asset).
			uint("amount", e.Amount).
			uint("fee", e.Fee).
			key("reference", e.Reference)
	case *ServiceOrderCancelled:
		b.key("marketplace", e.Marketplace).
			key("escrow", e.Escrow).
			key("buyer", e.Buyer).
			uint("amount", e.Amount).
			key("reference", e.Reference)
	default:
		return nil, xerrors.Errorf("unknown market event %T", me)
	}
	return b.build()
}

type eventReader struct {
	ev  *types.Event
	err error
}

func (r *eventReader) value(name string) *cbg.CborReader {
	if r.err != nil {
		return nil
	}
	ent, ok := r.ev.Entry(name)
	if !ok {
		r.err = xerrors.Errorf("event has no %q entry", name)
		return nil
	}
	if ent.Codec != types.CodecCBOR {
		r.err = xerrors.Errorf("entry %q: unsupported codec 0x%x", name, ent.Codec)
		return nil
	}
	return cbg.NewCborReader(bytes.NewReader(ent.Value))
}

func (r *eventReader) key(name string) types.Key {
	cr := r.value(name)
	if cr == nil {
		return types.Undef
	}
	var k types.Key
	if err := k.UnmarshalCBOR(cr); err != nil {
		r.err = xerrors.Errorf("entry %q: %w", name, err)
	}
	return k
}

func (r *eventReader) uint(name string) uint64 {
	cr := r.value(name)
	if cr == nil {
		return 0
	}
	maj, extra, err := cr.ReadHeader()
	if err != nil {
		r.err = xerrors.Errorf("entry %q: %w", name, err)
		return 0
	}
	if maj != cbg.MajUnsignedInt {
		r.err = xerrors.Errorf("entry %q: wrong type for uint64 value", name)
		return 0
	}
	return extra
}

func (r *eventReader) str(name string) string {
	cr := r.value(name)
	if cr == nil {
		return ""
	}
	s, err := cbg.ReadStringWithMax(cr, 64)
	if err != nil {
		r.err = xerrors.Errorf("entry %q: %w", name, err)
	}
	return s
}

// EventTypeOf returns the "$type" of an event, or "" if it is not a market
// event.
func EventTypeOf(ev *types.Event) string {
	r := &eventReader{ev: ev}
	typ := r.str(EventTypeKey)
	if r.err != nil {
		return ""
	}
	return typ
}

// DecodeEvent decodes an event emitted by the market program.
func DecodeEvent(ev *types.Event) (MarketEvent, error) {
	r := &eventReader{ev: ev}
	typ := r.str(EventTypeKey)
	if r.err != nil {
		return nil, r.err
	}

	var out MarketEvent
	switch typ {
	case EventOrderCompleted:
		quantity := r.uint("quantity")
		if quantity > uint64(^uint32(0)) {
			return nil, fmt.Errorf("quantity %d does not fit uint32", quantity)
		}
		out = &OrderCompleted{
			Marketplace: r.key("marketplace"),
			Listing:     r.key("listing"),
			Buyer:       r.key("buyer"),
			Seller:      r.key("seller"),
			Asset:       r.key("asset"),
			Quantity:    uint32(quantity),
			Total:       r.uint("total"),
			Reference:   r.key("reference"),
		}
	case EventServiceOrderCreated:
		out = &ServiceOrderCreated{
			Marketplace: r.key("marketplace"),
			Listing:     r.key("listing"),
			Buyer:       r.key("buyer"),
			Seller:      r.key("seller"),
			Asset:       r.key("asset"),
			Amount:      r.uint("amount"),
			Reference:   r.key("reference"),
			Escrow:      r.key("escrow"),
		}
	case EventServiceOrderReleased:
		out = &ServiceOrderReleased{
			Marketplace: r.key("marketplace"),
			Escrow:      r.key("escrow"),
			Buyer:       r.key("buyer"),
			Seller:      r.key("seller"),
			Asset:       r.key("asset"),
			Amount:      r.uint("amount"),
			Fee:         r.uint("fee"),
			Reference:   r.key("reference"),
		}
	case EventServiceOrderCancelled:
		out = &ServiceOrderCancelled{
			Marketplace: r.key("marketplace"),
			Escrow:      r.key("escrow"),
			Buyer:       r.key("buyer"),
			Amount:      r.uint("amount"),
			Reference:   r.key("reference"),
		}
	default:
		return nil, xerrors.Errorf("unknown market event type %q", typ)
	}
	if r.err != nil {
		return nil, r.err
	}
	return out, nil
}
