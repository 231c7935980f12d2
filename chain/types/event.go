package types

const (
	// EventFlagIndexedKey marks an entry whose key should be indexed.
	EventFlagIndexedKey = 0b00000001
	// EventFlagIndexedValue marks an entry whose value should be indexed.
	EventFlagIndexedValue = 0b00000010
	// EventFlagIndexedAll marks an entry whose key and value should be indexed.
	EventFlagIndexedAll = EventFlagIndexedKey | EventFlagIndexedValue
)

// CodecCBOR is the multicodec code of the values carried in event entries.
const CodecCBOR = 0x51

type Event struct {
	// The program that emitted this event.
	Emitter Key

	// Key values making up this event.
	Entries []EventEntry
}

type EventEntry struct {
	// A bitmap conveying metadata or hints about this entry.
	Flags uint8

	// The key of this event entry
	Key string

	// The codec the value is encoded with.
	Codec uint64

	// The value of this entry, CBOR encoded.
	Value []byte
}

// Entry returns the first entry with the given key.
func (e *Event) Entry(key string) (EventEntry, bool) {
	for _, ent := range e.Entries {
		if ent.Key == key {
			return ent, true
		}
	}
	return EventEntry{}, false
}
