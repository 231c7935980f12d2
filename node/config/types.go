package config

// // NOTE: ONLY PUT STRUCT DEFINITIONS IN THIS FILE

// Node is the configuration of a local konnect node.
type Node struct {
	Logging   Logging
	Journal   Journal
	Datastore Datastore
	Market    Market
	Rent      Rent
}

// Logging is the logging system config
type Logging struct {
	// SubsystemLevels specify per-subsystem log levels
	SubsystemLevels map[string]string
}

type Journal struct {
	// Disabled turns the file journal off entirely; events are dropped.
	Disabled bool

	// DisabledEvents lists journal events that are not recorded, as
	// "system:event" pairs. Program events are journaled under the program
	// name and the event type, e.g. "market:OrderCompleted".
	DisabledEvents []string

	// MaxFileSize is the size in bytes at which the journal file is rolled.
	MaxFileSize int64

	// MaxBackups is the number of rolled journal files kept on disk.
	MaxBackups int
}

type Datastore struct {
	// Path of the leveldb state datastore. Relative paths are resolved
	// against the repo directory.
	Path string
}

type Market struct {
	// DefaultMarketplace is used by the CLI when --marketplace is not given.
	DefaultMarketplace string
}

// Rent configures the rent-exempt minimum balance of new records.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionYears      uint64
	AccountOverhead     uint64
}
