package konnectlog

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
)

// SetupLogLevels applies the default subsystem levels unless the user set
// GOLOG_LOG_LEVEL, in which case go-log has already configured everything.
func SetupLogLevels() {
	if _, set := os.LookupEnv("GOLOG_LOG_LEVEL"); !set {
		_ = logging.SetLogLevel("*", "INFO")
		_ = logging.SetLogLevel("vm", "WARN")
		_ = logging.SetLogLevel("fsjournal", "WARN")
	}
}

// SetLevels applies per-subsystem levels, typically from the node config.
// Subsystems nobody registered yet are reported rather than ignored.
func SetLevels(levels map[string]string) error {
	for sys, lvl := range levels {
		if err := logging.SetLogLevel(sys, lvl); err != nil {
			return err
		}
	}
	return nil
}
