package config

import (
	"github.com/konnect-labs/konnect/chain/vm"
	"github.com/konnect-labs/konnect/journal"
)

// DefaultNode returns the default node config
func DefaultNode() *Node {
	rent := vm.DefaultRentPolicy()

	var disabled []string
	for _, et := range journal.DefaultDisabledEvents {
		disabled = append(disabled, et.String())
	}

	return &Node{
		Logging: Logging{
			SubsystemLevels: map[string]string{},
		},
		Journal: Journal{
			DisabledEvents: disabled,
			MaxFileSize:    journal.EnvMaxSize,
			MaxBackups:     int(journal.EnvMaxBackups),
		},
		Datastore: Datastore{
			Path: "datastore",
		},
		Rent: Rent{
			LamportsPerByteYear: rent.LamportsPerByteYear,
			ExemptionYears:      rent.ExemptionYears,
			AccountOverhead:     rent.AccountOverhead,
		},
	}
}

// RentPolicy converts the rent section for the VM.
func (r Rent) RentPolicy() vm.RentPolicy {
	return vm.RentPolicy{
		LamportsPerByteYear: r.LamportsPerByteYear,
		ExemptionYears:      r.ExemptionYears,
		AccountOverhead:     r.AccountOverhead,
	}
}

// ParseDisabledEvents converts the journal section for the journal.
func (j Journal) ParseDisabledEvents() (journal.DisabledEvents, error) {
	out := make(journal.DisabledEvents, 0, len(j.DisabledEvents))
	for _, s := range j.DisabledEvents {
		evts, err := journal.ParseDisabledEvents(s)
		if err != nil {
			return nil, err
		}
		out = append(out, evts...)
	}
	return out, nil
}
