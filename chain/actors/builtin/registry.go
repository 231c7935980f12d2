package builtin

import (
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/filecoin-project/go-state-types/abi"

	"github.com/konnect-labs/konnect/chain/types"
)

type MethodMeta struct {
	Name   string
	Method interface{}
}

type RegistryEntry struct {
	name    string
	key     types.Key
	program Program
	methods map[abi.MethodNum]MethodMeta
}

func (r RegistryEntry) Name() string {
	return r.name
}

func (r RegistryEntry) Key() types.Key {
	return r.key
}

func (r RegistryEntry) Program() Program {
	return r.program
}

func (r RegistryEntry) Exports() map[abi.MethodNum]MethodMeta {
	return r.methods
}

// MethodName returns the exported name of method, or "" if the program does
// not export it.
func (r RegistryEntry) MethodName(method abi.MethodNum) string {
	return r.methods[method].Name
}

func NewRegistryEntry(name string, key types.Key, p Program) RegistryEntry {
	methodMap := make(map[abi.MethodNum]MethodMeta)
	for methodNum, method := range p.Exports() {
		if method != nil {
			methodMap[abi.MethodNum(methodNum)] = makeMethodMeta(method)
		}
	}
	return RegistryEntry{
		name:    name,
		key:     key,
		program: p,
		methods: methodMap,
	}
}

func makeMethodMeta(method interface{}) MethodMeta {
	ev := reflect.ValueOf(method)
	// Extract the method names using reflection. These
	// method names always match the field names in the
	// `builtin.Methods*` structs.
	fnName := runtime.FuncForPC(ev.Pointer()).Name()
	fnName = strings.TrimSuffix(fnName[strings.LastIndexByte(fnName, '.')+1:], "-fm")
	return MethodMeta{
		Name:   fnName,
		Method: method,
	}
}

// Registry is the set of programs a VM can invoke.
type Registry struct {
	entries map[types.Key]RegistryEntry
}

func NewRegistry(entries ...RegistryEntry) *Registry {
	r := &Registry{entries: make(map[types.Key]RegistryEntry, len(entries))}
	for _, e := range entries {
		r.entries[e.key] = e
	}
	return r
}

func (r *Registry) Lookup(k types.Key) (RegistryEntry, bool) {
	e, ok := r.entries[k]
	return e, ok
}

// Entries returns all entries sorted by name.
func (r *Registry) Entries() []RegistryEntry {
	out := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].name < out[j].name
	})
	return out
}
