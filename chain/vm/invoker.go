package vm

import (
	"bytes"
	"fmt"
	"reflect"

	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/konnect-labs/konnect/chain/actors/aerrors"
	"github.com/konnect-labs/konnect/chain/actors/builtin"
	"github.com/konnect-labs/konnect/chain/actors/builtin/market"
	"github.com/konnect-labs/konnect/chain/actors/builtin/token"
	"github.com/konnect-labs/konnect/chain/actors/runtime"
	"github.com/konnect-labs/konnect/chain/types"
)

// BuiltinPrograms returns the registry of every program shipped with konnect.
func BuiltinPrograms() *builtin.Registry {
	return builtin.NewRegistry(
		builtin.NewRegistryEntry("token", builtin.TokenProgramKey, token.Actor{}),
		builtin.NewRegistryEntry("market", builtin.MarketProgramKey, market.Actor{}),
	)
}

type invoker struct {
	registry *builtin.Registry
	code     map[types.Key]nativeCode
}

type invokeFunc func(rt runtime.Runtime, params []byte) ([]byte, aerrors.ActorError)
type nativeCode []invokeFunc

func newInvoker(registry *builtin.Registry) (*invoker, error) {
	inv := &invoker{
		registry: registry,
		code:     make(map[types.Key]nativeCode),
	}
	for _, e := range registry.Entries() {
		code, err := inv.transform(e.Program())
		if err != nil {
			return nil, fmt.Errorf("program %s: %w", e.Name(), err)
		}
		inv.code[e.Key()] = code
	}
	return inv, nil
}

func (inv *invoker) Invoke(program types.Key, rt runtime.Runtime, method abi.MethodNum, params []byte) ([]byte, aerrors.ActorError) {
	code, ok := inv.code[program]
	if !ok {
		log.Errorf("no code for program %s", program)
		return nil, aerrors.Newf(exitcode.SysErrInvalidReceiver, "no program at %s", program)
	}
	if method == 0 || method >= abi.MethodNum(len(code)) || code[method] == nil {
		return nil, aerrors.Newf(exitcode.SysErrInvalidMethod, "no method %d on program %s", method, program)
	}
	return code[method](rt, params)
}

var (
	tRuntime = reflect.TypeOf((*runtime.Runtime)(nil)).Elem()
	tAError  = reflect.TypeOf((*aerrors.ActorError)(nil)).Elem()
	tBytes   = reflect.TypeOf([]byte(nil))
	tCBORUm  = reflect.TypeOf((*cbg.CBORUnmarshaler)(nil)).Elem()
)

func (*invoker) transform(instance builtin.Program) (nativeCode, error) {
	itype := reflect.TypeOf(instance)
	exports := instance.Exports()
	for i, m := range exports {
		i := i
		newErr := func(format string, args ...interface{}) error {
			str := fmt.Sprintf(format, args...)
			return fmt.Errorf("transform(%s) export(%d): %s", itype.Name(), i, str)
		}

		if m == nil {
			continue
		}
		if i == 0 {
			return nil, newErr("method 0 is reserved")
		}

		meth := reflect.ValueOf(m)
		t := meth.Type()
		if t.Kind() != reflect.Func {
			return nil, newErr("is not a function")
		}
		if t.NumIn() != 2 {
			return nil, newErr("wrong number of inputs should be: " +
				"runtime.Runtime, <parameter>")
		}
		if t.In(0) != tRuntime {
			return nil, newErr("first argument should be runtime.Runtime")
		}
		if t.In(1).Kind() != reflect.Ptr {
			return nil, newErr("second argument should be a pointer")
		}
		if !t.In(1).Implements(tCBORUm) {
			return nil, newErr("parameter needs to implement cbg.CBORUnmarshaler")
		}

		if t.NumOut() != 2 {
			return nil, newErr("wrong number of outputs should be: " +
				"[]byte, aerrors.ActorError")
		}
		if t.Out(0) != tBytes {
			return nil, newErr("first output should be []byte")
		}
		if t.Out(1) != tAError {
			return nil, newErr("second output should be aerrors.ActorError")
		}
	}

	code := make(nativeCode, len(exports))
	for id, m := range exports {
		if m == nil {
			continue
		}
		meth := reflect.ValueOf(m)
		paramT := meth.Type().In(1).Elem()
		code[id] = func(rt runtime.Runtime, inBytes []byte) (rval []byte, aerr aerrors.ActorError) {
			param := reflect.New(paramT)
			if len(inBytes) > 0 {
				if err := DecodeParams(inBytes, param.Interface()); err != nil {
					return nil, aerrors.Absorb(err, exitcode.ErrSerialization, "failed to decode parameters")
				}
			}

			defer func() {
				if r := recover(); r != nil {
					if ar, ok := r.(aerrors.ActorError); ok {
						log.Warnf("program call failure in call from %s to %s: %+v", rt.Caller(), rt.Receiver(), ar)
						rval, aerr = nil, ar
						return
					}
					log.Errorf("program failure: %s", r)
					rval, aerr = nil, aerrors.Newf(exitcode.SysErrIllegalInstruction, "program failure: %s", r)
				}
			}()

			ret := meth.Call([]reflect.Value{reflect.ValueOf(rt), param})
			if e := ret[1].Interface(); e != nil {
				return nil, e.(aerrors.ActorError)
			}
			return ret[0].Interface().([]byte), nil
		}
	}
	return code, nil
}

func DecodeParams(b []byte, out interface{}) error {
	um, ok := out.(cbg.CBORUnmarshaler)
	if !ok {
		return fmt.Errorf("type %T does not implement UnmarshalCBOR", out)
	}

	return um.UnmarshalCBOR(bytes.NewReader(b))
}

// SerializeParams encodes method parameters for a message or a call.
func SerializeParams(i cbg.CBORMarshaler) ([]byte, aerrors.ActorError) {
	buf := new(bytes.Buffer)
	if err := i.MarshalCBOR(buf); err != nil {
		return nil, aerrors.Absorb(err, exitcode.ErrSerialization, "failed to encode parameter")
	}
	return buf.Bytes(), nil
}
