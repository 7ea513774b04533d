package vm

import (
	"encoding/binary"
	"errors"

	"github.com/eth2030/txproc/core/state"
	"github.com/eth2030/txproc/core/storage"
	"github.com/eth2030/txproc/core/types"
)

// ErrOutOfGas is returned by StubVM when a run's gas is exhausted. It is a
// caught VM fault: the executor treats it the same as any other exceptional
// halt, not as a programmer error.
var ErrOutOfGas = errors.New("vm: out of gas")

// ErrInvalidProgram is returned when code does not begin with a recognized
// opcode byte.
var ErrInvalidProgram = errors.New("vm: invalid program")

// Stub program opcodes. StubVM does not interpret real EVM bytecode; it
// recognizes a tiny fixed vocabulary sufficient to drive every outcome the
// transaction executor must handle (plain success, revert, self-destruct,
// logging, refunds, out-of-gas, and contract creation) without a full
// bytecode interpreter, which is explicitly out of scope.
const (
	OpStop         byte = 0x00
	OpReturn       byte = 0x01
	OpRevert       byte = 0x02
	OpSelfDestruct byte = 0x03
	OpOutOfGas     byte = 0x04
	OpLog          byte = 0x05
	OpRefund       byte = 0x06
)

const stepGas = 3

// StubVM is a minimal reference VirtualMachine. It is not an EVM: it exists
// to give TransactionExecutor's end-to-end tests deterministic, inline
// "programs" to run instead of requiring a real bytecode interpreter.
type StubVM struct{}

// NewStubVM returns a StubVM.
func NewStubVM() *StubVM { return &StubVM{} }

// GetCachedCodeInfo reports the code resident at addr.
func (StubVM) GetCachedCodeInfo(st state.Provider, addr types.Address) CodeInfo {
	code := st.GetCode(addr)
	return CodeInfo{
		CodeHash: st.GetCodeHash(addr),
		CodeSize: len(code),
	}
}

// Run interprets the stub program found at env.CodeAddress (for a call) or
// carried in env.Input (for a contract creation, where the "init code" is
// itself a stub program whose OpReturn payload becomes the deployed code).
func (StubVM) Run(env ExecutionEnvironment, st state.Provider, sl storage.Provider, gasAvailable uint64, tracer Tracer) ([]byte, uint64, TransactionSubstate, error) {
	var code []byte
	if env.Type == ExecutionDirectCreate {
		code = env.Input
	} else {
		code = st.GetCode(env.CodeAddress)
	}

	if len(code) == 0 {
		// No code to run: a plain value transfer to an EOA (or to an
		// account with no code yet). Succeeds trivially.
		return nil, gasAvailable, TransactionSubstate{}, nil
	}

	gas := gasAvailable
	var substate TransactionSubstate

	op := code[0]
	rest := code[1:]

	switch op {
	case OpStop:
		if gas < stepGas {
			return nil, 0, TransactionSubstate{}, ErrOutOfGas
		}
		return nil, gas - stepGas, substate, nil

	case OpReturn:
		cost := uint64(stepGas + 3*len(rest))
		if gas < cost {
			return nil, 0, TransactionSubstate{}, ErrOutOfGas
		}
		return rest, gas - cost, substate, nil

	case OpRevert:
		cost := uint64(stepGas + 3*len(rest))
		if gas < cost {
			return nil, 0, TransactionSubstate{}, ErrOutOfGas
		}
		substate.ShouldRevert = true
		return rest, gas - cost, substate, nil

	case OpSelfDestruct:
		if len(rest) < types.AddressLength {
			return nil, 0, TransactionSubstate{}, ErrInvalidProgram
		}
		if gas < stepGas {
			return nil, 0, TransactionSubstate{}, ErrOutOfGas
		}
		beneficiary := types.BytesToAddress(rest[:types.AddressLength])
		substate.DestroyList = append(substate.DestroyList, SelfDestructEntry{
			Address:     env.CodeAddress,
			Beneficiary: beneficiary,
		})
		return nil, gas - stepGas, substate, nil

	case OpOutOfGas:
		return nil, 0, TransactionSubstate{}, ErrOutOfGas

	case OpLog:
		if len(rest) < 1 {
			return nil, 0, TransactionSubstate{}, ErrInvalidProgram
		}
		numTopics := int(rest[0])
		if numTopics > 4 || len(rest) < 1+numTopics*types.HashLength {
			return nil, 0, TransactionSubstate{}, ErrInvalidProgram
		}
		cost := uint64(stepGas + 375*(numTopics+1))
		if gas < cost {
			return nil, 0, TransactionSubstate{}, ErrOutOfGas
		}
		body := rest[1:]
		topics := make([]types.Hash, numTopics)
		for i := 0; i < numTopics; i++ {
			topics[i] = types.BytesToHash(body[i*types.HashLength : (i+1)*types.HashLength])
		}
		data := body[numTopics*types.HashLength:]
		substate.Logs = append(substate.Logs, &types.Log{
			Address: env.CodeAddress,
			Topics:  topics,
			Data:    data,
		})
		return nil, gas - cost, substate, nil

	case OpRefund:
		if len(rest) < 8 {
			return nil, 0, TransactionSubstate{}, ErrInvalidProgram
		}
		if gas < stepGas {
			return nil, 0, TransactionSubstate{}, ErrOutOfGas
		}
		substate.RefundCounter = binary.BigEndian.Uint64(rest[:8])
		return nil, gas - stepGas, substate, nil

	default:
		return nil, 0, TransactionSubstate{}, ErrInvalidProgram
	}
}
