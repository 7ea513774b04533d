// Package vm defines the virtual machine boundary the transaction executor
// drives. The interpreter itself is out of scope here (it is treated as a
// black box): this package only defines the contract between executor and
// VM, plus a minimal reference implementation used by tests and the CLI
// demo.
package vm

import (
	"github.com/eth2030/txproc/core/state"
	"github.com/eth2030/txproc/core/storage"
	"github.com/eth2030/txproc/core/types"
	"github.com/eth2030/txproc/params"
	"github.com/holiman/uint256"
)

// ExecutionType distinguishes how a VM invocation was reached. The executor
// uses ExecutionTransaction for a message call and ExecutionDirectCreate for
// a contract creation; it never constructs ExecutionDirectPrecompile, which
// is carried for VM implementations that recognize precompile entry points.
type ExecutionType uint8

const (
	ExecutionTransaction ExecutionType = iota
	ExecutionDirectCreate
	ExecutionDirectPrecompile
)

// CodeInfo describes the code resident at an address, as reported by
// GetCachedCodeInfo.
type CodeInfo struct {
	CodeHash types.Hash
	CodeSize int
}

// IsContract reports whether the described account carries code.
func (c CodeInfo) IsContract() bool {
	return c.CodeSize > 0
}

// ExecutionEnvironment carries everything the VM needs to run a single
// top-level invocation: who is calling, what code executes, with what
// input and value, in what block.
type ExecutionEnvironment struct {
	Type ExecutionType

	Sender      types.Address
	CodeAddress types.Address // the account whose code is executing
	Input       []byte
	Value       *uint256.Int
	GasPrice    *uint256.Int

	Header *types.BlockHeader
	Spec   params.ActiveSpec
}

// SelfDestructEntry records an account that executed SELFDESTRUCT and the
// beneficiary address named in the opcode's own operand -- the address its
// remaining balance is swept to, not necessarily the block's miner.
type SelfDestructEntry struct {
	Address     types.Address
	Beneficiary types.Address
}

// TransactionSubstate accumulates the results of a successful (non-faulted)
// VM run that the executor must fold back into state: emitted logs,
// accounts scheduled for destruction (paired with their SELFDESTRUCT
// beneficiary), the gas refund counter, and whether the top-level call ended
// in a REVERT.
type TransactionSubstate struct {
	ShouldRevert  bool
	Logs          []*types.Log
	DestroyList   []SelfDestructEntry
	RefundCounter uint64
}

// VirtualMachine is the collaborator that actually interprets code.
// TransactionExecutor calls Run exactly once per transaction, after
// pre-flight admission has succeeded and a snapshot has been taken on both
// providers.
type VirtualMachine interface {
	// Run executes env against the given providers with gasAvailable gas.
	// It returns the call's return data, the gas left after execution, the
	// accumulated substate, and a non-nil err only for a caught VM fault
	// (out of gas, invalid opcode, stack violation, and similar) -- a
	// REVERT is reported via substate.ShouldRevert with err == nil, not as
	// an error.
	Run(env ExecutionEnvironment, st state.Provider, sl storage.Provider, gasAvailable uint64, tracer Tracer) (output []byte, gasLeft uint64, substate TransactionSubstate, err error)

	// GetCachedCodeInfo reports the code currently resident at addr,
	// without charging gas or journaling. TransactionExecutor does not call
	// it: recipient resolution passes only the address to Run, and Run
	// looks up the code to execute itself (StubVM reads it from st).
	GetCachedCodeInfo(st state.Provider, addr types.Address) CodeInfo
}
