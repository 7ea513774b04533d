package core

import (
	"errors"
	"fmt"

	"github.com/eth2030/txproc/core/state"
	"github.com/eth2030/txproc/core/storage"
	"github.com/eth2030/txproc/core/types"
	"github.com/eth2030/txproc/core/vm"
	"github.com/eth2030/txproc/crypto"
	"github.com/eth2030/txproc/log"
	"github.com/eth2030/txproc/metrics"
	"github.com/eth2030/txproc/params"
	"github.com/holiman/uint256"
)

// Pre-flight admission errors. A transaction that fails any of these is
// rejected before it touches state or the gas pool: Execute returns the
// null-receipt contract (nil receipt, non-nil error), and the caller is
// expected to drop the transaction rather than include it in the block.
var (
	ErrNonceTooLow       = errors.New("core: nonce too low")
	ErrNonceTooHigh      = errors.New("core: nonce too high")
	ErrInsufficientFunds = errors.New("core: insufficient funds for gas * price + value")
	ErrIntrinsicGas      = errors.New("core: intrinsic gas exceeds gas limit")
)

// CodeDepositGas is the per-byte cost of storing a newly created contract's
// code (EIP-2 / classic G_codedeposit).
const CodeDepositGas uint64 = 200

var (
	executedCounter = metrics.NewCounter("txproc_transactions_executed_total")
	lastGasUsed     = metrics.NewGauge("txproc_last_gas_used")
)

// TransactionExecutor applies a single transaction to state, in isolation
// from block assembly, consensus, and networking. It is the sole component
// that drives both state.Provider and storage.Provider through a snapshot,
// a VM invocation, and a commit or revert; the VM reads and writes the
// providers it is handed, but never snapshots, restores, or commits them.
type TransactionExecutor struct {
	State        state.Provider
	Storage      storage.Provider
	VM           vm.VirtualMachine
	SpecProvider params.SpecProvider
	Tracer       vm.Tracer

	logger *log.Logger
}

// NewTransactionExecutor builds an executor over the given collaborators.
// Tracer may be nil, in which case a NoopTracer is used.
func NewTransactionExecutor(st state.Provider, sl storage.Provider, machine vm.VirtualMachine, specs params.SpecProvider, tracer vm.Tracer) *TransactionExecutor {
	if tracer == nil {
		tracer = vm.NoopTracer{}
	}
	return &TransactionExecutor{
		State:        st,
		Storage:      sl,
		VM:           machine,
		SpecProvider: specs,
		Tracer:       tracer,
		logger:       log.Default().Module("executor"),
	}
}

// Execute applies tx against header.Beneficiary's block, charging gas
// against header.GasLimit/header.GasUsed. On success it returns a receipt
// and increments header.GasUsed by the gas the transaction spent. A
// pre-flight rejection returns (nil, err) without mutating header, state,
// or storage -- the null-receipt contract.
func (ex *TransactionExecutor) Execute(tx *types.Transaction, header *types.BlockHeader) (*types.Receipt, error) {
	spec := ex.SpecProvider.GetSpec(header.Number)

	// --- Pre-flight: admission checks that must not mutate anything. ---

	accountNonce := ex.State.GetNonce(tx.Sender)
	if tx.Nonce < accountNonce {
		return nil, fmt.Errorf("%w: tx nonce %d, account nonce %d", ErrNonceTooLow, tx.Nonce, accountNonce)
	}
	if tx.Nonce > accountNonce {
		return nil, fmt.Errorf("%w: tx nonce %d, account nonce %d", ErrNonceTooHigh, tx.Nonce, accountNonce)
	}

	gasPool := NewGasPool(header)
	if err := gasPool.SubGas(tx.GasLimit); err != nil {
		return nil, fmt.Errorf("core: %w: tx gas limit %d exceeds remaining block gas", err, tx.GasLimit)
	}

	intrinsicGas, err := (IntrinsicGasCalculator{}).Calculate(tx, spec)
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if tx.GasLimit < intrinsicGas {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrIntrinsicGas, tx.GasLimit, intrinsicGas)
	}

	// The pre-flight affordability test is deliberately weaker than the gas
	// actually bought below: it checks intrinsic gas, not the full gas
	// limit, against the sender's balance.
	intrinsicCost, overflow := new(uint256.Int).MulOverflow(tx.GasPrice, new(uint256.Int).SetUint64(intrinsicGas))
	if _, addOverflow := intrinsicCost.AddOverflow(intrinsicCost, tx.Value); addOverflow {
		overflow = true
	}
	if overflow || ex.State.GetBalance(tx.Sender).Lt(intrinsicCost) {
		return nil, fmt.Errorf("%w: address %s", ErrInsufficientFunds, tx.Sender.Hex())
	}

	// --- Admission: the transaction is accepted. Buy gas and bump nonce. ---

	gasCost, overflow := new(uint256.Int).MulOverflow(tx.GasPrice, new(uint256.Int).SetUint64(tx.GasLimit))
	if overflow {
		return nil, fmt.Errorf("%w: address %s", ErrInsufficientFunds, tx.Sender.Hex())
	}
	if err := ex.State.SubtractFromBalance(tx.Sender, gasCost); err != nil {
		// The pre-flight check above only confirms intrinsicGas*gasPrice +
		// value is covered, not the full gasLimit*gasPrice -- a sender can
		// still fail to afford the full gas purchase. Reject, not panic.
		return nil, fmt.Errorf("%w: address %s", ErrInsufficientFunds, tx.Sender.Hex())
	}
	ex.State.IncrementNonce(tx.Sender)

	// --- Recipient resolution. ---

	var recipient types.Address
	var contractAddress types.Address
	creating := tx.IsContractCreation()
	if creating {
		contractAddress, err = crypto.CreateAddress(tx.Sender, tx.Nonce)
		if err != nil {
			panic(fmt.Sprintf("core: derive contract address: %v", err))
		}
		recipient = contractAddress
	} else {
		recipient = *tx.To
	}

	// --- Snapshots: state and storage are independently opaque handles. ---

	stateSnap := ex.State.TakeSnapshot()
	storageSnap := ex.Storage.TakeSnapshot()

	// --- Value transfer. ---

	if creating {
		ex.State.CreateAccount(contractAddress)
		// A known gap: no check that contractAddress does not already
		// carry code or a non-zero nonce (the classic creation-collision
		// case). Left unimplemented rather than guessed at.
	}
	if !tx.Value.IsZero() {
		if err := ex.State.SubtractFromBalance(tx.Sender, tx.Value); err != nil {
			panic(fmt.Sprintf("core: value transfer: %v", err))
		}
		ex.State.AddToBalance(recipient, tx.Value)
	}

	// --- VM entry. ---

	execType := vm.ExecutionTransaction
	input := tx.Data
	if creating {
		execType = vm.ExecutionDirectCreate
	}

	env := vm.ExecutionEnvironment{
		Type:        execType,
		Sender:      tx.Sender,
		CodeAddress: recipient,
		Input:       input,
		Value:       tx.Value,
		GasPrice:    tx.GasPrice,
		Header:      header,
		Spec:        spec,
	}

	gasAvailable := tx.GasLimit - intrinsicGas
	output, gasLeft, substate, vmErr := ex.VM.Run(env, ex.State, ex.Storage, gasAvailable, ex.Tracer)

	// --- Post-VM outcomes. ---

	status := types.ReceiptStatusSuccessful
	faulted := vmErr != nil
	switch {
	case faulted:
		// Caught VM fault: all gas is forfeit, every effect of this call
		// (including the earlier value transfer) is undone.
		ex.State.Restore(stateSnap)
		ex.Storage.Restore(storageSnap)
		gasLeft = 0
		status = types.ReceiptStatusFailed
		ex.logger.Warn("transaction faulted", "hash", tx.Hash.Hex(), "err", vmErr)

	case substate.ShouldRevert:
		ex.State.Restore(stateSnap)
		ex.Storage.Restore(storageSnap)
		status = types.ReceiptStatusFailed

	case creating:
		if codeErr := ex.deployCode(contractAddress, output, spec, &gasLeft); codeErr != nil {
			// Code-deposit failure is itself a caught fault: it forfeits
			// all gas and undoes the transaction's effects, exactly like
			// an out-of-gas halt inside the VM.
			ex.State.Restore(stateSnap)
			ex.Storage.Restore(storageSnap)
			gasLeft = 0
			status = types.ReceiptStatusFailed
			faulted = true
		}
	}

	// --- Refund. ---

	spentGas := (RefundComputer{}).Compute(tx.GasLimit, gasLeft, substate.RefundCounter, len(substate.DestroyList), !faulted && substate.ShouldRevert)
	if faulted {
		spentGas = tx.GasLimit
	}

	// --- Destruction sweep (only on a non-reverted, non-faulted outcome).
	// Each entry's remaining balance goes to the beneficiary named in
	// SELFDESTRUCT's own operand, not to the block's miner. ---

	if !faulted && !substate.ShouldRevert {
		for _, entry := range substate.DestroyList {
			bal := ex.State.GetBalance(entry.Address)
			if !bal.IsZero() {
				ex.State.AddToBalance(entry.Beneficiary, bal)
			}
			ex.State.DeleteAccount(entry.Address)
		}
	}

	// --- Beneficiary credit and sender refund. ---

	remaining := tx.GasLimit - spentGas
	if remaining > 0 {
		refundWei := new(uint256.Int).Mul(tx.GasPrice, new(uint256.Int).SetUint64(remaining))
		ex.State.AddToBalance(tx.Sender, refundWei)
	}
	if spentGas > 0 {
		feeWei := new(uint256.Int).Mul(tx.GasPrice, new(uint256.Int).SetUint64(spentGas))
		ex.State.AddToBalance(header.Beneficiary, feeWei)
	}

	// --- Commit. ---

	stateRoot, err := ex.State.Commit()
	if err != nil {
		panic(fmt.Sprintf("core: commit state: %v", err))
	}
	if err := ex.Storage.Commit(); err != nil {
		panic(fmt.Sprintf("core: commit storage: %v", err))
	}

	header.GasUsed += spentGas
	executedCounter.Inc()
	lastGasUsed.Set(int64(spentGas))
	ex.logger.Debug("transaction executed", "hash", tx.Hash.Hex(), "gasUsed", spentGas, "status", status)

	// --- Tracing. ---

	if ex.Tracer.IsTracingEnabled() {
		ex.Tracer.SaveTrace(tx.Hash, vm.Trace{Gas: spentGas, Payload: output})
	}

	// --- Receipt. ---

	// Pre-Byzantium receipts carried an intermediate state root instead of
	// a status byte (EIP-658). Status is always populated on Receipt; the
	// post-state root is set only when EIP-658 is not active.
	rb := types.NewReceiptBuilder().
		SetStatus(status).
		SetGasUsed(spentGas).
		SetCumulativeGasUsed(header.GasUsed).
		SetTxHash(tx.Hash).
		SetEffectiveGasPrice(tx.GasPrice).
		SetRecipient(recipient)

	if !spec.IsByzantium {
		rb.SetPostStateRoot(stateRoot)
	}

	if creating && status == types.ReceiptStatusSuccessful {
		rb.SetContractAddress(contractAddress)
	}
	for _, l := range substate.Logs {
		rb.AddLog(l)
	}

	return rb.Build(), nil
}

// deployCode charges the per-byte code-deposit cost for output and, if
// affordable and within the EIP-170 size limit, stores it as
// contractAddress's code. gasLeft is updated in place.
//
// A non-nil return means deployment is a fatal fault that the caller treats
// as full-gas-forfeiting: an EIP-170 size violation always is. An
// unaffordable deposit is fatal only when spec.IsHomestead (EIP-2) is
// active; before Homestead, the contract is simply left with empty code and
// no deposit is charged.
func (ex *TransactionExecutor) deployCode(contractAddress types.Address, output []byte, spec params.ActiveSpec, gasLeft *uint64) error {
	if len(output) == 0 {
		return nil
	}
	if spec.IsEIP170 && len(output) > params.MaxCodeSize {
		return fmt.Errorf("core: contract code size %d exceeds max %d", len(output), params.MaxCodeSize)
	}
	depositCost := uint64(len(output)) * CodeDepositGas
	if *gasLeft < depositCost {
		if spec.IsHomestead {
			return fmt.Errorf("core: %w: code deposit", ErrIntrinsicGas)
		}
		return nil
	}
	*gasLeft -= depositCost
	ex.State.UpdateCode(contractAddress, output)
	ex.State.UpdateCodeHash(contractAddress, crypto.Keccak256Hash(output))
	return nil
}
