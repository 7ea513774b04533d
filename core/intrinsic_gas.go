package core

import (
	"errors"

	"github.com/eth2030/txproc/core/types"
	"github.com/eth2030/txproc/params"
)

// Base gas costs for a transaction, and per-calldata-byte costs. These are
// the historical Frontier/Homestead figures; this calculator deliberately
// does not add EIP-2930 access-list or EIP-3860 init-code-word surcharges,
// since the transaction model it operates on has neither an access list nor
// an init-code-word field.
const (
	TxGas                 uint64 = 21000
	TxGasContractCreation uint64 = 53000
	TxDataZeroGas         uint64 = 4
	TxDataNonZeroGas      uint64 = 68
)

// ErrGasUintOverflow is returned when computing intrinsic gas would overflow
// a uint64.
var ErrGasUintOverflow = errors.New("intrinsic gas: gas uint64 overflow")

// IntrinsicGasCalculator computes the gas a transaction must pay before any
// execution happens, as the sum of: (a) a flat base cost, higher for
// contract creation once EIP-2 (Homestead) is active, (b) a per-byte cost
// over the transaction's data/init-code, zero bytes costing less than
// non-zero bytes, and (c) nothing else -- the formula is closed.
type IntrinsicGasCalculator struct{}

// Calculate returns the intrinsic gas of tx under spec.
func (IntrinsicGasCalculator) Calculate(tx *types.Transaction, spec params.ActiveSpec) (uint64, error) {
	gas := TxGas
	if tx.IsContractCreation() && spec.IsHomestead {
		gas = TxGasContractCreation
	}

	if len(tx.Data) == 0 {
		return gas, nil
	}

	var nonZero uint64
	for _, b := range tx.Data {
		if b != 0 {
			nonZero++
		}
	}
	zero := uint64(len(tx.Data)) - nonZero

	if (gasUintOverflowGuard-gas)/TxDataNonZeroGas < nonZero {
		return 0, ErrGasUintOverflow
	}
	gas += nonZero * TxDataNonZeroGas

	if (gasUintOverflowGuard-gas)/TxDataZeroGas < zero {
		return 0, ErrGasUintOverflow
	}
	gas += zero * TxDataZeroGas

	return gas, nil
}

// gasUintOverflowGuard is the ceiling used for overflow checks; it is far
// above any realistic gas limit but keeps the arithmetic above from wrapping.
const gasUintOverflowGuard uint64 = 1<<64 - 1
