package types

import "github.com/holiman/uint256"

// Transaction is the unit of work submitted to the transaction executor.
// Unlike a wire-format Ethereum transaction it carries no signature: the
// sender has already been recovered and is supplied directly, matching the
// admission boundary described for TransactionExecutor.Execute.
type Transaction struct {
	Hash     Hash
	Sender   Address
	To       *Address // nil selects contract creation
	Nonce    uint64
	Value    *uint256.Int
	GasPrice *uint256.Int
	GasLimit uint64

	// Data is calldata for a call (To != nil) or init code for a
	// contract creation (To == nil).
	Data []byte
}

// IsContractCreation reports whether the transaction creates a new contract.
func (tx *Transaction) IsContractCreation() bool {
	return tx.To == nil
}

// Cost returns gasLimit * gasPrice + value, the most the transaction can
// take from the sender's balance. TransactionExecutor.Execute does not use
// it: its pre-flight check covers intrinsic gas * gasPrice + value only.
func (tx *Transaction) Cost() *uint256.Int {
	total := new(uint256.Int).Mul(tx.GasPrice, new(uint256.Int).SetUint64(tx.GasLimit))
	total.Add(total, tx.Value)
	return total
}
