package core

import (
	"github.com/eth2030/txproc/core/types"
	"github.com/holiman/uint256"
)

// Message is the internal form of a transaction prepared for execution.
// It is a direct field-for-field view of types.Transaction. Execute does not
// use it: TransactionExecutor reads types.Transaction directly.
type Message struct {
	From     types.Address
	To       *types.Address // nil for contract creation
	Nonce    uint64
	Value    *uint256.Int
	GasPrice *uint256.Int
	GasLimit uint64
	Data     []byte
}

// TransactionToMessage converts a transaction into a Message for execution.
func TransactionToMessage(tx *types.Transaction) Message {
	msg := Message{
		From:     tx.Sender,
		Nonce:    tx.Nonce,
		Value:    tx.Value,
		GasPrice: tx.GasPrice,
		GasLimit: tx.GasLimit,
		Data:     tx.Data,
	}
	if tx.To != nil {
		to := *tx.To
		msg.To = &to
	}
	return msg
}
