package types

import "github.com/holiman/uint256"

// Receipt status values.
const (
	ReceiptStatusFailed     = uint64(0)
	ReceiptStatusSuccessful = uint64(1)
)

// Receipt represents the outcome of executing a single transaction.
type Receipt struct {
	// Consensus fields.
	Status            uint64
	CumulativeGasUsed uint64
	Bloom             Bloom
	Logs              []*Log

	// Recipient is the message-call recipient, or the derived contract
	// address for a contract-creation transaction.
	Recipient Address

	// PostStateRoot carries the intermediate state root that pre-Byzantium
	// receipts reported in place of Status. Left zero once EIP-658 status
	// byte receipts are active.
	PostStateRoot Hash

	// Derived fields, filled in once the transaction's position is known.
	TxHash            Hash
	ContractAddress   Address
	GasUsed           uint64
	EffectiveGasPrice *uint256.Int

	BlockHash        Hash
	BlockNumber      uint64
	TransactionIndex uint
}

// NewReceipt creates a new receipt with the given status and cumulative gas.
func NewReceipt(status uint64, cumulativeGasUsed uint64) *Receipt {
	return &Receipt{
		Status:            status,
		CumulativeGasUsed: cumulativeGasUsed,
	}
}

// Succeeded returns true if the receipt indicates a successful transaction.
func (r *Receipt) Succeeded() bool {
	return r.Status == ReceiptStatusSuccessful
}

// DeriveReceiptFields populates the derived fields on a list of receipts
// after block processing: block context fields and per-log indices.
func DeriveReceiptFields(receipts []*Receipt, blockHash Hash, blockNumber uint64, txs []*Transaction) {
	var logIndex uint

	for i, receipt := range receipts {
		receipt.BlockHash = blockHash
		receipt.BlockNumber = blockNumber
		receipt.TransactionIndex = uint(i)

		if i < len(txs) {
			receipt.TxHash = txs[i].Hash
		}

		for _, log := range receipt.Logs {
			log.BlockHash = blockHash
			log.BlockNumber = blockNumber
			log.TxIndex = uint(i)
			log.Index = logIndex
			if i < len(txs) {
				log.TxHash = txs[i].Hash
			}
			logIndex++
		}
	}
}
