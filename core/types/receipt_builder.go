package types

import "github.com/holiman/uint256"

// ReceiptBuilder constructs receipts step-by-step after transaction execution.
// It accumulates fields and computes the bloom filter on Build().
type ReceiptBuilder struct {
	status            uint64
	gasUsed           uint64
	cumulativeGas     uint64
	logs              []*Log
	recipient         Address
	contractAddress   Address
	postStateRoot     Hash
	txHash            Hash
	blockHash         Hash
	blockNumber       uint64
	transactionIndex  uint
	effectiveGasPrice *uint256.Int

	hasBlockNumber bool
}

// NewReceiptBuilder creates a new ReceiptBuilder with zero-value defaults.
func NewReceiptBuilder() *ReceiptBuilder {
	return &ReceiptBuilder{}
}

// SetStatus sets the receipt status code (0=fail, 1=success).
func (rb *ReceiptBuilder) SetStatus(status uint64) *ReceiptBuilder {
	rb.status = status
	return rb
}

// SetGasUsed sets the gas consumed by this transaction.
func (rb *ReceiptBuilder) SetGasUsed(gas uint64) *ReceiptBuilder {
	rb.gasUsed = gas
	return rb
}

// SetCumulativeGasUsed sets the cumulative gas used in the block up to
// and including this transaction.
func (rb *ReceiptBuilder) SetCumulativeGasUsed(gas uint64) *ReceiptBuilder {
	rb.cumulativeGas = gas
	return rb
}

// AddLog appends a log entry to the receipt. Nil logs are ignored.
func (rb *ReceiptBuilder) AddLog(log *Log) *ReceiptBuilder {
	if log != nil {
		rb.logs = append(rb.logs, log)
	}
	return rb
}

// SetRecipient sets the message-call recipient, or the derived contract
// address for a contract-creation transaction.
func (rb *ReceiptBuilder) SetRecipient(addr Address) *ReceiptBuilder {
	rb.recipient = addr
	return rb
}

// SetContractAddress sets the contract address for contract creation txs.
func (rb *ReceiptBuilder) SetContractAddress(addr Address) *ReceiptBuilder {
	rb.contractAddress = addr
	return rb
}

// SetPostStateRoot sets the pre-Byzantium intermediate state root. Callers
// should only set this when the active spec does not enable EIP-658
// status-byte receipts.
func (rb *ReceiptBuilder) SetPostStateRoot(root Hash) *ReceiptBuilder {
	rb.postStateRoot = root
	return rb
}

// SetTxHash sets the transaction hash on the receipt.
func (rb *ReceiptBuilder) SetTxHash(hash Hash) *ReceiptBuilder {
	rb.txHash = hash
	return rb
}

// SetBlockHash sets the block hash on the receipt.
func (rb *ReceiptBuilder) SetBlockHash(hash Hash) *ReceiptBuilder {
	rb.blockHash = hash
	return rb
}

// SetBlockNumber sets the block number on the receipt.
func (rb *ReceiptBuilder) SetBlockNumber(num uint64) *ReceiptBuilder {
	rb.blockNumber = num
	rb.hasBlockNumber = true
	return rb
}

// SetTransactionIndex sets the index of the transaction within the block.
func (rb *ReceiptBuilder) SetTransactionIndex(idx uint) *ReceiptBuilder {
	rb.transactionIndex = idx
	return rb
}

// SetEffectiveGasPrice sets the gas price used to compute the sender's
// gas cost for this transaction.
func (rb *ReceiptBuilder) SetEffectiveGasPrice(price *uint256.Int) *ReceiptBuilder {
	rb.effectiveGasPrice = price
	return rb
}

// Build assembles the final Receipt, computing the bloom filter from logs.
func (rb *ReceiptBuilder) Build() *Receipt {
	receipt := &Receipt{
		Status:            rb.status,
		CumulativeGasUsed: rb.cumulativeGas,
		Logs:              rb.logs,
		Recipient:         rb.recipient,
		TxHash:            rb.txHash,
		ContractAddress:   rb.contractAddress,
		PostStateRoot:     rb.postStateRoot,
		GasUsed:           rb.gasUsed,
		EffectiveGasPrice: rb.effectiveGasPrice,
		BlockHash:         rb.blockHash,
		TransactionIndex:  rb.transactionIndex,
	}

	if rb.hasBlockNumber {
		receipt.BlockNumber = rb.blockNumber
	}

	if len(rb.logs) > 0 {
		receipt.Bloom = ComputeReceiptBloom(rb.logs)
	}

	return receipt
}

// ComputeReceiptBloom computes a bloom filter from a slice of logs.
func ComputeReceiptBloom(logs []*Log) Bloom {
	return LogsBloom(logs)
}
