package core

import "github.com/eth2030/txproc/core/types"

// LogBloomBuilder computes a transaction's log bloom filter from its
// emitted logs. The algorithm itself -- three bit positions folded from
// Keccak256(address-or-topic) -- lives in core/types/bloom.go, since the
// same fold is reused when combining per-receipt blooms across a block;
// this type is the named entry point a caller reaches for after execution.
type LogBloomBuilder struct{}

// Build returns the bloom filter covering every address and topic across
// logs.
func (LogBloomBuilder) Build(logs []*types.Log) types.Bloom {
	return types.LogsBloom(logs)
}
