// Package params holds chain configuration and resolves the set of protocol
// rules active at a given block number.
package params

// ChainConfig holds the block numbers at which each relevant hard fork
// activates. A nil field means the fork is not scheduled.
type ChainConfig struct {
	ChainID uint64

	HomesteadBlock        *uint64 // EIP-2: stricter contract-creation gas and intrinsic gas floor
	SpuriousDragonBlock   *uint64 // EIP-158/161: empty-account pruning
	TangerineWhistleBlock *uint64 // EIP-170: max contract code size
	ByzantiumBlock        *uint64 // EIP-658: receipt status byte replaces intermediate state root
}

func isBlockForked(forkBlock *uint64, block uint64) bool {
	if forkBlock == nil {
		return false
	}
	return *forkBlock <= block
}

// IsHomestead reports whether EIP-2 is active at block.
func (c *ChainConfig) IsHomestead(block uint64) bool {
	return isBlockForked(c.HomesteadBlock, block)
}

// IsSpuriousDragon reports whether EIP-158/161 is active at block.
func (c *ChainConfig) IsSpuriousDragon(block uint64) bool {
	return isBlockForked(c.SpuriousDragonBlock, block)
}

// IsEIP170 reports whether the EIP-170 max-code-size limit is active at block.
func (c *ChainConfig) IsEIP170(block uint64) bool {
	return isBlockForked(c.TangerineWhistleBlock, block)
}

// IsByzantium reports whether EIP-658 status-byte receipts are active at block.
func (c *ChainConfig) IsByzantium(block uint64) bool {
	return isBlockForked(c.ByzantiumBlock, block)
}

func newUint64(v uint64) *uint64 { return &v }

// MainnetConfig schedules the four forks at their historical mainnet block
// numbers.
var MainnetConfig = &ChainConfig{
	ChainID:               1,
	HomesteadBlock:        newUint64(1150000),
	TangerineWhistleBlock: newUint64(2463000),
	SpuriousDragonBlock:   newUint64(2675000),
	ByzantiumBlock:        newUint64(4370000),
}

// AllForksEnabledConfig activates every fork at block 0, for tests that want
// the full modern rule set without modelling fork transitions.
var AllForksEnabledConfig = &ChainConfig{
	ChainID:               1337,
	HomesteadBlock:        newUint64(0),
	TangerineWhistleBlock: newUint64(0),
	SpuriousDragonBlock:   newUint64(0),
	ByzantiumBlock:        newUint64(0),
}

// ActiveSpec is the resolved, immutable set of protocol flags that govern a
// single transaction's execution. It is a value, not a pointer into
// ChainConfig, so that it can be captured once at the start of Execute and
// referenced throughout without re-querying the fork schedule.
type ActiveSpec struct {
	IsHomestead      bool // EIP-2
	IsSpuriousDragon bool // EIP-158/161
	IsEIP170         bool // EIP-170 max code size
	IsByzantium      bool // EIP-658 status-byte receipts
}

// MaxCodeSize is the EIP-170 contract code size limit in bytes.
const MaxCodeSize = 24576

// SpecProvider resolves the ActiveSpec for a given block number.
type SpecProvider interface {
	GetSpec(blockNumber uint64) ActiveSpec
}

// Rules resolves the ActiveSpec for blockNumber under this chain config.
// ChainConfig itself implements SpecProvider via this method.
func (c *ChainConfig) Rules(blockNumber uint64) ActiveSpec {
	return ActiveSpec{
		IsHomestead:      c.IsHomestead(blockNumber),
		IsSpuriousDragon: c.IsSpuriousDragon(blockNumber),
		IsEIP170:         c.IsEIP170(blockNumber),
		IsByzantium:      c.IsByzantium(blockNumber),
	}
}

// GetSpec implements SpecProvider.
func (c *ChainConfig) GetSpec(blockNumber uint64) ActiveSpec {
	return c.Rules(blockNumber)
}
