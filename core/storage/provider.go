// Package storage implements the per-contract storage slot side of world
// state, kept independent of core/state's account side so the two can be
// snapshotted and restored separately, as the transaction executor expects.
package storage

import "github.com/eth2030/txproc/core/types"

// Provider is the storage-slot collaborator consumed by the virtual
// machine during a call or creation. The transaction executor itself never
// reads or writes individual slots; it only takes and restores snapshots
// around VM invocation and commits at the end of a successful transaction.
type Provider interface {
	GetStorage(addr types.Address, key types.Hash) types.Hash
	SetStorage(addr types.Address, key types.Hash, value types.Hash)

	TakeSnapshot() int
	Restore(snapshot int)

	Commit() error
}

// slotKey identifies a single storage cell.
type slotKey struct {
	addr types.Address
	key  types.Hash
}

// MemoryProvider is an in-memory reference implementation of Provider. Its
// journal and snapshot numbering are entirely separate from
// core/state.MemoryProvider's.
type MemoryProvider struct {
	slots   map[slotKey]types.Hash
	journal *journal
}

// NewMemoryProvider returns an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		slots:   make(map[slotKey]types.Hash),
		journal: newJournal(),
	}
}

// GetStorage returns the value at addr/key, or the zero hash if unset.
func (p *MemoryProvider) GetStorage(addr types.Address, key types.Hash) types.Hash {
	return p.slots[slotKey{addr, key}]
}

// SetStorage sets the value at addr/key, journaling the previous value so
// Restore can undo it.
func (p *MemoryProvider) SetStorage(addr types.Address, key types.Hash, value types.Hash) {
	sk := slotKey{addr, key}
	prev, existed := p.slots[sk]
	p.journal.append(storageChange{key: sk, prev: prev, existed: existed})
	if value == (types.Hash{}) && !existed {
		// Writing zero to a slot that was already implicitly zero: still
		// record it above for symmetry, but no map mutation is needed.
		return
	}
	p.slots[sk] = value
}

// TakeSnapshot returns an opaque handle identifying the current journal
// position.
func (p *MemoryProvider) TakeSnapshot() int {
	return p.journal.snapshot()
}

// Restore undoes every storage write made since snapshot was taken.
func (p *MemoryProvider) Restore(snapshot int) {
	p.journal.revertTo(snapshot, p)
}

// Commit finalizes all storage writes made so far.
func (p *MemoryProvider) Commit() error {
	p.journal = newJournal()
	return nil
}
