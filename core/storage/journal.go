package storage

import "github.com/eth2030/txproc/core/types"

// journalEntry is a revertible storage-slot change.
type journalEntry interface {
	revert(p *MemoryProvider)
}

// journal tracks storage modifications for snapshot/restore. Deliberately a
// near-duplicate of core/state's journal rather than a shared generic type:
// the two collaborators must be free to evolve independently, and the
// duplication is what the split-provider design calls for.
type journal struct {
	entries   []journalEntry
	snapshots map[int]int
	nextID    int
}

func newJournal() *journal {
	return &journal{snapshots: make(map[int]int)}
}

func (j *journal) append(entry journalEntry) {
	j.entries = append(j.entries, entry)
}

func (j *journal) snapshot() int {
	id := j.nextID
	j.nextID++
	j.snapshots[id] = len(j.entries)
	return id
}

func (j *journal) revertTo(id int, p *MemoryProvider) {
	idx, ok := j.snapshots[id]
	if !ok {
		panic("storage: unknown snapshot handle")
	}
	for i := len(j.entries) - 1; i >= idx; i-- {
		j.entries[i].revert(p)
	}
	j.entries = j.entries[:idx]

	for sid := range j.snapshots {
		if sid >= id {
			delete(j.snapshots, sid)
		}
	}
}

type storageChange struct {
	key     slotKey
	prev    types.Hash
	existed bool
}

func (ch storageChange) revert(p *MemoryProvider) {
	if ch.existed {
		p.slots[ch.key] = ch.prev
	} else {
		delete(p.slots, ch.key)
	}
}
