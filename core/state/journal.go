package state

import (
	"github.com/eth2030/txproc/core/types"
	"github.com/holiman/uint256"
)

// journalEntry is a revertible account-state change.
type journalEntry interface {
	revert(p *MemoryProvider)
}

// journal tracks account-state modifications for snapshot/restore. It is
// the account-side twin of core/storage's journal; the two are never
// shared, which is what gives the two providers independent snapshot
// spaces.
type journal struct {
	entries   []journalEntry
	snapshots map[int]int // snapshot ID -> entry index
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
		panic("state: unknown snapshot handle")
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

type createAccountChange struct {
	addr types.Address
	prev *account // nil if the account didn't exist before
}

func (ch createAccountChange) revert(p *MemoryProvider) {
	if ch.prev == nil {
		delete(p.accounts, ch.addr)
	} else {
		p.accounts[ch.addr] = ch.prev
	}
}

type deleteAccountChange struct {
	addr types.Address
	prev *account
}

func (ch deleteAccountChange) revert(p *MemoryProvider) {
	if ch.prev != nil {
		p.accounts[ch.addr] = ch.prev
	}
}

type balanceChange struct {
	addr types.Address
	prev *uint256.Int
}

func (ch balanceChange) revert(p *MemoryProvider) {
	if a := p.get(ch.addr); a != nil {
		a.balance = ch.prev
	}
}

type nonceChange struct {
	addr types.Address
	prev uint64
}

func (ch nonceChange) revert(p *MemoryProvider) {
	if a := p.get(ch.addr); a != nil {
		a.nonce = ch.prev
	}
}

type codeChange struct {
	addr     types.Address
	prevCode []byte
	prevHash types.Hash
}

func (ch codeChange) revert(p *MemoryProvider) {
	if a := p.get(ch.addr); a != nil {
		a.code = ch.prevCode
		a.codeHash = ch.prevHash
	}
}
