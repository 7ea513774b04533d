// Package state implements the account side of world state: balances,
// nonces, code, and existence. It is one of two independently-snapshotted
// collaborators the transaction executor depends on; contract storage lives
// in the sibling core/storage package under its own snapshot space.
package state

import (
	"fmt"

	"github.com/eth2030/txproc/core/types"
	"github.com/holiman/uint256"
)

// Provider is the account-state collaborator the transaction executor reads
// and mutates. Every mutating method is recorded on an internal journal so
// that Restore can undo it; Commit discards the journal and makes the
// current state permanent.
type Provider interface {
	AccountExists(addr types.Address) bool
	IsEmptyAccount(addr types.Address) bool
	CreateAccount(addr types.Address)
	DeleteAccount(addr types.Address)

	GetBalance(addr types.Address) *uint256.Int
	AddToBalance(addr types.Address, amount *uint256.Int)
	SubtractFromBalance(addr types.Address, amount *uint256.Int) error

	GetNonce(addr types.Address) uint64
	IncrementNonce(addr types.Address)

	GetCodeHash(addr types.Address) types.Hash
	UpdateCode(addr types.Address, code []byte)
	UpdateCodeHash(addr types.Address, hash types.Hash)
	GetCode(addr types.Address) []byte

	// TakeSnapshot returns an opaque handle identifying the current
	// journal position. Restore rewinds the journal back to it.
	TakeSnapshot() int
	Restore(snapshot int)

	// Commit finalizes all changes made since the provider was created
	// and returns the resulting state root.
	Commit() (types.Hash, error)
}

// ErrInsufficientBalance is returned by SubtractFromBalance when the
// account's balance is lower than the amount requested.
var ErrInsufficientBalance = fmt.Errorf("state: insufficient balance")

// account is the mutable record kept per address.
type account struct {
	nonce    uint64
	balance  *uint256.Int
	codeHash types.Hash
	code     []byte
	exists   bool
}

func newAccount() *account {
	return &account{
		balance:  new(uint256.Int),
		codeHash: types.EmptyCodeHash,
		exists:   true,
	}
}

func (a *account) clone() *account {
	cp := *a
	cp.balance = new(uint256.Int).Set(a.balance)
	if a.code != nil {
		cp.code = append([]byte(nil), a.code...)
	}
	return &cp
}

// MemoryProvider is an in-memory reference implementation of Provider,
// suitable for tests and the CLI demo. Its snapshot space is independent of
// core/storage's MemoryProvider: taking a snapshot here says nothing about
// storage, and vice versa, matching the two-collaborator model the executor
// is written against.
type MemoryProvider struct {
	accounts map[types.Address]*account
	journal  *journal
}

// NewMemoryProvider returns an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		accounts: make(map[types.Address]*account),
		journal:  newJournal(),
	}
}

func (p *MemoryProvider) get(addr types.Address) *account {
	return p.accounts[addr]
}

func (p *MemoryProvider) getOrCreate(addr types.Address) *account {
	a := p.accounts[addr]
	if a == nil {
		p.journal.append(createAccountChange{addr: addr})
		a = newAccount()
		p.accounts[addr] = a
	}
	return a
}

// AccountExists reports whether addr has ever been touched.
func (p *MemoryProvider) AccountExists(addr types.Address) bool {
	a := p.get(addr)
	return a != nil && a.exists
}

// IsEmptyAccount reports whether addr is "empty" per EIP-161: zero nonce,
// zero balance, and no code.
func (p *MemoryProvider) IsEmptyAccount(addr types.Address) bool {
	a := p.get(addr)
	if a == nil || !a.exists {
		return true
	}
	return a.nonce == 0 && a.balance.IsZero() && len(a.code) == 0
}

// CreateAccount brings addr into existence with zero balance and nonce. If
// the account already exists its balance is preserved (mirrors the
// real-world case of sending value to an address before it is a contract).
func (p *MemoryProvider) CreateAccount(addr types.Address) {
	prev := p.get(addr)
	p.journal.append(createAccountChange{addr: addr, prev: clonePtr(prev)})

	a := p.getOrCreate(addr)
	a.exists = true
}

// DeleteAccount removes addr from state entirely. Used by the executor's
// destruction sweep at the end of a successful transaction.
func (p *MemoryProvider) DeleteAccount(addr types.Address) {
	prev := p.get(addr)
	p.journal.append(deleteAccountChange{addr: addr, prev: clonePtr(prev)})
	delete(p.accounts, addr)
}

// GetBalance returns addr's current balance, or zero if addr is unknown.
func (p *MemoryProvider) GetBalance(addr types.Address) *uint256.Int {
	a := p.get(addr)
	if a == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(a.balance)
}

// AddToBalance credits amount to addr's balance, creating addr if needed.
func (p *MemoryProvider) AddToBalance(addr types.Address, amount *uint256.Int) {
	if amount.IsZero() {
		return
	}
	a := p.getOrCreate(addr)
	p.journal.append(balanceChange{addr: addr, prev: new(uint256.Int).Set(a.balance)})
	a.balance.Add(a.balance, amount)
}

// SubtractFromBalance debits amount from addr's balance. Returns
// ErrInsufficientBalance if the account's balance is lower than amount;
// callers must check affordability during pre-flight before ever reaching
// this path in normal operation.
func (p *MemoryProvider) SubtractFromBalance(addr types.Address, amount *uint256.Int) error {
	if amount.IsZero() {
		return nil
	}
	a := p.get(addr)
	if a == nil || a.balance.Lt(amount) {
		return fmt.Errorf("%w: address %s", ErrInsufficientBalance, addr.Hex())
	}
	p.journal.append(balanceChange{addr: addr, prev: new(uint256.Int).Set(a.balance)})
	a.balance.Sub(a.balance, amount)
	return nil
}

// GetNonce returns addr's current nonce.
func (p *MemoryProvider) GetNonce(addr types.Address) uint64 {
	a := p.get(addr)
	if a == nil {
		return 0
	}
	return a.nonce
}

// IncrementNonce increments addr's nonce by one, creating addr if needed.
func (p *MemoryProvider) IncrementNonce(addr types.Address) {
	a := p.getOrCreate(addr)
	p.journal.append(nonceChange{addr: addr, prev: a.nonce})
	a.nonce++
}

// GetCodeHash returns addr's code hash, or the empty-code hash if addr has
// no code.
func (p *MemoryProvider) GetCodeHash(addr types.Address) types.Hash {
	a := p.get(addr)
	if a == nil {
		return types.EmptyCodeHash
	}
	return a.codeHash
}

// GetCode returns addr's code.
func (p *MemoryProvider) GetCode(addr types.Address) []byte {
	a := p.get(addr)
	if a == nil {
		return nil
	}
	return a.code
}

// UpdateCode sets addr's code. Callers are expected to also call
// UpdateCodeHash with the hash of the same code.
func (p *MemoryProvider) UpdateCode(addr types.Address, code []byte) {
	a := p.getOrCreate(addr)
	p.journal.append(codeChange{addr: addr, prevCode: a.code, prevHash: a.codeHash})
	a.code = code
}

// UpdateCodeHash sets addr's stored code hash.
func (p *MemoryProvider) UpdateCodeHash(addr types.Address, hash types.Hash) {
	a := p.getOrCreate(addr)
	p.journal.append(codeChange{addr: addr, prevCode: a.code, prevHash: a.codeHash})
	a.codeHash = hash
}

// TakeSnapshot returns an opaque handle identifying the current journal
// position.
func (p *MemoryProvider) TakeSnapshot() int {
	return p.journal.snapshot()
}

// Restore undoes every change made since snapshot was taken.
func (p *MemoryProvider) Restore(snapshot int) {
	p.journal.revertTo(snapshot, p)
}

// Commit finalizes all changes and returns the zero hash. There is no real
// trie here: the returned hash is a placeholder, not a consensus state root.
func (p *MemoryProvider) Commit() (types.Hash, error) {
	p.journal = newJournal()
	return types.Hash{}, nil
}

func clonePtr(a *account) *account {
	if a == nil {
		return nil
	}
	return a.clone()
}
