package state

import (
	"testing"

	"github.com/eth2030/txproc/core/types"
	"github.com/holiman/uint256"
)

func TestBalanceSnapshotRestore(t *testing.T) {
	p := NewMemoryProvider()
	addr := types.HexToAddress("0x0000000000000000000000000000000000001")

	p.AddToBalance(addr, uint256.NewInt(100))
	snap := p.TakeSnapshot()

	p.AddToBalance(addr, uint256.NewInt(50))
	if got := p.GetBalance(addr); !got.Eq(uint256.NewInt(150)) {
		t.Fatalf("balance before restore = %s, want 150", got)
	}

	p.Restore(snap)
	if got := p.GetBalance(addr); !got.Eq(uint256.NewInt(100)) {
		t.Fatalf("balance after restore = %s, want 100", got)
	}
}

func TestSubtractFromBalanceInsufficient(t *testing.T) {
	p := NewMemoryProvider()
	addr := types.HexToAddress("0x0000000000000000000000000000000000002")
	p.AddToBalance(addr, uint256.NewInt(10))

	if err := p.SubtractFromBalance(addr, uint256.NewInt(20)); err == nil {
		t.Fatal("expected ErrInsufficientBalance")
	}
	if got := p.GetBalance(addr); !got.Eq(uint256.NewInt(10)) {
		t.Fatalf("balance should be unchanged on failure, got %s", got)
	}
}

func TestNonceIncrementAndRestore(t *testing.T) {
	p := NewMemoryProvider()
	addr := types.HexToAddress("0x0000000000000000000000000000000000003")

	snap := p.TakeSnapshot()
	p.IncrementNonce(addr)
	p.IncrementNonce(addr)
	if got := p.GetNonce(addr); got != 2 {
		t.Fatalf("nonce = %d, want 2", got)
	}

	p.Restore(snap)
	if got := p.GetNonce(addr); got != 0 {
		t.Fatalf("nonce after restore = %d, want 0", got)
	}
}

func TestDeleteAccountRestore(t *testing.T) {
	p := NewMemoryProvider()
	addr := types.HexToAddress("0x0000000000000000000000000000000000004")
	p.CreateAccount(addr)
	p.AddToBalance(addr, uint256.NewInt(7))

	snap := p.TakeSnapshot()
	p.DeleteAccount(addr)
	if p.AccountExists(addr) {
		t.Fatal("account should not exist after delete")
	}

	p.Restore(snap)
	if !p.AccountExists(addr) {
		t.Fatal("account should exist again after restore")
	}
	if got := p.GetBalance(addr); !got.Eq(uint256.NewInt(7)) {
		t.Fatalf("balance after restoring deleted account = %s, want 7", got)
	}
}

func TestIsEmptyAccount(t *testing.T) {
	p := NewMemoryProvider()
	addr := types.HexToAddress("0x0000000000000000000000000000000000005")

	if !p.IsEmptyAccount(addr) {
		t.Fatal("an untouched address should be empty")
	}

	p.AddToBalance(addr, uint256.NewInt(1))
	if p.IsEmptyAccount(addr) {
		t.Fatal("an address with a nonzero balance is not empty")
	}
}

func TestCodeUpdateAndRestore(t *testing.T) {
	p := NewMemoryProvider()
	addr := types.HexToAddress("0x0000000000000000000000000000000000006")

	snap := p.TakeSnapshot()
	p.UpdateCode(addr, []byte{0x01, 0x02})
	if got := p.GetCode(addr); len(got) != 2 {
		t.Fatalf("code length = %d, want 2", len(got))
	}

	p.Restore(snap)
	if got := p.GetCode(addr); len(got) != 0 {
		t.Fatalf("code after restore should be empty, got %v", got)
	}
}

func TestSnapshotNumberingIndependentOfCalls(t *testing.T) {
	p := NewMemoryProvider()
	addr := types.HexToAddress("0x0000000000000000000000000000000000007")

	s1 := p.TakeSnapshot()
	p.AddToBalance(addr, uint256.NewInt(1))
	s2 := p.TakeSnapshot()
	p.AddToBalance(addr, uint256.NewInt(1))

	if s1 == s2 {
		t.Fatal("successive snapshots must have distinct handles")
	}

	p.Restore(s2)
	if got := p.GetBalance(addr); !got.Eq(uint256.NewInt(1)) {
		t.Fatalf("balance after restoring s2 = %s, want 1", got)
	}

	p.Restore(s1)
	if got := p.GetBalance(addr); !got.IsZero() {
		t.Fatalf("balance after restoring s1 = %s, want 0", got)
	}
}
