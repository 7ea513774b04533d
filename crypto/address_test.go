package crypto

import (
	"testing"

	"github.com/eth2030/txproc/core/types"
)

func TestCreateAddressDeterministic(t *testing.T) {
	sender := types.HexToAddress("0x00000000000000000000000000000000000042")

	addr1, err := CreateAddress(sender, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr2, err := CreateAddress(sender, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr1 != addr2 {
		t.Fatal("CreateAddress must be deterministic for the same inputs")
	}
}

func TestCreateAddressVariesWithNonce(t *testing.T) {
	sender := types.HexToAddress("0x00000000000000000000000000000000000042")

	addr0, err := CreateAddress(sender, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr1, err := CreateAddress(sender, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr0 == addr1 {
		t.Fatal("different nonces must derive different contract addresses")
	}
}
