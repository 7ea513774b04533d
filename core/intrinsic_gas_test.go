package core

import (
	"testing"

	"github.com/eth2030/txproc/core/types"
	"github.com/eth2030/txproc/params"
)

func TestIntrinsicGasPlainCall(t *testing.T) {
	to := types.HexToAddress("0x01")
	tx := &types.Transaction{To: &to}
	spec := params.AllForksEnabledConfig.Rules(0)

	got, err := (IntrinsicGasCalculator{}).Calculate(tx, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TxGas {
		t.Fatalf("gas = %d, want %d", got, TxGas)
	}
}

func TestIntrinsicGasContractCreationHomestead(t *testing.T) {
	tx := &types.Transaction{To: nil}
	spec := params.AllForksEnabledConfig.Rules(0)

	got, err := (IntrinsicGasCalculator{}).Calculate(tx, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TxGasContractCreation {
		t.Fatalf("gas = %d, want %d", got, TxGasContractCreation)
	}
}

func TestIntrinsicGasContractCreationPreHomestead(t *testing.T) {
	tx := &types.Transaction{To: nil}
	spec := params.ActiveSpec{} // no forks active

	got, err := (IntrinsicGasCalculator{}).Calculate(tx, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TxGas {
		t.Fatalf("pre-Homestead creation gas = %d, want base %d", got, TxGas)
	}
}

func TestIntrinsicGasDataBytes(t *testing.T) {
	to := types.HexToAddress("0x01")
	tx := &types.Transaction{
		To:   &to,
		Data: []byte{0x00, 0x00, 0x01, 0x02},
	}
	spec := params.AllForksEnabledConfig.Rules(0)

	got, err := (IntrinsicGasCalculator{}).Calculate(tx, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := TxGas + 2*TxDataZeroGas + 2*TxDataNonZeroGas
	if got != want {
		t.Fatalf("gas = %d, want %d", got, want)
	}
}
