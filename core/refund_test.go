package core

import "testing"

func TestRefundBelowCap(t *testing.T) {
	// spentGas0 = 100, cap = 50, claim = 20 -> refund = 20, spentGas = 80
	got := (RefundComputer{}).Compute(200, 100, 20, 0, false)
	if got != 80 {
		t.Fatalf("spentGas = %d, want 80", got)
	}
}

func TestRefundClampedToCap(t *testing.T) {
	// spentGas0 = 100, cap = 50, claim = 1000 -> refund capped at 50, spentGas = 50
	got := (RefundComputer{}).Compute(200, 100, 1000, 0, false)
	if got != 50 {
		t.Fatalf("spentGas = %d, want 50", got)
	}
}

func TestRefundIncludesDestroyList(t *testing.T) {
	// spentGas0 = 100, cap = 50, claim = 0 + 1*24000 -> capped at 50
	got := (RefundComputer{}).Compute(200, 100, 0, 1, false)
	if got != 50 {
		t.Fatalf("spentGas = %d, want 50", got)
	}
}

func TestRefundSuppressedOnRevert(t *testing.T) {
	got := (RefundComputer{}).Compute(200, 100, 1000, 5, true)
	if got != 100 {
		t.Fatalf("spentGas = %d, want 100 (refund suppressed on revert)", got)
	}
}
