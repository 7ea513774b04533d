package core

// SelfDestructRefund is the gas added to a transaction's refund claim for
// each account that self-destructed during it (before RefundComputer's cap).
const SelfDestructRefund uint64 = 24000

// RefundComputer applies the post-execution gas refund: callers cannot
// simply subtract refundCounter from gas used, because the refund is capped
// relative to the gas actually spent and is discarded entirely if the
// top-level call reverted.
type RefundComputer struct{}

// Compute returns the final gas spent by a transaction, after capping and
// applying the refund. gasLimit and gasLeft describe the raw outcome of
// execution; refundCounter and destroyListLen come from the VM's
// TransactionSubstate; shouldRevert suppresses the refund entirely.
func (RefundComputer) Compute(gasLimit, gasLeft, refundCounter uint64, destroyListLen int, shouldRevert bool) (spentGas uint64) {
	spentGas0 := gasLimit - gasLeft

	if shouldRevert {
		return spentGas0
	}

	cap := spentGas0 / 2
	claim := refundCounter + uint64(destroyListLen)*SelfDestructRefund

	refund := claim
	if refund > cap {
		refund = cap
	}

	return spentGas0 - refund
}
