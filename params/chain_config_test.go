package params

import "testing"

func TestForkActivationBoundary(t *testing.T) {
	cfg := &ChainConfig{HomesteadBlock: newUint64(100)}

	if cfg.IsHomestead(99) {
		t.Fatal("fork should not be active one block before its activation")
	}
	if !cfg.IsHomestead(100) {
		t.Fatal("fork should be active exactly at its activation block")
	}
	if !cfg.IsHomestead(101) {
		t.Fatal("fork should stay active after its activation block")
	}
}

func TestUnscheduledForkNeverActive(t *testing.T) {
	cfg := &ChainConfig{}
	if cfg.IsHomestead(1_000_000) {
		t.Fatal("a nil fork block must never report as active")
	}
}

func TestRulesResolvesAllFlags(t *testing.T) {
	spec := AllForksEnabledConfig.Rules(0)
	if !spec.IsHomestead || !spec.IsSpuriousDragon || !spec.IsEIP170 || !spec.IsByzantium {
		t.Fatalf("expected all forks active at block 0, got %+v", spec)
	}
}

func TestMainnetConfigOrdering(t *testing.T) {
	// Mainnet's forks activate in this order; a later block must never be
	// un-forked relative to an earlier one.
	spec := MainnetConfig.Rules(2_675_000)
	if !spec.IsHomestead || !spec.IsEIP170 || !spec.IsSpuriousDragon {
		t.Fatalf("expected Homestead/EIP170/SpuriousDragon active at the Spurious Dragon block, got %+v", spec)
	}
	if spec.IsByzantium {
		t.Fatal("Byzantium activates later on mainnet and should not be active yet")
	}
}
