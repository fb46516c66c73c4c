package balance

import (
	"math/big"
	"testing"
)

func TestBalancesMatchEqual(t *testing.T) {
	if !balancesMatch(big.NewInt(100), big.NewInt(100)) {
		t.Fatalf("equal balances must match")
	}
}

func TestBalancesMatchDiverged(t *testing.T) {
	if balancesMatch(big.NewInt(100), big.NewInt(101)) {
		t.Fatalf("diverged balances must not match")
	}
}

func TestBalancesMatchZero(t *testing.T) {
	if !balancesMatch(big.NewInt(0), big.NewInt(0)) {
		t.Fatalf("both-zero balances must match")
	}
}
