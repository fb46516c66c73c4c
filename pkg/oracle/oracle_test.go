package oracle

import (
	"testing"
	"time"

	"github.com/certen/gravity-orchestrator/pkg/types"
)

func TestPeriodForMovingChainIsNormal(t *testing.T) {
	if got := periodFor(types.ChainMoving); got != normalPeriod {
		t.Fatalf("periodFor(ChainMoving) = %v, want %v", got, normalPeriod)
	}
}

func TestPeriodForNonMovingChainIsWaiting(t *testing.T) {
	for _, status := range []types.ChainStatus{types.ChainSyncing, types.ChainUnknown} {
		if got := periodFor(status); got != waitingPeriod {
			t.Fatalf("periodFor(%v) = %v, want %v", status, got, waitingPeriod)
		}
	}
}

func TestPeriodsAreOrderedWaitingSlowerThanNormal(t *testing.T) {
	if waitingPeriod <= normalPeriod {
		t.Fatalf("waitingPeriod (%v) must be slower than normalPeriod (%v)", waitingPeriod, normalPeriod)
	}
	if normalPeriod <= 0 || waitingPeriod <= 0 {
		t.Fatalf("periods must be positive durations")
	}
	_ = time.Second
}
