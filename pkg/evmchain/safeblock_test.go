package evmchain

import (
	"context"
	"math/big"
	"testing"
)

type fakeSafeBlockSource struct {
	chainID   *big.Int
	latest    uint64
	finalized uint64
}

func (f *fakeSafeBlockSource) ChainID() *big.Int { return f.chainID }
func (f *fakeSafeBlockSource) BlockNumber(ctx context.Context) (uint64, error) {
	return f.latest, nil
}
func (f *fakeSafeBlockSource) BlockNumberByTag(ctx context.Context, tag string) (uint64, error) {
	if tag == "finalized" {
		return f.finalized, nil
	}
	return f.latest, nil
}

func TestLatestSafeBlockDevChainUsesLatest(t *testing.T) {
	f := &fakeSafeBlockSource{chainID: big.NewInt(31337), latest: 1000}
	got, err := LatestSafeBlock(context.Background(), f)
	if err != nil {
		t.Fatalf("LatestSafeBlock: %v", err)
	}
	if got != 1000 {
		t.Fatalf("dev chain should use latest, got %d", got)
	}
}

func TestLatestSafeBlockMainnetUsesFinalizedTag(t *testing.T) {
	f := &fakeSafeBlockSource{chainID: big.NewInt(1), latest: 1000, finalized: 970}
	got, err := LatestSafeBlock(context.Background(), f)
	if err != nil {
		t.Fatalf("LatestSafeBlock: %v", err)
	}
	if got != 970 {
		t.Fatalf("mainnet should use finalized tag, got %d", got)
	}
}

func TestLatestSafeBlockUnknownChainSubtractsDepth(t *testing.T) {
	f := &fakeSafeBlockSource{chainID: big.NewInt(999999), latest: 1000}
	got, err := LatestSafeBlock(context.Background(), f)
	if err != nil {
		t.Fatalf("LatestSafeBlock: %v", err)
	}
	if got != 1000-unknownChainFinalityDepth {
		t.Fatalf("unknown chain should subtract %d, got %d", unknownChainFinalityDepth, got)
	}
}

func TestLatestSafeBlockNeverExceedsLatest(t *testing.T) {
	for _, chainID := range []int64{1, 31337, 999999} {
		f := &fakeSafeBlockSource{chainID: big.NewInt(chainID), latest: 50, finalized: 50}
		got, err := LatestSafeBlock(context.Background(), f)
		if err != nil {
			t.Fatalf("LatestSafeBlock: %v", err)
		}
		if got > f.latest {
			t.Fatalf("chain %d: safe block %d exceeds latest %d", chainID, got, f.latest)
		}
	}
}
