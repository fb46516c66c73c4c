package relayer

import (
	"context"
	"math/big"
	"testing"

	"github.com/certen/gravity-orchestrator/pkg/types"
)

func TestEveryBatchAlwaysRelays(t *testing.T) {
	cfg := BatchRelayConfig{Mode: EveryBatch}
	relay, err := cfg.ShouldRelay(context.Background(), nil, types.EvmAddress{}, big.NewInt(0), 1_000_000, big.NewInt(1_000_000_000))
	if err != nil {
		t.Fatalf("ShouldRelay: %v", err)
	}
	if !relay {
		t.Fatalf("EveryBatch must always relay")
	}
}

func TestProfitableOnlyRejectsBelowMargin(t *testing.T) {
	token := types.EvmAddress{0xAA}
	prices := StaticPriceSource{token: big.NewInt(1)}
	cfg := BatchRelayConfig{Mode: ProfitableOnly, Margin: 1.2}

	gasEstimate := uint64(100_000)
	gasPrice := big.NewInt(50) // cost = 5,000,000
	reward := big.NewInt(1_000_000)

	relay, err := cfg.ShouldRelay(context.Background(), prices, token, reward, gasEstimate, gasPrice)
	if err != nil {
		t.Fatalf("ShouldRelay: %v", err)
	}
	if relay {
		t.Fatalf("reward below margin*cost should not clear the bar")
	}
}

func TestProfitableOnlyAcceptsAboveMargin(t *testing.T) {
	token := types.EvmAddress{0xAA}
	prices := StaticPriceSource{token: big.NewInt(1)}
	cfg := BatchRelayConfig{Mode: ProfitableOnly, Margin: 1.2}

	gasEstimate := uint64(100_000)
	gasPrice := big.NewInt(50) // cost = 5,000,000; need reward >= 6,000,000
	reward := big.NewInt(10_000_000)

	relay, err := cfg.ShouldRelay(context.Background(), prices, token, reward, gasEstimate, gasPrice)
	if err != nil {
		t.Fatalf("ShouldRelay: %v", err)
	}
	if !relay {
		t.Fatalf("reward above margin*cost should clear the bar")
	}
}

func TestProfitableOnlyMissingPriceErrors(t *testing.T) {
	cfg := BatchRelayConfig{Mode: ProfitableOnly, Margin: 1.0}
	_, err := cfg.ShouldRelay(context.Background(), StaticPriceSource{}, types.EvmAddress{0xBB}, big.NewInt(1), 1, big.NewInt(1))
	if err == nil {
		t.Fatalf("expected error for missing price")
	}
}

func TestProfitableWithWhitelistUsesStaticPriceOverSource(t *testing.T) {
	token := types.EvmAddress{0xCC}
	// The PriceSource would reject this token; the whitelist must be consulted instead.
	cfg := BatchRelayConfig{
		Mode:      ProfitableWithWhitelist,
		Margin:    1.0,
		Whitelist: map[types.EvmAddress]*big.Int{token: big.NewInt(1_000_000)},
	}
	relay, err := cfg.ShouldRelay(context.Background(), StaticPriceSource{}, token, big.NewInt(1), 1, big.NewInt(1))
	if err != nil {
		t.Fatalf("ShouldRelay: %v", err)
	}
	if !relay {
		t.Fatalf("whitelisted price should have cleared the trivial bar")
	}
}

func TestBatchModeStringUnknownIsUnknown(t *testing.T) {
	if got := BatchMode(99).String(); got != "Unknown" {
		t.Fatalf("BatchMode(99).String() = %q, want Unknown", got)
	}
}

func TestValsetModeString(t *testing.T) {
	if got := ValsetAltruistic.String(); got != "Altruistic" {
		t.Fatalf("ValsetAltruistic.String() = %q", got)
	}
	if got := ValsetEveryValset.String(); got != "EveryValset" {
		t.Fatalf("ValsetEveryValset.String() = %q", got)
	}
}

func TestParseBatchModeRoundTrip(t *testing.T) {
	cases := map[string]BatchMode{
		"every-batch":               EveryBatch,
		"Altruistic":                Altruistic,
		"profitable-only":           ProfitableOnly,
		"profitable-with-whitelist": ProfitableWithWhitelist,
	}
	for s, want := range cases {
		got, err := ParseBatchMode(s)
		if err != nil {
			t.Fatalf("ParseBatchMode(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseBatchMode(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseBatchModeRejectsUnknown(t *testing.T) {
	if _, err := ParseBatchMode("bogus"); err == nil {
		t.Fatalf("expected error for unknown batch relay mode")
	}
}
