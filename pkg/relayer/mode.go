// Copyright 2025 Certen Protocol
//
package relayer

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/certen/gravity-orchestrator/pkg/types"
)

// BatchMode selects which of the four batch-relaying strategies named in
// spec section 9's config-objects list governs whether a fully-signed,
// not-yet-stale batch is actually submitted.
type BatchMode int

const (
	// EveryBatch submits every surviving candidate with no profitability
	// computation at all.
	EveryBatch BatchMode = iota
	// Altruistic also submits unconditionally. ShouldRelay treats it
	// exactly like EveryBatch: no profitability figure is computed or
	// logged.
	Altruistic
	// ProfitableOnly submits only when the batch's total fee, converted
	// to wrapped ETH via PriceSource, clears gas_estimate * gas_price *
	// Margin.
	ProfitableOnly
	// ProfitableWithWhitelist behaves like ProfitableOnly, except a
	// reward token listed in Whitelist uses its static price instead of
	// consulting PriceSource.
	ProfitableWithWhitelist
)

// String renders a BatchMode for logging.
func (m BatchMode) String() string {
	switch m {
	case EveryBatch:
		return "EveryBatch"
	case Altruistic:
		return "Altruistic"
	case ProfitableOnly:
		return "ProfitableOnly"
	case ProfitableWithWhitelist:
		return "ProfitableWithWhitelist"
	default:
		return "Unknown"
	}
}

// ParseBatchMode parses the --batch-relay-mode flag value into a
// BatchMode, accepting the same names BatchMode.String produces in
// kebab-case.
func ParseBatchMode(s string) (BatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "every-batch":
		return EveryBatch, nil
	case "altruistic":
		return Altruistic, nil
	case "profitable-only":
		return ProfitableOnly, nil
	case "profitable-with-whitelist":
		return ProfitableWithWhitelist, nil
	default:
		return 0, fmt.Errorf("unknown batch relay mode %q", s)
	}
}

// ValsetMode selects the relaying strategy for valset updates. Unlike
// batches, valset updates carry no fee of their own to weigh against gas
// cost, so both modes submit unconditionally once signatures assemble;
// the distinction is kept for config-surface parity with the upstream
// options this orchestrator exposes (spec section 9).
type ValsetMode int

const (
	ValsetAltruistic ValsetMode = iota
	ValsetEveryValset
)

// String renders a ValsetMode for logging.
func (m ValsetMode) String() string {
	if m == ValsetEveryValset {
		return "EveryValset"
	}
	return "Altruistic"
}

// BatchRelayConfig bundles the batch sub-loop's relaying policy.
type BatchRelayConfig struct {
	Mode BatchMode
	// Margin is the multiplier submission reward must clear over
	// estimated gas cost for ProfitableOnly/ProfitableWithWhitelist,
	// e.g. 1.2 requires the reward to exceed cost by 20%.
	Margin float64
	// Whitelist overrides PriceSource for specific reward tokens with a
	// fixed wrapped-ETH-per-unit price, used by ProfitableWithWhitelist.
	Whitelist map[types.EvmAddress]*big.Int
}

// ShouldRelay decides whether a batch clears this config's bar, given its
// total fee (in the batch's own token denomination), the estimated
// submission gas, and the current gas price.
func (cfg BatchRelayConfig) ShouldRelay(ctx context.Context, prices PriceSource, rewardToken types.EvmAddress,
	rewardAmount *big.Int, gasEstimate uint64, gasPrice *big.Int) (bool, error) {
	switch cfg.Mode {
	case EveryBatch:
		return true, nil
	case Altruistic:
		// Relay unconditionally, without computing profitability.
		return true, nil
	case ProfitableOnly:
		return cfg.isProfitable(ctx, prices, rewardToken, rewardAmount, gasEstimate, gasPrice)
	case ProfitableWithWhitelist:
		if price, ok := cfg.Whitelist[rewardToken]; ok {
			return clearsMargin(price, rewardAmount, gasEstimate, gasPrice, cfg.Margin), nil
		}
		return cfg.isProfitable(ctx, prices, rewardToken, rewardAmount, gasEstimate, gasPrice)
	default:
		return false, nil
	}
}

func (cfg BatchRelayConfig) isProfitable(ctx context.Context, prices PriceSource, rewardToken types.EvmAddress,
	rewardAmount *big.Int, gasEstimate uint64, gasPrice *big.Int) (bool, error) {
	price, err := prices.WrappedEthPrice(ctx, rewardToken)
	if err != nil {
		return false, err
	}
	return clearsMargin(price, rewardAmount, gasEstimate, gasPrice, cfg.Margin), nil
}

// clearsMargin reports whether rewardAmount * weiPerUnit exceeds
// gasEstimate * gasPrice * margin.
func clearsMargin(weiPerUnit, rewardAmount *big.Int, gasEstimate uint64, gasPrice *big.Int, margin float64) bool {
	if rewardAmount == nil || weiPerUnit == nil || gasPrice == nil {
		return false
	}
	rewardValue := new(big.Int).Mul(rewardAmount, weiPerUnit)

	cost := new(big.Int).Mul(new(big.Int).SetUint64(gasEstimate), gasPrice)
	scaledCost := new(big.Float).Mul(new(big.Float).SetInt(cost), big.NewFloat(margin))

	return new(big.Float).SetInt(rewardValue).Cmp(scaledCost) >= 0
}
