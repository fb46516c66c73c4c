// Copyright 2025 Certen Protocol
//
package relayer

import (
	"context"
	"math/big"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// PriceSource converts one unit of a reward/fee ERC20 token into its
// wrapped-ETH value, in wei, for the profitability check the batch
// relaying mode applies (spec section 4.6 step 4). Implementations are
// expected to consult an off-chain price feed; the orchestrator itself
// has no opinion on where prices come from.
type PriceSource interface {
	WrappedEthPrice(ctx context.Context, token types.EvmAddress) (*big.Int, error)
}

// StaticPriceSource is a PriceSource backed by a fixed, operator-supplied
// table, suitable for test tokens or reward tokens the operator has
// pegged manually rather than wired to a live feed.
type StaticPriceSource map[types.EvmAddress]*big.Int

// WrappedEthPrice implements PriceSource.
func (s StaticPriceSource) WrappedEthPrice(ctx context.Context, token types.EvmAddress) (*big.Int, error) {
	price, ok := s[token]
	if !ok {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "no configured price for reward token "+token.Hex(), nil)
	}
	return price, nil
}
