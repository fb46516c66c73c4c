// Copyright 2025 Certen Protocol
//
package evmchain

import (
	"context"
	"math/big"
)

// Known chain-ids that run a single-signer or dev consensus, where
// "latest" is already as final as the chain gets.
var devSingleSignerChainIDs = map[uint64]bool{
	2018:  true, // Gravity Bridge's historical testnet chain-id
	15:    true,
	31337: true, // common local hardhat/anvil default
}

// smallCommitteePoAChainIDs subtract a fixed, shallow depth instead of
// trusting "latest" outright: enough to absorb the occasional single-block
// reorg a small PoA committee can still produce.
var smallCommitteePoAChainIDs = map[uint64]bool{
	// Populated by deployments as needed; empty by default since no PoA
	// chain-id is canonical across bridge deployments.
}

const (
	// poaFinalityDepth is subtracted from "latest" for small-committee PoA
	// chains known not to expose a "finalized" tag.
	poaFinalityDepth = 10

	// unknownChainFinalityDepth is the conservative finality proxy used
	// for any chain-id not otherwise recognized. Accepting non-finalized
	// events would open the bridge to re-org theft, so unknown chains get
	// the deepest margin.
	unknownChainFinalityDepth = 96
)

// safeBlockSource is the minimal surface LatestSafeBlock needs, satisfied
// by *Client and by a fake in tests.
type safeBlockSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockNumberByTag(ctx context.Context, tag string) (uint64, error)
	ChainID() *big.Int
}

// LatestSafeBlock returns a conservative estimate of the highest EVM block
// safe to scan for bridge events (spec section 4.4.1):
//
//   - recognized mainnet / PoS testnets: the node's "finalized" tag
//   - dev / single-signer chains: "latest"
//   - small-committee PoA chains: latest - poaFinalityDepth
//   - unknown chains: latest - unknownChainFinalityDepth
//
// The returned value never exceeds the node's current eth_blockNumber.
func LatestSafeBlock(ctx context.Context, c safeBlockSource) (uint64, error) {
	chainID := c.ChainID().Uint64()

	latest, err := c.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	switch {
	case devSingleSignerChainIDs[chainID]:
		return latest, nil

	case smallCommitteePoAChainIDs[chainID]:
		return saturatingSub(latest, poaFinalityDepth), nil

	case isKnownMainnetOrPoSTestnet(chainID):
		finalized, err := c.BlockNumberByTag(ctx, "finalized")
		if err != nil {
			return 0, err
		}
		if finalized > latest {
			finalized = latest
		}
		return finalized, nil

	default:
		return saturatingSub(latest, unknownChainFinalityDepth), nil
	}
}

// isKnownMainnetOrPoSTestnet lists chain-ids whose clients are known to
// expose a "finalized" tag (post-merge Ethereum mainnet and its PoS
// testnets).
func isKnownMainnetOrPoSTestnet(chainID uint64) bool {
	switch chainID {
	case 1, // Ethereum mainnet
		11155111, // Sepolia
		17000:    // Holesky
		return true
	default:
		return false
	}
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
