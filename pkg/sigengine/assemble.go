// Copyright 2025 Certen Protocol
//
package sigengine

import (
	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// Assembled is the on-chain-consumable form of a collection of
// signatures over one checkpoint: three parallel arrays in exactly the
// order Valset.Members was in, which is what the EVM verifier expects
// (spec section 4.3 — "the ordering must not be sorted").
type Assembled struct {
	Addresses []types.EvmAddress
	Powers    []uint64
	Sigs      []Signature
}

// Assemble builds the (addresses[], powers[], sigs[]) triplet for a
// checkpoint given the signatures collected from the home chain's confirm
// store, keyed by the signer's recorded EvmAddress.
//
// Walking is strictly in Valset.Members order: members without a
// collected signature receive a zero-signature placeholder rather than
// being omitted, since the contract indexes signatures positionally
// against its own stored validator array.
func Assemble(valset types.Valset, sigsByAddress map[types.EvmAddress]Signature, checkpoint []byte) (Assembled, error) {
	out := Assembled{
		Addresses: make([]types.EvmAddress, len(valset.Members)),
		Powers:    make([]uint64, len(valset.Members)),
		Sigs:      make([]Signature, len(valset.Members)),
	}

	var votingPower uint64
	for i, member := range valset.Members {
		out.Addresses[i] = member.EvmAddress
		out.Powers[i] = member.Power

		sig, ok := sigsByAddress[member.EvmAddress]
		if !ok {
			out.Sigs[i] = Signature{}
			continue
		}

		recovered, err := Recover(checkpoint, sig)
		if err != nil {
			return Assembled{}, err
		}
		if recovered != member.EvmAddress {
			return Assembled{}, bridgeerr.New(bridgeerr.KindInvalidBridgeState,
				"signature recovers to an address that does not match the valset member it was collected for", nil)
		}

		out.Sigs[i] = sig
		votingPower += member.Power
	}

	if votingPower <= types.PassThreshold {
		return Assembled{}, bridgeerr.New(bridgeerr.KindQuorum, "insufficient voting power to assemble checkpoint", nil)
	}

	return out, nil
}
