// Copyright 2025 Certen Protocol
//
// Package sigengine is the bridge's signature engine (component C3): it
// builds the canonical "checkpoint" byte string for a validator set,
// transaction batch, or logic call, signs its EVM personal-message digest
// with a secp256k1 key, and reassembles collected signatures into the
// ordered (v, r, s) triplets the bridge contract expects (spec section
// 4.3, 6.4).
package sigengine

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// Method identifiers embedded in every checkpoint, the name's bytes
// zero-padded on the right to 32 bytes exactly like the Solidity `bytes32` constants the bridge contract
// checks itself against.
var (
	methodCheckpoint       = rightPadMethodID("checkpoint")
	methodTransactionBatch = rightPadMethodID("transactionBatch")
	methodLogicCall        = rightPadMethodID("logicCall")
)

func rightPadMethodID(name string) [32]byte {
	var out [32]byte
	copy(out[:], []byte(name))
	return out
}

var (
	typeBytes32, _   = abi.NewType("bytes32", "", nil)
	typeUint256, _   = abi.NewType("uint256", "", nil)
	typeUint256Arr, _ = abi.NewType("uint256[]", "", nil)
	typeAddress, _   = abi.NewType("address", "", nil)
	typeAddressArr, _ = abi.NewType("address[]", "", nil)
	typeBytes, _     = abi.NewType("bytes", "", nil)
)

// BuildValsetCheckpoint packs a validator set update into the checkpoint
// byte string the bridge contract's `checkValidatorSignatures` verifies
// against: gravity_id, the "checkpoint" method id, the valset nonce, the
// member addresses and powers in their recorded order, and the reward.
func BuildValsetCheckpoint(gravityID [32]byte, v types.Valset) ([]byte, error) {
	args := abi.Arguments{
		{Type: typeBytes32}, {Type: typeBytes32}, {Type: typeUint256},
		{Type: typeAddressArr}, {Type: typeUint256Arr},
		{Type: typeUint256}, {Type: typeAddress},
	}

	addrs := make([]common.Address, len(v.Members))
	powers := make([]*big.Int, len(v.Members))
	for i, m := range v.Members {
		addrs[i] = common.Address(m.EvmAddress)
		powers[i] = new(big.Int).SetUint64(m.Power)
	}

	packed, err := args.Pack(
		gravityID, methodCheckpoint, new(big.Int).SetUint64(v.Nonce),
		addrs, powers,
		new(big.Int).SetUint64(v.RewardAmount), common.Address(v.RewardToken),
	)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "ABI-encode valset checkpoint", err)
	}
	return packed, nil
}

// BuildBatchCheckpoint packs a transaction batch into its checkpoint byte
// string: gravity_id, the "transactionBatch" method id, per-transaction
// amounts/destinations/fees in batch order, the batch nonce, the token
// contract, and the timeout.
func BuildBatchCheckpoint(gravityID [32]byte, b types.TransactionBatch) ([]byte, error) {
	args := abi.Arguments{
		{Type: typeBytes32}, {Type: typeBytes32},
		{Type: typeUint256Arr}, {Type: typeAddressArr}, {Type: typeUint256Arr},
		{Type: typeUint256}, {Type: typeAddress}, {Type: typeUint256},
	}

	amounts := make([]*big.Int, len(b.Transactions))
	dests := make([]common.Address, len(b.Transactions))
	fees := make([]*big.Int, len(b.Transactions))
	for i, tx := range b.Transactions {
		amounts[i] = tx.Erc20Amount
		dests[i] = common.Address(tx.DestAddress)
		fees[i] = tx.Erc20Fee
	}

	packed, err := args.Pack(
		gravityID, methodTransactionBatch,
		amounts, dests, fees,
		new(big.Int).SetUint64(b.BatchNonce), common.Address(b.TokenContract), new(big.Int).SetUint64(b.BatchTimeout),
	)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "ABI-encode batch checkpoint", err)
	}
	return packed, nil
}

// BuildLogicCallCheckpoint packs a logic call into its checkpoint byte
// string: gravity_id, the "logicCall" method id, transfer and fee
// amounts/tokens, the target contract, payload, timeout, and invalidation
// scope.
func BuildLogicCallCheckpoint(gravityID [32]byte, lc types.LogicCall) ([]byte, error) {
	args := abi.Arguments{
		{Type: typeBytes32}, {Type: typeBytes32},
		{Type: typeUint256Arr}, {Type: typeAddressArr},
		{Type: typeUint256Arr}, {Type: typeAddressArr},
		{Type: typeAddress}, {Type: typeBytes}, {Type: typeUint256},
		{Type: typeBytes32}, {Type: typeUint256},
	}

	transferAmounts := make([]*big.Int, len(lc.Transfers))
	transferTokens := make([]common.Address, len(lc.Transfers))
	for i, t := range lc.Transfers {
		transferAmounts[i] = t.Amount
		transferTokens[i] = common.Address(t.Contract)
	}
	feeAmounts := make([]*big.Int, len(lc.Fees))
	feeTokens := make([]common.Address, len(lc.Fees))
	for i, f := range lc.Fees {
		feeAmounts[i] = f.Amount
		feeTokens[i] = common.Address(f.Contract)
	}

	var invalidationID [32]byte
	copy(invalidationID[:], lc.InvalidationID)

	packed, err := args.Pack(
		gravityID, methodLogicCall,
		transferAmounts, transferTokens,
		feeAmounts, feeTokens,
		common.Address(lc.LogicContractAddress), lc.Payload, new(big.Int).SetUint64(lc.Timeout),
		invalidationID, new(big.Int).SetUint64(lc.InvalidationNonce),
	)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "ABI-encode logic call checkpoint", err)
	}
	return packed, nil
}

// ethSignedMessagePrefix is the EVM personal-message envelope every
// checkpoint hash is wrapped in before signing, matching what the
// contract's `ecrecover`-based verifier reconstructs on-chain.
const ethSignedMessagePrefix = "\x19Ethereum Signed Message:\n32"

// SignedDigest returns the final 32-byte digest a validator actually
// signs: keccak256 of the checkpoint, wrapped in the personal-message
// envelope and hashed again.
func SignedDigest(checkpoint []byte) common.Hash {
	checkpointHash := crypto.Keccak256(checkpoint)
	return crypto.Keccak256Hash([]byte(ethSignedMessagePrefix), checkpointHash)
}
