// Copyright 2025 Certen Protocol
//
package evmchain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/sigengine"
	bridgetypes "github.com/certen/gravity-orchestrator/pkg/types"
)

// bridgeContractABI is the subset of the Gravity Bridge Solidity
// contract's ABI the relayer needs: the three nonce-reading view
// functions it checks before submitting, and the three
// signature-carrying submission functions (spec section 6.3).
const bridgeContractABI = `[
	{"name":"state_lastValsetNonce","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"lastBatchNonce","type":"function","stateMutability":"view","inputs":[{"name":"_erc20Address","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"lastLogicCallNonce","type":"function","stateMutability":"view","inputs":[{"name":"_invalidation_id","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"updateValset","type":"function","stateMutability":"nonpayable","inputs":[
		{"name":"_newValset","type":"tuple","components":[
			{"name":"validators","type":"address[]"},{"name":"powers","type":"uint256[]"},
			{"name":"valsetNonce","type":"uint256"},{"name":"rewardAmount","type":"uint256"},{"name":"rewardToken","type":"address"}
		]},
		{"name":"_currentValset","type":"tuple","components":[
			{"name":"validators","type":"address[]"},{"name":"powers","type":"uint256[]"},
			{"name":"valsetNonce","type":"uint256"},{"name":"rewardAmount","type":"uint256"},{"name":"rewardToken","type":"address"}
		]},
		{"name":"_sigs","type":"tuple[]","components":[
			{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}
		]}
	],"outputs":[]},
	{"name":"submitBatch","type":"function","stateMutability":"nonpayable","inputs":[
		{"name":"_currentValset","type":"tuple","components":[
			{"name":"validators","type":"address[]"},{"name":"powers","type":"uint256[]"},
			{"name":"valsetNonce","type":"uint256"},{"name":"rewardAmount","type":"uint256"},{"name":"rewardToken","type":"address"}
		]},
		{"name":"_sigs","type":"tuple[]","components":[
			{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}
		]},
		{"name":"_amounts","type":"uint256[]"},{"name":"_destinations","type":"address[]"},{"name":"_fees","type":"uint256[]"},
		{"name":"_batchNonce","type":"uint256"},{"name":"_tokenContract","type":"address"},{"name":"_batchTimeout","type":"uint256"}
	],"outputs":[]},
	{"name":"submitLogicCall","type":"function","stateMutability":"nonpayable","inputs":[
		{"name":"_currentValset","type":"tuple","components":[
			{"name":"validators","type":"address[]"},{"name":"powers","type":"uint256[]"},
			{"name":"valsetNonce","type":"uint256"},{"name":"rewardAmount","type":"uint256"},{"name":"rewardToken","type":"address"}
		]},
		{"name":"_sigs","type":"tuple[]","components":[
			{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}
		]},
		{"name":"_args","type":"tuple","components":[
			{"name":"transferAmounts","type":"uint256[]"},{"name":"transferTokenContracts","type":"address[]"},
			{"name":"feeAmounts","type":"uint256[]"},{"name":"feeTokenContracts","type":"address[]"},
			{"name":"logicContractAddress","type":"address"},{"name":"payload","type":"bytes"},
			{"name":"timeOut","type":"uint256"},{"name":"invalidationId","type":"bytes32"},{"name":"invalidationNonce","type":"uint256"}
		]}
	],"outputs":[]}
]`

var bridgeABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(bridgeContractABI))
	if err != nil {
		panic("evmchain: bridge contract ABI failed to parse: " + err.Error())
	}
	return parsed
}()

// evmValsetArgs is the tuple shape the bridge contract's submission
// functions take for "the valset that produced these signatures", mirroring
// sigengine.Assemble's (addresses, powers) output plus the valset's own
// nonce and reward fields.
type evmValsetArgs struct {
	Validators   []common.Address
	Powers       []*big.Int
	ValsetNonce  *big.Int
	RewardAmount *big.Int
	RewardToken  common.Address
}

// evmSignature is the tuple shape the contract expects per signature,
// identical in content to sigengine.Signature but with Go types ABI
// packing accepts directly.
type evmSignature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// toValsetArgs builds the tuple the contract verifies signatures against:
// the validator addresses and powers exactly as sigengine.Assemble walked
// them (valset member order, never re-sorted), plus valset's own nonce
// and reward fields.
func toValsetArgs(valset bridgetypes.Valset, assembled sigengine.Assembled) evmValsetArgs {
	validators := make([]common.Address, len(assembled.Addresses))
	powers := make([]*big.Int, len(assembled.Powers))
	for i, a := range assembled.Addresses {
		validators[i] = common.Address(a)
	}
	for i, p := range assembled.Powers {
		powers[i] = new(big.Int).SetUint64(p)
	}
	return evmValsetArgs{
		Validators:   validators,
		Powers:       powers,
		ValsetNonce:  new(big.Int).SetUint64(valset.Nonce),
		RewardAmount: new(big.Int).SetUint64(valset.RewardAmount),
		RewardToken:  common.Address(valset.RewardToken),
	}
}

// valsetArgsFromMembers builds the tuple shape for a valset that is the
// *target* of an update rather than the signer of one: its own member
// list and powers, unconnected to any signature assembly.
func valsetArgsFromMembers(v bridgetypes.Valset) evmValsetArgs {
	validators := make([]common.Address, len(v.Members))
	powers := make([]*big.Int, len(v.Members))
	for i, m := range v.Members {
		validators[i] = common.Address(m.EvmAddress)
		powers[i] = new(big.Int).SetUint64(m.Power)
	}
	return evmValsetArgs{
		Validators:   validators,
		Powers:       powers,
		ValsetNonce:  new(big.Int).SetUint64(v.Nonce),
		RewardAmount: new(big.Int).SetUint64(v.RewardAmount),
		RewardToken:  common.Address(v.RewardToken),
	}
}

func toEvmSignatures(sigs []sigengine.Signature) []evmSignature {
	out := make([]evmSignature, len(sigs))
	for i, s := range sigs {
		out[i] = evmSignature{V: s.V, R: s.R, S: s.S}
	}
	return out
}

// LastValsetNonce reads the nonce of the validator set currently installed
// on the bridge contract.
func (c *Client) LastValsetNonce(ctx context.Context, bridgeContract common.Address) (uint64, error) {
	return c.callNonceView(ctx, bridgeContract, "state_lastValsetNonce")
}

// LastBatchNonce reads the bridge contract's highest-executed batch nonce
// for one token contract, used by the relayer to skip batches that would
// be rejected as stale (spec section 4.6 step 4).
func (c *Client) LastBatchNonce(ctx context.Context, bridgeContract, tokenContract common.Address) (uint64, error) {
	return c.callNonceView(ctx, bridgeContract, "lastBatchNonce", tokenContract)
}

// LastLogicCallNonce reads the bridge contract's highest-executed
// invalidation nonce for one invalidation scope.
func (c *Client) LastLogicCallNonce(ctx context.Context, bridgeContract common.Address, invalidationID [32]byte) (uint64, error) {
	return c.callNonceView(ctx, bridgeContract, "lastLogicCallNonce", invalidationID)
}

func (c *Client) callNonceView(ctx context.Context, bridgeContract common.Address, method string, args ...interface{}) (uint64, error) {
	data, err := bridgeABI.Pack(method, args...)
	if err != nil {
		return 0, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "pack "+method, err)
	}
	result, err := c.rpc.CallContract(ctx, ethereum.CallMsg{To: &bridgeContract, Data: data}, nil)
	if err != nil {
		return 0, bridgeerr.New(bridgeerr.KindTransport, "eth_call "+method, err)
	}
	outputs, err := bridgeABI.Unpack(method, result)
	if err != nil {
		return 0, bridgeerr.New(bridgeerr.KindDecode, "unpack "+method, err)
	}
	return outputs[0].(*big.Int).Uint64(), nil
}

// PackUpdateValset encodes the calldata for installing newValset on the
// bridge contract, signed by currentValset (the valset in force when the
// signatures were collected). Exposed separately from SubmitValsetUpdate
// so callers (the relayer) can gas-estimate before committing to send.
func PackUpdateValset(newValset, currentValset bridgetypes.Valset, assembled sigengine.Assembled) ([]byte, error) {
	data, err := bridgeABI.Pack("updateValset",
		valsetArgsFromMembers(newValset),
		toValsetArgs(currentValset, assembled),
		toEvmSignatures(assembled.Sigs),
	)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "pack updateValset", err)
	}
	return data, nil
}

// SubmitValsetUpdate installs newValset on the bridge contract, signed by
// currentValset (the valset in force when the signatures were collected).
func (c *Client) SubmitValsetUpdate(ctx context.Context, privateKey *ecdsa.PrivateKey, bridgeContract common.Address,
	newValset, currentValset bridgetypes.Valset, assembled sigengine.Assembled, gasLimit uint64) (*types.Receipt, error) {
	data, err := PackUpdateValset(newValset, currentValset, assembled)
	if err != nil {
		return nil, err
	}
	return c.SendRawTransaction(ctx, privateKey, bridgeContract, data, gasLimit, 3)
}

// PackSubmitBatch encodes the calldata for executing an outgoing
// transaction batch on the bridge contract.
func PackSubmitBatch(currentValset bridgetypes.Valset, assembled sigengine.Assembled, batch bridgetypes.TransactionBatch) ([]byte, error) {
	amounts := make([]*big.Int, len(batch.Transactions))
	dests := make([]common.Address, len(batch.Transactions))
	fees := make([]*big.Int, len(batch.Transactions))
	for i, tx := range batch.Transactions {
		amounts[i] = tx.Erc20Amount
		dests[i] = common.Address(tx.DestAddress)
		fees[i] = tx.Erc20Fee
	}

	data, err := bridgeABI.Pack("submitBatch",
		toValsetArgs(currentValset, assembled),
		toEvmSignatures(assembled.Sigs),
		amounts, dests, fees,
		new(big.Int).SetUint64(batch.BatchNonce), common.Address(batch.TokenContract), new(big.Int).SetUint64(batch.BatchTimeout),
	)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "pack submitBatch", err)
	}
	return data, nil
}

// SubmitBatch submits an outgoing transaction batch's signatures to the
// bridge contract for execution.
func (c *Client) SubmitBatch(ctx context.Context, privateKey *ecdsa.PrivateKey, bridgeContract common.Address,
	currentValset bridgetypes.Valset, assembled sigengine.Assembled, batch bridgetypes.TransactionBatch, gasLimit uint64) (*types.Receipt, error) {
	data, err := PackSubmitBatch(currentValset, assembled, batch)
	if err != nil {
		return nil, err
	}
	return c.SendRawTransaction(ctx, privateKey, bridgeContract, data, gasLimit, 3)
}

// PackSubmitLogicCall encodes the calldata for executing a logic call on
// the bridge contract.
func PackSubmitLogicCall(currentValset bridgetypes.Valset, assembled sigengine.Assembled, call bridgetypes.LogicCall) ([]byte, error) {
	transferAmounts := make([]*big.Int, len(call.Transfers))
	transferTokens := make([]common.Address, len(call.Transfers))
	for i, t := range call.Transfers {
		transferAmounts[i] = t.Amount
		transferTokens[i] = common.Address(t.Contract)
	}
	feeAmounts := make([]*big.Int, len(call.Fees))
	feeTokens := make([]common.Address, len(call.Fees))
	for i, f := range call.Fees {
		feeAmounts[i] = f.Amount
		feeTokens[i] = common.Address(f.Contract)
	}
	var invalidationID [32]byte
	copy(invalidationID[:], call.InvalidationID)

	args := struct {
		TransferAmounts        []*big.Int
		TransferTokenContracts []common.Address
		FeeAmounts             []*big.Int
		FeeTokenContracts      []common.Address
		LogicContractAddress   common.Address
		Payload                []byte
		TimeOut                *big.Int
		InvalidationId         [32]byte
		InvalidationNonce      *big.Int
	}{
		TransferAmounts:        transferAmounts,
		TransferTokenContracts: transferTokens,
		FeeAmounts:             feeAmounts,
		FeeTokenContracts:      feeTokens,
		LogicContractAddress:   common.Address(call.LogicContractAddress),
		Payload:                call.Payload,
		TimeOut:                new(big.Int).SetUint64(call.Timeout),
		InvalidationId:         invalidationID,
		InvalidationNonce:      new(big.Int).SetUint64(call.InvalidationNonce),
	}

	data, err := bridgeABI.Pack("submitLogicCall",
		toValsetArgs(currentValset, assembled),
		toEvmSignatures(assembled.Sigs),
		args,
	)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "pack submitLogicCall", err)
	}
	return data, nil
}

// SubmitLogicCall submits a logic call's signatures to the bridge contract
// for execution.
func (c *Client) SubmitLogicCall(ctx context.Context, privateKey *ecdsa.PrivateKey, bridgeContract common.Address,
	currentValset bridgetypes.Valset, assembled sigengine.Assembled, call bridgetypes.LogicCall, gasLimit uint64) (*types.Receipt, error) {
	data, err := PackSubmitLogicCall(currentValset, assembled, call)
	if err != nil {
		return nil, err
	}
	return c.SendRawTransaction(ctx, privateKey, bridgeContract, data, gasLimit, 3)
}
