// Copyright 2025 Certen Protocol
//
package homechain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// The bridge module's gRPC wire format carries Ethereum addresses and
// arbitrary-precision amounts as strings (Cosmos SDK convention); the
// functions below translate between that wire shape and the domain types
// the rest of the orchestrator operates on.

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, bridgeerr.New(bridgeerr.KindDecode, fmt.Sprintf("malformed decimal amount %q", s), nil)
	}
	return amount, nil
}

func paramsFromWire(p *bridgepb.Params) (*types.Params, error) {
	if p == nil {
		return nil, bridgeerr.New(bridgeerr.KindDecode, "empty Params response", nil)
	}
	bridgeAddr, err := types.ParseEvmAddress(p.BridgeEthereumAddress)
	if err != nil {
		return nil, err
	}
	var gravityID [32]byte
	copy(gravityID[:], []byte(p.GravityId))

	return &types.Params{
		GravityID:                gravityID,
		ContractSourceHash:       p.ContractSourceHash,
		BridgeEthereumAddress:    bridgeAddr,
		BridgeChainID:            p.BridgeChainId,
		SignedValsetsWindow:      p.SignedValsetsWindow,
		SignedBatchesWindow:      p.SignedBatchesWindow,
		SignedLogicCallsWindow:   p.SignedLogicCallsWindow,
		TargetBatchTimeout:       time.Duration(p.TargetBatchTimeout) * time.Millisecond,
		AverageBlockTime:         time.Duration(p.AverageBlockTime) * time.Millisecond,
		AverageEthereumBlockTime: time.Duration(p.AverageEthereumBlockTime) * time.Millisecond,
	}, nil
}

func valsetFromWire(v *bridgepb.Valset) (*types.Valset, error) {
	if v == nil {
		return nil, bridgeerr.New(bridgeerr.KindDecode, "empty Valset", nil)
	}
	members := make([]types.ValsetMember, 0, len(v.Members))
	for _, m := range v.Members {
		addr, err := types.ParseEvmAddress(m.EthereumAddress)
		if err != nil {
			return nil, err
		}
		members = append(members, types.ValsetMember{EvmAddress: addr, Power: m.Power})
	}

	rewardToken := types.ZeroEvmAddress
	if v.RewardToken != "" {
		addr, err := types.ParseEvmAddress(v.RewardToken)
		if err != nil {
			return nil, err
		}
		rewardToken = addr
	}
	rewardAmount := uint64(0)
	if v.RewardAmount != "" {
		amt, err := parseAmount(v.RewardAmount)
		if err != nil {
			return nil, err
		}
		rewardAmount = amt.Uint64()
	}

	return &types.Valset{
		Nonce:        v.Nonce,
		Members:      members,
		RewardAmount: rewardAmount,
		RewardToken:  rewardToken,
	}, nil
}

func valsetToWire(v *types.Valset) *bridgepb.Valset {
	members := make([]*bridgepb.BridgeValidator, 0, len(v.Members))
	for _, m := range v.Members {
		members = append(members, &bridgepb.BridgeValidator{Power: m.Power, EthereumAddress: m.EvmAddress.Hex()})
	}
	return &bridgepb.Valset{
		Nonce:        v.Nonce,
		Members:      members,
		RewardAmount: fmt.Sprintf("%d", v.RewardAmount),
		RewardToken:  v.RewardToken.Hex(),
	}
}

func batchFromWire(b *bridgepb.OutgoingTxBatch) (*types.TransactionBatch, error) {
	if b == nil {
		return nil, bridgeerr.New(bridgeerr.KindDecode, "empty OutgoingTxBatch", nil)
	}
	tokenContract, err := types.ParseEvmAddress(b.TokenContract)
	if err != nil {
		return nil, err
	}

	txs := make([]types.BatchTransaction, 0, len(b.Transactions))
	totalFee := new(big.Int)
	for _, t := range b.Transactions {
		sender, err := types.ParseHomeAddress(t.Sender)
		if err != nil {
			return nil, err
		}
		dest, err := types.ParseEvmAddress(t.DestAddress)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount(t.Erc20Token.Amount)
		if err != nil {
			return nil, err
		}
		fee, err := parseAmount(t.Erc20Fee.Amount)
		if err != nil {
			return nil, err
		}
		totalFee.Add(totalFee, fee)
		txs = append(txs, types.BatchTransaction{
			ID:          t.Id,
			Sender:      sender,
			DestAddress: dest,
			Erc20Token:  tokenContract,
			Erc20Amount: amount,
			Erc20Fee:    fee,
		})
	}

	return &types.TransactionBatch{
		BatchNonce:    b.BatchNonce,
		BatchTimeout:  b.BatchTimeout,
		TokenContract: tokenContract,
		Transactions:  txs,
		TotalFee:      totalFee,
	}, nil
}

func logicCallFromWire(lc *bridgepb.OutgoingLogicCall) (*types.LogicCall, error) {
	if lc == nil {
		return nil, bridgeerr.New(bridgeerr.KindDecode, "empty OutgoingLogicCall", nil)
	}
	contract, err := types.ParseEvmAddress(lc.LogicContractAddress)
	if err != nil {
		return nil, err
	}

	transfers, err := erc20TokensFromWire(lc.Transfers)
	if err != nil {
		return nil, err
	}
	fees, err := erc20TokensFromWire(lc.Fees)
	if err != nil {
		return nil, err
	}

	return &types.LogicCall{
		Transfers:            transfers,
		Fees:                 fees,
		LogicContractAddress: contract,
		Payload:              lc.Payload,
		Timeout:              lc.Timeout,
		InvalidationID:       lc.InvalidationId,
		InvalidationNonce:    lc.InvalidationNonce,
		Block:                lc.Block,
	}, nil
}

func erc20TokensFromWire(wire []*bridgepb.Erc20Token) ([]types.Erc20Fee, error) {
	out := make([]types.Erc20Fee, 0, len(wire))
	for _, t := range wire {
		contract, err := types.ParseEvmAddress(t.Contract)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount(t.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Erc20Fee{Contract: contract, Amount: amount})
	}
	return out, nil
}
