// Copyright 2025 Certen Protocol
//
package oracle

import (
	"fmt"

	"github.com/certen/gravity-orchestrator/pkg/homechain"
	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// buildClaimMsgs turns a nonce-ordered run of decoded EVM events into the
// home chain claim messages the oracle submits, one per event, in the
// same order (spec section 4.4 step 6).
func buildClaimMsgs(events []types.Event, orchestrator string) ([]homechain.ClaimMsg, error) {
	claims := make([]homechain.ClaimMsg, 0, len(events))
	for _, ev := range events {
		claim, err := buildClaimMsg(ev, orchestrator)
		if err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}
	return claims, nil
}

func buildClaimMsg(ev types.Event, orchestrator string) (homechain.ClaimMsg, error) {
	switch ev.Kind {
	case types.EventSendToCosmos:
		d := ev.SendToCosmos
		return homechain.NewSendToCosmosClaim(&bridgepb.MsgSendToCosmosClaim{
			EventNonce:     ev.EventNonce,
			BlockHeight:    ev.BlockHeight,
			TokenContract:  d.TokenContract.Hex(),
			Amount:         d.Amount.String(),
			EthereumSender: d.Sender.Hex(),
			CosmosReceiver: d.Destination,
			Orchestrator:   orchestrator,
		}), nil

	case types.EventBatchExecuted:
		d := ev.BatchExecuted
		return homechain.NewBatchSendToEthClaim(&bridgepb.MsgBatchSendToEthClaim{
			EventNonce:    ev.EventNonce,
			BlockHeight:   ev.BlockHeight,
			BatchNonce:    d.BatchNonce,
			TokenContract: d.TokenContract.Hex(),
			Orchestrator:  orchestrator,
		}), nil

	case types.EventErc20Deployed:
		d := ev.Erc20Deployed
		return homechain.NewErc20DeployedClaim(&bridgepb.MsgERC20DeployedClaim{
			EventNonce:    ev.EventNonce,
			BlockHeight:   ev.BlockHeight,
			CosmosDenom:   d.CosmosDenom,
			TokenContract: d.TokenContract.Hex(),
			Name:          d.Name,
			Symbol:        d.Symbol,
			Decimals:      uint32(d.Decimals),
			Orchestrator:  orchestrator,
		}), nil

	case types.EventLogicCallExecuted:
		d := ev.LogicCallExecuted
		return homechain.NewLogicCallExecutedClaim(&bridgepb.MsgLogicCallExecutedClaim{
			EventNonce:        ev.EventNonce,
			BlockHeight:       ev.BlockHeight,
			InvalidationId:    d.InvalidationID,
			InvalidationNonce: d.InvalidationNonce,
			Orchestrator:      orchestrator,
		}), nil

	case types.EventValsetUpdated:
		d := ev.ValsetUpdated
		members := make([]*bridgepb.BridgeValidator, 0, len(d.Members))
		for _, m := range d.Members {
			members = append(members, &bridgepb.BridgeValidator{Power: m.Power, EthereumAddress: m.EvmAddress.Hex()})
		}
		return homechain.NewValsetUpdatedClaim(&bridgepb.MsgValsetUpdatedClaim{
			EventNonce:   ev.EventNonce,
			BlockHeight:  ev.BlockHeight,
			ValsetNonce:  d.ValsetNonce,
			Members:      members,
			RewardAmount: d.RewardAmount.String(),
			RewardToken:  d.RewardToken.Hex(),
			Orchestrator: orchestrator,
		}), nil

	default:
		return nil, fmt.Errorf("unknown event kind %v, cannot build claim", ev.Kind)
	}
}
