package oracle

import (
	"math/big"
	"testing"

	"github.com/certen/gravity-orchestrator/pkg/types"
)

func TestBuildClaimMsgCoversEveryEventKind(t *testing.T) {
	events := []types.Event{
		{
			Kind:        types.EventSendToCosmos,
			EventNonce:  1,
			BlockHeight: 100,
			SendToCosmos: &types.SendToCosmosData{
				TokenContract: types.EvmAddress{0xAA},
				Sender:        types.EvmAddress{0xBB},
				Destination:   "gravity1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqh93cez",
				Amount:        big.NewInt(42),
			},
		},
		{
			Kind:        types.EventBatchExecuted,
			EventNonce:  2,
			BlockHeight: 101,
			BatchExecuted: &types.BatchExecutedData{
				TokenContract: types.EvmAddress{0xCC},
				BatchNonce:    7,
			},
		},
		{
			Kind:        types.EventErc20Deployed,
			EventNonce:  3,
			BlockHeight: 102,
			Erc20Deployed: &types.Erc20DeployedData{
				CosmosDenom:   "gravity0xaaaa",
				TokenContract: types.EvmAddress{0xDD},
				Name:          "Test Token",
				Symbol:        "TST",
				Decimals:      18,
			},
		},
		{
			Kind:        types.EventLogicCallExecuted,
			EventNonce:  4,
			BlockHeight: 103,
			LogicCallExecuted: &types.LogicCallExecutedData{
				InvalidationID:    []byte("abc"),
				InvalidationNonce: 9,
			},
		},
		{
			Kind:        types.EventValsetUpdated,
			EventNonce:  5,
			BlockHeight: 104,
			ValsetUpdated: &types.ValsetUpdatedData{
				ValsetNonce:  3,
				RewardAmount: big.NewInt(0),
				RewardToken:  types.ZeroEvmAddress,
				Members: []types.ValsetMember{
					{EvmAddress: types.EvmAddress{0xEE}, Power: 1000},
				},
			},
		},
	}

	claims, err := buildClaimMsgs(events, "gravity1orchestrator")
	if err != nil {
		t.Fatalf("buildClaimMsgs: %v", err)
	}
	if len(claims) != len(events) {
		t.Fatalf("expected %d claims, got %d", len(events), len(claims))
	}
	for i, c := range claims {
		if c == nil {
			t.Fatalf("claim %d is nil", i)
		}
	}
}

func TestBuildClaimMsgRejectsUnknownKind(t *testing.T) {
	_, err := buildClaimMsg(types.Event{Kind: types.EventKind("bogus")}, "gravity1orchestrator")
	if err == nil {
		t.Fatalf("expected error for unknown event kind")
	}
}
