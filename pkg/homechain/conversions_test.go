package homechain

import (
	"testing"

	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

func mustHomeAddr(t *testing.T) string {
	t.Helper()
	addr, err := types.NewHomeAddress("gravity", make([]byte, 20))
	if err != nil {
		t.Fatalf("NewHomeAddress: %v", err)
	}
	return addr.String()
}

func TestValsetFromWireRoundTrip(t *testing.T) {
	wire := &bridgepb.Valset{
		Nonce: 7,
		Members: []*bridgepb.BridgeValidator{
			{Power: 1431655765, EthereumAddress: "0x00000000000000000000000000000000000000aa"},
			{Power: 1431655765, EthereumAddress: "0x00000000000000000000000000000000000000bb"},
		},
		RewardAmount: "0",
		RewardToken:  "",
	}

	v, err := valsetFromWire(wire)
	if err != nil {
		t.Fatalf("valsetFromWire: %v", err)
	}
	if v.Nonce != 7 || len(v.Members) != 2 {
		t.Fatalf("unexpected valset: %+v", v)
	}
	if !v.RewardToken.IsZero() {
		t.Fatalf("expected zero reward token for empty wire value")
	}

	back := valsetToWire(v)
	if back.Nonce != wire.Nonce || len(back.Members) != len(wire.Members) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, wire)
	}
}

func TestParamsFromWireRejectsMalformedAddress(t *testing.T) {
	wire := &bridgepb.Params{
		GravityId:             "test-gravity-id",
		BridgeEthereumAddress: "not-an-address",
	}
	if _, err := paramsFromWire(wire); err == nil {
		t.Fatalf("expected error for malformed bridge ethereum address")
	}
}

func TestBatchFromWireComputesTotalFee(t *testing.T) {
	wire := &bridgepb.OutgoingTxBatch{
		BatchNonce:    3,
		BatchTimeout:  1000,
		TokenContract: "0x00000000000000000000000000000000000000aa",
		Transactions: []*bridgepb.OutgoingTransferTx{
			{
				Id:          1,
				Sender:      mustHomeAddr(t),
				DestAddress: "0x00000000000000000000000000000000000000bb",
				Erc20Token:  &bridgepb.Erc20Token{Contract: "0x00000000000000000000000000000000000000aa", Amount: "100"},
				Erc20Fee:    &bridgepb.Erc20Token{Contract: "0x00000000000000000000000000000000000000aa", Amount: "5"},
			},
			{
				Id:          2,
				Sender:      mustHomeAddr(t),
				DestAddress: "0x00000000000000000000000000000000000000bb",
				Erc20Token:  &bridgepb.Erc20Token{Contract: "0x00000000000000000000000000000000000000aa", Amount: "200"},
				Erc20Fee:    &bridgepb.Erc20Token{Contract: "0x00000000000000000000000000000000000000aa", Amount: "7"},
			},
		},
	}

	batch, err := batchFromWire(wire)
	if err != nil {
		t.Fatalf("batchFromWire: %v", err)
	}
	if batch.TotalFee.Int64() != 12 {
		t.Fatalf("expected total fee 12, got %s", batch.TotalFee.String())
	}
	if len(batch.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(batch.Transactions))
	}
}
