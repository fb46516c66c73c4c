package relayer

import (
	"testing"

	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/sigengine"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

func TestBufferedGasAppliesPadding(t *testing.T) {
	if got := bufferedGas(100_000); got != 120_000 {
		t.Fatalf("bufferedGas(100000) = %d, want 120000", got)
	}
}

func TestBatchConfirmSigsParsesAddressAndSignature(t *testing.T) {
	sig := sigengine.Signature{V: 27, R: [32]byte{1}, S: [32]byte{2}}
	addr := types.EvmAddress{0xAB}

	confirms := []*bridgepb.MsgConfirmBatch{{
		EthSigner: addr.Hex(),
		Signature: sig.Hex(),
	}}

	out, err := batchConfirmSigs(confirms)
	if err != nil {
		t.Fatalf("batchConfirmSigs: %v", err)
	}
	got, ok := out[addr]
	if !ok {
		t.Fatalf("expected signature keyed by %v", addr)
	}
	if got != sig {
		t.Fatalf("got %+v, want %+v", got, sig)
	}
}

func TestBatchConfirmSigsRejectsMalformedAddress(t *testing.T) {
	confirms := []*bridgepb.MsgConfirmBatch{{EthSigner: "not-an-address", Signature: "0x00"}}
	if _, err := batchConfirmSigs(confirms); err == nil {
		t.Fatalf("expected error for malformed address")
	}
}

func TestValsetConfirmSigsParsesAddressAndSignature(t *testing.T) {
	sig := sigengine.Signature{V: 28, R: [32]byte{3}, S: [32]byte{4}}
	addr := types.EvmAddress{0xCD}

	confirms := []*bridgepb.MsgValsetConfirm{{
		EthAddress: addr.Hex(),
		Signature:  sig.Hex(),
	}}

	out, err := valsetConfirmSigs(confirms)
	if err != nil {
		t.Fatalf("valsetConfirmSigs: %v", err)
	}
	if out[addr] != sig {
		t.Fatalf("got %+v, want %+v", out[addr], sig)
	}
}

func TestLogicCallConfirmSigsParsesAddressAndSignature(t *testing.T) {
	sig := sigengine.Signature{V: 27, R: [32]byte{5}, S: [32]byte{6}}
	addr := types.EvmAddress{0xEF}

	confirms := []*bridgepb.MsgConfirmLogicCall{{
		EthSigner: addr.Hex(),
		Signature: sig.Hex(),
	}}

	out, err := logicCallConfirmSigs(confirms)
	if err != nil {
		t.Fatalf("logicCallConfirmSigs: %v", err)
	}
	if out[addr] != sig {
		t.Fatalf("got %+v, want %+v", out[addr], sig)
	}
}
