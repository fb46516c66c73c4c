package evmchain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/certen/gravity-orchestrator/pkg/types"
)

func wordUint64(v uint64) []byte {
	w := make([]byte, wordSize)
	b := new(big.Int).SetUint64(v).Bytes()
	copy(w[wordSize-len(b):], b)
	return w
}

func wordAddress(a types.EvmAddress) []byte {
	w := make([]byte, wordSize)
	copy(w[wordSize-20:], a.Bytes())
	return w
}

func wordBigInt(v *big.Int) []byte {
	w := make([]byte, wordSize)
	b := v.Bytes()
	copy(w[wordSize-len(b):], b)
	return w
}

func concat(words ...[]byte) []byte {
	var out []byte
	for _, w := range words {
		out = append(out, w...)
	}
	return out
}

func TestDecodeSentToCosmosRoundTrip(t *testing.T) {
	token := types.EvmAddress{0xAA}
	sender := types.EvmAddress{0xBB}
	dest := "gravity1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqh93cez" // arbitrary-looking bech32 shape

	destWord := make([]byte, wordSize)
	destPadded := make([]byte, ((len(dest)+31)/32)*32)
	copy(destPadded, dest)

	head := concat(
		wordAddress(token),
		wordAddress(sender),
		wordUint64(6*wordSize), // offset to dynamic destination
		wordBigInt(big.NewInt(100)),
		wordUint64(1),   // event nonce
		wordUint64(500), // block height
	)
	dyn := concat(wordUint64(uint64(len(dest))), destPadded)
	_ = destWord

	data := concat(head, dyn)

	l := ethtypes.Log{
		Topics: []common.Hash{topicSentToCosmos},
		Data:   data,
	}

	ev, err := DecodeLog(l)
	if err != nil {
		t.Fatalf("DecodeLog: %v", err)
	}
	if ev.Kind != types.EventSendToCosmos {
		t.Fatalf("wrong kind: %v", ev.Kind)
	}
	if ev.EventNonce != 1 || ev.BlockHeight != 500 {
		t.Fatalf("wrong nonce/block: %+v", ev)
	}
	if ev.SendToCosmos.Amount.Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("wrong amount: %v", ev.SendToCosmos.Amount)
	}
}

func TestDecodeSentToCosmosOversizedDestination(t *testing.T) {
	token := types.EvmAddress{0xAA}
	sender := types.EvmAddress{0xBB}

	oversized := make([]byte, maxDynamicFieldBytes+1)

	head := concat(
		wordAddress(token),
		wordAddress(sender),
		wordUint64(6*wordSize),
		wordBigInt(big.NewInt(42)),
		wordUint64(17),
		wordUint64(900),
	)
	dyn := concat(wordUint64(uint64(len(oversized))), oversized)
	data := concat(head, dyn)

	l := ethtypes.Log{
		Topics: []common.Hash{topicSentToCosmos},
		Data:   data,
	}

	ev, err := DecodeLog(l)
	if err != nil {
		t.Fatalf("DecodeLog: %v", err)
	}
	if ev.SendToCosmos.Destination != "" {
		t.Fatalf("expected empty destination for oversized field, got %q", ev.SendToCosmos.Destination)
	}
	if ev.EventNonce != 17 {
		t.Fatalf("event nonce must be preserved even when the destination is truncated, got %d", ev.EventNonce)
	}
}

func TestUint64FromWordRejectsOverflow(t *testing.T) {
	w := make([]byte, wordSize)
	w[wordSize-9] = 1 // one bit set above the u64 window
	if _, err := uint64FromWord(w); err == nil {
		t.Fatalf("expected Bounds error for oversized uint64 field")
	}
}

func TestFilterByEventNonce(t *testing.T) {
	events := []types.Event{{EventNonce: 1}, {EventNonce: 5}, {EventNonce: 10}}
	got := FilterByEventNonce(4, events)
	if len(got) != 2 || got[0].EventNonce != 5 || got[1].EventNonce != 10 {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}
