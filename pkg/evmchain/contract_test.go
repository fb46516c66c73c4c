package evmchain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/certen/gravity-orchestrator/pkg/sigengine"
	bridgetypes "github.com/certen/gravity-orchestrator/pkg/types"
)

func TestBridgeABIPacksLastBatchNonce(t *testing.T) {
	data, err := bridgeABI.Pack("lastBatchNonce", common.Address{})
	if err != nil {
		t.Fatalf("Pack lastBatchNonce: %v", err)
	}
	if len(data) != 4+32 {
		t.Fatalf("unexpected call data length %d", len(data))
	}
}

func TestValsetArgsFromMembersPreservesOrder(t *testing.T) {
	v := bridgetypes.Valset{
		Nonce: 3,
		Members: []bridgetypes.ValsetMember{
			{EvmAddress: bridgetypes.EvmAddress{0xAA}, Power: 10},
			{EvmAddress: bridgetypes.EvmAddress{0xBB}, Power: 20},
		},
	}
	args := valsetArgsFromMembers(v)
	if len(args.Validators) != 2 || len(args.Powers) != 2 {
		t.Fatalf("unexpected args shape: %+v", args)
	}
	if args.Powers[0].Cmp(big.NewInt(10)) != 0 || args.Powers[1].Cmp(big.NewInt(20)) != 0 {
		t.Fatalf("powers not preserved in order: %+v", args.Powers)
	}
	if args.ValsetNonce.Uint64() != 3 {
		t.Fatalf("nonce not preserved: %v", args.ValsetNonce)
	}
}

func TestToEvmSignaturesPreservesFields(t *testing.T) {
	sigs := []sigengine.Signature{
		{V: 27, R: [32]byte{1}, S: [32]byte{2}},
		{V: 28, R: [32]byte{3}, S: [32]byte{4}},
	}
	out := toEvmSignatures(sigs)
	if len(out) != 2 {
		t.Fatalf("expected 2 signatures, got %d", len(out))
	}
	if out[0].V != 27 || out[1].V != 28 {
		t.Fatalf("V not preserved: %+v", out)
	}
	if out[0].R != ([32]byte{1}) || out[1].S != ([32]byte{4}) {
		t.Fatalf("R/S not preserved: %+v", out)
	}
}
