package sigengine

import (
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

func mustKey(t *testing.T) (*ecdsa.PrivateKey, types.EvmAddress) {
	t.Helper()
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return priv, types.EvmAddress(crypto.PubkeyToAddress(priv.PublicKey))
}

func threeValidatorValset(t *testing.T) (types.Valset, map[types.EvmAddress]*ecdsa.PrivateKey) {
	t.Helper()
	keys := make(map[types.EvmAddress]*ecdsa.PrivateKey)
	var members []types.ValsetMember
	for i := 0; i < 3; i++ {
		priv, addr := mustKey(t)
		keys[addr] = priv
		members = append(members, types.ValsetMember{EvmAddress: addr, Power: 1431655765})
	}
	return types.Valset{Nonce: 1, Members: members}, keys
}

func TestSignRecoverRoundTrip(t *testing.T) {
	priv, addr := mustKey(t)
	checkpoint := []byte("arbitrary checkpoint payload")

	sig, err := Sign(priv, checkpoint)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if sig.V != 27 && sig.V != 28 {
		t.Fatalf("expected V in {27,28}, got %d", sig.V)
	}

	recovered, err := Recover(checkpoint, sig)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if recovered != addr {
		t.Fatalf("recovered %v, want %v", recovered, addr)
	}
}

func TestBuildValsetCheckpointDeterministic(t *testing.T) {
	v := types.Valset{
		Nonce: 5,
		Members: []types.ValsetMember{
			{EvmAddress: types.EvmAddress{0xAA}, Power: 1000},
			{EvmAddress: types.EvmAddress{0xBB}, Power: 2000},
		},
		RewardAmount: 0,
		RewardToken:  types.ZeroEvmAddress,
	}
	var gravityID [32]byte
	copy(gravityID[:], []byte("test-gravity-id"))

	c1, err := BuildValsetCheckpoint(gravityID, v)
	if err != nil {
		t.Fatalf("BuildValsetCheckpoint: %v", err)
	}
	c2, err := BuildValsetCheckpoint(gravityID, v)
	if err != nil {
		t.Fatalf("BuildValsetCheckpoint: %v", err)
	}
	if string(c1) != string(c2) {
		t.Fatalf("checkpoint encoding is not deterministic")
	}
	if len(c1) == 0 {
		t.Fatalf("expected non-empty checkpoint")
	}
}

func TestBuildBatchCheckpointRoundTrip(t *testing.T) {
	b := types.TransactionBatch{
		BatchNonce:    9,
		BatchTimeout:  100,
		TokenContract: types.EvmAddress{0xCC},
		Transactions: []types.BatchTransaction{
			{Erc20Amount: big.NewInt(10), Erc20Fee: big.NewInt(1), DestAddress: types.EvmAddress{0xDD}},
		},
	}
	var gravityID [32]byte
	if _, err := BuildBatchCheckpoint(gravityID, b); err != nil {
		t.Fatalf("BuildBatchCheckpoint: %v", err)
	}
}

func TestAssembleSucceedsWithFullQuorum(t *testing.T) {
	valset, keys := threeValidatorValset(t)
	var gravityID [32]byte
	checkpoint, err := BuildValsetCheckpoint(gravityID, valset)
	if err != nil {
		t.Fatalf("BuildValsetCheckpoint: %v", err)
	}

	sigs := make(map[types.EvmAddress]Signature)
	for _, m := range valset.Members {
		sig, err := Sign(keys[m.EvmAddress], checkpoint)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		sigs[m.EvmAddress] = sig
	}

	assembled, err := Assemble(valset, sigs, checkpoint)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(assembled.Addresses) != 3 || len(assembled.Sigs) != 3 {
		t.Fatalf("unexpected assembled shape: %+v", assembled)
	}
	for i, addr := range assembled.Addresses {
		if addr != valset.Members[i].EvmAddress {
			t.Fatalf("assembled order does not match valset member order at %d", i)
		}
	}
}

func TestAssembleFailsWithInsufficientPower(t *testing.T) {
	valset, keys := threeValidatorValset(t)
	var gravityID [32]byte
	checkpoint, err := BuildValsetCheckpoint(gravityID, valset)
	if err != nil {
		t.Fatalf("BuildValsetCheckpoint: %v", err)
	}

	// Only one of three equal-power members signs: short of the threshold.
	sigs := make(map[types.EvmAddress]Signature)
	only := valset.Members[0].EvmAddress
	sig, err := Sign(keys[only], checkpoint)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sigs[only] = sig

	_, err = Assemble(valset, sigs, checkpoint)
	if err == nil {
		t.Fatalf("expected insufficient power error")
	}
	if kind, ok := bridgeerr.KindOf(err); !ok || kind != bridgeerr.KindQuorum {
		t.Fatalf("expected KindQuorum, got %v", err)
	}
}

func TestAssembleFailsOnAddressMismatch(t *testing.T) {
	valset, keys := threeValidatorValset(t)
	var gravityID [32]byte
	checkpoint, err := BuildValsetCheckpoint(gravityID, valset)
	if err != nil {
		t.Fatalf("BuildValsetCheckpoint: %v", err)
	}

	_, otherAddr := mustKey(t)
	otherPriv, _ := mustKey(t)
	sig, err := Sign(otherPriv, checkpoint)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	sigs := map[types.EvmAddress]Signature{
		valset.Members[0].EvmAddress: sig, // signed by a different key than claimed
	}
	_ = otherAddr
	for _, m := range valset.Members[1:] {
		s, err := Sign(keys[m.EvmAddress], checkpoint)
		if err != nil {
			t.Fatalf("Sign: %v", err)
		}
		sigs[m.EvmAddress] = s
	}

	_, err = Assemble(valset, sigs, checkpoint)
	if err == nil {
		t.Fatalf("expected InvalidBridgeState on address mismatch")
	}
	if kind, ok := bridgeerr.KindOf(err); !ok || kind != bridgeerr.KindInvalidBridgeState {
		t.Fatalf("expected KindInvalidBridgeState, got %v", err)
	}
}
