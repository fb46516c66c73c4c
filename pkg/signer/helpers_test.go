package signer

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestEvmAddressOfMatchesPubkeyToAddress(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	want := crypto.PubkeyToAddress(priv.PublicKey)
	if got := evmAddressOf(priv); got != want {
		t.Fatalf("evmAddressOf = %v, want %v", got, want)
	}
}

func TestHexInvalidationIDFormat(t *testing.T) {
	got := hexInvalidationID([]byte{0xde, 0xad, 0xbe, 0xef})
	if got != "0xdeadbeef" {
		t.Fatalf("hexInvalidationID = %q, want 0xdeadbeef", got)
	}
}

func TestHexInvalidationIDEmpty(t *testing.T) {
	if got := hexInvalidationID(nil); got != "0x" {
		t.Fatalf("hexInvalidationID(nil) = %q, want 0x", got)
	}
}
