// Copyright 2025 Certen Protocol
//
package sigengine

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// Signature is the (v, r, s) triplet the bridge contract's
// `checkValidatorSignatures` expects, in the exact on-chain numeric form:
// V is 27 or 28 (not the 0/1 recovery id go-ethereum's Sign returns).
type Signature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// IsZero reports whether sig is the all-zero placeholder used for valset
// members who have not (yet) signed.
func (sig Signature) IsZero() bool {
	return sig.V == 0 && sig.R == [32]byte{} && sig.S == [32]byte{}
}

// Sign produces a Signature over a checkpoint's signed digest (section
// 6.4) using an EVM secp256k1 private key.
func Sign(privateKey *ecdsa.PrivateKey, checkpoint []byte) (Signature, error) {
	digest := SignedDigest(checkpoint)

	sig, err := crypto.Sign(digest.Bytes(), privateKey)
	if err != nil {
		return Signature{}, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "sign checkpoint digest", err)
	}

	var out Signature
	copy(out.R[:], sig[0:32])
	copy(out.S[:], sig[32:64])
	out.V = sig[64] + 27
	return out, nil
}

// Recover returns the EvmAddress that produced sig over checkpoint's
// signed digest, or an error if the signature is malformed.
func Recover(checkpoint []byte, sig Signature) (types.EvmAddress, error) {
	digest := SignedDigest(checkpoint)

	raw := make([]byte, 65)
	copy(raw[0:32], sig.R[:])
	copy(raw[32:64], sig.S[:])
	if sig.V < 27 {
		return types.EvmAddress{}, bridgeerr.New(bridgeerr.KindDecode, "signature V below 27", nil)
	}
	raw[64] = sig.V - 27

	pub, err := crypto.SigToPub(digest.Bytes(), raw)
	if err != nil {
		return types.EvmAddress{}, bridgeerr.New(bridgeerr.KindDecode, "recover public key from signature", err)
	}
	return types.EvmAddress(crypto.PubkeyToAddress(*pub)), nil
}

// bigFromHash is a small convenience used by callers translating a
// Signature's R/S arrays into *big.Int form for ABI encoding of
// submission transactions.
func bigFromHash(h [32]byte) *big.Int {
	return new(big.Int).SetBytes(h[:])
}

// AsBigInts returns sig's R and S components as big.Int, and V as a
// uint8, the shape the EVM transaction-submission ABI calls expect.
func (sig Signature) AsBigInts() (v uint8, r, s *big.Int) {
	return sig.V, bigFromHash(sig.R), bigFromHash(sig.S)
}

// Hex encodes sig as "0x" followed by r || s || v, the wire shape the
// bridge module's MsgConfirm* messages carry in their Signature field.
func (sig Signature) Hex() string {
	raw := make([]byte, 0, 65)
	raw = append(raw, sig.R[:]...)
	raw = append(raw, sig.S[:]...)
	raw = append(raw, sig.V)
	return "0x" + hex.EncodeToString(raw)
}

// ParseSignatureHex parses the wire form Hex produces back into a
// Signature, as read off a home-chain MsgConfirm*'s Signature field by
// the relayer when reassembling submitted confirmations.
func ParseSignatureHex(s string) (Signature, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Signature{}, bridgeerr.New(bridgeerr.KindDecode, "parse signature hex", err)
	}
	if len(raw) != 65 {
		return Signature{}, bridgeerr.New(bridgeerr.KindDecode, "signature hex wrong length", nil)
	}
	var out Signature
	copy(out.R[:], raw[0:32])
	copy(out.S[:], raw[32:64])
	out.V = raw[64]
	return out, nil
}
