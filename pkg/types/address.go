// Copyright 2025 Certen Protocol
//
// Package types holds the bridge's shared data model: addresses, valsets,
// outbound artifacts, and inbound events (spec section 3).
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/ethereum/go-ethereum/common"
)

// EvmAddress is a 20-byte address on the EVM chain.
type EvmAddress common.Address

// ZeroEvmAddress is the all-zero EvmAddress, used as the "no reward token"
// placeholder throughout the bridge (see DESIGN.md Open Question decisions).
var ZeroEvmAddress = EvmAddress{}

// IsZero reports whether a is the all-zero address.
func (a EvmAddress) IsZero() bool {
	return a == ZeroEvmAddress
}

// Hex renders a in "0x"-prefixed, EIP-55 checksummed (mixed-case) hex.
func (a EvmAddress) Hex() string {
	return common.Address(a).Hex()
}

func (a EvmAddress) String() string { return a.Hex() }

// Bytes returns the 20 raw address bytes.
func (a EvmAddress) Bytes() []byte {
	return common.Address(a).Bytes()
}

// ParseEvmAddress parses a "0x"-prefixed hex string into an EvmAddress.
func ParseEvmAddress(s string) (EvmAddress, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return EvmAddress{}, fmt.Errorf("not a valid EVM address: %q", s)
	}
	return EvmAddress(common.HexToAddress(s)), nil
}

// HomeAddress is a bech32-encoded 20-byte address on the home chain. Two
// HomeAddress derivations of the same key exist in the bridge module: the
// orchestrator's own account address, and the validator-operator address
// it is delegated by. The orchestrator treats both as plain HomeAddress
// values and never derives one from the other.
type HomeAddress struct {
	prefix string
	raw    [20]byte
}

// NewHomeAddress builds a HomeAddress from 20 raw bytes and a
// human-readable bech32 prefix (e.g. "gravity", "gravityvaloper").
func NewHomeAddress(prefix string, raw []byte) (HomeAddress, error) {
	if len(raw) != 20 {
		return HomeAddress{}, fmt.Errorf("home address payload must be 20 bytes, got %d", len(raw))
	}
	var a HomeAddress
	a.prefix = prefix
	copy(a.raw[:], raw)
	return a, nil
}

// ParseHomeAddress decodes a bech32 string into a HomeAddress, recording
// its human-readable prefix.
func ParseHomeAddress(s string) (HomeAddress, error) {
	hrp, bz, err := bech32.DecodeAndConvert(s)
	if err != nil {
		return HomeAddress{}, fmt.Errorf("decode bech32 address %q: %w", s, err)
	}
	return NewHomeAddress(hrp, bz)
}

// String bech32-encodes the address with its recorded prefix.
func (a HomeAddress) String() string {
	s, err := bech32.ConvertAndEncode(a.prefix, a.raw[:])
	if err != nil {
		// ConvertAndEncode only fails on a malformed prefix. A prefix
		// from ParseHomeAddress has already decoded successfully;
		// NewHomeAddress does not check the prefix it is given.
		return "<invalid:" + hex.EncodeToString(a.raw[:]) + ">"
	}
	return s
}

// Bytes returns the 20 raw payload bytes.
func (a HomeAddress) Bytes() []byte {
	out := make([]byte, 20)
	copy(out, a.raw[:])
	return out
}

// Prefix returns the bech32 human-readable prefix this address was
// constructed or parsed with.
func (a HomeAddress) Prefix() string { return a.prefix }

// IsZero reports whether a was never populated.
func (a HomeAddress) IsZero() bool {
	return a.prefix == "" && a.raw == [20]byte{}
}
