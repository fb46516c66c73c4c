// Copyright 2025 Certen Protocol
//
// Package keys holds the home chain signing identity used to sign and
// broadcast bridge module transactions (Signer and Oracle loops each hold
// one, derived from the operator-supplied Cosmos key phrase).
package keys

import (
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/go-bip39"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// defaultHDPath is the standard Cosmos SDK derivation path (coin type 118,
// account 0, index 0). It is the only path this package derives keys with.
const defaultHDPath = "m/44'/118'/0'/0/0"

// HomeSigner wraps a single secp256k1 private key used to sign home chain
// transactions on this orchestrator's behalf.
type HomeSigner struct {
	priv    cryptotypes.PrivKey
	address types.HomeAddress
}

// NewHomeSignerFromMnemonic derives a signing key from a BIP-39 mnemonic
// phrase using the standard Cosmos HD path, the same input shape the
// --cosmos-phrase flag accepts (spec section 6.1).
func NewHomeSignerFromMnemonic(mnemonic, addressPrefix string) (*HomeSigner, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "cosmos key phrase is not a valid BIP-39 mnemonic", nil)
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "derive seed from mnemonic", err)
	}

	master, ch := hd.ComputeMastersFromSeed(seed)
	derived, err := hd.DerivePrivateKeyForPath(master, ch, defaultHDPath)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "derive private key", err)
	}

	priv := &secp256k1.PrivKey{Key: derived}
	addr := priv.PubKey().Address()

	homeAddr, err := types.NewHomeAddress(addressPrefix, addr.Bytes())
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "derive home address", err)
	}

	return &HomeSigner{priv: priv, address: homeAddr}, nil
}

// Address is this signer's bech32 home chain address.
func (s *HomeSigner) Address() types.HomeAddress { return s.address }

// Sign produces a signature over a SIGN_MODE_DIRECT sign-doc byte string.
func (s *HomeSigner) Sign(signDocBytes []byte) ([]byte, error) {
	sig, err := s.priv.Sign(signDocBytes)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindInvalidBridgeState, "sign transaction digest", err)
	}
	return sig, nil
}

// PubKeyProto returns the public key in the proto.Message shape the tx
// builder needs to pack into the transaction's SignerInfo.
func (s *HomeSigner) PubKeyProto() cryptotypes.PubKey {
	return s.priv.PubKey()
}
