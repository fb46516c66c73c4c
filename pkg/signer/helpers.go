// Copyright 2025 Certen Protocol
//
package signer

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// evmAddressOf derives the EVM address a private key signs as, used to
// populate MsgConfirm*'s eth_signer/eth_address fields.
func evmAddressOf(privateKey *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(privateKey.PublicKey)
}

// hexInvalidationID renders a logic call's invalidation scope as a
// "0x"-prefixed hex string, the wire shape MsgConfirmLogicCall carries it
// in (bridgepb.MsgConfirmLogicCall.InvalidationId is a string field).
func hexInvalidationID(id []byte) string {
	return fmt.Sprintf("0x%x", id)
}
