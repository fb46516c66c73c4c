// Copyright 2025 Certen Protocol
//
package homechain

import (
	"context"

	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/homechain/keys"
)

// Type URLs for every bridge module Msg this orchestrator submits. These
// mirror the fully-qualified names the module's own .proto file would
// assign (there is no .proto file in this tree; bridgepb's messages are
// hand-written in the legacy reflection style, see package bridgepb), and
// must stay in sync with whatever home chain binary is actually running.
const (
	typeURLValsetConfirm     = "/gravity.v1.MsgValsetConfirm"
	typeURLConfirmBatch      = "/gravity.v1.MsgConfirmBatch"
	typeURLConfirmLogicCall  = "/gravity.v1.MsgConfirmLogicCall"
	typeURLSendToCosmosClaim = "/gravity.v1.MsgSendToCosmosClaim"
	typeURLBatchSendToEth    = "/gravity.v1.MsgBatchSendToEthClaim"
	typeURLErc20Deployed     = "/gravity.v1.MsgERC20DeployedClaim"
	typeURLLogicCallExecuted = "/gravity.v1.MsgLogicCallExecutedClaim"
	typeURLValsetUpdated     = "/gravity.v1.MsgValsetUpdatedClaim"
	typeURLBadSignature      = "/gravity.v1.MsgSubmitBadSignatureEvidence"
)

// SubmissionFee bundles the three values every submission needs to pay
// for itself. The single --fees flag (spec section 6.1) sets one value
// that the oracle and signer loops share.
type SubmissionFee struct {
	Denom    string
	Amount   uint64
	GasLimit uint64
}

// SubmitConfirms packs every valset/batch/logic-call confirmation the
// signer loop produced this iteration into a single transaction (spec
// section 4.5: exactly one submission per iteration, covering every
// confirm the validator is eligible to sign).
func (c *Client) SubmitConfirms(ctx context.Context, signer *keys.HomeSigner, chainID string, fee SubmissionFee,
	valsetConfirms []*bridgepb.MsgValsetConfirm,
	batchConfirms []*bridgepb.MsgConfirmBatch,
	logicConfirms []*bridgepb.MsgConfirmLogicCall,
) (txHash string, err error) {
	var msgs []namedMessage
	for _, m := range valsetConfirms {
		msgs = append(msgs, newNamedMessage(typeURLValsetConfirm, m))
	}
	for _, m := range batchConfirms {
		msgs = append(msgs, newNamedMessage(typeURLConfirmBatch, m))
	}
	for _, m := range logicConfirms {
		msgs = append(msgs, newNamedMessage(typeURLConfirmLogicCall, m))
	}
	return c.SubmitMsgs(ctx, signer, chainID, msgs, fee.Denom, fee.Amount, fee.GasLimit)
}

// SubmitClaims packs every EVM event the oracle loop decoded this
// iteration, in event_nonce order, into a single transaction (spec
// section 4.4: claims are submitted together and the home chain module
// enforces strictly-increasing event_nonce per orchestrator).
func (c *Client) SubmitClaims(ctx context.Context, signer *keys.HomeSigner, chainID string, fee SubmissionFee, claims []ClaimMsg) (txHash string, err error) {
	msgs := make([]namedMessage, 0, len(claims))
	for _, claim := range claims {
		msgs = append(msgs, newNamedMessage(claim.typeURL(), claim.message()))
	}
	return c.SubmitMsgs(ctx, signer, chainID, msgs, fee.Denom, fee.Amount, fee.GasLimit)
}

// SubmitBadSignatureEvidence reports a signature over a checkpoint that
// does not match any valid state the module ever published, the
// slashing-evidence path referenced in spec section 9's design notes.
func (c *Client) SubmitBadSignatureEvidence(ctx context.Context, signer *keys.HomeSigner, chainID string, fee SubmissionFee, evidence *bridgepb.MsgSubmitBadSignatureEvidence) (txHash string, err error) {
	return c.SubmitMsgs(ctx, signer, chainID, []namedMessage{newNamedMessage(typeURLBadSignature, evidence)}, fee.Denom, fee.Amount, fee.GasLimit)
}

// ClaimMsg is any of the five EVM-event claim messages the oracle loop
// may submit; it hides the type-URL bookkeeping behind the concrete
// claim constructors in package oracle.
type ClaimMsg interface {
	typeURL() string
	message() gogoMessage
}

type sendToCosmosClaim struct{ msg *bridgepb.MsgSendToCosmosClaim }

func (c sendToCosmosClaim) typeURL() string    { return typeURLSendToCosmosClaim }
func (c sendToCosmosClaim) message() gogoMessage { return c.msg }

// NewSendToCosmosClaim wraps a decoded SendToCosmos event as a claim.
func NewSendToCosmosClaim(msg *bridgepb.MsgSendToCosmosClaim) ClaimMsg { return sendToCosmosClaim{msg} }

type batchSendToEthClaim struct{ msg *bridgepb.MsgBatchSendToEthClaim }

func (c batchSendToEthClaim) typeURL() string    { return typeURLBatchSendToEth }
func (c batchSendToEthClaim) message() gogoMessage { return c.msg }

// NewBatchSendToEthClaim wraps a decoded BatchExecuted event as a claim.
func NewBatchSendToEthClaim(msg *bridgepb.MsgBatchSendToEthClaim) ClaimMsg {
	return batchSendToEthClaim{msg}
}

type erc20DeployedClaim struct{ msg *bridgepb.MsgERC20DeployedClaim }

func (c erc20DeployedClaim) typeURL() string    { return typeURLErc20Deployed }
func (c erc20DeployedClaim) message() gogoMessage { return c.msg }

// NewErc20DeployedClaim wraps a decoded Erc20Deployed event as a claim.
func NewErc20DeployedClaim(msg *bridgepb.MsgERC20DeployedClaim) ClaimMsg { return erc20DeployedClaim{msg} }

type logicCallExecutedClaim struct{ msg *bridgepb.MsgLogicCallExecutedClaim }

func (c logicCallExecutedClaim) typeURL() string    { return typeURLLogicCallExecuted }
func (c logicCallExecutedClaim) message() gogoMessage { return c.msg }

// NewLogicCallExecutedClaim wraps a decoded LogicCallExecuted event as a claim.
func NewLogicCallExecutedClaim(msg *bridgepb.MsgLogicCallExecutedClaim) ClaimMsg {
	return logicCallExecutedClaim{msg}
}

type valsetUpdatedClaim struct{ msg *bridgepb.MsgValsetUpdatedClaim }

func (c valsetUpdatedClaim) typeURL() string    { return typeURLValsetUpdated }
func (c valsetUpdatedClaim) message() gogoMessage { return c.msg }

// NewValsetUpdatedClaim wraps a decoded ValsetUpdated event as a claim.
func NewValsetUpdatedClaim(msg *bridgepb.MsgValsetUpdatedClaim) ClaimMsg { return valsetUpdatedClaim{msg} }
