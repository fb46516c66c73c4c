// Copyright 2025 Certen Protocol
//
package homechain

import (
	"context"
	"fmt"

	gogoproto "github.com/cosmos/gogoproto/proto"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	sdktx "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/homechain/keys"
)

// namedMessage pairs a bridge module message with the fully-qualified
// type URL it must be packed under inside its Any envelope. The hand
// written bridgepb structs carry no registered type name of their own
// (there is no .proto file generating one), so every call site supplies
// it explicitly.
type namedMessage struct {
	typeURL string
	message gogoMessage
}

// gogoMessage is the minimal shape codectypes.NewAnyWithValue needs; every
// bridgepb message and every cosmos-sdk generated message satisfies it.
type gogoMessage interface {
	Reset()
	String() string
	ProtoMessage()
}

func newNamedMessage(typeURL string, msg gogoMessage) namedMessage {
	return namedMessage{typeURL: typeURL, message: msg}
}

// AccountInfo fetches the current account number and sequence for a home
// chain address via the standard auth module query service. Both values
// are required to build a valid SIGN_MODE_DIRECT sign doc.
func (c *Client) AccountInfo(ctx context.Context, address string) (accountNumber, sequence uint64, err error) {
	req := &authtypes.QueryAccountRequest{Address: address}
	resp := &authtypes.QueryAccountResponse{}
	if ierr := c.invoke(ctx, "/cosmos.auth.v1beta1.Query/Account", req, resp); ierr != nil {
		return 0, 0, ierr
	}

	var account authtypes.BaseAccount
	if err := gogoproto.Unmarshal(resp.Account.Value, &account); err != nil {
		return 0, 0, bridgeerr.New(bridgeerr.KindDecode, "unmarshal BaseAccount from Any", err)
	}
	return account.AccountNumber, account.Sequence, nil
}

// SubmitMsgs packs one or more bridge module messages into a single
// signed transaction and broadcasts it, mirroring the requirement that a
// signer or oracle iteration submits everything it has to say in one
// atomic transaction rather than message-by-message (spec sections
// 4.4/4.5: "one transaction containing all pending confirms/claims").
//
// feeDenom/feeAmount/gasLimit are caller-supplied; the supervisor hands
// the oracle and signer loops the same fee, parsed from the --fees flag.
func (c *Client) SubmitMsgs(ctx context.Context, signer *keys.HomeSigner, chainID string, msgs []namedMessage, feeDenom string, feeAmount, gasLimit uint64) (txHash string, err error) {
	if len(msgs) == 0 {
		return "", nil
	}

	accNum, seq, err := c.AccountInfo(ctx, signer.Address().String())
	if err != nil {
		return "", err
	}

	anys := make([]*codectypes.Any, 0, len(msgs))
	for _, m := range msgs {
		any, aerr := codectypes.NewAnyWithValue(m.message)
		if aerr != nil {
			return "", bridgeerr.New(bridgeerr.KindInvalidBridgeState, fmt.Sprintf("pack %s into Any", m.typeURL), aerr)
		}
		any.TypeUrl = m.typeURL
		anys = append(anys, any)
	}

	body := &sdktx.TxBody{Messages: anys}
	bodyBytes, err := body.Marshal()
	if err != nil {
		return "", bridgeerr.New(bridgeerr.KindInvalidBridgeState, "marshal tx body", err)
	}

	pubAny, err := codectypes.NewAnyWithValue(signer.PubKeyProto())
	if err != nil {
		return "", bridgeerr.New(bridgeerr.KindInvalidBridgeState, "pack signer public key", err)
	}

	authInfo := &sdktx.AuthInfo{
		SignerInfos: []*sdktx.SignerInfo{{
			PublicKey: pubAny,
			ModeInfo: &sdktx.ModeInfo{
				Sum: &sdktx.ModeInfo_Single_{Single: &sdktx.ModeInfo_Single{Mode: signing.SignMode_SIGN_MODE_DIRECT}},
			},
			Sequence: seq,
		}},
		Fee: &sdktx.Fee{
			Amount:   sdktypes.NewCoins(sdktypes.NewInt64Coin(feeDenom, int64(feeAmount))),
			GasLimit: gasLimit,
		},
	}
	authInfoBytes, err := authInfo.Marshal()
	if err != nil {
		return "", bridgeerr.New(bridgeerr.KindInvalidBridgeState, "marshal auth info", err)
	}

	signDoc := &sdktx.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       chainID,
		AccountNumber: accNum,
	}
	signDocBytes, err := signDoc.Marshal()
	if err != nil {
		return "", bridgeerr.New(bridgeerr.KindInvalidBridgeState, "marshal sign doc", err)
	}

	sig, err := signer.Sign(signDocBytes)
	if err != nil {
		return "", err
	}

	raw := &sdktx.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{sig},
	}
	rawBytes, err := raw.Marshal()
	if err != nil {
		return "", bridgeerr.New(bridgeerr.KindInvalidBridgeState, "marshal signed tx", err)
	}

	broadcastReq := &sdktx.BroadcastTxRequest{TxBytes: rawBytes, Mode: sdktx.BroadcastMode_BROADCAST_MODE_SYNC}
	broadcastResp := &sdktx.BroadcastTxResponse{}
	if err := c.invoke(ctx, "/cosmos.tx.v1beta1.Service/BroadcastTx", broadcastReq, broadcastResp); err != nil {
		return "", err
	}
	if broadcastResp.TxResponse != nil && broadcastResp.TxResponse.Code != 0 {
		return "", bridgeerr.New(bridgeerr.KindInvalidBridgeState,
			fmt.Sprintf("home chain rejected tx: code %d: %s", broadcastResp.TxResponse.Code, broadcastResp.TxResponse.RawLog), nil)
	}
	return broadcastResp.TxResponse.TxHash, nil
}
