// Copyright 2025 Certen Protocol
//
// Package homechain is the home chain half of the orchestrator's chain
// clients (component C1): a gRPC client against the bridge module's Query
// and Msg services, plus a CometBFT RPC client used for ChainStatus
// (spec section 4.4, step 2) and ChainID.
package homechain

import (
	"context"
	"fmt"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"

	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

const (
	queryServiceName = "/gravity.v1.Query"
	msgServiceName   = "/gravity.v1.Msg"
)

// Client is the home chain's query and transaction-submission surface.
// It owns a raw gRPC connection (there is no generated service client for
// the bridge module in this tree; methods below invoke the Query and Msg
// services directly by their fully-qualified RPC names) and a CometBFT
// HTTP client used to learn whether the chain is moving, syncing, or
// stalled, and to read its chain ID.
type Client struct {
	conn          *grpc.ClientConn
	cometRPC      *rpchttp.HTTP
	addressPrefix string
	bank          banktypes.QueryClient
}

// NewClient dials the bridge module's gRPC endpoint and the node's
// CometBFT RPC endpoint. Both connections are lazy: dialing a gRPC target
// does not block on a handshake, and the CometBFT HTTP client only opens
// a connection on first use.
func NewClient(grpcEndpoint, cometRPCEndpoint, addressPrefix string) (*Client, error) {
	conn, err := grpc.NewClient(grpcEndpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, "dial home chain gRPC endpoint", err)
	}

	cometRPC, err := rpchttp.New(cometRPCEndpoint)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, "construct CometBFT RPC client", err)
	}

	return &Client{
		conn:          conn,
		cometRPC:      cometRPC,
		addressPrefix: addressPrefix,
		bank:          banktypes.NewQueryClient(conn),
	}, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// invoke issues a single unary gRPC call against the bridge module's
// service, wrapping transport failures in bridgeerr.KindTransport so
// callers can rely on Kind().Retryable() for their backoff decisions.
func (c *Client) invoke(ctx context.Context, method string, req, resp interface{ Reset() }) error {
	if err := c.conn.Invoke(ctx, method, req, resp); err != nil {
		return bridgeerr.New(bridgeerr.KindTransport, fmt.Sprintf("invoke %s", method), err)
	}
	return nil
}

// ChainStatus reports whether the home chain is producing blocks, still
// catching up from a snapshot, or has not yet started (spec section
// 3.4/4.4 step 2). A transport failure here is itself Retryable, since an
// unreachable RPC endpoint looks identical to "node still starting".
func (c *Client) ChainStatus(ctx context.Context) (types.ChainStatus, error) {
	status, err := c.cometRPC.Status(ctx)
	if err != nil {
		return types.ChainUnknown, bridgeerr.New(bridgeerr.KindTransport, "query CometBFT status", err)
	}

	if status.SyncInfo.CatchingUp {
		return types.ChainSyncing, nil
	}
	if status.SyncInfo.LatestBlockHeight == 0 {
		return types.ChainWaitingToStart, nil
	}
	return types.ChainMoving, nil
}

// ChainID reports the home chain's network identifier, as CometBFT's own
// node-info reports it, sparing the operator from having to pass it as a
// separate flag (the signer and oracle loops need it to fill in every
// transaction's ChainId field).
func (c *Client) ChainID(ctx context.Context) (string, error) {
	status, err := c.cometRPC.Status(ctx)
	if err != nil {
		return "", bridgeerr.New(bridgeerr.KindTransport, "query CometBFT status", err)
	}
	return status.NodeInfo.Network, nil
}

// Params fetches the bridge module's current governance parameters.
func (c *Client) Params(ctx context.Context) (*types.Params, error) {
	resp := &bridgepb.QueryParamsResponse{}
	if err := c.invoke(ctx, queryServiceName+"/Params", &bridgepb.QueryParamsRequest{}, resp); err != nil {
		return nil, err
	}
	return paramsFromWire(resp.Params)
}

// CurrentValset fetches the home chain's current (latest) validator set.
// This can be newer than the set installed on the EVM bridge contract.
func (c *Client) CurrentValset(ctx context.Context) (*types.Valset, error) {
	resp := &bridgepb.QueryCurrentValsetResponse{}
	if err := c.invoke(ctx, queryServiceName+"/CurrentValset", &bridgepb.QueryCurrentValsetRequest{}, resp); err != nil {
		return nil, err
	}
	return valsetFromWire(resp.Valset)
}

// LastPendingValsetRequestByAddr lists valsets awaiting this
// orchestrator's signature, oldest-unsigned-first is the caller's
// responsibility (the wire order is whatever the module returns).
func (c *Client) LastPendingValsetRequestByAddr(ctx context.Context, orchestrator types.HomeAddress) ([]*types.Valset, error) {
	resp := &bridgepb.QueryLastPendingValsetRequestByAddrResponse{}
	req := &bridgepb.QueryLastPendingValsetRequestByAddrRequest{Address: orchestrator.String()}
	if err := c.invoke(ctx, queryServiceName+"/LastPendingValsetRequestByAddr", req, resp); err != nil {
		return nil, err
	}
	out := make([]*types.Valset, 0, len(resp.Valsets))
	for _, v := range resp.Valsets {
		vs, err := valsetFromWire(v)
		if err != nil {
			return nil, err
		}
		out = append(out, vs)
	}
	return out, nil
}

// ValsetConfirmsByNonce lists every orchestrator signature collected so
// far for one valset nonce, used by the signature-assembly algorithm
// (spec section 4.3) to build its EvmAddress to Signature lookup.
func (c *Client) ValsetConfirmsByNonce(ctx context.Context, nonce uint64) ([]*bridgepb.MsgValsetConfirm, error) {
	resp := &bridgepb.QueryValsetConfirmsByNonceResponse{}
	req := &bridgepb.QueryValsetConfirmsByNonceRequest{Nonce: nonce}
	if err := c.invoke(ctx, queryServiceName+"/ValsetConfirmsByNonce", req, resp); err != nil {
		return nil, err
	}
	return resp.Confirms, nil
}

// LastPendingBatchRequestByAddr lists transaction batches this orchestrator
// has not yet signed, one per outstanding token contract.
func (c *Client) LastPendingBatchRequestByAddr(ctx context.Context, orchestrator types.HomeAddress) ([]*types.TransactionBatch, error) {
	resp := &bridgepb.QueryLastPendingBatchRequestByAddrResponse{}
	req := &bridgepb.QueryLastPendingBatchRequestByAddrRequest{Address: orchestrator.String()}
	if err := c.invoke(ctx, queryServiceName+"/LastPendingBatchRequestByAddr", req, resp); err != nil {
		return nil, err
	}
	out := make([]*types.TransactionBatch, 0, len(resp.Batches))
	for _, b := range resp.Batches {
		batch, err := batchFromWire(b)
		if err != nil {
			return nil, err
		}
		out = append(out, batch)
	}
	return out, nil
}

// OutgoingTxBatches lists every transaction batch still awaiting
// execution on the EVM side, used by the relayer's batch sub-loop.
func (c *Client) OutgoingTxBatches(ctx context.Context) ([]*types.TransactionBatch, error) {
	resp := &bridgepb.QueryOutgoingTxBatchesResponse{}
	if err := c.invoke(ctx, queryServiceName+"/OutgoingTxBatches", &bridgepb.QueryOutgoingTxBatchesRequest{}, resp); err != nil {
		return nil, err
	}
	out := make([]*types.TransactionBatch, 0, len(resp.Batches))
	for _, b := range resp.Batches {
		batch, err := batchFromWire(b)
		if err != nil {
			return nil, err
		}
		out = append(out, batch)
	}
	return out, nil
}

// BatchConfirms lists every orchestrator signature collected so far for
// one outgoing transaction batch.
func (c *Client) BatchConfirms(ctx context.Context, nonce uint64, tokenContract types.EvmAddress) ([]*bridgepb.MsgConfirmBatch, error) {
	resp := &bridgepb.QueryBatchConfirmsResponse{}
	req := &bridgepb.QueryBatchConfirmsRequest{Nonce: nonce, ContractAddress: tokenContract.Hex()}
	if err := c.invoke(ctx, queryServiceName+"/BatchConfirms", req, resp); err != nil {
		return nil, err
	}
	return resp.Confirms, nil
}

// OutgoingLogicCalls lists every logic call still awaiting execution.
func (c *Client) OutgoingLogicCalls(ctx context.Context) ([]*types.LogicCall, error) {
	resp := &bridgepb.QueryOutgoingLogicCallsResponse{}
	if err := c.invoke(ctx, queryServiceName+"/OutgoingLogicCalls", &bridgepb.QueryOutgoingLogicCallsRequest{}, resp); err != nil {
		return nil, err
	}
	out := make([]*types.LogicCall, 0, len(resp.Calls))
	for _, lc := range resp.Calls {
		call, err := logicCallFromWire(lc)
		if err != nil {
			return nil, err
		}
		out = append(out, call)
	}
	return out, nil
}

// LastPendingLogicCallByAddr lists logic calls this orchestrator has not
// yet signed.
func (c *Client) LastPendingLogicCallByAddr(ctx context.Context, orchestrator types.HomeAddress) ([]*types.LogicCall, error) {
	resp := &bridgepb.QueryLastPendingLogicCallByAddrResponse{}
	req := &bridgepb.QueryLastPendingLogicCallByAddrRequest{Address: orchestrator.String()}
	if err := c.invoke(ctx, queryServiceName+"/LastPendingLogicCallByAddr", req, resp); err != nil {
		return nil, err
	}
	out := make([]*types.LogicCall, 0, len(resp.Calls))
	for _, lc := range resp.Calls {
		call, err := logicCallFromWire(lc)
		if err != nil {
			return nil, err
		}
		out = append(out, call)
	}
	return out, nil
}

// LogicConfirms lists every orchestrator signature collected so far for
// one logic call, identified by its invalidation scope.
func (c *Client) LogicConfirms(ctx context.Context, invalidationID []byte, invalidationNonce uint64) ([]*bridgepb.MsgConfirmLogicCall, error) {
	resp := &bridgepb.QueryLogicConfirmsResponse{}
	req := &bridgepb.QueryLogicConfirmsRequest{
		InvalidationId:    fmt.Sprintf("%x", invalidationID),
		InvalidationNonce: invalidationNonce,
	}
	if err := c.invoke(ctx, queryServiceName+"/LogicConfirms", req, resp); err != nil {
		return nil, err
	}
	return resp.Confirms, nil
}

// LastEventNonceByAddr is the last EVM event nonce this orchestrator has
// successfully attested to, used by the oracle loop to resume scanning
// after a restart (spec section 4.4.2).
func (c *Client) LastEventNonceByAddr(ctx context.Context, orchestrator types.HomeAddress) (uint64, error) {
	resp := &bridgepb.QueryLastEventNonceByAddrResponse{}
	req := &bridgepb.QueryLastEventNonceByAddrRequest{Address: orchestrator.String()}
	if err := c.invoke(ctx, queryServiceName+"/LastEventNonceByAddr", req, resp); err != nil {
		return 0, err
	}
	return resp.EventNonce, nil
}

// DenomToErc20 resolves a home chain denom to its ERC20 contract address,
// if one has been registered.
func (c *Client) DenomToErc20(ctx context.Context, denom string) (types.EvmAddress, error) {
	resp := &bridgepb.QueryDenomToErc20Response{}
	req := &bridgepb.QueryDenomToErc20Request{Denom: denom}
	if err := c.invoke(ctx, queryServiceName+"/DenomToERC20", req, resp); err != nil {
		return types.ZeroEvmAddress, err
	}
	return types.ParseEvmAddress(resp.Erc20)
}

// Erc20ToDenom resolves an ERC20 contract address back to its home chain
// denom.
func (c *Client) Erc20ToDenom(ctx context.Context, erc20 types.EvmAddress) (string, error) {
	resp := &bridgepb.QueryErc20ToDenomResponse{}
	req := &bridgepb.QueryErc20ToDenomRequest{Erc20: erc20.Hex()}
	if err := c.invoke(ctx, queryServiceName+"/ERC20ToDenom", req, resp); err != nil {
		return "", err
	}
	return resp.Denom, nil
}

// GetDelegateKeyByOrchestrator resolves the validator operator address
// that delegated signing authority to an orchestrator address, used at
// startup to verify the delegate-key mapping (spec section 3.1).
func (c *Client) GetDelegateKeyByOrchestrator(ctx context.Context, orchestrator types.HomeAddress) (*bridgepb.QueryGetDelegateKeyByOrchestratorResponse, error) {
	resp := &bridgepb.QueryGetDelegateKeyByOrchestratorResponse{}
	req := &bridgepb.QueryGetDelegateKeyByOrchestratorRequest{OrchestratorAddress: orchestrator.String()}
	if err := c.invoke(ctx, queryServiceName+"/GetDelegateKeyByOrchestrator", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetDelegateKeyByEth resolves the validator and orchestrator addresses
// delegated to a given Ethereum signing address.
func (c *Client) GetDelegateKeyByEth(ctx context.Context, ethAddress types.EvmAddress) (*bridgepb.QueryGetDelegateKeyByEthResponse, error) {
	resp := &bridgepb.QueryGetDelegateKeyByEthResponse{}
	req := &bridgepb.QueryGetDelegateKeyByEthRequest{EthAddress: ethAddress.Hex()}
	if err := c.invoke(ctx, queryServiceName+"/GetDelegateKeyByEth", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BatchFees lists the fee pool accumulated so far for each token with
// unbatched outgoing transfers, used by the relayer's profitability
// gating (spec section 4.6).
func (c *Client) BatchFees(ctx context.Context) ([]*bridgepb.BatchFees, error) {
	resp := &bridgepb.QueryBatchFeesResponse{}
	if err := c.invoke(ctx, queryServiceName+"/BatchFees", &bridgepb.QueryBatchFeesRequest{}, resp); err != nil {
		return nil, err
	}
	return resp.BatchFees, nil
}

// GetAttestations lists the most recent attestations recorded by the
// bridge module, primarily useful for diagnostics.
func (c *Client) GetAttestations(ctx context.Context, limit uint64) ([]*bridgepb.Attestation, error) {
	resp := &bridgepb.QueryGetAttestationsResponse{}
	req := &bridgepb.QueryGetAttestationsRequest{Limit: limit}
	if err := c.invoke(ctx, queryServiceName+"/GetAttestations", req, resp); err != nil {
		return nil, err
	}
	return resp.Attestations, nil
}
