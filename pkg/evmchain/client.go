// Copyright 2025 Certen Protocol
//
// Package evmchain is the EVM half of the orchestrator's chain clients
// (component C1) plus the bridge-contract log decoder (component C2).
package evmchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
)

// Client wraps an ethclient.Client with the URL-fallback probing and
// retry policy the orchestrator's chain clients require (spec section
// 4.1). It is safe for concurrent use and is cloned, not re-dialed, into
// each of the daemon's three loops.
type Client struct {
	rpc     *ethclient.Client
	chainID *big.Int
	url     string
}

// dialCandidates expands rawURL into the ordered list of URLs the
// robustness contract requires us to try: a localhost URL is retried over
// 127.0.0.1 and ::1 on the same port; a bare-hostname http URL is retried
// over https on 80 and 443. The fallbacks are computed once, at dial time;
// nothing re-probes at request time.
func dialCandidates(rawURL string) ([]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindBounds, "parse EVM RPC URL", err)
	}

	candidates := []string{rawURL}

	host := u.Hostname()
	port := u.Port()
	switch host {
	case "localhost":
		for _, alt := range []string{"127.0.0.1", "[::1]"} {
			c := *u
			if port != "" {
				c.Host = alt + ":" + port
			} else {
				c.Host = alt
			}
			candidates = append(candidates, c.String())
		}
	}

	if u.Scheme == "http" && host != "localhost" && host != "127.0.0.1" && host != "::1" {
		for _, p := range []string{"443", "80"} {
			c := *u
			c.Scheme = "https"
			c.Host = host + ":" + p
			candidates = append(candidates, c.String())
		}
	}

	return candidates, nil
}

// NewClient dials the EVM RPC endpoint, trying the fallback candidates
// produced by dialCandidates in order and returning the first that
// succeeds. Fails with a bridgeerr of kind KindTransport if every
// candidate is unreachable. If chainID is nil, it is auto-discovered from
// the node via eth_chainId, sparing the operator from passing it as a
// separate flag.
func NewClient(ctx context.Context, rawURL string, chainID *big.Int) (*Client, error) {
	candidates, err := dialCandidates(rawURL)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, candidate := range candidates {
		rpc, err := ethclient.DialContext(ctx, candidate)
		if err != nil {
			lastErr = err
			log.Debug("evmchain: dial candidate failed", "url", candidate, "err", err)
			continue
		}
		log.Info("evmchain: connected", "url", candidate)

		if chainID == nil {
			chainID, err = rpc.ChainID(ctx)
			if err != nil {
				return nil, bridgeerr.New(bridgeerr.KindTransport, "query EVM chain ID", err)
			}
		}

		return &Client{rpc: rpc, chainID: chainID, url: candidate}, nil
	}

	return nil, bridgeerr.New(bridgeerr.KindTransport, "all EVM RPC dial candidates exhausted", lastErr)
}

// ChainID returns the configured EVM chain ID.
func (c *Client) ChainID() *big.Int { return c.chainID }

// URL returns the endpoint this client ultimately connected to.
func (c *Client) URL() string { return c.url }

// Raw exposes the underlying ethclient for callers (sigengine, relayer)
// that need direct JSON-RPC access not otherwise wrapped here.
func (c *Client) Raw() *ethclient.Client { return c.rpc }

// BlockNumber returns the latest EVM block number (eth_blockNumber).
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.rpc.BlockNumber(ctx)
	if err != nil {
		return 0, bridgeerr.New(bridgeerr.KindTransport, "eth_blockNumber", err)
	}
	return n, nil
}

// HeaderByTag fetches a block header by a special tag ("latest",
// "finalized", "safe") via eth_getBlockByNumber. The standard ethclient
// API only accepts numeric block heights, so tags are issued as a raw RPC
// call against the underlying *rpc.Client.
func (c *Client) HeaderByTag(ctx context.Context, tag string) (*types.Header, error) {
	var header *types.Header
	err := c.rpc.Client().CallContext(ctx, &header, "eth_getBlockByNumber", tag, false)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, fmt.Sprintf("eth_getBlockByNumber(%s)", tag), err)
	}
	if header == nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, fmt.Sprintf("eth_getBlockByNumber(%s) returned no block", tag), nil)
	}
	return header, nil
}

// BlockNumberByTag is a convenience wrapper over HeaderByTag returning just
// the block number.
func (c *Client) BlockNumberByTag(ctx context.Context, tag string) (uint64, error) {
	h, err := c.HeaderByTag(ctx, tag)
	if err != nil {
		return 0, err
	}
	return h.Number.Uint64(), nil
}

// FilterLogs queries logs emitted by contract between fromBlock and
// toBlock (inclusive) matching any of the given topic-0 signatures.
func (c *Client) FilterLogs(ctx context.Context, contract common.Address, fromBlock, toBlock uint64, topics []common.Hash) ([]types.Log, error) {
	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{contract},
		Topics:    [][]common.Hash{topics},
	}
	logs, err := c.rpc.FilterLogs(ctx, q)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, "eth_getLogs", err)
	}
	return logs, nil
}

// BalanceOf calls the standard ERC20 balanceOf(address) view function.
func (c *Client) BalanceOf(ctx context.Context, token, holder common.Address) (*big.Int, error) {
	const erc20BalanceOfABI = `[{"constant":true,"inputs":[{"name":"who","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"}]`
	contractABI, err := abi.JSON(strings.NewReader(erc20BalanceOfABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	callData, err := contractABI.Pack("balanceOf", holder)
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf: %w", err)
	}

	result, err := c.rpc.CallContract(ctx, ethereum.CallMsg{To: &token, Data: callData}, nil)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, "eth_call balanceOf", err)
	}

	outputs, err := contractABI.Unpack("balanceOf", result)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf: %w", err)
	}
	return outputs[0].(*big.Int), nil
}

// PendingNonceAt returns the next usable nonce for addr.
func (c *Client) PendingNonceAt(ctx context.Context, addr common.Address) (uint64, error) {
	n, err := c.rpc.PendingNonceAt(ctx, addr)
	if err != nil {
		return 0, bridgeerr.New(bridgeerr.KindTransport, "eth_getTransactionCount", err)
	}
	return n, nil
}

// SuggestGasPrice returns the node's suggested gas price.
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	p, err := c.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return nil, bridgeerr.New(bridgeerr.KindTransport, "eth_gasPrice", err)
	}
	return p, nil
}

// EstimateGas estimates the gas cost of msg.
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := c.rpc.EstimateGas(ctx, msg)
	if err != nil {
		return 0, bridgeerr.New(bridgeerr.KindTransport, "eth_estimateGas", err)
	}
	return gas, nil
}

// SendRawTransaction signs and submits tx, escalating gas price by 20% per
// retry on the transient submission errors go-ethereum nodes report when a
// competing transaction is already in flight. Adapted from the teacher's
// SendContractTransactionWithRetry.
func (c *Client) SendRawTransaction(ctx context.Context, privateKey *ecdsa.PrivateKey, to common.Address, data []byte, gasLimit uint64, maxRetries int) (*types.Receipt, error) {
	fromAddress := crypto.PubkeyToAddress(privateKey.PublicKey)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		nonce, err := c.PendingNonceAt(ctx, fromAddress)
		if err != nil {
			return nil, err
		}

		gasPrice, err := c.SuggestGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		if attempt > 0 {
			multiplier := big.NewInt(int64(100 + 20*attempt))
			gasPrice = gasPrice.Mul(gasPrice, multiplier)
			gasPrice = gasPrice.Div(gasPrice, big.NewInt(100))
		}

		tx := types.NewTransaction(nonce, to, big.NewInt(0), gasLimit, gasPrice, data)
		signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), privateKey)
		if err != nil {
			return nil, fmt.Errorf("sign transaction: %w", err)
		}

		err = c.rpc.SendTransaction(ctx, signedTx)
		if err != nil {
			errStr := err.Error()
			if strings.Contains(errStr, "replacement transaction underpriced") ||
				strings.Contains(errStr, "nonce too low") ||
				strings.Contains(errStr, "already known") {
				lastErr = err
				if attempt < maxRetries-1 {
					time.Sleep(2 * time.Second)
					continue
				}
			}
			return nil, bridgeerr.New(bridgeerr.KindTransport, "eth_sendRawTransaction", err)
		}

		receipt, err := bind.WaitMined(ctx, c.rpc, signedTx)
		if err != nil {
			return nil, bridgeerr.New(bridgeerr.KindTransport, "waiting for transaction receipt", err)
		}
		return receipt, nil
	}

	return nil, bridgeerr.New(bridgeerr.KindTransport, "exhausted retries submitting transaction", lastErr)
}
