// Copyright 2025 Certen Protocol
//
// Package relayer implements the Relayer Loop (component C6, optional):
// forwards threshold-signed valsets, batches, and logic calls from the
// home chain to the EVM bridge contract, gating batch submission on a
// configurable profitability check (spec section 4.6).
package relayer

import (
	"context"
	"crypto/ecdsa"
	"sort"
	"sync"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/evmchain"
	"github.com/certen/gravity-orchestrator/pkg/homechain"
	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/looprunner"
	"github.com/certen/gravity-orchestrator/pkg/sigengine"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

// period is how often the relayer's combined tick runs. Cross-artifact
// ordering (valsets, then batches, then logic calls) is expressed as
// three phases of a single cooperative tick rather than three
// independently-scheduled loops, since a valset relayed mid-tick changes
// the set of signatures batches and logic calls in the same tick must
// verify against (spec section 4.6, "Cross-artifact ordering").
const (
	period        = 15 * time.Second
	waitingPeriod = 90 * time.Second

	// gasBufferNumerator/Denominator pad an EstimateGas result before
	// it is used as a transaction's gas limit, since contract execution
	// cost can vary slightly between estimation and inclusion.
	gasBufferNumerator   = 6
	gasBufferDenominator = 5
)

// Config bundles a Relayer's static dependencies.
type Config struct {
	EvmKey         *ecdsa.PrivateKey
	BridgeContract types.EvmAddress
	Prices         PriceSource
	BatchRelaying  BatchRelayConfig
	ValsetRelaying ValsetMode
}

// Relayer forwards threshold-signed artifacts from the home chain to the
// EVM bridge contract.
type Relayer struct {
	evm  *evmchain.Client
	home *homechain.Client
	cfg  Config

	evmAddress common.Address
	loop       *looprunner.Loop

	mu              sync.Mutex
	installedValset *types.Valset
}

// New constructs a Relayer. Callers must call Start to begin iterating.
func New(evm *evmchain.Client, home *homechain.Client, cfg Config) *Relayer {
	r := &Relayer{
		evm:        evm,
		home:       home,
		cfg:        cfg,
		evmAddress: crypto.PubkeyToAddress(cfg.EvmKey.PublicKey),
	}
	r.loop = looprunner.New("relayer", r.iterate)
	return r
}

// Start launches the relayer's background loop.
func (r *Relayer) Start(ctx context.Context) { r.loop.Start(ctx) }

// Stop halts the relayer's background loop.
func (r *Relayer) Stop() { r.loop.Stop() }

func (r *Relayer) iterate(ctx context.Context) time.Duration {
	params, err := r.home.Params(ctx)
	if err != nil {
		log.Error("relayer: failed to refresh params", "err", err)
		return period
	}

	status, err := r.home.ChainStatus(ctx)
	if err != nil {
		log.Warn("relayer: failed to query home chain status", "err", err)
		return waitingPeriod
	}
	if status != types.ChainMoving {
		log.Warn("relayer: home chain not moving, delaying relaying", "status", status)
		return waitingPeriod
	}

	r.relayValsets(ctx, params.GravityID)
	r.relayBatches(ctx, params.GravityID)
	r.relayLogicCalls(ctx, params.GravityID)

	return period
}

// bridgeContractAddr is the EVM bridge contract's address in
// go-ethereum's common.Address form.
func (r *Relayer) bridgeContractAddr() common.Address {
	return common.Address(r.cfg.BridgeContract)
}

// installedValsetOrFetch returns the relayer's cached notion of the
// validator set currently installed on the EVM contract, fetching it
// from the home chain on first use. The cache is refreshed whenever a
// valset update is relayed successfully (relayValsets) or discovered
// already installed.
func (r *Relayer) installedValsetOrFetch(ctx context.Context) (*types.Valset, error) {
	r.mu.Lock()
	cached := r.installedValset
	r.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	v, err := r.home.CurrentValset(ctx)
	if err != nil {
		return nil, err
	}
	r.setInstalledValset(v)
	return v, nil
}

func (r *Relayer) setInstalledValset(v *types.Valset) {
	r.mu.Lock()
	r.installedValset = v
	r.mu.Unlock()
}

// relayValsets implements the valset sub-loop: if the home chain's
// current valset has a higher nonce than what the EVM contract reports
// installed, assemble its signatures and submit updateValset.
func (r *Relayer) relayValsets(ctx context.Context, gravityID [32]byte) {
	current, err := r.home.CurrentValset(ctx)
	if err != nil {
		log.Error("relayer: failed to query current valset", "err", err)
		return
	}

	onChainNonce, err := r.evm.LastValsetNonce(ctx, r.bridgeContractAddr())
	if err != nil {
		log.Error("relayer: failed to read on-chain valset nonce", "err", err)
		return
	}
	if current.Nonce <= onChainNonce {
		r.setInstalledValset(current)
		return
	}

	confirms, err := r.home.ValsetConfirmsByNonce(ctx, current.Nonce)
	if err != nil {
		log.Error("relayer: failed to query valset confirms", "nonce", current.Nonce, "err", err)
		return
	}
	sigsByAddress, err := valsetConfirmSigs(confirms)
	if err != nil {
		log.Warn("relayer: malformed valset confirm", "nonce", current.Nonce, "err", err)
		return
	}

	checkpoint, err := sigengine.BuildValsetCheckpoint(gravityID, *current)
	if err != nil {
		log.Error("relayer: failed to build valset checkpoint", "nonce", current.Nonce, "err", err)
		return
	}
	assembled, err := sigengine.Assemble(*current, sigsByAddress, checkpoint)
	if err != nil {
		logAssembleFailure("valset", current.Nonce, err)
		return
	}

	installed, err := r.installedValsetOrFetch(ctx)
	if err != nil {
		log.Error("relayer: failed to resolve installed valset", "err", err)
		return
	}

	data, err := evmchain.PackUpdateValset(*current, *installed, assembled)
	if err != nil {
		log.Error("relayer: failed to pack updateValset", "nonce", current.Nonce, "err", err)
		return
	}
	gasEstimate, err := r.evm.EstimateGas(ctx, ethereum.CallMsg{From: r.evmAddress, To: ptr(r.bridgeContractAddr()), Data: data})
	if err != nil {
		log.Warn("relayer: updateValset gas estimation failed", "nonce", current.Nonce, "err", err)
		return
	}

	receipt, err := r.evm.SubmitValsetUpdate(ctx, r.cfg.EvmKey, r.bridgeContractAddr(), *current, *installed, assembled, bufferedGas(gasEstimate))
	if err != nil {
		log.Error("relayer: updateValset submission failed", "nonce", current.Nonce, "err", err)
		return
	}

	log.Info("relayer: installed new valset", "nonce", current.Nonce, "tx", receipt.TxHash, "mode", r.cfg.ValsetRelaying)
	r.setInstalledValset(current)
}

type batchCandidate struct {
	batch     *types.TransactionBatch
	assembled sigengine.Assembled
}

// relayBatches implements the batch sub-loop: groups surviving,
// sufficiently-signed candidates by token contract, oldest nonce first
// within a group, and attempts every candidate in that order, submitting
// each one that clears the configured batch-relaying mode (spec section
// 4.6 steps 1-5).
func (r *Relayer) relayBatches(ctx context.Context, gravityID [32]byte) {
	installed, err := r.installedValsetOrFetch(ctx)
	if err != nil {
		log.Error("relayer: failed to resolve installed valset for batches", "err", err)
		return
	}

	batches, err := r.home.OutgoingTxBatches(ctx)
	if err != nil {
		log.Error("relayer: failed to query outgoing batches", "err", err)
		return
	}

	byToken := make(map[types.EvmAddress][]batchCandidate)
	for _, batch := range batches {
		confirms, err := r.home.BatchConfirms(ctx, batch.BatchNonce, batch.TokenContract)
		if err != nil {
			log.Error("relayer: failed to query batch confirms", "nonce", batch.BatchNonce, "err", err)
			continue
		}
		sigsByAddress, err := batchConfirmSigs(confirms)
		if err != nil {
			log.Warn("relayer: malformed batch confirm", "nonce", batch.BatchNonce, "err", err)
			continue
		}
		checkpoint, err := sigengine.BuildBatchCheckpoint(gravityID, *batch)
		if err != nil {
			log.Error("relayer: failed to build batch checkpoint", "nonce", batch.BatchNonce, "err", err)
			continue
		}
		assembled, err := sigengine.Assemble(*installed, sigsByAddress, checkpoint)
		if err != nil {
			logAssembleFailure("batch", batch.BatchNonce, err)
			continue
		}
		byToken[batch.TokenContract] = append(byToken[batch.TokenContract], batchCandidate{batch, assembled})
	}

	for _, candidates := range byToken {
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].batch.BatchNonce < candidates[j].batch.BatchNonce
		})
		// Walk every surviving candidate for this token oldest-first.
		// tryRelayBatch re-reads the on-chain nonce before submitting, so
		// once an earlier batch lands and SubmitBatch's wait-mined returns,
		// the next candidate's own nonce check sees the advanced state and
		// is attempted in the same tick rather than deferred to the next.
		for _, c := range candidates {
			r.tryRelayBatch(ctx, *installed, c)
		}
	}
}

// tryRelayBatch applies steps 4-5 of the per-artifact batch protocol and
// reports whether it submitted a transaction.
func (r *Relayer) tryRelayBatch(ctx context.Context, installed types.Valset, c batchCandidate) bool {
	onChainNonce, err := r.evm.LastBatchNonce(ctx, r.bridgeContractAddr(), common.Address(c.batch.TokenContract))
	if err != nil {
		log.Error("relayer: failed to read on-chain batch nonce", "token", c.batch.TokenContract, "err", err)
		return false
	}
	if c.batch.BatchNonce <= onChainNonce {
		return false
	}

	evmBlock, err := r.evm.BlockNumber(ctx)
	if err != nil {
		log.Error("relayer: failed to read EVM block height", "err", err)
		return false
	}
	if c.batch.Expired(evmBlock) {
		log.Warn("relayer: batch expired, skipping", "nonce", c.batch.BatchNonce, "token", c.batch.TokenContract, "timeout", c.batch.BatchTimeout, "current_block", evmBlock)
		return false
	}

	data, err := evmchain.PackSubmitBatch(installed, c.assembled, *c.batch)
	if err != nil {
		log.Error("relayer: failed to pack submitBatch", "nonce", c.batch.BatchNonce, "err", err)
		return false
	}
	gasEstimate, err := r.evm.EstimateGas(ctx, ethereum.CallMsg{From: r.evmAddress, To: ptr(r.bridgeContractAddr()), Data: data})
	if err != nil {
		log.Warn("relayer: submitBatch gas estimation failed", "nonce", c.batch.BatchNonce, "err", err)
		return false
	}
	gasPrice, err := r.evm.SuggestGasPrice(ctx)
	if err != nil {
		log.Warn("relayer: failed to suggest gas price", "err", err)
		return false
	}

	relay, err := r.cfg.BatchRelaying.ShouldRelay(ctx, r.cfg.Prices, c.batch.TokenContract, c.batch.TotalFee, gasEstimate, gasPrice)
	if err != nil {
		log.Warn("relayer: profitability check failed, skipping batch", "nonce", c.batch.BatchNonce, "err", err)
		return false
	}
	if !relay {
		log.Debug("relayer: batch not profitable, skipping", "nonce", c.batch.BatchNonce, "token", c.batch.TokenContract)
		return false
	}

	receipt, err := r.evm.SubmitBatch(ctx, r.cfg.EvmKey, r.bridgeContractAddr(), installed, c.assembled, *c.batch, bufferedGas(gasEstimate))
	if err != nil {
		log.Error("relayer: submitBatch failed", "nonce", c.batch.BatchNonce, "err", err)
		return false
	}
	log.Info("relayer: submitted batch", "nonce", c.batch.BatchNonce, "token", c.batch.TokenContract, "tx", receipt.TxHash)
	return true
}

// relayLogicCalls implements the logic call sub-loop. Logic calls carry
// no profitability mode in the spec's config surface; a sufficiently
// signed, not-yet-stale call is always relayed.
func (r *Relayer) relayLogicCalls(ctx context.Context, gravityID [32]byte) {
	installed, err := r.installedValsetOrFetch(ctx)
	if err != nil {
		log.Error("relayer: failed to resolve installed valset for logic calls", "err", err)
		return
	}

	calls, err := r.home.OutgoingLogicCalls(ctx)
	if err != nil {
		log.Error("relayer: failed to query outgoing logic calls", "err", err)
		return
	}

	for _, call := range calls {
		var invalidationID [32]byte
		copy(invalidationID[:], call.InvalidationID)

		onChainNonce, err := r.evm.LastLogicCallNonce(ctx, r.bridgeContractAddr(), invalidationID)
		if err != nil {
			log.Error("relayer: failed to read on-chain logic call nonce", "err", err)
			continue
		}
		if call.InvalidationNonce <= onChainNonce {
			continue
		}

		evmBlock, err := r.evm.BlockNumber(ctx)
		if err != nil {
			log.Error("relayer: failed to read EVM block height", "err", err)
			continue
		}
		if call.Expired(evmBlock) {
			log.Warn("relayer: logic call expired, skipping", "invalidation_nonce", call.InvalidationNonce)
			continue
		}

		confirms, err := r.home.LogicConfirms(ctx, call.InvalidationID, call.InvalidationNonce)
		if err != nil {
			log.Error("relayer: failed to query logic call confirms", "err", err)
			continue
		}
		sigsByAddress, err := logicCallConfirmSigs(confirms)
		if err != nil {
			log.Warn("relayer: malformed logic call confirm", "err", err)
			continue
		}
		checkpoint, err := sigengine.BuildLogicCallCheckpoint(gravityID, *call)
		if err != nil {
			log.Error("relayer: failed to build logic call checkpoint", "err", err)
			continue
		}
		assembled, err := sigengine.Assemble(*installed, sigsByAddress, checkpoint)
		if err != nil {
			logAssembleFailure("logic call", call.InvalidationNonce, err)
			continue
		}

		data, err := evmchain.PackSubmitLogicCall(*installed, assembled, *call)
		if err != nil {
			log.Error("relayer: failed to pack submitLogicCall", "err", err)
			continue
		}
		gasEstimate, err := r.evm.EstimateGas(ctx, ethereum.CallMsg{From: r.evmAddress, To: ptr(r.bridgeContractAddr()), Data: data})
		if err != nil {
			log.Warn("relayer: submitLogicCall gas estimation failed", "err", err)
			continue
		}

		receipt, err := r.evm.SubmitLogicCall(ctx, r.cfg.EvmKey, r.bridgeContractAddr(), *installed, assembled, *call, bufferedGas(gasEstimate))
		if err != nil {
			log.Error("relayer: submitLogicCall failed", "err", err)
			continue
		}
		log.Info("relayer: submitted logic call", "invalidation_nonce", call.InvalidationNonce, "tx", receipt.TxHash)
	}
}

func logAssembleFailure(artifact string, nonce uint64, err error) {
	if kind, ok := bridgeerr.KindOf(err); ok && kind == bridgeerr.KindQuorum {
		log.Debug("relayer: "+artifact+" awaiting more signatures", "nonce", nonce)
		return
	}
	log.Warn("relayer: "+artifact+" signature assembly failed", "nonce", nonce, "err", err)
}

func bufferedGas(estimate uint64) uint64 {
	return estimate * gasBufferNumerator / gasBufferDenominator
}

func ptr(a common.Address) *common.Address { return &a }

func valsetConfirmSigs(confirms []*bridgepb.MsgValsetConfirm) (map[types.EvmAddress]sigengine.Signature, error) {
	out := make(map[types.EvmAddress]sigengine.Signature, len(confirms))
	for _, c := range confirms {
		addr, err := types.ParseEvmAddress(c.EthAddress)
		if err != nil {
			return nil, err
		}
		sig, err := sigengine.ParseSignatureHex(c.Signature)
		if err != nil {
			return nil, err
		}
		out[addr] = sig
	}
	return out, nil
}

func batchConfirmSigs(confirms []*bridgepb.MsgConfirmBatch) (map[types.EvmAddress]sigengine.Signature, error) {
	out := make(map[types.EvmAddress]sigengine.Signature, len(confirms))
	for _, c := range confirms {
		addr, err := types.ParseEvmAddress(c.EthSigner)
		if err != nil {
			return nil, err
		}
		sig, err := sigengine.ParseSignatureHex(c.Signature)
		if err != nil {
			return nil, err
		}
		out[addr] = sig
	}
	return out, nil
}

func logicCallConfirmSigs(confirms []*bridgepb.MsgConfirmLogicCall) (map[types.EvmAddress]sigengine.Signature, error) {
	out := make(map[types.EvmAddress]sigengine.Signature, len(confirms))
	for _, c := range confirms {
		addr, err := types.ParseEvmAddress(c.EthSigner)
		if err != nil {
			return nil, err
		}
		sig, err := sigengine.ParseSignatureHex(c.Signature)
		if err != nil {
			return nil, err
		}
		out[addr] = sig
	}
	return out, nil
}
