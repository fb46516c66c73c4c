// Copyright 2025 Certen Protocol
//
// Package oracle implements the Oracle Loop (component C4): scans the
// EVM bridge contract for new events, decodes and filters them against
// the home chain's last-attested nonce, and submits claims (spec section
// 4.4).
package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/evmchain"
	"github.com/certen/gravity-orchestrator/pkg/homechain"
	"github.com/certen/gravity-orchestrator/pkg/homechain/keys"
	"github.com/certen/gravity-orchestrator/pkg/looprunner"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

const (
	// normalPeriod is how often the oracle loop iterates when both chains
	// are healthy and moving (spec section 4.4).
	normalPeriod = 13 * time.Second

	// waitingPeriod is the slower cadence used while a chain is syncing
	// or not yet mergeable, to avoid hammering an endpoint that cannot
	// make progress anyway.
	waitingPeriod = 90 * time.Second

	// maxBlocksPerIteration caps how many EVM blocks a single iteration
	// scans, so one pathologically large gap (e.g. after a long outage)
	// cannot block the loop for an unbounded amount of time.
	maxBlocksPerIteration = 5000

	// maxEventsPerBatch caps how many decoded events one iteration
	// submits; the spec requires trimming from the tail (newest first)
	// so the oldest, most safety-critical events are processed first.
	maxEventsPerBatch = 1000

	// resyncMaxLookbackWindows bounds the backward scan resync performs
	// when it cannot otherwise place the last attested nonce at a block
	// height; each window is maxBlocksPerIteration blocks.
	resyncMaxLookbackWindows = 200
)

// Config bundles an Oracle's static dependencies.
type Config struct {
	BridgeContract types.EvmAddress
	GravityID      [32]byte
	ChainID        string // home chain-id string used in the SIGN_MODE_DIRECT sign doc
	AddressPrefix  string
	Fee            homechain.SubmissionFee
}

// Oracle scans the EVM bridge contract and attests to new events on the
// home chain.
type Oracle struct {
	evm    *evmchain.Client
	home   *homechain.Client
	signer *keys.HomeSigner
	cfg    Config

	cursor types.Cursor
	loop   *looprunner.Loop
}

// New constructs an Oracle. Callers must call Start to begin iterating.
func New(evm *evmchain.Client, home *homechain.Client, signer *keys.HomeSigner, cfg Config) *Oracle {
	o := &Oracle{evm: evm, home: home, signer: signer, cfg: cfg}
	o.loop = looprunner.New("oracle", o.iterate)
	return o
}

// Start launches the oracle's background loop. The first iteration
// always resyncs (spec section 4.4.2, "Initial -> Resync on process
// start").
func (o *Oracle) Start(ctx context.Context) {
	if err := o.resync(ctx); err != nil {
		log.Warn("oracle: initial resync failed, continuing with cursor at zero", "err", err)
	}
	o.loop.Start(ctx)
}

// Stop halts the oracle's background loop.
func (o *Oracle) Stop() { o.loop.Stop() }

func (o *Oracle) iterate(ctx context.Context) time.Duration {
	safeBlock, status, ok := o.checkChainsHealthy(ctx)
	if !ok {
		return waitingPeriod
	}

	if err := o.detectGovernanceReset(ctx); err != nil {
		log.Error("oracle: governance reset detection failed", "err", err)
		return normalPeriod
	}

	events, err := o.scanAndDecode(ctx, safeBlock)
	if err != nil {
		log.Error("oracle: scan/decode failed, cursor not advanced", "err", err)
		return normalPeriod
	}

	if len(events) == 0 {
		o.cursor.LastCheckedBlock = safeBlock
		return periodFor(status)
	}

	if err := o.submitAndAdvance(ctx, events, safeBlock); err != nil {
		log.Error("oracle: claim submission failed, cursor not advanced", "err", err)
		return normalPeriod
	}

	return periodFor(status)
}

func periodFor(status types.ChainStatus) time.Duration {
	if status != types.ChainMoving {
		return waitingPeriod
	}
	return normalPeriod
}

// checkChainsHealthy performs step 1: query the latest safe block and the
// home chain's status. ok is false if either chain is syncing or
// unreachable, in which case the caller should sleep and retry.
func (o *Oracle) checkChainsHealthy(ctx context.Context) (safeBlock uint64, status types.ChainStatus, ok bool) {
	safeBlock, err := evmchain.LatestSafeBlock(ctx, o.evm)
	if err != nil {
		log.Warn("oracle: failed to determine latest safe block", "err", err)
		return 0, types.ChainUnknown, false
	}

	status, err = o.home.ChainStatus(ctx)
	if err != nil {
		log.Warn("oracle: failed to query home chain status", "err", err)
		return 0, types.ChainUnknown, false
	}
	if status != types.ChainMoving {
		log.Info("oracle: home chain not moving, waiting", "status", status)
		return 0, status, false
	}

	return safeBlock, status, true
}

// detectGovernanceReset performs step 2: compare the home chain's
// recorded last_event_nonce for this orchestrator against the in-process
// cursor. A backward jump means a governance unhalt proposal reset the
// oracle's state out from under it.
func (o *Oracle) detectGovernanceReset(ctx context.Context) error {
	lastEventNonce, err := o.home.LastEventNonceByAddr(ctx, o.signer.Address())
	if err != nil {
		return err
	}

	if lastEventNonce < o.cursor.LastCheckedEvent {
		log.Warn("oracle: last_event_nonce went backwards, resyncing",
			"was", o.cursor.LastCheckedEvent, "now", lastEventNonce)
		return o.resync(ctx)
	}

	o.cursor.LastCheckedEvent = lastEventNonce
	return nil
}

// scanAndDecode performs steps 3-5: scan logs in the capped window,
// decode, filter by nonce, union into a single nonce-ordered run capped
// at maxEventsPerBatch (trimming from the tail, i.e. dropping the newest
// events first so the oldest are never starved).
func (o *Oracle) scanAndDecode(ctx context.Context, safeBlock uint64) ([]types.Event, error) {
	from := o.cursor.LastCheckedBlock
	if from > safeBlock {
		return nil, nil
	}
	to := safeBlock
	if to-from > maxBlocksPerIteration {
		to = from + maxBlocksPerIteration
	}

	logs, err := o.evm.FilterLogs(ctx, common.Address(o.cfg.BridgeContract), from, to, evmchain.BridgeEventTopics())
	if err != nil {
		return nil, err
	}

	events, err := evmchain.FromLogs(logs)
	if err != nil {
		return nil, err
	}

	events = evmchain.FilterByEventNonce(o.cursor.LastCheckedEvent, events)

	if len(events) > maxEventsPerBatch {
		log.Warn("oracle: event batch exceeds cap, trimming newest events", "count", len(events), "cap", maxEventsPerBatch)
		events = events[:maxEventsPerBatch]
	}

	return events, nil
}

// submitAndAdvance performs steps 6-8: build and submit claims for the
// decoded events, verify the submission actually moved last_event_nonce,
// then advance the cursor.
func (o *Oracle) submitAndAdvance(ctx context.Context, events []types.Event, safeBlock uint64) error {
	claims, err := buildClaimMsgs(events, o.signer.Address().String())
	if err != nil {
		return err
	}

	beforeNonce := o.cursor.LastCheckedEvent

	if _, err := o.home.SubmitClaims(ctx, o.signer, o.cfg.ChainID, o.cfg.Fee, claims); err != nil {
		return err
	}

	afterNonce, err := o.home.LastEventNonceByAddr(ctx, o.signer.Address())
	if err != nil {
		return err
	}
	if afterNonce == beforeNonce {
		return bridgeerr.New(bridgeerr.KindInvalidBridgeState,
			"claim transaction broadcast successfully but last_event_nonce did not advance", nil)
	}

	highestBlock := safeBlock
	if block, ok := evmchain.GetBlockForNonce(events[len(events)-1].EventNonce, events); ok {
		highestBlock = block
	}

	o.cursor.LastCheckedEvent = afterNonce
	o.cursor.LastCheckedBlock = highestBlock
	return nil
}

// resync implements spec section 4.4.2: on cold start, or after a
// detected backward nonce reset, place last_checked_block just above the
// block of the highest event this orchestrator has already attested to.
//
// The bridge module's attestation records carry home-chain block height,
// not the EVM block the underlying event occurred at, so this
// implementation uses the fallback path the spec allows: a bounded
// backward scan over the contract's own event topics, looking for the
// last attested nonce.
func (o *Oracle) resync(ctx context.Context) error {
	lastEventNonce, err := o.home.LastEventNonceByAddr(ctx, o.signer.Address())
	if err != nil {
		return err
	}
	o.cursor.LastCheckedEvent = lastEventNonce

	if lastEventNonce == 0 {
		o.cursor.LastCheckedBlock = 0
		return nil
	}

	safeBlock, err := evmchain.LatestSafeBlock(ctx, o.evm)
	if err != nil {
		return err
	}

	to := safeBlock
	for window := 0; window < resyncMaxLookbackWindows; window++ {
		from := uint64(0)
		if to > maxBlocksPerIteration {
			from = to - maxBlocksPerIteration
		}

		logs, err := o.evm.FilterLogs(ctx, common.Address(o.cfg.BridgeContract), from, to, evmchain.BridgeEventTopics())
		if err != nil {
			return err
		}
		events, err := evmchain.FromLogs(logs)
		if err != nil {
			return err
		}
		if block, ok := evmchain.GetBlockForNonce(lastEventNonce, events); ok {
			o.cursor.LastCheckedBlock = block + 1
			return nil
		}

		if from == 0 {
			break
		}
		to = from
	}

	return fmt.Errorf("resync: could not locate EVM block for last attested event_nonce %d within %d windows", lastEventNonce, resyncMaxLookbackWindows)
}
