// Copyright 2025 Certen Protocol
//
// Package signer implements the Signer Loop (component C5): watches for
// valsets, batches, and logic calls awaiting this orchestrator's
// signature and submits one confirmation transaction per iteration
// (spec section 4.5).
package signer

import (
	"context"
	"crypto/ecdsa"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/certen/gravity-orchestrator/pkg/bridgeerr"
	"github.com/certen/gravity-orchestrator/pkg/homechain"
	"github.com/certen/gravity-orchestrator/pkg/homechain/bridgepb"
	"github.com/certen/gravity-orchestrator/pkg/homechain/keys"
	"github.com/certen/gravity-orchestrator/pkg/looprunner"
	"github.com/certen/gravity-orchestrator/pkg/sigengine"
	"github.com/certen/gravity-orchestrator/pkg/types"
)

const (
	// period is how often the signer loop iterates (spec section 4.5).
	period = 11 * time.Second

	// waitingPeriod is used while the home chain is not yet moving.
	waitingPeriod = 90 * time.Second
)

// Config bundles a Signer's static dependencies.
type Config struct {
	EvmKey        *ecdsa.PrivateKey
	ChainID       string
	AddressPrefix string
	Fee           homechain.SubmissionFee
}

// Signer signs every outstanding valset, batch, and logic call addressed
// to this orchestrator and submits them in a single home-chain
// transaction per iteration.
type Signer struct {
	home       *homechain.Client
	homeSigner *keys.HomeSigner
	cfg        Config

	evmAddress types.EvmAddress
	loop       *looprunner.Loop
}

// New constructs a Signer. Callers must call Start to begin iterating.
func New(home *homechain.Client, homeSigner *keys.HomeSigner, cfg Config) *Signer {
	s := &Signer{
		home:       home,
		homeSigner: homeSigner,
		cfg:        cfg,
		evmAddress: types.EvmAddress(evmAddressOf(cfg.EvmKey)),
	}
	s.loop = looprunner.New("signer", s.iterate)
	return s
}

// Start launches the signer's background loop.
func (s *Signer) Start(ctx context.Context) { s.loop.Start(ctx) }

// Stop halts the signer's background loop.
func (s *Signer) Stop() { s.loop.Stop() }

func (s *Signer) iterate(ctx context.Context) time.Duration {
	params, err := s.home.Params(ctx)
	if err != nil {
		log.Error("signer: failed to refresh params", "err", err)
		return period
	}

	status, err := s.home.ChainStatus(ctx)
	if err != nil {
		log.Warn("signer: failed to query home chain status", "err", err)
		return waitingPeriod
	}
	if status != types.ChainMoving {
		log.Warn("signer: home chain not moving, delaying confirmations",
			"status", status,
			"signed_valsets_window", params.SignedValsetsWindow,
			"signed_batches_window", params.SignedBatchesWindow,
			"signed_logic_calls_window", params.SignedLogicCallsWindow)
		return waitingPeriod
	}

	orchestrator := s.homeSigner.Address()

	valsetConfirms, err := s.signPendingValsets(ctx, orchestrator, params.GravityID)
	if err != nil {
		return s.handleIterationError(err)
	}
	batchConfirms, err := s.signPendingBatches(ctx, orchestrator, params.GravityID)
	if err != nil {
		return s.handleIterationError(err)
	}
	logicConfirms, err := s.signPendingLogicCalls(ctx, orchestrator, params.GravityID)
	if err != nil {
		return s.handleIterationError(err)
	}

	if len(valsetConfirms) == 0 && len(batchConfirms) == 0 && len(logicConfirms) == 0 {
		return period
	}

	if _, err := s.home.SubmitConfirms(ctx, s.homeSigner, s.cfg.ChainID, s.cfg.Fee, valsetConfirms, batchConfirms, logicConfirms); err != nil {
		return s.handleIterationError(err)
	}

	log.Info("signer: submitted confirmations",
		"valsets", len(valsetConfirms), "batches", len(batchConfirms), "logic_calls", len(logicConfirms))
	return period
}

// handleIterationError applies spec section 4.5 step 5: an
// insufficient-fee rejection is fatal, since the validator is about to be
// slashed for inactivity and only operator intervention (raising the
// --fees flag) can fix it. Every other error is logged and retried next
// iteration.
func (s *Signer) handleIterationError(err error) time.Duration {
	if kind, ok := bridgeerr.KindOf(err); ok && kind == bridgeerr.KindInsufficientFees {
		log.Crit("signer: confirmation submission rejected for insufficient fees, exiting", "err", err)
	}
	log.Error("signer: iteration failed", "err", err)
	return period
}

func (s *Signer) signPendingValsets(ctx context.Context, orchestrator types.HomeAddress, gravityID [32]byte) ([]*bridgepb.MsgValsetConfirm, error) {
	valsets, err := s.home.LastPendingValsetRequestByAddr(ctx, orchestrator)
	if err != nil {
		return nil, err
	}

	confirms := make([]*bridgepb.MsgValsetConfirm, 0, len(valsets))
	for _, v := range valsets {
		checkpoint, err := sigengine.BuildValsetCheckpoint(gravityID, *v)
		if err != nil {
			return nil, err
		}
		sig, err := sigengine.Sign(s.cfg.EvmKey, checkpoint)
		if err != nil {
			return nil, err
		}
		confirms = append(confirms, &bridgepb.MsgValsetConfirm{
			Nonce:        v.Nonce,
			Orchestrator: orchestrator.String(),
			EthAddress:   s.evmAddress.Hex(),
			Signature:    sig.Hex(),
		})
	}
	return confirms, nil
}

func (s *Signer) signPendingBatches(ctx context.Context, orchestrator types.HomeAddress, gravityID [32]byte) ([]*bridgepb.MsgConfirmBatch, error) {
	batches, err := s.home.LastPendingBatchRequestByAddr(ctx, orchestrator)
	if err != nil {
		return nil, err
	}

	confirms := make([]*bridgepb.MsgConfirmBatch, 0, len(batches))
	for _, batch := range batches {
		checkpoint, err := sigengine.BuildBatchCheckpoint(gravityID, *batch)
		if err != nil {
			return nil, err
		}
		sig, err := sigengine.Sign(s.cfg.EvmKey, checkpoint)
		if err != nil {
			return nil, err
		}
		confirms = append(confirms, &bridgepb.MsgConfirmBatch{
			Nonce:         batch.BatchNonce,
			TokenContract: batch.TokenContract.Hex(),
			EthSigner:     s.evmAddress.Hex(),
			Orchestrator:  orchestrator.String(),
			Signature:     sig.Hex(),
		})
	}
	return confirms, nil
}

func (s *Signer) signPendingLogicCalls(ctx context.Context, orchestrator types.HomeAddress, gravityID [32]byte) ([]*bridgepb.MsgConfirmLogicCall, error) {
	calls, err := s.home.LastPendingLogicCallByAddr(ctx, orchestrator)
	if err != nil {
		return nil, err
	}

	confirms := make([]*bridgepb.MsgConfirmLogicCall, 0, len(calls))
	for _, call := range calls {
		checkpoint, err := sigengine.BuildLogicCallCheckpoint(gravityID, *call)
		if err != nil {
			return nil, err
		}
		sig, err := sigengine.Sign(s.cfg.EvmKey, checkpoint)
		if err != nil {
			return nil, err
		}
		confirms = append(confirms, &bridgepb.MsgConfirmLogicCall{
			InvalidationId:    hexInvalidationID(call.InvalidationID),
			InvalidationNonce: call.InvalidationNonce,
			EthSigner:         s.evmAddress.Hex(),
			Orchestrator:      orchestrator.String(),
			Signature:         sig.Hex(),
		})
	}
	return confirms, nil
}
